// Package config manages user-level settings stored at ~/.layerkit/config.yaml.
// Settings can also come from LAYERKIT_* environment variables and from
// command-line flags bound by the cli package; flags win over environment,
// which wins over the file.
package config
