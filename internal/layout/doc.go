// Package layout defines the folder and placeholder-file lists that the
// scaffolder creates. A layout is a small YAML document; the default one is
// embedded in the binary and users may supply their own. Layout files are
// checked against an embedded JSON Schema, a safe-path rule and a supported
// format version before use.
package layout
