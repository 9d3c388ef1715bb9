// Package cli defines the Cobra command tree for the layerkit CLI. The root
// command performs the scaffold run; each other file registers one
// subcommand. Commands delegate to internal packages and only handle flag
// parsing and output.
package cli
