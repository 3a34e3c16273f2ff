// Package cli defines the Cobra command tree for the stamp CLI. Each file
// in this package registers one command (doctor, config, version) with the
// root command; the root command itself runs the scaffold. Command
// implementations delegate to internal packages for business logic and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
