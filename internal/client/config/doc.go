// Package config loads the CLI configuration from, in order of increasing
// precedence: built-in defaults, environment variables, an optional JSON
// file and command-line flags.
package config
