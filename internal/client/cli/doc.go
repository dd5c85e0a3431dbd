// Package cli implements the interactive terminal client. A small REPL
// dispatches to per-command handlers; the commands on offer at any moment
// are derived from the role in the credential store, so an absent or
// unrecognised role exposes only the logged-out surface.
package cli
