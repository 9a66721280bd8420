// Package cli turns command-line arguments and environment variables into
// an app.Config, and reports usage problems as ExitError values carrying the
// process exit code.
//
// Precedence, lowest first: built-in defaults, .env file, process
// environment, flags.
package cli
