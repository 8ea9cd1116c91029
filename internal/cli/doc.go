// Package cli turns command-line arguments into a validated Config.
//
// Parse never exits the process: a help request reports shouldExit and
// invalid input comes back as an *ExitError carrying the exit code.
package cli
