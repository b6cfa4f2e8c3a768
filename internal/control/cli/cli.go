// Package cli provides the command-line interface for featedit.
package cli

// CommandLineOpts are the options and commands of the featedit command line,
// for go-flags to parse into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts
