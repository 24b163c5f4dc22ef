package cmd

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.
)

// Flagger is something flags and args can be registered on, so the
// flag sets here work for both an app and one of its subcommands.
type Flagger interface {
	Flag(name, help string) *kingpin.FlagClause
	Arg(name, help string) *kingpin.ArgClause
}

var (
	_ Flagger = (*kingpin.Application)(nil)
	_ Flagger = (*kingpin.CmdClause)(nil)
)
