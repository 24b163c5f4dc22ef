package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.

	"github.com/mintel/esconfig/internal/app/domainctl" // App implementation.
)

func main() {
	app := domainctl.NewApp()
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	app.Main(command)
}
