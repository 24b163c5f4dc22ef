package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.

	"github.com/mintel/esconfig/internal/app/planner" // App implementation.
)

func main() {
	app := planner.NewApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))
	app.Main()
}
