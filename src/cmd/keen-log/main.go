package main

import (
	"os"

	"github.com/maksimkurb/keen-log/src/internal/commands"
	"github.com/maksimkurb/keen-log/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	root := commands.NewRootCommand(ctx, version+" (commit: "+commit+", date: "+date+")")
	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
