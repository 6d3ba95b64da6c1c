package main

import (
	"flag"
	"os"

	"undone/internal/cli"
	"undone/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "print output grouped by pending/done")
	theme := flag.String("theme", "auto", "color theme: auto or mono")
	flag.Parse()

	ui.SetTheme(*theme)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	os.Exit(cli.Run(args, cli.Options{
		Group: *groupPending,
	}))
}
