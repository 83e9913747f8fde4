package main

import (
	"flag"
	"fmt"
	"os"

	"tracklist/internal/config"
	"tracklist/internal/tui"
)

func main() {
	var (
		outFlag    = flag.String("out", "", "Save path (defaults to the input file)")
		configFlag = flag.String("config", "", "Path to config file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracklist-tui [-out FILE] PLAYLIST")
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	opts := tui.Options{
		Path:          flag.Arg(0),
		Output:        *outFlag,
		ConfirmOnQuit: settings.ConfirmOnQuit,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
