package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"tracklist/internal/config"
	"tracklist/internal/format"
	"tracklist/internal/model"
	"tracklist/internal/scan"
)

func main() {
	// Command line flags
	var (
		inFlag     = flag.String("in", "", "Input playlist file (format chosen by extension)")
		outFlag    = flag.String("out", "", "Output playlist file (format chosen by extension)")
		toFlag     = flag.String("to", "", "Output format name (m3u, pls); overrides the output extension")
		scanFlag   = flag.String("scan", "", "Build the playlist by scanning a directory of audio files")
		listFlag   = flag.Bool("list", false, "Print the playlist tracks to stdout")
		configFlag = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	if *inFlag == "" && *scanFlag == "" {
		fmt.Println("tracklist - convert and build playlist files")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tracklist -in mix.m3u -out mix.pls")
		fmt.Println("  tracklist -scan ~/Music/incoming -out incoming.m3u")
		fmt.Println("  tracklist -in mix.m3u -list")
		fmt.Println()
		fmt.Println("For interactive editing, use: tracklist-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	playlist, err := buildPlaylist(ctx, settings, *inFlag, *scanFlag)
	if err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *listFlag {
		printTracks(playlist)
	}

	if *outFlag != "" {
		if err := writePlaylist(playlist, settings, *outFlag, *toFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d tracks to %s\n", playlist.Len(), *outFlag)
	}

	if !*listFlag && *outFlag == "" {
		fmt.Printf("Parsed %d tracks (use -out or -list)\n", playlist.Len())
	}
}

// buildPlaylist constructs the working playlist, either by parsing an
// input file or by scanning a directory of audio files.
func buildPlaylist(ctx context.Context, settings *config.Settings, in, scanDir string) (*model.Playlist, error) {
	if scanDir != "" {
		return scan.NewScanner(settings).ScanDirectory(ctx, scanDir)
	}

	codec, err := format.ForPath(in)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return nil, err
	}
	return codec.Parse(string(data))
}

// writePlaylist generates the playlist in the requested format and
// writes it next to wherever the caller asked.
func writePlaylist(playlist *model.Playlist, settings *config.Settings, out, formatName string) error {
	var codec format.Format
	var err error
	switch {
	case formatName != "":
		codec, err = format.ForName(formatName)
	default:
		codec, err = format.ForPath(out)
		if err != nil {
			// Fall back to the configured default format.
			codec, err = settings.Output()
		}
	}
	if err != nil {
		return err
	}

	text, err := codec.Generate(playlist)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(out, []byte(text), 0644)
}

func printTracks(playlist *model.Playlist) {
	for i, track := range playlist.Tracks() {
		name := track.Title
		if artist := track.Artist(); artist != "" {
			name = artist + " - " + name
		}
		if name == "" {
			name = track.Location
		}

		duration := "?:??"
		if ms, ok := track.Duration(); ok {
			secs := int(ms / 1000)
			duration = fmt.Sprintf("%d:%02d", secs/60, secs%60)
		}

		fmt.Printf("%3d. %-50s %6s  %s\n", i+1, name, duration, track.Location)
	}
}
