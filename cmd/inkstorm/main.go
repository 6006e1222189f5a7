// Package main is the entry point for the inkstorm demo board.
//
// The demo hosts a whiteboard document in the terminal and puts the
// input layer in front of it: right-button drag pans the camera, a
// right-button click opens a context menu against the updated selection,
// and the mouse wheel zooms toward the cursor (Shift pans horizontally,
// Ctrl vertically).
package main

import (
	"flag"
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("inkstorm %s (%s)\n", version, commit)
		return 0
	}

	app, err := newApp(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options holds parsed command-line options.
type options struct {
	configPath  string
	boardDir    string
	boardID     string
	logPath     string
	logLevel    string
	showVersion bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "inkstorm.toml", "config file path")
	flag.StringVar(&opts.boardDir, "boards", "boards", "board store directory")
	flag.StringVar(&opts.boardID, "board", "", "board id to open (empty creates a demo board)")
	flag.StringVar(&opts.logPath, "log", "inkstorm.log", "log file path")
	flag.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}
