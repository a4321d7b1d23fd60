package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/pokex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/pokex/config.toml)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional, defaults to ~/.config/pokex/prefs.toml)")
	logPath := flag.String("log", "", "write a session log to this file (optional)")
	exportPath := flag.String("export", "", "write the collection to a .csv or .xlsx file and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogPath:    *logPath,
		ExportPath: *exportPath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pokex: %v\n", err)
		return 1
	}
	return 0
}
