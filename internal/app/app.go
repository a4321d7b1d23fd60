package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokex/internal/config"
	"github.com/five82/pokex/internal/dex"
	"github.com/five82/pokex/internal/export"
	"github.com/five82/pokex/internal/pokeapi"
	"github.com/five82/pokex/internal/prefs"
	"github.com/five82/pokex/internal/state"
	"github.com/five82/pokex/internal/ui"
)

// Options configure the pokex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pokex/prefs.toml
	LogPath    string // empty disables the session log
	ExportPath string // non-empty writes .csv/.xlsx and skips the TUI
}

// Run boots the explorer until the user quits or the context is cancelled.
// With ExportPath set it loads once, writes the file and returns instead.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath, err := resolveLogPath(opts.LogPath)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(logPath, opts.ExportPath == "")
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := pokeapi.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init pokeapi client: %w", err)
	}
	load := newLoader(client, loadOptions(cfg))

	if opts.ExportPath != "" {
		return Export(ctx, load, opts.ExportPath)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Load:      load,
		Theme:     state.ParseTheme(userPrefs.Theme),
		PrefsPath: prefsPath,
		LogPath:   logPath,
	})
	if err != nil && ctx.Err() != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		// Interrupted by signal; not a failure.
		return nil
	}
	return err
}

// Export loads the collection and writes it to path.
func Export(ctx context.Context, load ui.Loader, path string) error {
	records, err := load(ctx)
	if err != nil {
		return err
	}
	if err := export.Write(path, records.All()); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	log.Printf("exported %d pokemon to %s", records.Len(), path)
	return nil
}

func loadOptions(cfg config.Config) dex.LoadOptions {
	return dex.LoadOptions{Limit: cfg.Limit, Concurrency: cfg.Concurrency}
}

// resolveLogPath expands a leading ~ so the log writer and the log overlay
// open the same file. A blank path stays blank.
func resolveLogPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("log path: %w", err)
	}
	return resolved, nil
}

// setupLogging routes the standard logger to an already resolved path. The
// alt screen owns stdout and stderr while the TUI runs, so without a log file
// output is dropped.
func setupLogging(path string, tui bool) (func(), error) {
	if path != "" {
		f, err := tea.LogToFile(path, "pokex")
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		return func() { _ = f.Close() }, nil
	}
	if tui {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	return func() {}, nil
}
