package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/prodgarden/internal/config"
	"github.com/akyairhashvil/prodgarden/internal/database"
	"github.com/akyairhashvil/prodgarden/internal/garden"
	"github.com/akyairhashvil/prodgarden/internal/points"
	"github.com/akyairhashvil/prodgarden/internal/prefs"
	"github.com/akyairhashvil/prodgarden/internal/session"
	"github.com/akyairhashvil/prodgarden/internal/timer"
	"github.com/akyairhashvil/prodgarden/internal/tracking"
	"github.com/akyairhashvil/prodgarden/internal/tui"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

var errNoTerminal = errors.New("prodgarden needs an interactive terminal")

type options struct {
	configPath string
	exportPath string
	importPath string
	version    bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.exportPath, "export", "", "write a JSON backup of projects and settings to this file and exit")
	fs.StringVar(&opts.importPath, "import", "", "restore a JSON backup from this file and exit")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.exportPath != "" && opts.importPath != "" {
		return opts, errors.New("-export and -import are mutually exclusive")
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Printf("%s %s (%s %s)\n", config.AppName, tui.AppVersion, tui.GitCommit, tui.BuildTime)
		return nil
	}

	// 1. Configuration and logging
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := util.NewFileLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Infof("starting %s %s with config %s", config.AppName, tui.AppVersion, cfg.Path())

	// 2. Project store
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case opts.exportPath != "":
		return exportBackup(ctx, db, opts.exportPath)
	case opts.importPath != "":
		return importBackup(ctx, db, opts.importPath)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	// 3. Session, garden library and preferences
	deps, err := buildDeps(cfg, db, logger)
	if err != nil {
		return err
	}

	// 4. Run the UI
	p := tea.NewProgram(tui.NewMainModel(ctx, deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("exiting")
	return nil
}

// buildDeps loads the session and garden state the UI runs on.
func buildDeps(cfg *config.Config, db *database.Database, logger util.Logger) (tui.Deps, error) {
	if logger == nil {
		logger = util.NopLogger()
	}
	settings := cfg.TimerSettings()
	store := session.NewStore(cfg.SessionPath(), session.Defaults(settings))
	data, err := store.Load()
	if err != nil {
		return tui.Deps{}, err
	}
	tm := timer.New(data.Settings(settings))
	ledger := points.NewLedger(data.TotalPoints, data.AvailablePoints)

	lib, err := garden.NewLibrary(cfg.LibraryConfig(), logger)
	if err != nil {
		return tui.Deps{}, err
	}
	if _, _, err := lib.Reconcile(); err != nil {
		util.LogError(logger, "reconcile garden metadata", err)
	}

	manager, err := prefs.Open(config.AppName)
	if err != nil {
		logger.Warnf("preferences unavailable, keeping them in memory: %v", err)
		manager = nil
	}

	return tui.Deps{
		Timer:       tm,
		Ledger:      ledger,
		Tracker:     tracking.New(tm, ledger, db, logger),
		Session:     store,
		SessionData: data,
		Projects:    db,
		Settings:    db,
		Library:     lib,
		Prefs:       prefs.NewStore(manager, prefs.Defaults(cfg.DefaultVegetation), logger),
		ReportsDir:  util.ReportsDir(config.AppName),
		Logger:      logger,
	}, nil
}

func exportBackup(ctx context.Context, db *database.Database, path string) error {
	payload, err := db.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Printf("Backup written to %s\n", path)
	return nil
}

func importBackup(ctx context.Context, db *database.Database, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if err := db.Import(ctx, payload); err != nil {
		return err
	}
	fmt.Printf("Backup restored from %s\n", path)
	return nil
}
