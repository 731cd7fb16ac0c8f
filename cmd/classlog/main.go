package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmfalcao/classlog/internal/cli"
	"github.com/dmfalcao/classlog/internal/config"
	"github.com/dmfalcao/classlog/internal/db"
	"github.com/dmfalcao/classlog/internal/repository"
	"github.com/dmfalcao/classlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(os.Stderr)

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, userRepo, observer),
		Reports:  service.NewReportService(sessionRepo, cfg.Report.Filename, observer),
		Users:    service.NewUserService(userRepo, uow),
		Config:   cfg,
		Logger:   logger,
	}

	// Detect interactive terminal for the session-open form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
