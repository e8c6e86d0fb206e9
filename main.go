package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/game"
	"github.com/iburimskiy/animation-gallery/internal/term"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	Scene   int    `short:"s" help:"Scene to open first (0-6), overrides the configuration" default:"-1"`
	Mute    bool   `short:"m" help:"Start with audio muted"`

	Window struct{} `cmd:"" default:"1" help:"Open the animation gallery in a window"`

	Term struct {
		LogFile string `help:"Write logs to this file while the terminal is in use"`
	} `cmd:"" help:"Run the press-and-hold scene in the terminal"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Write a configuration file with the default settings"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("animation-gallery"),
		kong.Description("A gallery of small animations ending in a press-and-hold ring."),
	)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	var err error
	switch ctx.Command() {
	case "window":
		err = runWindow(logger)
	case "term":
		err = runTerm(logLevel)
	case "init":
		err = runInit(CLI.Config, CLI.Init.Force)
	}
	if err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if CLI.Scene >= 0 {
		cfg.Scene = CLI.Scene
	}
	if CLI.Mute {
		cfg.Audio.Muted = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// watchConfig starts hot reload. Failure only disables reloading.
func watchConfig(ctx context.Context) <-chan *config.Config {
	updates, err := config.Watch(ctx, CLI.Config)
	if err != nil {
		slog.Warn("Configuration hot reload disabled", "error", err)
		return nil
	}
	return updates
}

func runWindow(logger *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return game.New(ctx, cfg, logger, watchConfig(ctx)).Run()
}

func runTerm(level slog.Level) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stderr is the screen from here on
	var out io.Writer = io.Discard
	if CLI.Term.LogFile != "" {
		f, err := os.OpenFile(CLI.Term.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.New(screen, cfg, logger, watchConfig(ctx)).Run(ctx)
}

func runInit(path string, force bool) error {
	cfg := config.Default()
	if CLI.Mute {
		cfg.Audio.Muted = true
	}
	if CLI.Scene >= 0 {
		cfg.Scene = CLI.Scene
	}
	if err := config.Write(path, cfg, force); err != nil {
		return err
	}
	slog.Info("Configuration file created", "path", path)
	return nil
}
