package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"rangeslider/internal/app"
	"rangeslider/internal/logging"
)

type UICommand struct {
	stderr     io.Writer
	configPath func() (string, error)
	runUI      uiRunner
}

func NewUICommand(stderr io.Writer, configPath func() (string, error), runUI uiRunner) *UICommand {
	return &UICommand{
		stderr:     stderr,
		configPath: configPath,
		runUI:      runUI,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	path := fs.String("config", "", "config file (default ~/.rangeslider/config.toml)")
	level := fs.String("log-level", "", "log level: debug|info|warn|error")
	trackWidth := fs.Int("track-width", 0, "fixed track width in cells (0 follows the terminal)")
	noWatch := fs.Bool("no-watch", false, "do not reload the config file when it changes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, resolvedPath, err := loadConfig(*path, c.configPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(*level) != "" {
		cfg.Logging.Level = *level
	}
	var opts []app.ModelOption
	if *trackWidth > 0 {
		cfg.UI.TrackWidth = *trackWidth
		opts = append(opts, app.WithTrackWidthOverride(*trackWidth))
	}

	logger := logging.Nop()
	if logPath, err := cfg.Logging.ResolveFile(); err != nil {
		fmt.Fprintf(c.stderr, "logging disabled: %v\n", err)
	} else {
		fileLogger, closer, err := logging.OpenFile(logPath, logging.ParseLevel(cfg.Logging.LogLevel()))
		if err != nil {
			fmt.Fprintf(c.stderr, "logging disabled: %v\n", err)
		} else {
			defer closer.Close()
			logger = fileLogger
		}
	}

	if *noWatch {
		resolvedPath = ""
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("ui start", logging.F("config", resolvedPath))
	return c.runUI(ctx, cfg, logger, resolvedPath, opts...)
}
