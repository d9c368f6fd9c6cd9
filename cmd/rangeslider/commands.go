package main

import (
	"context"
	"io"
	"os"

	"rangeslider/internal/app"
	"rangeslider/internal/config"
	"rangeslider/internal/logging"
)

type commandRunner interface {
	Run(args []string) error
}

type uiRunner func(ctx context.Context, cfg config.Config, log logging.Logger, configPath string, opts ...app.ModelOption) error

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath func() (string, error)
	runUI      uiRunner
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		configPath: config.ConfigPath,
		runUI:      app.Run,
		version:    buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":       NewUICommand(wiring.stderr, wiring.configPath, wiring.runUI),
		"config":   NewConfigCommand(wiring.stdout, wiring.stderr, wiring.configPath),
		"simulate": NewSimulateCommand(wiring.stdout, wiring.stderr, wiring.configPath),
		"version":  NewVersionCommand(wiring.stdout, wiring.version),
	}
}
