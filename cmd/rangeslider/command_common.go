package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"rangeslider/internal/config"
)

const version = "dev"

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

// loadConfig reads path when given and the default config file otherwise.
func loadConfig(path string, defaultPath func() (string, error)) (config.Config, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		resolved, err := defaultPath()
		if err != nil {
			return config.Config{}, "", err
		}
		path = resolved
	}
	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}

type VersionCommand struct {
	stdout  io.Writer
	version string
}

func NewVersionCommand(stdout io.Writer, version string) *VersionCommand {
	return &VersionCommand{stdout: stdout, version: version}
}

func (c *VersionCommand) Run(args []string) error {
	_, err := fmt.Fprintln(c.stdout, c.version)
	return err
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
