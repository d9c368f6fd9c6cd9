package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"rangeslider/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath func() (string, error)
}

func NewConfigCommand(stdout, stderr io.Writer, configPath func() (string, error)) *ConfigCommand {
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		configPath: configPath,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	path := fs.String("config", "", "config file to read (default ~/.rangeslider/config.toml)")
	printPath := fs.Bool("path", false, "print the config file path and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *printPath {
		resolved := strings.TrimSpace(*path)
		if resolved == "" {
			var err error
			resolved, err = c.configPath()
			if err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(c.stdout, resolved)
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	cfg := config.DefaultConfig()
	if !*defaults {
		cfg, _, err = loadConfig(*path, c.configPath)
		if err != nil {
			return err
		}
	}
	return writeConfigOutput(c.stdout, resolvedFormat, cfg)
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
