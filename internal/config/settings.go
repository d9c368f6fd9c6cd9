package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"rangeslider/internal/slider"
)

const (
	defaultLogLevel      = "info"
	defaultMarkdownStyle = "dark"
	defaultPrecision     = 1
	maxPrecision         = 6
)

type Config struct {
	Range   RangeConfig   `json:"range" toml:"range"`
	Drag    DragConfig    `json:"drag" toml:"drag"`
	Logging LoggingConfig `json:"logging" toml:"logging"`
	UI      UIConfig      `json:"ui" toml:"ui"`
}

type RangeConfig struct {
	Min      float64 `json:"min" toml:"min"`
	Max      float64 `json:"max" toml:"max"`
	Start    float64 `json:"start" toml:"start"`
	End      float64 `json:"end" toml:"end"`
	MinWidth float64 `json:"min_width" toml:"min_width"`
	// MaxWidth <= 0 leaves the selection width unbounded.
	MaxWidth float64 `json:"max_width" toml:"max_width"`
}

type DragConfig struct {
	SpeedFactor    float64 `json:"speed_factor" toml:"speed_factor"`
	TickIntervalMS int     `json:"tick_interval_ms" toml:"tick_interval_ms"`
}

type LoggingConfig struct {
	Level string `json:"level" toml:"level"`
	File  string `json:"file" toml:"file"`
}

type UIConfig struct {
	// TrackWidth <= 0 sizes the track to the terminal.
	TrackWidth    int    `json:"track_width" toml:"track_width"`
	ShowHelp      bool   `json:"show_help" toml:"show_help"`
	MarkdownStyle string `json:"markdown_style" toml:"markdown_style"`
	Precision     int    `json:"precision" toml:"precision"`
}

func DefaultConfig() Config {
	return Config{
		Range: RangeConfig{
			Min:      slider.DefaultMin,
			Max:      slider.DefaultMax,
			Start:    slider.DefaultStart,
			End:      slider.DefaultEnd,
			MinWidth: slider.DefaultMinWidth,
		},
		Drag: DragConfig{
			SpeedFactor:    slider.DefaultSpeedFactor,
			TickIntervalMS: int(slider.DefaultTickInterval / time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		UI: UIConfig{
			ShowHelp:      true,
			MarkdownStyle: defaultMarkdownStyle,
			Precision:     defaultPrecision,
		},
	}
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads path over the defaults. A missing or empty file
// yields the defaults.
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// State converts the range section into a slider state. Out-of-range values
// are clamped later by the slider itself.
func (c RangeConfig) State() slider.State {
	maxWidth := c.MaxWidth
	if maxWidth <= 0 {
		maxWidth = math.Inf(1)
	}
	return slider.State{
		Min:      c.Min,
		Max:      c.Max,
		Start:    c.Start,
		End:      c.End,
		MinWidth: c.MinWidth,
		MaxWidth: maxWidth,
	}
}

func (c DragConfig) Options() slider.Options {
	return slider.Options{
		SpeedFactor:  c.SpeedFactor,
		TickInterval: c.TickInterval(),
	}
}

func (c DragConfig) TickInterval() time.Duration {
	if c.TickIntervalMS <= 0 {
		return slider.DefaultTickInterval
	}
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

func (c LoggingConfig) LogLevel() string {
	level := strings.TrimSpace(c.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

// ResolveFile returns the log file path, relative paths being rooted in DataDir.
func (c LoggingConfig) ResolveFile() (string, error) {
	path := strings.TrimSpace(c.File)
	if path == "" {
		return DefaultLogPath()
	}
	return resolveConfigPath(path)
}

func (c UIConfig) Style() string {
	switch strings.ToLower(strings.TrimSpace(c.MarkdownStyle)) {
	case "light":
		return "light"
	case "notty", "ascii":
		return "notty"
	default:
		return defaultMarkdownStyle
	}
}

func (c UIConfig) ValuePrecision() int {
	if c.Precision < 0 {
		return 0
	}
	if c.Precision > maxPrecision {
		return maxPrecision
	}
	return c.Precision
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
