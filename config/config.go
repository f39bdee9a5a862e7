// Package config loads the favbtn configuration from a TOML file, a .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/favorite"
	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/internal/logging"
)

// Environment overrides, applied after the file.
const (
	EnvDuration = "FAVBTN_DURATION"
	EnvLogLevel = "FAVBTN_LOG_LEVEL"
)

// DefaultFile is the config file name the CLI looks for.
const DefaultFile = "favbtn.toml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config represents the favbtn.toml configuration file
type Config struct {
	Button    ButtonConfig       `toml:"button"`
	Timelines map[string]float64 `toml:"timelines"`
	Log       LogConfig          `toml:"log"`
}

type ButtonConfig struct {
	// Colors are hex strings (#rrggbb or #rgb)
	ImageColorOn  string `toml:"image_color_on"`
	ImageColorOff string `toml:"image_color_off"`
	CircleColor   string `toml:"circle_color"`
	LineColor     string `toml:"line_color"`

	// Global duration as a Go duration string
	Duration string `toml:"duration"`
	// Easing name: linear, ease-in, ease-out, ease-in-out, ease-out-cubic or back
	Easing string `toml:"easing"`

	ToggleOnTap bool    `toml:"toggle_on_tap"`
	DimAlpha    float64 `toml:"dim_alpha"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

// Default returns the stock configuration.
func Default() *Config {
	fractions := make(map[string]float64, len(favorite.DefaultFractions))
	for k, v := range favorite.DefaultFractions {
		fractions[k] = v
	}
	return &Config{
		Button: ButtonConfig{
			ImageColorOn:  formatColor(favorite.DefaultImageColorOn),
			ImageColorOff: formatColor(favorite.DefaultImageColorOff),
			CircleColor:   formatColor(favorite.DefaultCircleColor),
			LineColor:     formatColor(favorite.DefaultLineColor),
			Duration:      favorite.DefaultDuration.String(),
			Easing:        "linear",
			ToggleOnTap:   true,
			DimAlpha:      favorite.DefaultDimAlpha,
		},
		Timelines: fractions,
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load builds a config from defaults, the .env file in the working
// directory, the TOML file at path and the environment, in that order.
// A missing .env or config file is not an error.
func Load(path string) (*Config, error) {
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		default:
			if err := Parse(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg. Keys absent from data keep their
// current values.
func Parse(data []byte, cfg *Config) error {
	return toml.Unmarshal(data, cfg)
}

// Marshal encodes cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDuration); ok && v != "" {
		c.Button.Duration = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks every field and reports the first invalid one.
func (c *Config) Validate() error {
	colors := []struct {
		field, value string
	}{
		{"button.image_color_on", c.Button.ImageColorOn},
		{"button.image_color_off", c.Button.ImageColorOff},
		{"button.circle_color", c.Button.CircleColor},
		{"button.line_color", c.Button.LineColor},
	}
	for _, col := range colors {
		if _, err := parseColor(col.value); err != nil {
			return invalid(col.field, err)
		}
	}

	if _, err := c.duration(); err != nil {
		return invalid("button.duration", err)
	}
	if anim.EasingByName(c.Button.Easing) == nil {
		return invalid("button.easing", fmt.Errorf("unknown easing %q", c.Button.Easing))
	}
	if c.Button.DimAlpha <= 0 || c.Button.DimAlpha > 1 {
		return invalid("button.dim_alpha", fmt.Errorf("%v is outside (0, 1]", c.Button.DimAlpha))
	}

	names := make([]string, 0, len(c.Timelines))
	for name := range c.Timelines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := favorite.DefaultFractions[name]; !ok {
			return invalid("timelines."+name, errors.New("unknown timeline"))
		}
		if f := c.Timelines[name]; f <= 0 {
			return invalid("timelines."+name, fmt.Errorf("fraction %v must be positive", f))
		}
	}

	if _, err := logging.ParseLevel(logging.Level(c.Log.Level)); err != nil {
		return invalid("log.level", err)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return invalid("log", errors.New("rotation limits must not be negative"))
	}
	return nil
}

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalid, field, err)
}

func (c *Config) duration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Button.Duration)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%v must be positive", d)
	}
	return d, nil
}

// parseColor accepts #rrggbb and #rgb, with or without the leading '#'.
func parseColor(s string) (anim.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return anim.Color{}, err
	}
	r, g, b := c.RGB255()
	return anim.RGB(r, g, b), nil
}

func formatColor(c anim.Color) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Theme converts the button section into a favorite.Theme. The config must
// have passed Validate.
func (c *Config) Theme() (favorite.Theme, error) {
	t := favorite.Theme{
		Easing:      c.Button.Easing,
		DimAlpha:    c.Button.DimAlpha,
		ToggleOnTap: favorite.Bool(c.Button.ToggleOnTap),
		Fractions:   make(map[string]float64, len(c.Timelines)),
	}
	var err error
	if t.ImageColorOn, err = parseColor(c.Button.ImageColorOn); err != nil {
		return t, invalid("button.image_color_on", err)
	}
	if t.ImageColorOff, err = parseColor(c.Button.ImageColorOff); err != nil {
		return t, invalid("button.image_color_off", err)
	}
	if t.CircleColor, err = parseColor(c.Button.CircleColor); err != nil {
		return t, invalid("button.circle_color", err)
	}
	if t.LineColor, err = parseColor(c.Button.LineColor); err != nil {
		return t, invalid("button.line_color", err)
	}
	if t.Duration, err = c.duration(); err != nil {
		return t, invalid("button.duration", err)
	}
	for k, v := range c.Timelines {
		t.Fractions[k] = v
	}
	return t, nil
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      logging.Level(c.Log.Level),
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}
