// Package config binds the clock's flags and WORDCLOCK_* environment
// variables and validates them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"

	"wordclock/internal/display"
	"wordclock/internal/logger"
	"wordclock/internal/wordclock"
)

// EnvPrefix prefixes every environment variable, e.g. WORDCLOCK_VARIANT.
const EnvPrefix = "WORDCLOCK"

const (
	defaultRefresh = time.Second
	defaultAddr    = ":8080"
)

// Flags holds the raw option values as parsed.
type Flags struct {
	Variant    string
	Color      string
	Brightness string
	Refresh    time.Duration
	Timezone   string
	Addr       string
	Seed       int64
	LogLevel   string
	LogFile    string
	Env        string
}

// Register binds every option to fset and returns the destination.
func Register(fset *flag.FlagSet) *Flags {
	f := &Flags{}
	fset.StringVar(&f.Variant, "variant", string(wordclock.DefaultVariant), "Board variant: standard or dialect")
	fset.StringVar(&f.Color, "color", display.DefaultColor, "Lit letter colour (#rrggbb, rgb(r, g, b) or a name)")
	fset.StringVar(&f.Brightness, "brightness", "medium", "Brightness: low, medium, high or 0-100")
	fset.DurationVar(&f.Refresh, "refresh", defaultRefresh, "Interval between renders")
	fset.StringVar(&f.Timezone, "timezone", "Local", "IANA time zone the clock shows")
	fset.StringVar(&f.Addr, "addr", defaultAddr, "HTTP listen address for serve")
	fset.Int64Var(&f.Seed, "seed", 0, "Lead-in coin seed (0 seeds from the clock)")
	fset.StringVar(&f.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fset.StringVar(&f.LogFile, "log-file", "", "Log destination (default stderr)")
	fset.StringVar(&f.Env, "env", "development", "Environment: development or production")
	return f
}

// Options are the ff options every command parses with.
func Options() []ff.Option {
	return []ff.Option{ff.WithEnvVarPrefix(EnvPrefix)}
}

// LoadDotEnv loads WORDCLOCK_* variables from .env files when present.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Config is the validated configuration.
type Config struct {
	Variant    wordclock.Variant
	Color      tcell.Color
	Brightness display.Brightness
	Refresh    time.Duration
	Location   *time.Location
	Addr       string
	Seed       int64
	Log        logger.Options
}

// Resolve validates f.
func (f *Flags) Resolve() (*Config, error) {
	variant, err := wordclock.ParseVariant(f.Variant)
	if err != nil {
		return nil, fmt.Errorf("variant: %w", err)
	}
	color, err := display.ParseColor(f.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	brightness, err := display.ParseBrightness(f.Brightness)
	if err != nil {
		return nil, fmt.Errorf("brightness: %w", err)
	}
	if f.Refresh <= 0 {
		return nil, fmt.Errorf("refresh must be positive, got %s", f.Refresh)
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	seed := f.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Config{
		Variant:    variant,
		Color:      color,
		Brightness: brightness,
		Refresh:    f.Refresh,
		Location:   loc,
		Addr:       f.Addr,
		Seed:       seed,
		Log: logger.Options{
			Level:  f.LogLevel,
			Env:    f.Env,
			Output: f.LogFile,
		},
	}, nil
}
