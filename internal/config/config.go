// Package config loads CLI settings from defaults, an optional YAML file,
// an optional .env file and INTAKE_* environment variables, in that order
// of precedence (later wins). Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intake/pkg/capacity"
	"github.com/goliatone/go-intake/pkg/forms"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "INTAKE_"

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Formats accepted for OutputFormat.
var Formats = []string{"json", "yaml", "pretty"}

// Window is an inclusive range of hours of the day.
type Window struct {
	Start int `yaml:"start" env:"START"`
	End   int `yaml:"end" env:"END"`
}

// Config holds the CLI settings.
type Config struct {
	LogLevel        string        `yaml:"logLevel" env:"LOG_LEVEL"`
	LogConsole      bool          `yaml:"logConsole" env:"LOG_CONSOLE"`
	LogFile         string        `yaml:"logFile" env:"LOG_FILE"`
	SaveDelay       time.Duration `yaml:"saveDelay" env:"SAVE_DELAY"`
	OutputFormat    string        `yaml:"outputFormat" env:"OUTPUT_FORMAT"`
	OutputPath      string        `yaml:"outputPath" env:"OUTPUT_PATH"`
	SessionFile     string        `yaml:"sessionFile" env:"SESSION_FILE"`
	HolidayYear     int           `yaml:"holidayYear" env:"HOLIDAY_YEAR"`
	OperatingWindow Window        `yaml:"operatingWindow" envPrefix:"OPERATING_"`
	PeakWindow      Window        `yaml:"peakWindow" envPrefix:"PEAK_"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		LogLevel:        "warn",
		LogConsole:      true,
		SaveDelay:       forms.DefaultSaveDelay,
		OutputFormat:    "json",
		OperatingWindow: Window(capacity.DefaultOperating),
		PeakWindow:      Window(capacity.DefaultPeak),
	}
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	file     string
	dotenv   []string
	environ  map[string]string
	optional bool
}

// WithFile overlays a YAML file on the defaults. A missing file is an
// error unless it is the implicit default path.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = strings.TrimSpace(path)
	}
}

// WithDotEnv reads the given .env files. Without it Load tries ".env" and
// ignores its absence.
func WithDotEnv(paths ...string) Option {
	return func(l *loader) {
		l.dotenv = paths
		l.optional = false
	}
}

// WithEnvironment replaces the process environment, mainly for tests.
// .env values are merged into it without overriding existing keys.
func WithEnvironment(environ map[string]string) Option {
	return func(l *loader) {
		l.environ = environ
	}
}

// Load resolves the configuration and validates it.
func Load(opts ...Option) (Config, error) {
	l := &loader{dotenv: []string{".env"}, optional: true}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	cfg := Defaults()
	if l.file != "" {
		if err := readFile(l.file, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := l.loadDotEnv(); err != nil {
		return Config{}, err
	}

	envOpts := env.Options{Prefix: EnvPrefix}
	if l.environ != nil {
		envOpts.Environment = l.environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (l *loader) loadDotEnv() error {
	var present []string
	for _, path := range l.dotenv {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) && l.optional {
				continue
			}
			return fmt.Errorf("config: dotenv %s: %w", path, err)
		}
		present = append(present, path)
	}
	if len(present) == 0 {
		return nil
	}

	if l.environ == nil {
		if err := godotenv.Load(present...); err != nil {
			return fmt.Errorf("config: dotenv: %w", err)
		}
		return nil
	}
	values, err := godotenv.Read(present...)
	if err != nil {
		return fmt.Errorf("config: dotenv: %w", err)
	}
	for key, value := range values {
		if _, ok := l.environ[key]; !ok {
			l.environ[key] = value
		}
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate rejects unknown formats and levels and inverted or out of range
// hour windows.
func (c Config) Validate() error {
	var problems []string
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("logLevel %q", c.LogLevel))
	}
	if !slices.Contains(Formats, c.OutputFormat) {
		problems = append(problems, fmt.Sprintf("outputFormat %q (want one of %s)", c.OutputFormat, strings.Join(Formats, ", ")))
	}
	if c.SaveDelay < 0 {
		problems = append(problems, "saveDelay must not be negative")
	}
	if c.HolidayYear != 0 && (c.HolidayYear < 1900 || c.HolidayYear > 2199) {
		problems = append(problems, fmt.Sprintf("holidayYear %d", c.HolidayYear))
	}
	if !c.OperatingWindow.valid() {
		problems = append(problems, fmt.Sprintf("operatingWindow %d-%d", c.OperatingWindow.Start, c.OperatingWindow.End))
	}
	if !c.PeakWindow.valid() {
		problems = append(problems, fmt.Sprintf("peakWindow %d-%d", c.PeakWindow.Start, c.PeakWindow.End))
	} else if c.PeakWindow.Start < c.OperatingWindow.Start || c.PeakWindow.End > c.OperatingWindow.End {
		problems = append(problems, "peakWindow must fall inside operatingWindow")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func (w Window) valid() bool {
	return w.Start >= 0 && w.End <= 23 && w.Start <= w.End
}

// Year returns HolidayYear, or the current year when unset.
func (c Config) Year() int {
	if c.HolidayYear != 0 {
		return c.HolidayYear
	}
	return time.Now().Year()
}

// ProjectionOptions maps the windows onto capacity projection options.
func (c Config) ProjectionOptions() []capacity.Option {
	return []capacity.Option{
		capacity.WithOperatingWindow(capacity.Window(c.OperatingWindow)),
		capacity.WithPeakWindow(capacity.Window(c.PeakWindow)),
	}
}
