package tui

import (
	"github.com/goliatone/go-intake/pkg/capacity"
	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/logging"
	"github.com/goliatone/go-intake/pkg/uischema"
)

// Theme captures optional formatting hints the driver can apply when
// printing messages. Keep minimal to avoid coupling runner logic to ANSI
// specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme marks errors and notices with plain text prefixes.
var DefaultTheme = Theme{
	InfoPrefix:  "ℹ ",
	ErrorPrefix: "✖ ",
}

// Option configures the runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithSchema replaces the embedded prompt overlay.
func WithSchema(store *uischema.Store) Option {
	return func(r *Runner) {
		if store != nil {
			r.schema = store
		}
	}
}

// WithLogger sets the runner logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFormOptions forwards options to every page form, e.g. the save delay.
func WithFormOptions(opts ...forms.Option) Option {
	return func(r *Runner) {
		r.formOpts = append(r.formOpts, opts...)
	}
}

// WithProjection passes options to the capacity preview.
func WithProjection(opts ...capacity.Option) Option {
	return func(r *Runner) {
		r.projection = append(r.projection, opts...)
	}
}

// WithYear fixes the year offered for national holidays.
func WithYear(year int) Option {
	return func(r *Runner) {
		if year > 0 {
			r.year = year
		}
	}
}
