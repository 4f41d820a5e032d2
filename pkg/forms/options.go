package forms

import (
	"context"
	"time"

	"github.com/goliatone/go-intake/pkg/logging"
	"github.com/goliatone/go-intake/pkg/profile"
)

// DefaultSaveDelay is the simulated save latency.
const DefaultSaveDelay = time.Second

// NextFunc receives a validated sub-record. The wizard controller's Advance
// satisfies it.
type NextFunc func(key profile.TopicKey, record any) error

// SaveFunc runs inside the save step after the delay. Errors and panics
// become a *SaveError.
type SaveFunc func(ctx context.Context, key profile.TopicKey, record any) error

// Context carries read-only facts from earlier pages.
type Context struct {
	ServiceNames []string
	Year         int
}

// Option configures a form.
type Option func(*config)

type config struct {
	delay     time.Duration
	logger    *logging.Logger
	sanitizer *Sanitizer
	save      SaveFunc
	next      NextFunc
	context   Context
	prior     any
}

func defaultConfig() config {
	return config{
		delay:     DefaultSaveDelay,
		logger:    logging.Nop(),
		sanitizer: NewSanitizer(),
		context:   Context{Year: time.Now().Year()},
	}
}

// WithSaveDelay overrides the simulated latency. Zero disables it.
func WithSaveDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSanitizer replaces the default strict sanitizer.
func WithSanitizer(s *Sanitizer) Option {
	return func(c *config) {
		if s != nil {
			c.sanitizer = s
		}
	}
}

// WithSaveHook runs fn during the save step.
func WithSaveHook(fn SaveFunc) Option {
	return func(c *config) {
		c.save = fn
	}
}

// OnNext registers the callback fired once per successful submit.
func OnNext(fn NextFunc) Option {
	return func(c *config) {
		c.next = fn
	}
}

// WithContext passes facts collected by earlier pages.
func WithContext(ctx Context) Option {
	return func(c *config) {
		if ctx.Year == 0 {
			ctx.Year = c.context.Year
		}
		c.context = ctx
	}
}

// WithPrior seeds the draft from a previously submitted record. Records of
// another topic type are ignored and the page defaults are used.
func WithPrior(record any) Option {
	return func(c *config) {
		c.prior = record
	}
}
