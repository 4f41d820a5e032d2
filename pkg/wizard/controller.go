// Package wizard sequences the intake topics and accumulates the submitted
// sub-records into one profile.
package wizard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/logging"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/wizard/internal/harness"
)

// ErrInvalidSnapshot is returned by Restore for out of range cursors or
// malformed session ids.
var ErrInvalidSnapshot = errors.New("wizard: invalid snapshot")

// Step describes the topic under the cursor.
type Step struct {
	Index       int              `json:"index"`
	Total       int              `json:"total"`
	Key         profile.TopicKey `json:"key"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// First reports whether Retreat would be a no-op.
func (s Step) First() bool { return s.Index == 1 }

// Last reports whether the next Advance completes the profile.
func (s Step) Last() bool { return s.Index == s.Total }

// CompleteFunc receives a copy of the finished profile.
type CompleteFunc func(profile.Profile)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnComplete registers the callback fired when the last topic is
// submitted.
func WithOnComplete(fn CompleteFunc) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// WithSessionID pins the session id, mostly for tests.
func WithSessionID(id uuid.UUID) Option {
	return func(c *Controller) {
		c.session = id
	}
}

// Controller owns the step cursor and the aggregate profile. It is not
// safe for concurrent use; a single operator drives it.
type Controller struct {
	cursor     int
	aggregate  profile.Profile
	completed  bool
	session    uuid.UUID
	logger     *logging.Logger
	onComplete CompleteFunc
}

// New starts a session on the first topic with an empty profile.
func New(opts ...Option) *Controller {
	c := &Controller{
		cursor:  1,
		session: uuid.New(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Advance stores record under key and moves to the next topic. On the last
// topic the cursor stays put and the completion callback fires. Records
// reaching Advance were validated by their form; errors only signal a key
// outside the topic list or a record of the wrong type.
func (c *Controller) Advance(key profile.TopicKey, record any) error {
	if err := c.aggregate.Set(key, record); err != nil {
		return fmt.Errorf("wizard: advance: %w", err)
	}

	from := c.cursor
	if c.cursor < profile.TopicCount {
		c.cursor++
		c.logger.Info("step advanced",
			zap.String("session", c.session.String()),
			zap.String("topic", string(key)),
			zap.Int("from", from),
			zap.Int("to", c.cursor),
		)
		return nil
	}

	c.completed = true
	c.logger.Info("profile completed",
		zap.String("session", c.session.String()),
		zap.Int("topics", c.aggregate.Len()),
	)
	if c.onComplete != nil {
		c.onComplete(c.aggregate.Clone())
	}
	return nil
}

// Retreat moves back one topic. The profile is left untouched.
func (c *Controller) Retreat() {
	if c.cursor <= 1 {
		return
	}
	c.cursor--
	c.logger.Info("step retreated",
		zap.String("session", c.session.String()),
		zap.Int("to", c.cursor),
	)
}

// Progress is the cursor over the topic count, in (0, 1].
func (c *Controller) Progress() float64 {
	return float64(c.cursor) / float64(profile.TopicCount)
}

// Cursor returns the 1-based step index.
func (c *Controller) Cursor() int { return c.cursor }

// Current describes the topic under the cursor.
func (c *Controller) Current() Step {
	topic, _ := profile.TopicAt(c.cursor)
	return Step{
		Index:       c.cursor,
		Total:       profile.TopicCount,
		Key:         topic.Key,
		Title:       topic.Title,
		Description: topic.Description,
	}
}

// Profile returns a copy of the aggregate.
func (c *Controller) Profile() profile.Profile {
	return c.aggregate.Clone()
}

// Completed reports whether the last topic has been submitted.
func (c *Controller) Completed() bool { return c.completed }

// SessionID identifies the session across snapshots.
func (c *Controller) SessionID() uuid.UUID { return c.session }

// PageContext collects facts later pages validate against.
func (c *Controller) PageContext() forms.Context {
	var ctx forms.Context
	if c.aggregate.Services != nil {
		ctx.ServiceNames = c.aggregate.Services.Names()
	}
	return ctx
}

// Form builds the page for the current topic, seeded with the stored
// record when the operator comes back to it, and wired to Advance.
func (c *Controller) Form(opts ...forms.Option) (forms.Handle, error) {
	step := c.Current()
	base := []forms.Option{
		forms.WithLogger(c.logger),
		forms.WithContext(c.PageContext()),
		forms.OnNext(c.Advance),
	}
	if prior, ok := c.aggregate.Get(step.Key); ok {
		base = append(base, forms.WithPrior(prior))
	}
	return forms.Build(step.Key, append(base, opts...)...)
}

func init() {
	harness.Jump = func(target any, step int, p profile.Profile) error {
		c, ok := target.(*Controller)
		if !ok || c == nil {
			return fmt.Errorf("wizard: jump needs a *Controller, got %T", target)
		}
		return c.forceState(step, p)
	}
}

// forceState replaces the cursor and aggregate wholesale, skipping page
// validation. Only wizardtest reaches it, through harness.Jump.
func (c *Controller) forceState(step int, p profile.Profile) error {
	if step < 1 || step > profile.TopicCount {
		return fmt.Errorf("%w: step %d", ErrInvalidSnapshot, step)
	}
	c.cursor = step
	c.aggregate = p.Clone()
	c.completed = false
	c.logger.Debug("state forced", zap.Int("step", step), zap.Int("topics", p.Len()))
	return nil
}
