package forms

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/validation"
)

// Page declares one topic form: how to seed it, how to normalise and
// derive fields before validation, and any check that needs facts from
// earlier pages.
type Page[T any] struct {
	Key      profile.TopicKey
	Defaults func() T
	// Normalize runs on a copy before validation. It clears fields hidden
	// by the current selections and recomputes derived values.
	Normalize func(T, Context) T
	// Check adds issues that cannot be expressed on the record alone.
	Check func(T, Context) validation.Result
}

// Handle is the type-erased view of a form used by the wizard runner.
type Handle interface {
	Key() profile.TopicKey
	Value() any
	Validate() validation.Result
	Issues() validation.Result
	Edit(fn func(record any) error) (validation.Result, error)
	Submitting() bool
	Submit(ctx context.Context) error
}

// Form holds the editing state of one page. It is meant for a single
// operator; the mutex only guards against a stray Update during a save.
type Form[T any] struct {
	page Page[T]
	cfg  config

	mu     sync.Mutex
	draft  T
	result validation.Result

	submitting atomic.Bool
}

// New creates a form seeded from the page defaults or, when WithPrior
// carries a record of the right type, from that record.
func New[T any](page Page[T], opts ...Option) *Form[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Form[T]{page: page, cfg: cfg}
	switch prior := cfg.prior.(type) {
	case T:
		f.draft = profile.Clone(prior)
	case *T:
		if prior != nil {
			f.draft = profile.Clone(*prior)
		} else {
			f.draft = f.defaults()
		}
	default:
		f.draft = f.defaults()
	}
	f.result = validation.Result{Valid: true}
	return f
}

func (f *Form[T]) defaults() T {
	if f.page.Defaults != nil {
		return f.page.Defaults()
	}
	var zero T
	return zero
}

// Key returns the topic the form edits.
func (f *Form[T]) Key() profile.TopicKey { return f.page.Key }

// Context returns the facts passed in from earlier pages.
func (f *Form[T]) Context() Context { return f.cfg.context }

// Draft returns a copy of the current editing state.
func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return profile.Clone(f.draft)
}

// Value is Draft for callers that only hold a Handle.
func (f *Form[T]) Value() any { return f.Draft() }

// Preview returns the draft as it would be submitted, derived fields
// included.
func (f *Form[T]) Preview() T {
	return f.prepare(f.Draft())
}

// Update applies fn to the draft and re-runs validation so cross-field
// issues follow every change.
func (f *Form[T]) Update(fn func(*T)) validation.Result {
	f.mu.Lock()
	if fn != nil {
		fn(&f.draft)
	}
	draft := profile.Clone(f.draft)
	f.mu.Unlock()

	result := f.check(f.prepare(draft))

	f.mu.Lock()
	f.result = result
	f.mu.Unlock()
	return result
}

// Edit hands a pointer to a copy of the draft to fn, which may walk it
// reflectively. The copy replaces the draft only when fn succeeds, so an
// aborted prompt leaves the previous draft in place.
func (f *Form[T]) Edit(fn func(record any) error) (validation.Result, error) {
	draft := f.Draft()
	if fn != nil {
		if err := fn(&draft); err != nil {
			return f.Issues(), err
		}
	}
	return f.Update(func(t *T) { *t = draft }), nil
}

// Validate checks the current draft without submitting it.
func (f *Form[T]) Validate() validation.Result {
	return f.Update(nil)
}

// Issues returns the result of the last validation.
func (f *Form[T]) Issues() validation.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Submitting reports whether a save is in flight.
func (f *Form[T]) Submitting() bool { return f.submitting.Load() }

// Submit normalises and validates the draft. Invalid drafts return a
// *ValidationError listing every issue. Valid drafts go through the save
// step and are then handed to the OnNext callback exactly once.
func (f *Form[T]) Submit(ctx context.Context) error {
	if !f.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer f.submitting.Store(false)

	record := f.prepare(f.Draft())
	result := f.check(record)

	f.mu.Lock()
	f.result = result
	f.mu.Unlock()

	log := f.cfg.logger.With(zap.String("topic", string(f.page.Key)))
	if !result.Valid {
		log.Debug("submit rejected", zap.Int("issues", len(result.Issues)))
		return &ValidationError{Topic: f.page.Key, Result: result}
	}

	if err := f.save(ctx, record); err != nil {
		log.Warn("save failed", zap.Error(err))
		return err
	}

	f.mu.Lock()
	f.draft = profile.Clone(record)
	f.mu.Unlock()

	if f.cfg.next != nil {
		if err := f.cfg.next(f.page.Key, record); err != nil {
			return fmt.Errorf("forms: advance %s: %w", f.page.Key, err)
		}
	}
	log.Debug("submit accepted")
	return nil
}

func (f *Form[T]) prepare(record T) T {
	f.cfg.sanitizer.Apply(&record)
	if f.page.Normalize != nil {
		record = f.page.Normalize(record, f.cfg.context)
	}
	return record
}

func (f *Form[T]) check(record T) validation.Result {
	result := profile.Validate(record)
	if f.page.Check != nil {
		result = result.Merge(f.page.Check(record, f.cfg.context))
	}
	return result
}

func (f *Form[T]) save(ctx context.Context, record T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SaveError{Topic: f.page.Key, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if f.cfg.delay > 0 {
		timer := time.NewTimer(f.cfg.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if f.cfg.save != nil {
		if err := f.cfg.save(ctx, f.page.Key, record); err != nil {
			return &SaveError{Topic: f.page.Key, Err: err}
		}
	}
	return nil
}
