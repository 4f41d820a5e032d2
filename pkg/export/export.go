// Package export turns a collected profile into files: JSON and YAML
// records, a plain-text review summary, and an OpenAPI 3 description of
// the record shape.
package export

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-intake/pkg/profile"
)

// ErrUnknownFormat is returned by Registry.Get for unregistered names.
var ErrUnknownFormat = errors.New("export: unknown format")

// Renderer encodes a profile in one output format.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p profile.Profile) ([]byte, error)
}

// Registry maps format names (as passed to -format) to renderers. It is
// filled once at startup and read afterwards.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry returns a registry holding the given renderers.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Renderer, len(renderers))}
	if err := reg.Register(renderers...); err != nil {
		return nil, err
	}
	return reg, nil
}

// Register adds renderers under their Name. A blank or taken name fails
// and leaves the registry unchanged.
func (r *Registry) Register(renderers ...Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]Renderer, len(renderers))
	for _, renderer := range renderers {
		if renderer == nil {
			return errors.New("export: renderer is required")
		}
		name := renderer.Name()
		if name == "" {
			return errors.New("export: renderer name is required")
		}
		if _, taken := r.byName[name]; taken {
			return fmt.Errorf("export: format %q already registered", name)
		}
		if _, taken := pending[name]; taken {
			return fmt.Errorf("export: format %q registered twice", name)
		}
		pending[name] = renderer
	}
	for name, renderer := range pending {
		r.byName[name] = renderer
	}
	return nil
}

// Get returns the renderer for format or an error wrapping
// ErrUnknownFormat.
func (r *Registry) Get(format string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[format]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, format, r.Formats())
	}
	return renderer, nil
}

// Render encodes p in the named format.
func (r *Registry) Render(ctx context.Context, format string, p profile.Profile) ([]byte, error) {
	renderer, err := r.Get(format)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("export: render %s: %w", format, err)
	}
	return data, nil
}

// Formats lists the registered names in alphabetical order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a registry with the json, yaml and pretty renderers.
func Default(opts ...PrettyOption) (*Registry, error) {
	pretty, err := NewPretty(opts...)
	if err != nil {
		return nil, err
	}
	return NewRegistry(JSON{}, YAML{}, pretty)
}
