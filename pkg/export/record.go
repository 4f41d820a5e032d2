package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intake/pkg/profile"
)

// JSON writes the aggregate as indented JSON.
type JSON struct{}

func (JSON) Name() string        { return "json" }
func (JSON) ContentType() string { return "application/json" }

func (JSON) Render(_ context.Context, p profile.Profile) ([]byte, error) {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// YAML writes the aggregate as a YAML document.
type YAML struct{}

func (YAML) Name() string        { return "yaml" }
func (YAML) ContentType() string { return "application/yaml" }

func (YAML) Render(_ context.Context, p profile.Profile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("export: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads a profile written by the json or yaml renderers. Unknown
// keys are rejected so typos in hand edited files surface early.
func Decode(data []byte) (profile.Profile, error) {
	var p profile.Profile
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return p, errors.New("export: empty document")
	}

	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return profile.Profile{}, fmt.Errorf("export: decode json: %w", err)
		}
		return p, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(trimmed))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return profile.Profile{}, fmt.Errorf("export: decode yaml: %w", err)
	}
	return p, nil
}
