package uischema

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no schema files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{topics: make(map[string]Topic)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for key, raw := range doc.Topics {
			id := strings.TrimSpace(key)
			if id == "" {
				return fmt.Errorf("uischema: file %s defines an empty topic key", path)
			}
			if _, exists := store.topics[id]; exists {
				return fmt.Errorf("uischema: duplicate topic %q (file %s)", id, path)
			}

			topic, err := normaliseTopic(raw, id, path)
			if err != nil {
				return err
			}
			store.topics[id] = topic
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Topic returns the overlay for the supplied topic key.
func (s *Store) Topic(key string) (Topic, bool) {
	if s == nil {
		return Topic{}, false
	}
	topic, ok := s.topics[key]
	return topic, ok
}

// Field returns the config for a record path within a topic. Paths may
// carry indices; they are normalised first.
func (s *Store) Field(topic, path string) FieldConfig {
	t, ok := s.Topic(topic)
	if !ok {
		return FieldConfig{}
	}
	return t.Fields[NormalizeFieldPath(path)]
}

// Empty reports whether the store holds any topics.
func (s *Store) Empty() bool {
	return s == nil || len(s.topics) == 0
}

type documentFile struct {
	Topics map[string]topicFile `json:"topics" yaml:"topics"`
}

type topicFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// parseDocument decodes JSON or YAML (JSON is valid YAML) and rejects
// unknown keys so a misspelt "labelsFrom" fails instead of being ignored.
func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, fmt.Errorf("uischema: file %s is empty", source)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return documentFile{}, fmt.Errorf("uischema: parse %s: %w", source, err)
	}
	if doc.Topics == nil {
		return documentFile{}, fmt.Errorf("uischema: file %s has no topics", source)
	}
	return doc, nil
}

func normaliseTopic(raw topicFile, key, source string) (Topic, error) {
	topic := Topic{
		Key:    key,
		Source: source,
		Form:   raw.Form,
		Fields: make(map[string]FieldConfig, len(raw.Fields)),
	}

	for path, cfg := range raw.Fields {
		normalised := NormalizeFieldPath(path)
		if normalised == "" {
			return Topic{}, fmt.Errorf("uischema: topic %q (file %s) field key %q normalises to empty path", key, source, path)
		}
		if _, exists := topic.Fields[normalised]; exists {
			return Topic{}, fmt.Errorf("uischema: topic %q (file %s) defines duplicate field path %q", key, source, normalised)
		}
		if cfg.When != nil && strings.TrimSpace(cfg.When.Field) == "" {
			return Topic{}, fmt.Errorf("uischema: topic %q (file %s) field %q has a condition without a field", key, source, path)
		}
		cfg.OriginalPath = path
		topic.Fields[normalised] = cfg
	}

	return topic, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
