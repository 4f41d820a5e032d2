package uischema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Violation is one overlay entry that cannot apply to its record.
type Violation struct {
	Source  string
	Topic   string
	Path    string
	Message string
}

func (v Violation) String() string {
	location := v.Topic
	if v.Path != "" {
		location += " > " + v.Path
	}
	return fmt.Sprintf("%s: %s -> %s", v.Source, location, v.Message)
}

// CheckOption configures Check.
type CheckOption func(*checker)

// WithOptionSets validates Options names against known sets.
func WithOptionSets(known func(set string) bool) CheckOption {
	return func(c *checker) { c.optionSet = known }
}

// WithOptionSources lists the accepted OptionsFrom names.
func WithOptionSources(names ...string) CheckOption {
	return func(c *checker) {
		for _, name := range names {
			c.sources[name] = struct{}{}
		}
	}
}

type checker struct {
	optionSet func(string) bool
	sources   map[string]struct{}
}

var knownWidgets = map[string]struct{}{
	"":                {},
	WidgetInput:       {},
	WidgetTextArea:    {},
	WidgetSelect:      {},
	WidgetMultiSelect: {},
	WidgetList:        {},
	WidgetLabels:      {},
	WidgetHidden:      {},
}

// Check compares the overlay with the record types. records maps topic
// keys to a value or pointer of the record type. Violations are sorted by
// source, topic and path.
func (s *Store) Check(records map[string]any, opts ...CheckOption) []Violation {
	if s == nil {
		return nil
	}
	c := &checker{sources: map[string]struct{}{}}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	var out []Violation
	for key, topic := range s.topics {
		record, ok := records[key]
		if !ok {
			out = append(out, Violation{Source: topic.Source, Topic: key, Message: "unknown topic"})
			continue
		}
		paths := map[string]reflect.Type{}
		collectPaths(reflect.TypeOf(record), "", paths)

		for path, cfg := range topic.Fields {
			report := func(format string, args ...any) {
				out = append(out, Violation{Source: topic.Source, Topic: key, Path: path, Message: fmt.Sprintf(format, args...)})
			}
			if _, ok := paths[path]; !ok {
				report("no such field")
				continue
			}
			if _, ok := knownWidgets[cfg.Widget]; !ok {
				report("unknown widget %q", cfg.Widget)
			}
			if cfg.When != nil {
				if _, ok := paths[sibling(path, cfg.When.Field)]; !ok {
					report("condition field %q is not a sibling", cfg.When.Field)
				}
			}
			if cfg.LabelsFrom != "" {
				if t, ok := paths[sibling(path, cfg.LabelsFrom)]; !ok || t.Kind() != reflect.Slice {
					report("labelsFrom %q is not a sibling list", cfg.LabelsFrom)
				}
			}
			if cfg.Widget == WidgetLabels && cfg.LabelsFrom == "" {
				report("labels widget needs labelsFrom")
			}
			if cfg.Options != "" && c.optionSet != nil && !c.optionSet(cfg.Options) {
				report("unknown option set %q", cfg.Options)
			}
			if cfg.OptionsFrom != "" {
				if _, ok := c.sources[cfg.OptionsFrom]; !ok {
					report("unknown option source %q", cfg.OptionsFrom)
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// collectPaths records every json path of t in Store key notation.
func collectPaths(t reflect.Type, prefix string, dest map[string]reflect.Type) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		dest[path] = sf.Type

		elem := sf.Type
		for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Slice || elem.Kind() == reflect.Map {
			elem = elem.Elem()
		}
		collectPaths(elem, path, dest)
	}
}

func sibling(path, name string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i+1] + name
	}
	return name
}
