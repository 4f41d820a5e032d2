package uischema

import (
	"strconv"
	"strings"
)

// Store keeps the parsed topic overlays. It is safe for concurrent readers
// when treated as immutable after construction.
type Store struct {
	topics map[string]Topic
}

// Topic describes the overrides for one intake topic.
type Topic struct {
	Key    string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig carries page level copy.
type FormConfig struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Intro    string `json:"intro" yaml:"intro"`
}

// Widgets understood by the terminal runner. An empty widget lets the
// runner infer one from the field type and validation tags.
const (
	WidgetInput       = "input"
	WidgetTextArea    = "textarea"
	WidgetSelect      = "select"
	WidgetMultiSelect = "multiselect"
	WidgetList        = "list"
	WidgetLabels      = "labels"
	WidgetHidden      = "hidden"
)

// Condition shows a field only when a sibling field holds Equals, or when
// a sibling list includes Contains.
type Condition struct {
	Field    string `json:"field" yaml:"field"`
	Equals   string `json:"equals,omitempty" yaml:"equals,omitempty"`
	Contains string `json:"contains,omitempty" yaml:"contains,omitempty"`
}

// FieldConfig customises how one field is prompted.
type FieldConfig struct {
	Label       string     `json:"label,omitempty" yaml:"label,omitempty"`
	HelpText    string     `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Widget      string     `json:"widget,omitempty" yaml:"widget,omitempty"`
	When        *Condition `json:"when,omitempty" yaml:"when,omitempty"`
	// LabelsFrom names the sibling list whose entries key a labels map.
	LabelsFrom string `json:"labelsFrom,omitempty" yaml:"labelsFrom,omitempty"`
	// Options names a profile option set for fields without an option tag.
	Options string `json:"options,omitempty" yaml:"options,omitempty"`
	// OptionsFrom names a runtime option source such as "serviceNames".
	OptionsFrom  string `json:"optionsFrom,omitempty" yaml:"optionsFrom,omitempty"`
	ItemLabel    string `json:"itemLabel,omitempty" yaml:"itemLabel,omitempty"`
	OriginalPath string `json:"-" yaml:"-"`
}

// Hidden reports whether the runner should skip the field.
func (c FieldConfig) Hidden() bool {
	return c.Widget == WidgetHidden
}

// Visible evaluates When against the sibling lookup, which returns the
// sibling's value as a list of strings (one entry for scalars).
func (c FieldConfig) Visible(sibling func(field string) ([]string, bool)) bool {
	if c.When == nil {
		return true
	}
	values, ok := sibling(c.When.Field)
	if !ok {
		return false
	}
	if c.When.Contains != "" {
		for _, v := range values {
			if v == c.When.Contains {
				return true
			}
		}
		return false
	}
	return len(values) == 1 && values[0] == c.When.Equals
}

// NormalizeFieldPath converts field keys and record paths into the dotted
// notation used as Store keys: indices and map keys are dropped, so
// "services[2].name" and "services.2.name" both become "services.name".
func NormalizeFieldPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"[]", "",
		"[", ".",
		"]", "",
	)
	parts := strings.Split(replacer.Replace(trimmed), ".")
	out := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, ".")
}
