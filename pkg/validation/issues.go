package validation

import (
	"fmt"
	"strings"
)

// Issue is one field-level problem. Path is the dotted location inside the
// validated record (list indices and map keys included) and Field is the
// same path with indices and keys removed.
type Issue struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Result captures every issue found in one pass.
type Result struct {
	Valid  bool    `json:"valid" yaml:"valid"`
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Has reports whether any issue is attached to path.
func (r Result) Has(path string) bool {
	for _, issue := range r.Issues {
		if issue.Path == path {
			return true
		}
	}
	return false
}

// Messages returns the messages attached to path in report order.
func (r Result) Messages(path string) []string {
	var out []string
	for _, issue := range r.Issues {
		if issue.Path == path {
			out = append(out, issue.Message)
		}
	}
	return normalizeMessages(out)
}

// ByField groups messages per path, trimmed and deduplicated.
func (r Result) ByField() map[string][]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, issue := range r.Issues {
		out[issue.Path] = append(out[issue.Path], issue.Message)
	}
	for path, messages := range out {
		out[path] = normalizeMessages(messages)
	}
	return out
}

// Paths lists the distinct issue paths in report order.
func (r Result) Paths() []string {
	seen := make(map[string]struct{}, len(r.Issues))
	var out []string
	for _, issue := range r.Issues {
		if _, ok := seen[issue.Path]; ok {
			continue
		}
		seen[issue.Path] = struct{}{}
		out = append(out, issue.Path)
	}
	return out
}

// Prefixed returns a copy with every path nested under prefix.
func (r Result) Prefixed(prefix string) Result {
	out := Result{Valid: r.Valid}
	for _, issue := range r.Issues {
		issue.Path = joinPath(prefix, issue.Path)
		issue.Field = joinPath(prefix, issue.Field)
		out.Issues = append(out.Issues, issue)
	}
	return out
}

// Merge appends the issues of other. The merged result is valid when no
// issue remains.
func (r Result) Merge(other Result) Result {
	var out Result
	out.Issues = append(out.Issues, r.Issues...)
	out.Issues = append(out.Issues, other.Issues...)
	out.Valid = len(out.Issues) == 0
	return out
}

// Error renders a one-line summary, empty for valid results.
func (r Result) Error() string {
	if r.Valid || len(r.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
