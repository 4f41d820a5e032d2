package validation

import (
	"strings"
)

type segment struct {
	name    string
	indexed bool
}

// parseNamespace splits a validator namespace such as
// `Services.services[0].name` or `TargetAudience.questionAnswers[Há garantia?]`
// into segments. The leading type name is dropped. Bracketed parts are kept
// verbatim so map keys may contain dots or spaces.
func parseNamespace(ns string) []segment {
	ns = strings.TrimSpace(ns)
	if ns == "" {
		return nil
	}

	var (
		out     []segment
		current strings.Builder
		depth   int
	)
	flush := func(indexed bool) {
		if current.Len() == 0 && !indexed {
			return
		}
		out = append(out, segment{name: current.String(), indexed: indexed})
		current.Reset()
	}

	for _, r := range ns {
		switch {
		case r == '[':
			if depth == 0 {
				flush(false)
			} else {
				current.WriteRune(r)
			}
			depth++
		case r == ']' && depth > 0:
			depth--
			if depth == 0 {
				flush(true)
			} else {
				current.WriteRune(r)
			}
		case r == '.' && depth == 0:
			flush(false)
		default:
			current.WriteRune(r)
		}
	}
	flush(false)

	if len(out) > 0 && !out[0].indexed {
		out = out[1:]
	}
	return out
}

func pathFromSegments(segments []segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.name)
	}
	return strings.Join(parts, ".")
}

func fieldFromSegments(segments []segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.indexed {
			continue
		}
		parts = append(parts, seg.name)
	}
	return strings.Join(parts, ".")
}

func joinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
