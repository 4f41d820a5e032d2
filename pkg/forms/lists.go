package forms

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// FoldKey normalises s for duplicate detection: case and accents are
// ignored, surrounding space trimmed.
func FoldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return folder.String(out)
}

// AddItem appends the trimmed value to list. Blank input and values already
// present, compared with FoldKey, are ignored. It reports whether the list
// changed.
func AddItem(list *[]string, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || list == nil {
		return false
	}
	key := FoldKey(value)
	for _, existing := range *list {
		if FoldKey(existing) == key {
			return false
		}
	}
	*list = append(*list, value)
	return true
}

// RemoveItem drops every entry equal to value.
func RemoveItem(list *[]string, value string) bool {
	if list == nil {
		return false
	}
	out := make([]string, 0, len(*list))
	for _, existing := range *list {
		if existing != value {
			out = append(out, existing)
		}
	}
	changed := len(out) != len(*list)
	*list = out
	return changed
}

// Toggle selects or deselects value in a checkbox list.
func Toggle(list *[]string, value string, selected bool) {
	if selected {
		if !Contains(*list, value) {
			*list = append(*list, value)
		}
		return
	}
	RemoveItem(list, value)
}

// Contains reports exact membership.
func Contains(list []string, value string) bool {
	for _, existing := range list {
		if existing == value {
			return true
		}
	}
	return false
}

// SyncLabels deletes map entries whose label is no longer selected in any
// of the given label lists.
func SyncLabels(entries map[string]string, labels ...[]string) {
	keep := make(map[string]struct{})
	for _, list := range labels {
		for _, label := range list {
			keep[label] = struct{}{}
		}
	}
	for label := range entries {
		if _, ok := keep[label]; !ok {
			delete(entries, label)
		}
	}
}

// RemoveLabel drops label from the list and its entry from the map.
func RemoveLabel(labels *[]string, entries map[string]string, label string) {
	RemoveItem(labels, label)
	delete(entries, label)
}
