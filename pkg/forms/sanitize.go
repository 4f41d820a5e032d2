package forms

import (
	"html"
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from every string in a record and trims it.
// Free text is stored as plain text, so entities produced by the policy are
// decoded again.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer uses the strict policy, which removes all HTML.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// String cleans one value.
func (s *Sanitizer) String(value string) string {
	if s == nil || s.policy == nil {
		return strings.TrimSpace(value)
	}
	if !strings.ContainsAny(value, "<>&") {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}

// Apply cleans every exported string reachable from ptr, which must be a
// pointer to the record.
func (s *Sanitizer) Apply(ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	s.walk(v.Elem())
}

func (s *Sanitizer) walk(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			s.walk(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if field := v.Field(i); field.CanSet() {
				s.walk(field)
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			s.walk(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			return
		}
		for _, key := range v.MapKeys() {
			val := reflect.New(v.Type().Elem()).Elem()
			val.Set(v.MapIndex(key))
			s.walk(val)

			newKey := reflect.New(key.Type()).Elem()
			newKey.Set(key)
			s.walk(newKey)

			if !newKey.Equal(key) {
				v.SetMapIndex(key, reflect.Value{})
			}
			v.SetMapIndex(newKey, val)
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(s.String(v.String()))
		}
	}
}
