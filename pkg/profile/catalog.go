package profile

import "strings"

// CopySuffix marks a duplicated catalog entry.
const CopySuffix = " (Cópia)"

// AddService appends svc to the catalog.
func (s *Services) AddService(svc Service) {
	s.Services = append(s.Services, svc)
}

// DuplicateService copies the entry at i right after it, suffixing its
// name. Out of range indexes are ignored.
func (s *Services) DuplicateService(i int) bool {
	if i < 0 || i >= len(s.Services) {
		return false
	}
	dup := Clone(s.Services[i])
	dup.Name += CopySuffix
	s.Services = append(s.Services[:i+1], append([]Service{dup}, s.Services[i+1:]...)...)
	return true
}

// RemoveService deletes the entry at i and prunes its name from both
// scheduling lists.
func (s *Services) RemoveService(i int) bool {
	if i < 0 || i >= len(s.Services) {
		return false
	}
	name := s.Services[i].Name
	s.Services = append(s.Services[:i:i], s.Services[i+1:]...)
	s.ScheduledServices = without(s.ScheduledServices, name)
	s.NonScheduledServices = without(s.NonScheduledServices, name)
	return true
}

// RenameService updates a name everywhere it is referenced.
func (s *Services) RenameService(i int, name string) bool {
	if i < 0 || i >= len(s.Services) {
		return false
	}
	old := s.Services[i].Name
	s.Services[i].Name = name
	for j, n := range s.ScheduledServices {
		if n == old {
			s.ScheduledServices[j] = name
		}
	}
	for j, n := range s.NonScheduledServices {
		if n == old {
			s.NonScheduledServices[j] = name
		}
	}
	return true
}

// AddCompanyValue appends a value when both parts are filled in.
func (b *BrandPersonality) AddCompanyValue(value, description string) bool {
	value, description = trim(value), trim(description)
	if value == "" || description == "" {
		return false
	}
	b.CompanyValues = append(b.CompanyValues, CompanyValue{Value: value, Description: description})
	return true
}

// RemoveCompanyValue deletes the value at index i.
func (b *BrandPersonality) RemoveCompanyValue(i int) bool {
	if i < 0 || i >= len(b.CompanyValues) {
		return false
	}
	b.CompanyValues = append(b.CompanyValues[:i:i], b.CompanyValues[i+1:]...)
	return true
}

// AddIdentityElement appends an element when both parts are filled in.
func (b *BrandPersonality) AddIdentityElement(element, importance string) bool {
	element, importance = trim(element), trim(importance)
	if element == "" || importance == "" {
		return false
	}
	b.IdentityElements = append(b.IdentityElements, IdentityElement{Element: element, Importance: importance})
	return true
}

// RemoveIdentityElement deletes the element at index i.
func (b *BrandPersonality) RemoveIdentityElement(i int) bool {
	if i < 0 || i >= len(b.IdentityElements) {
		return false
	}
	b.IdentityElements = append(b.IdentityElements[:i:i], b.IdentityElements[i+1:]...)
	return true
}

func without(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
	}
	return out
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
