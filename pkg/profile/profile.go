package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-intake/pkg/validation"
)

var (
	// ErrUnknownTopic is returned for keys outside the fixed topic list.
	ErrUnknownTopic = errors.New("profile: unknown topic")
	// ErrTopicMismatch is returned when a record does not match its key.
	ErrTopicMismatch = errors.New("profile: record type does not match topic")
)

// Profile is the aggregate record: one optional sub-record per topic.
// A nil field means the topic has not been completed yet.
type Profile struct {
	BasicInfo         *BasicInfo         `json:"basicInfo,omitempty" yaml:"basicInfo,omitempty"`
	BusinessHours     *BusinessHours     `json:"businessHours,omitempty" yaml:"businessHours,omitempty"`
	Capacity          *Capacity          `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	ContentProduction *ContentProduction `json:"contentProduction,omitempty" yaml:"contentProduction,omitempty"`
	Raffles           *Raffles           `json:"raffles,omitempty" yaml:"raffles,omitempty"`
	Objectives        *Objectives        `json:"objectives,omitempty" yaml:"objectives,omitempty"`
	Services          *Services          `json:"services,omitempty" yaml:"services,omitempty"`
	TargetAudience    *TargetAudience    `json:"targetAudience,omitempty" yaml:"targetAudience,omitempty"`
	VoiceTone         *VoiceTone         `json:"voiceTone,omitempty" yaml:"voiceTone,omitempty"`
	SchedulingProcess *SchedulingProcess `json:"schedulingProcess,omitempty" yaml:"schedulingProcess,omitempty"`
	BusinessRules     *BusinessRules     `json:"businessRules,omitempty" yaml:"businessRules,omitempty"`
	ServicePolicies   *ServicePolicies   `json:"servicePolicies,omitempty" yaml:"servicePolicies,omitempty"`
	BrandPersonality  *BrandPersonality  `json:"brandPersonality,omitempty" yaml:"brandPersonality,omitempty"`
	Specialties       *Specialties       `json:"specialties,omitempty" yaml:"specialties,omitempty"`
	StandardResponses *StandardResponses `json:"standardResponses,omitempty" yaml:"standardResponses,omitempty"`
}

// Set replaces the whole sub-record stored under key. record may be the
// topic struct or a pointer to it; the stored value is a deep copy.
func (p *Profile) Set(key TopicKey, record any) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, key)
	}
	ok := false
	switch key {
	case TopicBasicInfo:
		p.BasicInfo, ok = assign[BasicInfo](record)
	case TopicBusinessHours:
		p.BusinessHours, ok = assign[BusinessHours](record)
	case TopicCapacity:
		p.Capacity, ok = assign[Capacity](record)
	case TopicContentProduction:
		p.ContentProduction, ok = assign[ContentProduction](record)
	case TopicRaffles:
		p.Raffles, ok = assign[Raffles](record)
	case TopicObjectives:
		p.Objectives, ok = assign[Objectives](record)
	case TopicServices:
		p.Services, ok = assign[Services](record)
	case TopicTargetAudience:
		p.TargetAudience, ok = assign[TargetAudience](record)
	case TopicVoiceTone:
		p.VoiceTone, ok = assign[VoiceTone](record)
	case TopicSchedulingProcess:
		p.SchedulingProcess, ok = assign[SchedulingProcess](record)
	case TopicBusinessRules:
		p.BusinessRules, ok = assign[BusinessRules](record)
	case TopicServicePolicies:
		p.ServicePolicies, ok = assign[ServicePolicies](record)
	case TopicBrandPersonality:
		p.BrandPersonality, ok = assign[BrandPersonality](record)
	case TopicSpecialties:
		p.Specialties, ok = assign[Specialties](record)
	case TopicStandardResponses:
		p.StandardResponses, ok = assign[StandardResponses](record)
	}
	if !ok {
		return fmt.Errorf("%w: %s got %T", ErrTopicMismatch, key, record)
	}
	return nil
}

// assign leaves the destination untouched on mismatch because callers
// overwrite it only with the returned pointer.
func assign[T any](record any) (*T, bool) {
	switch v := record.(type) {
	case T:
		c := Clone(v)
		return &c, true
	case *T:
		if v == nil {
			return nil, false
		}
		c := Clone(*v)
		return &c, true
	}
	return nil, false
}

// Get returns a copy of the sub-record stored under key, as a value of the
// topic struct type.
func (p Profile) Get(key TopicKey) (any, bool) {
	switch key {
	case TopicBasicInfo:
		return get(p.BasicInfo)
	case TopicBusinessHours:
		return get(p.BusinessHours)
	case TopicCapacity:
		return get(p.Capacity)
	case TopicContentProduction:
		return get(p.ContentProduction)
	case TopicRaffles:
		return get(p.Raffles)
	case TopicObjectives:
		return get(p.Objectives)
	case TopicServices:
		return get(p.Services)
	case TopicTargetAudience:
		return get(p.TargetAudience)
	case TopicVoiceTone:
		return get(p.VoiceTone)
	case TopicSchedulingProcess:
		return get(p.SchedulingProcess)
	case TopicBusinessRules:
		return get(p.BusinessRules)
	case TopicServicePolicies:
		return get(p.ServicePolicies)
	case TopicBrandPersonality:
		return get(p.BrandPersonality)
	case TopicSpecialties:
		return get(p.Specialties)
	case TopicStandardResponses:
		return get(p.StandardResponses)
	}
	return nil, false
}

func get[T any](v *T) (any, bool) {
	if v == nil {
		return nil, false
	}
	return Clone(*v), true
}

// Record is the typed form of Get.
func Record[T any](p Profile, key TopicKey) (T, bool) {
	var zero T
	v, ok := p.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// Has reports whether the topic has been completed.
func (p Profile) Has(key TopicKey) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys lists the completed topics in step order.
func (p Profile) Keys() []TopicKey {
	var out []TopicKey
	for _, topic := range topics {
		if p.Has(topic.Key) {
			out = append(out, topic.Key)
		}
	}
	return out
}

// Len is the number of completed topics.
func (p Profile) Len() int {
	return len(p.Keys())
}

// Complete reports whether every topic is present.
func (p Profile) Complete() bool {
	return p.Len() == TopicCount
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	return Clone(p)
}

// Validate checks every present topic; issue paths are prefixed with the
// topic key.
func (p Profile) Validate() validation.Result {
	result := validation.Result{Valid: true}
	for _, key := range p.Keys() {
		record, _ := p.Get(key)
		result = result.Merge(Validator().Validate(record).Prefixed(string(key)))
	}
	return result
}

// Clone deep copies a topic value through its JSON form. Topic types are
// plain data, so the round trip is lossless.
func Clone[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("profile: clone %T: %v", v, err))
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("profile: clone %T: %v", v, err))
	}
	return out
}

// Blank returns a pointer to a zero record of the topic's type.
func Blank(key TopicKey) (any, bool) {
	t := reflect.TypeOf(Profile{})
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name == string(key) {
			return reflect.New(sf.Type.Elem()).Interface(), true
		}
	}
	return nil, false
}
