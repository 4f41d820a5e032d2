package profile

// Service is one catalog entry.
type Service struct {
	Name        string   `json:"name" yaml:"name" validate:"min=3,max=100"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"max=500"`
	CostPrice   *float64 `json:"costPrice,omitempty" yaml:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SalePrice   *float64 `json:"salePrice,omitempty" yaml:"salePrice,omitempty" validate:"omitempty,gte=0"`
	Expertise   string   `json:"expertise,omitempty" yaml:"expertise,omitempty" validate:"omitempty,option=expertise"`
	Category    string   `json:"category" yaml:"category" validate:"option=serviceCategory"`
	Complexity  string   `json:"complexity,omitempty" yaml:"complexity,omitempty" validate:"omitempty,option=complexity"`
	Duration    string   `json:"duration,omitempty" yaml:"duration,omitempty" validate:"omitempty,duration"`
	Materials   string   `json:"materials,omitempty" yaml:"materials,omitempty" validate:"max=500"`
}

// Services is the catalog plus the split between scheduled and walk-in work.
type Services struct {
	Services             []Service `json:"services" yaml:"services" validate:"min=1,dive"`
	ScheduledServices    []string  `json:"scheduledServices" yaml:"scheduledServices" validate:"min=1,dive,required"`
	NonScheduledServices []string  `json:"nonScheduledServices" yaml:"nonScheduledServices" validate:"dive,required"`
}

// Names lists the catalog names in order, skipping blanks.
func (s Services) Names() []string {
	out := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		if svc.Name != "" {
			out = append(out, svc.Name)
		}
	}
	return out
}

// TargetAudience describes the typical customer, their questions and
// objections. Answer and strategy maps are keyed by the selected labels.
type TargetAudience struct {
	TypicalProfile           string            `json:"typicalProfile" yaml:"typicalProfile" validate:"min=50,max=1000"`
	MainDemands              string            `json:"mainDemands" yaml:"mainDemands" validate:"min=50,max=1000"`
	CommonQuestions          []string          `json:"commonQuestions" yaml:"commonQuestions" validate:"min=1,unique,dive,option=commonQuestions"`
	QuestionAnswers          map[string]string `json:"questionAnswers" yaml:"questionAnswers" validate:"dive,min=20,max=500"`
	OtherQuestions           []string          `json:"otherQuestions" yaml:"otherQuestions" validate:"unique,dive,required"`
	OtherQuestionAnswers     map[string]string `json:"otherQuestionAnswers" yaml:"otherQuestionAnswers" validate:"dive,min=20,max=500"`
	CommonObjections         []string          `json:"commonObjections" yaml:"commonObjections" validate:"min=1,unique,dive,option=commonObjections"`
	ObjectionStrategies      map[string]string `json:"objectionStrategies" yaml:"objectionStrategies" validate:"dive,min=20,max=500"`
	OtherObjections          []string          `json:"otherObjections" yaml:"otherObjections" validate:"unique,dive,required"`
	OtherObjectionStrategies map[string]string `json:"otherObjectionStrategies" yaml:"otherObjectionStrategies" validate:"dive,min=20,max=500"`
}

// VoiceTone sets how the assistant should sound.
type VoiceTone struct {
	Tone               string `json:"tone" yaml:"tone" validate:"option=tone"`
	UseTechnicalJargon bool   `json:"useTechnicalJargon" yaml:"useTechnicalJargon"`
	SectorTerms        string `json:"sectorTerms" yaml:"sectorTerms" validate:"min=50,max=1000"`
	ExpressionsToAvoid string `json:"expressionsToAvoid" yaml:"expressionsToAvoid" validate:"min=50,max=1000"`
	BrandPersonality   string `json:"brandPersonality" yaml:"brandPersonality" validate:"min=50,max=1000"`
}
