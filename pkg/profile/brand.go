package profile

// CompanyValue is one value the brand stands for.
type CompanyValue struct {
	Value       string `json:"value" yaml:"value" validate:"min=2,max=100"`
	Description string `json:"description" yaml:"description" validate:"min=20,max=200"`
}

// IdentityElement is a recognisable part of the brand.
type IdentityElement struct {
	Element    string `json:"element" yaml:"element" validate:"min=2,max=100"`
	Importance string `json:"importance" yaml:"importance" validate:"min=20,max=200"`
}

// BrandPersonality describes values and identity.
type BrandPersonality struct {
	CompanyValues      []CompanyValue    `json:"companyValues" yaml:"companyValues" validate:"min=3,dive"`
	CommunicationStyle string            `json:"communicationStyle" yaml:"communicationStyle" validate:"min=50,max=1000"`
	IdentityElements   []IdentityElement `json:"identityElements" yaml:"identityElements" validate:"min=2,dive"`
	ServiceExcellence  string            `json:"serviceExcellence" yaml:"serviceExcellence" validate:"min=50,max=1000"`
}

// Specialties lists the makes and modifications the shop focuses on.
type Specialties struct {
	Brands                []string `json:"brands" yaml:"brands" validate:"min=1,unique,dive,option=carBrands"`
	OtherBrands           []string `json:"otherBrands" yaml:"otherBrands" validate:"unique,dive,required"`
	Modifications         []string `json:"modifications" yaml:"modifications" validate:"min=1,unique,dive,option=modificationTypes"`
	OtherModifications    []string `json:"otherModifications" yaml:"otherModifications" validate:"unique,dive,required"`
	PopularServices       []string `json:"popularServices" yaml:"popularServices" validate:"min=1,unique,dive,required"`
	CompetitiveAdvantages string   `json:"competitiveAdvantages" yaml:"competitiveAdvantages" validate:"min=50,max=500"`
}

// StandardResponses holds canned messages used in conversations.
type StandardResponses struct {
	InitialGreeting         string `json:"initialGreeting" yaml:"initialGreeting" validate:"min=10,max=500,greeting"`
	Farewell                string `json:"farewell" yaml:"farewell" validate:"min=10,max=500"`
	AppointmentConfirmation string `json:"appointmentConfirmation" yaml:"appointmentConfirmation" validate:"min=10,max=500,datetimeref"`
	VisitReminders          string `json:"visitReminders" yaml:"visitReminders" validate:"min=10,max=500,nourl"`
	WebsiteURL              string `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty" validate:"omitempty,website"`
	ContactPhone            string `json:"contactPhone,omitempty" yaml:"contactPhone,omitempty" validate:"omitempty,phone"`
}
