package profile

// AdvanceTime is an amount of time with its unit.
type AdvanceTime struct {
	Value int    `json:"value" yaml:"value" validate:"min=1"`
	Unit  string `json:"unit" yaml:"unit" validate:"option=advanceUnit"`
}

// MinimumAdvance groups the notice periods for scheduling changes.
type MinimumAdvance struct {
	Scheduling   AdvanceTime `json:"scheduling" yaml:"scheduling"`
	Cancellation AdvanceTime `json:"cancellation" yaml:"cancellation"`
	Rescheduling AdvanceTime `json:"rescheduling" yaml:"rescheduling"`
}

// SchedulingProcess lists what customers must provide and the booking
// policies.
type SchedulingProcess struct {
	RequiredInformation []string       `json:"requiredInformation" yaml:"requiredInformation" validate:"min=1,unique,dive,option=requiredInformation"`
	OtherInformation    []string       `json:"otherInformation" yaml:"otherInformation" validate:"unique,dive,required"`
	RequiredDocuments   []string       `json:"requiredDocuments" yaml:"requiredDocuments" validate:"min=1,unique,dive,option=requiredDocuments"`
	OtherDocuments      []string       `json:"otherDocuments" yaml:"otherDocuments" validate:"unique,dive,required"`
	CancellationPolicy  string         `json:"cancellationPolicy" yaml:"cancellationPolicy" validate:"min=50,max=1000"`
	ReschedulingPolicy  string         `json:"reschedulingPolicy" yaml:"reschedulingPolicy" validate:"min=50,max=1000"`
	MinimumAdvanceTime  MinimumAdvance `json:"minimumAdvanceTime" yaml:"minimumAdvanceTime"`
}

// BusinessRules captures free-form operating rules.
type BusinessRules struct {
	SchedulingConditions string `json:"schedulingConditions" yaml:"schedulingConditions" validate:"min=50,max=1000"`
	SpecificRestrictions string `json:"specificRestrictions" yaml:"specificRestrictions" validate:"min=50,max=1000"`
	ServicePriorities    string `json:"servicePriorities" yaml:"servicePriorities" validate:"min=50,max=1000"`
	SpecialCases         string `json:"specialCases" yaml:"specialCases" validate:"min=50,max=1000"`
}

// ResponseTime is the promised complaint turnaround.
type ResponseTime struct {
	Value int    `json:"value" yaml:"value" validate:"min=1"`
	Unit  string `json:"unit" yaml:"unit" validate:"option=responseUnit"`
}

// ComplaintPolicy describes how complaints are received and answered.
type ComplaintPolicy struct {
	Description   string       `json:"description" yaml:"description" validate:"min=50,max=1000"`
	Channels      []string     `json:"channels" yaml:"channels" validate:"min=1,unique,dive,option=complaintChannels"`
	OtherChannels []string     `json:"otherChannels" yaml:"otherChannels" validate:"unique,dive,required"`
	ResponseTime  ResponseTime `json:"responseTime" yaml:"responseTime"`
}

// ServicePolicies groups the service protocols.
type ServicePolicies struct {
	WelcomeProtocol string          `json:"welcomeProtocol" yaml:"welcomeProtocol" validate:"min=50,max=1000"`
	ClosingProtocol string          `json:"closingProtocol" yaml:"closingProtocol" validate:"min=50,max=1000"`
	WarrantyPolicy  string          `json:"warrantyPolicy" yaml:"warrantyPolicy" validate:"min=50,max=1000"`
	ComplaintPolicy ComplaintPolicy `json:"complaintPolicy" yaml:"complaintPolicy"`
}
