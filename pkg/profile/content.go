package profile

// ContentProduction describes the company's content pipeline.
type ContentProduction struct {
	PublishingFrequency           string `json:"publishingFrequency" yaml:"publishingFrequency" validate:"min=1,max=100,option=publishingFrequency"`
	CustomPublishingFrequency     string `json:"customPublishingFrequency,omitempty" yaml:"customPublishingFrequency,omitempty" validate:"max=100"`
	AverageVideoDuration          string `json:"averageVideoDuration" yaml:"averageVideoDuration" validate:"min=1,max=50,option=videoDuration"`
	ContentResponsible            string `json:"contentResponsible" yaml:"contentResponsible" validate:"option=contentResponsible"`
	HasEditorialCalendar          string `json:"hasEditorialCalendar" yaml:"hasEditorialCalendar" validate:"option=yesNo"`
	MonetizationStrategy          string `json:"monetizationStrategy" yaml:"monetizationStrategy" validate:"min=50,max=1000"`
	AverageEngagement             string `json:"averageEngagement" yaml:"averageEngagement" validate:"min=50,max=1000"`
	ContentIntegration            string `json:"contentIntegration" yaml:"contentIntegration" validate:"min=50,max=1000"`
	AnalyticsTools                string `json:"analyticsTools" yaml:"analyticsTools" validate:"min=5,max=500"`
	HasPaidMedia                  string `json:"hasPaidMedia" yaml:"hasPaidMedia" validate:"option=yesNo"`
	PaidMediaStrategy             string `json:"paidMediaStrategy,omitempty" yaml:"paidMediaStrategy,omitempty"`
	HasInfluencerPartnerships     string `json:"hasInfluencerPartnerships" yaml:"hasInfluencerPartnerships" validate:"option=yesNo"`
	InfluencerPartnershipsDetails string `json:"influencerPartnershipsDetails,omitempty" yaml:"influencerPartnershipsDetails,omitempty"`
}

// Raffles describes giveaway campaigns and their results.
type Raffles struct {
	Frequency            string  `json:"frequency" yaml:"frequency" validate:"option=raffleFrequency"`
	CustomFrequency      string  `json:"customFrequency,omitempty" yaml:"customFrequency,omitempty" validate:"max=100"`
	Objective            string  `json:"objective" yaml:"objective" validate:"option=raffleObjective"`
	PromotionDetails     string  `json:"promotionDetails" yaml:"promotionDetails" validate:"min=50,max=1000"`
	ParticipationProcess string  `json:"participationProcess" yaml:"participationProcess" validate:"min=50,max=1000"`
	AverageRevenue       float64 `json:"averageRevenue" yaml:"averageRevenue" validate:"gte=0,lte=1000000"`
	AverageCost          float64 `json:"averageCost" yaml:"averageCost" validate:"gte=0,lte=1000000"`
	AverageProfit        float64 `json:"averageProfit" yaml:"averageProfit" validate:"gte=-1000000,lte=1000000"`
	Platforms            string  `json:"platforms" yaml:"platforms" validate:"min=3,max=500"`
	HasPartnerships      string  `json:"hasPartnerships" yaml:"hasPartnerships" validate:"option=yesNo"`
	PartnershipDetails   string  `json:"partnershipDetails,omitempty" yaml:"partnershipDetails,omitempty"`
	AverageEngagement    string  `json:"averageEngagement" yaml:"averageEngagement" validate:"min=50,max=1000"`
	AverageLeads         int     `json:"averageLeads" yaml:"averageLeads" validate:"gte=0,lte=10000"`
	AverageTicket        float64 `json:"averageTicket" yaml:"averageTicket" validate:"gte=0,lte=10000"`
}

// Derive recomputes the profit from revenue and cost.
func (r Raffles) Derive() Raffles {
	r.AverageProfit = r.AverageRevenue - r.AverageCost
	return r
}

// Objectives captures what the business expects from the engagement.
type Objectives struct {
	CurrentChallenges string `json:"currentChallenges" yaml:"currentChallenges" validate:"min=50,max=1000"`
	Objectives        string `json:"objectives" yaml:"objectives" validate:"min=50,max=1000"`
	ROIExpectations   string `json:"roiExpectations" yaml:"roiExpectations" validate:"min=50,max=1000"`
	SpecificProject   string `json:"specificProject" yaml:"specificProject" validate:"min=50,max=1000"`
}
