package forms

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/validation"
)

// BasicInfoPage masks raw CNPJ and CEP digits and upper-cases the state.
func BasicInfoPage() Page[profile.BasicInfo] {
	return Page[profile.BasicInfo]{
		Key:      profile.TopicBasicInfo,
		Defaults: func() profile.BasicInfo { return profile.BasicInfo{RevenueStreams: []string{}} },
		Normalize: func(r profile.BasicInfo, _ Context) profile.BasicInfo {
			r.CNPJ = validation.FormatCNPJ(r.CNPJ)
			r.Address.ZipCode = validation.FormatCEP(r.Address.ZipCode)
			r.Address.State = strings.ToUpper(r.Address.State)
			return r
		},
	}
}

// BusinessHoursPage drops seasonal details when the season switch is off
// and days left without peak slots.
func BusinessHoursPage() Page[profile.BusinessHours] {
	return Page[profile.BusinessHours]{
		Key:      profile.TopicBusinessHours,
		Defaults: profile.DefaultBusinessHours,
		Normalize: func(r profile.BusinessHours, _ Context) profile.BusinessHours {
			if !r.HasSeasonal {
				r.SeasonalDetails = ""
			}
			for day, slots := range r.PeakHours {
				if len(slots) == 0 {
					delete(r.PeakHours, day)
				}
			}
			return r
		},
	}
}

// CapacityPage recomputes the hidden capacity fields.
func CapacityPage() Page[profile.Capacity] {
	return Page[profile.Capacity]{
		Key:      profile.TopicCapacity,
		Defaults: profile.DefaultCapacity,
		Normalize: func(r profile.Capacity, _ Context) profile.Capacity {
			return r.Derive()
		},
	}
}

// ContentProductionPage clears details whose switch is off.
func ContentProductionPage() Page[profile.ContentProduction] {
	return Page[profile.ContentProduction]{
		Key:      profile.TopicContentProduction,
		Defaults: profile.DefaultContentProduction,
		Normalize: func(r profile.ContentProduction, _ Context) profile.ContentProduction {
			if r.PublishingFrequency != profile.FrequencyOther {
				r.CustomPublishingFrequency = ""
			}
			if r.HasPaidMedia != profile.Yes {
				r.PaidMediaStrategy = ""
			}
			if r.HasInfluencerPartnerships != profile.Yes {
				r.InfluencerPartnershipsDetails = ""
			}
			return r
		},
	}
}

// RafflesPage clears hidden details and recomputes the profit.
func RafflesPage() Page[profile.Raffles] {
	return Page[profile.Raffles]{
		Key:      profile.TopicRaffles,
		Defaults: profile.DefaultRaffles,
		Normalize: func(r profile.Raffles, _ Context) profile.Raffles {
			if r.Frequency != profile.FrequencyOther {
				r.CustomFrequency = ""
			}
			if r.HasPartnerships != profile.Yes {
				r.PartnershipDetails = ""
			}
			return r.Derive()
		},
	}
}

// ObjectivesPage has no derived fields.
func ObjectivesPage() Page[profile.Objectives] {
	return Page[profile.Objectives]{Key: profile.TopicObjectives}
}

// ServicesPage keeps the scheduling lists pointing at catalog names.
func ServicesPage() Page[profile.Services] {
	return Page[profile.Services]{
		Key:      profile.TopicServices,
		Defaults: profile.DefaultServices,
	}
}

// TargetAudiencePage drops answers and strategies of deselected labels.
func TargetAudiencePage() Page[profile.TargetAudience] {
	return Page[profile.TargetAudience]{
		Key:      profile.TopicTargetAudience,
		Defaults: profile.DefaultTargetAudience,
		Normalize: func(r profile.TargetAudience, _ Context) profile.TargetAudience {
			SyncLabels(r.QuestionAnswers, r.CommonQuestions)
			SyncLabels(r.OtherQuestionAnswers, r.OtherQuestions)
			SyncLabels(r.ObjectionStrategies, r.CommonObjections)
			SyncLabels(r.OtherObjectionStrategies, r.OtherObjections)
			return r
		},
	}
}

// VoiceTonePage has no derived fields.
func VoiceTonePage() Page[profile.VoiceTone] {
	return Page[profile.VoiceTone]{
		Key:      profile.TopicVoiceTone,
		Defaults: profile.DefaultVoiceTone,
	}
}

// SchedulingProcessPage empties the extra lists whose trigger is off.
func SchedulingProcessPage() Page[profile.SchedulingProcess] {
	return Page[profile.SchedulingProcess]{
		Key:      profile.TopicSchedulingProcess,
		Defaults: profile.DefaultSchedulingProcess,
		Normalize: func(r profile.SchedulingProcess, _ Context) profile.SchedulingProcess {
			if !Contains(r.RequiredInformation, profile.OtherInformation) {
				r.OtherInformation = []string{}
			}
			if !Contains(r.RequiredDocuments, profile.OtherDocuments) {
				r.OtherDocuments = []string{}
			}
			return r
		},
	}
}

// BusinessRulesPage has no derived fields.
func BusinessRulesPage() Page[profile.BusinessRules] {
	return Page[profile.BusinessRules]{Key: profile.TopicBusinessRules}
}

// ServicePoliciesPage empties the extra channels when "Outros canais" is
// not selected.
func ServicePoliciesPage() Page[profile.ServicePolicies] {
	return Page[profile.ServicePolicies]{
		Key:      profile.TopicServicePolicies,
		Defaults: profile.DefaultServicePolicies,
		Normalize: func(r profile.ServicePolicies, _ Context) profile.ServicePolicies {
			if !Contains(r.ComplaintPolicy.Channels, profile.OtherChannels) {
				r.ComplaintPolicy.OtherChannels = []string{}
			}
			return r
		},
	}
}

// BrandPersonalityPage has no derived fields.
func BrandPersonalityPage() Page[profile.BrandPersonality] {
	return Page[profile.BrandPersonality]{
		Key:      profile.TopicBrandPersonality,
		Defaults: profile.DefaultBrandPersonality,
	}
}

// SpecialtiesPage requires popular services to come from the catalog
// entered on the services page. With no catalog every entry is unknown.
func SpecialtiesPage() Page[profile.Specialties] {
	return Page[profile.Specialties]{
		Key:      profile.TopicSpecialties,
		Defaults: profile.DefaultSpecialties,
		Check: func(r profile.Specialties, c Context) validation.Result {
			result := validation.Result{Valid: true}
			for i, name := range r.PopularServices {
				if Contains(c.ServiceNames, name) {
					continue
				}
				path := fmt.Sprintf("popularServices.%d", i)
				result.Issues = append(result.Issues, validation.Issue{
					Path:    path,
					Field:   "popularServices",
					Tag:     "known_service",
					Message: "Serviço não cadastrado",
				})
				result.Valid = false
			}
			return result
		},
	}
}

// StandardResponsesPage has no derived fields.
func StandardResponsesPage() Page[profile.StandardResponses] {
	return Page[profile.StandardResponses]{Key: profile.TopicStandardResponses}
}

// Build creates the form for key. WithPrior seeds it from an earlier
// submission.
func Build(key profile.TopicKey, opts ...Option) (Handle, error) {
	switch key {
	case profile.TopicBasicInfo:
		return New(BasicInfoPage(), opts...), nil
	case profile.TopicBusinessHours:
		return New(BusinessHoursPage(), opts...), nil
	case profile.TopicCapacity:
		return New(CapacityPage(), opts...), nil
	case profile.TopicContentProduction:
		return New(ContentProductionPage(), opts...), nil
	case profile.TopicRaffles:
		return New(RafflesPage(), opts...), nil
	case profile.TopicObjectives:
		return New(ObjectivesPage(), opts...), nil
	case profile.TopicServices:
		return New(ServicesPage(), opts...), nil
	case profile.TopicTargetAudience:
		return New(TargetAudiencePage(), opts...), nil
	case profile.TopicVoiceTone:
		return New(VoiceTonePage(), opts...), nil
	case profile.TopicSchedulingProcess:
		return New(SchedulingProcessPage(), opts...), nil
	case profile.TopicBusinessRules:
		return New(BusinessRulesPage(), opts...), nil
	case profile.TopicServicePolicies:
		return New(ServicePoliciesPage(), opts...), nil
	case profile.TopicBrandPersonality:
		return New(BrandPersonalityPage(), opts...), nil
	case profile.TopicSpecialties:
		return New(SpecialtiesPage(), opts...), nil
	case profile.TopicStandardResponses:
		return New(StandardResponsesPage(), opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPage, key)
}
