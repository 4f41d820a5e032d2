package profile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/profile/profiletest"
)

func TestSamplesAreValid(t *testing.T) {
	for _, topic := range profile.Topics() {
		t.Run(string(topic.Key), func(t *testing.T) {
			result := profile.Validate(profiletest.Topic(topic.Key))
			if !result.Valid {
				t.Fatalf("expected sample to be valid, got %v", result.ByField())
			}
		})
	}
}

func TestCapacityCrossField(t *testing.T) {
	rec := profile.Capacity{
		MaxDailyAppointments:        5,
		MaxSimultaneousAppointments: 10,
		MinAppointmentInterval:      15,
		ServiceBoxes:                1,
	}.Derive()

	result := profile.Validate(rec)
	if result.Valid {
		t.Fatalf("expected capacity to be rejected")
	}
	if !result.Has("maxSimultaneousAppointments") {
		t.Fatalf("expected error on maxSimultaneousAppointments, got %v", result.ByField())
	}
	if result.Has("serviceBoxes") {
		t.Fatalf("serviceBoxes is within limits, got %v", result.ByField())
	}

	rec.MaxSimultaneousAppointments = 2
	rec.ServiceBoxes = 3
	result = profile.Validate(rec)
	if diff := cmp.Diff([]string{"serviceBoxes"}, result.Paths()); diff != "" {
		t.Fatalf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestCapacityDerive(t *testing.T) {
	c := profile.Capacity{MaxDailyAppointments: 20}.Derive()
	if c.TotalHoursPerDay != 8 || c.TotalHoursPerWeek != 40 || c.AverageAppointmentsPerHour != 2.5 {
		t.Fatalf("unexpected derived fields %+v", c)
	}
}

func TestServicesDisjoint(t *testing.T) {
	rec := profiletest.Services()
	rec.NonScheduledServices = append(rec.NonScheduledServices, "Troca de óleo")

	result := profile.Validate(rec)
	msgs := result.Messages("nonScheduledServices")
	if diff := cmp.Diff([]string{"Um serviço não pode estar em ambas as listas"}, msgs); diff != "" {
		t.Fatalf("unexpected messages (-want +got):\n%s", diff)
	}
}

func TestServicesReferenceCatalog(t *testing.T) {
	rec := profiletest.Services()
	rec.ScheduledServices = append(rec.ScheduledServices, "Pintura")
	rec.Services = append(rec.Services, profile.Service{Name: "Troca de óleo", Category: "maintenance"})

	result := profile.Validate(rec)
	if !result.Has("scheduledServices.2") {
		t.Fatalf("expected unknown service error, got %v", result.ByField())
	}
	if !result.Has("services.3.name") {
		t.Fatalf("expected duplicate name error, got %v", result.ByField())
	}
}

func TestConditionalDetails(t *testing.T) {
	rec := profiletest.ContentProduction()
	rec.PaidMediaStrategy = ""
	if result := profile.Validate(rec); !result.Has("paidMediaStrategy") {
		t.Fatalf("expected strategy to be required when paid media is on, got %v", result.ByField())
	}

	rec.PaidMediaStrategy = "curta"
	result := profile.Validate(rec)
	if diff := cmp.Diff([]string{"Deve ter pelo menos 50 caracteres"}, result.Messages("paidMediaStrategy")); diff != "" {
		t.Fatalf("unexpected messages (-want +got):\n%s", diff)
	}

	rec.HasPaidMedia = profile.No
	if result := profile.Validate(rec); !result.Valid {
		t.Fatalf("detail must be ignored when the switch is off, got %v", result.ByField())
	}

	rec.PublishingFrequency = profile.FrequencyOther
	if result := profile.Validate(rec); !result.Has("customPublishingFrequency") {
		t.Fatalf("expected custom frequency to be required, got %v", result.ByField())
	}
}

func TestRafflesProfileMustBeDerived(t *testing.T) {
	rec := profiletest.Raffles()
	rec.AverageProfit = 1
	if result := profile.Validate(rec); !result.Has("averageProfit") {
		t.Fatalf("expected tampered profit to be rejected, got %v", result.ByField())
	}

	rec.AverageRevenue = 100
	rec.AverageCost = 400
	rec = rec.Derive()
	if rec.AverageProfit != -300 {
		t.Fatalf("expected negative profit, got %v", rec.AverageProfit)
	}
	if result := profile.Validate(rec); !result.Valid {
		t.Fatalf("negative profit is allowed, got %v", result.ByField())
	}
}

func TestAudienceLabels(t *testing.T) {
	rec := profiletest.TargetAudience()
	rec.CommonQuestions = append(rec.CommonQuestions, "Quais as formas de pagamento?")
	rec.ObjectionStrategies["Falta de referências"] = "Mostrar avaliações de clientes no Google."

	result := profile.Validate(rec)
	if !result.Has("questionAnswers.Quais as formas de pagamento?") {
		t.Fatalf("expected missing answer error, got %v", result.ByField())
	}
	if !result.Has("objectionStrategies.Falta de referências") {
		t.Fatalf("expected orphan strategy error, got %v", result.ByField())
	}
}

func TestOtherListsFollowTrigger(t *testing.T) {
	rec := profiletest.SchedulingProcess()
	rec.OtherInformation = nil
	if result := profile.Validate(rec); !result.Has("otherInformation") {
		t.Fatalf("expected other information to be required, got %v", result.ByField())
	}

	rec = profiletest.SchedulingProcess()
	rec.OtherDocuments = []string{"Laudo anterior"}
	if result := profile.Validate(rec); !result.Has("otherDocuments") {
		t.Fatalf("expected extra documents without trigger to be rejected, got %v", result.ByField())
	}

	policies := profiletest.ServicePolicies()
	policies.ComplaintPolicy.Channels = append(policies.ComplaintPolicy.Channels, profile.OtherChannels)
	if result := profile.Validate(policies); !result.Has("complaintPolicy.otherChannels") {
		t.Fatalf("expected nested other channels error, got %v", result.ByField())
	}
}

func TestBasicInfoRules(t *testing.T) {
	rec := profiletest.BasicInfo()
	rec.CNPJ = "12.345.678/0001-90"
	rec.Address.ZipCode = "00000-000"
	rec.Address.State = "sp"
	rec.Address.City = "Sao Paulo 2"
	rec.RevenueStreams = nil
	rec.SocialMedia.YouTube = "https://vimeo.com/x"

	result := profile.Validate(rec)
	for _, path := range []string{"cnpj", "address.zipCode", "address.state", "address.city", "revenueStreams", "socialMedia.youtube"} {
		if !result.Has(path) {
			t.Fatalf("expected issue on %s, got %v", path, result.ByField())
		}
	}
}

func TestBusinessHoursRules(t *testing.T) {
	rec := profiletest.BusinessHours()
	rec.Week.Tuesday.Close = "08:00"
	rec.Week.Monday.Breaks = []profile.TimeRange{{Start: "19:00", End: "20:00"}}
	rec.PeakHours[profile.Friday] = []profile.PeakSlot{{Start: "15:00", End: "14:00"}}
	rec.SeasonalDetails = ""

	result := profile.Validate(rec)
	for _, path := range []string{
		"businessHours.tuesday.close",
		"businessHours.monday.breaks.0",
		"peakHours.friday.0.end",
		"seasonalDetails",
	} {
		if !result.Has(path) {
			t.Fatalf("expected issue on %s, got %v", path, result.ByField())
		}
	}

	rec = profiletest.BusinessHours()
	rec.SelectDays()
	if result := profile.Validate(rec); !result.Has("businessHours") {
		t.Fatalf("expected at least one open day, got %v", result.ByField())
	}
}

func TestStandardResponsesRules(t *testing.T) {
	rec := profiletest.StandardResponses()
	rec.InitialGreeting = "Bom dia, seja bem-vindo!"
	rec.AppointmentConfirmation = "Seu horário está confirmado."
	rec.VisitReminders = "Confira os detalhes em https://turbocar.com.br/agenda"
	rec.ContactPhone = "1234"

	result := profile.Validate(rec)
	for _, path := range []string{"initialGreeting", "appointmentConfirmation", "visitReminders", "contactPhone"} {
		if !result.Has(path) {
			t.Fatalf("expected issue on %s, got %v", path, result.ByField())
		}
	}
}

func TestBrandPersonalityMinimums(t *testing.T) {
	rec := profiletest.BrandPersonality()
	rec.CompanyValues = rec.CompanyValues[:2]
	rec.IdentityElements = rec.IdentityElements[:1]
	result := profile.Validate(rec)
	if !result.Has("companyValues") || !result.Has("identityElements") {
		t.Fatalf("expected cardinality issues, got %v", result.ByField())
	}
}
