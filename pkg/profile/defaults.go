package profile

func openDay(openAt, closeAt string, enabled bool) DayHours {
	return DayHours{Open: openAt, Close: closeAt, Enabled: enabled, Breaks: []TimeRange{}}
}

// DefaultBusinessHours opens Monday to Friday 09-18 and Saturday 09-13.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		Week: WeekHours{
			Monday:    openDay("09:00", "18:00", true),
			Tuesday:   openDay("09:00", "18:00", true),
			Wednesday: openDay("09:00", "18:00", true),
			Thursday:  openDay("09:00", "18:00", true),
			Friday:    openDay("09:00", "18:00", true),
			Saturday:  openDay("09:00", "13:00", true),
			Sunday:    openDay("09:00", "13:00", false),
		},
		AverageVisitDuration: 30,
		Holidays:             []string{},
		TopServices:          []string{},
		PeakHours:            map[Weekday][]PeakSlot{},
	}
}

// DefaultCapacity seeds the capacity page.
func DefaultCapacity() Capacity {
	return Capacity{
		MaxDailyAppointments:        20,
		MaxSimultaneousAppointments: 5,
		MinAppointmentInterval:      15,
		ServiceBoxes:                3,
	}.Derive()
}

// DefaultContentProduction starts every switch on "no".
func DefaultContentProduction() ContentProduction {
	return ContentProduction{
		HasEditorialCalendar:      No,
		HasPaidMedia:              No,
		HasInfluencerPartnerships: No,
	}
}

// DefaultRaffles starts with zeroed figures.
func DefaultRaffles() Raffles {
	return Raffles{HasPartnerships: No}.Derive()
}

// DefaultServices starts with an empty catalog.
func DefaultServices() Services {
	return Services{
		Services:             []Service{},
		ScheduledServices:    []string{},
		NonScheduledServices: []string{},
	}
}

// DefaultTargetAudience starts with nothing selected.
func DefaultTargetAudience() TargetAudience {
	return TargetAudience{
		CommonQuestions:          []string{},
		QuestionAnswers:          map[string]string{},
		OtherQuestions:           []string{},
		OtherQuestionAnswers:     map[string]string{},
		CommonObjections:         []string{},
		ObjectionStrategies:      map[string]string{},
		OtherObjections:          []string{},
		OtherObjectionStrategies: map[string]string{},
	}
}

// DefaultVoiceTone seeds the tone page.
func DefaultVoiceTone() VoiceTone {
	return VoiceTone{Tone: "friendly"}
}

// DefaultSchedulingProcess asks for 24h notice to book or cancel and 12h
// to reschedule.
func DefaultSchedulingProcess() SchedulingProcess {
	return SchedulingProcess{
		RequiredInformation: []string{},
		OtherInformation:    []string{},
		RequiredDocuments:   []string{},
		OtherDocuments:      []string{},
		MinimumAdvanceTime: MinimumAdvance{
			Scheduling:   AdvanceTime{Value: 24, Unit: "hours"},
			Cancellation: AdvanceTime{Value: 24, Unit: "hours"},
			Rescheduling: AdvanceTime{Value: 12, Unit: "hours"},
		},
	}
}

// DefaultServicePolicies promises a complaint answer within 24 hours.
func DefaultServicePolicies() ServicePolicies {
	return ServicePolicies{
		ComplaintPolicy: ComplaintPolicy{
			Channels:      []string{},
			OtherChannels: []string{},
			ResponseTime:  ResponseTime{Value: 24, Unit: "hours"},
		},
	}
}

// DefaultBrandPersonality starts with empty lists.
func DefaultBrandPersonality() BrandPersonality {
	return BrandPersonality{
		CompanyValues:    []CompanyValue{},
		IdentityElements: []IdentityElement{},
	}
}

// DefaultSpecialties starts with nothing selected.
func DefaultSpecialties() Specialties {
	return Specialties{
		Brands:             []string{},
		OtherBrands:        []string{},
		Modifications:      []string{},
		OtherModifications: []string{},
		PopularServices:    []string{},
	}
}

// ResponseExamples holds the example phrases offered for the standard
// responses, keyed by field name.
var ResponseExamples = map[string][]string{
	"initialGreeting": {
		"Olá! Bem-vindo à nossa loja. Como posso ajudar você hoje?",
		"Bom dia! Em que posso ser útil?",
		"Oi! Estamos à disposição para atendê-lo.",
	},
	"farewell": {
		"Obrigado por nos visitar! Tenha um ótimo dia!",
		"Foi um prazer atendê-lo. Até a próxima!",
		"Agradecemos sua visita. Volte sempre!",
	},
	"appointmentConfirmation": {
		"Seu agendamento foi confirmado para o dia XX/XX às XX:XX.",
		"Confirmamos seu horário para XX/XX às XX:XX.",
		"Seu compromisso está marcado para XX/XX às XX:XX.",
	},
	"visitReminders": {
		"Lembre-se de trazer os documentos necessários para sua visita.",
		"Não se esqueça de trazer os itens solicitados para o atendimento.",
		"Por favor, traga os documentos requeridos para sua consulta.",
	},
}
