// Package profiletest provides valid sample records for every topic.
package profiletest

import "github.com/goliatone/go-intake/pkg/profile"

func ptr[T any](v T) *T { return &v }

// BasicInfo returns a valid company identity.
func BasicInfo() profile.BasicInfo {
	return profile.BasicInfo{
		CompanyName: "Turbo Car Serviços Automotivos Ltda.",
		TradingName: "Turbo Car",
		CNPJ:        "11.222.333/0001-81",
		Address: profile.Address{
			Street:       "Avenida Paulista",
			Number:       "1578",
			Complement:   "Loja 2",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01310-200",
		},
		Website:        "https://www.turbocar.com.br",
		SocialMedia:    profile.SocialMedia{Instagram: "https://instagram.com/turbocar"},
		MarketSegment:  "Serviços",
		AnnualRevenue:  "R$ 100.000 - R$ 500.000",
		RevenueStreams: []string{"Serviços", "Venda de Produtos"},
	}
}

// BusinessHours returns the default week plus attendance details.
func BusinessHours() profile.BusinessHours {
	h := profile.DefaultBusinessHours()
	h.Holidays = []string{"2025-12-25"}
	h.TicketAverage = ptr(350.0)
	h.CustomersPerDay = ptr(18)
	h.TopServices = []string{"Troca de óleo", "Diagnóstico eletrônico"}
	h.HasSeasonal = true
	h.SeasonalDetails = "Movimento maior em dezembro e nas férias de julho."
	h.PeakHours = map[profile.Weekday][]profile.PeakSlot{
		profile.Saturday: {{Start: "09:00", End: "11:00", EstimatedCustomers: 12}},
	}
	h.Week.Monday.Breaks = []profile.TimeRange{{Start: "12:00", End: "13:00"}}
	return h
}

// Capacity returns the default capacity.
func Capacity() profile.Capacity {
	return profile.DefaultCapacity()
}

// ContentProduction returns a weekly publishing plan with paid media.
func ContentProduction() profile.ContentProduction {
	return profile.ContentProduction{
		PublishingFrequency:       "semanalmente",
		AverageVideoDuration:      "5-10",
		ContentResponsible:        "interno",
		HasEditorialCalendar:      profile.Yes,
		MonetizationStrategy:      "Vídeos de antes e depois direcionam clientes para orçamentos pelo WhatsApp da oficina.",
		AverageEngagement:         "Cerca de cinco por cento de engajamento nos reels e boa taxa de salvamento nos tutoriais.",
		ContentIntegration:        "Os conteúdos divulgam serviços do mês e levam para a agenda online com cupom exclusivo.",
		AnalyticsTools:            "Google Analytics e Meta Business Suite",
		HasPaidMedia:              profile.Yes,
		PaidMediaStrategy:         "Campanhas locais no Instagram com raio de dez quilômetros focadas em revisão preventiva.",
		HasInfluencerPartnerships: profile.No,
	}
}

// Raffles returns a monthly giveaway campaign.
func Raffles() profile.Raffles {
	return profile.Raffles{
		Frequency:            "mensal",
		Objective:            "engajamento",
		PromotionDetails:     "Sorteio mensal de uma higienização completa entre seguidores que marcam dois amigos.",
		ParticipationProcess: "Seguir o perfil, curtir a publicação do sorteio e marcar dois amigos nos comentários.",
		AverageRevenue:       5000,
		AverageCost:          1500,
		Platforms:            "Instagram e WhatsApp",
		HasPartnerships:      profile.No,
		AverageEngagement:    "Cada sorteio gera em média trezentos comentários e cerca de cem novos seguidores.",
		AverageLeads:         120,
		AverageTicket:        250,
	}.Derive()
}

// Objectives returns the business goals.
func Objectives() profile.Objectives {
	return profile.Objectives{
		CurrentChallenges: "Muitas mensagens fora do horário comercial ficam sem resposta e viram orçamentos perdidos.",
		Objectives:        "Responder todos os contatos em poucos minutos e converter mais conversas em agendamentos.",
		ROIExpectations:   "Aumentar em vinte por cento os agendamentos mensais nos primeiros três meses de operação.",
		SpecificProject:   "Lançar um pacote de revisão com remapeamento para clientes que já fizeram serviços conosco.",
	}
}

// Services returns a three-entry catalog.
func Services() profile.Services {
	return profile.Services{
		Services: []profile.Service{
			{Name: "Troca de óleo", Category: "maintenance", Complexity: "low", Duration: "00:45", SalePrice: ptr(180.0)},
			{Name: "Remapeamento de ECU", Category: "performance", Expertise: "tuner", Complexity: "high", Duration: "03:00", CostPrice: ptr(400.0), SalePrice: ptr(1500.0)},
			{Name: "Diagnóstico eletrônico", Category: "diagnostic", Expertise: "electronics", Duration: "1:00"},
		},
		ScheduledServices:    []string{"Troca de óleo", "Remapeamento de ECU"},
		NonScheduledServices: []string{"Diagnóstico eletrônico"},
	}
}

// TargetAudience returns one answered question and objection of each kind.
func TargetAudience() profile.TargetAudience {
	return profile.TargetAudience{
		TypicalProfile:   "Homens e mulheres entre vinte e cinco e quarenta e cinco anos apaixonados por carros e desempenho.",
		MainDemands:      "Ganho de potência com segurança, manutenção preventiva e prazos curtos para devolver o carro.",
		CommonQuestions:  []string{"Há garantia no serviço?"},
		QuestionAnswers:  map[string]string{"Há garantia no serviço?": "Sim, todos os serviços têm garantia de noventa dias."},
		OtherQuestions:   []string{"Vocês atendem carros importados?"},
		OtherQuestionAnswers: map[string]string{
			"Vocês atendem carros importados?": "Atendemos as principais marcas importadas com agendamento prévio.",
		},
		CommonObjections:         []string{"Preço elevado"},
		ObjectionStrategies:      map[string]string{"Preço elevado": "Mostrar o parcelamento e o ganho de economia de combustível."},
		OtherObjections:          []string{},
		OtherObjectionStrategies: map[string]string{},
	}
}

// VoiceTone returns a friendly tone.
func VoiceTone() profile.VoiceTone {
	return profile.VoiceTone{
		Tone:               "friendly",
		UseTechnicalJargon: true,
		SectorTerms:        "Remap, stage um, downpipe, intercooler e torque são termos que nossos clientes entendem.",
		ExpressionsToAvoid: "Evitar gírias ofensivas, promessas de potência sem teste e comparações com concorrentes.",
		BrandPersonality:   "Somos entusiastas que explicam cada etapa do serviço com transparência e bom humor.",
	}
}

// SchedulingProcess returns the default notice periods and one extra
// information item.
func SchedulingProcess() profile.SchedulingProcess {
	s := profile.DefaultSchedulingProcess()
	s.RequiredInformation = []string{"Nome completo", "Telefone", profile.OtherInformation}
	s.OtherInformation = []string{"Quilometragem atual"}
	s.RequiredDocuments = []string{"Documento do veículo (CRLV)"}
	s.CancellationPolicy = "Cancelamentos gratuitos com até vinte e quatro horas de antecedência pelo WhatsApp."
	s.ReschedulingPolicy = "Remarcações podem ser feitas uma vez sem custo com pelo menos doze horas de antecedência."
	return s
}

// BusinessRules returns the operating rules.
func BusinessRules() profile.BusinessRules {
	return profile.BusinessRules{
		SchedulingConditions: "Serviços de performance exigem avaliação prévia do veículo antes da confirmação da data.",
		SpecificRestrictions: "Não realizamos modificações em veículos com documentação irregular ou recall pendente.",
		ServicePriorities:    "Clientes com garantia ativa e veículos parados na oficina têm prioridade na agenda.",
		SpecialCases:         "Frotas e clientes corporativos recebem atendimento com horário estendido mediante contrato.",
	}
}

// ServicePolicies returns the protocols with two complaint channels.
func ServicePolicies() profile.ServicePolicies {
	p := profile.DefaultServicePolicies()
	p.WelcomeProtocol = "Cumprimentar pelo nome, oferecer café e apresentar o consultor responsável pelo veículo."
	p.ClosingProtocol = "Explicar o serviço realizado, entregar o laudo e agendar o próximo retorno preventivo."
	p.WarrantyPolicy = "Garantia de noventa dias para mão de obra e conforme fabricante para as peças instaladas."
	p.ComplaintPolicy.Description = "Toda reclamação é registrada, analisada pelo gerente e respondida com uma proposta de solução."
	p.ComplaintPolicy.Channels = []string{"WhatsApp", "E-mail"}
	return p
}

// BrandPersonality returns three values and two identity elements.
func BrandPersonality() profile.BrandPersonality {
	return profile.BrandPersonality{
		CompanyValues: []profile.CompanyValue{
			{Value: "Transparência", Description: "Mostramos cada etapa do serviço ao cliente."},
			{Value: "Segurança", Description: "Nenhuma modificação compromete a confiabilidade do carro."},
			{Value: "Paixão", Description: "Tratamos cada carro como se fosse nosso."},
		},
		CommunicationStyle: "Próximo e animado, com explicações técnicas simples e sempre acompanhadas de exemplos.",
		IdentityElements: []profile.IdentityElement{
			{Element: "Logo turbo", Importance: "Representa desempenho e está presente em todos os uniformes."},
			{Element: "Cor laranja", Importance: "Cor vibrante usada na fachada e nas redes sociais."},
		},
		ServiceExcellence: "Excelência é entregar o carro no prazo, limpo e com o resultado prometido comprovado em teste.",
	}
}

// Specialties returns makes and modifications consistent with Services.
func Specialties() profile.Specialties {
	return profile.Specialties{
		Brands:                []string{"Volkswagen", "Fiat"},
		OtherBrands:           []string{"Troller"},
		Modifications:         []string{"Remapeamento de ECU", "Suspensão"},
		OtherModifications:    []string{},
		PopularServices:       []string{"Remapeamento de ECU"},
		CompetitiveAdvantages: "Dinamômetro próprio, garantia estendida e técnicos certificados pelas principais marcas.",
	}
}

// StandardResponses returns messages that satisfy every content rule.
func StandardResponses() profile.StandardResponses {
	return profile.StandardResponses{
		InitialGreeting:         "Olá! Bem-vindo à Turbo Car. Como posso ajudar você hoje?",
		Farewell:                "Obrigado por nos visitar! Tenha um ótimo dia!",
		AppointmentConfirmation: "Seu agendamento foi confirmado para 15/03/2025 às 14:30.",
		VisitReminders:          "Lembre-se de trazer o documento do veículo para sua visita.",
		WebsiteURL:              "https://www.turbocar.com.br",
		ContactPhone:            "+5511987654321",
	}
}

// Topic returns the sample record for key.
func Topic(key profile.TopicKey) any {
	switch key {
	case profile.TopicBasicInfo:
		return BasicInfo()
	case profile.TopicBusinessHours:
		return BusinessHours()
	case profile.TopicCapacity:
		return Capacity()
	case profile.TopicContentProduction:
		return ContentProduction()
	case profile.TopicRaffles:
		return Raffles()
	case profile.TopicObjectives:
		return Objectives()
	case profile.TopicServices:
		return Services()
	case profile.TopicTargetAudience:
		return TargetAudience()
	case profile.TopicVoiceTone:
		return VoiceTone()
	case profile.TopicSchedulingProcess:
		return SchedulingProcess()
	case profile.TopicBusinessRules:
		return BusinessRules()
	case profile.TopicServicePolicies:
		return ServicePolicies()
	case profile.TopicBrandPersonality:
		return BrandPersonality()
	case profile.TopicSpecialties:
		return Specialties()
	case profile.TopicStandardResponses:
		return StandardResponses()
	}
	return nil
}

// Profile returns a complete aggregate.
func Profile() profile.Profile {
	var p profile.Profile
	for _, topic := range profile.Topics() {
		if err := p.Set(topic.Key, Topic(topic.Key)); err != nil {
			panic(err)
		}
	}
	return p
}
