package profile

// Option is one selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// Option set names, used by the `option=<set>` validation tag and by the
// prompt runner to build select lists.
const (
	SetMarketSegment        = "marketSegment"
	SetAnnualRevenue        = "annualRevenue"
	SetRevenueStreams       = "revenueStreams"
	SetYesNo                = "yesNo"
	SetPublishingFrequency  = "publishingFrequency"
	SetVideoDuration        = "videoDuration"
	SetContentResponsible   = "contentResponsible"
	SetRaffleFrequency      = "raffleFrequency"
	SetRaffleObjective      = "raffleObjective"
	SetExpertise            = "expertise"
	SetServiceCategory      = "serviceCategory"
	SetComplexity           = "complexity"
	SetCommonQuestions      = "commonQuestions"
	SetCommonObjections     = "commonObjections"
	SetTone                 = "tone"
	SetRequiredInformation  = "requiredInformation"
	SetRequiredDocuments    = "requiredDocuments"
	SetAdvanceUnit          = "advanceUnit"
	SetComplaintChannels    = "complaintChannels"
	SetResponseUnit         = "responseUnit"
	SetCarBrands            = "carBrands"
	SetModificationTypes    = "modificationTypes"
	SetCommonServices       = "commonServices"
	SetStates               = "states"
	SetWeekdays             = "weekdays"
	SetVisitDurationPresets = "visitDurationPresets"
)

// Labels that reveal a free-text list of extra entries when selected.
const (
	OtherInformation = "Outras informações"
	OtherDocuments   = "Outros documentos"
	OtherChannels    = "Outros canais"
	FrequencyOther   = "outro"
	Yes              = "sim"
	No               = "nao"
)

func plain(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

var optionSets = map[string][]Option{
	SetMarketSegment: plain("E-commerce", "Varejo", "Tecnologia", "Serviços", "Indústria", "Outros"),
	SetAnnualRevenue: plain(
		"Até R$ 100.000",
		"R$ 100.000 - R$ 500.000",
		"R$ 500.000 - R$ 1.000.000",
		"Acima de R$ 1.000.000",
	),
	SetRevenueStreams: plain("Venda de Produtos", "Serviços", "Assinaturas", "Publicidade", "Parcerias", "Outros"),
	SetYesNo:          {{Value: Yes, Label: "Sim"}, {Value: No, Label: "Não"}},
	SetPublishingFrequency: {
		{Value: "diariamente", Label: "Diariamente"},
		{Value: "semanalmente", Label: "Semanalmente"},
		{Value: "quinzenalmente", Label: "Quinzenalmente"},
		{Value: "mensalmente", Label: "Mensalmente"},
		{Value: FrequencyOther, Label: "Outro"},
	},
	SetVideoDuration: {
		{Value: "menos-5", Label: "Menos de 5 minutos"},
		{Value: "5-10", Label: "5 a 10 minutos"},
		{Value: "10-15", Label: "10 a 15 minutos"},
		{Value: "15-30", Label: "15 a 30 minutos"},
		{Value: "mais-30", Label: "Mais de 30 minutos"},
	},
	SetContentResponsible: {
		{Value: "interno", Label: "Equipe interna"},
		{Value: "terceirizado", Label: "Terceirizado"},
	},
	SetRaffleFrequency: {
		{Value: "semanal", Label: "Semanal"},
		{Value: "quinzenal", Label: "Quinzenal"},
		{Value: "mensal", Label: "Mensal"},
		{Value: "bimestral", Label: "Bimestral"},
		{Value: "trimestral", Label: "Trimestral"},
		{Value: FrequencyOther, Label: "Outro"},
	},
	SetRaffleObjective: {
		{Value: "engajamento", Label: "Engajamento"},
		{Value: "leads", Label: "Geração de leads"},
		{Value: "vendas", Label: "Vendas"},
		{Value: "branding", Label: "Reconhecimento de marca"},
		{Value: "fidelizacao", Label: "Fidelização"},
	},
	SetExpertise: {
		{Value: "mechanic", Label: "Mecânico"},
		{Value: "tuner", Label: "Preparador"},
		{Value: "electronics", Label: "Eletrônica"},
		{Value: "aesthetics", Label: "Estética"},
	},
	SetServiceCategory: {
		{Value: "mechanical", Label: "Mecânica"},
		{Value: "electrical", Label: "Elétrica"},
		{Value: "aesthetics", Label: "Estética"},
		{Value: "performance", Label: "Performance"},
		{Value: "diagnostic", Label: "Diagnóstico"},
		{Value: "maintenance", Label: "Manutenção"},
	},
	SetComplexity: {
		{Value: "low", Label: "Baixa"},
		{Value: "medium", Label: "Média"},
		{Value: "high", Label: "Alta"},
	},
	SetCommonQuestions: plain(
		"Qual o tempo médio de serviço?",
		"Qual o valor do investimento?",
		"Quais as formas de pagamento?",
		"Há garantia no serviço?",
		"O carro perde a garantia de fábrica?",
		"Posso acompanhar o serviço?",
		"Vocês fornecem laudo técnico?",
		"Qual a durabilidade das modificações?",
	),
	SetCommonObjections: plain(
		"Preço elevado",
		"Perda da garantia do veículo",
		"Receio de problemas futuros",
		"Dúvidas sobre a qualidade",
		"Tempo de execução longo",
		"Falta de referências",
		"Concorrentes mais baratos",
		"Insegurança sobre modificações",
	),
	SetTone: {
		{Value: "formal", Label: "Formal"},
		{Value: "informal", Label: "Informal"},
		{Value: "friendly", Label: "Amigável"},
		{Value: "technical", Label: "Técnico"},
	},
	SetRequiredInformation: plain(
		"Nome completo",
		"Telefone",
		"E-mail",
		"Modelo do veículo",
		"Ano do veículo",
		"Placa do veículo",
		"Serviço desejado",
		OtherInformation,
	),
	SetRequiredDocuments: plain(
		"Documento de identidade",
		"CPF",
		"Documento do veículo (CRLV)",
		"Manual do proprietário",
		"Comprovante de pagamento",
		OtherDocuments,
	),
	SetAdvanceUnit: {
		{Value: "hours", Label: "Horas"},
		{Value: "days", Label: "Dias"},
		{Value: "weeks", Label: "Semanas"},
	},
	SetComplaintChannels: plain(
		"WhatsApp",
		"Telefone",
		"E-mail",
		"Presencial",
		"Redes sociais",
		"Site",
		OtherChannels,
	),
	SetResponseUnit: {
		{Value: "minutes", Label: "Minutos"},
		{Value: "hours", Label: "Horas"},
		{Value: "days", Label: "Dias"},
	},
	SetCarBrands: plain(
		"Volkswagen", "Chevrolet", "Fiat", "Ford", "Toyota", "Honda",
		"Hyundai", "Renault", "Jeep", "Nissan", "BMW", "Mercedes-Benz", "Audi",
	),
	SetModificationTypes: plain(
		"Remapeamento de ECU",
		"Suspensão",
		"Escapamento",
		"Rodas e pneus",
		"Freios",
		"Som automotivo",
		"Iluminação",
		"Envelopamento",
	),
	SetCommonServices: plain(
		"Troca de óleo",
		"Alinhamento e balanceamento",
		"Revisão preventiva",
		"Diagnóstico eletrônico",
		"Polimento",
		"Higienização interna",
	),
	SetStates: plain(
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
		"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	),
	SetWeekdays: {
		{Value: string(Monday), Label: "Segunda-feira"},
		{Value: string(Tuesday), Label: "Terça-feira"},
		{Value: string(Wednesday), Label: "Quarta-feira"},
		{Value: string(Thursday), Label: "Quinta-feira"},
		{Value: string(Friday), Label: "Sexta-feira"},
		{Value: string(Saturday), Label: "Sábado"},
		{Value: string(Sunday), Label: "Domingo"},
	},
	SetVisitDurationPresets: plain("15", "30", "45", "60", "90", "120"),
}

// Options returns a copy of the named option set.
func Options(set string) []Option {
	opts := optionSets[set]
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// OptionValues lists the values of the named set.
func OptionValues(set string) []string {
	opts := optionSets[set]
	out := make([]string, len(opts))
	for i, opt := range opts {
		out[i] = opt.Value
	}
	return out
}

// OptionLabels lists the display labels of the named set.
func OptionLabels(set string) []string {
	opts := optionSets[set]
	out := make([]string, len(opts))
	for i, opt := range opts {
		out[i] = opt.Label
	}
	return out
}

// HasOption reports whether value belongs to the named set. Unknown sets
// never match.
func HasOption(set, value string) bool {
	for _, opt := range optionSets[set] {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// LabelFor returns the label of value within set, or value itself.
func LabelFor(set, value string) string {
	for _, opt := range optionSets[set] {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
