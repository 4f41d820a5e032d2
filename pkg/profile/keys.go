package profile

// TopicKey names one business-profile topic. Keys double as the JSON and
// YAML property names of the aggregate record.
type TopicKey string

const (
	TopicBasicInfo         TopicKey = "basicInfo"
	TopicBusinessHours     TopicKey = "businessHours"
	TopicCapacity          TopicKey = "capacity"
	TopicContentProduction TopicKey = "contentProduction"
	TopicRaffles           TopicKey = "raffles"
	TopicObjectives        TopicKey = "objectives"
	TopicServices          TopicKey = "services"
	TopicTargetAudience    TopicKey = "targetAudience"
	TopicVoiceTone         TopicKey = "voiceTone"
	TopicSchedulingProcess TopicKey = "schedulingProcess"
	TopicBusinessRules     TopicKey = "businessRules"
	TopicServicePolicies   TopicKey = "servicePolicies"
	TopicBrandPersonality  TopicKey = "brandPersonality"
	TopicSpecialties       TopicKey = "specialties"
	TopicStandardResponses TopicKey = "standardResponses"
)

// Topic describes one wizard page.
type Topic struct {
	Step        int
	Key         TopicKey
	Title       string
	Description string
}

var topics = []Topic{
	{Step: 1, Key: TopicBasicInfo, Title: "Informações Básicas", Description: "Dados cadastrais, endereço e presença digital"},
	{Step: 2, Key: TopicBusinessHours, Title: "Horário de Funcionamento", Description: "Dias, horários, feriados e movimento"},
	{Step: 3, Key: TopicCapacity, Title: "Capacidade de Atendimento", Description: "Limites de agendamentos e boxes"},
	{Step: 4, Key: TopicContentProduction, Title: "Produção de Conteúdo", Description: "Frequência, formatos e estratégia"},
	{Step: 5, Key: TopicRaffles, Title: "Sorteios e Promoções", Description: "Mecânica, resultados e parcerias"},
	{Step: 6, Key: TopicObjectives, Title: "Objetivos", Description: "Desafios atuais e expectativas"},
	{Step: 7, Key: TopicServices, Title: "Serviços", Description: "Catálogo e modalidade de agendamento"},
	{Step: 8, Key: TopicTargetAudience, Title: "Público-Alvo", Description: "Perfil, dúvidas e objeções"},
	{Step: 9, Key: TopicVoiceTone, Title: "Tom de Voz", Description: "Estilo de comunicação"},
	{Step: 10, Key: TopicSchedulingProcess, Title: "Processo de Agendamento", Description: "Informações, documentos e antecedência"},
	{Step: 11, Key: TopicBusinessRules, Title: "Regras de Negócio", Description: "Condições, restrições e exceções"},
	{Step: 12, Key: TopicServicePolicies, Title: "Políticas de Atendimento", Description: "Protocolos, garantia e reclamações"},
	{Step: 13, Key: TopicBrandPersonality, Title: "Personalidade da Marca", Description: "Valores e identidade"},
	{Step: 14, Key: TopicSpecialties, Title: "Especialidades", Description: "Marcas, modificações e diferenciais"},
	{Step: 15, Key: TopicStandardResponses, Title: "Respostas Padrão", Description: "Mensagens usadas no atendimento"},
}

// TopicCount is the number of wizard pages.
const TopicCount = 15

// Topics returns every topic in step order.
func Topics() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// TopicAt returns the topic shown at the 1-based step.
func TopicAt(step int) (Topic, bool) {
	if step < 1 || step > len(topics) {
		return Topic{}, false
	}
	return topics[step-1], true
}

// Lookup returns the topic registered under key.
func Lookup(key TopicKey) (Topic, bool) {
	for _, topic := range topics {
		if topic.Key == key {
			return topic, true
		}
	}
	return Topic{}, false
}

// Valid reports whether key is one of the fixed topic keys.
func (k TopicKey) Valid() bool {
	_, ok := Lookup(k)
	return ok
}

// Step returns the 1-based page index of the key, or 0 when unknown.
func (k TopicKey) Step() int {
	topic, ok := Lookup(k)
	if !ok {
		return 0
	}
	return topic.Step
}

func (k TopicKey) String() string { return string(k) }
