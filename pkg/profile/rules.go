package profile

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-intake/pkg/validation"
)

var (
	validatorOnce  sync.Once
	topicValidator *validation.Validator
)

// Validator returns the shared validator configured with every topic rule.
func Validator() *validation.Validator {
	validatorOnce.Do(func() {
		topicValidator = validation.MustNew(
			validation.WithRule(validation.Rule{
				Tag:     "option",
				Check:   func(value, set string) bool { return HasOption(set, value) },
				Message: validation.Fixed("Selecione uma opção válida"),
			}),
			validation.WithRule(validation.Rule{
				Tag:     "weekday",
				Check:   func(value, _ string) bool { return isWeekday(Weekday(value)) },
				Message: validation.Fixed("Dia da semana inválido"),
			}),
			validation.WithStructRule(capacityRules, Capacity{}),
			validation.WithStructRule(dayRules, DayHours{}),
			validation.WithStructRule(rangeRules, TimeRange{}),
			validation.WithStructRule(peakRules, PeakSlot{}),
			validation.WithStructRule(hoursRules, BusinessHours{}),
			validation.WithStructRule(contentRules, ContentProduction{}),
			validation.WithStructRule(rafflesRules, Raffles{}),
			validation.WithStructRule(servicesRules, Services{}),
			validation.WithStructRule(audienceRules, TargetAudience{}),
			validation.WithStructRule(schedulingRules, SchedulingProcess{}),
			validation.WithStructRule(complaintRules, ComplaintPolicy{}),
			validation.WithMessage("lte_daily", validation.Fixed("Não pode ser maior que o máximo de agendamentos diários")),
			validation.WithMessage("lte_simultaneous", validation.Fixed("Não pode ser maior que o máximo de agendamentos simultâneos")),
			validation.WithMessage("after_open", validation.Fixed("O fechamento deve ser depois da abertura")),
			validation.WithMessage("after_start", validation.Fixed("O fim deve ser depois do início")),
			validation.WithMessage("within_day", validation.Fixed("O intervalo deve estar dentro do horário de funcionamento")),
			validation.WithMessage("one_day", validation.Fixed("Selecione pelo menos um dia de funcionamento")),
			validation.WithMessage("derived", validation.Fixed("Valor calculado inconsistente")),
			validation.WithMessage("disjoint", validation.Fixed("Um serviço não pode estar em ambas as listas")),
			validation.WithMessage("known_service", validation.Fixed("Serviço não cadastrado")),
			validation.WithMessage("unique_name", validation.Fixed("Já existe um serviço com este nome")),
			validation.WithMessage("answer_required", validation.Fixed("Responda a dúvida selecionada")),
			validation.WithMessage("strategy_required", validation.Fixed("Descreva a estratégia para a objeção selecionada")),
			validation.WithMessage("unknown_label", validation.Fixed("Item não selecionado")),
			validation.WithMessage("other_required", validation.Fixed("Adicione pelo menos um item")),
			validation.WithMessage("other_unselected", validation.Fixed("Selecione a opção \"outros\" para adicionar itens")),
			validation.WithMessage("details_required", validation.Fixed("Descreva os detalhes")),
		)
	})
	return topicValidator
}

// Validate checks one topic record, or a whole Profile, against its rules.
func Validate(record any) validation.Result {
	if p, ok := record.(Profile); ok {
		return p.Validate()
	}
	if p, ok := record.(*Profile); ok && p != nil {
		return p.Validate()
	}
	return Validator().Validate(record)
}

func capacityRules(sl validator.StructLevel) {
	c := sl.Current().Interface().(Capacity)
	if c.MaxSimultaneousAppointments > c.MaxDailyAppointments {
		sl.ReportError(c.MaxSimultaneousAppointments, "maxSimultaneousAppointments", "MaxSimultaneousAppointments", "lte_daily", "")
	}
	if c.ServiceBoxes > c.MaxSimultaneousAppointments {
		sl.ReportError(c.ServiceBoxes, "serviceBoxes", "ServiceBoxes", "lte_simultaneous", "")
	}
}

func dayRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(DayHours)
	if !d.Enabled || !validation.ValidClock(d.Open) || !validation.ValidClock(d.Close) {
		return
	}
	if d.Close <= d.Open {
		sl.ReportError(d.Close, "close", "Close", "after_open", "")
		return
	}
	for i, b := range d.Breaks {
		if !validation.ValidClock(b.Start) || !validation.ValidClock(b.End) {
			continue
		}
		if b.Start < d.Open || b.End > d.Close {
			name := "breaks[" + strconv.Itoa(i) + "]"
			sl.ReportError(b, name, name, "within_day", "")
		}
	}
}

func rangeRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(TimeRange)
	if validation.ValidClock(r.Start) && validation.ValidClock(r.End) && r.End <= r.Start {
		sl.ReportError(r.End, "end", "End", "after_start", "")
	}
}

func peakRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(PeakSlot)
	if validation.ValidClock(p.Start) && validation.ValidClock(p.End) && p.End <= p.Start {
		sl.ReportError(p.End, "end", "End", "after_start", "")
	}
}

func hoursRules(sl validator.StructLevel) {
	h := sl.Current().Interface().(BusinessHours)
	if len(h.Week.EnabledDays()) == 0 {
		sl.ReportError(h.Week, "businessHours", "Week", "one_day", "")
	}
	if h.HasSeasonal {
		details(sl, h.SeasonalDetails, "seasonalDetails", "SeasonalDetails", 10, 1000)
	}
}

func contentRules(sl validator.StructLevel) {
	c := sl.Current().Interface().(ContentProduction)
	if c.PublishingFrequency == FrequencyOther {
		details(sl, c.CustomPublishingFrequency, "customPublishingFrequency", "CustomPublishingFrequency", 3, 100)
	}
	if c.HasPaidMedia == Yes {
		details(sl, c.PaidMediaStrategy, "paidMediaStrategy", "PaidMediaStrategy", 50, 1000)
	}
	if c.HasInfluencerPartnerships == Yes {
		details(sl, c.InfluencerPartnershipsDetails, "influencerPartnershipsDetails", "InfluencerPartnershipsDetails", 50, 1000)
	}
}

func rafflesRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(Raffles)
	if r.Frequency == FrequencyOther {
		details(sl, r.CustomFrequency, "customFrequency", "CustomFrequency", 3, 100)
	}
	if r.HasPartnerships == Yes {
		details(sl, r.PartnershipDetails, "partnershipDetails", "PartnershipDetails", 50, 1000)
	}
	if r.AverageProfit != r.AverageRevenue-r.AverageCost {
		sl.ReportError(r.AverageProfit, "averageProfit", "AverageProfit", "derived", "")
	}
}

func servicesRules(sl validator.StructLevel) {
	s := sl.Current().Interface().(Services)

	known := make(map[string]struct{}, len(s.Services))
	for i, svc := range s.Services {
		name := strings.TrimSpace(svc.Name)
		if name == "" {
			continue
		}
		if _, dup := known[name]; dup {
			field := fmt.Sprintf("services[%d].name", i)
			sl.ReportError(svc.Name, field, field, "unique_name", "")
			continue
		}
		known[name] = struct{}{}
	}

	scheduled := make(map[string]struct{}, len(s.ScheduledServices))
	for i, name := range s.ScheduledServices {
		scheduled[name] = struct{}{}
		if _, ok := known[name]; !ok && name != "" {
			field := fmt.Sprintf("scheduledServices[%d]", i)
			sl.ReportError(name, field, field, "known_service", "")
		}
	}
	overlap := false
	for i, name := range s.NonScheduledServices {
		if _, ok := known[name]; !ok && name != "" {
			field := fmt.Sprintf("nonScheduledServices[%d]", i)
			sl.ReportError(name, field, field, "known_service", "")
		}
		if _, ok := scheduled[name]; ok {
			overlap = true
		}
	}
	if overlap {
		sl.ReportError(s.NonScheduledServices, "nonScheduledServices", "NonScheduledServices", "disjoint", "")
	}
}

func audienceRules(sl validator.StructLevel) {
	a := sl.Current().Interface().(TargetAudience)
	labelled(sl, a.CommonQuestions, a.QuestionAnswers, "questionAnswers", "answer_required")
	labelled(sl, a.OtherQuestions, a.OtherQuestionAnswers, "otherQuestionAnswers", "answer_required")
	labelled(sl, a.CommonObjections, a.ObjectionStrategies, "objectionStrategies", "strategy_required")
	labelled(sl, a.OtherObjections, a.OtherObjectionStrategies, "otherObjectionStrategies", "strategy_required")
}

func schedulingRules(sl validator.StructLevel) {
	s := sl.Current().Interface().(SchedulingProcess)
	others(sl, s.RequiredInformation, OtherInformation, s.OtherInformation, "otherInformation")
	others(sl, s.RequiredDocuments, OtherDocuments, s.OtherDocuments, "otherDocuments")
}

func complaintRules(sl validator.StructLevel) {
	c := sl.Current().Interface().(ComplaintPolicy)
	others(sl, c.Channels, OtherChannels, c.OtherChannels, "otherChannels")
}

// details enforces a conditional free-text field once its companion
// switch is on.
func details(sl validator.StructLevel, value, field, structField string, minLen, maxLen int) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n == 0:
		sl.ReportError(value, field, structField, "details_required", "")
	case n < minLen:
		sl.ReportError(value, field, structField, "min", strconv.Itoa(minLen))
	case n > maxLen:
		sl.ReportError(value, field, structField, "max", strconv.Itoa(maxLen))
	}
}

// labelled requires an entry for every selected label and rejects entries
// whose label is no longer selected.
func labelled(sl validator.StructLevel, labels []string, entries map[string]string, field, missingTag string) {
	selected := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		selected[label] = struct{}{}
		if strings.TrimSpace(entries[label]) == "" {
			name := field + "[" + label + "]"
			sl.ReportError(entries[label], name, name, missingTag, "")
		}
	}
	for label := range entries {
		if _, ok := selected[label]; !ok {
			name := field + "[" + label + "]"
			sl.ReportError(entries[label], name, name, "unknown_label", "")
		}
	}
}

// others ties an "other" free-text list to the checkbox that reveals it.
func others(sl validator.StructLevel, selected []string, trigger string, extra []string, field string) {
	on := false
	for _, s := range selected {
		if s == trigger {
			on = true
			break
		}
	}
	switch {
	case on && len(extra) == 0:
		sl.ReportError(extra, field, field, "other_required", "")
	case !on && len(extra) > 0:
		sl.ReportError(extra, field, field, "other_unselected", "")
	}
}

func isWeekday(d Weekday) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}
