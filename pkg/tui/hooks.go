package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-intake/pkg/capacity"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/validation"
)

// hook adds topic specific prompts around the generic walk.
type hook struct {
	before func(*editor, context.Context, any) error
	after  func(*editor, context.Context, any) error
}

var hooks = map[profile.TopicKey]hook{
	profile.TopicBusinessHours: {before: (*editor).selectDays, after: (*editor).peakHours},
	profile.TopicCapacity:      {after: (*editor).previewCapacity},
	profile.TopicServices:      {before: (*editor).duplicateService},
}

// Day groups offered before the per-day table.
var dayGroups = []string{"Segunda a sexta", "Fim de semana", "Todos os dias", "Personalizado"}

func (e *editor) selectDays(ctx context.Context, record any) error {
	h := record.(*profile.BusinessHours)

	idx, err := e.r.driver.Select(ctx, SelectConfig{Message: "Dias de funcionamento", Options: dayGroups})
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		h.SelectDays(profile.WorkingDays...)
	case 1:
		h.SelectDays(profile.Weekend...)
	case 2:
		h.SelectDays(profile.Weekdays...)
	default:
		var current []int
		for i, d := range profile.Weekdays {
			if h.Week.Day(d).Enabled {
				current = append(current, i)
			}
		}
		picked, err := e.r.driver.MultiSelect(ctx, SelectConfig{
			Message:  "Escolha os dias",
			Options:  profile.OptionLabels(profile.SetWeekdays),
			Defaults: current,
		})
		if err != nil {
			return err
		}
		days := make([]profile.Weekday, 0, len(picked))
		for _, i := range picked {
			if i >= 0 && i < len(profile.Weekdays) {
				days = append(days, profile.Weekdays[i])
			}
		}
		h.SelectDays(days...)
	}

	ok, err := e.r.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Incluir os feriados nacionais de %d?", e.r.year)})
	if err != nil {
		return err
	}
	if ok {
		added := h.AddNationalHolidays(e.r.year)
		return e.r.info(ctx, fmt.Sprintf("%d feriados adicionados", added))
	}
	return nil
}

func (e *editor) peakHours(ctx context.Context, record any) error {
	h := record.(*profile.BusinessHours)

	if len(h.PeakHours) > 0 {
		if err := e.r.info(ctx, "Horários de pico: "+describePeaks(h.PeakHours)); err != nil {
			return err
		}
		wipe, err := e.r.driver.Confirm(ctx, ConfirmConfig{Message: "Apagar os horários de pico cadastrados?"})
		if err != nil {
			return err
		}
		if wipe {
			h.PeakHours = map[profile.Weekday][]profile.PeakSlot{}
		}
	}

	for {
		more, err := e.r.driver.Confirm(ctx, ConfirmConfig{Message: "Adicionar horário de pico?"})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		idx, err := e.r.driver.Select(ctx, SelectConfig{Message: "Dia", Options: profile.OptionLabels(profile.SetWeekdays)})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(profile.Weekdays) {
			continue
		}
		start, err := e.r.driver.Input(ctx, InputConfig{Message: "Início", Placeholder: "HH:MM", Validator: clock})
		if err != nil {
			return err
		}
		end, err := e.r.driver.Input(ctx, InputConfig{Message: "Fim", Placeholder: "HH:MM", Validator: clock})
		if err != nil {
			return err
		}
		raw, err := e.r.driver.Input(ctx, InputConfig{Message: "Clientes estimados", Default: "0", Validator: count})
		if err != nil {
			return err
		}
		customers, _ := strconv.Atoi(strings.TrimSpace(raw))
		h.AddPeak(profile.Weekdays[idx], profile.PeakSlot{Start: start, End: end, EstimatedCustomers: customers})
	}
}

func (e *editor) previewCapacity(ctx context.Context, record any) error {
	c := record.(*profile.Capacity)
	p := capacity.Project(c.MaxDailyAppointments, c.MaxSimultaneousAppointments, c.MinAppointmentInterval, e.r.projection...)

	var b strings.Builder
	fmt.Fprintf(&b, "Previsão de ocupação (%d atendimentos por hora, média %d)", p.AppointmentsPerHour, p.AveragePerHour)
	for _, bucket := range p.Buckets {
		marker := ""
		if bucket.Peak {
			marker = " (pico)"
		}
		fmt.Fprintf(&b, "\n  %02d:00  disponível %d  agendado %d  capacidade %d%s",
			bucket.Hour, bucket.Available, bucket.Scheduled, bucket.MaxCapacity, marker)
	}
	return e.r.info(ctx, b.String())
}

func (e *editor) duplicateService(ctx context.Context, record any) error {
	s := record.(*profile.Services)
	if len(s.Services) == 0 {
		return nil
	}
	ok, err := e.r.driver.Confirm(ctx, ConfirmConfig{Message: "Duplicar um serviço existente?"})
	if err != nil || !ok {
		return err
	}
	idx, err := e.r.driver.Select(ctx, SelectConfig{Message: "Serviço", Options: s.Names()})
	if err != nil {
		return err
	}
	s.DuplicateService(idx)
	return nil
}

func describePeaks(peaks map[profile.Weekday][]profile.PeakSlot) string {
	var parts []string
	for _, d := range profile.Weekdays {
		for _, slot := range peaks[d] {
			parts = append(parts, fmt.Sprintf("%s %s-%s", profile.LabelFor(profile.SetWeekdays, string(d)), slot.Start, slot.End))
		}
	}
	return strings.Join(parts, ", ")
}

func clock(s string) error {
	if !validation.ValidClock(strings.TrimSpace(s)) {
		return errors.New("use o formato HH:MM")
	}
	return nil
}

func count(s string) error {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err != nil || n < 0 {
		return errors.New("informe um número maior ou igual a zero")
	}
	return nil
}
