package tui

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/profile/profiletest"
	"github.com/goliatone/go-intake/pkg/wizard"
	"github.com/goliatone/go-intake/pkg/wizard/wizardtest"
)

// stubDriver replays scripted answers per prompt kind. Once a queue runs
// out it answers with the prompt default, except Select which aborts so a
// test can stop the runner at a known point.
type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return cfg.Default, nil
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return cfg.Default, nil
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, ErrAborted
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return cfg.Defaults, nil
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return cfg.Default, nil
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) said(fragment string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

func newTestRunner(t *testing.T, driver PromptDriver, opts ...Option) *Runner {
	t.Helper()
	base := []Option{WithPromptDriver(driver), WithFormOptions(forms.WithSaveDelay(0)), WithYear(2025)}
	r, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r
}

func partialProfile(keys ...profile.TopicKey) profile.Profile {
	var p profile.Profile
	for _, key := range keys {
		if err := p.Set(key, profiletest.Topic(key)); err != nil {
			panic(err)
		}
	}
	return p
}

func TestRunCompletesFromFastFill(t *testing.T) {
	responses := profiletest.StandardResponses()
	driver := &stubDriver{
		inputs: []string{
			"", "", // specialties: no new brands or modifications
			responses.InitialGreeting,
			responses.Farewell,
			responses.AppointmentConfirmation,
			responses.VisitReminders,
			responses.WebsiteURL,
			responses.ContactPhone,
		},
		selectIdx: []int{0, 0},
	}
	c := wizard.New()
	if err := wizardtest.FastFill(c); err != nil {
		t.Fatalf("fast fill: %v", err)
	}

	got, err := newTestRunner(t, driver).Run(context.Background(), c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !c.Completed() || !got.Complete() {
		t.Fatalf("expected a complete profile, got %v", got.Keys())
	}
	if result := got.Validate(); !result.Valid {
		t.Fatalf("collected profile invalid: %v", result.ByField())
	}
	if got.StandardResponses.InitialGreeting != responses.InitialGreeting {
		t.Fatalf("greeting not captured: %q", got.StandardResponses.InitialGreeting)
	}
	if !driver.said("[15/15]") || !driver.said("Formulário concluído") {
		t.Fatalf("missing progress or completion notice: %v", driver.infoMessages)
	}
}

func TestRunBackRetreats(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	c := wizard.New()
	if err := wizardtest.FastFill(c); err != nil {
		t.Fatalf("fast fill: %v", err)
	}

	_, err := newTestRunner(t, driver).Run(context.Background(), c)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
	if c.Cursor() != 13 {
		t.Fatalf("expected cursor 13 after going back, got %d", c.Cursor())
	}
	if !c.Profile().Has(profile.TopicSpecialties) {
		t.Fatalf("going back must keep submitted topics")
	}
}

func TestRunQuitKeepsCursor(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{3}}
	c := wizard.New()
	if err := wizardtest.FastFill(c); err != nil {
		t.Fatalf("fast fill: %v", err)
	}
	before := c.Cursor()

	_, err := newTestRunner(t, driver).Run(context.Background(), c)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
	if c.Cursor() != before {
		t.Fatalf("quit moved the cursor from %d to %d", before, c.Cursor())
	}
	if driver.selectPos != 1 {
		t.Fatalf("expected a single action prompt, got %d", driver.selectPos)
	}
}

func TestRunShowsIssuesAndReedits(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"5", "10", "15", "3", "20", "5", "15", "3"},
		selectIdx: []int{0, 0},
	}
	c := wizard.New()
	if err := wizardtest.Jump(c, 3, partialProfile(profile.TopicBasicInfo, profile.TopicBusinessHours)); err != nil {
		t.Fatalf("jump: %v", err)
	}

	_, err := newTestRunner(t, driver).Run(context.Background(), c)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort on the next page, got %v", err)
	}
	if c.Cursor() != 4 {
		t.Fatalf("expected to reach step 4, got %d", c.Cursor())
	}
	if !driver.said("maxSimultaneousAppointments") {
		t.Fatalf("expected the cross-field issue to be shown: %v", driver.infoMessages)
	}
	if !driver.said("(pico)") {
		t.Fatalf("expected the capacity preview: %v", driver.infoMessages)
	}
	if got := c.Profile().Capacity.MaxDailyAppointments; got != 20 {
		t.Fatalf("expected corrected capacity, got %d", got)
	}
}

func TestRunRetriesAfterSaveFailure(t *testing.T) {
	var calls atomic.Int32
	hook := forms.WithSaveHook(func(context.Context, profile.TopicKey, any) error {
		if calls.Add(1) == 1 {
			return errors.New("disk full")
		}
		return nil
	})
	driver := &stubDriver{selectIdx: []int{0, 0}}
	c := wizard.New()
	if err := wizardtest.Jump(c, 3, partialProfile(profile.TopicBasicInfo, profile.TopicBusinessHours)); err != nil {
		t.Fatalf("jump: %v", err)
	}

	_, err := newTestRunner(t, driver, WithFormOptions(hook)).Run(context.Background(), c)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort on the next page, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected two save attempts, got %d", calls.Load())
	}
	if c.Cursor() != 4 {
		t.Fatalf("expected to reach step 4, got %d", c.Cursor())
	}
	if !driver.said("Não foi possível salvar") {
		t.Fatalf("expected the transient save notice: %v", driver.infoMessages)
	}
}

func TestEditorListsAndLabels(t *testing.T) {
	driver := &stubDriver{
		// the second entry folds onto the first
		inputs: []string{"Demora na entrega", "demora na ENTREGA", ""},
	}
	r := newTestRunner(t, driver)
	audience := profiletest.TargetAudience()
	audience.OtherObjections = []string{}

	e := newEditor(r, profile.TopicTargetAudience, forms.Context{})
	e.root = reflect.ValueOf(&audience).Elem()
	field, _ := e.root.Type().FieldByName("OtherObjections")
	cfg := r.schema.Field(string(profile.TopicTargetAudience), "otherObjections")
	if err := e.field(context.Background(), e.root, e.root.FieldByName("OtherObjections"), field, "otherObjections", cfg); err != nil {
		t.Fatalf("edit list: %v", err)
	}
	if len(audience.OtherObjections) != 1 || audience.OtherObjections[0] != "Demora na entrega" {
		t.Fatalf("expected one deduplicated entry, got %v", audience.OtherObjections)
	}

	driver.inputs = append(driver.inputs, "Explicamos o cronograma e enviamos fotos do andamento.")
	field, _ = e.root.Type().FieldByName("OtherObjectionStrategies")
	cfg = r.schema.Field(string(profile.TopicTargetAudience), "otherObjectionStrategies")
	if err := e.field(context.Background(), e.root, e.root.FieldByName("OtherObjectionStrategies"), field, "otherObjectionStrategies", cfg); err != nil {
		t.Fatalf("edit labels: %v", err)
	}
	if got := audience.OtherObjectionStrategies["Demora na entrega"]; !strings.HasPrefix(got, "Explicamos") {
		t.Fatalf("strategy not stored: %v", audience.OtherObjectionStrategies)
	}
}

func TestTagHelpers(t *testing.T) {
	if got := optionSet("min=1,unique,dive,option=carBrands"); got != "carBrands" {
		t.Fatalf("optionSet: %q", got)
	}
	if got := minLength("min=50,max=1000"); got != 50 {
		t.Fatalf("minLength: %d", got)
	}
	if got := minLength("unique,dive,min=20"); got != 0 {
		t.Fatalf("minLength should stop at dive: %d", got)
	}
	if got := humanize("maxDailyAppointments"); got != "Max daily appointments" {
		t.Fatalf("humanize: %q", got)
	}
}

func TestOptionHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if got := optionIndex(options, "b"); got != 1 {
		t.Fatalf("optionIndex: %d", got)
	}
	if got := optionIndices(options, []string{"c", "a"}); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("optionIndices: %v", got)
	}
	if got := pickOptions(options, []int{2, 7}); len(got) != 1 || got[0] != "c" {
		t.Fatalf("pickOptions: %v", got)
	}
}
