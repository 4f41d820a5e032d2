// Package tui drives the intake wizard from a terminal. Each topic record
// is walked field by field with prompts chosen from its type, validation
// tags and the uischema overlay.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"go.uber.org/zap"

	"github.com/goliatone/go-intake/pkg/capacity"
	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/logging"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/uischema"
	"github.com/goliatone/go-intake/pkg/validation"
	"github.com/goliatone/go-intake/pkg/wizard"
)

// Page actions offered after editing.
const (
	actionContinue = "Continuar"
	actionEdit     = "Editar novamente"
	actionBack     = "Voltar"
	actionQuit     = "Sair"
)

// Runner walks a wizard controller until the profile is complete.
type Runner struct {
	driver     PromptDriver
	theme      Theme
	schema     *uischema.Store
	logger     *logging.Logger
	formOpts   []forms.Option
	projection []capacity.Option
	year       int
}

// New constructs a runner with defaults (survey driver, embedded overlay).
func New(options ...Option) (*Runner, error) {
	r := &Runner{
		theme:  DefaultTheme,
		logger: logging.Nop(),
		year:   time.Now().Year(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(terminal.Stdio{})
	}
	if r.schema == nil {
		store, err := uischema.Default()
		if err != nil {
			return nil, fmt.Errorf("tui: load prompt overlay: %w", err)
		}
		r.schema = store
	}
	return r, nil
}

// Run prompts every remaining topic. It returns the profile collected so
// far together with ErrAborted when the operator interrupts, so callers can
// snapshot the session.
func (r *Runner) Run(ctx context.Context, c *wizard.Controller) (profile.Profile, error) {
	if ctx == nil {
		return profile.Profile{}, errors.New("tui: context is required")
	}
	if r.driver == nil {
		return profile.Profile{}, ErrNoDriver
	}

	for !c.Completed() {
		if err := ctx.Err(); err != nil {
			return c.Profile(), err
		}
		if err := r.page(ctx, c); err != nil {
			return c.Profile(), err
		}
	}

	if err := r.info(ctx, "Formulário concluído com sucesso! Todas as informações foram salvas."); err != nil {
		return c.Profile(), err
	}
	return c.Profile(), nil
}

// page handles one topic until the operator continues or goes back.
func (r *Runner) page(ctx context.Context, c *wizard.Controller) error {
	step := c.Current()
	handle, err := c.Form(r.formOpts...)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("[%d/%d] %s (%.0f%%)", step.Index, step.Total, step.Title, c.Progress()*100)
	if topic, ok := r.schema.Topic(string(step.Key)); ok && topic.Form.Subtitle != "" {
		header += "\n" + topic.Form.Subtitle
	}
	if err := r.info(ctx, header); err != nil {
		return err
	}

	log := r.logger.With(zap.String("topic", string(step.Key)))
	edit := true
	for {
		if edit {
			result, err := handle.Edit(func(record any) error {
				e := newEditor(r, step.Key, c.PageContext())
				return e.edit(ctx, record)
			})
			if err != nil {
				return err
			}
			if err := r.issues(ctx, result); err != nil {
				return err
			}
		}

		actions := []string{actionContinue, actionEdit}
		if !step.First() {
			actions = append(actions, actionBack)
		}
		actions = append(actions, actionQuit)
		idx, err := r.driver.Select(ctx, SelectConfig{Message: "O que deseja fazer?", Options: actions})
		if err != nil {
			return err
		}

		switch pick(actions, idx) {
		case actionBack:
			c.Retreat()
			return nil
		case actionEdit:
			edit = true
			continue
		case actionQuit:
			return ErrAborted
		}

		err = handle.Submit(ctx)
		if err == nil {
			return nil
		}
		if result, ok := forms.IsValidation(err); ok {
			if err := r.issues(ctx, result); err != nil {
				return err
			}
			edit = true
			continue
		}
		var saveErr *forms.SaveError
		if errors.As(err, &saveErr) {
			log.Warn("save failed", zap.Error(err))
			if err := r.fail(ctx, "Não foi possível salvar os dados. Tente novamente."); err != nil {
				return err
			}
			edit = false
			continue
		}
		return err
	}
}

func (r *Runner) issues(ctx context.Context, result validation.Result) error {
	if result.Valid {
		return nil
	}
	byField := result.ByField()
	paths := make([]string, 0, len(byField))
	for path := range byField {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString("Corrija os campos abaixo:")
	for _, path := range paths {
		fmt.Fprintf(&b, "\n  %s: %s", path, strings.Join(byField[path], "; "))
	}
	return r.fail(ctx, b.String())
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Runner) fail(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func pick(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return ""
	}
	return options[idx]
}
