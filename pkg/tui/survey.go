package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

const defaultPageSize = 10

type surveyDriver struct {
	stdio terminal.Stdio
}

// NewSurveyDriver returns the interactive driver bound to the given
// terminal streams. Zero streams fall back to the process stdio.
func NewSurveyDriver(stdio terminal.Stdio) PromptDriver {
	if stdio.In == nil {
		stdio.In = os.Stdin
	}
	if stdio.Out == nil {
		stdio.Out = os.Stdout
	}
	if stdio.Err == nil {
		stdio.Err = os.Stderr
	}
	return &surveyDriver{stdio: stdio}
}

// ask runs one survey prompt, refusing to start once ctx is done.
func (d *surveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any, extra ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := []survey.AskOpt{
		survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err),
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Error.Text = "✖"
			icons.Help.Text = "ℹ"
		}),
	}
	opts = append(opts, extra...)
	if err := survey.AskOne(prompt, answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrAborted
		}
		return fmt.Errorf("tui: prompt %q: %w", promptMessage(prompt), err)
	}
	return nil
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	help := cfg.Help
	if help == "" {
		help = cfg.Placeholder
	}
	var extra []survey.AskOpt
	if check := cfg.Validator; check != nil {
		extra = append(extra, survey.WithValidator(func(ans any) error {
			text, _ := ans.(string)
			return check(text)
		}))
	}
	var out string
	err := d.ask(ctx, &survey.Input{Message: cfg.Message, Help: help, Default: cfg.Default}, &out, extra...)
	return out, err
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var out bool
	err := d.ask(ctx, &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &out)
	return out, err
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	prompt := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	var out string
	if err := d.ask(ctx, prompt, &out, survey.WithPageSize(pageSize(cfg))); err != nil {
		return -1, err
	}
	return optionIndex(cfg.Options, out), nil
}

func (d *surveyDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	prompt := &survey.MultiSelect{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if defaults := pickOptions(cfg.Options, cfg.Defaults); len(defaults) > 0 {
		prompt.Default = defaults
	}
	var out []string
	err := d.ask(ctx, prompt, &out,
		survey.WithPageSize(pageSize(cfg)),
		survey.WithRemoveSelectAll(),
		survey.WithRemoveSelectNone(),
	)
	if err != nil {
		return nil, err
	}
	return optionIndices(cfg.Options, out), nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	var out string
	err := d.ask(ctx, &survey.Multiline{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &out)
	return out, err
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.stdio.Out, msg)
	return err
}

func pageSize(cfg SelectConfig) int {
	if cfg.PageSize > 0 {
		return cfg.PageSize
	}
	return defaultPageSize
}

func promptMessage(p survey.Prompt) string {
	switch v := p.(type) {
	case *survey.Input:
		return v.Message
	case *survey.Confirm:
		return v.Message
	case *survey.Select:
		return v.Message
	case *survey.MultiSelect:
		return v.Message
	case *survey.Multiline:
		return v.Message
	}
	return ""
}
