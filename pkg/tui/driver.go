package tui

import "context"

// InputConfig configures a single line prompt. Validator runs on every
// answer before it is accepted; Placeholder doubles as help text when Help
// is empty.
type InputConfig struct {
	Message     string
	Default     string
	Help        string
	Placeholder string
	Validator   func(string) error
}

// ConfirmConfig configures a sim/não prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures single and multi choice prompts. DefaultIndex
// applies to Select, Defaults to MultiSelect; both index into Options.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Defaults     []int
	Help         string
	PageSize     int
}

// TextAreaConfig configures a multi-line prompt for long answers.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver is everything the runner needs from a terminal. Tests use a
// scripted driver; the default one is backed by survey.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

func optionIndex(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}

// optionIndices keeps option order, not answer order.
func optionIndices(options, values []string) []int {
	chosen := make(map[string]bool, len(values))
	for _, v := range values {
		chosen[v] = true
	}
	var out []int
	for i, option := range options {
		if chosen[option] {
			out = append(out, i)
		}
	}
	return out
}

// pickOptions returns the options at indices, skipping out of range ones.
func pickOptions(options []string, indices []int) []string {
	var out []string
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx])
		}
	}
	return out
}
