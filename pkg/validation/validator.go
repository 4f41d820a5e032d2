package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptBRTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// MessageFunc renders the message for one failed rule.
type MessageFunc func(fe validator.FieldError) string

func fixed(msg string) MessageFunc {
	return func(validator.FieldError) string { return msg }
}

// Fixed returns a MessageFunc that always yields msg.
func Fixed(msg string) MessageFunc { return fixed(msg) }

type structRule struct {
	fn    validator.StructLevelFunc
	types []any
}

// Option configures a Validator.
type Option func(*Validator)

// Validator runs struct tag rules plus registered struct-level refinements
// and collects every failure as an Issue.
type Validator struct {
	engine   *validator.Validate
	trans    ut.Translator
	messages map[string]MessageFunc
	rules    []Rule
	structs  []structRule
}

// WithRule registers an extra string rule under its tag.
func WithRule(rule Rule) Option {
	return func(v *Validator) {
		if rule.Tag != "" && rule.Check != nil {
			v.rules = append(v.rules, rule)
		}
	}
}

// WithStructRule registers a refinement run for values of the given types.
func WithStructRule(fn validator.StructLevelFunc, types ...any) Option {
	return func(v *Validator) {
		if fn != nil && len(types) > 0 {
			v.structs = append(v.structs, structRule{fn: fn, types: types})
		}
	}
}

// WithMessage sets the message for a tag, typically one reported by a
// struct-level refinement.
func WithMessage(tag string, msg MessageFunc) Option {
	return func(v *Validator) {
		if tag != "" && msg != nil {
			v.messages[tag] = msg
		}
	}
}

// New builds a validator using json tag names for field paths and
// Brazilian Portuguese messages.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		engine:   validator.New(validator.WithRequiredStructEnabled()),
		messages: defaultMessages(),
	}
	v.rules = append(v.rules, builtinRules()...)
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	v.engine.RegisterTagNameFunc(jsonName)

	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator(locale.Locale())
	if err := ptBRTranslations.RegisterDefaultTranslations(v.engine, trans); err != nil {
		return nil, fmt.Errorf("validation: register translations: %w", err)
	}
	v.trans = trans

	for _, rule := range v.rules {
		if err := v.engine.RegisterValidation(rule.Tag, rule.fn()); err != nil {
			return nil, fmt.Errorf("validation: register rule %q: %w", rule.Tag, err)
		}
		if rule.Message != nil {
			v.messages[rule.Tag] = rule.Message
		}
	}
	for _, sr := range v.structs {
		v.engine.RegisterStructValidation(sr.fn, sr.types...)
	}
	return v, nil
}

// MustNew is New for package-level validators with static configuration.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks value, a struct or pointer to struct, and reports every
// issue found.
func (v *Validator) Validate(value any) Result {
	err := v.engine.Struct(value)
	if err == nil {
		return Result{Valid: true}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Issues: []Issue{{Message: strings.TrimSpace(err.Error())}}}
	}

	result := Result{Issues: make([]Issue, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		segments := parseNamespace(fe.Namespace())
		result.Issues = append(result.Issues, Issue{
			Path:    pathFromSegments(segments),
			Field:   fieldFromSegments(segments),
			Tag:     fe.Tag(),
			Message: v.message(fe),
		})
	}
	return result
}

func (v *Validator) message(fe validator.FieldError) string {
	if fn, ok := v.messages[fe.Tag()]; ok {
		return fn(fe)
	}
	if v.trans != nil {
		return fe.Translate(v.trans)
	}
	return fe.Error()
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

func isCollection(fe validator.FieldError) bool {
	switch fe.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return true
	}
	return false
}

func isNumber(fe validator.FieldError) bool {
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func defaultMessages() map[string]MessageFunc {
	return map[string]MessageFunc{
		"required": fixed("Campo obrigatório"),
		"min": func(fe validator.FieldError) string {
			switch {
			case isCollection(fe):
				if fe.Param() == "1" {
					return "Selecione pelo menos um item"
				}
				return fmt.Sprintf("Informe pelo menos %s itens", fe.Param())
			case isNumber(fe):
				return fmt.Sprintf("O valor mínimo é %s", fe.Param())
			}
			return fmt.Sprintf("Deve ter pelo menos %s caracteres", fe.Param())
		},
		"max": func(fe validator.FieldError) string {
			switch {
			case isCollection(fe):
				return fmt.Sprintf("Selecione no máximo %s itens", fe.Param())
			case isNumber(fe):
				return fmt.Sprintf("O valor máximo é %s", fe.Param())
			}
			return fmt.Sprintf("Deve ter no máximo %s caracteres", fe.Param())
		},
		"gte": func(fe validator.FieldError) string {
			return fmt.Sprintf("O valor mínimo é %s", fe.Param())
		},
		"lte": func(fe validator.FieldError) string {
			return fmt.Sprintf("O valor máximo é %s", fe.Param())
		},
		"unique": fixed("Há itens repetidos"),
	}
}
