package tui

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/uischema"
)

// editor walks one topic record and prompts for each visible field.
type editor struct {
	r       *Runner
	topic   profile.TopicKey
	pageCtx forms.Context
	root    reflect.Value
}

func newEditor(r *Runner, topic profile.TopicKey, pageCtx forms.Context) *editor {
	return &editor{r: r, topic: topic, pageCtx: pageCtx}
}

func (e *editor) edit(ctx context.Context, record any) error {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("tui: cannot edit %T", record)
	}
	e.root = v.Elem()

	h := hooks[e.topic]
	if h.before != nil {
		if err := h.before(e, ctx, record); err != nil {
			return err
		}
	}
	if err := e.walkStruct(ctx, e.root, ""); err != nil {
		return err
	}
	if h.after != nil {
		return h.after(e, ctx, record)
	}
	return nil
}

func (e *editor) walkStruct(ctx context.Context, v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "-" {
			continue
		}
		path := joinPath(prefix, name)
		cfg := e.r.schema.Field(string(e.topic), path)
		if cfg.Hidden() || !cfg.Visible(siblings(v)) {
			continue
		}
		if err := e.field(ctx, v, v.Field(i), sf, path, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (e *editor) field(ctx context.Context, parent, fv reflect.Value, sf reflect.StructField, path string, cfg uischema.FieldConfig) error {
	tag := sf.Tag.Get("validate")
	set := cfg.Options
	if set == "" {
		set = optionSet(tag)
	}
	label := e.label(path, cfg)

	switch fv.Kind() {
	case reflect.String:
		return e.text(ctx, fv, label, cfg, set, minLength(tag))
	case reflect.Bool:
		ok, err := e.r.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: fv.Bool(), Help: cfg.HelpText})
		if err != nil {
			return err
		}
		fv.SetBool(ok)
		return nil
	case reflect.Int, reflect.Int64, reflect.Float64:
		return e.number(ctx, fv, label, cfg)
	case reflect.Pointer:
		return e.optionalNumber(ctx, fv, label, cfg)
	case reflect.Struct:
		return e.walkStruct(ctx, fv, path)
	case reflect.Slice:
		switch fv.Type().Elem().Kind() {
		case reflect.String:
			if set != "" && cfg.Widget != uischema.WidgetList {
				return e.multi(ctx, fv, label, cfg, profile.Options(set))
			}
			if names := e.dynamicOptions(cfg.OptionsFrom); len(names) > 0 {
				return e.multi(ctx, fv, label, cfg, plainOptions(names))
			}
			return e.list(ctx, fv, label, cfg, profile.OptionLabels(set))
		case reflect.Struct:
			return e.repeat(ctx, fv, path, label, cfg)
		}
	case reflect.Map:
		if cfg.Widget == uischema.WidgetLabels {
			return e.labels(ctx, parent, fv, label, cfg)
		}
	}
	return nil
}

func (e *editor) text(ctx context.Context, fv reflect.Value, label string, cfg uischema.FieldConfig, set string, minLen int) error {
	var options []profile.Option
	switch {
	case set != "":
		options = profile.Options(set)
	case cfg.OptionsFrom != "":
		options = plainOptions(e.dynamicOptions(cfg.OptionsFrom))
	}

	if len(options) > 0 {
		labels := make([]string, len(options))
		current := 0
		for i, opt := range options {
			labels[i] = opt.Label
			if opt.Value == fv.String() {
				current = i
			}
		}
		idx, err := e.r.driver.Select(ctx, SelectConfig{Message: label, Options: labels, DefaultIndex: current, Help: cfg.HelpText})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(options) {
			fv.SetString(options[idx].Value)
		}
		return nil
	}

	if cfg.Widget == uischema.WidgetTextArea || (cfg.Widget == "" && minLen >= 50) {
		out, err := e.r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: fv.String(), Help: e.help(cfg, minLen)})
		if err != nil {
			return err
		}
		fv.SetString(out)
		return nil
	}

	out, err := e.r.driver.Input(ctx, InputConfig{
		Message:     label,
		Default:     fv.String(),
		Help:        e.help(cfg, minLen),
		Placeholder: cfg.Placeholder,
	})
	if err != nil {
		return err
	}
	fv.SetString(out)
	return nil
}

func (e *editor) number(ctx context.Context, fv reflect.Value, label string, cfg uischema.FieldConfig) error {
	out, err := e.r.driver.Input(ctx, InputConfig{
		Message:   label,
		Default:   formatNumber(fv),
		Help:      cfg.HelpText,
		Validator: func(s string) error { return setNumber(reflect.New(fv.Type()).Elem(), s) },
	})
	if err != nil {
		return err
	}
	return setNumber(fv, out)
}

func (e *editor) optionalNumber(ctx context.Context, fv reflect.Value, label string, cfg uischema.FieldConfig) error {
	elem := fv.Type().Elem()
	switch elem.Kind() {
	case reflect.Int, reflect.Int64, reflect.Float64:
	default:
		return nil
	}

	current := ""
	if !fv.IsNil() {
		current = formatNumber(fv.Elem())
	}
	validate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return setNumber(reflect.New(elem).Elem(), s)
	}
	out, err := e.r.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: cfg.HelpText, Validator: validate})
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	ptr := reflect.New(elem)
	if err := setNumber(ptr.Elem(), out); err != nil {
		return err
	}
	fv.Set(ptr)
	return nil
}

func (e *editor) multi(ctx context.Context, fv reflect.Value, label string, cfg uischema.FieldConfig, options []profile.Option) error {
	current := fv.Interface().([]string)
	labels := make([]string, len(options))
	var defaults []int
	for i, opt := range options {
		labels[i] = opt.Label
		if forms.Contains(current, opt.Value) {
			defaults = append(defaults, i)
		}
	}
	picked, err := e.r.driver.MultiSelect(ctx, SelectConfig{Message: label, Options: labels, Defaults: defaults, Help: cfg.HelpText})
	if err != nil {
		return err
	}
	out := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx].Value)
		}
	}
	fv.Set(reflect.ValueOf(out))
	return nil
}

// list edits a free-text dynamic list: entries can be dropped, then new
// ones are added until a blank answer.
func (e *editor) list(ctx context.Context, fv reflect.Value, label string, cfg uischema.FieldConfig, suggestions []string) error {
	items := append([]string{}, fv.Interface().([]string)...)

	if len(items) > 0 {
		all := make([]int, len(items))
		for i := range items {
			all[i] = i
		}
		keep, err := e.r.driver.MultiSelect(ctx, SelectConfig{Message: label + ": manter", Options: items, Defaults: all})
		if err != nil {
			return err
		}
		items = pickOptions(items, keep)
		if items == nil {
			items = []string{}
		}
	}

	help := cfg.HelpText
	if len(suggestions) > 0 {
		help = strings.TrimSpace(help + " Sugestões: " + strings.Join(suggestions, ", "))
	}
	for {
		out, err := e.r.driver.Input(ctx, InputConfig{
			Message:     label + ": adicionar (Enter para concluir)",
			Help:        help,
			Placeholder: cfg.Placeholder,
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(out) == "" {
			break
		}
		forms.AddItem(&items, out)
	}
	fv.Set(reflect.ValueOf(items))
	return nil
}

// repeat edits a list of records.
func (e *editor) repeat(ctx context.Context, fv reflect.Value, path, label string, cfg uischema.FieldConfig) error {
	itemLabel := cfg.ItemLabel
	if itemLabel == "" {
		itemLabel = "item"
	}
	elemType := fv.Type().Elem()

	var kept []reflect.Value
	if fv.Len() > 0 {
		summaries := make([]string, fv.Len())
		all := make([]int, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			summaries[i] = summarize(fv.Index(i), i)
			all[i] = i
		}
		keep, err := e.r.driver.MultiSelect(ctx, SelectConfig{Message: label + ": manter", Options: summaries, Defaults: all})
		if err != nil {
			return err
		}
		for _, idx := range keep {
			if idx < 0 || idx >= fv.Len() {
				continue
			}
			item := reflect.New(elemType).Elem()
			item.Set(fv.Index(idx))
			ok, err := e.r.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Editar %s %q?", itemLabel, summaries[idx])})
			if err != nil {
				return err
			}
			if ok {
				if err := e.walkStruct(ctx, item, path); err != nil {
					return err
				}
			}
			kept = append(kept, item)
		}
	}

	for {
		ok, err := e.r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s: adicionar %s?", label, itemLabel),
			Default: len(kept) == 0,
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		item := reflect.New(elemType).Elem()
		if err := e.walkStruct(ctx, item, path); err != nil {
			return err
		}
		kept = append(kept, item)
	}

	out := reflect.MakeSlice(fv.Type(), 0, len(kept))
	for _, item := range kept {
		out = reflect.Append(out, item)
	}
	fv.Set(out)
	return nil
}

// labels asks one answer per entry of the sibling list named by
// cfg.LabelsFrom and drops answers of unselected entries.
func (e *editor) labels(ctx context.Context, parent, fv reflect.Value, label string, cfg uischema.FieldConfig) error {
	entries, ok := fv.Interface().(map[string]string)
	if !ok {
		return nil
	}
	keys, _ := siblings(parent)(cfg.LabelsFrom)
	if entries == nil {
		entries = make(map[string]string, len(keys))
	}
	for _, key := range keys {
		out, err := e.r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s: %s", label, key),
			Default: entries[key],
			Help:    cfg.HelpText,
		})
		if err != nil {
			return err
		}
		entries[key] = out
	}
	forms.SyncLabels(entries, keys)
	fv.Set(reflect.ValueOf(entries))
	return nil
}

func (e *editor) dynamicOptions(source string) []string {
	if source != "serviceNames" {
		return nil
	}
	if services, ok := e.root.Addr().Interface().(*profile.Services); ok {
		return services.Names()
	}
	return e.pageCtx.ServiceNames
}

func (e *editor) label(path string, cfg uischema.FieldConfig) string {
	label := cfg.Label
	if label == "" {
		label = humanize(path[strings.LastIndex(path, ".")+1:])
	}
	return e.r.theme.PromptPrefix + label
}

func (e *editor) help(cfg uischema.FieldConfig, minLen int) string {
	if cfg.HelpText != "" || minLen <= 1 {
		return cfg.HelpText
	}
	return fmt.Sprintf("Mínimo de %d caracteres", minLen)
}

// siblings exposes the fields of v by json name for visibility conditions.
func siblings(v reflect.Value) func(string) ([]string, bool) {
	return func(field string) ([]string, bool) {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if jsonName(t.Field(i)) != field {
				continue
			}
			fv := v.Field(i)
			switch fv.Kind() {
			case reflect.String:
				return []string{fv.String()}, true
			case reflect.Bool:
				return []string{strconv.FormatBool(fv.Bool())}, true
			case reflect.Int, reflect.Int64, reflect.Float64:
				return []string{formatNumber(fv)}, true
			case reflect.Slice:
				if list, ok := fv.Interface().([]string); ok {
					return list, true
				}
			}
			return nil, false
		}
		return nil, false
	}
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func optionSet(tag string) string {
	for _, part := range strings.Split(tag, ",") {
		if set, ok := strings.CutPrefix(part, "option="); ok {
			return set
		}
	}
	return ""
}

// minLength reads the first min= rule, which for strings is the length.
func minLength(tag string) int {
	for _, part := range strings.Split(tag, ",") {
		if part == "dive" {
			break
		}
		if raw, ok := strings.CutPrefix(part, "min="); ok {
			n, _ := strconv.Atoi(raw)
			return n
		}
	}
	return 0
}

func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return ""
}

func setNumber(v reflect.Value, raw string) error {
	raw = strings.TrimSpace(raw)
	switch v.Kind() {
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.New("informe um número inteiro")
		}
		v.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
		if err != nil {
			return errors.New("informe um número")
		}
		v.SetFloat(f)
	}
	return nil
}

func summarize(v reflect.Value, i int) string {
	for j := 0; j < v.NumField(); j++ {
		if f := v.Field(j); f.Kind() == reflect.String && f.String() != "" {
			return f.String()
		}
	}
	return fmt.Sprintf("#%d", i+1)
}

func plainOptions(values []string) []profile.Option {
	out := make([]profile.Option, len(values))
	for i, v := range values {
		out[i] = profile.Option{Value: v, Label: v}
	}
	return out
}

// humanize turns a json name such as "maxDailyAppointments" into
// "Max daily appointments".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
			r = unicode.ToLower(r)
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
