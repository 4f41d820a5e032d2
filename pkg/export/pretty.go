package export

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/uischema"
)

//go:embed templates/*.tpl
var templateFS embed.FS

const summaryTemplate = "summary.tpl"

// PrettyOption configures the pretty renderer.
type PrettyOption func(*Pretty)

// WithSchema overrides the label overlay used for field names.
func WithSchema(store *uischema.Store) PrettyOption {
	return func(p *Pretty) {
		if store != nil {
			p.schema = store
		}
	}
}

// WithTemplates replaces the embedded templates. The set must provide
// summary.tpl.
func WithTemplates(files fs.FS) PrettyOption {
	return func(p *Pretty) {
		if files != nil {
			p.templates = files
		}
	}
}

// Pretty renders a review summary through a pongo2 template, using the
// prompt labels for field names and option labels for values.
type Pretty struct {
	schema    *uischema.Store
	templates fs.FS

	mu   sync.Mutex
	set  *pongo2.TemplateSet
	tmpl *pongo2.Template
}

// Section is one topic of the summary.
type Section struct {
	Step  int
	Key   string
	Title string
	Lines []Line
}

// Line is one labelled value. Value is empty for group headers.
type Line struct {
	Indent string
	Label  string
	Value  string
}

// NewPretty constructs the renderer with the embedded template and overlay.
func NewPretty(opts ...PrettyOption) (*Pretty, error) {
	p := &Pretty{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.schema == nil {
		store, err := uischema.Default()
		if err != nil {
			return nil, fmt.Errorf("export: load labels: %w", err)
		}
		p.schema = store
	}
	if p.templates == nil {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("export: templates: %w", err)
		}
		p.templates = sub
	}
	p.set = pongo2.NewSet("intake", pongo2.NewFSLoader(p.templates))
	registerDefaultFilters()
	return p, nil
}

func (*Pretty) Name() string        { return "pretty" }
func (*Pretty) ContentType() string { return "text/plain; charset=utf-8" }

func (p *Pretty) Render(ctx context.Context, prof profile.Profile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tmpl, err := p.template()
	if err != nil {
		return nil, err
	}

	company := ""
	if prof.BasicInfo != nil {
		company = prof.BasicInfo.TradingName
		if company == "" {
			company = prof.BasicInfo.CompanyName
		}
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteWriter(pongo2.Context{
		"company":   company,
		"completed": prof.Len(),
		"total":     profile.TopicCount,
		"pending":   pending(prof),
		"sections":  p.Sections(prof),
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("export: execute %s: %w", summaryTemplate, err)
	}
	return buf.Bytes(), nil
}

func (p *Pretty) template() (*pongo2.Template, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tmpl != nil {
		return p.tmpl, nil
	}
	tmpl, err := p.set.FromFile(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("export: load template %q: %w", summaryTemplate, err)
	}
	p.tmpl = tmpl
	return tmpl, nil
}

// Sections flattens every stored topic in step order.
func (p *Pretty) Sections(prof profile.Profile) []Section {
	var out []Section
	for _, topic := range profile.Topics() {
		record, ok := prof.Get(topic.Key)
		if !ok {
			continue
		}
		s := Section{Step: topic.Step, Key: string(topic.Key), Title: topic.Title}
		if t, ok := p.schema.Topic(string(topic.Key)); ok && t.Form.Title != "" {
			s.Title = t.Form.Title
		}
		f := flattener{schema: p.schema, topic: string(topic.Key)}
		f.walkStruct(reflect.ValueOf(record), "", 1)
		s.Lines = f.lines
		out = append(out, s)
	}
	return out
}

func pending(prof profile.Profile) []string {
	var out []string
	for _, topic := range profile.Topics() {
		if !prof.Has(topic.Key) {
			out = append(out, topic.Title)
		}
	}
	return out
}

type flattener struct {
	schema *uischema.Store
	topic  string
	lines  []Line
}

func (f *flattener) walkStruct(v reflect.Value, prefix string, depth int) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
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
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		label := f.schema.Field(f.topic, path).Label
		if label == "" {
			label = humanize(name)
		}
		f.value(v.Field(i), path, label, optionSet(sf.Tag.Get("validate")), depth)
	}
}

func (f *flattener) value(v reflect.Value, path, label, set string, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			f.value(v.Elem(), path, label, set, depth)
		}
	case reflect.String:
		if s := v.String(); s != "" {
			f.add(indent, label, optionLabel(set, s))
		}
	case reflect.Bool:
		f.add(indent, label, yesNo(v.Bool()))
	case reflect.Int, reflect.Int64:
		f.add(indent, label, strconv.FormatInt(v.Int(), 10))
	case reflect.Float64:
		f.add(indent, label, strconv.FormatFloat(v.Float(), 'f', -1, 64))
	case reflect.Struct:
		f.add(indent, label, "")
		f.walkStruct(v, path, depth+1)
	case reflect.Slice:
		if v.Len() == 0 {
			return
		}
		if list, ok := v.Interface().([]string); ok {
			labels := make([]string, len(list))
			for i, item := range list {
				labels[i] = optionLabel(set, item)
			}
			f.add(indent, label, strings.Join(labels, ", "))
			return
		}
		f.add(indent, label, "")
		for i := 0; i < v.Len(); i++ {
			f.value(v.Index(i), path, fmt.Sprintf("#%d", i+1), "", depth+1)
		}
	case reflect.Map:
		if v.Len() == 0 {
			return
		}
		f.add(indent, label, "")
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, key := range keys {
			name := key.String()
			if key.Type() == reflect.TypeOf(profile.Weekday("")) {
				name = profile.LabelFor(profile.SetWeekdays, name)
			}
			f.value(v.MapIndex(key), path, name, "", depth+1)
		}
	}
}

func (f *flattener) add(indent, label, value string) {
	f.lines = append(f.lines, Line{Indent: indent, Label: label, Value: value})
}

func optionLabel(set, value string) string {
	if set == "" {
		return value
	}
	return profile.LabelFor(set, value)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func optionSet(tag string) string {
	for _, part := range strings.Split(tag, ",") {
		if set, ok := strings.CutPrefix(part, "option="); ok {
			return set
		}
	}
	return ""
}

func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			r = unicode.ToUpper(r)
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
