package export

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intake/pkg/profile"
)

// SchemaVersion is the info.version of the generated document.
const SchemaVersion = "1.0.0"

// SchemaName is the component name of the aggregate record.
const SchemaName = "Profile"

// topicTypes maps each topic key to its record type, read from the
// aggregate's fields.
var topicTypes = func() map[profile.TopicKey]reflect.Type {
	out := make(map[profile.TopicKey]reflect.Type, profile.TopicCount)
	t := reflect.TypeOf(profile.Profile{})
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		out[profile.TopicKey(jsonName(sf))] = sf.Type.Elem()
	}
	return out
}()

// Schema describes the aggregate record as an OpenAPI 3 document. Field
// bounds and option sets are carried over from the validation tags.
func Schema(ctx context.Context) (*openapi3.T, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(&profile.Profile{}, nil, openapi3gen.SchemaCustomizer(applyRules))
	if err != nil {
		return nil, fmt.Errorf("export: generate schema: %w", err)
	}

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{
		SchemaName: &openapi3.SchemaRef{Value: ref.Value},
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Business intake profile",
			Description: "Record collected by the intake wizard, one property per topic.",
			Version:     SchemaVersion,
		},
		Paths:      openapi3.NewPaths(),
		Components: &components,
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("export: invalid schema: %w", err)
	}
	return doc, nil
}

// EncodeSchema writes doc as json or yaml.
func EncodeSchema(doc *openapi3.T, format string) ([]byte, error) {
	switch format {
	case "", "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export: encode schema: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("export: encode schema: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// applyRules maps validate tags onto schema keywords. Rules before "dive"
// bind the field itself; rules after it bind the items of a list or the
// values of a map.
func applyRules(name string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if topic, ok := profile.Lookup(profile.TopicKey(name)); ok && topicTypes[topic.Key] == t {
		schema.Title = topic.Title
		schema.Description = topic.Description
	}

	rules := tag.Get("validate")
	if rules == "" {
		return nil
	}
	head, tail, dived := strings.Cut(rules, ",dive")
	if strings.HasPrefix(rules, "dive") {
		head, tail, dived = "", strings.TrimPrefix(rules, "dive"), true
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Map:
		applyList(head, schema)
		return nil
	}
	if dived {
		if strings.Contains(tail, "keys") {
			return nil
		}
		applyScalar(tail, schema)
		return nil
	}
	applyScalar(head, schema)
	return nil
}

func applyList(rules string, schema *openapi3.Schema) {
	for _, rule := range splitRules(rules) {
		key, value, _ := strings.Cut(rule, "=")
		switch key {
		case "min":
			if n, err := strconv.ParseUint(value, 10, 64); err == nil {
				if schema.Type.Is(openapi3.TypeArray) {
					schema.MinItems = n
				} else {
					schema.MinProps = n
				}
			}
		case "max":
			if n, err := strconv.ParseUint(value, 10, 64); err == nil && schema.Type.Is(openapi3.TypeArray) {
				schema.MaxItems = openapi3.Uint64Ptr(n)
			}
		case "unique":
			schema.UniqueItems = schema.Type.Is(openapi3.TypeArray)
		}
	}
}

func applyScalar(rules string, schema *openapi3.Schema) {
	isString := schema.Type.Is(openapi3.TypeString)
	for _, rule := range splitRules(rules) {
		key, value, _ := strings.Cut(rule, "=")
		switch key {
		case "min", "gte":
			if isString {
				if n, err := strconv.ParseUint(value, 10, 64); err == nil {
					schema.MinLength = n
				}
			} else if f, err := strconv.ParseFloat(value, 64); err == nil {
				schema.Min = openapi3.Float64Ptr(f)
			}
		case "max", "lte":
			if isString {
				if n, err := strconv.ParseUint(value, 10, 64); err == nil {
					schema.MaxLength = openapi3.Uint64Ptr(n)
				}
			} else if f, err := strconv.ParseFloat(value, 64); err == nil {
				schema.Max = openapi3.Float64Ptr(f)
			}
		case "option":
			if isString {
				enum(schema, profile.OptionValues(value))
			}
		case "uf":
			enum(schema, profile.OptionValues(profile.SetStates))
		case "datetime":
			schema.Format = "date"
		case "hhmm":
			schema.Pattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
		case "url", "website":
			schema.Format = "uri"
		}
	}
}

func enum(schema *openapi3.Schema, values []string) {
	if len(values) == 0 {
		return
	}
	schema.Enum = make([]any, len(values))
	for i, v := range values {
		schema.Enum[i] = v
	}
}

func splitRules(rules string) []string {
	var out []string
	for _, part := range strings.Split(rules, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
