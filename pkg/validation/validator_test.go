package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type sampleAddress struct {
	ZipCode string `json:"zipCode" validate:"cep"`
	State   string `json:"state" validate:"uf"`
}

type sampleItem struct {
	Name string `json:"name" validate:"min=3"`
}

type sampleRecord struct {
	Name    string            `json:"name" validate:"min=2,max=10"`
	Daily   int               `json:"daily" validate:"min=1,max=100"`
	Sim     int               `json:"sim" validate:"min=1"`
	Address sampleAddress     `json:"address"`
	Items   []sampleItem      `json:"items" validate:"min=1,dive"`
	Answers map[string]string `json:"answers" validate:"dive,min=5"`
	Website string            `json:"website,omitempty" validate:"omitempty,website"`
}

func sampleRule(sl validator.StructLevel) {
	rec := sl.Current().Interface().(sampleRecord)
	if rec.Sim > rec.Daily {
		sl.ReportError(rec.Sim, "sim", "Sim", "sim_lte_daily", "")
	}
}

func newSampleValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(
		WithStructRule(sampleRule, sampleRecord{}),
		WithMessage("sim_lte_daily", Fixed("Não pode exceder o diário")),
	)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func TestValidateAccumulatesEveryIssue(t *testing.T) {
	v := newSampleValidator(t)
	rec := sampleRecord{
		Name:    "x",
		Daily:   5,
		Sim:     10,
		Address: sampleAddress{ZipCode: "123", State: "ZZ"},
		Items:   []sampleItem{{Name: "ok!"}, {Name: "no"}},
		Answers: map[string]string{"Há garantia?": "cur"},
		Website: "not a url",
	}

	result := v.Validate(rec)
	if result.Valid {
		t.Fatalf("expected invalid result")
	}

	want := []string{
		"name",
		"address.zipCode",
		"address.state",
		"items.1.name",
		"answers.Há garantia?",
		"website",
		"sim",
	}
	got := result.Paths()
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	if msgs := result.Messages("sim"); len(msgs) != 1 || msgs[0] != "Não pode exceder o diário" {
		t.Fatalf("unexpected struct rule message %v", msgs)
	}
	if msgs := result.Messages("address.zipCode"); len(msgs) != 1 || msgs[0] != "CEP inválido" {
		t.Fatalf("unexpected cep message %v", msgs)
	}
	if msgs := result.Messages("name"); len(msgs) != 1 || msgs[0] != "Deve ter pelo menos 2 caracteres" {
		t.Fatalf("unexpected min message %v", msgs)
	}
}

func TestValidateFieldStripsIndices(t *testing.T) {
	v := newSampleValidator(t)
	result := v.Validate(sampleRecord{
		Name: "valid", Daily: 5, Sim: 1,
		Address: sampleAddress{ZipCode: "01310-100", State: "SP"},
		Items:   []sampleItem{{Name: "a"}},
	})
	if len(result.Issues) != 1 {
		t.Fatalf("expected one issue, got %+v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Path != "items.0.name" || issue.Field != "items.name" || issue.Tag != "min" {
		t.Fatalf("unexpected issue %+v", issue)
	}
}

func TestValidatePasses(t *testing.T) {
	v := newSampleValidator(t)
	result := v.Validate(&sampleRecord{
		Name: "valid", Daily: 5, Sim: 5,
		Address: sampleAddress{ZipCode: "01310-100", State: "SP"},
		Items:   []sampleItem{{Name: "abc"}},
		Answers: map[string]string{"q": "resposta longa"},
		Website: "https://www.example.com.br",
	})
	if !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid result, got %+v", result)
	}
	if result.Error() != "" {
		t.Fatalf("valid result must render empty error")
	}
}

func TestCustomRuleOption(t *testing.T) {
	type colour struct {
		Value string `json:"value" validate:"palette"`
	}
	v, err := New(WithRule(Rule{
		Tag:     "palette",
		Check:   func(value, _ string) bool { return value == "red" || value == "blue" },
		Message: Fixed("Cor inválida"),
	}))
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	if res := v.Validate(colour{Value: "red"}); !res.Valid {
		t.Fatalf("expected red to pass: %+v", res)
	}
	res := v.Validate(colour{Value: "green"})
	if diff := cmp.Diff(map[string][]string{"value": {"Cor inválida"}}, res.ByField()); diff != "" {
		t.Fatalf("unexpected issues (-want +got):\n%s", diff)
	}
}

func TestTextHelpers(t *testing.T) {
	if !ContainsGreeting("OLÁ, tudo bem?") || !ContainsGreeting("Bom dia, olá!") {
		t.Fatalf("expected greeting to be detected regardless of case")
	}
	if !ContainsGreeting("Ola\u0301, seja bem-vindo") {
		t.Fatalf("expected a combining accent to count as olá")
	}
	if ContainsGreeting("Bom dia!") {
		t.Fatalf("unexpected greeting detection")
	}
	if !MentionsDateOrTime("Confirmado para 10/05/2025") || !MentionsDateOrTime("às 14:30") {
		t.Fatalf("expected date or time to be detected")
	}
	if MentionsDateOrTime("Confirmado para XX/XX às XX:XX") {
		t.Fatalf("placeholders must not count as a date")
	}
	if !ContainsURL("veja https://exemplo.com") || !ContainsURL("acesse www.exemplo.com") {
		t.Fatalf("expected links to be detected")
	}
	if ContainsURL("Traga os documentos do veículo.") {
		t.Fatalf("unexpected link detection")
	}
}

func TestParseNamespace(t *testing.T) {
	segs := parseNamespace("TargetAudience.questionAnswers[Qual o prazo? 1.5h].x")
	if got := pathFromSegments(segs); got != "questionAnswers.Qual o prazo? 1.5h.x" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := fieldFromSegments(segs); got != "questionAnswers.x" {
		t.Fatalf("unexpected field %q", got)
	}
}

func TestResultHelpers(t *testing.T) {
	a := Result{Issues: []Issue{{Path: "a", Field: "a", Message: " m1 "}, {Path: "a", Field: "a", Message: "m1"}}}
	b := Result{Valid: true}
	merged := a.Merge(b).Prefixed("capacity")
	if merged.Valid {
		t.Fatalf("merged result must be invalid")
	}
	if diff := cmp.Diff(map[string][]string{"capacity.a": {"m1"}}, merged.ByField()); diff != "" {
		t.Fatalf("unexpected grouping (-want +got):\n%s", diff)
	}
	if merged.Error() == "" {
		t.Fatalf("expected summary")
	}
}
