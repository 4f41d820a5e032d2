package uischema_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/uischema"
)

func records() map[string]any {
	out := make(map[string]any)
	for _, topic := range profile.Topics() {
		record, _ := profile.Blank(topic.Key)
		out[string(topic.Key)] = record
	}
	return out
}

func knownSet(set string) bool { return len(profile.Options(set)) > 0 }

func TestDefaultOverlayMatchesRecords(t *testing.T) {
	store, err := uischema.Default()
	if err != nil {
		t.Fatalf("default overlay: %v", err)
	}
	violations := store.Check(records(), uischema.WithOptionSets(knownSet), uischema.WithOptionSources("serviceNames"))
	for _, v := range violations {
		t.Errorf("%s", v)
	}
}

func TestCheckReportsMismatches(t *testing.T) {
	fsys := fstest.MapFS{
		"overlay.yaml": {Data: []byte(`
topics:
  capacity:
    fields:
      maxDaily:
        label: "Typo"
      serviceBoxes:
        widget: slider
  targetAudience:
    fields:
      questionAnswers:
        widget: labels
      otherQuestionAnswers:
        widget: labels
        labelsFrom: typicalProfile
      commonQuestions:
        options: nope
        optionsFrom: catalog
  voiceTone:
    fields:
      sectorTerms:
        when:
          field: jargon
          equals: "true"
  pricing:
    fields:
      total: {}
`)},
	}
	store, err := uischema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var got []string
	for _, v := range store.Check(records(), uischema.WithOptionSets(knownSet), uischema.WithOptionSources("serviceNames")) {
		got = append(got, v.Topic+"|"+v.Path+"|"+v.Message)
	}
	want := []string{
		"capacity|maxDaily|no such field",
		`capacity|serviceBoxes|unknown widget "slider"`,
		"pricing||unknown topic",
		`targetAudience|commonQuestions|unknown option set "nope"`,
		`targetAudience|commonQuestions|unknown option source "catalog"`,
		`targetAudience|otherQuestionAnswers|labelsFrom "typicalProfile" is not a sibling list`,
		"targetAudience|questionAnswers|labels widget needs labelsFrom",
		`voiceTone|sectorTerms|condition field "jargon" is not a sibling`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckNestedPaths(t *testing.T) {
	fsys := fstest.MapFS{
		"overlay.json": {Data: []byte(`{"topics":{"businessHours":{"fields":{
			"businessHours.saturday.breaks[0].start": {"label": "Início"},
			"peakHours.estimatedCustomers": {"widget": "hidden"}
		}}}}`)},
	}
	store, err := uischema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if violations := store.Check(records()); len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
}
