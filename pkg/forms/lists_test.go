package forms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/forms"
)

func TestFoldKey(t *testing.T) {
	cases := map[string]string{
		"Comprovante de Residência": "comprovante de residencia",
		"  AÇÃO ":                   "acao",
		"":                          "",
	}
	for in, want := range cases {
		if got := forms.FoldKey(in); got != want {
			t.Errorf("FoldKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAddRemoveItem(t *testing.T) {
	var list []string
	if forms.AddItem(&list, "   ") {
		t.Fatalf("blank input should be ignored")
	}
	forms.AddItem(&list, "Laudo")
	forms.AddItem(&list, "Nota fiscal")
	if forms.AddItem(&list, "LAUDO") {
		t.Fatalf("duplicate should be ignored")
	}
	if !forms.RemoveItem(&list, "Laudo") {
		t.Fatalf("remove should report a change")
	}
	if forms.RemoveItem(&list, "Laudo") {
		t.Fatalf("second remove should be a no-op")
	}
	if diff := cmp.Diff([]string{"Nota fiscal"}, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestToggle(t *testing.T) {
	list := []string{"CPF"}
	forms.Toggle(&list, "CPF", true)
	forms.Toggle(&list, "CRLV", true)
	forms.Toggle(&list, "CPF", false)
	if diff := cmp.Diff([]string{"CRLV"}, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncLabels(t *testing.T) {
	entries := map[string]string{"a": "1", "b": "2", "c": "3"}
	forms.SyncLabels(entries, []string{"a"}, []string{"c"})
	if diff := cmp.Diff(map[string]string{"a": "1", "c": "3"}, entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	labels := []string{"a", "c"}
	forms.RemoveLabel(&labels, entries, "a")
	if diff := cmp.Diff([]string{"c"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if _, ok := entries["a"]; ok {
		t.Fatalf("entry for removed label should be deleted")
	}
}

func TestSanitizer(t *testing.T) {
	s := forms.NewSanitizer()
	if got := s.String("  Óleo & filtro "); got != "Óleo & filtro" {
		t.Fatalf("unexpected %q", got)
	}
	if got := s.String("<b>Revisão</b> completa"); got != "Revisão completa" {
		t.Fatalf("unexpected %q", got)
	}

	type record struct {
		Name  string
		Tags  []string
		Notes map[string]string
		Next  *record
	}
	r := record{
		Name:  "<i>x</i>",
		Tags:  []string{"<u>y</u>"},
		Notes: map[string]string{"<b>k</b>": "<em>v</em>"},
		Next:  &record{Name: " z "},
	}
	s.Apply(&r)
	want := record{Name: "x", Tags: []string{"y"}, Notes: map[string]string{"k": "v"}, Next: &record{Name: "z"}}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("sanitised mismatch (-want +got):\n%s", diff)
	}
}
