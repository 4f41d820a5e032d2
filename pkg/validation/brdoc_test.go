package validation

import "testing"

func TestValidCNPJ(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "canonical", value: "11.222.333/0001-81", want: true},
		{name: "other valid", value: "12.345.678/0001-95", want: true},
		{name: "too short", value: "11.222.333/0001-8", want: false},
		{name: "raw digits", value: "11222333000181", want: false},
		{name: "repeated digits", value: "11.111.111/1111-11", want: false},
		{name: "zeros", value: "00.000.000/0000-00", want: false},
		{name: "corrupted first digit", value: "11.222.333/0001-71", want: false},
		{name: "corrupted second digit", value: "11.222.333/0001-80", want: false},
		{name: "bad check digits", value: "12.345.678/0001-90", want: false},
		{name: "empty", value: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCNPJ(tc.value); got != tc.want {
				t.Fatalf("ValidCNPJ(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestValidCEP(t *testing.T) {
	cases := map[string]bool{
		"01310-100": true,
		"70040-010": true,
		"01310-10":  false,
		"01310100":  false,
		"0131-0100": false,
		"00000-000": false,
		"11111-111": false,
		"":          false,
	}
	for value, want := range cases {
		if got := ValidCEP(value); got != want {
			t.Fatalf("ValidCEP(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatCNPJ("11222333000181"); got != "11.222.333/0001-81" {
		t.Fatalf("unexpected cnpj mask %q", got)
	}
	if got := FormatCNPJ("123"); got != "123" {
		t.Fatalf("short input must be returned unchanged, got %q", got)
	}
	if got := FormatCEP("01310100"); got != "01310-100" {
		t.Fatalf("unexpected cep mask %q", got)
	}
}

func TestValidState(t *testing.T) {
	if !ValidState("SP") || !ValidState("DF") {
		t.Fatalf("expected SP and DF to be valid")
	}
	if ValidState("sp") || ValidState("XX") || ValidState("") {
		t.Fatalf("expected lower case, unknown and empty codes to be rejected")
	}
	if len(States) != 27 {
		t.Fatalf("expected 27 states, got %d", len(States))
	}
}
