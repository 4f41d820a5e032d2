package validation

import (
	"regexp"
	"strings"
)

var (
	cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	cepPattern  = regexp.MustCompile(`^\d{5}-\d{3}$`)

	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// States lists the 27 Brazilian federative units.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
	"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// ValidCNPJ checks the XX.XXX.XXX/XXXX-XX mask and both check digits.
func ValidCNPJ(value string) bool {
	if !cnpjPattern.MatchString(value) {
		return false
	}
	digits := OnlyDigits(value)
	if len(digits) != 14 || repeated(digits) {
		return false
	}

	nums := make([]int, len(digits))
	for i, r := range digits {
		nums[i] = int(r - '0')
	}
	if cnpjDigit(nums[:12], cnpjWeights1) != nums[12] {
		return false
	}
	return cnpjDigit(nums[:13], cnpjWeights2) == nums[13]
}

func cnpjDigit(nums, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += nums[i] * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// FormatCNPJ applies the mask to 14 raw digits. Inputs that do not carry
// exactly 14 digits are returned unchanged.
func FormatCNPJ(value string) string {
	d := OnlyDigits(value)
	if len(d) != 14 {
		return value
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// ValidCEP checks the XXXXX-XXX mask. CEPs carry no check digit; a code
// made of one repeated digit is never assigned and is rejected.
func ValidCEP(value string) bool {
	if !cepPattern.MatchString(value) {
		return false
	}
	return !repeated(OnlyDigits(value))
}

// FormatCEP applies the mask to 8 raw digits.
func FormatCEP(value string) string {
	d := OnlyDigits(value)
	if len(d) != 8 {
		return value
	}
	return d[0:5] + "-" + d[5:8]
}

// ValidState reports whether uf is a federative unit code.
func ValidState(uf string) bool {
	for _, s := range States {
		if s == uf {
			return true
		}
	}
	return false
}

// OnlyDigits drops every non ASCII digit.
func OnlyDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func repeated(digits string) bool {
	if digits == "" {
		return false
	}
	return strings.Count(digits, digits[:1]) == len(digits)
}
