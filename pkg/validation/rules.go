package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	websitePattern     = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&/=]*)$`)
	socialPattern      = regexp.MustCompile(`^https?://(www\.)?(youtube\.com|instagram\.com|facebook\.com|linkedin\.com|twitter\.com)/.*$`)
	phonePattern       = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	clockPattern       = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	durationPattern    = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	namePattern        = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s&.-]+$`)
	streetPattern      = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s,.-]+$`)
	lettersPattern     = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	houseNumberPattern = regexp.MustCompile(`^[0-9]+[a-zA-Z]?$`)
	urlInTextPattern   = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)
	datePattern        = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	timePattern        = regexp.MustCompile(`\d{2}:\d{2}`)

	folder = cases.Fold()
)

// Rule couples a custom validation tag with its check and message.
type Rule struct {
	Tag     string
	Check   func(value string, param string) bool
	Message MessageFunc
}

func (r Rule) fn() validator.Func {
	return func(fl validator.FieldLevel) bool {
		return r.Check(fl.Field().String(), fl.Param())
	}
}

func matches(re *regexp.Regexp) func(string, string) bool {
	return func(value, _ string) bool {
		return re.MatchString(value)
	}
}

// ContainsGreeting reports whether text greets with "olá", in any case and
// whether the accent is precomposed or combining.
func ContainsGreeting(text string) bool {
	return strings.Contains(folder.String(norm.NFC.String(text)), "olá")
}

// MentionsDateOrTime reports whether text carries a dd/mm/yyyy date or an
// hh:mm time.
func MentionsDateOrTime(text string) bool {
	return datePattern.MatchString(text) || timePattern.MatchString(text)
}

// ContainsURL reports whether text embeds a link.
func ContainsURL(text string) bool {
	return urlInTextPattern.MatchString(text)
}

// ValidClock checks a HH:MM wall clock time.
func ValidClock(value string) bool {
	return clockPattern.MatchString(value)
}

// ValidWebsite checks an http(s) URL with a domain.
func ValidWebsite(value string) bool {
	return websitePattern.MatchString(value)
}

func builtinRules() []Rule {
	return []Rule{
		{Tag: "cnpj", Check: func(v, _ string) bool { return ValidCNPJ(v) }, Message: fixed("CNPJ inválido")},
		{Tag: "cep", Check: func(v, _ string) bool { return ValidCEP(v) }, Message: fixed("CEP inválido")},
		{Tag: "uf", Check: func(v, _ string) bool { return ValidState(v) }, Message: fixed("Estado inválido")},
		{Tag: "hhmm", Check: matches(clockPattern), Message: fixed("Horário inválido (use HH:MM)")},
		{Tag: "duration", Check: matches(durationPattern), Message: fixed("Duração inválida (use HH:MM)")},
		{Tag: "website", Check: matches(websitePattern), Message: fixed("URL inválida")},
		{Tag: "social", Check: matches(socialPattern), Message: fixed("URL de rede social inválida")},
		{Tag: "phone", Check: matches(phonePattern), Message: fixed("Telefone inválido")},
		{Tag: "name_chars", Check: matches(namePattern), Message: fixed("Contém caracteres inválidos")},
		{Tag: "street_chars", Check: matches(streetPattern), Message: fixed("Contém caracteres inválidos")},
		{Tag: "letters", Check: matches(lettersPattern), Message: fixed("Use apenas letras")},
		{Tag: "house_number", Check: matches(houseNumberPattern), Message: fixed("Número inválido")},
		{Tag: "greeting", Check: func(v, _ string) bool { return ContainsGreeting(v) }, Message: fixed(`A saudação deve conter "Olá"`)},
		{Tag: "datetimeref", Check: func(v, _ string) bool { return MentionsDateOrTime(v) }, Message: fixed("Inclua a data (dd/mm/aaaa) ou o horário (hh:mm)")},
		{Tag: "nourl", Check: func(v, _ string) bool { return !ContainsURL(v) }, Message: fixed("Não inclua links no lembrete")},
	}
}
