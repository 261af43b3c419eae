package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pdf-summary-client/internal/domain"
)

// DefaultLocale is used when the configured locale cannot be parsed or has
// no unit translation.
const DefaultLocale = "it-IT"

var characterUnits = map[string]string{
	"it": "caratteri",
	"en": "characters",
	"es": "caracteres",
	"pt": "caracteres",
	"fr": "caractères",
	"de": "Zeichen",
}

// ResultFormatter renders summarization results for display in a given locale.
type ResultFormatter struct {
	printer *message.Printer
	unit    string
}

// NewResultFormatter creates a formatter for a BCP 47 locale such as "it-IT".
func NewResultFormatter(locale string) *ResultFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	base, _ := tag.Base()
	unit, ok := characterUnits[base.String()]
	if !ok {
		tag = language.MustParse(DefaultLocale)
		unit = characterUnits["it"]
	}
	return &ResultFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// CharacterCount formats n with the locale's thousands separator, e.g. "1.234 caratteri".
func (f *ResultFormatter) CharacterCount(n int) string {
	return f.printer.Sprintf("%d %s", n, f.unit)
}

// ResultView copies the result's text fields untouched and formats the length.
func (f *ResultFormatter) ResultView(result *domain.SummarizationResult) domain.ResultView {
	return domain.ResultView{
		Filename:       result.Filename,
		CharacterCount: f.CharacterCount(result.TextLength),
		Summary:        result.Summary,
		ExtractedText:  result.ExtractedText,
	}
}
