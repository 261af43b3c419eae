package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pdf-summary-client/internal/domain"
)

func TestResultFormatter_CharacterCount(t *testing.T) {
	tests := []struct {
		locale string
		n      int
		want   string
	}{
		{"it-IT", 1234, "1.234 caratteri"},
		{"it-IT", 0, "0 caratteri"},
		{"it-IT", 999, "999 caratteri"},
		{"it-IT", 1234567, "1.234.567 caratteri"},
		{"en-US", 1234, "1,234 characters"},
		{"de-DE", 1234, "1.234 Zeichen"},
		{"not a locale!", 1234, "1.234 caratteri"},
		{"ja-JP", 1234567, "1.234.567 caratteri"},
		{"", 1234, "1.234 caratteri"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewResultFormatter(tt.locale).CharacterCount(tt.n))
		})
	}
}

func TestResultFormatter_ResultViewKeepsText(t *testing.T) {
	result := &domain.SummarizationResult{
		Filename:      "valid.pdf",
		TextLength:    1234,
		Summary:       "  S with <b>markup</b>\n",
		ExtractedText: "T ...",
	}

	view := NewResultFormatter("it-IT").ResultView(result)

	assert.Equal(t, domain.ResultView{
		Filename:       "valid.pdf",
		CharacterCount: "1.234 caratteri",
		Summary:        result.Summary,
		ExtractedText:  result.ExtractedText,
	}, view)
}
