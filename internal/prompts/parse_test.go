package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExplanationAllMarkers(t *testing.T) {
	text := "Simple Meaning: A step-by-step way to solve a problem.\n" +
		"Example: A cooking recipe is an algorithm.\n" +
		"Full Form: N/A"

	got := ParseExplanation(text)

	assert.Equal(t, "A step-by-step way to solve a problem.", got.SimpleMeaning)
	assert.Equal(t, "A cooking recipe is an algorithm.", got.Example)
	assert.Empty(t, got.FullForm, "literal N/A full form must be dropped")
}

func TestParseExplanationCaseInsensitiveMarkers(t *testing.T) {
	text := "SIMPLE MEANING: money given back\n" +
		"example: full refund in 7 days\n" +
		"FULL FORM: n/a"

	got := ParseExplanation(text)

	assert.Equal(t, "money given back", got.SimpleMeaning)
	assert.Equal(t, "full refund in 7 days", got.Example)
	assert.Empty(t, got.FullForm)
}

func TestParseExplanationContinuationLines(t *testing.T) {
	text := "Simple Meaning: money you pay\n" +
		"every month for a loan\n" +
		"Example: phone on EMI\n" +
		"Full Form: Easy Monthly Installment"

	got := ParseExplanation(text)

	assert.Equal(t, "money you pay every month for a loan", got.SimpleMeaning)
	assert.Equal(t, "phone on EMI", got.Example)
	assert.Equal(t, "Easy Monthly Installment", got.FullForm)
}

func TestParseExplanationStripsAsterisks(t *testing.T) {
	text := "**Simple Meaning:** a promise to fix the product\n" +
		"**Example:** 1 year warranty\n" +
		"Full Form: N/A"

	got := ParseExplanation(text)

	assert.Equal(t, "a promise to fix the product", got.SimpleMeaning)
	assert.Equal(t, "1 year warranty", got.Example)
}

func TestParseExplanationRawFallback(t *testing.T) {
	raw := strings.Repeat("x", 300)

	got := ParseExplanation(raw)

	assert.Len(t, got.SimpleMeaning, 200)
	assert.Empty(t, got.Example)
	assert.Empty(t, got.FullForm)
}

func TestParseExplanationEmptyLinesIgnored(t *testing.T) {
	text := "\n\nSimple Meaning: short\n\n\nExample: ex\n\n"

	got := ParseExplanation(text)

	assert.Equal(t, "short", got.SimpleMeaning)
	assert.Equal(t, "ex", got.Example)
}

func TestParseExplanationMarkerValueOnNextLine(t *testing.T) {
	text := "Simple Meaning:\nvery easy words\nExample:\nuse it daily"

	got := ParseExplanation(text)

	assert.Equal(t, "very easy words", got.SimpleMeaning)
	assert.Equal(t, "use it daily", got.Example)
}
