package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
)

func newTestProvider(t *testing.T, dir string) *Provider {
	t.Helper()
	return NewProvider(config.DatasetConfig{
		Dir:            dir,
		DictionaryFile: "dictionary.json",
		HinglishFile:   "hinglish_upload_v1.json",
		SampleFile:     "examples.json",
		CorpusLimit:    200,
		SampleSize:     5,
	}, zap.NewNop().Sugar())
}

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadEnglishDictionaryMissingFileFallback(t *testing.T) {
	p := newTestProvider(t, t.TempDir())

	got := p.LoadEnglishDictionary(100)

	require.Len(t, got, 5)
	assert.Equal(t, "algorithm", got[0].Word)
}

func TestLoadEnglishDictionary(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "dictionary.json",
		`{"Zebra": "A striped\nanimal", "Apple": "A fruit", "Cat": "A pet"}`)
	p := newTestProvider(t, dir)

	got := p.LoadEnglishDictionary(100)

	require.Len(t, got, 3)
	// Source order preserved, words lower-cased, newlines flattened.
	assert.Equal(t, "zebra", got[0].Word)
	assert.Equal(t, "A striped animal", got[0].Definition)
	assert.Equal(t, "Example: The Zebra is important.", got[0].Example)
	assert.Equal(t, "apple", got[1].Word)
	assert.Equal(t, "cat", got[2].Word)
}

func TestLoadEnglishDictionaryTruncatesLongDefinitions(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("a", 180)
	writeDataset(t, dir, "dictionary.json", `{"word": "`+long+`"}`)
	p := newTestProvider(t, dir)

	got := p.LoadEnglishDictionary(10)

	require.Len(t, got, 1)
	assert.Len(t, got[0].Definition, 150)
	assert.True(t, strings.HasSuffix(got[0].Definition, "..."))
	assert.Equal(t, strings.Repeat("a", 147), strings.TrimSuffix(got[0].Definition, "..."))
}

func TestLoadEnglishDictionaryRespectsLimit(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "dictionary.json", `{"a": "1", "b": "2", "c": "3"}`)
	p := newTestProvider(t, dir)

	got := p.LoadEnglishDictionary(2)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Word)
	assert.Equal(t, "b", got[1].Word)
}

func TestLoadEnglishDictionaryMalformedFallback(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "dictionary.json", `["not", "an", "object"]`)
	p := newTestProvider(t, dir)

	got := p.LoadEnglishDictionary(10)

	require.Len(t, got, 5, "malformed file must yield the fallback list")
}

func TestLoadHinglishPairsMissingFileFallback(t *testing.T) {
	p := newTestProvider(t, t.TempDir())

	got := p.LoadHinglishPairs(100)

	require.Len(t, got, 5)
	assert.Equal(t, "movie", got[0].Word)
}

func TestLoadHinglishPairs(t *testing.T) {
	dir := t.TempDir()
	lines := []string{
		`{"translation": {"en": "What is the warranty period", "hi_ng": "Warranty kitne din ki hai"}}`,
		`this line is not json`,
		`{"translation": {"en": "  ", "hi_ng": "khali"}}`,
		`{"translation": {"en": "What does this have", "hi_ng": "kya hai"}}`,
		``,
	}
	writeDataset(t, dir, "hinglish_upload_v1.json", strings.Join(lines, "\n"))
	p := newTestProvider(t, dir)

	got := p.LoadHinglishPairs(100)

	require.Len(t, got, 2, "malformed and empty-side lines are skipped")

	// First token longer than 3 chars that is not a stop word.
	assert.Equal(t, "warranty", got[0].Word)
	assert.Equal(t, "What is the warranty period", got[0].Input)
	assert.Equal(t, "Warranty kitne din ki hai", got[0].Output)
	assert.Equal(t, got[0].Output, got[0].Definition)
	assert.Equal(t, got[0].Input, got[0].Example)

	// Every token filtered out -> literal "example".
	assert.Equal(t, "example", got[1].Word)
}

func TestLoadHinglishPairsRespectsLimit(t *testing.T) {
	dir := t.TempDir()
	var lines []string
	for range 10 {
		lines = append(lines, `{"translation": {"en": "some sentence here", "hi_ng": "kuch vakya"}}`)
	}
	writeDataset(t, dir, "hinglish_upload_v1.json", strings.Join(lines, "\n"))
	p := newTestProvider(t, dir)

	got := p.LoadHinglishPairs(4)

	assert.Len(t, got, 4)
}

func TestRepresentativeWord(t *testing.T) {
	tests := []struct {
		sentence string
		want     string
	}{
		{"What is the warranty period", "warranty"},
		{"Do you have this", "example"},
		{"when where does have", "example"},
		{"big cat", "example"}, // all tokens too short
		{"Whats happening today", "happening"},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			assert.Equal(t, tt.want, representativeWord(tt.sentence))
		})
	}
}
