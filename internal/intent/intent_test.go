package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodhs/bodhs-bot/internal/models"
)

func TestClassifyGreetings(t *testing.T) {
	inputs := []string{
		"hi", "Hi", "HI", "hii", "hiii",
		"hello", "Hello bot", "hey", "heyyy",
		"whats up", "wassup", "sup",
		"namaste", "namaskar",
		"start", "help", "menu", "begin",
		"hola", "yo",
		"  hello  ",
		"hiii there",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got := Classify(in)
			assert.Equal(t, KindGreeting, got.Kind)
		})
	}
}

func TestClassifyModeSelection(t *testing.T) {
	tests := []struct {
		input string
		want  models.Language
	}{
		{"1", models.LanguageEnglish},
		{"1.", models.LanguageEnglish},
		{"one", models.LanguageEnglish},
		{"english", models.LanguageEnglish},
		{"English", models.LanguageEnglish},
		{"easy english", models.LanguageEnglish},
		{"english mode", models.LanguageEnglish},
		{"mode_english", models.LanguageEnglish},
		{"ok go with option 1", models.LanguageEnglish},
		{"please switch to option 1", models.LanguageEnglish},
		{"i want english only please", models.LanguageEnglish},

		{"2", models.LanguageHinglish},
		{"2.", models.LanguageHinglish},
		{"two", models.LanguageHinglish},
		{"mode_hinglish", models.LanguageHinglish},
		{"switch to hinglish please", models.LanguageHinglish},
		{"go with option 2", models.LanguageHinglish},
		{"ok switch to option 2", models.LanguageHinglish},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, KindModeSelect, got.Kind)
			assert.Equal(t, tt.want, got.Language)
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		got := Classify(in)
		assert.Equal(t, KindEmpty, got.Kind)
	}
}

func TestClassifyWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"algorithm", "algorithm"},
		{"what is algorithm", "algorithm"},
		{"What is Algorithm", "algorithm"},
		{"meaning of warranty", "warranty"},
		{"explain cryptocurrency", "cryptocurrency"},
		{"what is meaning of refund", "refund"},
		// Residue empty after filler stripping.
		{"explain", ""},
		{"what is", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, KindWord, got.Kind)
			assert.Equal(t, tt.want, got.Word)
		})
	}
}

// Locks in the known rule-ordering quirk: an explain request that mentions
// a mode word is classified as a mode switch, not a word to explain.
func TestClassifyModePhraseAmbiguity(t *testing.T) {
	got := Classify("explain hinglish word")
	assert.Equal(t, KindModeSelect, got.Kind)
	assert.Equal(t, models.LanguageHinglish, got.Language)
}

func TestGreetingWinsOverMode(t *testing.T) {
	// "help" is a greeting even though a session may be mid-flow.
	got := Classify("help")
	assert.Equal(t, KindGreeting, got.Kind)

	// Prefix matching makes bare "hinglish" and "hindi" greetings too
	// ("hi" prefix); the menu they trigger still offers the mode buttons.
	assert.Equal(t, KindGreeting, Classify("hinglish").Kind)
	assert.Equal(t, KindGreeting, Classify("hindi").Kind)
}
