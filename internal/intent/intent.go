// Package intent classifies an incoming chat message with an ordered list
// of string-matching rules, first match wins.
package intent

import (
	"strings"

	"github.com/bodhs/bodhs-bot/internal/models"
)

// Kind is the message classification.
type Kind int

const (
	// KindGreeting resets the conversation and shows the mode menu.
	KindGreeting Kind = iota
	// KindModeSelect picks a response-language mode.
	KindModeSelect
	// KindEmpty is a blank message.
	KindEmpty
	// KindWord is everything else: a word/phrase to explain.
	KindWord
)

// Intent is the classification result. Language is set for KindModeSelect;
// Word is the filler-stripped residue for KindWord and may be empty.
type Intent struct {
	Kind     Kind
	Language models.Language
	Word     string
}

// greetings match exactly or as a prefix of the message.
var greetings = []string{
	"hi", "hii", "hiii", "hiiii",
	"hello", "helo", "hallo",
	"hey", "heyy", "heyyy",
	"whatsup", "whats up", "wassup", "watsup", "sup",
	"namaste", "namaskar",
	"start", "begin", "help", "menu",
	"hola", "yo",
}

// Exact mode matches cover buttons, plain numbers and single words.
var englishExact = map[string]bool{
	"1": true, "1.": true, "one": true,
	"mode_english": true, "easy english": true,
	"english": true, "english mode": true,
}

var hinglishExact = map[string]bool{
	"2": true, "2.": true, "two": true,
	"mode_hinglish": true, "hinglish": true,
	"hindi": true, "hinglish mode": true,
}

// Phrase matches catch full sentences like "ok go with option 2".
// Containment matching is known to misfire on explain requests that merely
// mention a mode word; that ordering quirk is accepted behavior.
var englishPhrases = []string{
	"option 1", "go with 1", "go with option 1",
	"switch to option 1", "easy english", "english only",
}

var hinglishPhrases = []string{
	"option 2", "go with 2", "go with option 2",
	"switch to option 2", "hinglish", "hindi english", "indian users",
}

// fillerPhrases are stripped before treating the residue as the word.
var fillerPhrases = []string{"what is", "meaning of", "explain"}

// rule pairs a name (for tests and logs) with a matcher over the
// normalized message.
type rule struct {
	name  string
	match func(text string) (Intent, bool)
}

// rules are evaluated in order; the word rule always matches.
var rules = []rule{
	{"greeting", matchGreeting},
	{"mode", matchMode},
	{"empty", matchEmpty},
	{"word", matchWord},
}

// Classify runs the rule table over the trimmed, lower-cased message.
func Classify(raw string) Intent {
	text := strings.ToLower(strings.TrimSpace(raw))

	for _, r := range rules {
		if in, ok := r.match(text); ok {
			return in
		}
	}

	// Unreachable: matchWord accepts everything.
	return Intent{Kind: KindWord}
}

func matchGreeting(text string) (Intent, bool) {
	if text == "" {
		return Intent{}, false
	}
	for _, g := range greetings {
		if text == g || strings.HasPrefix(text, g) {
			return Intent{Kind: KindGreeting}, true
		}
	}
	return Intent{}, false
}

func matchMode(text string) (Intent, bool) {
	if englishExact[text] {
		return Intent{Kind: KindModeSelect, Language: models.LanguageEnglish}, true
	}
	if hinglishExact[text] {
		return Intent{Kind: KindModeSelect, Language: models.LanguageHinglish}, true
	}

	for _, kw := range englishPhrases {
		if strings.Contains(text, kw) {
			return Intent{Kind: KindModeSelect, Language: models.LanguageEnglish}, true
		}
	}
	for _, kw := range hinglishPhrases {
		if strings.Contains(text, kw) {
			return Intent{Kind: KindModeSelect, Language: models.LanguageHinglish}, true
		}
	}

	return Intent{}, false
}

func matchEmpty(text string) (Intent, bool) {
	if text != "" {
		return Intent{}, false
	}
	return Intent{Kind: KindEmpty}, true
}

func matchWord(text string) (Intent, bool) {
	for _, filler := range fillerPhrases {
		text = strings.ReplaceAll(text, filler, "")
	}
	return Intent{Kind: KindWord, Word: strings.TrimSpace(text)}, true
}
