// Package prompts builds the few-shot explanation prompt and parses the
// marker-line reply format the model is instructed to produce.
package prompts

import (
	"fmt"
	"strings"

	"github.com/bodhs/bodhs-bot/internal/dataset"
	"github.com/bodhs/bodhs-bot/internal/models"
)

// SystemPrompt frames the assistant persona for every completion call.
const SystemPrompt = "You are BoDH-S, a friendly AI that explains difficult " +
	"words in very simple language with clear examples."

// maxFewShot caps how many sample records go into one prompt.
const maxFewShot = 3

// BuildExplainPrompt renders the few-shot prompt for one word in the given
// mode, using up to three records from the cached sample.
func BuildExplainPrompt(word string, language models.Language, examples []dataset.Record) string {
	if len(examples) > maxFewShot {
		examples = examples[:maxFewShot]
	}

	var b strings.Builder

	if language == models.LanguageHinglish {
		b.WriteString("You are BoDH-S. Explain words in Hinglish (Hindi + English mix) for Indian users.\n\n")
		b.WriteString("Here are examples from hinglish_upload_v1.json:\n\n")
	} else {
		b.WriteString("You are BoDH-S. Explain words in VERY simple English.\n\n")
		b.WriteString("Here are examples from dictionary.json:\n\n")
	}

	for i, ex := range examples {
		fmt.Fprintf(&b, "%d. Word: %s\n", i+1, ex.Word)
		fmt.Fprintf(&b, "   Meaning: %s\n", ex.Definition)
		fmt.Fprintf(&b, "   Example: %s\n\n", exampleSentence(ex))
	}

	fmt.Fprintf(&b, "Now explain this word in the SAME style:\nWord: %s\n\n", word)

	if language == models.LanguageHinglish {
		b.WriteString("Format:\n")
		b.WriteString("Simple Meaning: [1 short sentence in Hinglish]\n")
		b.WriteString("Example: [1 Indian-style example sentence]\n")
		b.WriteString("Full Form: [agar abbreviation hai toh full form, warna N/A]")
	} else {
		b.WriteString("Format:\n")
		b.WriteString("Simple Meaning: [one clear sentence, max ~15 words]\n")
		b.WriteString("Example: [one practical real-life example]\n")
		b.WriteString("Full Form: [if abbreviation, else N/A]")
	}

	return b.String()
}

func exampleSentence(ex dataset.Record) string {
	if ex.Example != "" {
		return ex.Example
	}
	return ex.Input
}
