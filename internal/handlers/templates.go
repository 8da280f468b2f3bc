package handlers

import (
	"fmt"
	"strings"

	"github.com/bodhs/bodhs-bot/internal/models"
)

// Fixed reply templates. Texts are the bot's production copy; keep the
// markdown and emoji intact, the chat widget renders them.

const modeSelectionIntro = "👋 **Hi! I'm BoDH-S!**\n\n" +
	"I turn tough words into easy explanations with examples.\n\n" +
	"🌟 Choose how you want answers:\n\n" +
	"1️⃣ **Easy English** - Simple meaning + example\n" +
	"2️⃣ **Hinglish** - Hindi + English meaning + example\n\n" +
	"Tap a button below or type 1 / 2."

const modeSelectionReminder = "⚠️ Please choose your preferred mode first:\n\n" +
	"1️⃣ Easy English\n" +
	"2️⃣ Hinglish for Indian users\n\n" +
	"Tap a button below or type 1 / 2."

const modeConfirmedEnglish = "✅ **Mode set to Easy English**.\n\n" +
	"Now type any difficult word and I'll explain it in simple English " +
	"with a short example.\n\n" +
	"📝 For example: algorithm, warranty, refund, cryptocurrency."

const modeConfirmedHinglish = "✅ **Mode set to Hinglish**.\n\n" +
	"Ab se main words ko Hinglish mein simple meaning + example ke saath " +
	"samjhaunga.\n\n" +
	"📝 For example: movie, EMI, warranty, COD."

const typeWordText = "Please type the word you want me to explain.\n\n" +
	"📝 Example: algorithm, warranty, COD."

const offlineText = "❌ BoDH-S is currently offline."

func modeSelectionResponse(remind bool) *models.WebhookResponse {
	text := modeSelectionIntro
	if remind {
		text = modeSelectionReminder
	}

	return &models.WebhookResponse{
		Replies: []models.Reply{{
			Text: text,
			Suggestions: []models.Suggestion{
				{Title: "1️⃣ Easy English", Value: "1"},
				{Title: "2️⃣ Hinglish for Indian users", Value: "2"},
			},
		}},
	}
}

func modeConfirmedResponse(language models.Language) *models.WebhookResponse {
	text := modeConfirmedEnglish
	if language == models.LanguageHinglish {
		text = modeConfirmedHinglish
	}

	return &models.WebhookResponse{
		Replies: []models.Reply{{
			Text: text,
			Suggestions: []models.Suggestion{
				{Title: "algorithm", Value: "algorithm"},
				{Title: "warranty", Value: "warranty"},
				{Title: "COD", Value: "COD"},
			},
		}},
	}
}

func successResponse(result models.ExplainResult) *models.WebhookResponse {
	meaning := result.SimpleMeaning
	if meaning == "" {
		meaning = "Meaning not available."
	}
	example := result.Example
	if example == "" {
		example = "Example not available."
	}

	flag := "📖"
	if result.Language == string(models.LanguageHinglish) {
		flag = "🇮🇳"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s**\n\n", flag, strings.ToUpper(result.Word))
	if result.FullForm != "" {
		fmt.Fprintf(&b, "**Full Form:** %s\n\n", result.FullForm)
	}
	fmt.Fprintf(&b, "**✏️ Simple Meaning:**\n%s\n\n", meaning)
	fmt.Fprintf(&b, "**💡 Example:**\n%s\n\n", example)
	b.WriteString("_- BoDH-S 🤖_")

	return &models.WebhookResponse{
		Replies: []models.Reply{{
			Text: b.String(),
			Suggestions: []models.Suggestion{
				{Title: "🔍 Another word", Value: "start"},
				{Title: "Change mode", Value: "menu"},
			},
		}},
	}
}

func errorResponse(word string) *models.WebhookResponse {
	return &models.WebhookResponse{
		Replies: []models.Reply{{
			Text: fmt.Sprintf("😔 Sorry! I couldn't explain **%s**.\n\n"+
				"Please check the spelling or try a different word.", word),
		}},
	}
}

func typeWordResponse() *models.WebhookResponse {
	return &models.WebhookResponse{
		Replies: []models.Reply{{Text: typeWordText}},
	}
}

// OfflineResponse is the reply served when the engine never initialized.
func OfflineResponse() *models.WebhookResponse {
	return &models.WebhookResponse{
		Replies: []models.Reply{{Text: offlineText}},
	}
}
