package models

import "strings"

// Language is the response-language mode a user selects for explanations.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
)

// Valid reports whether l is one of the two supported modes.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageHinglish
}

// ParseLanguage coerces free-form input to a supported mode.
// Anything that is not "hinglish" falls back to english.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(LanguageHinglish)) {
		return LanguageHinglish
	}
	return LanguageEnglish
}

// Webhook request from the chat widget.
type WebhookRequest struct {
	User    WebhookUser    `json:"user"`
	Message WebhookMessage `json:"message"`
}

type WebhookUser struct {
	ID string `json:"id"`
}

type WebhookMessage struct {
	Text string `json:"text"`
}

// Webhook response to the chat widget.
type WebhookResponse struct {
	Replies []Reply `json:"replies"`
}

// Reply is one message block; suggestions render as clickable quick replies.
type Reply struct {
	Text        string       `json:"text"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

type Suggestion struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// ExplainRequest is the direct query endpoint payload.
type ExplainRequest struct {
	Word     string `json:"word"`
	Language string `json:"language"`
}

// ExplainResult is the structured outcome of one explanation attempt.
// Success carries the three parsed fields; failure carries Error only.
type ExplainResult struct {
	Success       bool   `json:"success"`
	Word          string `json:"word"`
	Language      string `json:"language,omitempty"`
	SimpleMeaning string `json:"simple_meaning,omitempty"`
	Example       string `json:"example,omitempty"`
	FullForm      string `json:"full_form,omitempty"`
	Error         string `json:"error,omitempty"`
}
