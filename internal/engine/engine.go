// Package engine turns a word plus a language mode into a structured
// explanation by prompting the completion provider with the cached
// few-shot sample.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
	"github.com/bodhs/bodhs-bot/internal/dataset"
	"github.com/bodhs/bodhs-bot/internal/llm"
	"github.com/bodhs/bodhs-bot/internal/models"
	"github.com/bodhs/bodhs-bot/internal/prompts"
)

type Engine struct {
	provider    llm.Provider
	sample      *dataset.Sample
	model       string
	timeout     time.Duration
	maxTokens   int
	temperature float64
	topP        float64
	log         *zap.SugaredLogger
}

func New(provider llm.Provider, sample *dataset.Sample, cfg config.GroqConfig, log *zap.SugaredLogger) *Engine {
	return &Engine{
		provider:    provider,
		sample:      sample,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		log:         log,
	}
}

// Model returns the completion model identifier in use.
func (e *Engine) Model() string {
	return e.model
}

// Sample returns the cached few-shot sample.
func (e *Engine) Sample() *dataset.Sample {
	return e.sample
}

// Explain asks the provider to explain word in the given mode. It never
// returns a Go error: any failure (timeout, transport, empty reply) comes
// back as a Result with Success=false and the error description.
func (e *Engine) Explain(ctx context.Context, word string, language models.Language) models.ExplainResult {
	prompt := prompts.BuildExplainPrompt(word, language, e.sample.ForLanguage(language))

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.Complete(ctx, &llm.Request{
		System:      prompts.SystemPrompt,
		Prompt:      prompt,
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
		TopP:        e.topP,
	})
	if err != nil {
		e.log.Warnw("explanation failed", "word", word, "language", language, "error", err)
		return models.ExplainResult{
			Word:  word,
			Error: err.Error(),
		}
	}

	fields := prompts.ParseExplanation(resp.Content)

	return models.ExplainResult{
		Success:       true,
		Word:          word,
		Language:      string(language),
		SimpleMeaning: fields.SimpleMeaning,
		Example:       fields.Example,
		FullForm:      fields.FullForm,
	}
}
