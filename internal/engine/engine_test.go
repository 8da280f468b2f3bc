package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
	"github.com/bodhs/bodhs-bot/internal/dataset"
	"github.com/bodhs/bodhs-bot/internal/llm"
	"github.com/bodhs/bodhs-bot/internal/models"
)

type fakeProvider struct {
	lastRequest *llm.Request
	content     string
	err         error
}

func (f *fakeProvider) Complete(_ context.Context, request *llm.Request) (*llm.Response, error) {
	f.lastRequest = request
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content}, nil
}

func testConfig() config.GroqConfig {
	return config.GroqConfig{
		Model:       "llama-3.3-70b-versatile",
		Timeout:     time.Second,
		MaxTokens:   400,
		Temperature: 0.3,
		TopP:        0.9,
	}
}

func testSample() *dataset.Sample {
	return &dataset.Sample{
		English:  []dataset.Record{{Word: "warranty", Definition: "promise to fix", Example: "1 year warranty"}},
		Hinglish: []dataset.Record{{Word: "movie", Definition: "film matlab cinema", Example: "What is the movie name"}},
	}
}

func TestExplainSuccess(t *testing.T) {
	provider := &fakeProvider{
		content: "Simple Meaning: a digital currency\n" +
			"Example: bitcoin is a cryptocurrency\n" +
			"Full Form: N/A",
	}
	eng := New(provider, testSample(), testConfig(), zap.NewNop().Sugar())

	got := eng.Explain(context.Background(), "cryptocurrency", models.LanguageEnglish)

	assert.True(t, got.Success)
	assert.Equal(t, "cryptocurrency", got.Word)
	assert.Equal(t, "english", got.Language)
	assert.Equal(t, "a digital currency", got.SimpleMeaning)
	assert.Equal(t, "bitcoin is a cryptocurrency", got.Example)
	assert.Empty(t, got.FullForm)
	assert.Empty(t, got.Error)
}

func TestExplainPromptAndParameters(t *testing.T) {
	provider := &fakeProvider{content: "Simple Meaning: ok"}
	eng := New(provider, testSample(), testConfig(), zap.NewNop().Sugar())

	eng.Explain(context.Background(), "algorithm", models.LanguageEnglish)

	req := provider.lastRequest
	require.NotNil(t, req)
	assert.Contains(t, req.System, "BoDH-S")
	assert.Contains(t, req.Prompt, "Word: algorithm")
	assert.Contains(t, req.Prompt, "Word: warranty", "few-shot sample must be included")
	assert.Equal(t, 400, req.MaxTokens)
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	assert.InDelta(t, 0.9, req.TopP, 1e-9)
}

func TestExplainHinglishUsesHinglishSample(t *testing.T) {
	provider := &fakeProvider{content: "Simple Meaning: thik hai"}
	eng := New(provider, testSample(), testConfig(), zap.NewNop().Sugar())

	got := eng.Explain(context.Background(), "film", models.LanguageHinglish)

	assert.Contains(t, provider.lastRequest.Prompt, "Word: movie")
	assert.NotContains(t, provider.lastRequest.Prompt, "Word: warranty")
	assert.Equal(t, "hinglish", got.Language)
}

func TestExplainProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	eng := New(provider, testSample(), testConfig(), zap.NewNop().Sugar())

	got := eng.Explain(context.Background(), "warranty", models.LanguageEnglish)

	assert.False(t, got.Success)
	assert.Equal(t, "warranty", got.Word)
	assert.Contains(t, got.Error, "connection refused")
	assert.Empty(t, got.SimpleMeaning)
}
