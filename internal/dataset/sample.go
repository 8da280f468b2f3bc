package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/bodhs/bodhs-bot/internal/models"
)

// Metadata describes how a sample was produced.
type Metadata struct {
	BotName       string `json:"bot_name"`
	TotalEnglish  int    `json:"total_english"`
	TotalHinglish int    `json:"total_hinglish"`
	Source        string `json:"source"`
}

// Sample is the cached few-shot draw from both corpora. It is created once,
// persisted next to the corpora, and reused on every later start, so prompt
// content is fixed for the life of the cache file.
type Sample struct {
	English  []Record `json:"english"`
	Hinglish []Record `json:"hinglish"`
	Metadata Metadata `json:"metadata"`
}

// ForLanguage returns the sample records for one mode.
func (s *Sample) ForLanguage(lang models.Language) []Record {
	if lang == models.LanguageHinglish {
		return s.Hinglish
	}
	return s.English
}

// LoadOrCreateSample returns the cached sample when the file is present and
// readable, otherwise builds and persists a fresh one with n examples per
// language.
func (p *Provider) LoadOrCreateSample(n int) (*Sample, error) {
	data, err := os.ReadFile(p.samplePath)
	if err == nil {
		var sample Sample
		if err := json.Unmarshal(data, &sample); err == nil {
			p.log.Infow("sample cache loaded", "path", p.samplePath,
				"english", len(sample.English), "hinglish", len(sample.Hinglish))
			return &sample, nil
		}
		p.log.Warnw("sample cache unreadable, rebuilding",
			"path", p.samplePath, "error", err)
	}

	return p.CreateSample(n)
}

// CreateSample loads both corpora, draws n examples from each without
// replacement (fewer when a corpus is smaller) and persists the result.
func (p *Provider) CreateSample(n int) (*Sample, error) {
	english := p.LoadEnglishDictionary(p.corpusLimit)
	hinglish := p.LoadHinglishPairs(p.corpusLimit)

	sample := &Sample{
		English:  drawSample(english, n),
		Hinglish: drawSample(hinglish, n),
		Metadata: Metadata{
			BotName:       "bodhs",
			TotalEnglish:  len(english),
			TotalHinglish: len(hinglish),
			Source:        "dictionary.json + hinglish_upload_v1.json",
		},
	}

	if err := p.writeSample(sample); err != nil {
		return nil, err
	}

	p.log.Infow("sample cache created", "path", p.samplePath,
		"english", len(sample.English), "hinglish", len(sample.Hinglish))

	return sample, nil
}

func (p *Provider) writeSample(sample *Sample) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create datasets dir: %w", err)
	}

	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sample: %w", err)
	}

	if err := os.WriteFile(p.samplePath, data, 0o644); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}

	return nil
}

// drawSample picks n records uniformly without replacement.
func drawSample(src []Record, n int) []Record {
	if n > len(src) {
		n = len(src)
	}

	out := make([]Record, 0, n)
	for _, i := range rand.Perm(len(src))[:n] {
		out = append(out, src[i])
	}
	return out
}
