// Package dataset loads the two example corpora and maintains the cached
// few-shot sample the explanation engine prompts with.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
)

const (
	// Definitions longer than this are truncated for prompt hygiene.
	maxDefinitionLen = 150
	truncatedDefLen  = 147
)

// stopWords are tokens never used as the representative word of a
// Hinglish sentence pair.
var stopWords = map[string]bool{
	"what": true, "whats": true, "when": true, "where": true,
	"does": true, "have": true, "this": true, "that": true,
	"kind": true, "name": true,
}

// Record is one few-shot example. Dictionary records fill Word, Definition
// and Example; Hinglish records additionally carry the raw sentence pair.
type Record struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	FullForm   string `json:"full_form,omitempty"`
	Input      string `json:"input,omitempty"`
	Output     string `json:"output,omitempty"`
}

// Provider loads corpora from the datasets directory, falling back to the
// built-in example lists when a source file is missing or unreadable.
type Provider struct {
	dir            string
	dictionaryPath string
	hinglishPath   string
	samplePath     string
	corpusLimit    int
	log            *zap.SugaredLogger
}

func NewProvider(cfg config.DatasetConfig, log *zap.SugaredLogger) *Provider {
	return &Provider{
		dir:            cfg.Dir,
		dictionaryPath: filepath.Join(cfg.Dir, cfg.DictionaryFile),
		hinglishPath:   filepath.Join(cfg.Dir, cfg.HinglishFile),
		samplePath:     filepath.Join(cfg.Dir, cfg.SampleFile),
		corpusLimit:    cfg.CorpusLimit,
		log:            log,
	}
}

// LoadEnglishDictionary reads the word->definition corpus in source order,
// up to limit records. Never fails: any read or decode problem yields the
// static fallback list.
func (p *Provider) LoadEnglishDictionary(limit int) []Record {
	records, err := p.loadDictionary(limit)
	if err != nil {
		p.log.Warnw("english dictionary unavailable, using fallback",
			"path", p.dictionaryPath, "error", err)
		return fallbackEnglish()
	}
	p.log.Infow("english dictionary loaded", "records", len(records))
	return records
}

func (p *Provider) loadDictionary(limit int) ([]Record, error) {
	f, err := os.Open(p.dictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	// Token-stream decoding keeps the source key order, which a plain
	// map[string]string decode would lose.
	dec := json.NewDecoder(bufio.NewReader(f))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("dictionary is not a JSON object")
	}

	var records []Record
	for dec.More() && len(records) < limit {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read dictionary key: %w", err)
		}
		word, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("dictionary key is not a string")
		}

		var definition string
		if err := dec.Decode(&definition); err != nil {
			return nil, fmt.Errorf("read definition for %q: %w", word, err)
		}

		records = append(records, Record{
			Word:       strings.ToLower(word),
			Definition: cleanDefinition(definition),
			Example:    fmt.Sprintf("Example: The %s is important.", word),
		})
	}

	return records, nil
}

// cleanDefinition flattens newlines and truncates overlong definitions.
func cleanDefinition(def string) string {
	def = strings.TrimSpace(strings.ReplaceAll(def, "\n", " "))
	if len(def) > maxDefinitionLen {
		def = def[:truncatedDefLen] + "..."
	}
	return def
}

// hinglishLine is one JSONL record of the localized corpus.
type hinglishLine struct {
	Translation struct {
		English  string `json:"en"`
		Hinglish string `json:"hi_ng"`
	} `json:"translation"`
}

// LoadHinglishPairs reads the JSONL sentence-pair corpus up to limit
// accepted records. Malformed lines are skipped; a missing or unreadable
// file yields the static fallback list.
func (p *Provider) LoadHinglishPairs(limit int) []Record {
	records, err := p.loadHinglish(limit)
	if err != nil {
		p.log.Warnw("hinglish corpus unavailable, using fallback",
			"path", p.hinglishPath, "error", err)
		return fallbackHinglish()
	}
	p.log.Infow("hinglish corpus loaded", "records", len(records))
	return records
}

func (p *Provider) loadHinglish(limit int) ([]Record, error) {
	f, err := os.Open(p.hinglishPath)
	if err != nil {
		return nil, fmt.Errorf("open hinglish corpus: %w", err)
	}
	defer f.Close()

	var records []Record

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && len(records) < limit {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry hinglishLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}

		english := strings.TrimSpace(entry.Translation.English)
		hinglish := strings.TrimSpace(entry.Translation.Hinglish)
		if english == "" || hinglish == "" {
			continue
		}

		records = append(records, Record{
			Word:       representativeWord(english),
			Input:      english,
			Output:     hinglish,
			Definition: hinglish,
			Example:    english,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan hinglish corpus: %w", err)
	}

	return records, nil
}

// representativeWord picks the first token longer than 3 chars that is not
// a stop word; "example" when none qualifies.
func representativeWord(sentence string) string {
	for _, tok := range strings.Fields(strings.ToLower(sentence)) {
		if len(tok) > 3 && !stopWords[tok] {
			return tok
		}
	}
	return "example"
}
