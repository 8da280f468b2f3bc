package prompts

import "strings"

// Fields holds the three labeled sections extracted from a completion reply.
type Fields struct {
	SimpleMeaning string
	Example       string
	FullForm      string
}

// rawFallbackLen bounds the simple-meaning fallback taken from the raw
// reply when no marker parsed.
const rawFallbackLen = 200

// ParseExplanation scans the reply line by line. A line containing one of
// the three markers (case-insensitive) opens that field with the text after
// the first colon; later non-marker lines are space-joined onto the open
// field. A literal "N/A" full form is dropped. Every field is trimmed of
// whitespace and asterisks at the end.
func ParseExplanation(text string) Fields {
	var f Fields
	var current *string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "simple meaning:"):
			current = &f.SimpleMeaning
			if content := afterColon(line); content != "" {
				f.SimpleMeaning = content
			}

		case strings.Contains(lower, "full form:"):
			current = &f.FullForm
			if content := afterColon(line); content != "" && !strings.EqualFold(content, "n/a") {
				f.FullForm = content
			}

		case strings.Contains(lower, "example:"):
			current = &f.Example
			if content := afterColon(line); content != "" {
				f.Example = content
			}

		default:
			if current == nil {
				continue
			}
			if *current != "" {
				*current += " " + line
			} else {
				*current = line
			}
		}
	}

	f.SimpleMeaning = cleanField(f.SimpleMeaning)
	f.Example = cleanField(f.Example)
	f.FullForm = cleanField(f.FullForm)

	if f.SimpleMeaning == "" {
		f.SimpleMeaning = rawFallback(text)
	}

	return f
}

func afterColon(line string) string {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*")
	return strings.TrimSpace(s)
}

func rawFallback(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > rawFallbackLen {
		runes = runes[:rawFallbackLen]
	}
	return strings.TrimSpace(string(runes))
}
