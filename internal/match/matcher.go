package match

import (
	"regexp"
	"strings"
)

// SkillMatcher scans document text against a fixed skill vocabulary.
// Patterns are compiled once at construction and reused across documents.
type SkillMatcher struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewSkillMatcher compiles one whole-word, case-insensitive pattern per
// vocabulary term. Terms are matched literally, so "C++" and "C#" work as
// expected.
func NewSkillMatcher(vocabulary []string) (*SkillMatcher, error) {
	terms := make([]string, 0, len(vocabulary))
	patterns := make([]*regexp.Regexp, 0, len(vocabulary))
	for _, term := range vocabulary {
		re, err := regexp.Compile(wordPattern(term))
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		patterns = append(patterns, re)
	}
	return &SkillMatcher{terms: terms, patterns: patterns}, nil
}

// Match returns the vocabulary terms that occur in text as case-insensitive
// whole words, in vocabulary order, each at most once.
func (m *SkillMatcher) Match(text string) []string {
	var found []string
	for i, re := range m.patterns {
		if re.MatchString(text) {
			found = append(found, m.terms[i])
		}
	}
	return found
}

// wordPattern builds a case-insensitive pattern that matches term as a whole
// word. `\b` only works next to word characters, so the boundary assertions
// are conditional: "Java" gets both (and so cannot match inside
// "JavaScript"), while "C++" keeps its trailing pluses unanchored.
func wordPattern(term string) string {
	var b strings.Builder
	b.WriteString(`(?i)`)
	if startsWordChar(term) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(term))
	if endsWordChar(term) {
		b.WriteString(`\b`)
	}
	return b.String()
}

func startsWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[0]))
}

func endsWordChar(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	return isWordChar(runes[len(runes)-1])
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
