package skills

import (
	"regexp"
	"strings"
)

const DefaultMaxSkills = 15

// Matcher scans free text for known technology terms. Two passes exist on
// purpose: Extract runs literal vocabulary containment plus the regex
// patterns (résumé side), ExtractPatterns runs only the regex patterns
// (job-description side). The asymmetry is inherited service behavior and
// must not be unified silently.
type Matcher struct {
	vocab    Vocabulary
	patterns []*regexp.Regexp
	max      int
}

func NewMatcher(vocab Vocabulary) *Matcher {
	m := &Matcher{vocab: vocab, max: DefaultMaxSkills}
	for _, p := range vocab.SkillPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			continue
		}
		m.patterns = append(m.patterns, re)
	}
	return m
}

// WithMax returns a copy of the matcher with a different result cap.
func (m *Matcher) WithMax(max int) *Matcher {
	if max <= 0 {
		return m
	}
	c := *m
	c.max = max
	return &c
}

// Extract returns up to max skills found in text, lower-cased. Result order
// is deterministic: vocabulary-list order first, then regex matches in the
// order they appear in the text. Entries are unique case-insensitively.
func (m *Matcher) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make([]string, 0, m.max)
	seen := make(map[string]struct{})

	for _, skill := range m.vocab.TechSkills {
		if strings.Contains(lower, skill) {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			found = append(found, skill)
		}
	}

	for _, match := range m.patternMatches(text) {
		key := strings.ToLower(match)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, key)
	}

	if len(found) > m.max {
		found = found[:m.max]
	}
	return found
}

// ExtractPatterns runs only the regex pass and keeps the casing found in the
// text. Used by job-description analysis.
func (m *Matcher) ExtractPatterns(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	found := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for _, match := range m.patternMatches(text) {
		key := strings.ToLower(match)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, match)
	}

	if len(found) > m.max {
		found = found[:m.max]
	}
	return found
}

// KeyPhrases returns the vocabulary key phrases contained in text.
func (m *Matcher) KeyPhrases(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, phrase := range m.vocab.KeyPhrases {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

// CompanyValues returns the culture keywords contained in text.
func (m *Matcher) CompanyValues(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, kw := range m.vocab.CompanyValues {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func (m *Matcher) patternMatches(text string) []string {
	matches := []string{}
	for _, re := range m.patterns {
		matches = append(matches, re.FindAllString(text, -1)...)
	}
	return matches
}
