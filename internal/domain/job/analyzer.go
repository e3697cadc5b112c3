package job

import (
	"regexp"
	"strings"

	"resume-tailor/internal/domain/skills"
)

const (
	defaultRole    = "Software Engineer"
	defaultCompany = "Tech Company"

	maxResponsibilities = 5
	minResponsibilityLen = 20
	roleScanLines        = 5
)

var (
	// Section isolation. RE2 has no lookahead, so the boundary is consumed
	// by a terminator alternation instead; only the captured group is used.
	requiredSectionRe = regexp.MustCompile(
		`(?is)(?:requirements?|qualifications?|must have):?(.*?)(?:preferred|nice to have|bonus|plus|responsibilities|duties|benefits|about|$)`)
	preferredSectionRe = regexp.MustCompile(
		`(?is)(?:preferred|nice to have|bonus|plus):?(.*?)(?:responsibilities|duties|benefits|about|$)`)

	companyRe = regexp.MustCompile(`(?:at|join|@)\s+([A-Z][a-zA-Z\s&]+?)(?:\s|,|\.|\n)`)
	bulletRe  = regexp.MustCompile(`[•\-\*]\s*([^•\-\*\n]+)`)

	roleWords = []string{"engineer", "developer", "manager", "analyst", "specialist"}

	// Priority-ordered: a post mentioning both "senior" and "junior"
	// classifies as Senior.
	seniorTerms = []string{"senior", "lead", "principal", "5+ years", "7+ years"}
	midTerms    = []string{"mid", "intermediate", "2-4 years", "3+ years"}
	juniorTerms = []string{"junior", "entry", "0-2 years", "new grad"}
)

type Analyzer struct {
	matcher *skills.Matcher
}

func NewAnalyzer(matcher *skills.Matcher) *Analyzer {
	return &Analyzer{matcher: matcher}
}

// Analyze reads a job description into an Analysis. Skill extraction uses the
// matcher's regex pass only; when no requirements/preferred section is found
// the whole text is scanned, so the two lists may legitimately overlap.
func (a *Analyzer) Analyze(text string) Analysis {
	requiredSection := sectionOrWhole(requiredSectionRe, text)
	preferredSection := sectionOrWhole(preferredSectionRe, text)

	return Analysis{
		RequiredSkills:      a.matcher.ExtractPatterns(requiredSection),
		PreferredSkills:     a.matcher.ExtractPatterns(preferredSection),
		Role:                extractRole(text),
		Company:             extractCompany(text),
		ExperienceLevel:     determineLevel(text),
		KeyResponsibilities: extractResponsibilities(text),
		CompanyValues:       a.matcher.CompanyValues(text),
		KeyPhrases:          a.matcher.KeyPhrases(text),
	}
}

func sectionOrWhole(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 || strings.TrimSpace(m[1]) == "" {
		return text
	}
	return m[1]
}

func extractRole(text string) string {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > roleScanLines {
			break
		}
		lower := strings.ToLower(line)
		for _, w := range roleWords {
			if strings.Contains(lower, w) {
				return line
			}
		}
	}
	return defaultRole
}

func extractCompany(text string) string {
	m := companyRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return defaultCompany
	}
	company := strings.TrimSpace(m[1])
	if company == "" {
		return defaultCompany
	}
	return company
}

func determineLevel(text string) ExperienceLevel {
	lower := strings.ToLower(text)
	if containsAny(lower, seniorTerms) {
		return LevelSenior
	}
	if containsAny(lower, midTerms) {
		return LevelMid
	}
	if containsAny(lower, juniorTerms) {
		return LevelJunior
	}
	return LevelMid
}

func extractResponsibilities(text string) []string {
	matches := bulletRe.FindAllStringSubmatch(text, -1)
	if len(matches) > maxResponsibilities {
		matches = matches[:maxResponsibilities]
	}

	out := []string{}
	for _, m := range matches {
		item := strings.TrimSpace(m[1])
		if len(item) > minResponsibilityLen {
			out = append(out, item)
		}
	}
	return out
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
