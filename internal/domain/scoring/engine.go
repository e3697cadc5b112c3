package scoring

import (
	"strings"

	"resume-tailor/internal/domain/skills"
)

const (
	maxScore       = 0.95
	skillBoostUnit = 0.1
	skillBoostCap  = 0.3

	// DefaultScore is returned when similarity cannot be computed at all.
	// Callers can tell a computed score from the fallback via Defaulted.
	DefaultScore = 0.5
)

// Score is the résumé↔job similarity result. Value is always in [0, 0.95].
type Score struct {
	Value     float64
	Defaulted bool
}

type Engine struct {
	matcher *skills.Matcher
}

func NewEngine(matcher *skills.Matcher) *Engine {
	return &Engine{matcher: matcher}
}

// Similarity computes Jaccard word overlap between the two texts, boosted by
// 0.1 per shared technical skill (boost capped at 0.3), capped at 0.95.
// Either side empty yields exactly 0.
func (e *Engine) Similarity(resumeText, jobText string) Score {
	if e == nil || e.matcher == nil {
		return Score{Value: DefaultScore, Defaulted: true}
	}

	resumeWords := wordSet(resumeText)
	jobWords := wordSet(jobText)
	if len(resumeWords) == 0 || len(jobWords) == 0 {
		return Score{Value: 0}
	}

	intersection := 0
	for w := range resumeWords {
		if _, ok := jobWords[w]; ok {
			intersection++
		}
	}
	union := len(resumeWords) + len(jobWords) - intersection
	if union == 0 {
		return Score{Value: 0}
	}
	similarity := float64(intersection) / float64(union)

	shared := sharedSkills(e.matcher.Extract(resumeText), e.matcher.Extract(jobText))
	boost := 0.0
	if shared > 0 {
		boost = skillBoostUnit * float64(shared)
		if boost > skillBoostCap {
			boost = skillBoostCap
		}
	}

	final := similarity + boost
	if final > maxScore {
		final = maxScore
	}
	if final < 0 {
		final = 0
	}
	return Score{Value: final}
}

func wordSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func sharedSkills(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[strings.ToLower(s)] = struct{}{}
	}
	n := 0
	for _, s := range b {
		if _, ok := set[strings.ToLower(s)]; ok {
			n++
		}
	}
	return n
}
