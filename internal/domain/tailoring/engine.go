package tailoring

import (
	"fmt"
	"strings"

	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/resume"
)

const (
	maxAddedKeywords  = 8
	maxSkillsInBlock  = 5
	maxTopSkills      = 3
	defaultMatchScore = 50
	matchScoreBonus   = 15
	maxMatchScore     = 95
)

var (
	actionVerbs = []string{"developed", "built", "created", "implemented", "designed"}

	experienceSynonyms = []string{"EXPERIENCE", "WORK", "EMPLOYMENT"}
	educationSynonyms  = []string{"EDUCATION", "ACADEMIC"}
	projectSynonyms    = []string{"PROJECT", "PORTFOLIO"}
)

// Engine produces tailored résumés from raw text plus a job analysis. It is
// the always-available rule-based path; the LLM path wraps it as a fallback.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// BuildFallback assembles a tailored résumé by template: fixed header,
// synthesized summary, skills block, then a re-walk of the original text with
// canonical section headers and keyword-enhanced experience bullets. A KEY
// PROJECTS section is appended when the original never mentions projects.
func (e *Engine) BuildFallback(resumeText string, ja job.Analysis) string {
	skillsToAdd := topN(ja.RequiredSkills, maxSkillsInBlock)
	role := ja.Role
	if role == "" {
		role = "Software Engineer"
	}

	var out []string
	out = append(out,
		"PROFESSIONAL RESUME",
		"",
		"PROFESSIONAL SUMMARY",
		fmt.Sprintf("Results-driven %s with proven expertise in %s.", role, strings.Join(topN(skillsToAdd, maxTopSkills), ", ")),
		"Demonstrated ability to deliver high-quality solutions and collaborate effectively in agile environments.",
		"Passionate about leveraging technology to solve complex business challenges.",
		"",
		"TECHNICAL SKILLS",
		fmt.Sprintf("• Core Technologies: %s", strings.Join(skillsToAdd, ", ")),
		"• Development: Agile methodologies, CI/CD, Code review, Testing",
		"• Tools: Git, Docker, Cloud platforms, Database management",
		"",
	)

	currentSection := ""
	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case containsAny(upper, experienceSynonyms):
			currentSection = "EXPERIENCE"
			out = append(out, "PROFESSIONAL EXPERIENCE", "")
		case containsAny(upper, educationSynonyms):
			currentSection = "EDUCATION"
			out = append(out, "EDUCATION", "")
		case containsAny(upper, projectSynonyms):
			currentSection = "PROJECTS"
			out = append(out, "KEY PROJECTS", "")
		default:
			if currentSection == "EXPERIENCE" {
				out = append(out, enhanceExperienceLine(line, skillsToAdd))
			} else {
				out = append(out, line)
			}
		}
	}

	if !strings.Contains(strings.ToUpper(resumeText), "PROJECTS") {
		out = append(out, "", "KEY PROJECTS")
		for i, project := range topN(e.SuggestProjects(ja), 3) {
			skillName := "modern technologies"
			if len(skillsToAdd) > 0 {
				skillName = skillsToAdd[i%len(skillsToAdd)]
			}
			out = append(out, fmt.Sprintf("• %s: Relevant project demonstrating %s expertise", project, skillName))
		}
	}

	return strings.Join(out, "\n")
}

// enhanceExperienceLine appends the top skill to bullet lines that describe
// building something but mention none of the target skills.
func enhanceExperienceLine(line string, skillsToAdd []string) string {
	if !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") {
		return line
	}

	lower := strings.ToLower(line)
	for _, skill := range skillsToAdd {
		if strings.Contains(lower, strings.ToLower(skill)) {
			return line
		}
	}

	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			skill := "modern technologies"
			if len(skillsToAdd) > 0 {
				skill = skillsToAdd[0]
			}
			return fmt.Sprintf("%s using %s", line, skill)
		}
	}
	return line
}

// SuggestProjects returns up to 5 portfolio project titles matching the job's
// required skills and role, in fixed category order.
func (e *Engine) SuggestProjects(ja job.Analysis) []string {
	role := strings.ToLower(ja.Role)

	var suggestions []string
	if hasSkill(ja.RequiredSkills, "react") || strings.Contains(role, "frontend") {
		suggestions = append(suggestions,
			"E-commerce Platform with React & TypeScript",
			"Real-time Chat Application")
	}
	if hasSkill(ja.RequiredSkills, "node") || strings.Contains(role, "backend") {
		suggestions = append(suggestions,
			"RESTful API with Node.js & Express",
			"Microservices Architecture")
	}
	if hasSkill(ja.RequiredSkills, "aws") || strings.Contains(role, "cloud") {
		suggestions = append(suggestions,
			"AWS Serverless Application",
			"CI/CD Pipeline with AWS")
	}
	if hasSkill(ja.RequiredSkills, "python") {
		suggestions = append(suggestions,
			"Machine Learning Model Deployment",
			"Data Analysis Dashboard")
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"Full-Stack Web Application",
			"API Integration Project",
			"Database Design & Implementation",
		}
	}

	return topN(suggestions, 5)
}

// Package derives the result metadata around a tailored text: added keywords
// in order of first appearance (capped at 8) and the integer match score.
func (e *Engine) Package(originalText, tailoredText string, similarity float64, atsOptimized bool) Result {
	return Result{
		TailoredText:  tailoredText,
		MatchScore:    matchScore(similarity),
		AddedKeywords: addedKeywords(originalText, tailoredText),
		ATSOptimized:  atsOptimized,
	}
}

func matchScore(similarity float64) int {
	if similarity <= 0 {
		return defaultMatchScore
	}
	score := int(similarity*100) + matchScoreBonus
	if score > maxMatchScore {
		score = maxMatchScore
	}
	return score
}

func addedKeywords(originalText, tailoredText string) []string {
	original := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(originalText)) {
		original[w] = struct{}{}
	}

	added := []string{}
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(tailoredText)) {
		if _, ok := original[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		added = append(added, w)
		if len(added) == maxAddedKeywords {
			break
		}
	}
	return added
}

// TailorStructured is the structured-input variant: per-section rewrites of a
// parsed résumé with a skill-overlap match score.
func (e *Engine) TailorStructured(parsed resume.Parsed, ja job.Analysis) StructuredResult {
	return StructuredResult{
		TailoredSummary:    tailorSummary(parsed.Summary, ja),
		TailoredExperience: tailorExperience(parsed.Experience, ja.RequiredSkills),
		RecommendedSkills:  recommendSkills(parsed.Skills, ja.RequiredSkills),
		MatchScore:         skillMatchScore(parsed.Skills, ja.RequiredSkills),
	}
}

func skillMatchScore(resumeSkills, requiredSkills []string) float64 {
	if len(resumeSkills) == 0 || len(requiredSkills) == 0 {
		return 0
	}

	matches := 0
	for _, req := range requiredSkills {
		for _, res := range resumeSkills {
			if crossContains(req, res) {
				matches++
				break
			}
		}
	}

	score := float64(matches) / float64(len(requiredSkills))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func tailorSummary(original string, ja job.Analysis) string {
	keySkills := topN(ja.RequiredSkills, 4)
	if len(keySkills) == 0 {
		return original
	}

	skillsText := strings.Join(keySkills, ", ")
	level := strings.ToLower(string(ja.ExperienceLevel))

	var prefix string
	switch {
	case strings.Contains(level, "senior"):
		prefix = fmt.Sprintf("Senior professional with extensive expertise in %s. ", skillsText)
	case strings.Contains(level, "junior"):
		prefix = fmt.Sprintf("Motivated developer with strong foundation in %s. ", skillsText)
	default:
		prefix = fmt.Sprintf("Experienced professional specializing in %s. ", skillsText)
	}

	enhanced := prefix + original
	if len(ja.CompanyValues) > 0 {
		values := strings.Join(topN(ja.CompanyValues, 2), ", ")
		enhanced += fmt.Sprintf(" Passionate about %s and delivering high-quality solutions.", values)
	}
	return enhanced
}

func tailorExperience(experience []resume.Experience, requiredSkills []string) []resume.Experience {
	out := make([]resume.Experience, 0, len(experience))
	for _, exp := range experience {
		enhanced := exp.Description
		for _, skill := range topN(requiredSkills, 2) {
			if !strings.Contains(strings.ToLower(enhanced), strings.ToLower(skill)) {
				enhanced += fmt.Sprintf(" Utilized %s for implementation.", skill)
			}
		}
		exp.Description = enhanced
		out = append(out, exp)
	}
	return out
}

func recommendSkills(resumeSkills, requiredSkills []string) []string {
	recommended := []string{}
	seen := make(map[string]struct{})
	add := func(s string) {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		recommended = append(recommended, s)
	}

	for _, req := range requiredSkills {
		for _, res := range resumeSkills {
			if crossContains(req, res) {
				add(res)
			}
		}
	}

	for _, req := range topN(requiredSkills, 5) {
		missing := true
		for _, res := range resumeSkills {
			if strings.Contains(strings.ToLower(res), strings.ToLower(req)) {
				missing = false
				break
			}
		}
		if missing {
			add(req)
		}
	}

	return recommended
}

func crossContains(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func hasSkill(skillList []string, name string) bool {
	for _, s := range skillList {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
