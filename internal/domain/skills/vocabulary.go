package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Vocabulary is the fixed set of terms the matcher and the job analyzer scan
// for. The built-in defaults mirror the hand-maintained lists the service has
// always shipped with; a JSON file can override any of them so the lists can
// be tuned without a rebuild.
type Vocabulary struct {
	TechSkills    []string `json:"tech_skills"`
	SkillPatterns []string `json:"skill_patterns"`
	KeyPhrases    []string `json:"key_phrases"`
	CompanyValues []string `json:"company_values"`
}

var defaultTechSkills = []string{
	"javascript", "python", "java", "react", "nodejs", "node.js", "sql", "aws",
	"docker", "kubernetes", "git", "html", "css", "typescript", "mongodb",
	"postgresql", "redis", "graphql", "rest", "angular", "vue", "express",
	"django", "flask", "spring", "laravel", "ruby", "php", "c++", "c#",
	"golang", "rust", "swift", "kotlin", "flutter", "reactnative", "firebase",
	"azure", "gcp", "terraform", "jenkins", "ci/cd", "agile", "scrum",
}

var defaultSkillPatterns = []string{
	`\b(?:JavaScript|Python|Java|React|Node\.js|SQL|AWS|Docker|Kubernetes|Git)\b`,
	`\b(?:HTML|CSS|TypeScript|MongoDB|PostgreSQL|Redis|GraphQL|REST)\b`,
	`\b(?:Angular|Vue|Express|Django|Flask|Spring|Laravel|Ruby|PHP)\b`,
	`\b(?:C\+\+|C#|Golang|Rust|Swift|Kotlin|Flutter|React Native)\b`,
}

var defaultKeyPhrases = []string{
	"team player", "problem solving", "communication skills",
	"agile", "scrum", "ci/cd", "microservices", "scalable",
	"performance optimization", "code review", "mentoring",
}

var defaultCompanyValues = []string{
	"innovation", "collaboration", "teamwork", "growth", "learning",
	"diversity", "inclusion", "remote", "flexible", "startup",
	"enterprise", "fast-paced", "dynamic",
}

// DefaultVocabulary returns a copy of the built-in term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		TechSkills:    append([]string(nil), defaultTechSkills...),
		SkillPatterns: append([]string(nil), defaultSkillPatterns...),
		KeyPhrases:    append([]string(nil), defaultKeyPhrases...),
		CompanyValues: append([]string(nil), defaultCompanyValues...),
	}
}

// LoadVocabulary reads a vocabulary override file. Empty fields fall back to
// the defaults, so a file may override just one list.
func LoadVocabulary(path string) (Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary file: %w", err)
	}

	var v Vocabulary
	if err := json.Unmarshal(b, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary file: %w", err)
	}

	def := DefaultVocabulary()
	if len(v.TechSkills) == 0 {
		v.TechSkills = def.TechSkills
	}
	if len(v.SkillPatterns) == 0 {
		v.SkillPatterns = def.SkillPatterns
	}
	if len(v.KeyPhrases) == 0 {
		v.KeyPhrases = def.KeyPhrases
	}
	if len(v.CompanyValues) == 0 {
		v.CompanyValues = def.CompanyValues
	}

	for _, p := range v.SkillPatterns {
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			return Vocabulary{}, fmt.Errorf("invalid skill pattern %q: %w", p, err)
		}
	}

	return v, nil
}
