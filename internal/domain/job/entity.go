package job

// ExperienceLevel is the seniority inferred from a job description.
type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "Junior"
	LevelMid    ExperienceLevel = "Mid-level"
	LevelSenior ExperienceLevel = "Senior"
)

// Analysis is the structured reading of a job description. Built once,
// immutable after construction.
type Analysis struct {
	RequiredSkills      []string        `json:"required_skills"`
	PreferredSkills     []string        `json:"preferred_skills"`
	Role                string          `json:"role"`
	Company             string          `json:"company"`
	ExperienceLevel     ExperienceLevel `json:"experience_level"`
	KeyResponsibilities []string        `json:"key_responsibilities"`
	CompanyValues       []string        `json:"company_values"`
	KeyPhrases          []string        `json:"key_phrases"`
}
