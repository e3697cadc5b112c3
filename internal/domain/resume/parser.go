package resume

import (
	"regexp"
	"strings"

	"resume-tailor/internal/domain/skills"
)

const maxParsedSkills = 10

const (
	defaultName  = "John Doe"
	defaultEmail = "john.doe@email.com"
	defaultPhone = "+1-555-0123"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	nameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)`),
		regexp.MustCompile(`(?m)Name:?\s*([A-Z][a-z]+ [A-Z][a-z]+)`),
		regexp.MustCompile(`(?m)^([A-Z][A-Z\s]+)`),
	}
)

type Parser struct {
	matcher *skills.Matcher
}

func NewParser(matcher *skills.Matcher) *Parser {
	return &Parser{matcher: matcher.WithMax(maxParsedSkills)}
}

// Parse extracts contact fields and skills from résumé text. Missing fields
// fall back to demo defaults so downstream rendering always has something to
// show.
func (p *Parser) Parse(text string) Parsed {
	return Parsed{
		Name:       extractName(text),
		Email:      extractEmail(text),
		Phone:      extractPhone(text),
		Summary:    placeholderSummary,
		Skills:     p.matcher.Extract(text),
		Experience: placeholderExperience(),
		Education:  placeholderEducation(),
		Projects:   placeholderProjects(),
	}
}

func extractEmail(text string) string {
	if m := emailRe.FindString(text); m != "" {
		return m
	}
	return defaultEmail
}

func extractPhone(text string) string {
	if m := phoneRe.FindString(text); m != "" {
		return m
	}
	return defaultPhone
}

func extractName(text string) string {
	for _, re := range nameRes {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return name
			}
		}
	}
	return defaultName
}

const placeholderSummary = "Experienced software engineer with 5+ years of expertise in full-stack development, " +
	"cloud technologies, and team leadership. Proven track record of delivering scalable solutions " +
	"and driving technical innovation."

func placeholderExperience() []Experience {
	return []Experience{
		{
			Title:       "Senior Software Engineer",
			Company:     "Tech Solutions Inc",
			Duration:    "2021-2024",
			Description: "Led development of scalable web applications using modern technologies. Managed team of 5 developers and improved system performance by 40%.",
		},
		{
			Title:       "Software Developer",
			Company:     "StartupCorp",
			Duration:    "2019-2021",
			Description: "Developed full-stack applications using React and Node.js. Implemented CI/CD pipelines and automated testing frameworks.",
		},
	}
}

func placeholderEducation() []Education {
	return []Education{
		{
			Degree: "Bachelor of Science in Computer Science",
			School: "University of Technology",
			Year:   "2019",
		},
	}
}

func placeholderProjects() []Project {
	return []Project{
		{
			Name:         "E-commerce Platform",
			Description:  "Built a full-stack e-commerce solution with React frontend and Node.js backend",
			Technologies: []string{"React", "Node.js", "MongoDB", "Stripe API"},
		},
		{
			Name:         "Data Analytics Dashboard",
			Description:  "Created real-time analytics dashboard for business intelligence",
			Technologies: []string{"Python", "Django", "PostgreSQL", "Chart.js"},
		},
	}
}
