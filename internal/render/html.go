package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-tailor/internal/domain/resume"
)

// Document is the printable view of a tailored résumé.
type Document struct {
	Name       string
	Email      string
	Phone      string
	Summary    string
	Skills     []string
	Experience []resume.Experience
	Education  []resume.Education
}

var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #111; }
  h1 { font-size: 22px; margin-bottom: 2px; }
  .contact { font-size: 11px; color: #444; margin-bottom: 18px; }
  h2 { font-size: 13px; border-bottom: 1px solid #333; padding-bottom: 3px; margin-top: 18px; text-transform: uppercase; }
  p, li { font-size: 11px; line-height: 1.45; }
  .job-header { font-weight: bold; font-size: 11px; margin-top: 8px; }
  .skills { font-size: 11px; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<div class="contact">{{.Email}}{{if .Phone}} &middot; {{.Phone}}{{end}}</div>

<h2>Professional Summary</h2>
<p>{{.Summary}}</p>

{{if .Skills}}
<h2>Technical Skills</h2>
<p class="skills">{{range $i, $s := .Skills}}{{if $i}} &bull; {{end}}{{$s}}{{end}}</p>
{{end}}

{{if .Experience}}
<h2>Professional Experience</h2>
{{range .Experience}}
<div class="job-header">{{.Title}} | {{.Company}} | {{.Duration}}</div>
<p>{{.Description}}</p>
{{end}}
{{end}}

{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<p><b>{{.Degree}}</b> | {{.School}} | {{.Year}}</p>
{{end}}
{{end}}
</body>
</html>
`))

// BuildHTML renders the document into the printable HTML the PDF renderer
// consumes.
func BuildHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render resume template: %w", err)
	}
	return buf.String(), nil
}
