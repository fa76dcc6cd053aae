package resume

import "strings"

// sectionTitles maps recognized header lines to canonical section names.
var sectionTitles = map[string]string{
	"experience":              "experience",
	"work experience":         "experience",
	"professional experience": "experience",
	"employment":              "experience",
	"employment history":      "experience",
	"education":               "education",
	"academic background":     "education",
	"skills":                  "skills",
	"technical skills":        "skills",
	"core competencies":       "skills",
	"summary":                 "summary",
	"professional summary":    "summary",
	"objective":               "summary",
	"profile":                 "summary",
	"about me":                "summary",
}

// maxHeaderWords bounds how long a line can be and still count as a header.
const maxHeaderWords = 4

// SplitSections segments resume text by matching known section header lines.
// Text before the first header (or all of it when no header matches) lands in
// the implicit "body" section. Sections that appear twice are concatenated.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string)
	current := "body"
	var buf strings.Builder

	flush := func() {
		chunk := strings.TrimSpace(buf.String())
		buf.Reset()
		if chunk == "" {
			return
		}
		if existing, ok := sections[current]; ok {
			sections[current] = existing + "\n" + chunk
		} else {
			sections[current] = chunk
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := matchHeader(line); ok {
			flush()
			current = name
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	flush()
	return sections
}

func matchHeader(line string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimRight(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" || len(strings.Fields(trimmed)) > maxHeaderWords {
		return "", false
	}
	name, ok := sectionTitles[trimmed]
	return name, ok
}
