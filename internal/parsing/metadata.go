package parsing

import (
	"regexp"
	"strings"
)

// headLines is how many opening lines are scanned for title and location.
const headLines = 5

var (
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*job title\s*:\s*(.+?)\s*$`),
		regexp.MustCompile(`(?i)^\s*position\s*:\s*(.+?)\s*$`),
		regexp.MustCompile(`(?i)^\s*role\s*:\s*(.+?)\s*$`),
	}
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*location\s*:\s*(.+?)\s*$`),
		regexp.MustCompile(`(?i)\bbased in\s+(.+?)\s*$`),
	}
)

// ExtractJobMetadata pulls the job title and location from the opening lines
// of a job description. Either value may be empty.
func ExtractJobMetadata(text string) (title, location string) {
	lines := strings.Split(text, "\n")
	if len(lines) > headLines {
		lines = lines[:headLines]
	}
	for _, line := range lines {
		if title == "" {
			for _, p := range titlePatterns {
				if m := p.FindStringSubmatch(line); m != nil {
					title = strings.TrimRight(m[1], ".")
					break
				}
			}
		}
		if location == "" {
			for _, p := range locationPatterns {
				if m := p.FindStringSubmatch(line); m != nil {
					location = strings.TrimRight(m[1], ".")
					break
				}
			}
		}
	}
	return title, location
}
