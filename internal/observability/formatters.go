// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the extracted
// requirement set.
func (p *Printer) PrintRequirements(rs *types.RequirementSet) {
	if rs == nil {
		return
	}

	var sb strings.Builder
	if rs.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", rs.JobTitle))
	}
	if rs.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", rs.Location))
	}
	if rs.Underspecified {
		sb.WriteString("(underspecified: too little text to extract requirements)\n")
	}

	names := make([]string, 0, len(rs.Skills))
	for name := range rs.Skills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		wi, wj := rs.Skills[names[i]].Weight, rs.Skills[names[j]].Weight
		if wi != wj {
			return wi > wj
		}
		return names[i] < names[j]
	})
	if len(names) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(names), maxItemsToShow)
		for _, name := range names[:count] {
			sr := rs.Skills[name]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.2f)\n", name, sr.Priority, sr.Weight))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	if rs.MinExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Experience: %.1f+ years\n", rs.MinExperienceYears))
	}
	if rs.EducationLevel != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", rs.EducationLevel))
	}
	if len(rs.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords:   %s\n", previewList(rs.Keywords)))
	}

	p.printBox("Job Requirements", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable summary of the candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:  %s\n", profile.Name))
	}
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email: %s\n", profile.Email))
	}

	names := make([]string, 0, len(profile.Skills))
	for name := range profile.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(names), maxItemsToShow)
		for _, name := range names[:count] {
			sb.WriteString(fmt.Sprintf("  • %s (%d mentions)\n", name, profile.Skills[name].EvidenceCount))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	if profile.ExperienceUnverifiable {
		sb.WriteString("Experience: unverifiable\n")
	} else {
		sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", profile.ExperienceYears))
	}
	if profile.EducationLevel != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.EducationLevel))
	}

	p.printBox("Candidate Profile", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown and top recommendations.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %.2f (%s)\n", result.OverallScore, result.Band))
	for _, name := range types.Categories {
		cat, ok := result.Categories[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-10s %.2f  %s\n", name, cat.Score, cat.Detail))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for _, rec := range result.Recommendations[:count] {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", rec.Priority, rec.Text))
		}
		if len(result.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("Match Result", strings.TrimRight(sb.String(), "\n"))
}

func previewList(items []string) string {
	count := min(len(items), maxItemsToShow)
	preview := strings.Join(items[:count], ", ")
	if len(items) > maxItemsToShow {
		preview += fmt.Sprintf(", +%d more", len(items)-maxItemsToShow)
	}
	return preview
}
