package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(&types.RequirementSet{
		JobTitle:           "Backend Engineer",
		Location:           "Berlin",
		MinExperienceYears: 3,
		EducationLevel:     types.EducationBachelor,
		Skills: map[string]types.SkillRequirement{
			"python": {Priority: types.PriorityRequired, Weight: 0.7},
			"docker": {Priority: types.PriorityPreferred, Weight: 0.3},
		},
		Keywords: []string{"backend", "service"},
	})

	out := buf.String()
	assert.Contains(t, out, "Job Requirements")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "3.0+ years")
	// Heavier skill is listed first.
	assert.Less(t, strings.Index(out, "python"), strings.Index(out, "docker"))
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.CandidateProfile{
		Name:                   "Jane Doe",
		Email:                  "jane@example.com",
		Skills:                 map[string]types.SkillEvidence{"go": {EvidenceCount: 2}},
		ExperienceUnverifiable: true,
	})

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "go (2 mentions)")
	assert.Contains(t, out, "unverifiable")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		OverallScore: 0.76,
		Band:         "good",
		Categories: map[string]types.CategoryResult{
			types.CategorySkills: {Score: 1.0, Detail: "2 of 2 required or preferred skills matched"},
		},
		Recommendations: []types.Recommendation{
			{Category: types.CategoryEducation, Text: "List the credential.", Priority: types.RecommendationHigh},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "0.76 (good)")
	assert.Contains(t, out, "[high] List the credential.")
}

func TestPrint_NilInputsAreSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(nil)
	p.PrintProfile(nil)
	p.PrintMatchResult(nil)
	assert.Zero(t, buf.Len())
}
