package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(normalize.Default(), skills.Default(), DefaultOptions())
}

const sampleJob = `Job Title: Senior Backend Engineer
Location: Berlin

Requirements:
A Bachelor's degree and 5+ years of professional experience are required.
We require strong Python and SQL skills for this role.
You will design, build, and operate large backend services every day.

Nice to have:
Familiarity with Docker would be a plus for the on-call rotation.
`

func TestExtract_FullJobDescription(t *testing.T) {
	rs := newTestExtractor(t).Extract(sampleJob)

	assert.False(t, rs.Underspecified)
	assert.Equal(t, "Senior Backend Engineer", rs.JobTitle)
	assert.Equal(t, "Berlin", rs.Location)
	assert.InDelta(t, 5.0, rs.MinExperienceYears, 1e-9)
	assert.Equal(t, types.EducationBachelor, rs.EducationLevel)

	require.Len(t, rs.Skills, 3)
	assert.Equal(t, types.PriorityRequired, rs.Skills["python"].Priority)
	assert.Equal(t, types.PriorityRequired, rs.Skills["sql"].Priority)
	assert.Equal(t, types.PriorityPreferred, rs.Skills["docker"].Priority)

	// Preferred skills are capped below required ones.
	assert.Less(t, rs.Skills["docker"].Weight, rs.Skills["python"].Weight)
	assert.Less(t, rs.Skills["docker"].Weight, rs.Skills["sql"].Weight)

	sum := 0.0
	for _, req := range rs.Skills {
		sum += req.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	assert.Contains(t, rs.Keywords, "backend")
	assert.NotContains(t, rs.Keywords, "python")
	assert.IsIncreasing(t, rs.Keywords)
}

func TestExtract_UnderspecifiedInput(t *testing.T) {
	e := newTestExtractor(t)

	for _, text := range []string{"", "Python developer", "   \n\n  "} {
		rs := e.Extract(text)
		assert.True(t, rs.Underspecified, "input %q", text)
		assert.Empty(t, rs.Skills)
		assert.Empty(t, rs.Keywords)
		assert.Zero(t, rs.MinExperienceYears)
	}
}

func TestExtract_RequiredWinsAcrossOccurrences(t *testing.T) {
	text := "Python would be a nice bonus. We value curiosity, humility, candor, " +
		"ownership, and care. You must have Python for daily production work."

	rs := newTestExtractor(t).Extract(text)

	require.Contains(t, rs.Skills, "python")
	assert.Equal(t, types.PriorityRequired, rs.Skills["python"].Priority)
	assert.InDelta(t, 1.0, rs.Skills["python"].Weight, 1e-9)
}

func TestExtract_SectionHeaderSetsPriority(t *testing.T) {
	text := `Senior role on the data platform team working across many services daily.

Preferred qualifications:
Comfort reading dashboards, triaging alerts, pairing with teammates, writing docs, and owning Kubernetes deployments end to end.
`

	rs := newTestExtractor(t).Extract(text)

	require.Contains(t, rs.Skills, "kubernetes")
	assert.Equal(t, types.PriorityPreferred, rs.Skills["kubernetes"].Priority)
}

func TestExtract_DefaultsToRequired(t *testing.T) {
	text := "Our stack centers on PostgreSQL with heavy batch reporting jobs running through the night."

	rs := newTestExtractor(t).Extract(text)

	require.Contains(t, rs.Skills, "postgresql")
	assert.Equal(t, types.PriorityRequired, rs.Skills["postgresql"].Priority)
}

func TestExtract_EarlierMentionWeighsMore(t *testing.T) {
	text := "Python is the core of everything we ship here every single day. " +
		"Our team maintains several internal dashboards and batch pipelines. " +
		"Some reporting still runs on SQL against the warehouse."

	rs := newTestExtractor(t).Extract(text)

	require.Contains(t, rs.Skills, "python")
	require.Contains(t, rs.Skills, "sql")
	assert.Greater(t, rs.Skills["python"].Weight, rs.Skills["sql"].Weight)
}

func TestExtract_IsDeterministic(t *testing.T) {
	e := newTestExtractor(t)
	assert.Equal(t, e.Extract(sampleJob), e.Extract(sampleJob))
}

func TestSectionPriority(t *testing.T) {
	tests := []struct {
		line     string
		priority types.Priority
		ok       bool
	}{
		{"Requirements:", types.PriorityRequired, true},
		{"Minimum Qualifications", types.PriorityRequired, true},
		{"What you need:", types.PriorityRequired, true},
		{"Nice to have:", types.PriorityPreferred, true},
		{"Preferred qualifications:", types.PriorityPreferred, true},
		{"Bonus points", types.PriorityPreferred, true},
		{"", "", false},
		{"We are a fast growing company looking for great people", "", false},
	}

	for _, tt := range tests {
		pri, ok := sectionPriority(tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.priority, pri, "line %q", tt.line)
	}
}

func TestMaxStatedYears(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		years float64
		ok    bool
	}{
		{"plus suffix", "3+ years of experience", 3, true},
		{"fractional", "2.5 yrs in support roles", 2.5, true},
		{"strictest governs", "2 years with Go, 7 years overall", 7, true},
		{"singular", "1 year of exposure", 1, true},
		{"no phrase", "experienced engineer", 0, false},
		{"year without number", "last year we shipped", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, ok := MaxStatedYears(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.years, years, 1e-9)
		})
	}
}

func TestDetectEducationLevel(t *testing.T) {
	n := normalize.Default()

	tests := []struct {
		name     string
		text     string
		expected types.EducationLevel
	}{
		{"bachelor", "Bachelor's degree in computer science", types.EducationBachelor},
		{"highest wins", "Bachelor's required, Master's preferred", types.EducationMaster},
		{"doctorate", "PhD in statistics or related field", types.EducationDoctorate},
		{"abbreviation", "M.Sc. in mathematics", types.EducationMaster},
		{"none mentioned", "strong engineering background", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectEducationLevel(n.Normalize(tt.text)))
		})
	}
}

func TestExtractJobMetadata(t *testing.T) {
	title, location := ExtractJobMetadata("Job Title: Staff Engineer\nLocation: Remote, EU.\n\nbody")
	assert.Equal(t, "Staff Engineer", title)
	assert.Equal(t, "Remote, EU", location)

	title, location = ExtractJobMetadata("An engineering role based in Amsterdam\nmore text")
	assert.Equal(t, "", title)
	assert.Equal(t, "Amsterdam", location)

	// Only the opening lines are scanned.
	title, _ = ExtractJobMetadata("a\nb\nc\nd\ne\nPosition: Hidden\n")
	assert.Equal(t, "", title)
}
