package types

// Category names scored by the matcher.
const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategoryKeywords   = "keywords"
)

// Categories lists the scored categories in a fixed order.
var Categories = []string{CategorySkills, CategoryExperience, CategoryEducation, CategoryKeywords}

// CategoryResult is the outcome of matching one category.
// Matched and Missing are kept sorted so serialization is deterministic.
type CategoryResult struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Detail  string   `json:"detail"`
}

// Recommendation is a templated suggestion for closing a gap.
type Recommendation struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
}

// Recommendation priorities.
const (
	RecommendationHigh   = "high"
	RecommendationMedium = "medium"
	RecommendationLow    = "low"
)

// MatchResult is the top-level result returned once per matching request.
// OverallScore is always re-derivable from Categories and the configured
// category weights; it is never stored independently of them.
type MatchResult struct {
	OverallScore           float64                   `json:"overall_score"`
	Band                   string                    `json:"band"`
	Categories             map[string]CategoryResult `json:"categories"`
	Recommendations        []Recommendation          `json:"recommendations"`
	JobUnderspecified      bool                      `json:"job_underspecified"`
	ExperienceUnverifiable bool                      `json:"experience_unverifiable"`
}

// BandFor buckets a score into a coarse quality band for display.
func BandFor(score float64) string {
	switch {
	case score >= 0.8:
		return "excellent"
	case score >= 0.6:
		return "good"
	case score >= 0.4:
		return "fair"
	default:
		return "poor"
	}
}
