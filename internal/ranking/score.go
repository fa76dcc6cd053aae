package ranking

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

// Default category weights for the composite score.
const (
	defaultSkillsWeight     = 0.5
	defaultExperienceWeight = 0.25
	defaultEducationWeight  = 0.15
	defaultKeywordsWeight   = 0.10
)

// Weights maps category names to their share of the composite score.
// A valid Weights sums to 1.0; config validation enforces that before any
// matching call.
type Weights map[string]float64

// DefaultWeights returns the standard category weights.
func DefaultWeights() Weights {
	return Weights{
		types.CategorySkills:     defaultSkillsWeight,
		types.CategoryExperience: defaultExperienceWeight,
		types.CategoryEducation:  defaultEducationWeight,
		types.CategoryKeywords:   defaultKeywordsWeight,
	}
}

// Compose combines category scores into the overall score. The result is a
// pure function of the category results and the weights.
func Compose(categories map[string]types.CategoryResult, weights Weights) float64 {
	overall := 0.0
	for name, w := range weights {
		if cat, ok := categories[name]; ok {
			overall += w * cat.Score
		}
	}
	return clamp01(overall)
}

// BuildResult assembles the immutable MatchResult from the category results,
// the inputs that produced them, and the configured weights.
func BuildResult(req *types.RequirementSet, profile *types.CandidateProfile, categories map[string]types.CategoryResult, weights Weights) *types.MatchResult {
	overall := Compose(categories, weights)
	return &types.MatchResult{
		OverallScore:           overall,
		Band:                   types.BandFor(overall),
		Categories:             categories,
		Recommendations:        Recommend(req, profile, categories, weights),
		JobUnderspecified:      req.Underspecified,
		ExperienceUnverifiable: profile.ExperienceUnverifiable,
	}
}
