// Package ranking aligns a candidate profile against a requirement set,
// producing per-category results, a weighted composite score and templated
// recommendations.
package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// unverifiableExperienceCap bounds the experience score when the resume's
// duration could not be verified.
const unverifiableExperienceCap = 0.5

// MatchCategories scores every category independently. All comparisons happen
// on canonical, lemmatized forms, so the result is deterministic for fixed
// inputs.
func MatchCategories(req *types.RequirementSet, profile *types.CandidateProfile) map[string]types.CategoryResult {
	return map[string]types.CategoryResult{
		types.CategorySkills:     matchSkills(req, profile),
		types.CategoryExperience: matchExperience(req, profile),
		types.CategoryEducation:  matchEducation(req, profile),
		types.CategoryKeywords:   matchKeywords(req, profile),
	}
}

func matchSkills(req *types.RequirementSet, profile *types.CandidateProfile) types.CategoryResult {
	if len(req.Skills) == 0 {
		return types.CategoryResult{
			Score:   1.0,
			Matched: []string{},
			Missing: []string{},
			Detail:  "no skill requirements stated",
		}
	}

	matchedWeight, totalWeight := 0.0, 0.0
	matched := []string{}
	missing := []string{}
	for name, sr := range req.Skills {
		totalWeight += sr.Weight
		if profile.HasSkill(name) {
			matchedWeight += sr.Weight
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := 0.0
	if totalWeight > 0 {
		score = clamp01(matchedWeight / totalWeight)
	}
	return types.CategoryResult{
		Score:   score,
		Matched: matched,
		Missing: missing,
		Detail:  fmt.Sprintf("%d of %d required or preferred skills matched", len(matched), len(req.Skills)),
	}
}

func matchExperience(req *types.RequirementSet, profile *types.CandidateProfile) types.CategoryResult {
	if req.MinExperienceYears <= 0 {
		return types.CategoryResult{
			Score:   1.0,
			Matched: []string{},
			Missing: []string{},
			Detail:  "no minimum experience stated",
		}
	}

	score := clamp01(profile.ExperienceYears / req.MinExperienceYears)
	detail := fmt.Sprintf("%.1f of %.1f years", profile.ExperienceYears, req.MinExperienceYears)
	if profile.ExperienceUnverifiable {
		if score > unverifiableExperienceCap {
			score = unverifiableExperienceCap
		}
		detail = fmt.Sprintf("experience duration could not be verified; requirement is %.1f years", req.MinExperienceYears)
	}
	return types.CategoryResult{
		Score:   score,
		Matched: []string{},
		Missing: []string{},
		Detail:  detail,
	}
}

func matchEducation(req *types.RequirementSet, profile *types.CandidateProfile) types.CategoryResult {
	if req.EducationLevel == "" {
		return types.CategoryResult{
			Score:   1.0,
			Matched: []string{},
			Missing: []string{},
			Detail:  "no education requirement stated",
		}
	}

	have := profile.EducationLevel
	if have == "" {
		have = types.EducationNone
	}
	if have.AtLeast(req.EducationLevel) {
		return types.CategoryResult{
			Score:   1.0,
			Matched: []string{string(have)},
			Missing: []string{},
			Detail:  fmt.Sprintf("%s meets the %s requirement", have, req.EducationLevel),
		}
	}
	return types.CategoryResult{
		Score:   0.0,
		Matched: []string{},
		Missing: []string{string(req.EducationLevel)},
		Detail:  fmt.Sprintf("requirement is %s, resume shows %s", req.EducationLevel, have),
	}
}

func matchKeywords(req *types.RequirementSet, profile *types.CandidateProfile) types.CategoryResult {
	if len(req.Keywords) == 0 {
		return types.CategoryResult{
			Score:   1.0,
			Matched: []string{},
			Missing: []string{},
			Detail:  "no keywords extracted from the job description",
		}
	}

	lemmaSet := profile.Text.LemmaSet()
	matched := []string{}
	missing := []string{}
	for _, kw := range req.Keywords {
		if lemmaSet[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return types.CategoryResult{
		Score:   clamp01(float64(len(matched)) / float64(len(req.Keywords))),
		Matched: matched,
		Missing: missing,
		Detail:  fmt.Sprintf("%d of %d job keywords present in the resume", len(matched), len(req.Keywords)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
