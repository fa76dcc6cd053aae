package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// recommendationRank orders recommendation priorities for sorting.
var recommendationRank = map[string]int{
	types.RecommendationHigh:   3,
	types.RecommendationMedium: 2,
	types.RecommendationLow:    1,
}

// candidate is a recommendation plus its sort keys.
type candidate struct {
	rec     types.Recommendation
	subject string
}

// Recommend generates ranked, templated recommendations for the gaps found by
// the matcher. The output is deterministic for identical inputs: stable sort
// by priority rank, then category weight, then subject.
func Recommend(req *types.RequirementSet, profile *types.CandidateProfile, categories map[string]types.CategoryResult, weights Weights) []types.Recommendation {
	var out []candidate

	if skillsCat, ok := categories[types.CategorySkills]; ok {
		for _, name := range skillsCat.Missing {
			sr := req.Skills[name]
			pri := types.RecommendationMedium
			text := fmt.Sprintf("Add evidence of %s to your resume; the job lists it as a nice to have.", name)
			if sr.Priority == types.PriorityRequired {
				pri = types.RecommendationHigh
				text = fmt.Sprintf("Add evidence of %s to your resume; the job lists it as required.", name)
			}
			out = append(out, candidate{
				rec:     types.Recommendation{Category: types.CategorySkills, Text: text, Priority: pri},
				subject: name,
			})
		}
	}

	if req.MinExperienceYears > 0 {
		switch {
		case profile.ExperienceUnverifiable:
			out = append(out, candidate{
				rec: types.Recommendation{
					Category: types.CategoryExperience,
					Text:     "Clarify how long you held each role; experience duration could not be verified from the resume.",
					Priority: types.RecommendationMedium,
				},
				subject: "experience",
			})
		case profile.ExperienceYears < req.MinExperienceYears:
			gap := req.MinExperienceYears - profile.ExperienceYears
			out = append(out, candidate{
				rec: types.Recommendation{
					Category: types.CategoryExperience,
					Text:     fmt.Sprintf("The job asks for %.1f years of experience; %.1f more years are needed.", req.MinExperienceYears, gap),
					Priority: types.RecommendationMedium,
				},
				subject: "experience",
			})
		}
	}

	if req.EducationLevel != "" {
		have := profile.EducationLevel
		if have == "" {
			have = types.EducationNone
		}
		if !have.AtLeast(req.EducationLevel) {
			out = append(out, candidate{
				rec: types.Recommendation{
					Category: types.CategoryEducation,
					Text:     fmt.Sprintf("The job requires a %s degree; list the credential or highlight equivalent experience.", req.EducationLevel),
					Priority: types.RecommendationHigh,
				},
				subject: string(req.EducationLevel),
			})
		}
	}

	if kwCat, ok := categories[types.CategoryKeywords]; ok && len(kwCat.Missing) > 0 && len(kwCat.Missing) >= len(kwCat.Matched) {
		out = append(out, candidate{
			rec: types.Recommendation{
				Category: types.CategoryKeywords,
				Text:     fmt.Sprintf("Work more of the job's language into your resume; %d of %d keywords are absent.", len(kwCat.Missing), len(kwCat.Missing)+len(kwCat.Matched)),
				Priority: types.RecommendationLow,
			},
			subject: "keywords",
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := recommendationRank[out[i].rec.Priority], recommendationRank[out[j].rec.Priority]
		if ri != rj {
			return ri > rj
		}
		wi, wj := weights[out[i].rec.Category], weights[out[j].rec.Category]
		if wi != wj {
			return wi > wj
		}
		return out[i].subject < out[j].subject
	})

	recs := make([]types.Recommendation, len(out))
	for i, c := range out {
		recs[i] = c.rec
	}
	return recs
}
