package parsing

import "github.com/jonathan/resume-matcher/internal/types"

// degreeLemmas maps degree keywords (as lemmas) to education levels. Scanning
// picks the highest-ranked level mentioned anywhere in the document.
var degreeLemmas = map[string]types.EducationLevel{
	"phd":           types.EducationDoctorate,
	"ph.d":          types.EducationDoctorate,
	"doctorate":     types.EducationDoctorate,
	"doctoral":      types.EducationDoctorate,
	"dphil":         types.EducationDoctorate,
	"master":        types.EducationMaster,
	"msc":           types.EducationMaster,
	"m.sc":          types.EducationMaster,
	"m.s":           types.EducationMaster,
	"mba":           types.EducationMaster,
	"postgraduate":  types.EducationMaster,
	"bachelor":      types.EducationBachelor,
	"bsc":           types.EducationBachelor,
	"b.sc":          types.EducationBachelor,
	"b.s":           types.EducationBachelor,
	"b.a":           types.EducationBachelor,
	"undergraduate": types.EducationBachelor,
	"associate":     types.EducationAssociate,
	"a.s":           types.EducationAssociate,
	"aas":           types.EducationAssociate,
}

// DetectEducationLevel returns the highest degree level mentioned in the
// normalized text, or an empty level when none is found.
func DetectEducationLevel(nt types.NormalizedText) types.EducationLevel {
	var best types.EducationLevel
	found := false
	for _, tok := range nt.Tokens {
		if level, ok := degreeLemmas[tok.Lemma]; ok {
			if !found || level.Rank() > best.Rank() {
				best = level
				found = true
			}
		}
	}
	if !found {
		return ""
	}
	return best
}
