package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// yearsPattern matches numeric-year phrases like "3+ years", "5 years of
// experience" or "2.5 yrs".
var yearsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)

// MaxStatedYears returns the largest numeric-year phrase found in the text.
// When a document states several (e.g. per-skill minimums), the strictest one
// governs. Returns false when no phrase is present.
func MaxStatedYears(text string) (float64, bool) {
	matches := yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1)
	if len(matches) == 0 {
		return 0, false
	}
	best := 0.0
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best, true
}
