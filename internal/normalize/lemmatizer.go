package normalize

// irregularLemmas maps inflected forms that suffix rules get wrong to their
// base form. Checked before any rule is applied. Product names ending in a
// plural-looking suffix ("postgres", "kubernetes") are pinned here so they
// survive lemmatization unchanged.
var irregularLemmas = map[string]string{
	"analyses":     "analysis",
	"aws":          "aws",
	"bonus":        "bonus",
	"plus":         "plus",
	"built":        "build",
	"children":     "child",
	"data":         "data",
	"degrees":      "degree",
	"did":          "do",
	"led":          "lead",
	"kubernetes":   "kubernetes",
	"made":         "make",
	"men":          "man",
	"people":       "person",
	"postgres":     "postgres",
	"ran":          "run",
	"technologies": "technology",
	"these":        "this",
	"those":        "that",
	"women":        "woman",
	"wrote":        "write",
	"years":        "year",
	"yrs":          "year",
	"yr":           "year",
}

// suffixRule rewrites a suffix when the remaining stem is long enough.
type suffixRule struct {
	suffix      string
	replacement string
	minStem     int
}

// suffixRules are applied in order; the first applicable rule wins. The
// ordering puts longer suffixes first so the shortest valid lemma is produced
// deterministically.
var suffixRules = []suffixRule{
	{"sses", "ss", 2},
	{"ies", "y", 2},
	{"ing", "", 3},
	{"ed", "", 3},
	{"es", "e", 3},
	{"s", "", 3},
}

// Lemma maps an inflected lowercase word to a deterministic base form using
// an irregular lookup followed by ordered suffix rules. Non-alphabetic tokens
// are returned unchanged.
func Lemma(word string) string {
	if word == "" {
		return word
	}
	if base, ok := irregularLemmas[word]; ok {
		return base
	}
	if !isAlpha(word) {
		return word
	}
	for _, rule := range suffixRules {
		if len(word) <= len(rule.suffix) {
			continue
		}
		stem := word[:len(word)-len(rule.suffix)]
		if word[len(stem):] != rule.suffix {
			continue
		}
		if len(stem) < rule.minStem {
			continue
		}
		// "ss" plurals like "less" or "class" are not inflections.
		if rule.suffix == "s" && stem[len(stem)-1] == 's' {
			continue
		}
		return stem + rule.replacement
	}
	return word
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
