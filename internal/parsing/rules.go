package parsing

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/types"
)

// PriorityRule maps a trigger phrase to the priority it implies for skills
// mentioned within the trigger window. The table is data, not code, so the
// rule set can be tested independently of the extractor.
type PriorityRule struct {
	Phrase   string
	Priority types.Priority
}

// priorityRules is the fixed trigger-phrase table. Required triggers beat
// preferred triggers when both fall inside the same window.
var priorityRules = []PriorityRule{
	{Phrase: "required", Priority: types.PriorityRequired},
	{Phrase: "require", Priority: types.PriorityRequired},
	{Phrase: "must have", Priority: types.PriorityRequired},
	{Phrase: "minimum qualification", Priority: types.PriorityRequired},
	{Phrase: "mandatory", Priority: types.PriorityRequired},
	{Phrase: "essential", Priority: types.PriorityRequired},
	{Phrase: "nice to have", Priority: types.PriorityPreferred},
	{Phrase: "plus", Priority: types.PriorityPreferred},
	{Phrase: "bonus", Priority: types.PriorityPreferred},
	{Phrase: "preferred", Priority: types.PriorityPreferred},
	{Phrase: "preferably", Priority: types.PriorityPreferred},
	{Phrase: "desirable", Priority: types.PriorityPreferred},
}

// compiledRule is a priority rule normalized through the same pipeline as
// document text, so trigger matching happens on lemmas.
type compiledRule struct {
	lemmas   []string
	priority types.Priority
}

// compileRules normalizes the rule table. Phrases that normalize to nothing
// are skipped.
func compileRules(n *normalize.Normalizer) []compiledRule {
	out := make([]compiledRule, 0, len(priorityRules))
	for _, rule := range priorityRules {
		nt := n.Normalize(rule.Phrase)
		if nt.Empty() {
			continue
		}
		out = append(out, compiledRule{lemmas: nt.Lemmas(), priority: rule.Priority})
	}
	return out
}

// sectionPriority classifies a header line of a job description. A short line
// announcing preferred qualifications flips the default priority for skills
// mentioned under it.
func sectionPriority(line string) (types.Priority, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimRight(trimmed, ":")
	if trimmed == "" || len(strings.Fields(trimmed)) > 6 {
		return "", false
	}
	for _, marker := range []string{"nice to have", "nice-to-have", "preferred", "bonus", "plus"} {
		if strings.Contains(trimmed, marker) {
			return types.PriorityPreferred, true
		}
	}
	for _, marker := range []string{"requirement", "qualification", "must have", "what you need"} {
		if strings.Contains(trimmed, marker) {
			return types.PriorityRequired, true
		}
	}
	return "", false
}
