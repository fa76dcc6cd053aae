// Package parsing extracts a structured requirement set from job description
// text: required and preferred skills with weights, minimum experience,
// education level, and salient keywords.
package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options tune requirement extraction. Negative values select the defaults;
// zero is honored (it disables the threshold or window in question), so
// callers wanting the standard behavior should start from DefaultOptions.
type Options struct {
	// MinTokens is the minimum normalized token count below which the input
	// is classified as underspecified.
	MinTokens int
	// KeywordCount is the number of top-frequency keywords to keep.
	KeywordCount int
	// TriggerWindow is how many tokens around a skill mention are searched
	// for priority trigger phrases.
	TriggerWindow int
}

// DefaultOptions returns the standard extraction options.
func DefaultOptions() Options {
	return Options{MinTokens: 8, KeywordCount: 20, TriggerWindow: 8}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MinTokens < 0 {
		o.MinTokens = def.MinTokens
	}
	if o.KeywordCount < 0 {
		o.KeywordCount = def.KeywordCount
	}
	if o.TriggerWindow < 0 {
		o.TriggerWindow = def.TriggerWindow
	}
	return o
}

// Extractor parses job descriptions into requirement sets. It is read-only
// after construction and safe for concurrent use.
type Extractor struct {
	norm  *normalize.Normalizer
	vocab *skills.Vocabulary
	opts  Options
	rules []compiledRule
}

// NewExtractor builds a requirement extractor over the given normalizer and
// vocabulary.
func NewExtractor(norm *normalize.Normalizer, vocab *skills.Vocabulary, opts Options) *Extractor {
	return &Extractor{
		norm:  norm,
		vocab: vocab,
		opts:  opts.withDefaults(),
		rules: compileRules(norm),
	}
}

// Extract parses a job description. It never fails: sparse or malformed input
// yields an empty, underspecified requirement set.
func (e *Extractor) Extract(text string) *types.RequirementSet {
	rs := &types.RequirementSet{
		Skills:   make(map[string]types.SkillRequirement),
		Keywords: []string{},
	}
	rs.JobTitle, rs.Location = ExtractJobMetadata(text)

	nt := e.norm.Normalize(text)
	if nt.Len() < e.opts.MinTokens {
		rs.Underspecified = true
		return rs
	}

	zones := sectionZones(text)

	type skillAgg struct {
		count    int
		first    int
		priority types.Priority
	}
	perSkill := make(map[string]*skillAgg)
	for _, occ := range e.vocab.FindAll(nt) {
		pri := e.occurrencePriority(nt, occ, zones)
		agg, ok := perSkill[occ.Canonical]
		if !ok {
			perSkill[occ.Canonical] = &skillAgg{count: 1, first: occ.Start, priority: pri}
			continue
		}
		agg.count++
		// Required wins over preferred across occurrences.
		if pri.Rank() > agg.priority.Rank() {
			agg.priority = pri
		}
	}

	if len(perSkill) > 0 {
		total := float64(nt.Len())
		raw := make(map[string]float64, len(perSkill))
		requiredSum, requiredCount := 0.0, 0
		for id, agg := range perSkill {
			// Frequency times a position factor: first mention at the top of
			// the text weighs 1.0, decaying linearly to 0.5 at the end.
			w := float64(agg.count) * (1.0 - 0.5*float64(agg.first)/total)
			raw[id] = w
			if agg.priority == types.PriorityRequired {
				requiredSum += w
				requiredCount++
			}
		}
		if requiredCount > 0 {
			ceiling := 0.5 * requiredSum / float64(requiredCount)
			for id, agg := range perSkill {
				if agg.priority == types.PriorityPreferred && raw[id] > ceiling {
					raw[id] = ceiling
				}
			}
		}
		sum := 0.0
		for _, w := range raw {
			sum += w
		}
		for id, agg := range perSkill {
			rs.Skills[id] = types.SkillRequirement{
				Priority: agg.priority,
				Weight:   raw[id] / sum,
			}
		}
	}

	if years, ok := MaxStatedYears(text); ok {
		rs.MinExperienceYears = years
	}
	rs.EducationLevel = DetectEducationLevel(nt)
	rs.Keywords = e.topKeywords(nt)
	return rs
}

// occurrencePriority decides the priority of one skill mention: an explicit
// trigger phrase within the window wins, then the enclosing section header,
// then the required default.
func (e *Extractor) occurrencePriority(nt types.NormalizedText, occ skills.Occurrence, zones []sectionZone) types.Priority {
	lo := occ.Start - e.opts.TriggerWindow
	if lo < 0 {
		lo = 0
	}
	hi := occ.End + e.opts.TriggerWindow
	if hi >= nt.Len() {
		hi = nt.Len() - 1
	}
	best := types.Priority("")
	for _, rule := range e.rules {
		if containsSequence(nt.Tokens[lo:hi+1], rule.lemmas) && rule.priority.Rank() > best.Rank() {
			best = rule.priority
		}
	}
	if best != "" {
		return best
	}
	if zone := zoneAt(zones, nt.Tokens[occ.Start].Start); zone != "" {
		return zone
	}
	return types.PriorityRequired
}

// containsSequence reports whether the lemma sequence appears contiguously in
// the token window.
func containsSequence(tokens []types.Token, lemmas []string) bool {
	if len(lemmas) == 0 || len(tokens) < len(lemmas) {
		return false
	}
outer:
	for i := 0; i+len(lemmas) <= len(tokens); i++ {
		for j, lemma := range lemmas {
			if tokens[i+j].Lemma != lemma {
				continue outer
			}
		}
		return true
	}
	return false
}

// sectionZone marks where a classified section header starts in the source
// text; its priority applies until the next zone.
type sectionZone struct {
	start    int
	priority types.Priority
}

func sectionZones(text string) []sectionZone {
	var zones []sectionZone
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		if pri, ok := sectionPriority(line); ok {
			zones = append(zones, sectionZone{start: offset, priority: pri})
		}
		offset += len(line)
	}
	return zones
}

// zoneAt returns the priority of the last zone starting at or before the byte
// offset, or empty when no zone covers it.
func zoneAt(zones []sectionZone, offset int) types.Priority {
	var out types.Priority
	for _, z := range zones {
		if z.start <= offset {
			out = z.priority
		}
	}
	return out
}

// topKeywords returns the most frequent lemmas that are not skill tokens,
// numbers or very short words. Output is sorted alphabetically so downstream
// serialization is deterministic.
func (e *Extractor) topKeywords(nt types.NormalizedText) []string {
	counts := make(map[string]int)
	for _, tok := range nt.Tokens {
		lemma := tok.Lemma
		if len(lemma) < 3 || hasDigit(lemma) || e.vocab.IsSkillToken(lemma) {
			continue
		}
		counts[lemma]++
	}
	ranked := make([]string, 0, len(counts))
	for lemma := range counts {
		ranked = append(ranked, lemma)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > e.opts.KeywordCount {
		ranked = ranked[:e.opts.KeywordCount]
	}
	sort.Strings(ranked)
	return ranked
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
