// Package resume extracts a structured candidate profile from resume text:
// skill evidence with context snippets, aggregate experience, education level,
// section segmentation and contact details.
package resume

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options tune profile extraction. A negative value selects the default;
// zero is honored (snippets carry the mention alone).
type Options struct {
	// ContextWindow is how many tokens of surrounding text are kept on each
	// side of a skill mention as its evidence snippet.
	ContextWindow int
}

// DefaultOptions returns the standard extraction options.
func DefaultOptions() Options {
	return Options{ContextWindow: 5}
}

func (o Options) withDefaults() Options {
	if o.ContextWindow < 0 {
		o.ContextWindow = DefaultOptions().ContextWindow
	}
	return o
}

// Extractor parses resumes into candidate profiles. It is read-only after
// construction and safe for concurrent use.
type Extractor struct {
	norm  *normalize.Normalizer
	vocab *skills.Vocabulary
	opts  Options
	nowFn func() time.Time
}

// NewExtractor builds a profile extractor over the given normalizer and
// vocabulary.
func NewExtractor(norm *normalize.Normalizer, vocab *skills.Vocabulary, opts Options) *Extractor {
	return &Extractor{norm: norm, vocab: vocab, opts: opts.withDefaults(), nowFn: time.Now}
}

// Extract parses resume text. It never fails: empty or malformed input yields
// an empty profile with ExperienceUnverifiable set.
func (e *Extractor) Extract(text string) *types.CandidateProfile {
	nt := e.norm.Normalize(text)
	profile := &types.CandidateProfile{
		Skills:   make(map[string]types.SkillEvidence),
		Sections: make(map[string]types.NormalizedText),
		Text:     nt,
	}

	for _, occ := range e.vocab.FindAll(nt) {
		ev := profile.Skills[occ.Canonical]
		ev.EvidenceCount++
		if snippet := nt.Snippet(occ.Start, occ.End, e.opts.ContextWindow); snippet != "" {
			ev.Contexts = append(ev.Contexts, snippet)
		}
		profile.Skills[occ.Canonical] = ev
	}

	years, ok := AggregateYears(text, e.nowFn())
	if ok {
		profile.ExperienceYears = years
	} else {
		profile.ExperienceUnverifiable = true
	}

	profile.EducationLevel = parsing.DetectEducationLevel(nt)

	for name, chunk := range SplitSections(text) {
		profile.Sections[name] = e.norm.Normalize(chunk)
	}

	profile.Name = extractName(text)
	profile.Email = firstMatch(emailPattern, text)
	profile.Phone = firstMatch(phonePattern, text)
	return profile
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s\-]?)?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}`)
)

func firstMatch(p *regexp.Regexp, text string) string {
	return p.FindString(text)
}

// extractName applies the top-of-resume heuristic: the first non-empty line
// of two or three capitalized-ish words with no digits is taken as the name.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 3 {
			return ""
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 3 {
			continue
		}
		ok := true
		for _, w := range words {
			for _, r := range w {
				if unicode.IsDigit(r) || r == '@' {
					ok = false
					break
				}
			}
			if len(w) < 2 {
				ok = false
			}
			if !ok {
				break
			}
		}
		if ok {
			return line
		}
	}
	return ""
}
