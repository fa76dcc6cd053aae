// Package skills owns the skill vocabulary: the mapping from canonical skill
// ids to alias sets, and the resolution of normalized text against it. Every
// comparison elsewhere in the system happens on canonical ids produced here,
// so synonyms never double-count.
package skills

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Vocabulary resolves normalized token sequences to canonical skill ids.
// It is read-only after construction and safe for concurrent use; extending
// it produces a new Vocabulary rather than mutating a shared one.
type Vocabulary struct {
	norm       *normalize.Normalizer
	aliasIndex map[string]string   // normalized alias key -> canonical id
	aliases    map[string][]string // canonical id -> declared aliases
	categories map[string][]string // display category -> canonical ids
	parts      map[string]bool     // individual lemmas appearing in any alias
	maxTokens  int
}

// Occurrence is one vocabulary hit inside a normalized text. Start and End
// are token indices; End is inclusive.
type Occurrence struct {
	Canonical string
	Start     int
	End       int
}

var (
	defaultVocab *Vocabulary
	defaultOnce  sync.Once
)

// Default returns the process-wide built-in vocabulary. It is initialized
// once against the default normalizer and never mutated.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := WithNormalizer(normalize.Default())
		if err != nil {
			panic(fmt.Sprintf("built-in skill vocabulary is malformed: %v", err))
		}
		defaultVocab = v
	})
	return defaultVocab
}

// WithNormalizer builds the built-in vocabulary against a custom normalizer.
// Needed when the caller extends the stopword list: aliases and document text
// must be normalized identically.
func WithNormalizer(n *normalize.Normalizer) (*Vocabulary, error) {
	v, err := New(n, defaultAliases)
	if err != nil {
		return nil, err
	}
	v.categories = defaultCategories
	return v, nil
}

// New builds a vocabulary from a canonical->aliases table. Every canonical id
// from the built-in category lists is included even when it has no declared
// aliases. Returns an error if a canonical id or alias normalizes to nothing.
func New(n *normalize.Normalizer, table map[string][]string) (*Vocabulary, error) {
	v := &Vocabulary{
		norm:       n,
		aliasIndex: make(map[string]string),
		aliases:    make(map[string][]string),
	}
	for _, ids := range defaultCategories {
		for _, id := range ids {
			if err := v.add(id, nil); err != nil {
				return nil, err
			}
		}
	}
	// Sorted iteration keeps alias conflicts deterministic.
	canonicals := make([]string, 0, len(table))
	for id := range table {
		canonicals = append(canonicals, id)
	}
	sort.Strings(canonicals)
	for _, id := range canonicals {
		if err := v.add(id, table[id]); err != nil {
			return nil, err
		}
	}
	v.indexParts()
	return v, nil
}

// Merge returns a new vocabulary with the custom table layered on top of this
// one. Custom aliases win on conflict.
func (v *Vocabulary) Merge(table map[string][]string) (*Vocabulary, error) {
	out := &Vocabulary{
		norm:       v.norm,
		aliasIndex: make(map[string]string, len(v.aliasIndex)),
		aliases:    make(map[string][]string, len(v.aliases)),
		categories: v.categories,
		maxTokens:  v.maxTokens,
	}
	for key, id := range v.aliasIndex {
		out.aliasIndex[key] = id
	}
	for id, as := range v.aliases {
		out.aliases[id] = as
	}
	canonicals := make([]string, 0, len(table))
	for id := range table {
		canonicals = append(canonicals, id)
	}
	sort.Strings(canonicals)
	for _, id := range canonicals {
		if err := out.addOverride(id, table[id]); err != nil {
			return nil, err
		}
	}
	out.indexParts()
	return out, nil
}

func (v *Vocabulary) add(canonical string, aliases []string) error {
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if canonical == "" {
		return fmt.Errorf("vocabulary entry has empty canonical id")
	}
	forms := append([]string{canonical}, aliases...)
	for _, form := range forms {
		key, n := v.aliasKey(form)
		if key == "" {
			return fmt.Errorf("vocabulary alias %q for %q normalizes to nothing", form, canonical)
		}
		if existing, ok := v.aliasIndex[key]; ok && existing != canonical {
			// First registration wins inside one table; Merge overrides.
			continue
		}
		v.aliasIndex[key] = canonical
		if n > v.maxTokens {
			v.maxTokens = n
		}
	}
	if len(aliases) > 0 {
		v.aliases[canonical] = append(v.aliases[canonical], aliases...)
	} else if _, ok := v.aliases[canonical]; !ok {
		v.aliases[canonical] = nil
	}
	return nil
}

func (v *Vocabulary) addOverride(canonical string, aliases []string) error {
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if canonical == "" {
		return fmt.Errorf("vocabulary entry has empty canonical id")
	}
	forms := append([]string{canonical}, aliases...)
	for _, form := range forms {
		key, n := v.aliasKey(form)
		if key == "" {
			return fmt.Errorf("vocabulary alias %q for %q normalizes to nothing", form, canonical)
		}
		v.aliasIndex[key] = canonical
		if n > v.maxTokens {
			v.maxTokens = n
		}
	}
	v.aliases[canonical] = append(v.aliases[canonical], aliases...)
	return nil
}

// aliasKey normalizes an alias through the same pipeline as document text,
// returning the joined lemma key and its token count.
func (v *Vocabulary) aliasKey(form string) (string, int) {
	nt := v.norm.Normalize(form)
	if nt.Empty() {
		return "", 0
	}
	return strings.Join(nt.Lemmas(), " "), nt.Len()
}

// Resolve maps a single normalized lemma to its canonical skill id.
func (v *Vocabulary) Resolve(lemma string) (string, bool) {
	id, ok := v.aliasIndex[lemma]
	return id, ok
}

// FindAll scans a normalized text for vocabulary hits, preferring the longest
// alias at each position so "machine learning" never also counts "machine".
func (v *Vocabulary) FindAll(nt types.NormalizedText) []Occurrence {
	lemmas := nt.Lemmas()
	var out []Occurrence
	for i := 0; i < len(lemmas); {
		matched := false
		max := v.maxTokens
		if rem := len(lemmas) - i; max > rem {
			max = rem
		}
		for l := max; l >= 1; l-- {
			key := strings.Join(lemmas[i:i+l], " ")
			if id, ok := v.aliasIndex[key]; ok {
				out = append(out, Occurrence{Canonical: id, Start: i, End: i + l - 1})
				i += l
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return out
}

// Contains reports whether the canonical id is part of the vocabulary.
func (v *Vocabulary) Contains(canonical string) bool {
	_, ok := v.aliases[canonical]
	return ok
}

// Canonicals returns all canonical ids in sorted order.
func (v *Vocabulary) Canonicals() []string {
	out := make([]string, 0, len(v.aliases))
	for id := range v.aliases {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Aliases returns the declared aliases for a canonical id.
func (v *Vocabulary) Aliases(canonical string) []string {
	return v.aliases[canonical]
}

// Categories returns the display grouping of built-in canonical ids.
func (v *Vocabulary) Categories() map[string][]string {
	return v.categories
}

// IsSkillToken reports whether a single lemma appears inside any alias in the
// vocabulary. Used to keep already-captured skill tokens out of the keyword
// set.
func (v *Vocabulary) IsSkillToken(lemma string) bool {
	return v.parts[lemma]
}

// indexParts records every individual lemma appearing inside any alias key.
// Called once at the end of construction; the vocabulary is immutable after.
func (v *Vocabulary) indexParts() {
	v.parts = make(map[string]bool)
	for key := range v.aliasIndex {
		for _, part := range strings.Fields(key) {
			v.parts[part] = true
		}
	}
}
