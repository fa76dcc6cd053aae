package types

import "strings"

// Token is a single normalized token with its span in the source text.
type Token struct {
	Lemma    string `json:"lemma"`
	Original string `json:"original"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// NormalizedText is an ordered sequence of lemmatized tokens plus the source
// text they were cut from. It is built once and never mutated afterwards.
type NormalizedText struct {
	Tokens []Token `json:"tokens"`
	Source string  `json:"-"`
}

// Len returns the number of tokens.
func (nt NormalizedText) Len() int {
	return len(nt.Tokens)
}

// Empty reports whether the text produced no tokens.
func (nt NormalizedText) Empty() bool {
	return len(nt.Tokens) == 0
}

// Lemmas returns the lemma sequence.
func (nt NormalizedText) Lemmas() []string {
	out := make([]string, len(nt.Tokens))
	for i, tok := range nt.Tokens {
		out[i] = tok.Lemma
	}
	return out
}

// LemmaSet returns the set of distinct lemmas.
func (nt NormalizedText) LemmaSet() map[string]bool {
	set := make(map[string]bool, len(nt.Tokens))
	for _, tok := range nt.Tokens {
		set[tok.Lemma] = true
	}
	return set
}

// Snippet returns the source text spanning tokens [i-window, j+window],
// clamped to the token range. Offsets come from the original text, so the
// snippet preserves the author's casing and punctuation.
func (nt NormalizedText) Snippet(i, j, window int) string {
	if len(nt.Tokens) == 0 || i < 0 || j >= len(nt.Tokens) || i > j {
		return ""
	}
	lo := i - window
	if lo < 0 {
		lo = 0
	}
	hi := j + window
	if hi >= len(nt.Tokens) {
		hi = len(nt.Tokens) - 1
	}
	start := nt.Tokens[lo].Start
	end := nt.Tokens[hi].End
	if start < 0 || end > len(nt.Source) || start >= end {
		return ""
	}
	return strings.TrimSpace(nt.Source[start:end])
}
