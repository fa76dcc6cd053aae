// Package normalize turns free text into an ordered sequence of lemmatized
// tokens with original span offsets. It is the shared front end for both
// requirement and resume extraction: both sides of a match must be normalized
// identically or alias resolution falls apart.
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

// binaryThreshold is the fraction of non-printable runes above which input is
// treated as binary garbage and normalized to an empty document.
const binaryThreshold = 0.2

// Normalizer tokenizes, lowercases, strips stopwords and lemmatizes text.
// It is read-only after construction and safe for concurrent use.
type Normalizer struct {
	stopwords map[string]bool
}

var (
	defaultNormalizer *Normalizer
	defaultOnce       sync.Once
)

// Default returns the process-wide normalizer with the fixed stopword set.
// It is initialized once and never mutated.
func Default() *Normalizer {
	defaultOnce.Do(func() {
		defaultNormalizer = New(nil)
	})
	return defaultNormalizer
}

// New builds a normalizer with the default stopword set plus extra stopwords.
func New(extraStopwords []string) *Normalizer {
	stop := make(map[string]bool, len(defaultStopwords)+len(extraStopwords))
	for _, w := range defaultStopwords {
		stop[w] = true
	}
	for _, w := range extraStopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			stop[w] = true
		}
	}
	return &Normalizer{stopwords: stop}
}

// Normalize converts text into a NormalizedText. It never fails: empty or
// binary-looking input yields an empty document.
func (n *Normalizer) Normalize(text string) types.NormalizedText {
	if text == "" || looksBinary(text) {
		return types.NormalizedText{Source: text}
	}

	var tokens []types.Token
	var cur strings.Builder
	start := -1
	end := 0

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		word := cur.String()
		cur.Reset()
		tokStart, tokEnd := start, end
		start = -1
		if n.stopwords[word] {
			return
		}
		tokens = append(tokens, types.Token{
			Lemma:    Lemma(word),
			Original: text[tokStart:tokEnd],
			Start:    tokStart,
			End:      tokEnd,
		})
	}

	for i, r := range text {
		size := utf8.RuneLen(r)
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if start == -1 {
				start = i
			}
			cur.WriteRune(unicode.ToLower(r))
			end = i + size
		case r == '\'' || r == '’':
			// Apostrophes vanish without splitting ("bachelor's" -> "bachelors").
			if start != -1 {
				end = i + size
			}
		case (r == '+' || r == '#') && cur.Len() > 0:
			// Keep symbols that are part of skill names ("c++", "c#").
			cur.WriteRune(r)
			end = i + size
		case r == '.' && cur.Len() > 0 && nextIsAlnum(text, i+size):
			// Internal dots stay ("node.js", "asp.net").
			cur.WriteRune(r)
			end = i + size
		default:
			flush()
		}
	}
	flush()

	return types.NormalizedText{Tokens: tokens, Source: text}
}

func nextIsAlnum(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// looksBinary reports whether the text has too many non-printable runes to be
// treated as a document.
func looksBinary(text string) bool {
	total, bad := 0, 0
	for _, r := range text {
		total++
		if r == utf8.RuneError || (!unicode.IsPrint(r) && !unicode.IsSpace(r)) {
			bad++
		}
	}
	if total == 0 {
		return false
	}
	return float64(bad)/float64(total) > binaryThreshold
}
