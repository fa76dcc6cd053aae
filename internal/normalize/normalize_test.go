package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TokensAndOffsets(t *testing.T) {
	n := Default()
	text := "Go and C++ developers"

	nt := n.Normalize(text)
	require.Len(t, nt.Tokens, 3)

	assert.Equal(t, "go", nt.Tokens[0].Lemma)
	assert.Equal(t, "Go", nt.Tokens[0].Original)
	assert.Equal(t, 0, nt.Tokens[0].Start)
	assert.Equal(t, 2, nt.Tokens[0].End)

	assert.Equal(t, "c++", nt.Tokens[1].Lemma)
	assert.Equal(t, "C++", nt.Tokens[1].Original)
	assert.Equal(t, "C++", text[nt.Tokens[1].Start:nt.Tokens[1].End])

	assert.Equal(t, "developer", nt.Tokens[2].Lemma)
	assert.Equal(t, "developers", nt.Tokens[2].Original)
}

func TestNormalize_StopwordsRemoved(t *testing.T) {
	n := Default()
	nt := n.Normalize("the quick fox and a dog")
	assert.Equal(t, []string{"quick", "fox", "dog"}, nt.Lemmas())
}

func TestNormalize_ApostrophesDoNotSplit(t *testing.T) {
	n := Default()
	nt := n.Normalize("Bachelor's degree")
	require.Len(t, nt.Tokens, 2)
	assert.Equal(t, "bachelor", nt.Tokens[0].Lemma)
	assert.Equal(t, "Bachelor's", nt.Tokens[0].Original)
	assert.Equal(t, "degree", nt.Tokens[1].Lemma)
}

func TestNormalize_InternalDots(t *testing.T) {
	n := Default()
	nt := n.Normalize("Experience building node.js services. SQL.")
	assert.Equal(t, []string{"experience", "build", "node.js", "service", "sql"}, nt.Lemmas())
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := Default()
	assert.True(t, n.Normalize("").Empty())
	assert.True(t, n.Normalize("   \n\t ").Empty())
}

func TestNormalize_BinaryInputYieldsEmptyDocument(t *testing.T) {
	n := Default()
	garbage := strings.Repeat("\x00\x01ab", 50)
	assert.True(t, n.Normalize(garbage).Empty())
}

func TestNormalize_IsDeterministic(t *testing.T) {
	n := Default()
	text := "Senior engineer with 5+ years building distributed systems in Go and Python."
	first := n.Normalize(text)
	second := n.Normalize(text)
	assert.Equal(t, first, second)
}

func TestNew_ExtraStopwords(t *testing.T) {
	n := New([]string{"Acme", "  corp  "})
	nt := n.Normalize("Acme Corp hires engineers")
	assert.Equal(t, []string{"hire", "engineer"}, nt.Lemmas())
}

func TestLemma(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"years", "year"},
		{"yrs", "year"},
		{"companies", "company"},
		{"classes", "class"},
		{"testing", "test"},
		{"services", "service"},
		{"led", "lead"},
		{"built", "build"},
		{"class", "class"},
		{"using", "using"},
		{"go", "go"},
		{"aws", "aws"},
		{"postgres", "postgres"},
		{"kubernetes", "kubernetes"},
		{"plus", "plus"},
		{"c++", "c++"},
		{"node.js", "node.js"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lemma(tt.word))
		})
	}
}
