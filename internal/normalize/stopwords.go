package normalize

// defaultStopwords is the fixed English stopword list removed during
// normalization. Kept short on purpose: overly aggressive lists eat tokens
// that matter for requirement phrasing ("must", "plus" stay out of here).
var defaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
	"for", "from", "had", "has", "have", "he", "her", "his", "i", "if",
	"in", "into", "is", "it", "its", "of", "on", "or", "our", "she",
	"that", "the", "their", "them", "they", "this", "to", "was", "we",
	"were", "will", "with", "you", "your",
}
