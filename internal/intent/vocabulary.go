package intent

import (
	"strings"
	"sync"
)

// Vocabulary holds the fixed word lists used by the parser.
// A Vocabulary must not be modified once handed to a Parser.
type Vocabulary struct {
	// categories maps a surface token to its canonical category name
	categories map[string]string
	stopwords  map[string]struct{}
	priceWords map[string]struct{}
}

var (
	categoryTokens = []string{
		"electronics", "laptop", "laptops", "mobile", "mobiles", "phone", "phones",
		"book", "books", "clothing", "clothes", "home", "kitchen", "sports", "toys", "headphones",
	}

	// surface tokens grouped under a shared canonical name
	categorySynonyms = map[string][]string{
		"Electronics": {"laptop", "laptops", "mobile", "mobiles", "phone", "phones", "headphones"},
	}

	stopwords = []string{
		"show", "me", "find", "i'm", "looking", "for", "a", "an", "the", "is", "are", "of", "in", "on", "at",
		"under", "over", "below", "above", "between", "and", "can", "you", "please", "display", "what", "whats",
		"any", "some", "about",
	}

	priceWords = []string{
		"price", "cost", "budget", "range", "k", "thousand", "dollar", "dollars", "rupee", "rupees",
	}
)

var (
	defaultVocabOnce sync.Once
	defaultVocab     *Vocabulary
)

// DefaultVocabulary returns the built-in shop vocabulary.
// It is built on first use and shared by every caller.
func DefaultVocabulary() *Vocabulary {
	defaultVocabOnce.Do(func() {
		defaultVocab = NewVocabulary(categoryTokens, categorySynonyms, stopwords, priceWords)
	})
	return defaultVocab
}

// NewVocabulary builds a vocabulary. Category tokens without a synonym
// group resolve to their capitalised form ("toys" -> "Toys").
func NewVocabulary(categories []string, synonyms map[string][]string, stop, price []string) *Vocabulary {
	canonical := make(map[string]string, len(synonyms))
	for name, tokens := range synonyms {
		for _, tok := range tokens {
			canonical[strings.ToLower(tok)] = name
		}
	}

	v := &Vocabulary{
		categories: make(map[string]string, len(categories)),
		stopwords:  toSet(stop),
		priceWords: toSet(price),
	}
	for _, tok := range categories {
		tok = strings.ToLower(tok)
		if name, ok := canonical[tok]; ok {
			v.categories[tok] = name
			continue
		}
		v.categories[tok] = capitalize(tok)
	}
	return v
}

// Category resolves a surface token to its canonical category
func (v *Vocabulary) Category(token string) (string, bool) {
	name, ok := v.categories[token]
	return name, ok
}

// IsCategoryToken reports whether token is a raw category surface token
func (v *Vocabulary) IsCategoryToken(token string) bool {
	_, ok := v.categories[token]
	return ok
}

// IsStopword reports whether token carries no search meaning
func (v *Vocabulary) IsStopword(token string) bool {
	_, ok := v.stopwords[token]
	return ok
}

// IsPriceWord reports whether token only talks about money
func (v *Vocabulary) IsPriceWord(token string) bool {
	_, ok := v.priceWords[token]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
