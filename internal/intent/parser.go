// Package intent turns free-text shopping queries into structured search criteria.
//
// The parser works on a fixed vocabulary and a short list of ordered rules:
// the first category word wins, the first matching price phrase wins, and
// every other meaningful word becomes a keyword.
package intent

import (
	"sort"
	"strings"

	"shopchat/internal/model"

	"github.com/rs/zerolog"
)

// Parser extracts an Intent from a chat message.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	vocab *Vocabulary
	log   zerolog.Logger
}

// NewParser creates a parser over vocab. A nil vocab selects DefaultVocabulary.
func NewParser(vocab *Vocabulary, log zerolog.Logger) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Parser{
		vocab: vocab,
		log:   log.With().Str("component", "intent_parser").Logger(),
	}
}

// Parse extracts category, price bounds and keywords from message.
// It never fails: unrecognised input yields an empty Intent.
func (p *Parser) Parse(message string) model.Intent {
	normalized, tokens := normalize(message)

	result := model.Intent{Keywords: []string{}}

	category, ok := p.matchCategory(tokens)
	if ok {
		result.Category = &category
	}

	result.MinPrice, result.MaxPrice = p.extractPrice(message, normalized, tokens)
	result.Keywords = p.extractKeywords(tokens, result.Category)

	p.log.Debug().
		Str("message", message).
		Interface("intent", result).
		Msg("parsed intent")

	return result
}

// normalize lower-cases the message and splits it on whitespace.
// Punctuation stays attached to its word.
func normalize(message string) (string, []string) {
	lower := strings.ToLower(message)
	return lower, strings.Fields(lower)
}

// matchCategory returns the canonical category of the first category token
func (p *Parser) matchCategory(tokens []string) (string, bool) {
	for _, tok := range tokens {
		if name, ok := p.vocab.Category(tok); ok {
			return name, true
		}
	}
	return "", false
}

func (p *Parser) extractKeywords(tokens []string, category *string) []string {
	var categoryWords []string
	if category != nil {
		categoryWords = strings.Fields(strings.ToLower(*category))
	}

	seen := make(map[string]struct{}, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if p.vocab.IsStopword(tok) || p.vocab.IsCategoryToken(tok) || isNumeric(tok) || p.vocab.IsPriceWord(tok) {
			continue
		}
		if containsWord(categoryWords, tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}

	sort.Strings(keywords)
	return keywords
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
