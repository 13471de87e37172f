package intent

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	maxPriceWords = []string{"under", "below"}
	minPriceWords = []string{"over", "above"}
)

// extractPrice applies the price rules in priority order; the first rule
// whose trigger words occur anywhere in the message is the only one tried.
// A value that fails to parse leaves the rule without bounds.
func (p *Parser) extractPrice(message, normalized string, tokens []string) (min, max *float64) {
	switch {
	case containsAny(normalized, maxPriceWords):
		raw, ok := valueAfter(tokens, maxPriceWords)
		if !ok {
			return nil, nil
		}
		v, ok := parseAmount(raw)
		if !ok {
			p.warnPrice(message, raw)
			return nil, nil
		}
		return nil, &v

	case containsAny(normalized, minPriceWords):
		raw, ok := valueAfter(tokens, minPriceWords)
		if !ok {
			return nil, nil
		}
		v, ok := parseAmount(raw)
		if !ok {
			p.warnPrice(message, raw)
			return nil, nil
		}
		return &v, nil

	case strings.Contains(normalized, "between") && strings.Contains(normalized, "and"):
		return p.extractBetween(message, tokens)
	}

	return nil, nil
}

// extractBetween handles "between X and Y". Both values must parse for
// either bound to be set. X > Y is passed through unchanged.
func (p *Parser) extractBetween(message string, tokens []string) (min, max *float64) {
	iBetween := indexOf(tokens, "between")
	iAnd := indexOf(tokens, "and")
	if iBetween < 0 || iAnd < 0 {
		p.log.Warn().Str("message", message).Msg("could not parse price range: missing between/and word")
		return nil, nil
	}
	if iBetween >= iAnd || iBetween+1 >= len(tokens) || iAnd+1 >= len(tokens) {
		return nil, nil
	}

	lo, ok := parseAmount(tokens[iBetween+1])
	if !ok {
		p.warnPrice(message, tokens[iBetween+1])
		return nil, nil
	}
	hi, ok := parseAmount(tokens[iAnd+1])
	if !ok {
		p.warnPrice(message, tokens[iAnd+1])
		return nil, nil
	}
	return &lo, &hi
}

func (p *Parser) warnPrice(message, token string) {
	p.log.Warn().
		Str("message", message).
		Str("token", token).
		Msg("could not parse price from message")
}

// parseAmount reads a price token: commas are dropped and every "k"
// becomes "000", so "50k" is 50000 and "1,500" is 1500.
func parseAmount(token string) (float64, bool) {
	s := strings.ReplaceAll(token, "k", "000")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// isNumeric reports whether token is a number rather than a search word,
// either plain digits or an amount such as "50k" or "1,200".
func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	digits := true
	for _, r := range token {
		if !unicode.IsDigit(r) {
			digits = false
			break
		}
	}
	if digits {
		return true
	}
	_, ok := parseAmount(token)
	return ok
}

// valueAfter returns the token following the first trigger word that has one
func valueAfter(tokens []string, triggers []string) (string, bool) {
	for i, tok := range tokens {
		if i+1 < len(tokens) && containsWord(triggers, tok) {
			return tokens[i+1], true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func indexOf(tokens []string, word string) int {
	for i, tok := range tokens {
		if tok == word {
			return i
		}
	}
	return -1
}
