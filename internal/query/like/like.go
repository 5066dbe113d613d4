// Package like compiles and evaluates SQL LIKE patterns with two
// wildcards: '_' matches exactly one character and '%' matches one or
// more characters when followed by more pattern, any number when last.
package like

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenUnderscore
	tokenPercent
)

type token struct {
	kind    tokenKind
	literal []rune // set for tokenLiteral only
}

// Pattern is a compiled LIKE pattern
type Pattern struct {
	tokens []token
}

// Compile tokenizes a pattern: one token per '_', one per '%', and one
// token per maximal run of literal characters between wildcards.
func Compile(pattern string) *Pattern {
	runes := []rune(pattern)
	var tokens []token
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '_':
			tokens = append(tokens, token{kind: tokenUnderscore})
			i++
		case '%':
			tokens = append(tokens, token{kind: tokenPercent})
			i++
		default:
			start := i
			for i < len(runes) && runes[i] != '%' && runes[i] != '_' {
				i++
			}
			tokens = append(tokens, token{kind: tokenLiteral, literal: runes[start:i]})
		}
	}
	return &Pattern{tokens: tokens}
}

// Match reports whether the entire text is consumed by the pattern.
//
// Empty text matches only the empty pattern. A non-final '%' tries the
// text suffixes starting at offsets 1 through len-1 of the remaining
// text, so it must consume at least one character and may not consume
// all of it. Evaluation is memoized over (token index, text offset)
// pairs, which keeps patterns with several '%' wildcards polynomial
// instead of exponential.
func (p *Pattern) Match(text string) bool {
	target := []rune(text)

	// 0 = unknown, 1 = match, 2 = no match
	memo := make([]uint8, (len(p.tokens)+1)*(len(target)+1))
	stride := len(target) + 1

	var match func(ti, pos int) bool
	match = func(ti, pos int) bool {
		cell := &memo[ti*stride+pos]
		if *cell != 0 {
			return *cell == 1
		}
		ok := p.matchStep(match, ti, pos, target)
		if ok {
			*cell = 1
		} else {
			*cell = 2
		}
		return ok
	}
	return match(0, 0)
}

func (p *Pattern) matchStep(match func(int, int) bool, ti, pos int, target []rune) bool {
	if pos == len(target) {
		return ti == len(p.tokens)
	}
	if ti == len(p.tokens) {
		return false
	}

	switch tok := p.tokens[ti]; tok.kind {
	case tokenUnderscore:
		return match(ti+1, pos+1)
	case tokenPercent:
		if ti == len(p.tokens)-1 {
			return true
		}
		for i := pos + 1; i < len(target); i++ {
			if match(ti+1, i) {
				return true
			}
		}
		return false
	default:
		if !hasPrefix(target[pos:], tok.literal) {
			return false
		}
		return match(ti+1, pos+len(tok.literal))
	}
}

func hasPrefix(target, literal []rune) bool {
	if len(target) < len(literal) {
		return false
	}
	for i, r := range literal {
		if target[i] != r {
			return false
		}
	}
	return true
}
