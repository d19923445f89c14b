package token

import "strings"

// Token is an occurrence of a color value at a specific source range.
type Token struct {
	Color Color
	Range Range
}

// Class is a document's language classification.
type Class int

const (
	// ClassNone documents produce no tokens.
	ClassNone Class = iota
	// ClassColor documents are scanned for hex literals.
	ClassColor
	// ClassCPP documents are scanned for hex literals and integer triplets.
	ClassCPP
	// ClassReference documents hold var(--name) references, resolved
	// against the cache instead of scanned for literals.
	ClassReference
)

// Detect scans a color language document for literal color tokens. Hex
// matches come first in text order, then triplet matches in text order for
// C++ family documents. At most max tokens are returned; the bool reports
// whether the running count reached max.
func Detect(text string, class Class, max int) ([]Token, bool) {
	if class != ClassColor && class != ClassCPP {
		return nil, false
	}

	lines := strings.Split(text, "\n")

	tokens := appendHexTokens(nil, lines, max)
	if class == ClassCPP {
		tokens = appendTripletTokens(tokens, lines, max)
	}
	return tokens, len(tokens) == max
}

func appendHexTokens(tokens []Token, lines []string, max int) []Token {
	for lineNum, line := range lines {
		for _, m := range HexPattern.FindAllStringIndex(line, -1) {
			if len(tokens) == max {
				return tokens
			}
			color, ok := ParseHex(line[m[0]:m[1]])
			if !ok {
				continue
			}
			tokens = append(tokens, Token{
				Color: color,
				Range: newRange(lineNum, m[0], m[1], line),
			})
		}
	}
	return tokens
}

func appendTripletTokens(tokens []Token, lines []string, max int) []Token {
	for lineNum, line := range lines {
		for _, m := range TripletPattern.FindAllStringSubmatchIndex(line, -1) {
			if len(tokens) == max {
				return tokens
			}
			r, g, b, ok := tripletValues(line, m)
			if !ok {
				continue
			}
			tokens = append(tokens, Token{
				Color: TripletColor(r, g, b),
				Range: newRange(lineNum, m[0], m[1], line),
			})
		}
	}
	return tokens
}
