package token

import "strings"

// ResolveReferences finds every var(--name) reference whose name is defined
// in the cache and emits one token per resolvable reference, at the
// reference's own range. Unresolvable references are skipped silently.
func (c *Cache) ResolveReferences(text string) []Token {
	var tokens []Token
	for lineNum, line := range strings.Split(text, "\n") {
		for _, m := range ReferencePattern.FindAllStringSubmatchIndex(line, -1) {
			name := line[m[2]:m[3]]
			_, variable, ok := c.Lookup(name)
			if !ok {
				continue
			}
			color, ok := ParseHex(variable.Color)
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

// ResolveDefinition takes the first var(--name) reference on the line
// containing pos and returns every cached definition site for that name,
// one per document.
func (c *Cache) ResolveDefinition(text string, pos Position) []Definition {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	m := ReferencePattern.FindStringSubmatchIndex(lines[pos.Line])
	if m == nil {
		return nil
	}
	name := lines[pos.Line][m[2]:m[3]]
	return c.LookupAll(name)
}
