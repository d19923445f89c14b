package token

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// CachedVariable is a named color definition inside one cached document.
type CachedVariable struct {
	Color string // hex literal as written in the document
	Range Range  // the defining key's range, quotes excluded
}

// Definition is a definition site of a color variable.
type Definition struct {
	URI   string
	Range Range
}

// ParseFailurePolicy controls what Update does with a document's existing
// cache entry when the new content does not parse.
type ParseFailurePolicy int

const (
	// KeepStale leaves the previous entry untouched. Lookups keep serving
	// the last successfully parsed version of the document.
	KeepStale ParseFailurePolicy = iota
	// Clear drops the previous entry instead.
	Clear
)

// Cache maps document URIs to the color variables they define. Every
// successful update replaces a document's variable map wholesale, there is
// no partial update.
type Cache struct {
	documents map[string]map[string]CachedVariable

	// OnParseFailure defaults to KeepStale.
	OnParseFailure ParseFailurePolicy
}

func NewCache() *Cache {
	return &Cache{
		documents: make(map[string]map[string]CachedVariable),
	}
}

// Update reparses a color defining document and rebuilds its variable map.
// A variable is a top level JSON key whose string value is a valid hex color
// literal. Content that is not valid JSON is handled per OnParseFailure.
func (c *Cache) Update(uri, text string) {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		if c.OnParseFailure == Clear {
			delete(c.documents, uri)
		}
		return
	}
	// Valid JSON that is not an object defines no variables but still
	// replaces the entry.
	values, _ := parsed.(map[string]any)

	variables := make(map[string]CachedVariable)
	for lineNum, line := range strings.Split(text, "\n") {
		for _, m := range KeyPattern.FindAllStringSubmatchIndex(line, -1) {
			name, start, end := keyName(line, m)
			value, ok := values[name].(string)
			if !ok {
				continue
			}
			if HexPattern.FindString(value) != value {
				continue
			}
			variables[name] = CachedVariable{
				Color: value,
				Range: newRange(lineNum, start, end, line),
			}
		}
	}
	c.documents[uri] = variables
}

// Remove drops a document's cache entry, used when the document closes.
func (c *Cache) Remove(uri string) {
	delete(c.documents, uri)
}

// Lookup finds a variable by name. When several documents define the same
// name the lexicographically smallest URI wins, so resolution stays
// deterministic.
func (c *Cache) Lookup(name string) (string, CachedVariable, bool) {
	for _, uri := range slices.Sorted(maps.Keys(c.documents)) {
		if variable, ok := c.documents[uri][name]; ok {
			return uri, variable, true
		}
	}
	return "", CachedVariable{}, false
}

// LookupAll returns every definition site for name, ordered by URI.
func (c *Cache) LookupAll(name string) []Definition {
	var defs []Definition
	for _, uri := range slices.Sorted(maps.Keys(c.documents)) {
		if variable, ok := c.documents[uri][name]; ok {
			defs = append(defs, Definition{URI: uri, Range: variable.Range})
		}
	}
	return defs
}

// Variables returns a copy of one document's variable map, nil when the
// document is not cached.
func (c *Cache) Variables(uri string) map[string]CachedVariable {
	variables, ok := c.documents[uri]
	if !ok {
		return nil
	}
	return maps.Clone(variables)
}
