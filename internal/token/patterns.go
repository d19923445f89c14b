package token

import (
	"regexp"
	"strconv"
)

// Shared regex patterns for color token scanning. Each pattern runs
// independently against the same text; overlapping matches are never
// coalesced.

// HexPattern matches a `#` followed by 8, 6, 4, or 3 hex digits. The longest
// alternative comes first because Go regexp alternation is leftmost-first.
var HexPattern = regexp.MustCompile(`#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{3})`)

// TripletPattern matches C style integer triplets like {255, 0, 0} or
// { 255,255,0 }. Leading zeros are accepted ("025" reads as 25). The regexp
// alone also accepts 256-999, so tripletValues checks the 0-255 range.
var TripletPattern = regexp.MustCompile(`\{\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\}`)

// ReferencePattern matches CSS custom property references: var(--name).
var ReferencePattern = regexp.MustCompile(`var\(--([A-Za-z0-9-]+)\)`)

// KeyPattern matches a quoted JSON object key followed by a colon, without
// running a full JSON tokenizer. Two alternatives because RE2 has no
// backreferences to demand the same quote style with a single group.
var KeyPattern = regexp.MustCompile(`"([A-Za-z0-9_-]+)"\s*:|'([A-Za-z0-9_-]+)'\s*:`)

// tripletValues reads the channels out of a TripletPattern submatch index
// and reports whether all three are in [0, 255].
func tripletValues(line string, m []int) (r, g, b int, ok bool) {
	r, _ = strconv.Atoi(line[m[2]:m[3]])
	g, _ = strconv.Atoi(line[m[4]:m[5]])
	b, _ = strconv.Atoi(line[m[6]:m[7]])
	if r > 255 || g > 255 || b > 255 {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

// keyName reads the captured key out of a KeyPattern submatch index,
// whichever quote style matched. start and end exclude the quotes.
func keyName(line string, m []int) (name string, start, end int) {
	start, end = m[2], m[3]
	if start < 0 {
		start, end = m[4], m[5]
	}
	return line[start:end], start, end
}
