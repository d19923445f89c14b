package token

// Position and Range are zero based. Character offsets count UTF-16 code
// units, matching the protocol's default position encoding.
type Position struct {
	Line      uint
	Character uint
}

type Range struct {
	Start Position
	End   Position
}

// newRange converts byte offsets within a single line into a Range.
func newRange(line int, startByte, endByte int, lineText string) Range {
	return Range{
		Start: Position{Line: uint(line), Character: uint(utf16Len(lineText[:startByte]))},
		End:   Position{Line: uint(line), Character: uint(utf16Len(lineText[:endByte]))},
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
