package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Casing selects the letter case of encoded hex literals.
type Casing string

const (
	CasingUpper Casing = "Upper"
	CasingLower Casing = "Lower"
)

// Color is a normalized RGBA color, each channel in [0, 1].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}

// ParseHex decodes a hex literal like #336699, #369, #3369 or #336699cc.
// Short forms expand by duplicating each digit (f becomes ff). Alpha
// defaults to 1 when no alpha byte is present. Reports false when the text
// is not exactly a well formed hex color.
func ParseHex(text string) (Color, bool) {
	if HexPattern.FindString(text) != text {
		return Color{}, false
	}

	digits := text[1:]
	if len(digits) == 3 || len(digits) == 4 {
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	}

	color := Color{
		Red:   float64(hexByte(digits[0:2])) / 255,
		Green: float64(hexByte(digits[2:4])) / 255,
		Blue:  float64(hexByte(digits[4:6])) / 255,
		Alpha: 1,
	}
	if len(digits) == 8 {
		color.Alpha = float64(hexByte(digits[6:8])) / 255
	}
	return color, true
}

// Hex encodes the color as a hex literal. The alpha byte is only written
// when alpha is strictly below 1, fully opaque colors serialize without an
// alpha channel.
func (c Color) Hex(casing Casing) string {
	text := fmt.Sprintf("#%02x%02x%02x", channelByte(c.Red), channelByte(c.Green), channelByte(c.Blue))
	if c.Alpha < 1 {
		text += fmt.Sprintf("%02x", channelByte(c.Alpha))
	}
	if casing == CasingLower {
		return text
	}
	return strings.ToUpper(text)
}

// TripletColor builds a color from 0-255 integer channels. Triplets carry
// no alpha.
func TripletColor(r, g, b int) Color {
	return Color{
		Red:   float64(r) / 255,
		Green: float64(g) / 255,
		Blue:  float64(b) / 255,
		Alpha: 1,
	}
}

// Triplet encodes the color as a C style integer triplet, no padding, no
// alpha.
func (c Color) Triplet() string {
	return fmt.Sprintf("{%d,%d,%d}", channelByte(c.Red), channelByte(c.Green), channelByte(c.Blue))
}

func hexByte(s string) int {
	// The pattern already guarantees two hex digits.
	b, _ := strconv.ParseUint(s, 16, 8)
	return int(b)
}

func channelByte(v float64) int {
	return int(math.Floor(v * 255))
}
