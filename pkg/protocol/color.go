package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrColorTooLong  = errors.New("color exceeds 6 hex digits")
	ErrColorTooShort = errors.New("color is not 3 or 6 hex digits")
)

// Color is the RGB chat color a user has selected.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// ParseColor parses a hex color string, with or without a leading '#'.
// A 6-digit string is read as three 2-digit channels. A 3-digit string is
// read as three single digits, one per channel: "abc" is {10, 11, 12},
// NOT the CSS doubled-nibble shorthand {0xaa, 0xbb, 0xcc}. Historical
// behavior, kept exactly.
func ParseColor(text string) (Color, error) {
	text = strings.TrimPrefix(text, "#")

	switch n := len(text); {
	case n > 6:
		return Color{}, ErrColorTooLong
	case n == 6:
		r, err := strconv.ParseUint(text[0:2], 16, 8)
		if err != nil {
			return Color{}, err
		}
		g, err := strconv.ParseUint(text[2:4], 16, 8)
		if err != nil {
			return Color{}, err
		}
		b, err := strconv.ParseUint(text[4:6], 16, 8)
		if err != nil {
			return Color{}, err
		}
		return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
	case n == 3:
		r, err := strconv.ParseUint(text[0:1], 16, 8)
		if err != nil {
			return Color{}, err
		}
		g, err := strconv.ParseUint(text[1:2], 16, 8)
		if err != nil {
			return Color{}, err
		}
		b, err := strconv.ParseUint(text[2:3], 16, 8)
		if err != nil {
			return Color{}, err
		}
		return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
	default:
		return Color{}, ErrColorTooShort
	}
}

// ColorFromValue reads an optional color off a wire value. Malformed
// colors are decorative, not structural, so they decode as absent.
func ColorFromValue(v any) *Color {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil
	}
	return &c
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
