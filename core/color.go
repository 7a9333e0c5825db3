// SPDX-License-Identifier: MIT
// File: color.go
// Role: Logical edge colors and their display variants.
// Policy:
//   - The graph stores ONLY logical colors; selection is tracked by the caller.
//   - DisplayColor is derived from (logical, selected) and always inverts back.

package core

import (
	"fmt"
	"strings"
)

// Color is the logical color of an edge.
type Color uint8

const (
	// Neutral is the Builder's placement color: the edge exists but has not been painted.
	Neutral Color = iota
	// Red is a Painter color.
	Red
	// Blue is a Painter color.
	Blue
)

// PaintColors lists the colors the Painter may choose, in evaluation order.
var PaintColors = []Color{Red, Blue}

// Valid reports whether c is a known logical color.
func (c Color) Valid() bool { return c <= Blue }

// Paint reports whether c is a Painter color (Red or Blue).
func (c Color) Paint() bool { return c == Red || c == Blue }

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Neutral:
		return "neutral"
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// ParseColor resolves a color name. Accepts full names and the single-letter
// shorthands r/b/n (case-insensitive).
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neutral", "n", "black":
		return Neutral, nil
	case "red", "r":
		return Red, nil
	case "blue", "b":
		return Blue, nil
	default:
		return Neutral, fmt.Errorf("ParseColor(%q): %w", s, ErrInvalidColor)
	}
}

// Display returns the display variant of c for the given selection state.
func (c Color) Display(selected bool) DisplayColor {
	switch c {
	case Red:
		if selected {
			return Pink
		}
		return DisplayRed
	case Blue:
		if selected {
			return Cyan
		}
		return DisplayBlue
	default:
		if selected {
			return Grey
		}
		return Black
	}
}

// DisplayColor is what a presentation layer paints: a logical color,
// lightened when the edge is selected.
type DisplayColor uint8

const (
	Black DisplayColor = iota
	Grey
	DisplayRed
	Pink
	DisplayBlue
	Cyan
)

// Logical inverts the display variant back to its logical color
// (grey↔black, pink↔red, cyan↔blue).
func (d DisplayColor) Logical() Color {
	switch d {
	case DisplayRed, Pink:
		return Red
	case DisplayBlue, Cyan:
		return Blue
	default:
		return Neutral
	}
}

// Selected reports whether d is a selected variant.
func (d DisplayColor) Selected() bool { return d == Grey || d == Pink || d == Cyan }

// String returns the color name a canvas would use.
func (d DisplayColor) String() string {
	switch d {
	case Black:
		return "black"
	case Grey:
		return "grey"
	case DisplayRed:
		return "red"
	case Pink:
		return "pink"
	case DisplayBlue:
		return "blue"
	case Cyan:
		return "cyan"
	default:
		return fmt.Sprintf("display(%d)", uint8(d))
	}
}
