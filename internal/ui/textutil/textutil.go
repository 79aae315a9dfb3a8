// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import "github.com/mattn/go-runewidth"

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a string, accounting for unicode
// characters. This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
// The result will be at most maxWidth visual columns wide.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth < 0 {
		return TruncateEllipsis
	}

	result := make([]rune, 0, len(s))
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > availableWidth {
			break
		}
		result = append(result, r)
		width += rw
	}
	return string(result) + TruncateEllipsis
}

// PadRightVisual pads a string with spaces to reach targetWidth visual columns.
// If the string is already wider than targetWidth, it is truncated.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-currentWidth)
}
