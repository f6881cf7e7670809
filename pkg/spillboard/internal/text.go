package internal

import (
	"strings"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
)

// WrapText breaks text into lines no wider than maxWidth as reported by
// measure. Explicit newlines are kept. A single word wider than maxWidth
// gets a line of its own rather than being split.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

// AlignOffset returns the x offset of a line of width w inside a box of
// width boxW.
func AlignOffset(align constants.TextAlign, w, boxW int32) int32 {
	switch align {
	case constants.TextAlignCenter:
		return (boxW - w) / 2
	case constants.TextAlignRight:
		return boxW - w
	default:
		return 0
	}
}
