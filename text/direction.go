package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, whitespace, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection returns the dominant direction of text: whichever of LTR
// and RTL has more strong characters, LTR on a tie, or Neutral if there are
// none.
func DetectDirection(text string) Direction {
	ltr, rtl := countDirections(text)
	return dominant(ltr, rtl)
}

// CharDirection returns the inherent direction of a single rune from its
// Unicode bidi class. Only strong classes (L, R, AL) are directional.
func CharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

func countDirections(text string) (ltr, rtl int) {
	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	return ltr, rtl
}

func dominant(ltr, rtl int) Direction {
	switch {
	case ltr == 0 && rtl == 0:
		return Neutral
	case rtl > ltr:
		return RTL
	default:
		return LTR
	}
}

// dominantDirection counts strong characters across all chunks.
func dominantDirection(chunks []Chunk) Direction {
	ltr, rtl := 0, 0
	for _, c := range chunks {
		l, r := countDirections(c.text)
		ltr += l
		rtl += r
	}
	return dominant(ltr, rtl)
}
