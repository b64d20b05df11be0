package font

import (
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultWidth is the advance, in 1000ths of an em, used for runes that have
// no glyph in the fallback typeface.
const DefaultWidth = 500.0

// metricRanges are the rune ranges measured from the fallback typeface.
var metricRanges = [][2]rune{
	{0x0020, 0x024F}, // Basic Latin through Latin Extended-B
	{0x0370, 0x03FF}, // Greek
	{0x0400, 0x04FF}, // Cyrillic
	{0x2000, 0x206F}, // General Punctuation
}

var (
	fallbackOnce   sync.Once
	fallbackWidths map[rune]float64
	fallbackErr    error
)

// fallbackMetrics returns Go Regular advance widths in 1000ths of an em.
// The table is built once and never modified afterwards.
func fallbackMetrics() (map[rune]float64, error) {
	fallbackOnce.Do(func() {
		fallbackWidths, fallbackErr = loadMetrics(goregular.TTF)
	})
	return fallbackWidths, fallbackErr
}

// loadMetrics measures every rune in metricRanges that the font maps to a glyph.
func loadMetrics(ttf []byte) (map[rune]float64, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	// at 1000 pixels per em the advance comes out in 1000ths of an em
	ppem := fixed.I(1000)
	widths := make(map[rune]float64)

	for _, rng := range metricRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			idx, err := f.GlyphIndex(&buf, r)
			if err != nil || idx == 0 {
				continue
			}
			adv, err := f.GlyphAdvance(&buf, idx, ppem, xfont.HintingNone)
			if err != nil {
				continue
			}
			widths[r] = float64(adv) / 64
		}
	}

	return widths, nil
}
