package font

import (
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// Font carries the metrics used to measure shown strings
type Font struct {
	Name string

	// per-rune overrides in 1000ths of an em
	widths map[rune]float64
}

// NewFont creates a font measured with the fallback typeface
func NewFont(name string) *Font {
	return &Font{
		Name:   name,
		widths: make(map[rune]float64),
	}
}

// SetWidth overrides the advance width of r (in 1000ths of em)
func (f *Font) SetWidth(r rune, width float64) {
	f.widths[r] = width
}

// GetWidth returns the width of a character (in 1000ths of em)
func (f *Font) GetWidth(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}

	if fallback, err := fallbackMetrics(); err == nil {
		if w, ok := fallback[r]; ok {
			return w
		}
	}

	return DefaultWidth
}

// GetStringWidth calculates the total width of a string
func (f *Font) GetStringWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.GetWidth(r)
	}
	return total
}

// SpaceWidth returns the width of the space glyph (in 1000ths of em)
func (f *Font) SpaceWidth() float64 {
	return f.GetWidth(' ')
}

// DecodeString decodes the character codes of a shown string to Unicode.
// Strings starting with a UTF-16 byte order mark (FEFF or FFFE) are decoded
// as UTF-16; everything else as Windows-1252. The result is NFC normalized.
func (f *Font) DecodeString(data []byte) string {
	return DecodeString(data)
}

// DecodeString is the font-independent decoding used by [Font.DecodeString].
func DecodeString(data []byte) string {
	if len(data) >= 2 && ((data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE)) {
		decoder := xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM).NewDecoder()
		if out, err := decoder.Bytes(data); err == nil {
			return norm.NFC.String(string(out))
		}
	}

	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return norm.NFC.String(string(data))
	}
	return norm.NFC.String(string(out))
}
