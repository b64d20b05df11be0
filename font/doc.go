// Package font provides the glyph metrics and byte decoding the content
// stream driver needs to place shown strings.
//
// Fonts are never parsed from the document. A [Font] measures glyphs with the
// advance widths of the Go Regular typeface, scaled to 1000ths of an em, and
// callers that know better widths (from a /Widths array, say) override them
// per rune with [Font.SetWidth].
//
//	f := font.NewFont("/F1")
//	text := f.DecodeString(raw)
//	width := f.GetStringWidth(text) * fontSize / 1000
//
// Shown strings are decoded as UTF-16 when they carry a byte order mark and
// as Windows-1252 otherwise, then normalized to NFC.
package font
