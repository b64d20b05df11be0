package font

import (
	"testing"
)

// TestNewFont tests font creation
func TestNewFont(t *testing.T) {
	f := NewFont("F1")

	if f.Name != "F1" {
		t.Errorf("expected name F1, got %s", f.Name)
	}
}

// TestFallbackMetrics tests that the fallback typeface yields plausible widths
func TestFallbackMetrics(t *testing.T) {
	widths, err := fallbackMetrics()
	if err != nil {
		t.Fatalf("fallbackMetrics failed: %v", err)
	}

	for _, r := range "Aa ,W" {
		w, ok := widths[r]
		if !ok {
			t.Errorf("missing width for %q", r)
			continue
		}
		if w <= 0 || w >= 1000 {
			t.Errorf("width for %q = %f, want (0, 1000)", r, w)
		}
	}

	if widths['W'] <= widths['i'] {
		t.Errorf("expected W (%f) wider than i (%f)", widths['W'], widths['i'])
	}
}

// TestGetWidth tests character width retrieval and overrides
func TestGetWidth(t *testing.T) {
	f := NewFont("F1")

	if w := f.GetWidth('א'); w != DefaultWidth {
		t.Errorf("expected default width for unmapped rune, got %f", w)
	}

	f.SetWidth(' ', 250)
	if w := f.SpaceWidth(); w != 250 {
		t.Errorf("expected overridden space width 250, got %f", w)
	}
}

// TestGetStringWidth tests string width calculation
func TestGetStringWidth(t *testing.T) {
	f := NewFont("F1")
	f.SetWidth('H', 722)
	f.SetWidth('i', 222)

	if width := f.GetStringWidth("Hi"); width != 944 {
		t.Errorf("expected width 944 for 'Hi', got %f", width)
	}

	if width := f.GetStringWidth(""); width != 0 {
		t.Errorf("expected width 0 for empty string, got %f", width)
	}
}

// TestDecodeString tests byte decoding of shown strings
func TestDecodeString(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("Hello"), "Hello"},
		{"windows-1252 quotes", []byte{0x93, 'h', 'i', 0x94}, "“hi”"},
		{"latin-1 e acute", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"utf16 big endian", []byte{0xFE, 0xFF, 0x05, 0xD1, 0x05, 0xD0}, "בא"},
		{"utf16 little endian", []byte{0xFF, 0xFE, 0xD0, 0x05}, "א"},
		{"nfc composition", []byte{0xFE, 0xFF, 0x00, 'e', 0x03, 0x01}, "é"},
	}

	f := NewFont("F1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.DecodeString(tt.data); got != tt.want {
				t.Errorf("DecodeString() = %q, want %q", got, tt.want)
			}
		})
	}
}
