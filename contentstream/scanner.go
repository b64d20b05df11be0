package contentstream

import "bytes"

// byte classes of the PDF lexical conventions
const (
	regular = iota
	space
	delimiter
)

var charClass = func() (table [256]uint8) {
	for _, c := range []byte(" \t\r\n\f\x00") {
		table[c] = space
	}
	for _, c := range []byte("()<>[]{}/%") {
		table[c] = delimiter
	}
	return table
}()

func isSpace(c byte) bool   { return charClass[c] == space }
func isRegular(c byte) bool { return charClass[c] == regular }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// scanner walks the raw bytes of a content stream.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.data)
}

// peek returns the byte at the cursor, or 0 at the end.
func (s *scanner) peek() byte {
	return s.peekAt(0)
}

func (s *scanner) peekAt(offset int) byte {
	if i := s.pos + offset; i < len(s.data) {
		return s.data[i]
	}
	return 0
}

func (s *scanner) next() byte {
	c := s.data[s.pos]
	s.pos++
	return c
}

// skipSpace advances past whitespace and % comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch c := s.peek(); {
		case isSpace(c):
			s.pos++
		case c == '%':
			for !s.eof() && s.peek() != '\n' && s.peek() != '\r' {
				s.pos++
			}
		default:
			return
		}
	}
}

// regular returns the run of regular characters at the cursor.
func (s *scanner) regular() []byte {
	start := s.pos
	for !s.eof() && isRegular(s.peek()) {
		s.pos++
	}
	return s.data[start:s.pos]
}

// keyword reads an operator or keyword. ' and " stand alone even when
// followed by regular characters.
func (s *scanner) keyword() string {
	if c := s.peek(); c == '\'' || c == '"' {
		s.pos++
		return string(c)
	}
	return string(s.regular())
}

// inlineImageData consumes the bytes after an ID operator up to the EI that
// ends the image, leaving the cursor on EI.
func (s *scanner) inlineImageData() []byte {
	if !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
	start := s.pos

	for i := start; i+1 < len(s.data); i++ {
		if s.data[i] != 'E' || s.data[i+1] != 'I' {
			continue
		}
		spaceBefore := i == start || isSpace(s.data[i-1])
		spaceAfter := i+2 >= len(s.data) || isSpace(s.data[i+2])
		if spaceBefore && spaceAfter {
			s.pos = i
			return bytes.TrimRight(s.data[start:i], "\r\n\t ")
		}
	}

	s.pos = len(s.data)
	return s.data[start:]
}
