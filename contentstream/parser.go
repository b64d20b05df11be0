package contentstream

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/tsawler/readorder/core"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("contentstream: syntax error")

// SyntaxError reports malformed content at a byte offset.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("contentstream: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Operation is one operator together with the operands that preceded it.
type Operation struct {
	Operator string        // e.g. "Tj", "Tm", "q"
	Operands []core.Object // in stream order
}

// Parser parses PDF content streams into a sequence of operations.
// A Parser is single use and must not be shared between goroutines.
type Parser struct {
	sc       scanner
	operands []core.Object // pending operands awaiting their operator
}

// NewParser creates a new content stream parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{sc: scanner{data: data}}
}

// keywords that are operands rather than operators
var keywordObjects = map[string]core.Object{
	"true":  core.Bool(true),
	"false": core.Bool(false),
	"null":  core.Null{},
}

// Parse returns every operation of the stream in order. Operands left over at
// the end of the stream without an operator are dropped.
func (p *Parser) Parse() ([]Operation, error) {
	var ops []Operation

	for {
		p.sc.skipSpace()
		if p.sc.eof() {
			return ops, nil
		}

		if c := p.sc.peek(); !isLetter(c) && c != '\'' && c != '"' {
			obj, err := p.operand()
			if err != nil {
				return nil, err
			}
			p.operands = append(p.operands, obj)
			continue
		}

		word := p.sc.keyword()
		if obj, ok := keywordObjects[word]; ok {
			p.operands = append(p.operands, obj)
			continue
		}

		op := Operation{Operator: word, Operands: slices.Clone(p.operands)}
		if word == "ID" {
			// raw image bytes follow and must not be tokenized
			op.Operands = append(op.Operands, core.String(p.sc.inlineImageData()))
		}

		ops = append(ops, op)
		p.operands = p.operands[:0]
	}
}

func (p *Parser) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// operand parses the object at the cursor.
func (p *Parser) operand() (core.Object, error) {
	switch c := p.sc.peek(); {
	case c == '(':
		return p.literalString()
	case c == '<' && p.sc.peekAt(1) == '<':
		return p.dict()
	case c == '<':
		return p.hexString()
	case c == '/':
		return p.name(), nil
	case c == '[':
		return p.array()
	case isDigit(c) || c == '+' || c == '-' || c == '.':
		return p.number()
	case isLetter(c):
		offset := p.sc.pos
		word := p.sc.keyword()
		if obj, ok := keywordObjects[word]; ok {
			return obj, nil
		}
		return nil, p.errorf(offset, "unexpected keyword %q inside operand", word)
	default:
		return nil, p.errorf(p.sc.pos, "unexpected character %q", c)
	}
}

// number parses an integer or a real. A lone sign or dot, as written by some
// producers, reads as zero.
func (p *Parser) number() (core.Object, error) {
	offset := p.sc.pos
	token := string(p.sc.regular())

	dots := 0
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case c == '.':
			dots++
		case (c == '+' || c == '-') && i == 0:
		case !isDigit(c):
			return nil, p.errorf(offset, "invalid number %q", token)
		}
	}

	switch {
	case dots > 1:
		return nil, p.errorf(offset, "invalid number %q", token)
	case dots == 1:
		if token == "." || token == "-." || token == "+." {
			return core.Real(0), nil
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, p.errorf(offset, "invalid real %q", token)
		}
		return core.Real(v), nil
	}

	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, p.errorf(offset, "invalid integer %q", token)
	}
	return core.Int(v), nil
}

var simpleEscapes = map[byte]byte{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'f': '\f',
}

// literalString parses (...) with balanced parentheses and escapes.
func (p *Parser) literalString() (core.Object, error) {
	offset := p.sc.pos
	p.sc.pos++

	var buf []byte
	depth := 1
	for !p.sc.eof() {
		switch c := p.sc.next(); c {
		case '\\':
			buf = p.escape(buf)
		case '(':
			depth++
			buf = append(buf, c)
		case ')':
			depth--
			if depth == 0 {
				return core.String(buf), nil
			}
			buf = append(buf, c)
		default:
			buf = append(buf, c)
		}
	}

	return nil, p.errorf(offset, "unclosed string")
}

// escape decodes the escape sequence after a backslash and appends it.
func (p *Parser) escape(buf []byte) []byte {
	if p.sc.eof() {
		return buf
	}

	c := p.sc.next()
	if b, ok := simpleEscapes[c]; ok {
		return append(buf, b)
	}

	switch {
	case c == '\r':
		if p.sc.peek() == '\n' {
			p.sc.pos++
		}
		return buf
	case c == '\n':
		return buf
	case c >= '0' && c <= '7':
		v := int(c - '0')
		for i := 0; i < 2 && p.sc.peek() >= '0' && p.sc.peek() <= '7'; i++ {
			v = v*8 + int(p.sc.next()-'0')
		}
		return append(buf, byte(v))
	}

	// \( \) \\ and unknown escapes stand for the character itself
	return append(buf, c)
}

// hexString parses <...>. An odd final digit is padded with 0.
func (p *Parser) hexString() (core.Object, error) {
	offset := p.sc.pos
	p.sc.pos++

	var digits []byte
	for !p.sc.eof() {
		c := p.sc.next()
		switch {
		case c == '>':
			if len(digits)%2 == 1 {
				digits = append(digits, '0')
			}
			out := make([]byte, hex.DecodedLen(len(digits)))
			if _, err := hex.Decode(out, digits); err != nil {
				return nil, p.errorf(offset, "invalid hex string")
			}
			return core.String(out), nil
		case isSpace(c):
		case isHexDigit(c):
			digits = append(digits, c)
		default:
			return nil, p.errorf(p.sc.pos-1, "invalid hex digit %q", c)
		}
	}

	return nil, p.errorf(offset, "unclosed hex string")
}

// name parses /Name, decoding #xx escapes.
func (p *Parser) name() core.Name {
	p.sc.pos++
	raw := p.sc.regular()

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '#' && i+2 < len(raw) && isHexDigit(raw[i+1]) && isHexDigit(raw[i+2]) {
			var b [1]byte
			hex.Decode(b[:], raw[i+1:i+3])
			out = append(out, b[0])
			i += 2
			continue
		}
		out = append(out, raw[i])
	}

	return core.Name(out)
}

// array parses [...] of operands.
func (p *Parser) array() (core.Object, error) {
	offset := p.sc.pos
	p.sc.pos++

	arr := core.Array{}
	for {
		p.sc.skipSpace()
		if p.sc.eof() {
			return nil, p.errorf(offset, "unclosed array")
		}
		if p.sc.peek() == ']' {
			p.sc.pos++
			return arr, nil
		}

		obj, err := p.operand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// dict parses <<...>>, which appears in inline images and marked content.
func (p *Parser) dict() (core.Object, error) {
	offset := p.sc.pos
	p.sc.pos += 2

	dict := core.Dict{}
	for {
		p.sc.skipSpace()
		if p.sc.eof() {
			return nil, p.errorf(offset, "unclosed dictionary")
		}
		if p.sc.peek() == '>' && p.sc.peekAt(1) == '>' {
			p.sc.pos += 2
			return dict, nil
		}
		if p.sc.peek() != '/' {
			return nil, p.errorf(p.sc.pos, "dictionary key must be a name")
		}

		key := p.name()
		p.sc.skipSpace()
		if p.sc.eof() {
			return nil, p.errorf(offset, "unclosed dictionary")
		}

		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		dict[string(key)] = value
	}
}
