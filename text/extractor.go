package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/readorder/contentstream"
	"github.com/tsawler/readorder/core"
	"github.com/tsawler/readorder/font"
	"github.com/tsawler/readorder/graphicsstate"
	"github.com/tsawler/readorder/model"
)

// ErrOperands is returned when an operator has the wrong number or type of
// operands.
var ErrOperands = errors.New("text: invalid operands")

// Extractor executes the text operators of a content stream and reports every
// shown string to a RenderListener.
type Extractor struct {
	gs       *graphicsstate.GraphicsState
	fonts    map[string]*font.Font
	listener RenderListener
	device   model.Matrix
}

// NewExtractor creates an extractor reporting to listener. Only WithPageHeight
// affects the extractor; other options are accepted so the same set can be
// passed to NewListener.
func NewExtractor(listener RenderListener, opts ...Option) *Extractor {
	c := newConfig(opts)
	return &Extractor{
		gs:       graphicsstate.NewGraphicsState(),
		fonts:    make(map[string]*font.Font),
		listener: listener,
		device:   model.Matrix{1, 0, 0, -1, 0, c.pageHeight},
	}
}

// RegisterFont registers the font selected by name in Tf operators
func (e *Extractor) RegisterFont(name string, f *font.Font) {
	e.fonts[fontKey(name)] = f
}

// Fonts returns the fonts registered in this extractor, including those
// created for unknown names.
func (e *Extractor) Fonts() map[string]*font.Font {
	return e.fonts
}

// Extract runs operations in order. It stops at the first malformed operation.
func (e *Extractor) Extract(operations []contentstream.Operation) error {
	for i, op := range operations {
		if err := e.processOperation(op); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Operator, err)
		}
	}
	return nil
}

// ExtractFromBytes parses a content stream and runs it
func (e *Extractor) ExtractFromBytes(data []byte) error {
	operations, err := contentstream.NewParser(data).Parse()
	if err != nil {
		return fmt.Errorf("parse content stream: %w", err)
	}
	return e.Extract(operations)
}

// processOperation processes a single content stream operation
func (e *Extractor) processOperation(op contentstream.Operation) error {
	switch op.Operator {
	// Graphics state
	case "q":
		e.gs.Save()
	case "Q":
		return e.gs.Restore()
	case "cm":
		m, err := operandsToMatrix(op.Operands)
		if err != nil {
			return err
		}
		e.gs.Transform(m)

	// Text state
	case "BT":
		e.gs.BeginText()
	case "ET":
	case "Tf":
		if len(op.Operands) != 2 {
			return ErrOperands
		}
		name, ok := op.Operands[0].(core.Name)
		if !ok {
			return ErrOperands
		}
		size, err := number(op.Operands[1])
		if err != nil {
			return err
		}
		key := fontKey(string(name))
		e.gs.SetFont(key, size)
		if _, exists := e.fonts[key]; !exists {
			e.fonts[key] = font.NewFont(key)
		}
	case "Tc":
		return e.setNumber(op.Operands, e.gs.SetCharSpacing)
	case "Tw":
		return e.setNumber(op.Operands, e.gs.SetWordSpacing)
	case "Tz":
		return e.setNumber(op.Operands, e.gs.SetHorizontalScaling)
	case "TL":
		return e.setNumber(op.Operands, e.gs.SetLeading)
	case "Ts":
		return e.setNumber(op.Operands, e.gs.SetTextRise)
	case "Tr":
		return e.setNumber(op.Operands, func(v float64) { e.gs.SetRenderingMode(int(v)) })

	// Text positioning
	case "Tm":
		m, err := operandsToMatrix(op.Operands)
		if err != nil {
			return err
		}
		e.gs.SetTextMatrix(m)
	case "Td", "TD":
		tx, ty, err := pair(op.Operands)
		if err != nil {
			return err
		}
		if op.Operator == "TD" {
			e.gs.TranslateTextSetLeading(tx, ty)
		} else {
			e.gs.TranslateText(tx, ty)
		}
	case "T*":
		e.gs.NextLine()

	// Text showing
	case "Tj":
		if len(op.Operands) != 1 {
			return ErrOperands
		}
		return e.showString(op.Operands[0])
	case "TJ":
		if len(op.Operands) != 1 {
			return ErrOperands
		}
		arr, ok := op.Operands[0].(core.Array)
		if !ok {
			return ErrOperands
		}
		return e.showTextArray(arr)
	case "'":
		if len(op.Operands) != 1 {
			return ErrOperands
		}
		e.gs.NextLine()
		return e.showString(op.Operands[0])
	case "\"":
		if len(op.Operands) != 3 {
			return ErrOperands
		}
		wordSpacing, err := number(op.Operands[0])
		if err != nil {
			return err
		}
		charSpacing, err := number(op.Operands[1])
		if err != nil {
			return err
		}
		e.gs.SetWordSpacing(wordSpacing)
		e.gs.SetCharSpacing(charSpacing)
		e.gs.NextLine()
		return e.showString(op.Operands[2])
	}

	return nil
}

func (e *Extractor) setNumber(operands []core.Object, set func(float64)) error {
	if len(operands) != 1 {
		return ErrOperands
	}
	v, err := number(operands[0])
	if err != nil {
		return err
	}
	set(v)
	return nil
}

func (e *Extractor) showString(obj core.Object) error {
	s, ok := obj.(core.String)
	if !ok {
		return ErrOperands
	}
	e.showText([]byte(s))
	return nil
}

// showText reports one shown string and advances the text position past it
func (e *Extractor) showText(data []byte) {
	f := e.currentFont()
	decoded := f.DecodeString(data)

	width := f.GetStringWidth(decoded) * e.gs.Text.FontSize / 1000.0
	start, end, advance := e.gs.Baseline(width, decoded)
	spaceWidth := e.gs.SpaceWidth(f.SpaceWidth())

	e.listener.OnTextPlacement(decoded, e.device.Transform(start), e.device.Transform(end), spaceWidth)
	e.gs.Move(advance)
}

// showTextArray processes text array showing operation
func (e *Extractor) showTextArray(arr core.Array) error {
	for _, item := range arr {
		switch v := item.(type) {
		case core.String:
			e.showText([]byte(v))
		case core.Int, core.Real:
			adjustment, _ := core.Number(v)
			e.gs.Move(e.gs.Kern(adjustment))
		default:
			return ErrOperands
		}
	}
	return nil
}

func (e *Extractor) currentFont() *font.Font {
	key := e.gs.Text.FontName
	f, ok := e.fonts[key]
	if !ok {
		f = font.NewFont(key)
		e.fonts[key] = f
	}
	return f
}

// ExtractText parses a content stream, drives a new Listener with it and
// returns the page text in reading order along with the dropped placements.
func ExtractText(data []byte, opts ...Option) (string, []Warning, error) {
	listener := NewListener(opts...)
	if err := NewExtractor(listener, opts...).ExtractFromBytes(data); err != nil {
		return "", listener.Warnings(), err
	}
	return listener.OnRenderingComplete(), listener.Warnings(), nil
}

// Helper functions

func fontKey(name string) string {
	if !strings.HasPrefix(name, "/") {
		return "/" + name
	}
	return name
}

func number(obj core.Object) (float64, error) {
	v, ok := core.Number(obj)
	if !ok {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrOperands, core.TypeName(obj))
	}
	return v, nil
}

func pair(operands []core.Object) (float64, float64, error) {
	if len(operands) != 2 {
		return 0, 0, ErrOperands
	}
	a, err := number(operands[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := number(operands[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func operandsToMatrix(operands []core.Object) (model.Matrix, error) {
	if len(operands) != 6 {
		return model.Identity(), ErrOperands
	}

	var m model.Matrix
	for i, op := range operands {
		v, err := number(op)
		if err != nil {
			return model.Identity(), err
		}
		m[i] = v
	}
	return m, nil
}
