package graphicsstate

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/readorder/model"
)

// ErrStackUnderflow is returned by Restore when there is no saved state.
var ErrStackUnderflow = errors.New("graphicsstate: stack underflow")

// GraphicsState represents the PDF graphics state
type GraphicsState struct {
	// Current Transformation Matrix
	CTM model.Matrix

	// Text state
	Text TextState

	// Graphics state stack (for q/Q operators)
	stack []savedState
}

// savedState is what q pushes. The text matrices are not part of the saved
// graphics state in PDF but travel with it here so a Q inside BT is harmless.
type savedState struct {
	ctm  model.Matrix
	text TextState
}

// TextState represents text-specific state
type TextState struct {
	// Font and size
	FontName string
	FontSize float64

	// Character and word spacing
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling (percentage)
	HorizontalScaling float64

	// Leading (line spacing)
	Leading float64

	// Text rendering mode
	RenderingMode int

	// Text rise
	Rise float64

	// Text matrices
	TextMatrix     model.Matrix
	TextLineMatrix model.Matrix
}

// NewGraphicsState creates a new graphics state with default values
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM: model.Identity(),
		Text: TextState{
			FontSize:          12.0,
			HorizontalScaling: 100.0,
			TextMatrix:        model.Identity(),
			TextLineMatrix:    model.Identity(),
		},
	}
}

// Save pushes the current graphics state onto the stack (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, savedState{ctm: gs.CTM, text: gs.Text})
}

// Restore pops a graphics state from the stack (Q operator)
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return ErrStackUnderflow
	}

	saved := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]

	gs.CTM = saved.ctm
	gs.Text = saved.text

	return nil
}

// Depth returns the number of saved states.
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// Transform applies a transformation matrix to CTM (cm operator)
func (gs *GraphicsState) Transform(m model.Matrix) {
	gs.CTM = m.Multiply(gs.CTM)
}

// SetFont sets the current font (Tf operator)
func (gs *GraphicsState) SetFont(name string, size float64) {
	gs.Text.FontName = name
	gs.Text.FontSize = size
}

// SetCharSpacing sets character spacing (Tc operator)
func (gs *GraphicsState) SetCharSpacing(spacing float64) {
	gs.Text.CharSpacing = spacing
}

// SetWordSpacing sets word spacing (Tw operator)
func (gs *GraphicsState) SetWordSpacing(spacing float64) {
	gs.Text.WordSpacing = spacing
}

// SetHorizontalScaling sets horizontal scaling (Tz operator)
func (gs *GraphicsState) SetHorizontalScaling(scale float64) {
	gs.Text.HorizontalScaling = scale
}

// SetLeading sets text leading (TL operator)
func (gs *GraphicsState) SetLeading(leading float64) {
	gs.Text.Leading = leading
}

// SetRenderingMode sets text rendering mode (Tr operator)
func (gs *GraphicsState) SetRenderingMode(mode int) {
	gs.Text.RenderingMode = mode
}

// SetTextRise sets text rise (Ts operator)
func (gs *GraphicsState) SetTextRise(rise float64) {
	gs.Text.Rise = rise
}

// BeginText initializes text state (BT operator)
func (gs *GraphicsState) BeginText() {
	gs.Text.TextMatrix = model.Identity()
	gs.Text.TextLineMatrix = model.Identity()
}

// SetTextMatrix sets the text matrix (Tm operator)
func (gs *GraphicsState) SetTextMatrix(m model.Matrix) {
	gs.Text.TextMatrix = m
	gs.Text.TextLineMatrix = m
}

// TranslateText translates the text matrix (Td operator)
func (gs *GraphicsState) TranslateText(tx, ty float64) {
	// Tm = Tlm = T(tx, ty) × Tlm
	gs.Text.TextLineMatrix = model.Translate(tx, ty).Multiply(gs.Text.TextLineMatrix)
	gs.Text.TextMatrix = gs.Text.TextLineMatrix
}

// TranslateTextSetLeading translates text and sets leading (TD operator)
func (gs *GraphicsState) TranslateTextSetLeading(tx, ty float64) {
	gs.SetLeading(-ty)
	gs.TranslateText(tx, ty)
}

// NextLine moves to next line (T* operator)
func (gs *GraphicsState) NextLine() {
	gs.TranslateText(0, -gs.Text.Leading)
}

// textToUser maps text space to user space.
func (gs *GraphicsState) textToUser() model.Matrix {
	return gs.Text.TextMatrix.Multiply(gs.CTM)
}

// Advance returns the horizontal text-space displacement of showing text whose
// glyphs measure glyphWidth (already multiplied by the font size):
// tx = (w0*Tfs + Tc*chars + Tw*spaces) * Th.
func (gs *GraphicsState) Advance(glyphWidth float64, text string) float64 {
	chars := float64(utf8.RuneCountInString(text))
	spaces := float64(strings.Count(text, " "))

	scale := gs.Text.HorizontalScaling / 100.0
	return (glyphWidth + chars*gs.Text.CharSpacing + spaces*gs.Text.WordSpacing) * scale
}

// Baseline returns the user space start and end of the baseline along which
// text is drawn, and the text-space advance to pass to Move afterwards.
func (gs *GraphicsState) Baseline(glyphWidth float64, text string) (start, end model.Point, advance float64) {
	advance = gs.Advance(glyphWidth, text)
	m := gs.textToUser()
	start = m.Transform(model.Point{X: 0, Y: gs.Text.Rise})
	end = m.Transform(model.Point{X: advance, Y: gs.Text.Rise})
	return start, end, advance
}

// Move shifts the text matrix along the baseline by tx text-space units
// (after Tj, or for a TJ position adjustment).
func (gs *GraphicsState) Move(tx float64) {
	gs.Text.TextMatrix = model.Translate(tx, 0).Multiply(gs.Text.TextMatrix)
}

// Kern converts a TJ adjustment (thousandths of an em, positive moves
// backwards) into a text-space displacement.
func (gs *GraphicsState) Kern(adjustment float64) float64 {
	return -adjustment / 1000.0 * gs.Text.FontSize * gs.Text.HorizontalScaling / 100.0
}

// SpaceWidth returns the user space length of a space glyph whose width is
// spaceUnits (1000ths of an em) in the current text state.
func (gs *GraphicsState) SpaceWidth(spaceUnits float64) float64 {
	w := gs.Advance(spaceUnits*gs.Text.FontSize/1000.0, " ")
	v := gs.textToUser().TransformVector(model.Point{X: w, Y: 0})
	return v.Distance(model.Point{})
}

// GetTextPosition returns the current text position in user space
func (gs *GraphicsState) GetTextPosition() (x, y float64) {
	p := gs.textToUser().Transform(model.Point{X: 0, Y: gs.Text.Rise})
	return p.X, p.Y
}

// GetEffectiveFontSize returns the font size accounting for text matrix and
// CTM scaling (Tf is often 1 with the size carried by Tm).
func (gs *GraphicsState) GetEffectiveFontSize() float64 {
	v := gs.textToUser().TransformVector(model.Point{X: 0, Y: gs.Text.FontSize})
	return v.Distance(model.Point{})
}
