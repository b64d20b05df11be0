package text

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/tsawler/readorder/model"
)

// RenderListener receives text placements from a content stream driver in
// the order they are drawn.
type RenderListener interface {
	// OnTextPlacement reports a run of text drawn along the baseline from
	// start to end (device space), with the width of a space at its size.
	OnTextPlacement(text string, start, end model.Point, spaceWidth float64)
}

// Warning records a placement that was dropped.
type Warning struct {
	// Index is the placement's position in emission order.
	Index int
	Text  string
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("placement %d (%q): %v", w.Index, w.Text, w.Err)
}

// Listener collects placements for one page and produces its text in reading
// order. A Listener is not safe for concurrent use; run one per page.
type Listener struct {
	config     config
	chunks     []Chunk
	placements int
	warnings   []Warning
}

var _ RenderListener = (*Listener)(nil)

// NewListener creates a listener.
func NewListener(opts ...Option) *Listener {
	return &Listener{config: newConfig(opts)}
}

// OnTextPlacement records a placement. Empty text is ignored and placements
// with invalid geometry are dropped with a warning.
func (l *Listener) OnTextPlacement(text string, start, end model.Point, spaceWidth float64) {
	index := l.placements
	l.placements++

	if text == "" {
		return
	}

	loc, err := NewLocation(start, end, spaceWidth)
	if err != nil {
		l.warnings = append(l.warnings, Warning{Index: index, Text: text, Err: err})
		l.config.logger.Debug("dropped text fragment",
			"index", index,
			"text", text,
			"reason", err,
			"invalid_geometry", errors.Is(err, ErrInvalidGeometry))
		return
	}

	l.chunks = append(l.chunks, NewChunk(text, loc))
}

// OnRenderingComplete sorts the collected chunks and returns the assembled
// text. It may be called again and returns the same text.
func (l *Listener) OnRenderingComplete() string {
	sorted, assembler := l.prepare()
	text := assembler.Assemble(sorted)

	l.config.logger.Debug("assembled page text",
		"placements", l.placements,
		"chunks", len(l.chunks),
		"dropped", len(l.warnings))

	return text
}

// Segments returns the sorted output as a lazy sequence of segments.
func (l *Listener) Segments() iter.Seq[Segment] {
	sorted, assembler := l.prepare()
	return assembler.Segments(sorted)
}

// Lines returns the sorted output grouped into lines.
func (l *Listener) Lines() []Line {
	sorted, assembler := l.prepare()
	return assembler.Lines(sorted)
}

// prepare sorts a copy of the chunks and builds the matching assembler.
func (l *Listener) prepare() ([]Chunk, *Assembler) {
	leftToRight := l.LeftToRight()

	sorted := slices.Clone(l.chunks)
	NewComparator(leftToRight).SortChunks(sorted)

	return sorted, NewAssembler(AssemblerConfig{
		LeftToRight:   leftToRight,
		SpaceGapRatio: l.config.spaceGapRatio,
		ParagraphGap:  l.config.paragraphGap,
	})
}

// LeftToRight reports the ordering direction in effect, resolving automatic
// detection against the chunks collected so far.
func (l *Listener) LeftToRight() bool {
	if l.config.autoDirection {
		return dominantDirection(l.chunks) != RTL
	}
	return l.config.leftToRight
}

// Chunks returns the collected chunks in emission order.
func (l *Listener) Chunks() []Chunk {
	return slices.Clone(l.chunks)
}

// Dropped returns the number of placements dropped for invalid geometry.
func (l *Listener) Dropped() int {
	return len(l.warnings)
}

// Warnings returns the dropped placements.
func (l *Listener) Warnings() []Warning {
	return slices.Clone(l.warnings)
}
