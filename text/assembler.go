package text

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/readorder/model"
)

// SegmentKind distinguishes chunk text from the separators the assembler
// infers between chunks.
type SegmentKind int

const (
	// SegmentText is the text of one chunk.
	SegmentText SegmentKind = iota
	// SegmentSpace is an inferred word space.
	SegmentSpace
	// SegmentLineBreak is an inferred line break.
	SegmentLineBreak
	// SegmentParagraphBreak is an inferred line break followed by a blank line.
	SegmentParagraphBreak
)

// String returns the name of the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentText:
		return "Text"
	case SegmentSpace:
		return "Space"
	case SegmentLineBreak:
		return "LineBreak"
	case SegmentParagraphBreak:
		return "ParagraphBreak"
	default:
		return "Unknown"
	}
}

// Segment is one piece of assembled output. Location is set for SegmentText
// only.
type Segment struct {
	Kind     SegmentKind
	Text     string
	Location *Location
}

// IsBreak reports whether the segment ends a line.
func (s Segment) IsBreak() bool {
	return s.Kind == SegmentLineBreak || s.Kind == SegmentParagraphBreak
}

var (
	spaceSegment          = Segment{Kind: SegmentSpace, Text: " "}
	lineBreakSegment      = Segment{Kind: SegmentLineBreak, Text: "\n"}
	paragraphBreakSegment = Segment{Kind: SegmentParagraphBreak, Text: "\n\n"}
)

// Default assembly thresholds.
const (
	// DefaultSpaceGapRatio is the fraction of a space width a same-line gap
	// must reach to count as a word boundary.
	DefaultSpaceGapRatio = 0.5
	// DefaultParagraphGap disables paragraph detection.
	DefaultParagraphGap = 0.0
)

// AssemblerConfig holds the assembly policy knobs.
type AssemblerConfig struct {
	// LeftToRight must match the comparator used to sort the chunks.
	LeftToRight bool

	// SpaceGapRatio scales the previous chunk's space width into the gap
	// threshold for inferring a space.
	SpaceGapRatio float64

	// ParagraphGap, when positive, is the perpendicular distance between
	// consecutive lines of one orientation above which a blank line is
	// emitted instead of a single line break.
	ParagraphGap float64
}

// DefaultAssemblerConfig returns left-to-right assembly with default thresholds.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		LeftToRight:   true,
		SpaceGapRatio: DefaultSpaceGapRatio,
		ParagraphGap:  DefaultParagraphGap,
	}
}

// Assembler merges sorted chunks into text, inferring word spaces and line
// breaks from their geometry.
type Assembler struct {
	config AssemblerConfig
}

// NewAssembler creates an assembler.
func NewAssembler(config AssemblerConfig) *Assembler {
	return &Assembler{config: config}
}

// Segments returns a lazy sequence over the output of chunks, which must
// already be in comparator order. Each range over the sequence is a fresh
// single pass.
func (a *Assembler) Segments(chunks []Chunk) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var prev *Chunk
		for i := range chunks {
			curr := &chunks[i]
			if prev != nil {
				if sep, ok := a.separator(prev, curr); ok && !yield(sep) {
					return
				}
			}
			if !yield(Segment{Kind: SegmentText, Text: curr.text, Location: &curr.location}) {
				return
			}
			prev = curr
		}
	}
}

// Assemble returns the text of chunks, which must already be in comparator
// order.
func (a *Assembler) Assemble(chunks []Chunk) string {
	var sb strings.Builder
	for seg := range a.Segments(chunks) {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// separator returns the inferred segment between prev and curr, if any.
func (a *Assembler) separator(prev, curr *Chunk) (Segment, bool) {
	p, c := prev.location, curr.location

	if !c.SameLine(p) {
		if a.isParagraphBreak(p, c) {
			return paragraphBreakSegment, true
		}
		return lineBreakSegment, true
	}

	if a.isWordBoundary(prev, curr) {
		return spaceSegment, true
	}
	return Segment{}, false
}

func (a *Assembler) isParagraphBreak(prev, curr Location) bool {
	if a.config.ParagraphGap <= 0 || prev.orientationMagnitude != curr.orientationMagnitude {
		return false
	}
	jump := curr.distPerpendicular - prev.distPerpendicular
	if jump < 0 {
		jump = -jump
	}
	return float64(jump) > a.config.ParagraphGap
}

// isWordBoundary decides whether a space belongs between two chunks on the
// same line. Overlapping chunks, including ones that run backwards, are
// joined without a space.
func (a *Assembler) isWordBoundary(prev, curr *Chunk) bool {
	if endsWithSpace(prev.text) || startsWithSpace(curr.text) {
		return false
	}

	gap := a.gap(prev.location, curr.location)
	if gap <= 0 {
		return false
	}
	return gap >= a.config.SpaceGapRatio*prev.location.charSpaceWidth
}

// gap is the distance along the reading direction from the end of prev to
// the start of curr.
func (a *Assembler) gap(prev, curr Location) float64 {
	if a.config.LeftToRight {
		return curr.DistanceFromEndOf(prev)
	}
	return prev.distParallelStart - curr.distParallelEnd
}

func endsWithSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

// Line is one assembled line of text.
type Line struct {
	Text string

	// Orientation and Perpendicular identify the line.
	Orientation   int
	Perpendicular int

	// Start is the baseline start of the first chunk and End the baseline
	// end of the last one.
	Start, End model.Point

	// ParagraphStart is set when a paragraph break preceded the line.
	ParagraphStart bool
}

// Lines groups the assembled output of chunks into lines.
func (a *Assembler) Lines(chunks []Chunk) []Line {
	var lines []Line
	var sb strings.Builder
	var current *Line
	paragraph := false

	flush := func() {
		if current == nil {
			return
		}
		current.Text = sb.String()
		lines = append(lines, *current)
		current = nil
		sb.Reset()
	}

	for seg := range a.Segments(chunks) {
		switch {
		case seg.IsBreak():
			flush()
			paragraph = seg.Kind == SegmentParagraphBreak
		case seg.Kind == SegmentText:
			if current == nil {
				current = &Line{
					Orientation:    seg.Location.orientationMagnitude,
					Perpendicular:  seg.Location.distPerpendicular,
					Start:          seg.Location.start,
					ParagraphStart: paragraph,
				}
			}
			current.End = seg.Location.end
			sb.WriteString(seg.Text)
		default:
			sb.WriteString(seg.Text)
		}
	}
	flush()

	return lines
}
