// Package text reconstructs reading-order text from positioned text runs.
//
// A content stream draws text in whatever order its producer chose. Every
// shown string is reported to a [RenderListener] as a baseline segment in
// device space (y grows downward). The [Listener] turns each placement into a
// [Chunk] with a [Location], sorts the chunks into reading order with a
// [Comparator] and joins them with an [Assembler], which infers the spaces
// and line breaks the stream never drew.
//
// # Extraction
//
// [ExtractText] runs the whole pipeline on raw content stream bytes:
//
//	page, warnings, err := text.ExtractText(data, text.WithPageHeight(792))
//
// The pieces can also be driven separately:
//
//	listener := text.NewListener(text.WithLeftToRight(false))
//	extractor := text.NewExtractor(listener, text.WithPageHeight(792))
//	if err := extractor.ExtractFromBytes(data); err != nil {
//		return err
//	}
//	page := listener.OnRenderingComplete()
//
// # Ordering
//
// Chunks are grouped by orientation (tenths of a degree), then by the
// perpendicular distance of their baseline, then ordered along the baseline.
// Chunks on the same line are ordered by start position for left-to-right
// text and by descending end position for right-to-left text.
//
// # Spacing
//
// A gap between two chunks on one line becomes a space when it reaches
// [DefaultSpaceGapRatio] of the previous chunk's space width. A change of line
// becomes a newline, or a blank line when [WithParagraphGap] is set and the
// lines are further apart than the gap.
//
// # Text Direction
//
// [DetectDirection] classifies text with the Unicode bidi classes.
// [WithAutoDirection] uses it to pick right-to-left ordering when
// right-to-left characters dominate a page.
package text
