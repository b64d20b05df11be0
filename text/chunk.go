package text

import "fmt"

// Chunk is a run of text produced by one placement, paired with where it was
// drawn. Chunks are immutable.
type Chunk struct {
	text     string
	location Location
}

// NewChunk creates a chunk.
func NewChunk(text string, location Location) Chunk {
	return Chunk{text: text, location: location}
}

// Text returns the chunk's text.
func (c Chunk) Text() string { return c.text }

// Location returns the chunk's geometry.
func (c Chunk) Location() Location { return c.location }

func (c Chunk) String() string {
	return fmt.Sprintf("%q@(o=%d p=%d %.2f..%.2f)", c.text,
		c.location.orientationMagnitude, c.location.distPerpendicular,
		c.location.distParallelStart, c.location.distParallelEnd)
}
