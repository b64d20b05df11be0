package text

import (
	"cmp"
	"slices"
)

// Comparator orders chunks for reading: by orientation, then by line, then
// along the line in the configured direction.
type Comparator struct {
	leftToRight bool
}

// NewComparator returns a comparator. leftToRight selects ascending parallel
// start positions; otherwise descending end positions are used.
func NewComparator(leftToRight bool) Comparator {
	return Comparator{leftToRight: leftToRight}
}

// DefaultComparator returns a left-to-right comparator.
func DefaultComparator() Comparator {
	return NewComparator(true)
}

// LeftToRight reports the direction the comparator was built with.
func (c Comparator) LeftToRight() bool {
	return c.leftToRight
}

// Compare returns a negative number when a reads before b, a positive number
// when it reads after, and zero when they are tied.
func (c Comparator) Compare(a, b Locator) int {
	if pa, ok := a.(*Location); ok {
		if pb, ok := b.(*Location); ok && pa == pb {
			return 0
		}
	}

	if result := cmp.Compare(a.OrientationMagnitude(), b.OrientationMagnitude()); result != 0 {
		return result
	}

	if result := cmp.Compare(a.DistPerpendicular(), b.DistPerpendicular()); result != 0 {
		return result
	}

	if c.leftToRight {
		return cmp.Compare(a.DistParallelStart(), b.DistParallelStart())
	}
	return cmp.Compare(b.DistParallelEnd(), a.DistParallelEnd())
}

// CompareChunks compares the locations of two chunks.
func (c Comparator) CompareChunks(a, b Chunk) int {
	return c.Compare(&a.location, &b.location)
}

// SortChunks sorts chunks into reading order in place. The sort is stable so
// fully tied chunks keep their emission order.
func (c Comparator) SortChunks(chunks []Chunk) {
	slices.SortStableFunc(chunks, c.CompareChunks)
}
