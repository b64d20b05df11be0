package text

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/readorder/model"
)

// ErrInvalidGeometry is reported for placements whose coordinates or space
// width are NaN or infinite.
var ErrInvalidGeometry = errors.New("text: invalid geometry")

// GeometryError describes a placement that could not be located.
type GeometryError struct {
	Start, End     model.Point
	CharSpaceWidth float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("text: invalid geometry: baseline (%g, %g)-(%g, %g), space width %g",
		e.Start.X, e.Start.Y, e.End.X, e.End.Y, e.CharSpaceWidth)
}

// Unwrap makes errors.Is(err, ErrInvalidGeometry) hold.
func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// FullTurn is one revolution in the units of orientation magnitudes
// (tenths of a degree).
const FullTurn = 3600

// Locator exposes the geometric identity of a chunk that ordering and
// assembly depend on.
type Locator interface {
	// OrientationMagnitude is the baseline angle in tenths of a degree.
	OrientationMagnitude() int
	// DistPerpendicular identifies the line a chunk sits on.
	DistPerpendicular() int
	// DistParallelStart and DistParallelEnd are positions along the baseline.
	DistParallelStart() float64
	DistParallelEnd() float64
	// CharSpaceWidth is the expected width of a space at this chunk's size.
	CharSpaceWidth() float64
}

// Location is the immutable geometric identity of a chunk. Build one with
// NewLocation; the zero value is an empty chunk at the origin.
type Location struct {
	start, end           model.Point
	orientationMagnitude int
	distPerpendicular    int
	distParallelStart    float64
	distParallelEnd      float64
	charSpaceWidth       float64
}

// NewLocation projects a baseline from start to end onto the frame of its own
// orientation. Points are in device space (y down). A zero length baseline is
// treated as unrotated.
func NewLocation(start, end model.Point, charSpaceWidth float64) (Location, error) {
	invalid := &GeometryError{Start: start, End: end, CharSpaceWidth: charSpaceWidth}
	if !start.IsFinite() || !end.IsFinite() || math.IsNaN(charSpaceWidth) || math.IsInf(charSpaceWidth, 0) {
		return Location{}, invalid
	}

	magnitude, cos, sin := orientation(start, end)

	// rotate by -orientation: x' = x*cos + y*sin, y' = y*cos - x*sin
	loc := Location{
		start:                start,
		end:                  end,
		orientationMagnitude: magnitude,
		distParallelStart:    start.X*cos + start.Y*sin,
		distParallelEnd:      end.X*cos + end.Y*sin,
		charSpaceWidth:       charSpaceWidth,
	}
	perpendicular := start.Y*cos - start.X*sin

	if !finite(perpendicular) || !finite(loc.distParallelStart) || !finite(loc.distParallelEnd) ||
		math.Abs(perpendicular) > math.MaxInt32 {
		return Location{}, invalid
	}
	loc.distPerpendicular = int(math.Round(perpendicular))

	return loc, nil
}

// orientation returns the quantized angle of the baseline and the cosine and
// sine used to rotate into its frame. Quarter turns use exact values so that
// axis-aligned text carries no rounding noise.
func orientation(start, end model.Point) (magnitude int, cos, sin float64) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx == 0 && dy == 0 {
		return 0, 1, 0
	}

	magnitude = quantizeAngle(math.Atan2(dy, dx))
	switch magnitude {
	case 0:
		return magnitude, 1, 0
	case 900:
		return magnitude, 0, 1
	case 1800:
		return magnitude, -1, 0
	case 2700:
		return magnitude, 0, -1
	}

	length := math.Hypot(dx, dy)
	return magnitude, dx / length, dy / length
}

// quantizeAngle converts radians to tenths of a degree in [0, FullTurn).
func quantizeAngle(radians float64) int {
	tenths := int(math.Round(radians*1800/math.Pi)) % FullTurn
	if tenths < 0 {
		tenths += FullTurn
	}
	return tenths
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Start returns the baseline start point.
func (l Location) Start() model.Point { return l.start }

// End returns the baseline end point.
func (l Location) End() model.Point { return l.end }

func (l Location) OrientationMagnitude() int  { return l.orientationMagnitude }
func (l Location) DistPerpendicular() int     { return l.distPerpendicular }
func (l Location) DistParallelStart() float64 { return l.distParallelStart }
func (l Location) DistParallelEnd() float64   { return l.distParallelEnd }
func (l Location) CharSpaceWidth() float64    { return l.charSpaceWidth }

// SameLine reports whether other shares this location's orientation and
// perpendicular distance.
func (l Location) SameLine(other Locator) bool {
	return l.orientationMagnitude == other.OrientationMagnitude() &&
		l.distPerpendicular == other.DistPerpendicular()
}

// DistanceFromEndOf returns the gap along the baseline between the end of
// other and the start of l. Negative values mean the two overlap.
func (l Location) DistanceFromEndOf(other Locator) float64 {
	return l.distParallelStart - other.DistParallelEnd()
}
