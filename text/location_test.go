package text

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/readorder/model"
)

func pt(x, y float64) model.Point {
	return model.Point{X: x, Y: y}
}

// mustLocation builds a location or fails the test
func mustLocation(t *testing.T, start, end model.Point, spaceWidth float64) Location {
	t.Helper()
	loc, err := NewLocation(start, end, spaceWidth)
	if err != nil {
		t.Fatalf("NewLocation(%v, %v, %g) failed: %v", start, end, spaceWidth, err)
	}
	return loc
}

// TestNewLocation tests projection of baselines in each quarter turn
func TestNewLocation(t *testing.T) {
	tests := []struct {
		name          string
		start, end    model.Point
		orientation   int
		perpendicular int
		parallelStart float64
		parallelEnd   float64
	}{
		{"horizontal", pt(10, 100), pt(60, 100), 0, 100, 10, 60},
		{"downward", pt(100, 10), pt(100, 60), 900, -100, 10, 60},
		{"upside down", pt(60, 100), pt(10, 100), 1800, -100, -60, -10},
		{"upward", pt(100, 60), pt(100, 10), 2700, 100, -60, -10},
		{"rounded perpendicular", pt(0, 99.6), pt(40, 99.6), 0, 100, 0, 40},
		{"zero length", pt(5, 7), pt(5, 7), 0, 7, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := mustLocation(t, tt.start, tt.end, 5)

			if loc.OrientationMagnitude() != tt.orientation {
				t.Errorf("OrientationMagnitude() = %d, want %d", loc.OrientationMagnitude(), tt.orientation)
			}
			if loc.DistPerpendicular() != tt.perpendicular {
				t.Errorf("DistPerpendicular() = %d, want %d", loc.DistPerpendicular(), tt.perpendicular)
			}
			if loc.DistParallelStart() != tt.parallelStart {
				t.Errorf("DistParallelStart() = %g, want %g", loc.DistParallelStart(), tt.parallelStart)
			}
			if loc.DistParallelEnd() != tt.parallelEnd {
				t.Errorf("DistParallelEnd() = %g, want %g", loc.DistParallelEnd(), tt.parallelEnd)
			}
			if loc.CharSpaceWidth() != 5 {
				t.Errorf("CharSpaceWidth() = %g, want 5", loc.CharSpaceWidth())
			}
			if loc.Start() != tt.start || loc.End() != tt.end {
				t.Errorf("Start/End = %v/%v, want %v/%v", loc.Start(), loc.End(), tt.start, tt.end)
			}
		})
	}
}

// TestNewLocationDiagonal tests a 45 degree baseline
func TestNewLocationDiagonal(t *testing.T) {
	loc := mustLocation(t, pt(0, 0), pt(30, 30), 5)

	if loc.OrientationMagnitude() != 450 {
		t.Errorf("OrientationMagnitude() = %d, want 450", loc.OrientationMagnitude())
	}
	if loc.DistPerpendicular() != 0 {
		t.Errorf("DistPerpendicular() = %d, want 0", loc.DistPerpendicular())
	}
	want := math.Hypot(30, 30)
	if math.Abs(loc.DistParallelEnd()-want) > 1e-9 {
		t.Errorf("DistParallelEnd() = %g, want %g", loc.DistParallelEnd(), want)
	}
}

// TestOrientationWraps tests that angles just below a full turn fold into 0
func TestOrientationWraps(t *testing.T) {
	zero := mustLocation(t, pt(0, 100), pt(100, 100), 5)
	almostFull := mustLocation(t, pt(0, 100), pt(100, 100-0.0001), 5)

	if zero.OrientationMagnitude() != 0 {
		t.Errorf("0 degrees: OrientationMagnitude() = %d, want 0", zero.OrientationMagnitude())
	}
	if almostFull.OrientationMagnitude() != 0 {
		t.Errorf("360 degrees: OrientationMagnitude() = %d, want 0", almostFull.OrientationMagnitude())
	}
	if !zero.SameLine(almostFull) {
		t.Error("0 and 360 degree baselines at the same height should share a line")
	}

	// a full tenth of a degree below the turn is its own orientation
	tilted := mustLocation(t, pt(0, 0), pt(100, -100*math.Tan(0.1*math.Pi/180)), 5)
	if tilted.OrientationMagnitude() != FullTurn-1 {
		t.Errorf("359.9 degrees: OrientationMagnitude() = %d, want %d", tilted.OrientationMagnitude(), FullTurn-1)
	}
}

// TestQuantizeAngle tests normalization into [0, FullTurn)
func TestQuantizeAngle(t *testing.T) {
	tests := []struct {
		degrees float64
		want    int
	}{
		{0, 0},
		{90, 900},
		{180, 1800},
		{-90, 2700},
		{-180, 1800},
		{12.34, 123},
		{12.36, 124},
		{-0.01, 0},
		{359.99, 0},
	}

	for _, tt := range tests {
		got := quantizeAngle(tt.degrees * math.Pi / 180)
		if got != tt.want {
			t.Errorf("quantizeAngle(%g deg) = %d, want %d", tt.degrees, got, tt.want)
		}
	}
}

// TestNewLocationInvalid tests rejection of non-finite geometry
func TestNewLocationInvalid(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name       string
		start, end model.Point
		spaceWidth float64
	}{
		{"NaN start", pt(nan, 0), pt(10, 0), 5},
		{"NaN end", pt(0, 0), pt(10, nan), 5},
		{"infinite start", pt(0, inf), pt(10, 0), 5},
		{"NaN space width", pt(0, 0), pt(10, 0), nan},
		{"infinite space width", pt(0, 0), pt(10, 0), inf},
		{"perpendicular out of range", pt(0, 1e12), pt(10, 1e12), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocation(tt.start, tt.end, tt.spaceWidth)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("error = %v, want ErrInvalidGeometry", err)
			}

			var geomErr *GeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("error %T is not a *GeometryError", err)
			}
			if geomErr.Error() == "" {
				t.Error("GeometryError should describe the placement")
			}
		})
	}
}

// TestSameLine tests line identity
func TestSameLine(t *testing.T) {
	a := mustLocation(t, pt(0, 100), pt(10, 100), 5)
	b := mustLocation(t, pt(50, 100.4), pt(60, 100.4), 5)
	c := mustLocation(t, pt(0, 101), pt(10, 101), 5)
	d := mustLocation(t, pt(0, 100), pt(0, 110), 5)

	if !a.SameLine(b) {
		t.Error("baselines rounding to the same perpendicular should share a line")
	}
	if a.SameLine(c) {
		t.Error("baselines one unit apart should not share a line")
	}
	if a.SameLine(d) {
		t.Error("baselines of different orientation should not share a line")
	}
}

// TestDistanceFromEndOf tests the parallel gap
func TestDistanceFromEndOf(t *testing.T) {
	a := mustLocation(t, pt(0, 0), pt(50, 0), 5)
	b := mustLocation(t, pt(60, 0), pt(110, 0), 5)
	c := mustLocation(t, pt(40, 0), pt(80, 0), 5)

	if got := b.DistanceFromEndOf(a); got != 10 {
		t.Errorf("b.DistanceFromEndOf(a) = %g, want 10", got)
	}
	if got := c.DistanceFromEndOf(a); got != -10 {
		t.Errorf("c.DistanceFromEndOf(a) = %g, want -10", got)
	}
}
