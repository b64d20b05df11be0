package text

import (
	"io"
	"log/slog"
)

// config holds the settings shared by a Listener and the Extractor driving it.
type config struct {
	leftToRight   bool
	autoDirection bool
	spaceGapRatio float64
	paragraphGap  float64
	pageHeight    float64
	logger        *slog.Logger
}

// Option configures a Listener or an Extractor.
type Option func(*config)

// defaultConfig returns left-to-right ordering with default thresholds and a
// logger that discards everything.
func defaultConfig() config {
	return config{
		leftToRight:   true,
		spaceGapRatio: DefaultSpaceGapRatio,
		paragraphGap:  DefaultParagraphGap,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLeftToRight selects the direction chunks are ordered along a line and
// turns off automatic detection.
func WithLeftToRight(leftToRight bool) Option {
	return func(c *config) {
		c.leftToRight = leftToRight
		c.autoDirection = false
	}
}

// WithAutoDirection orders lines right-to-left when right-to-left characters
// dominate the collected text.
func WithAutoDirection() Option {
	return func(c *config) {
		c.autoDirection = true
	}
}

// WithSpaceGapRatio sets the fraction of a space width a gap must reach to
// become an inferred space.
func WithSpaceGapRatio(ratio float64) Option {
	return func(c *config) {
		c.spaceGapRatio = ratio
	}
}

// WithParagraphGap sets the line distance above which a blank line is
// emitted. Zero disables paragraph breaks.
func WithParagraphGap(gap float64) Option {
	return func(c *config) {
		c.paragraphGap = gap
	}
}

// WithPageHeight sets the page height used by the Extractor to flip PDF user
// space (y up) into device space (y down). Without it y is negated.
func WithPageHeight(height float64) Option {
	return func(c *config) {
		c.pageHeight = height
	}
}

// WithLogger sets the logger that records dropped fragments.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
