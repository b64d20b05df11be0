package text

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(l *Listener, placements []placement) {
	for _, p := range placements {
		l.OnTextPlacement(p.text, p.start, p.end, p.spaceWidth)
	}
}

func TestListenerEndToEnd(t *testing.T) {
	sameLine := NewListener()
	sameLine.OnTextPlacement("Hello", pt(0, 0), pt(50, 0), 5)
	sameLine.OnTextPlacement("World", pt(60, 0), pt(110, 0), 5)
	assert.Equal(t, "Hello World", sameLine.OnRenderingComplete())

	nextLine := NewListener()
	nextLine.OnTextPlacement("Hello", pt(0, 0), pt(50, 0), 5)
	nextLine.OnTextPlacement("World", pt(60, 50), pt(110, 50), 5)
	assert.Equal(t, "Hello\nWorld", nextLine.OnRenderingComplete())
}

func TestListenerEmpty(t *testing.T) {
	l := NewListener()
	assert.Equal(t, "", l.OnRenderingComplete())
	assert.Empty(t, l.Chunks())
	assert.Zero(t, l.Dropped())
}

func TestListenerIgnoresEmptyText(t *testing.T) {
	l := NewListener()
	l.OnTextPlacement("", pt(0, 0), pt(10, 0), 5)
	l.OnTextPlacement("a", pt(0, 0), pt(10, 0), 5)

	require.Len(t, l.Chunks(), 1)
	assert.Zero(t, l.Dropped())
}

func TestListenerDropsInvalidGeometry(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := NewListener(WithLogger(logger))
	l.OnTextPlacement("Hello", pt(0, 0), pt(50, 0), 5)
	l.OnTextPlacement("bad", pt(math.NaN(), 0), pt(10, 0), 5)
	l.OnTextPlacement("World", pt(60, 0), pt(110, 0), 5)

	assert.Equal(t, "Hello World", l.OnRenderingComplete())
	assert.Equal(t, 1, l.Dropped())

	warnings := l.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Index)
	assert.Equal(t, "bad", warnings[0].Text)
	assert.True(t, errors.Is(warnings[0].Err, ErrInvalidGeometry))
	assert.Contains(t, warnings[0].String(), "placement 1")

	assert.Contains(t, logs.String(), "dropped text fragment")
	assert.Contains(t, logs.String(), "text=bad")
}

func TestListenerDeterministic(t *testing.T) {
	placements := []placement{
		{"lorem", pt(0, 100), pt(40, 100), 5},
		{"ipsum", pt(45, 100), pt(85, 100), 5},
		{"dolor", pt(0, 112), pt(40, 112), 5},
		{"sit", pt(48, 112), pt(70, 112), 5},
		{"amet", pt(0, 124), pt(35, 124), 5},
	}

	first := NewListener()
	feed(first, placements)
	want := first.OnRenderingComplete()

	for i := 0; i < 5; i++ {
		l := NewListener()
		feed(l, placements)
		require.Equal(t, want, l.OnRenderingComplete())
	}

	assert.Equal(t, want, first.OnRenderingComplete(), "second call should return the same text")
	assert.Equal(t, "lorem ipsum\ndolor sit\namet", want)
}

func TestListenerEmissionOrderWithinLine(t *testing.T) {
	placements := []placement{
		{"one", pt(0, 50), pt(30, 50), 5},
		{"two", pt(40, 50), pt(70, 50), 5},
		{"three", pt(80, 50), pt(130, 50), 5},
		{"four", pt(140, 50), pt(180, 50), 5},
	}

	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 20; i++ {
		shuffled := slices.Clone(placements)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		l := NewListener()
		feed(l, shuffled)
		require.Equal(t, "one two three four", l.OnRenderingComplete())
	}
}

func TestListenerRightToLeft(t *testing.T) {
	placements := []placement{
		{"ב", pt(10, 0), pt(20, 0), 5},
		{"א", pt(20, 0), pt(30, 0), 5},
	}

	ltr := NewListener(WithLeftToRight(true))
	feed(ltr, placements)
	rtl := NewListener(WithLeftToRight(false))
	feed(rtl, placements)

	assert.Equal(t, "בא", ltr.OnRenderingComplete())
	assert.Equal(t, "אב", rtl.OnRenderingComplete())
	assert.False(t, rtl.LeftToRight())
}

func TestListenerAutoDirection(t *testing.T) {
	hebrew := NewListener(WithAutoDirection())
	feed(hebrew, []placement{
		{"שלום", pt(0, 0), pt(40, 0), 5},
		{"עולם", pt(50, 0), pt(90, 0), 5},
	})
	assert.False(t, hebrew.LeftToRight())
	assert.Equal(t, "עולם שלום", hebrew.OnRenderingComplete())

	latin := NewListener(WithAutoDirection())
	feed(latin, []placement{
		{"Hello", pt(0, 0), pt(50, 0), 5},
		{"World", pt(60, 0), pt(110, 0), 5},
	})
	assert.True(t, latin.LeftToRight())
	assert.Equal(t, "Hello World", latin.OnRenderingComplete())
}

func TestListenerOptions(t *testing.T) {
	placements := []placement{
		{"a", pt(0, 100), pt(10, 100), 5},
		{"b", pt(13, 100), pt(23, 100), 5},
		{"c", pt(0, 150), pt(10, 150), 5},
	}

	defaults := NewListener()
	feed(defaults, placements)
	assert.Equal(t, "a b\nc", defaults.OnRenderingComplete())

	tuned := NewListener(WithSpaceGapRatio(1.0), WithParagraphGap(30))
	feed(tuned, placements)
	assert.Equal(t, "ab\n\nc", tuned.OnRenderingComplete())
}

func TestListenerSegmentsAndLines(t *testing.T) {
	l := NewListener()
	feed(l, []placement{
		{"World", pt(60, 0), pt(110, 0), 5},
		{"Hello", pt(0, 0), pt(50, 0), 5},
		{"Again", pt(0, 20), pt(50, 20), 5},
	})

	var sb strings.Builder
	for seg := range l.Segments() {
		sb.WriteString(seg.Text)
	}
	assert.Equal(t, l.OnRenderingComplete(), sb.String())

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Hello World", lines[0].Text)
	assert.Equal(t, "Again", lines[1].Text)

	// emission order is preserved in Chunks
	assert.Equal(t, []string{"World", "Hello", "Again"}, texts(l.Chunks()))
}

func TestWithLoggerNil(t *testing.T) {
	l := NewListener(WithLogger(nil))
	l.OnTextPlacement("x", pt(math.Inf(1), 0), pt(0, 0), 5)
	assert.Equal(t, 1, l.Dropped())
}
