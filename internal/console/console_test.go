package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEcho_JoinsWithSpaces(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	c.Echo("answer", 42, true)

	assert.Equal(t, "answer 42 true\n", buf.String())
}

func TestStyle_NoColorIsPlain(t *testing.T) {
	c := New(&bytes.Buffer{}, WithNoColor())

	assert.Equal(t, "FAILED!", c.Style("FAILED!", Red, Blue))
	assert.Equal(t, termenv.Ascii, c.ColorProfile())
}

func TestStyle_ANSIProfileEmitsEscapes(t *testing.T) {
	c := New(&bytes.Buffer{}, WithProfile(termenv.ANSI))

	styled := c.Style("x", Red, nil)

	assert.Contains(t, styled, "\x1b[")
	assert.Contains(t, styled, "x")
}

func TestLogger_WritesToConsoleWithoutTime(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	c.Logger().Info("step", "n", 3)

	assert.Equal(t, "level=INFO msg=step n=3\n", buf.String())
}

func TestCapture_QuietWithoutFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	err := c.Capture(false, func(out *Console, _ *Capture) error {
		out.Echo("noise")
		out.Logger().Info("more noise")
		return nil
	})

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestCapture_FlushWritesBufferOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	err := c.Capture(false, func(out *Console, capture *Capture) error {
		out.Echo("line 1")
		out.Echo("line 2")
		capture.Flush = true
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2\n", buf.String())
}

func TestCapture_ErrorForcesFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())
	boom := errors.New("boom")

	err := c.Capture(false, func(out *Console, _ *Capture) error {
		out.Echo("before failure")
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "before failure\n", buf.String())
}

func TestCapture_PanicForcesFlushAndPropagates(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	assert.PanicsWithValue(t, "crash", func() {
		_ = c.Capture(false, func(out *Console, _ *Capture) error {
			out.Echo("trace")
			panic("crash")
		})
	})

	assert.Equal(t, 1, strings.Count(buf.String(), "trace\n"))
}

func TestCapture_PassthroughWritesDirectly(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	err := c.Capture(true, func(out *Console, capture *Capture) error {
		assert.Same(t, c, out)
		out.Echo("live")
		capture.Flush = true
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "live\n", buf.String())
}

func TestCapture_ForcesColorInsideBuffer(t *testing.T) {
	// The parent writes to a buffer, so detection yields Ascii; the capture
	// scope still renders colour as a terminal would.
	buf := &bytes.Buffer{}
	c := New(buf)

	err := c.Capture(false, func(out *Console, capture *Capture) error {
		assert.NotEqual(t, termenv.Ascii, out.ColorProfile())
		out.Echo(out.Fail("FAILED!"))
		capture.Flush = true
		return nil
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestCapture_NoColorSurvivesCapture(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	err := c.Capture(false, func(out *Console, capture *Capture) error {
		out.Echo(out.Fail("FAILED!"))
		capture.Flush = true
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "FAILED!\n", buf.String())
}

func TestCapture_NestedFlushLandsInParentBuffer(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithNoColor())

	err := c.Capture(false, func(outer *Console, _ *Capture) error {
		return outer.Capture(false, func(inner *Console, capture *Capture) error {
			inner.Echo("inner")
			capture.Flush = true
			return nil
		})
	})

	require.NoError(t, err)
	assert.Empty(t, buf.String(), "outer scope did not flush")
}

func TestBanner(t *testing.T) {
	want := "+--------+\n| SOLVED |\n+--------+"
	assert.Equal(t, want, Banner("SOLVED"))
}

func TestPrettyGrid(t *testing.T) {
	grid := [][]rune{{'#', '.'}, {'.', '#'}}

	assert.Equal(t, "#.\n.#", PrettyGrid(grid, 0))
	assert.Equal(t, "    \n #. \n .# \n    ", PrettyGrid(grid, 1))
}

func TestPrettyGrid_NegativePaddingIsZero(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	assert.Equal(t, "12\n34", PrettyGrid(grid, -3))
}
