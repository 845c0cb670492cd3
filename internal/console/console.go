// Package console is the diagnostic output sink for exercises.
//
// A Console is passed explicitly to everything that prints: the harness,
// the exercises, and capture scopes. There is no process-wide sink to swap.
// Capturing output means building a second Console over an in-memory buffer,
// running a block with it, and deciding on exit whether the buffer is
// forwarded to the parent.
//
// Each Console also owns a slog.Logger that writes into the same writer, so
// structured diagnostics from an exercise are captured and flushed together
// with its plain output.
package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console writes diagnostic lines and styled text to a destination writer.
type Console struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	logger   *slog.Logger
	level    slog.Leveler
	noColor  bool
	profile  *termenv.Profile
}

// Option configures a Console.
type Option func(*Console)

// WithNoColor disables colour codes, including inside capture buffers.
func WithNoColor() Option {
	return func(c *Console) {
		c.noColor = true
	}
}

// WithProfile pins the colour profile instead of detecting it from the writer.
func WithProfile(p termenv.Profile) Option {
	return func(c *Console) {
		c.profile = &p
	}
}

// WithLogLevel sets the minimum level of the console's logger.
func WithLogLevel(level slog.Leveler) Option {
	return func(c *Console) {
		c.level = level
	}
}

// New creates a Console writing to w.
func New(w io.Writer, opts ...Option) *Console {
	c := &Console{
		w:     w,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.renderer = lipgloss.NewRenderer(w)
	switch {
	case c.noColor:
		c.renderer.SetColorProfile(termenv.Ascii)
	case c.profile != nil:
		c.renderer.SetColorProfile(*c.profile)
	}

	c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       c.level,
		ReplaceAttr: dropTime,
	}))
	return c
}

// Echo writes args separated by spaces, followed by a newline.
func (c *Console) Echo(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// Printf writes formatted text without appending a newline.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Writer returns the destination of this console.
func (c *Console) Writer() io.Writer {
	return c.w
}

// Logger returns a structured logger that writes to this console.
func (c *Console) Logger() *slog.Logger {
	return c.logger
}

// ColorProfile reports the colour profile used for styling.
func (c *Console) ColorProfile() termenv.Profile {
	return c.renderer.ColorProfile()
}

// Style renders text with the given foreground and background colours.
// A nil colour leaves that channel unstyled.
func (c *Console) Style(text string, fg, bg Color) string {
	style := c.renderer.NewStyle()
	if fg != nil {
		style = style.Foreground(fg)
	}
	if bg != nil {
		style = style.Background(bg)
	}
	return style.Render(text)
}

// dropTime removes timestamps so captured diagnostics are reproducible.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
