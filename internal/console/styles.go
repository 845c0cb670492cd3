package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is any terminal colour accepted by Style.
type Color = lipgloss.TerminalColor

// Basic ANSI palette.
var (
	Black   Color = lipgloss.Color("0")
	Red     Color = lipgloss.Color("1")
	Green   Color = lipgloss.Color("2")
	Yellow  Color = lipgloss.Color("3")
	Blue    Color = lipgloss.Color("4")
	Magenta Color = lipgloss.Color("5")
	Cyan    Color = lipgloss.Color("6")
	White   Color = lipgloss.Color("7")
)

// Fail renders text in the failure colour.
func (c *Console) Fail(text string) string {
	return c.Style(text, Red, nil)
}

// Pass renders text in the success colour.
func (c *Console) Pass(text string) string {
	return c.Style(text, Green, nil)
}

// Banner frames msg in an ASCII box.
func Banner(msg string) string {
	line := "+" + strings.Repeat("-", len([]rune(msg))+2) + "+"
	return line + "\n| " + msg + " |\n" + line
}

// PrettyGrid renders grid rows with a blank frame of the given padding.
func PrettyGrid[T any](grid [][]T, padding int) string {
	padding = max(padding, 0)

	rows := make([]string, len(grid))
	width := 0
	for i, row := range grid {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(cellString(cell))
		}
		rows[i] = sb.String()
		width = max(width, len([]rune(rows[i])))
	}

	hPad := strings.Repeat(" ", padding)
	vPad := strings.Repeat(" ", width+2*padding)

	lines := make([]string, 0, len(rows)+2*padding)
	for i := 0; i < padding; i++ {
		lines = append(lines, vPad)
	}
	for _, row := range rows {
		lines = append(lines, hPad+row+hPad)
	}
	for i := 0; i < padding; i++ {
		lines = append(lines, vPad)
	}
	return strings.Join(lines, "\n")
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case rune:
		return string(v)
	case byte:
		return string(rune(v))
	default:
		return fmt.Sprint(v)
	}
}
