package styled

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// DimmedColor returns a dimmed *color.Color to print secondary information
// on w.
func DimmedColor(w io.Writer) *color.Color {
	return forWriter(color.RGB(128, 128, 128), w)
}

// ErrorColor returns the *color.Color used for the "Error:" prefix on w.
func ErrorColor(w io.Writer) *color.Color {
	return forWriter(color.New(color.FgRed, color.Bold), w)
}

// forWriter enables c only when w is a terminal. fatih/color alone looks at
// os.Stdout, which says nothing about a redirected stderr.
func forWriter(c *color.Color, w io.Writer) *color.Color {
	if IsTerminal(w) && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
