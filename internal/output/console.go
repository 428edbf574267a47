package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console writes operator-facing lines, coloring per-item success and
// failure reports when the destination supports it.
type Console struct {
	w       io.Writer
	header  *color.Color
	success *color.Color
	failure *color.Color
}

func New(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		w:       w,
		header:  color.New(color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) Headerf(format string, args ...any) {
	c.header.Fprintf(c.w, format, args...)
}

func (c *Console) Successf(format string, args ...any) {
	c.success.Fprintf(c.w, format, args...)
}

func (c *Console) Failf(format string, args ...any) {
	c.failure.Fprintf(c.w, format, args...)
}
