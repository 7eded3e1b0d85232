// Package output prints the status lines of the caramello CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	blue   = color.New(color.FgBlue)
	bold   = color.New(color.Bold)
)

// Printer writes marker-prefixed lines to W.
type Printer struct {
	W io.Writer
}

// Stdout prints to the process standard output.
func Stdout() *Printer { return &Printer{W: os.Stdout} }

// DisableColor turns colors off for every printer of the process.
func DisableColor() { color.NoColor = true }

func (p *Printer) line(marker *color.Color, mark, format string, args ...any) {
	fmt.Fprintf(p.W, "%s %s\n", marker.Sprint(mark), fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...any) { p.line(green, "✓", format, args...) }
func (p *Printer) Warning(format string, args ...any) { p.line(yellow, "!", format, args...) }
func (p *Printer) Error(format string, args ...any)   { p.line(red, "✗", format, args...) }
func (p *Printer) Info(format string, args ...any)    { p.line(blue, "·", format, args...) }

// Section prints a bold header preceded by a blank line.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.W, "\n%s\n", bold.Sprint(title))
}
