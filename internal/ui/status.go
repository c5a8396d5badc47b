// Package ui prints styled status lines for the CLI surfaces.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors used for status output.
var (
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGreen  = lipgloss.Color("#00FF00")
	colorYellow = lipgloss.Color("#FFFF00")
	colorRed    = lipgloss.Color("#FF0000")
	colorGray   = lipgloss.Color("#666666")
)

var (
	infoStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	successStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	warningStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(colorGray)
	headerStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Printer writes status lines to a single output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", icon, style.Render(fmt.Sprintf(format, args...)))
}

// Info prints an informational status line.
func (p *Printer) Info(format string, args ...any) {
	p.line(infoStyle, "ℹ️", format, args...)
}

// Success prints a success status line.
func (p *Printer) Success(format string, args ...any) {
	p.line(successStyle, "✅", format, args...)
}

// Warning prints a warning status line.
func (p *Printer) Warning(format string, args ...any) {
	p.line(warningStyle, "⚠️", format, args...)
}

// Error prints an error status line.
func (p *Printer) Error(format string, args ...any) {
	p.line(errorStyle, "❌", format, args...)
}

// Progress prints an in-progress status line.
func (p *Printer) Progress(format string, args ...any) {
	p.line(progressStyle, "🔄", format, args...)
}

// Header prints a section header banner.
func (p *Printer) Header(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(p.out, "\n%s\n", headerStyle.Render(rule))
	fmt.Fprintf(p.out, "%s\n", headerStyle.Render("  "+title))
	fmt.Fprintf(p.out, "%s\n\n", headerStyle.Render(rule))
}
