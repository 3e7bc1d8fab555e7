package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{title: plain, header: plain, label: plain, ok: plain, warn: plain, bad: plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")),
		header: lipgloss.NewStyle().Bold(true).Underline(true),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")),
	}
}

// writeTable prints rows in aligned columns under a styled header line.
// The last column is never padded.
func (s styles) writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	line := func(cells []string) string {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(cells)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
		return strings.TrimRight(b.String(), " ")
	}

	fmt.Fprintln(w, s.header.Render(line(headers)))
	for _, row := range rows {
		fmt.Fprintln(w, line(row))
	}
}

// writeFields prints label/value pairs.
func (s styles) writeFields(w io.Writer, fields [][2]string) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f[0]))
	}
	for _, f := range fields {
		label := f[0] + ":" + strings.Repeat(" ", width-len(f[0]))
		fmt.Fprintf(w, "%s %s\n", s.label.Render(label), f[1])
	}
}
