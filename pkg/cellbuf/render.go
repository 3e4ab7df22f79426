package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string.
//
// Consecutive cells sharing a StyleKey are merged into one run and
// rendered with a single Style.Render call. Keys missing from styles are
// written as plain text. Rows are joined with "\n"; an empty buffer
// renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)

	for y, row := range b.Cells {
		var sb strings.Builder
		runStyle := row[0].Style
		run = run[:0]

		flush := func() {
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for _, cell := range row {
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			run = append(run, cell.Ch)
		}
		flush()

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
