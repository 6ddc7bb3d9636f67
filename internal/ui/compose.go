package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// layer is a block of rendered lines placed at a cell offset.
type layer struct {
	x, y  int
	lines []string
}

// compose paints layers over base in order, clipping anything that falls
// outside width x height.
func compose(base []string, width, height int, layers []layer) string {
	rows := make([]string, height)
	for i := range rows {
		if i < len(base) {
			rows[i] = base[i]
		}
		if pad := width - ansi.StringWidth(rows[i]); pad > 0 {
			rows[i] += strings.Repeat(" ", pad)
		}
	}
	for _, l := range layers {
		for i, line := range l.lines {
			y := l.y + i
			if y < 0 || y >= height {
				continue
			}
			rows[y] = overlay(rows[y], line, l.x, width)
		}
	}
	return strings.Join(rows, "\n")
}

// overlay replaces the cells of row starting at column x with line.
func overlay(row, line string, x, width int) string {
	w := ansi.StringWidth(line)
	if x < 0 {
		if -x >= w {
			return row
		}
		line = ansi.TruncateLeft(line, -x, "")
		w += x
		x = 0
	}
	if x >= width {
		return row
	}
	if x+w > width {
		line = ansi.Truncate(line, width-x, "")
		w = width - x
	}
	left := ansi.Truncate(row, x, "")
	right := ansi.TruncateLeft(row, x+w, "")
	return left + resetSGR + line + resetSGR + right
}
