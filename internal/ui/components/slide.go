package components

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type panel struct {
	lines []string
	x     int
}

// Slide composites two rendered panels moving horizontally. Offsets are in
// panel widths: 0 is on screen, -1 fully off to the left, 1 fully off to
// the right. Where panels overlap the leftmost wins.
func Slide(outgoing, incoming string, width, height int, outOffset, inOffset float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	panels := []panel{
		{lines: fitLines(outgoing, width, height), x: columns(outOffset, width)},
		{lines: fitLines(incoming, width, height), x: columns(inOffset, width)},
	}
	sort.SliceStable(panels, func(i, j int) bool { return panels[i].x < panels[j].x })

	rows := make([]string, height)
	for y := range rows {
		var b strings.Builder
		cursor := 0
		for _, p := range panels {
			start := max(p.x, cursor)
			end := min(p.x+width, width)
			if end <= start {
				continue
			}
			b.WriteString(strings.Repeat(" ", start-cursor))
			b.WriteString(cell(p.lines[y], start-p.x, end-p.x))
			cursor = end
		}
		b.WriteString(strings.Repeat(" ", width-cursor))
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func columns(offset float64, width int) int {
	return int(math.Round(offset * float64(width)))
}

// cell cuts columns [left, right) of line, padding when wide runes straddle
// an edge.
func cell(line string, left, right int) string {
	seg := ansi.Cut(line, left, right)
	if w := ansi.StringWidth(seg); w < right-left {
		seg += strings.Repeat(" ", right-left-w)
	}
	return seg
}

// fitLines splits s into exactly height lines of exactly width columns.
func fitLines(s string, width, height int) []string {
	src := strings.Split(s, "\n")
	lines := make([]string, height)
	for i := range lines {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		w := ansi.StringWidth(line)
		switch {
		case w > width:
			line = ansi.Truncate(line, width, "")
			w = ansi.StringWidth(line)
			fallthrough
		case w < width:
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = line
	}
	return lines
}
