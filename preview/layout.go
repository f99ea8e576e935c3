package preview

import "strings"

// MeasureFunc reports the rendered width and height of s in pixels.
type MeasureFunc func(s string) (width, height int)

// Line is one wrapped line of the title and the top-left point to draw it at.
type Line struct {
	Text string
	X    int
	Y    int
}

// Layout is the wrapped, centered title block, top to bottom.
type Layout struct {
	Lines      []Line
	LineHeight int
}

// LayoutText wraps title to boxWidth and centers the block in the box.
//
// Words are packed greedily; a candidate line is measured with a trailing
// space. Words are never broken, so a word wider than the box sits on its own
// line and overflows. The block is not clamped: a title taller than the box
// gets a negative starting Y.
func LayoutText(title string, boxWidth, boxHeight int, measure MeasureFunc) Layout {
	title = strings.TrimSpace(title)
	width, lineHeight := measure(title)

	var texts []string
	if width <= boxWidth {
		texts = []string{title}
	} else {
		texts = wrap(title, boxWidth, measure)
	}

	y := floorDiv(boxHeight-len(texts)*lineHeight, 2)
	lines := make([]Line, 0, len(texts))
	for _, text := range texts {
		w, _ := measure(text)
		lines = append(lines, Line{
			Text: text,
			X:    floorDiv(boxWidth-w, 2),
			Y:    y,
		})
		y += lineHeight
	}

	return Layout{Lines: lines, LineHeight: lineHeight}
}

func wrap(title string, boxWidth int, measure MeasureFunc) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(title) {
		if w, _ := measure(line + word + " "); w > boxWidth && line != "" {
			lines = append(lines, strings.TrimSpace(line))
			line = ""
		}
		line += word + " "
	}
	return append(lines, strings.TrimSpace(line))
}

// floorDiv rounds toward negative infinity so overflowing blocks shift by
// the same amount on both sides.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
