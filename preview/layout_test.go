package preview

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monospace measures 10px per rune and a 20px line.
func monospace(s string) (int, int) {
	return 10 * utf8.RuneCountInString(s), 20
}

func texts(l Layout) []string {
	out := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		out[i] = line.Text
	}
	return out
}

func TestLayoutSingleLine(t *testing.T) {
	fixed := func(string) (int, int) { return 200, 80 }

	l := LayoutText("Short Title", 1280, 720, fixed)

	require.Len(t, l.Lines, 1)
	assert.Equal(t, Line{Text: "Short Title", X: 540, Y: 320}, l.Lines[0])
	assert.Equal(t, 80, l.LineHeight)
}

func TestLayoutTrimsTitle(t *testing.T) {
	l := LayoutText("  Short Title \n", 1280, 720, monospace)

	require.Len(t, l.Lines, 1)
	assert.Equal(t, "Short Title", l.Lines[0].Text)
	assert.Equal(t, (1280-110)/2, l.Lines[0].X)
}

func TestLayoutWraps(t *testing.T) {
	l := LayoutText("aaaa bbbb cccc dddd", 100, 100, monospace)

	assert.Equal(t, []Line{
		{Text: "aaaa bbbb", X: 5, Y: 30},
		{Text: "cccc dddd", X: 5, Y: 50},
	}, l.Lines)
}

func TestLayoutTrailingSpaceCounts(t *testing.T) {
	// "aaaa bbbb" is exactly 90px, but the candidate "aaaa bbbb " is 100px
	l := LayoutText("aaaa bbbb c", 95, 100, monospace)

	assert.Equal(t, []string{"aaaa", "bbbb c"}, texts(l))
}

func TestLayoutOverlongWord(t *testing.T) {
	l := LayoutText("a supercalifragilistic b", 100, 100, monospace)

	assert.Equal(t, []string{"a", "supercalifragilistic", "b"}, texts(l))
	assert.Equal(t, -50, l.Lines[1].X)
}

func TestLayoutOverlongFirstWord(t *testing.T) {
	l := LayoutText("Supercalifragilistic", 100, 100, monospace)

	assert.Equal(t, []string{"Supercalifragilistic"}, texts(l))
}

func TestLayoutOverflowIsNotClamped(t *testing.T) {
	l := LayoutText("aaaa bbbb cccc", 50, 25, monospace)

	require.Len(t, l.Lines, 3)
	assert.Equal(t, -18, l.Lines[0].Y)
	assert.Equal(t, 2, l.Lines[1].Y)
	assert.Equal(t, 22, l.Lines[2].Y)
}

func TestLayoutProperties(t *testing.T) {
	titles := []string{
		"Short",
		"A somewhat longer headline that needs to wrap onto more lines",
		"Власти объявили о новых мерах поддержки малого бизнеса в регионах",
		"x yy zzz wwww vvvvv uuuuuu ttttttt ssssssss rrrrrrrrr qqqqqqqqqq",
		"antidisestablishmentarianism is long",
	}
	boxes := [][2]int{{100, 100}, {250, 80}, {1280, 720}, {60, 500}}

	for _, title := range titles {
		for _, box := range boxes {
			w, h := box[0], box[1]
			l := LayoutText(title, w, h, monospace)
			require.NotEmpty(t, l.Lines)

			n := len(l.Lines)
			assert.Equal(t, floorDiv(h-n*l.LineHeight, 2), l.Lines[0].Y, "%q in %v", title, box)

			for i, line := range l.Lines {
				assert.NotEmpty(t, line.Text)
				if i > 0 {
					assert.Equal(t, l.LineHeight, line.Y-l.Lines[i-1].Y)
				}
				lw, _ := monospace(line.Text)
				assert.Equal(t, floorDiv(w-lw, 2), line.X)
				if lw > w {
					assert.NotContains(t, line.Text, " ", "only a single word may overflow: %q", line.Text)
				}
			}

			assert.Equal(t, strings.Fields(title), strings.Fields(strings.Join(texts(l), " ")))
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	title := "Repeatable layout for the same title and box"
	assert.Equal(t, LayoutText(title, 120, 300, monospace), LayoutText(title, 120, 300, monospace))
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 2, 0},
		{7, -2, -4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, floorDiv(c.a, c.b), "%d/%d", c.a, c.b)
	}
}
