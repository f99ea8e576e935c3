package preview

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

// ColorScheme is the text and background color of a preview.
type ColorScheme struct {
	Foreground color.RGBA
	Background color.RGBA
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil || !isHexDigits(hex[1:]) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// isHexDigits catches trailing garbage that Sscanf-based parsing stops at.
func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// ParsePalette validates every {foreground, background} pair.
func ParsePalette(pairs [][2]string) ([]ColorScheme, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidColor)
	}
	schemes := make([]ColorScheme, 0, len(pairs))
	for i, pair := range pairs {
		fg, err := ParseHex(pair[0])
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		bg, err := ParseHex(pair[1])
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		schemes = append(schemes, ColorScheme{Foreground: fg, Background: bg})
	}
	return schemes, nil
}

// PickScheme returns a uniformly random scheme from palette.
func PickScheme(rng *rand.Rand, palette []ColorScheme) ColorScheme {
	return palette[rng.Intn(len(palette))]
}
