package preview

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Renderer draws wrapped titles onto a fixed-size canvas with one font face.
type Renderer struct {
	face   font.Face
	width  int
	height int
}

// LoadFont reads a TrueType/OpenType file, or returns the embedded Go Bold
// font when path is empty.
func LoadFont(path string) ([]byte, error) {
	if path == "" {
		return gobold.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return data, nil
}

// NewRenderer parses fontData and prepares a face of the given point size.
func NewRenderer(fontData []byte, size float64, dpi float64, width, height int) (*Renderer, error) {
	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return &Renderer{face: face, width: width, height: height}, nil
}

// Measure returns the advance width of s and the height of one text line.
func (r *Renderer) Measure(s string) (int, int) {
	m := r.face.Metrics()
	return font.MeasureString(r.face, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// Layout wraps and centers title on the canvas without drawing it.
func (r *Renderer) Layout(title string) Layout {
	return LayoutText(title, r.width, r.height, r.Measure)
}

// Render draws title in the scheme's colors and writes a JPEG to path.
func (r *Renderer) Render(title string, scheme ColorScheme, path string) (Layout, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(scheme.Background), image.Point{}, draw.Src)

	layout := r.Layout(title)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(scheme.Foreground),
		Face: r.face,
	}
	ascent := r.face.Metrics().Ascent
	for _, line := range layout.Lines {
		// Line.Y is the top of the line; the drawer wants the baseline
		d.Dot = fixed.Point26_6{X: fixed.I(line.X), Y: fixed.I(line.Y) + ascent}
		d.DrawString(line.Text)
	}

	out, err := os.Create(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to create preview: %w", err)
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 95}); err != nil {
		out.Close()
		return Layout{}, fmt.Errorf("failed to encode preview: %w", err)
	}
	if err := out.Close(); err != nil {
		return Layout{}, fmt.Errorf("failed to write preview: %w", err)
	}
	return layout, nil
}

// Close releases the font face.
func (r *Renderer) Close() error {
	return r.face.Close()
}
