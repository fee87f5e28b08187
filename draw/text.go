package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a parsed TrueType font.
type Font struct {
	f *truetype.Font
}

var (
	defaultFont     *Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// ParseFont parses TrueType font data.
func ParseFont(ttf []byte) (*Font, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, err
	}
	return &Font{f: f}, nil
}

// DefaultFont returns the Go Regular font.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = ParseFont(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Text draws s with its baseline starting at pt and returns the point where
// the next glyph would go. size is in points at 72 DPI, so one point is one
// pixel.
func (f *Font) Text(dst Image, pt image.Point, size float64, c color.Color, s string) (image.Point, error) {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f.f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	end, err := ctx.DrawString(s, freetype.Pt(pt.X, pt.Y))
	if err != nil {
		return pt, err
	}
	return image.Pt(end.X.Round(), end.Y.Round()), nil
}

func (f *Font) face(size float64) font.Face {
	return truetype.NewFace(f.f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Measure returns the advance width of s and the line height at size.
func (f *Font) Measure(size float64, s string) image.Point {
	face := f.face(size)
	defer face.Close()

	m := face.Metrics()
	return image.Pt(font.MeasureString(face, s).Round(), (m.Ascent + m.Descent).Round())
}

// Ascent is the distance from the top of a line to its baseline at size.
func (f *Font) Ascent(size float64) int {
	face := f.face(size)
	defer face.Close()
	return face.Metrics().Ascent.Round()
}
