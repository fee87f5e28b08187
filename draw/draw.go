// Package draw renders into panel images.
//
// It wraps [golang.org/x/image/draw] for copying and scaling, and adds filled
// boxes, outlines and TrueType text.
package draw

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over = draw.Over

	// Src specifies ``src in mask''.
	Src = draw.Src
)

// Draw aligns r.Min in dst with sp in src and then replaces the rectangle r in
// dst with the result of a Porter-Duff composition.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Copy copies all of src into dst with its top-left corner at dp.
func Copy(dst Image, dp image.Point, src image.Image) {
	draw.Copy(dst, dp, src, src.Bounds(), draw.Src, nil)
}

// Scale scales all of src to fill r in dst, using bi-linear interpolation.
func Scale(dst Image, r image.Rectangle, src image.Image) {
	draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}

// Box draws a filled rectangle.
func Box(dst Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Rectangle draws a one pixel wide outline just inside r.
func Rectangle(dst Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	Box(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	Box(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	Box(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	Box(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// Bars fills r with vertical bars of the given colors, left to right.
func Bars(dst Image, r image.Rectangle, colors ...color.Color) {
	if len(colors) == 0 {
		return
	}
	w := r.Dx()
	for i, c := range colors {
		x0 := r.Min.X + w*i/len(colors)
		x1 := r.Min.X + w*(i+1)/len(colors)
		Box(dst, image.Rect(x0, r.Min.Y, x1, r.Max.Y), c)
	}
}
