package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image.
type RGB565Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels, two bytes each.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Order of the two bytes of each pixel in Pix.
	Order binary.ByteOrder
}

// NewRGB565Image returns a new image with the given bounds, stored in
// little-endian byte order.
func NewRGB565Image(r image.Rectangle) *RGB565Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &RGB565Image{
		Rect:   r,
		Pix:    make([]byte, w*h*2),
		Stride: w * 2,
		Order:  binary.LittleEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565Image) Bounds() image.Rectangle {
	return p.Rect
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return RGB565(p.Order.Uint16(p.Pix[p.PixOffset(x, y):]))
}

// RGB565At returns the color at (x, y), or Black when out of bounds.
func (p *RGB565Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Black
	}
	return RGB565(p.Order.Uint16(p.Pix[p.PixOffset(x, y):]))
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y):], uint16(ToRGB565(c)))
}

// Fill the image with a single color.
func (p *RGB565Image) Fill(c color.Color) {
	Fill(p.Pix, ToRGB565(c), p.Order)
}

// Clear the image to black.
func (p *RGB565Image) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}
