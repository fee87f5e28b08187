package pixel

import "image/color"

// RGB565Model converts any color to RGB565.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// Common colors.
const (
	Black RGB565 = 0x0000
	White RGB565 = 0xFFFF
	Red   RGB565 = 0xF800
	Green RGB565 = 0x07E0
	Blue  RGB565 = 0x001F
)

// RGB565 represents a 16-bit 5-6-5 RGB color.
//
// Red occupies the top 5 bits, green the middle 6 and blue the low 5.
type RGB565 uint16

// RGB565FromRGB packs 8-bit components.
func RGB565FromRGB(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := uint32(c&0xF800) >> 8
	grn := uint32(c&0x07E0) >> 3
	blu := uint32(c&0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

// Swap returns the color with its two bytes exchanged.
func (c RGB565) Swap() RGB565 {
	return c<<8 | c>>8
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = r & 0xF800
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return RGB565(r | g | b)
}

// ToRGB565 converts c to RGB565. A nil color yields Black.
func ToRGB565(c color.Color) RGB565 {
	if c == nil {
		return Black
	}
	return rgb565Model(c).(RGB565)
}
