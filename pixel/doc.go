// Package pixel implements the 16-bit color and image types used by the panel.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, and keep the byte order of the pixel buffer explicit
// so buffers can be handed to the controller without guessing.
package pixel
