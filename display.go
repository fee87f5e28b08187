// Package nv6001 drives the NV6001 SPI color LCD controller.
//
// The driver brings the controller up from its vendor initialization table and
// streams rectangular pixel regions to it: every flush sets the column and row
// address window, starts a memory write and sends the pixel payload.
package nv6001

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"periph.io/x/conn/v3/gpio"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrBounds      = errors.New("nv6001: out of display bounds")
	ErrBufferSize  = errors.New("nv6001: pixel buffer does not match area")
	ErrOrientation = errors.New("nv6001: invalid orientation")
)

// Orientation of the panel.
type Orientation uint8

// Supported orientations.
const (
	Portrait Orientation = iota
	PortraitInverted
	Landscape
	LandscapeInverted
)

// madctl holds the Memory Data Access Control value of each orientation.
var madctl = [...]byte{0x00, 0x08, 0x40, 0x48}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "PORTRAIT"
	case PortraitInverted:
		return "PORTRAIT_INVERTED"
	case Landscape:
		return "LANDSCAPE"
	case LandscapeInverted:
		return "LANDSCAPE_INVERTED"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Valid reports whether o is one of the supported orientations.
func (o Orientation) Valid() bool {
	return int(o) < len(madctl)
}

// Area is a rectangle with inclusive bounds in panel pixel coordinates.
type Area struct {
	X1, Y1, X2, Y2 int
}

// AreaFromRect converts a half-open rectangle. r must not be empty.
func AreaFromRect(r image.Rectangle) Area {
	return Area{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X - 1, Y2: r.Max.Y - 1}
}

// Rect returns the area as a half-open rectangle.
func (a Area) Rect() image.Rectangle {
	return image.Rect(a.X1, a.Y1, a.X2+1, a.Y2+1)
}

// Width in pixels.
func (a Area) Width() int {
	return a.X2 - a.X1 + 1
}

// Height in pixels.
func (a Area) Height() int {
	return a.Y2 - a.Y1 + 1
}

// Size is the number of pixels covered.
func (a Area) Size() int {
	return a.Width() * a.Height()
}

// In reports whether the area lies within a width x height panel.
func (a Area) In(width, height int) bool {
	return a.X1 >= 0 && a.X1 <= a.X2 && a.X2 < width &&
		a.Y1 >= 0 && a.Y1 <= a.Y2 && a.Y2 < height
}

func (a Area) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", a.X1, a.Y1, a.X2, a.Y2)
}

// FlushDone is called once a flushed pixel buffer may be reused. buf is nil
// when the flush was skipped or failed. It runs while the device is held and
// must not call back into it.
type FlushDone func(buf []byte)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Orientation applied after bring-up.
	Orientation Orientation

	// ParallelLines is the number of rows sent per window by FlushLines and Fill.
	ParallelLines int

	// Background fills the panel at bring-up and the columns outside the area
	// in FlushByLine. Defaults to white.
	Background color.Color

	// Reset pin, optional.
	Reset gpio.PinOut

	// OnFlushDone is called once per flush, optional.
	OnFlushDone FlushDone
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Width:         240,
	Height:        320,
	Orientation:   Portrait,
	ParallelLines: 1,
}
