package nv6001

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/nv6001/pixel"
)

// Commands (MIPI DCS subset used by the driver).
const (
	nvSLPOUT  = 0x11 // Sleep Out
	nvDISPOFF = 0x28 // Display Off
	nvDISPON  = 0x29 // Display On
	nvCASET   = 0x2A // Column Address Set
	nvRASET   = 0x2B // Row Address Set
	nvRAMWR   = 0x2C // Memory Write
	nvTEON    = 0x35 // Tearing Effect Line On
	nvMADCTL  = 0x36 // Memory Data Access Control
	nvIDMON   = 0x39 // Idle Mode On
	nvCOLMOD  = 0x3A // Interface Pixel Format
	nvTESCAN  = 0x44 // Set Tear Scanline
	nvWRCTRLD = 0x53 // Write CTRL Display
)

const maxResolution = 0xFFFF

// resetDelay is how long the reset pin is held low.
var resetDelay = 100 * time.Millisecond

// Channel is the command channel to the controller.
//
// TxParam writes a command and its parameters once earlier transfers are done.
// TxColor hands data to the channel and returns without waiting for it to be
// written. Both accept panelio.NoCommand for a pure data transfer.
type Channel interface {
	TxParam(cmd int, params ...byte) error
	TxColor(cmd int, data []byte, ctx any) error
}

// Dev is an NV6001 panel.
//
// All methods are safe for concurrent use; each one holds the device for its
// whole command sequence, so an address window is never interleaved with the
// payload of another call.
type Dev struct {
	mu          sync.Mutex
	ch          Channel
	width       int
	height      int
	lines       int
	background  pixel.RGB565
	orientation Orientation
	done        FlushDone
}

// New brings up the panel on ch.
//
// The reset pin is pulsed, the vendor initialization table is replayed, the
// configured orientation is applied and the panel is filled with the
// background color. A nil config uses DefaultConfig.
func New(ch Channel, config *Config) (*Dev, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	if config.Width == 0 {
		config.Width = DefaultConfig.Width
	}
	if config.Height == 0 {
		config.Height = DefaultConfig.Height
	}
	if config.Width < 0 || config.Height < 0 || config.Width > maxResolution || config.Height > maxResolution {
		return nil, fmt.Errorf("nv6001: invalid size %dx%d", config.Width, config.Height)
	}
	if config.ParallelLines <= 0 {
		config.ParallelLines = DefaultConfig.ParallelLines
	}
	if !config.Orientation.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrOrientation, config.Orientation)
	}

	background := pixel.White
	if config.Background != nil {
		background = pixel.ToRGB565(config.Background)
	}

	d := &Dev{
		ch:          ch,
		width:       config.Width,
		height:      config.Height,
		lines:       config.ParallelLines,
		background:  background,
		orientation: config.Orientation,
		done:        config.OnFlushDone,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.init(config.Reset); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) init(reset gpio.PinOut) error {
	if reset != nil {
		if err := reset.Out(gpio.Low); err != nil {
			return fmt.Errorf("nv6001: failed to pull RST low: %w", err)
		}
		time.Sleep(resetDelay)
		if err := reset.Out(gpio.High); err != nil {
			return fmt.Errorf("nv6001: failed to pull RST high: %w", err)
		}
	}

	for _, c := range initSequence {
		if err := d.send(c); err != nil {
			return fmt.Errorf("nv6001: init command %#02x: %w", c.cmd, err)
		}
	}

	if err := d.setOrientation(d.orientation); err != nil {
		return err
	}
	if err := d.fill(d.background); err != nil {
		return err
	}

	if debug {
		log.Printf("nv6001: %s initialized", d)
	}
	return nil
}

func (d *Dev) send(c initCmd) error {
	if c.bare {
		return d.ch.TxParam(int(c.cmd))
	}
	return d.ch.TxParam(int(c.cmd), c.params...)
}

func (d *Dev) String() string {
	return fmt.Sprintf("NV6001 %dx%d", d.width, d.height)
}

// Bounds is the display bounding box (dimensions).
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// ColorModel used by the display.
func (d *Dev) ColorModel() color.Model {
	return pixel.RGB565Model
}

// Orientation returns the current orientation.
func (d *Dev) Orientation() Orientation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.orientation
}

// SetOrientation programs the memory access control register.
func (d *Dev) SetOrientation(o Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("%w: %d", ErrOrientation, o)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setOrientation(o)
}

func (d *Dev) setOrientation(o Orientation) error {
	if debug {
		log.Printf("nv6001: display orientation %s, MADCTL %#02x", o, madctl[o])
	}
	if err := d.ch.TxParam(nvMADCTL, madctl[o]); err != nil {
		return fmt.Errorf("nv6001: set orientation: %w", err)
	}
	d.orientation = o
	return nil
}

// Show toggles the display on or off.
func (d *Dev) Show(show bool) error {
	command := nvDISPOFF
	if show {
		command = nvDISPON
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ch.TxParam(command)
}
