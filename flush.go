package nv6001

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"log"

	"golang.org/x/image/draw"

	"github.com/BeatGlow/nv6001/panelio"
	"github.com/BeatGlow/nv6001/pixel"
)

// Flush writes buf into the controller memory at area.
//
// buf holds area.Size() pixels, row-major, two bytes each in host order; every
// pixel is byte swapped before transmission. The flush completes once the
// payload is handed to the channel. OnFlushDone is called exactly once: with
// buf when the flush was handed off, with nil otherwise.
//
// A failure writing the queued payload is reported by the next call on the
// channel, or through the channel's completion handler.
//
// An area starting below the last row is skipped without error.
func (d *Dev) Flush(area Area, buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if area.Y1 >= d.height {
		if debug {
			log.Printf("nv6001: skip flush of %s below row %d", area, d.height-1)
		}
		d.flushDone(nil)
		return nil
	}
	if err := d.checkArea(area, buf); err != nil {
		d.flushDone(nil)
		return err
	}

	if err := d.flushArea(area, pixel.Swap16(nil, buf), buf); err != nil {
		d.flushDone(nil)
		return err
	}
	d.flushDone(buf)
	return nil
}

// FlushLines writes full-width rows starting at row y. data holds
// ParallelLines rows (fewer at the bottom of the panel) already in wire order.
// The channel is handed a copy, so data may be reused once OnFlushDone is
// called, as for Flush.
func (d *Dev) FlushLines(y int, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if y >= d.height {
		d.flushDone(nil)
		return nil
	}
	if y < 0 {
		d.flushDone(nil)
		return fmt.Errorf("%w: row %d", ErrBounds, y)
	}

	area := d.band(y)
	if len(data) != area.Size()*2 {
		d.flushDone(nil)
		return fmt.Errorf("%w: %d bytes for %d pixels", ErrBufferSize, len(data), area.Size())
	}

	if err := d.flushArea(area, append([]byte(nil), data...), nil); err != nil {
		d.flushDone(nil)
		return err
	}
	d.flushDone(data)
	return nil
}

// FlushByLine writes area one scanline at a time. Each row is sent as a
// full-width window, with the columns outside the area set to the background
// color. buf is laid out as for Flush.
func (d *Dev) FlushByLine(area Area, buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if area.Y1 >= d.height {
		d.flushDone(nil)
		return nil
	}
	if err := d.checkArea(area, buf); err != nil {
		d.flushDone(nil)
		return err
	}

	var (
		lineSize   = d.width * 2
		background = make([]byte, lineSize)
		rowSize    = area.Width() * 2
	)
	pixel.Fill(background, d.background, binary.BigEndian)

	for row := 0; row < area.Height(); row++ {
		// The channel keeps each line until it is written, so lines are not reused.
		line := make([]byte, lineSize)
		copy(line, background)
		pixel.Swap16(line[area.X1*2:(area.X2+1)*2], buf[row*rowSize:(row+1)*rowSize])

		y := area.Y1 + row
		if err := d.flushArea(Area{X1: 0, Y1: y, X2: d.width - 1, Y2: y}, line, nil); err != nil {
			d.flushDone(nil)
			return err
		}
	}
	d.flushDone(buf)
	return nil
}

// Fill the whole panel with a single color.
func (d *Dev) Fill(c color.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fill(pixel.ToRGB565(c))
}

// Draw converts the part of src aligned with r into panel pixels and flushes
// it. r is clipped to the panel bounds.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	clip := r.Intersect(d.Bounds())
	if clip.Empty() {
		return nil
	}
	sp = sp.Add(clip.Min.Sub(r.Min))

	img := pixel.NewRGB565Image(clip)
	draw.Copy(img, clip.Min, src, image.Rectangle{Min: sp, Max: sp.Add(clip.Size())}, draw.Src, nil)
	return d.Flush(AreaFromRect(clip), img.Pix)
}

func (d *Dev) fill(c pixel.RGB565) error {
	// All bands share one buffer, the channel only reads it.
	band := make([]byte, d.width*d.lines*2)
	pixel.Fill(band, c, binary.BigEndian)

	for y := 0; y < d.height; y += d.lines {
		area := d.band(y)
		if err := d.flushArea(area, band[:area.Size()*2], nil); err != nil {
			return fmt.Errorf("nv6001: fill row %d: %w", y, err)
		}
	}
	return nil
}

// band is the full-width window of ParallelLines rows starting at y.
func (d *Dev) band(y int) Area {
	y2 := y + d.lines - 1
	if y2 >= d.height {
		y2 = d.height - 1
	}
	return Area{X1: 0, Y1: y, X2: d.width - 1, Y2: y2}
}

func (d *Dev) checkArea(area Area, buf []byte) error {
	if !area.In(d.width, d.height) {
		return fmt.Errorf("%w: %s", ErrBounds, area)
	}
	if len(buf) != area.Size()*2 {
		return fmt.Errorf("%w: %d bytes for %d pixels", ErrBufferSize, len(buf), area.Size())
	}
	return nil
}

// flushArea sets the address window and hands payload to the channel. ctx is
// passed on to the channel's completion handler.
func (d *Dev) flushArea(area Area, payload []byte, ctx any) error {
	if err := d.setWindow(area); err != nil {
		return err
	}
	if err := d.ch.TxColor(panelio.NoCommand, payload, ctx); err != nil {
		return fmt.Errorf("nv6001: write pixels: %w", err)
	}
	return nil
}

func (d *Dev) setWindow(area Area) error {
	if err := d.ch.TxParam(nvCASET, byte(area.X1>>8), byte(area.X1), byte(area.X2>>8), byte(area.X2)); err != nil {
		return fmt.Errorf("nv6001: set column address: %w", err)
	}
	if err := d.ch.TxParam(nvRASET, byte(area.Y1>>8), byte(area.Y1), byte(area.Y2>>8), byte(area.Y2)); err != nil {
		return fmt.Errorf("nv6001: set row address: %w", err)
	}
	// RAMWR goes out twice before every payload, as in the vendor sequence.
	for i := 0; i < 2; i++ {
		if err := d.ch.TxParam(nvRAMWR); err != nil {
			return fmt.Errorf("nv6001: memory write: %w", err)
		}
	}
	return nil
}

func (d *Dev) flushDone(buf []byte) {
	if d.done != nil {
		d.done(buf)
	}
}
