package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/nv6001"
	"github.com/BeatGlow/nv6001/draw"
	"github.com/BeatGlow/nv6001/panelio"
	"github.com/BeatGlow/nv6001/pixel"
)

type options struct {
	width, height int
	lines         int
	port          string
	speed         uint
	queue         int
	reset, dc, cs string
	orientation   nv6001.Orientation
	text          string
	hold          time.Duration
}

func main() {
	var o options
	flag.IntVar(&o.width, "width", nv6001.DefaultConfig.Width, "Display width")
	flag.IntVar(&o.height, "height", nv6001.DefaultConfig.Height, "Display height")
	flag.IntVar(&o.lines, "lines", 16, "Rows per fill transfer")
	flag.StringVar(&o.port, "port", "", "SPI port name (default: use first available)")
	flag.UintVar(&o.speed, "speed", uint(nv6001.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	flag.IntVar(&o.queue, "queue", panelio.DefaultQueueDepth, "Color transfer queue depth")
	flag.StringVar(&o.reset, "reset", "GPIO25", "Reset GPIO pin (empty for none)")
	flag.StringVar(&o.dc, "dc", "GPIO24", "Data/Command GPIO pin (DC)")
	flag.StringVar(&o.cs, "cs", "", "Chip select GPIO pin (default: driven by the SPI controller)")
	orientFlag := flag.String("orientation", "portrait", "Display orientation")
	flag.StringVar(&o.text, "text", "NV6001", "Label to render")
	flag.DurationVar(&o.hold, "hold", 0, "Keep the pattern on screen for this long, then blank the panel")
	flag.Parse()

	switch strings.ToLower(*orientFlag) {
	case "", "portrait", "0":
		o.orientation = nv6001.Portrait
	case "portrait-inverted", "inverted", "1":
		o.orientation = nv6001.PortraitInverted
	case "landscape", "2":
		o.orientation = nv6001.Landscape
	case "landscape-inverted", "3":
		o.orientation = nv6001.LandscapeInverted
	default:
		fatal(fmt.Errorf("invalid orientation %q specified", *orientFlag))
	}
	fmt.Printf("using orientation: %s\n", o.orientation)

	if _, err := host.Init(); err != nil {
		fatal(err)
	}
	if err := run(&o); err != nil {
		fatal(err)
	}
}

// run owns the bus and channel so they are closed on every return path.
func run(o *options) (err error) {
	dc, err := lookupPin("dc", o.dc)
	if err != nil {
		return err
	}
	cs, err := lookupPin("cs", o.cs)
	if err != nil {
		return err
	}
	reset, err := lookupPin("reset", o.reset)
	if err != nil {
		return err
	}

	conn, err := nv6001.OpenSPI(&nv6001.SPIConfig{
		Port:    o.port,
		Mode:    spi.Mode0,
		SpeedHz: uint32(o.speed),
		DC:      dc,
		CS:      cs,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); err == nil {
			err = cerr
		}
	}()
	fmt.Printf("using connection: %s\n", conn)

	ch := panelio.New(conn, &panelio.Config{
		QueueDepth: o.queue,
		OnColorDone: func(ctx any, err error) {
			if err != nil {
				log.Printf("color transfer failed: %v", err)
			}
		},
	})
	defer func() {
		if cerr := ch.Close(); err == nil {
			err = cerr
		}
	}()

	start := time.Now()
	output, err := nv6001.New(ch, &nv6001.Config{
		Width:         o.width,
		Height:        o.height,
		Orientation:   o.orientation,
		ParallelLines: o.lines,
		Background:    pixel.Black,
		Reset:         reset,
		OnFlushDone: func(buf []byte) {
			if buf == nil {
				log.Println("flush dropped")
			}
		},
	})
	if err != nil {
		return err
	}
	if err = ch.Wait(); err != nil {
		return err
	}
	fmt.Printf("using driver: %s (ready in %s)\n", output, time.Since(start).Round(time.Millisecond))

	if err = testPattern(output, o.text); err != nil {
		return err
	}
	if err = ch.Wait(); err != nil {
		return err
	}

	if o.hold > 0 {
		time.Sleep(o.hold)
		return output.Show(false)
	}
	return nil
}

// testPattern draws color bars with a framed label across the middle.
func testPattern(output *nv6001.Dev, label string) error {
	var (
		r      = output.Bounds()
		screen = pixel.NewRGB565Image(r)
	)
	draw.Bars(screen, r,
		pixel.White,
		color.RGBA{R: 0xff, G: 0xff, A: 0xff},
		color.RGBA{G: 0xff, B: 0xff, A: 0xff},
		pixel.Green,
		color.RGBA{R: 0xff, B: 0xff, A: 0xff},
		pixel.Red,
		pixel.Blue,
	)
	draw.Rectangle(screen, r, pixel.White)

	if label != "" {
		font, err := draw.DefaultFont()
		if err != nil {
			return err
		}
		const size = 24
		var (
			extent = font.Measure(size, label)
			box    = image.Rectangle{Max: extent.Add(image.Pt(8, 8))}
		)
		box = box.Add(image.Pt(r.Dx()/2-box.Dx()/2, r.Dy()/2-box.Dy()/2))
		draw.Box(screen, box, pixel.Black)
		if _, err = font.Text(screen, image.Pt(box.Min.X+4, box.Min.Y+4+font.Ascent(size)), size, pixel.White, label); err != nil {
			return err
		}
	}

	return output.Draw(r, screen, r.Min)
}

// lookupPin resolves a GPIO pin by name. An empty name means the pin is not
// connected.
func lookupPin(flagName, name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("-%s: unknown GPIO pin %q", flagName, name)
	}
	return p, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
