package nv6001

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/BeatGlow/nv6001/conn"
	"github.com/BeatGlow/nv6001/panelio"
	"github.com/BeatGlow/nv6001/pixel"
)

func TestFlushScanline(t *testing.T) {
	d, ch, done := newTestDev(t, nil)

	// 240 red pixels held with the high byte first.
	buf := make([]byte, 240*2)
	pixel.Fill(buf, pixel.Red, binary.BigEndian)
	if err := d.Flush(Area{X1: 0, Y1: 0, X2: 239, Y2: 0}, buf); err != nil {
		t.Fatal(err)
	}

	ops := ch.take()
	if len(ops) != 5 {
		t.Fatalf("expected 5 transfers, got %v", ops)
	}
	if !bytes.Equal(ops[0].data, []byte{0x00, 0x00, 0x00, 0xEF}) {
		t.Errorf("expected column window 000000ef, got %x", ops[0].data)
	}
	if !bytes.Equal(ops[1].data, []byte{0x00, 0x00, 0x00, 0x00}) {
		t.Errorf("expected row window 00000000, got %x", ops[1].data)
	}
	payload := checkCycle(t, ops, Area{X1: 0, Y1: 0, X2: 239, Y2: 0})
	if len(payload) != 480 {
		t.Fatalf("expected 480 payload bytes, got %d", len(payload))
	}
	for i := 0; i < len(payload); i += 2 {
		if payload[i] != 0x00 || payload[i+1] != 0xF8 {
			t.Fatalf("pixel %d: expected 00f8, got %x", i/2, payload[i:i+2])
		}
	}

	if len(done.calls) != 1 || &done.calls[0][0] != &buf[0] {
		t.Fatalf("expected one completion with the caller buffer, got %d", len(done.calls))
	}
	if buf[0] != 0xF8 {
		t.Error("the caller buffer was modified")
	}
}

func TestFlushWindow(t *testing.T) {
	d, ch, _ := newTestDev(t, &Config{Width: 480, Height: 320})
	tests := []Area{
		{X1: 0, Y1: 0, X2: 0, Y2: 0},
		{X1: 10, Y1: 20, X2: 19, Y2: 29},
		{X1: 200, Y1: 255, X2: 300, Y2: 256},
		{X1: 0, Y1: 0, X2: 479, Y2: 319},
		{X1: 479, Y1: 319, X2: 479, Y2: 319},
	}
	for _, area := range tests {
		t.Run(area.String(), func(it *testing.T) {
			buf := make([]byte, area.Size()*2)
			for i := range buf {
				buf[i] = byte(i)
			}
			if err := d.Flush(area, buf); err != nil {
				it.Fatal(err)
			}
			ops := ch.take()
			if len(ops) != 5 {
				it.Fatalf("expected 5 transfers, got %d", len(ops))
			}
			payload := checkCycle(it, ops, area)
			if !bytes.Equal(payload, pixel.Swap16(nil, buf)) {
				it.Error("payload is not the byte swapped buffer")
			}
			if ctx, ok := ops[4].ctx.([]byte); !ok || &ctx[0] != &buf[0] {
				it.Error("expected the caller buffer as transfer context")
			}
		})
	}
}

func TestFlushSkipBelowPanel(t *testing.T) {
	d, ch, done := newTestDev(t, nil)
	for _, y := range []int{320, 321, 1000} {
		buf := make([]byte, 2)
		if err := d.Flush(Area{X1: 0, Y1: y, X2: 0, Y2: y}, buf); err != nil {
			t.Errorf("row %d: expected skip without error, got %v", y, err)
		}
	}
	if ops := ch.take(); len(ops) != 0 {
		t.Errorf("expected no transfers, got %v", ops)
	}
	if len(done.calls) != 3 {
		t.Fatalf("expected 3 completions, got %d", len(done.calls))
	}
	for i, buf := range done.calls {
		if buf != nil {
			t.Errorf("completion %d: expected nil buffer", i)
		}
	}
}

func TestFlushCallerErrors(t *testing.T) {
	tests := []struct {
		name string
		area Area
		size int
		want error
	}{
		{"negative x", Area{X1: -1, Y1: 0, X2: 0, Y2: 0}, 4, ErrBounds},
		{"negative y", Area{X1: 0, Y1: -1, X2: 0, Y2: 0}, 4, ErrBounds},
		{"x beyond width", Area{X1: 0, Y1: 0, X2: 240, Y2: 0}, 482, ErrBounds},
		{"y2 beyond height", Area{X1: 0, Y1: 310, X2: 0, Y2: 320}, 22, ErrBounds},
		{"inverted x", Area{X1: 5, Y1: 0, X2: 4, Y2: 0}, 0, ErrBounds},
		{"inverted y", Area{X1: 0, Y1: 5, X2: 0, Y2: 4}, 0, ErrBounds},
		{"short buffer", Area{X1: 0, Y1: 0, X2: 9, Y2: 0}, 18, ErrBufferSize},
		{"long buffer", Area{X1: 0, Y1: 0, X2: 9, Y2: 0}, 22, ErrBufferSize},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			d, ch, done := newTestDev(it, nil)
			if err := d.Flush(test.area, make([]byte, test.size)); !errors.Is(err, test.want) {
				it.Errorf("expected %v, got %v", test.want, err)
			}
			if ops := ch.take(); len(ops) != 0 {
				it.Errorf("expected no transfers, got %v", ops)
			}
			if len(done.calls) != 1 || done.calls[0] != nil {
				it.Errorf("expected one nil completion, got %v", done.calls)
			}
		})
	}
}

func TestFlushTransportError(t *testing.T) {
	fault := errors.New("bus fault")
	for _, cmd := range []int{nvCASET, nvRASET, nvRAMWR} {
		d, ch, done := newTestDev(t, nil)
		ch.fail = map[int]error{cmd: fault}
		if err := d.Flush(Area{X1: 0, Y1: 0, X2: 0, Y2: 0}, make([]byte, 2)); !errors.Is(err, fault) {
			t.Errorf("command %#02x: expected bus fault, got %v", cmd, err)
		}
		for _, o := range ch.take() {
			if o.color {
				t.Errorf("command %#02x: payload sent after a failed window", cmd)
			}
		}
		if len(done.calls) != 1 || done.calls[0] != nil {
			t.Errorf("command %#02x: expected one nil completion", cmd)
		}
	}

	d, ch, done := newTestDev(t, nil)
	ch.failColor = fault
	if err := d.Flush(Area{X1: 0, Y1: 0, X2: 0, Y2: 0}, make([]byte, 2)); !errors.Is(err, fault) {
		t.Errorf("expected payload bus fault, got %v", err)
	}
	if len(done.calls) != 1 || done.calls[0] != nil {
		t.Error("expected one nil completion")
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		lines  int
		cycles int
	}{
		{1, 320},
		{7, 46},
		{16, 20},
		{320, 1},
		{400, 1},
	}
	for _, test := range tests {
		t.Run("", func(it *testing.T) {
			d, ch, done := newTestDev(it, &Config{ParallelLines: test.lines})
			if err := d.Fill(color.White); err != nil {
				it.Fatal(err)
			}
			ops := ch.take()
			if len(ops) != test.cycles*5 {
				it.Fatalf("%d lines: expected %d cycles, got %d transfers", test.lines, test.cycles, len(ops))
			}
			next := 0
			for i := 0; i < test.cycles; i++ {
				y2 := next + test.lines - 1
				if y2 > 319 {
					y2 = 319
				}
				payload := checkCycle(it, ops[i*5:], Area{X1: 0, Y1: next, X2: 239, Y2: y2})
				if len(payload) != 240*(y2-next+1)*2 {
					it.Fatalf("cycle %d: expected %d payload bytes, got %d", i, 240*(y2-next+1)*2, len(payload))
				}
				for _, b := range payload {
					if b != 0xFF {
						it.Fatalf("cycle %d: expected white, got %#02x", i, b)
					}
				}
				next = y2 + 1
			}
			if next != 320 {
				it.Errorf("expected every row to be covered, stopped at %d", next)
			}
			if len(done.calls) != 0 {
				it.Errorf("expected fill to skip flush completions, got %d", len(done.calls))
			}
		})
	}
}

func TestFillColorOrder(t *testing.T) {
	d, ch, _ := newTestDev(t, &Config{Width: 2, Height: 1})
	if err := d.Fill(pixel.Red); err != nil {
		t.Fatal(err)
	}
	payload := checkCycle(t, ch.take(), Area{X1: 0, Y1: 0, X2: 1, Y2: 0})
	if want := []byte{0xF8, 0x00, 0xF8, 0x00}; !bytes.Equal(payload, want) {
		t.Errorf("expected %x, got %x", want, payload)
	}
}

func TestFlushLines(t *testing.T) {
	d, ch, done := newTestDev(t, &Config{ParallelLines: 4})

	data := make([]byte, 240*4*2)
	for i := range data {
		data[i] = byte(i)
	}
	if err := d.FlushLines(8, data); err != nil {
		t.Fatal(err)
	}
	payload := checkCycle(t, ch.take(), Area{X1: 0, Y1: 8, X2: 239, Y2: 11})
	if !bytes.Equal(payload, data) {
		t.Error("expected data to be sent unswapped")
	}
	if &payload[0] == &data[0] {
		t.Error("expected the channel to get a copy of data")
	}

	// The last band is clipped to the panel.
	if err := d.FlushLines(318, make([]byte, 240*2*2)); err != nil {
		t.Fatal(err)
	}
	checkCycle(t, ch.take(), Area{X1: 0, Y1: 318, X2: 239, Y2: 319})

	if err := d.FlushLines(320, nil); err != nil {
		t.Errorf("expected skip without error, got %v", err)
	}
	if err := d.FlushLines(0, make([]byte, 10)); !errors.Is(err, ErrBufferSize) {
		t.Errorf("expected ErrBufferSize, got %v", err)
	}
	if err := d.FlushLines(-1, data); !errors.Is(err, ErrBounds) {
		t.Errorf("expected ErrBounds, got %v", err)
	}
	if ops := ch.take(); len(ops) != 0 {
		t.Errorf("expected no transfers, got %v", ops)
	}
	if len(done.calls) != 5 {
		t.Fatalf("expected 5 completions, got %d", len(done.calls))
	}
	for i, buf := range done.calls[2:] {
		if buf != nil {
			t.Errorf("completion %d: expected nil buffer", i+2)
		}
	}
}

// gatedWriter holds back pure data writes while a gate is set.
type gatedWriter struct {
	mu   sync.Mutex
	gate chan struct{}
	data [][]byte
	fail error
}

func (w *gatedWriter) Command(byte, ...byte) error { return nil }

func (w *gatedWriter) Data(data ...byte) error {
	w.mu.Lock()
	gate := w.gate
	w.mu.Unlock()
	if gate != nil {
		<-gate
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.data = append(w.data, append([]byte(nil), data...))
	return w.fail
}

func (w *gatedWriter) hold() chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gate = make(chan struct{})
	w.data = nil
	return w.gate
}

func TestFlushLinesReleasesQueuedData(t *testing.T) {
	var (
		w    = new(gatedWriter)
		io   = panelio.New(w, nil)
		data = []byte{0xAA, 0xAA, 0xAA, 0xAA}
	)
	defer io.Close()

	d, err := New(io, &Config{
		Width:  2,
		Height: 2,
		OnFlushDone: func(buf []byte) {
			// Reuse the buffer as soon as it is released.
			for i := range buf {
				buf[i] = 0x55
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = io.Wait(); err != nil {
		t.Fatal(err)
	}

	gate := w.hold()
	if err = d.FlushLines(0, data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0x55, 0x55, 0x55, 0x55}) {
		t.Fatalf("expected data to be released on return, got %x", data)
	}
	close(gate)
	if err = io.Wait(); err != nil {
		t.Fatal(err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.data) != 1 {
		t.Fatalf("expected 1 data write, got %d", len(w.data))
	}
	if want := []byte{0xAA, 0xAA, 0xAA, 0xAA}; !bytes.Equal(w.data[0], want) {
		t.Errorf("expected wire payload %x, got %x", want, w.data[0])
	}
}

func TestFlushQueuedPayloadError(t *testing.T) {
	var (
		w       = new(gatedWriter)
		failure = errors.New("bus fault")
		mu      sync.Mutex
		reports []error
		io      = panelio.New(w, &panelio.Config{
			OnColorDone: func(_ any, err error) {
				mu.Lock()
				reports = append(reports, err)
				mu.Unlock()
			},
		})
	)
	defer io.Close()

	d, err := New(io, &Config{Width: 2, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err = io.Wait(); err != nil {
		t.Fatal(err)
	}

	w.mu.Lock()
	w.fail = failure
	w.mu.Unlock()

	buf := make([]byte, 2)
	if err = d.Flush(Area{X1: 0, Y1: 0, X2: 0, Y2: 0}, buf); err != nil {
		t.Fatalf("expected the payload to be handed off, got %v", err)
	}
	if err = d.Flush(Area{X1: 0, Y1: 0, X2: 0, Y2: 0}, buf); !errors.Is(err, failure) {
		t.Errorf("expected the next flush to report %v, got %v", failure, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(reports) == 0 || !errors.Is(reports[len(reports)-1], failure) {
		t.Errorf("expected the completion handler to see %v, got %v", failure, reports)
	}
}

func TestFlushByLine(t *testing.T) {
	d, ch, done := newTestDev(t, &Config{Width: 8, Height: 4, Background: color.Black})

	area := Area{X1: 2, Y1: 1, X2: 4, Y2: 2}
	colors := []pixel.RGB565{0x0102, 0x0304, 0x0506, 0x0708, 0x090A, 0x0B0C}
	buf := pixel.Encode(colors, binary.LittleEndian)
	if err := d.FlushByLine(area, buf); err != nil {
		t.Fatal(err)
	}

	ops := ch.take()
	if len(ops) != 2*5 {
		t.Fatalf("expected 2 line cycles, got %v", ops)
	}
	for row := 0; row < 2; row++ {
		payload := checkCycle(t, ops[row*5:], Area{X1: 0, Y1: 1 + row, X2: 7, Y2: 1 + row})
		want := make([]pixel.RGB565, 8)
		copy(want[2:5], colors[row*3:])
		if v := pixel.Encode(want, binary.BigEndian); !bytes.Equal(payload, v) {
			t.Errorf("row %d: expected %x, got %x", row, v, payload)
		}
	}
	if len(done.calls) != 1 || &done.calls[0][0] != &buf[0] {
		t.Error("expected one completion with the caller buffer")
	}
}

func TestFlushByLineBackground(t *testing.T) {
	d, ch, _ := newTestDev(t, &Config{Width: 3, Height: 2})
	if err := d.FlushByLine(Area{X1: 1, Y1: 0, X2: 1, Y2: 0}, []byte{0x00, 0xF8}); err != nil {
		t.Fatal(err)
	}
	payload := checkCycle(t, ch.take(), Area{X1: 0, Y1: 0, X2: 2, Y2: 0})
	if want := []byte{0xFF, 0xFF, 0xF8, 0x00, 0xFF, 0xFF}; !bytes.Equal(payload, want) {
		t.Errorf("expected %x, got %x", want, payload)
	}

	if err := d.FlushByLine(Area{X1: 0, Y1: 2, X2: 0, Y2: 2}, nil); err != nil {
		t.Errorf("expected skip without error, got %v", err)
	}
	if err := d.FlushByLine(Area{X1: 0, Y1: 0, X2: 3, Y2: 0}, make([]byte, 8)); !errors.Is(err, ErrBounds) {
		t.Errorf("expected ErrBounds, got %v", err)
	}
}

func TestDraw(t *testing.T) {
	d, ch, done := newTestDev(t, &Config{Width: 8, Height: 4})

	src := image.NewUniform(color.RGBA{R: 0xff, A: 0xff})
	if err := d.Draw(image.Rect(2, 1, 5, 3), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	payload := checkCycle(t, ch.take(), Area{X1: 2, Y1: 1, X2: 4, Y2: 2})
	want := make([]byte, 6*2)
	pixel.Fill(want, pixel.Red, binary.BigEndian)
	if !bytes.Equal(payload, want) {
		t.Errorf("expected %x, got %x", want, payload)
	}

	// Clipped to the panel.
	if err := d.Draw(image.Rect(-2, -2, 3, 2), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	checkCycle(t, ch.take(), Area{X1: 0, Y1: 0, X2: 2, Y2: 1})

	// Entirely outside.
	if err := d.Draw(image.Rect(10, 10, 20, 20), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if ops := ch.take(); len(ops) != 0 {
		t.Errorf("expected no transfers, got %v", ops)
	}
	if len(done.calls) != 2 {
		t.Errorf("expected 2 completions, got %d", len(done.calls))
	}
}

func TestDrawSourceOffset(t *testing.T) {
	d, ch, _ := newTestDev(t, &Config{Width: 4, Height: 1})

	src := pixel.NewRGB565Image(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		src.Set(x, 0, pixel.RGB565(x+1))
	}
	// Clipping the left pixel shifts the source point along with it.
	if err := d.Draw(image.Rect(-1, 0, 2, 1), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	payload := checkCycle(t, ch.take(), Area{X1: 0, Y1: 0, X2: 1, Y2: 0})
	if want := []byte{0x00, 0x02, 0x00, 0x03}; !bytes.Equal(payload, want) {
		t.Errorf("expected %x, got %x", want, payload)
	}
}

func TestFlushSerialized(t *testing.T) {
	d, ch, _ := newTestDev(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			buf := make([]byte, 240*2)
			pixel.Fill(buf, pixel.RGB565(y), binary.BigEndian)
			if err := d.Flush(Area{X1: 0, Y1: y, X2: 239, Y2: y}, buf); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	ops := ch.take()
	if len(ops) != 16*5 {
		t.Fatalf("expected 16 cycles, got %d transfers", len(ops))
	}
	for i := 0; i < 16; i++ {
		y := int(ops[i*5+1].data[1])
		payload := checkCycle(t, ops[i*5:], Area{X1: 0, Y1: y, X2: 239, Y2: y})
		if payload[0] != byte(y) || payload[1] != 0 {
			t.Fatalf("cycle %d: payload for row %d landed in another window", i, y)
		}
	}
}

func TestFlushOverSPI(t *testing.T) {
	var (
		rec = &conntest.Record{}
		c   = newSPIConn(conn.New(rec), &SPIConfig{DC: &gpiotest.Pin{N: "DC"}})
		io  = panelio.New(c, nil)
	)
	defer io.Close()

	d, err := New(io, &Config{Width: 2, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err = io.Wait(); err != nil {
		t.Fatal(err)
	}
	rec.Lock()
	rec.Ops = nil
	rec.Unlock()

	if err = d.Flush(Area{X1: 1, Y1: 1, X2: 1, Y2: 1}, []byte{0x00, 0xF8}); err != nil {
		t.Fatal(err)
	}
	if err = io.Wait(); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{
		{0x2A}, {0x00, 0x01, 0x00, 0x01},
		{0x2B}, {0x00, 0x01, 0x00, 0x01},
		{0x2C},
		{0x2C},
		{0xF8, 0x00},
	}
	rec.Lock()
	defer rec.Unlock()
	if len(rec.Ops) != len(want) {
		t.Fatalf("expected %d bus writes, got %d", len(want), len(rec.Ops))
	}
	for i, w := range want {
		if !bytes.Equal(rec.Ops[i].W, w) {
			t.Errorf("write %d: expected %x, got %x", i, w, rec.Ops[i].W)
		}
	}
}
