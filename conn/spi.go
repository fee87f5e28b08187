// Package conn provides the raw SPI bus used to talk to the panel controller.
package conn

import (
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// DefaultMaxTxSize is used when the bus does not report a transfer limit.
const DefaultMaxTxSize = 4096

var debug = os.Getenv("DISPLAY_DEBUG") != ""

// SPI is a connected SPI device that splits large writes into transfers the
// bus accepts.
type SPI struct {
	port  spi.PortCloser
	conn  conn.Conn
	maxTx int
}

// OpenSPI opens the named SPI port (use "" for the first available port) and
// connects to it at the requested speed and mode with 8 bits per word.
func OpenSPI(name string, speed physic.Frequency, mode spi.Mode) (*SPI, error) {
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("conn: open SPI port %q: %w", name, err)
	}

	c, err := p.Connect(speed, mode, 8)
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("conn: connect to SPI port %s at %s: %w", p, speed, err)
	}

	s := New(c)
	s.port = p
	return s, nil
}

// New wraps an already connected device.
func New(c conn.Conn) *SPI {
	s := &SPI{
		conn:  c,
		maxTx: DefaultMaxTxSize,
	}
	if l, ok := c.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 {
			s.maxTx = n
		}
	}
	return s
}

func (s *SPI) String() string {
	if s.port != nil {
		return fmt.Sprintf("SPI %s", s.port)
	}
	return fmt.Sprintf("SPI %s", s.conn)
}

// MaxTxSize is the largest single transfer issued on the bus.
func (s *SPI) MaxTxSize() int {
	return s.maxTx
}

// Close releases the port. Devices created with New have no port to release.
func (s *SPI) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

// Write sends b in as many transfers as the bus limit requires.
func (s *SPI) Write(b []byte) (n int, err error) {
	if debug && len(b) > s.maxTx {
		log.Printf("conn: write %d bytes of data in %d chunks", len(b), (len(b)+s.maxTx-1)/s.maxTx)
	}
	for len(b) > 0 {
		chunk := b
		if len(chunk) > s.maxTx {
			chunk = chunk[:s.maxTx]
		}
		if err = s.conn.Tx(chunk, nil); err != nil {
			return
		}
		n += len(chunk)
		b = b[len(chunk):]
	}
	return
}
