package nv6001

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/nv6001/conn"
)

// Conn errors.
var (
	ErrDCPin    = errors.New("nv6001: data/command (DC) GPIO pin is invalid")
	ErrSPISpeed = errors.New("nv6001: invalid SPI speed")
)

// Conn is the connection interface for communicating with the controller.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends a command byte with optional parameters.
	Command(byte, ...byte) error

	// Data sends data bytes without a command byte.
	Data(...byte) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port name as known to the periph SPI registry, "" selects the first port.
	Port string

	// Mode is the SPI mode, the controller uses mode 0.
	Mode spi.Mode

	// SpeedHz is the SPI clock, it must be one of ValidSPISpeeds.
	SpeedHz uint32

	// DataLow drives DC low for data and high for commands.
	DataLow bool

	// DC is the data/command pin.
	DC gpio.PinOut

	// CS is an optional chip select pin, for buses without hardware CS.
	CS gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Mode:    spi.Mode0,
	SpeedHz: 40_000_000,
	DC:      gpioreg.ByName("GPIO24"),
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	10_000_000,
	16_000_000,
	20_000_000,
	26_000_000,
	32_000_000,
	40_000_000,
	48_000_000,
	80_000_000,
}

func validSPISpeed(hz uint32) bool {
	for _, speed := range ValidSPISpeeds {
		if speed == hz {
			return true
		}
	}
	return false
}

// spiBus is the raw byte stream underneath the DC/CS framing.
type spiBus interface {
	io.WriteCloser
	String() string
}

type spiConn struct {
	bus     spiBus
	dc      gpio.PinOut
	dcLevel gpio.Level
	dcKnown bool
	cs      gpio.PinOut
	dataLow bool
}

// OpenSPI opens the SPI bus and returns a connection for the controller.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if !validSPISpeed(config.SpeedHz) {
		return nil, fmt.Errorf("%w %dHz", ErrSPISpeed, config.SpeedHz)
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}

	bus, err := conn.OpenSPI(config.Port, physic.Frequency(config.SpeedHz)*physic.Hertz, config.Mode)
	if err != nil {
		return nil, err
	}
	return newSPIConn(bus, config), nil
}

func newSPIConn(bus spiBus, config *SPIConfig) *spiConn {
	return &spiConn{
		bus:     bus,
		dc:      config.DC,
		cs:      config.CS,
		dataLow: config.DataLow,
	}
}

func (c *spiConn) String() string {
	return c.bus.String()
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcKnown || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcKnown = true
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) commandLevel() gpio.Level {
	return gpio.Level(c.dataLow)
}

func (c *spiConn) dataLevel() gpio.Level {
	return gpio.Level(!c.dataLow)
}

func (c *spiConn) Command(cmnd byte, data ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.updateDC(c.commandLevel()); err != nil {
		return
	}
	if _, err = c.bus.Write([]byte{cmnd}); err != nil {
		return
	}
	if len(data) > 0 {
		if err = c.updateDC(c.dataLevel()); err != nil {
			return
		}
		if _, err = c.bus.Write(data); err != nil {
			return
		}
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(c.dataLevel()); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if _, err = c.bus.Write(data); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}
