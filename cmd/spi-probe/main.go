package main

import (
	"flag"
	"fmt"
	"log"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/nv6001/conn"
)

func main() {
	portFlag := flag.String("port", "", "SPI port name (default: use first available)")
	speedFlag := flag.Int64("speed", 40_000_000, "SPI speed in Hz")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalln("host init failed: ", err)
	}

	c, err := conn.OpenSPI(*portFlag, physic.Frequency(*speedFlag)*physic.Hertz, spi.Mode0)
	if err != nil {
		log.Fatalln("open failed: ", err)
	}
	fmt.Println("connected using", c, "max transfer", c.MaxTxSize())
	if err = c.Close(); err != nil {
		log.Fatalln("close failed: ", err)
	}
}
