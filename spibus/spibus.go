// Package spibus is the serial transport under the display controller.
// Three drivers: periph (spidev via periph.io), rpio (direct register
// access via go-rpio), and sim (log writes, no hardware).
package spibus

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Bus pushes register/data pairs at the display controller.
type Bus interface {
	WriteReg(reg byte, data byte) error
	Close() error
}

// Open picks a driver by name.  port is a spidev port name for the
// periph driver ("" means the first available); the rpio driver always
// drives SPI0 and uses chipSelect to pick the CE line.
func Open(driver string, port string, speedHz int, chipSelect int) (Bus, error) {
	switch driver {
	case "periph":
		return openPeriph(port, speedHz)
	case "rpio":
		return openRpio(speedHz, chipSelect)
	case "sim":
		return openSim(), nil
	}
	return nil, fmt.Errorf("unknown spi driver: %s", driver)
}

type periphBus struct {
	port spi.PortCloser
	conn spi.Conn
}

func openPeriph(port string, speedHz int) (*periphBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, err
	}
	// the controller latches on the rising clock edge, mode 0, 16-bit
	// command words sent as two bytes under one chip select
	conn, err := p.Connect(physic.Frequency(speedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		p.Close()
		return nil, err
	}
	return &periphBus{port: p, conn: conn}, nil
}

func (pb *periphBus) WriteReg(reg byte, data byte) error {
	return pb.conn.Tx([]byte{reg, data}, nil)
}

func (pb *periphBus) Close() error {
	return pb.port.Close()
}
