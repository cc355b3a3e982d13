package spibus

import (
	"github.com/stianeikeland/go-rpio"
)

// rpioBus drives the BCM SPI0 block directly through /dev/gpiomem,
// for kernels without spidev configured
type rpioBus struct{}

func openRpio(speedHz int, chipSelect int) (*rpioBus, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		rpio.Close()
		return nil, err
	}
	rpio.SpiSpeed(speedHz)
	rpio.SpiChipSelect(uint8(chipSelect))
	return &rpioBus{}, nil
}

func (rb *rpioBus) WriteReg(reg byte, data byte) error {
	rpio.SpiTransmit(reg, data)
	return nil
}

func (rb *rpioBus) Close() error {
	rpio.SpiEnd(rpio.Spi0)
	return rpio.Close()
}
