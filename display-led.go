package main

import (
	"dials.dev/spiclock/max6951"
	"dials.dev/spiclock/spibus"
)

// ledDisplay drives the controller over the configured spi driver
type ledDisplay struct {
	bus spibus.Bus
	dev *max6951.Device
}

func (ss *ledDisplay) OpenDisplay(settings configSettings) error {
	bus, err := spibus.Open(
		settings.GetString(sSPIDriver),
		settings.GetString(sSPIPort),
		settings.GetInt(sSPISpeed),
		settings.GetInt(sSPISelect))
	if err != nil {
		return err
	}

	dev, err := max6951.Open(bus, settings.GetByte(sBright)&0x0F)
	if err != nil {
		bus.Close()
		return err
	}

	ss.bus = bus
	ss.dev = dev
	return nil
}

func (ss *ledDisplay) DebugDump(on bool) {
	ss.dev.DebugDump(on)
}

func (ss *ledDisplay) SetBrightness(b uint8) error {
	return ss.dev.SetBrightness(b)
}

func (ss *ledDisplay) DisplayOn(on bool) error {
	return ss.dev.DisplayOn(on)
}

func (ss *ledDisplay) LampTest(on bool) error {
	return ss.dev.LampTest(on)
}

func (ss *ledDisplay) WriteFrame(frame max6951.Frame) error {
	return ss.dev.WriteFrame(frame)
}

func (ss *ledDisplay) Close() error {
	if ss.bus == nil {
		return nil
	}
	return ss.bus.Close()
}
