package main

import (
	"time"

	"dials.dev/spiclock/max6951"
)

// display is where encoded frames land: led drives the controller over
// spi, term renders to the console, log records for tests
type display interface {
	OpenDisplay(settings configSettings) error
	DebugDump(on bool)
	SetBrightness(b uint8) error
	DisplayOn(on bool) error
	LampTest(on bool) error
	WriteFrame(frame max6951.Frame) error
	Close() error
}

// timeSource decomposes an instant into what the display should read
type timeSource interface {
	sample(now time.Time) max6951.TimeOfDay
}

// gpsSource produces a reference time from an attached receiver
type gpsSource interface {
	readFix(rt runtimeConfig) (time.Time, error)
}
