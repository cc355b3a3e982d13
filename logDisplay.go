package main

import (
	"log"

	"dials.dev/spiclock/max6951"
)

// logDisplay records frames instead of writing hardware; tests read
// back what the update loop produced
type logDisplay struct {
	curDisplay string
	curFrame   max6951.Frame
	frames     []max6951.Frame
	audit      []string
	debugDump  bool
	brightness uint8
	displayOn  bool
	lampTest   int
	closed     bool
}

func (ld *logDisplay) OpenDisplay(settings configSettings) error {
	ld.curDisplay = ""
	ld.debugDump = settings.GetBool(sDebug)
	ld.brightness = 0
	ld.displayOn = false
	ld.frames = nil
	ld.audit = []string{}
	return nil
}

func (ld *logDisplay) DebugDump(on bool) {
	ld.debugDump = on
}

func (ld *logDisplay) SetBrightness(b uint8) error {
	ld.brightness = b
	return nil
}

func (ld *logDisplay) DisplayOn(on bool) error {
	ld.displayOn = on
	return nil
}

func (ld *logDisplay) LampTest(on bool) error {
	if on {
		ld.lampTest++
	}
	return nil
}

func (ld *logDisplay) WriteFrame(frame max6951.Frame) error {
	ld.curFrame = frame
	ld.frames = append(ld.frames, frame)

	// the audit trail only keeps changes, the way the display reads
	e := frame.String()
	if e != ld.curDisplay {
		log.Println(e)
		ld.audit = append(ld.audit, e)
	}
	ld.curDisplay = e
	return nil
}

func (ld *logDisplay) Close() error {
	ld.closed = true
	return nil
}
