package max6951

import (
	"fmt"
	"log"
)

// register map
const REG_DECODE_MODE = 0x01
const REG_INTENSITY = 0x02
const REG_SCAN_LIMIT = 0x03
const REG_CONFIG = 0x04
const REG_TEST = 0x07

// digit registers, one per position, by data plane
const REG_DIGITS_P0 = 0x20
const REG_DIGITS_P1 = 0x40
const REG_DIGITS = 0x60 // both planes at once

// configuration register bits
const CONFIG_S = 0x01 // 1 = normal operation, 0 = shutdown (display blank)
const CONFIG_B = 0x04 // blink rate select
const CONFIG_E = 0x08 // global blink enable
const CONFIG_T = 0x10 // reset blink timing
const CONFIG_R = 0x20 // clear digit data in both planes

// digit positions, left to right
const DIGIT_10_HR = 0
const DIGIT_1_HR = 1
const DIGIT_10_MIN = 2
const DIGIT_1_MIN = 3
const DIGIT_10_SEC = 4
const DIGIT_1_SEC = 5
const DIGIT_TENTHS = 6
const DIGIT_MISC = 7

// segment bit positions
const SEG_G = 0
const SEG_F = 1
const SEG_E = 2
const SEG_D = 3
const SEG_C = 4
const SEG_B = 5
const SEG_A = 6
const SEG_DP = 7
const MASK_DP = 0x80

// the misc digit is wired to the indicator LEDs, not a numeral
const MASK_COLON_HM = 1<<SEG_E | 1<<SEG_F
const MASK_COLON_MS = 1<<SEG_B | 1<<SEG_C
const MASK_AM = 1 << SEG_A
const MASK_PM = 1 << SEG_D

// decode-mode register: bit set = hardware numeral decode for that
// position, bit clear = raw segment data.  The misc digit is always raw.
const DECODE_NUMERALS = 0x7F

const BRIGHTNESS_MAX = 15

// Sink is the write half of the serial transport under the controller.
type Sink interface {
	WriteReg(reg byte, data byte) error
}

type Device struct {
	sink    Sink
	dump    bool
	current Frame
}

// Open wakes the controller and wipes whatever the last run left in the
// digit planes: all eight digits scanned, numeral decode everywhere but
// the misc digit, nothing lit until the first frame arrives.
func Open(sink Sink, brightness uint8) (*Device, error) {
	this := &Device{sink: sink}
	if err := this.sink.WriteReg(REG_CONFIG, CONFIG_R|CONFIG_S); err != nil {
		return nil, err
	}
	if err := this.sink.WriteReg(REG_SCAN_LIMIT, 7); err != nil {
		return nil, err
	}
	if err := this.SetBrightness(brightness); err != nil {
		return nil, err
	}
	return this, nil
}

func (this *Device) DebugDump(on bool) {
	this.dump = on
}

// WriteFrame pushes a full display refresh: decode mask first, then all
// eight digits in position order.  Writing the mask before the digit
// data keeps a position from being latched under the wrong decode sense
// with last tick's byte still in it.
func (this *Device) WriteFrame(frame Frame) error {
	if err := this.sink.WriteReg(REG_DECODE_MODE, frame.Decode); err != nil {
		return err
	}
	for i := 0; i < len(frame.Digits); i++ {
		if err := this.sink.WriteReg(REG_DIGITS|byte(i), frame.Digits[i]); err != nil {
			return err
		}
	}
	this.current = frame
	if this.dump {
		this.dumpDisplay()
	}
	return nil
}

func (this *Device) SetBrightness(level uint8) error {
	if level > BRIGHTNESS_MAX {
		return fmt.Errorf("bad brightness level: %d", level)
	}
	return this.sink.WriteReg(REG_INTENSITY, level)
}

// LampTest forces every segment on at full drive, ignoring digit data.
func (this *Device) LampTest(on bool) error {
	var val byte
	if on {
		val = 1
	}
	return this.sink.WriteReg(REG_TEST, val)
}

// DisplayOn leaves digit data intact; off is the controller's shutdown
// mode, which blanks every segment.
func (this *Device) DisplayOn(on bool) error {
	var val byte = CONFIG_S
	if !on {
		val = 0
	}
	return this.sink.WriteReg(REG_CONFIG, val)
}

func (this *Device) dumpDisplay() {
	//  _   _     _   _     _   _   _
	// |   | | : | | | | : | | | |.  |  A
	// |_  |_|   |_| |_|   |_| |_| '_|

	var segs [7]byte
	for i := 0; i < 7; i++ {
		segs[i] = SegmentsAt(this.current, byte(i))
	}
	misc := this.current.Digits[DIGIT_MISC]

	// TOP
	line := "\n"
	for i := 0; i < 7; i++ {
		if i == DIGIT_10_MIN || i == DIGIT_10_SEC || i == DIGIT_TENTHS {
			line += " "
		}
		if segs[i]&(1<<SEG_A) != 0 {
			line += " _ "
		} else {
			line += "   "
		}
	}
	// MID, with colons in the gaps
	line += "\n"
	for i := 0; i < 7; i++ {
		if i == DIGIT_10_MIN && misc&MASK_COLON_HM != 0 {
			line += ":"
		} else if i == DIGIT_10_SEC && misc&MASK_COLON_MS != 0 {
			line += ":"
		} else if i == DIGIT_10_MIN || i == DIGIT_10_SEC || i == DIGIT_TENTHS {
			line += " "
		}
		if segs[i]&(1<<SEG_F) != 0 {
			line += "|"
		} else {
			line += " "
		}
		if segs[i]&(1<<SEG_G) != 0 {
			line += "_"
		} else {
			line += " "
		}
		if segs[i]&(1<<SEG_B) != 0 {
			line += "|"
		} else {
			line += " "
		}
	}
	if misc&MASK_AM != 0 {
		line += "  A"
	} else if misc&MASK_PM != 0 {
		line += "  P"
	}
	// BOT, with the seconds decimal point in the last gap
	line += "\n"
	for i := 0; i < 7; i++ {
		if i == DIGIT_TENTHS && segs[DIGIT_1_SEC]&MASK_DP != 0 {
			line += "."
		} else if i == DIGIT_10_MIN || i == DIGIT_10_SEC || i == DIGIT_TENTHS {
			line += " "
		}
		if segs[i]&(1<<SEG_E) != 0 {
			line += "|"
		} else {
			line += " "
		}
		if segs[i]&(1<<SEG_D) != 0 {
			line += "_"
		} else {
			line += " "
		}
		if segs[i]&(1<<SEG_C) != 0 {
			line += "|"
		} else {
			line += " "
		}
	}
	line += "\n"
	log.Println(line)
}
