package max6951

import "strings"

// TimeOfDay is one display sample, already decomposed and already
// converted to 12-hour form when that mode is in effect (so Hour is
// 1-12 and PM is meaningful, otherwise Hour is 0-23 and PM is ignored).
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
	Tenth  int
	PM     bool
}

// FrameOptions selects how a sample renders.  Fixed for the process
// lifetime.
type FrameOptions struct {
	TwelveHour bool
	Colon      bool
	ColonBlink bool
	Tenths     bool
}

// Frame is one full refresh: eight digit bytes in position order plus
// the decode mask that tells the controller which of them are numerals.
type Frame struct {
	Digits [8]byte
	Decode byte
}

// EncodeFrame renders a sample into digit bytes.  Pure; the scheduler
// calls it once per tick.
func EncodeFrame(t TimeOfDay, opt FrameOptions) Frame {
	frame := Frame{Decode: DECODE_NUMERALS}
	frame.Digits[DIGIT_10_HR] = byte(t.Hour / 10)
	frame.Digits[DIGIT_1_HR] = byte(t.Hour % 10)
	frame.Digits[DIGIT_10_MIN] = byte(t.Minute / 10)
	frame.Digits[DIGIT_1_MIN] = byte(t.Minute % 10)
	frame.Digits[DIGIT_10_SEC] = byte(t.Second / 10)
	frame.Digits[DIGIT_1_SEC] = byte(t.Second % 10)
	frame.Digits[DIGIT_TENTHS] = byte(t.Tenth)

	if opt.Tenths {
		// the decimal point marks that there's precision to the right
		frame.Digits[DIGIT_1_SEC] |= MASK_DP
	} else {
		// raw zero renders the position dark
		frame.Decode &= ^byte(1 << DIGIT_TENTHS)
		frame.Digits[DIGIT_TENTHS] = 0
	}
	if opt.TwelveHour && t.Hour < 10 {
		// blank the leading zero
		frame.Decode &= ^byte(1 << DIGIT_10_HR)
		frame.Digits[DIGIT_10_HR] = 0
	}

	colon := opt.Colon
	if colon && opt.ColonBlink {
		colon = t.Second%2 == 0
	}
	var misc byte
	if colon {
		misc |= MASK_COLON_HM | MASK_COLON_MS
	}
	if opt.TwelveHour {
		if t.PM {
			misc |= MASK_PM
		} else {
			misc |= MASK_AM
		}
	}
	frame.Digits[DIGIT_MISC] = misc
	return frame
}

// the controller's hexadecimal decode font, for rendering frames
// off-device the same way the hardware would
var numeralSegments = [16]byte{
	0x7E, // 0
	0x30, // 1
	0x6D, // 2
	0x79, // 3
	0x33, // 4
	0x5B, // 5
	0x5F, // 6
	0x70, // 7
	0x7F, // 8
	0x7B, // 9
	0x77, // A
	0x1F, // b
	0x4E, // C
	0x3D, // d
	0x4F, // E
	0x47, // F
}

// SegmentsAt resolves a frame position to the raw segments the
// controller would light: font lookup for decoded positions, the byte
// itself for raw ones.  The decimal point passes through either way.
func SegmentsAt(frame Frame, pos byte) byte {
	val := frame.Digits[pos]
	if frame.Decode&(1<<pos) == 0 {
		return val
	}
	return numeralSegments[val&0x0F] | val&MASK_DP
}

const hexChars = "0123456789AbCdEF"

// String renders the frame the way it reads on the display, e.g.
// "12:05:09.3 A" or "18 41 52.7".
func (f Frame) String() string {
	var chars [7]byte
	for i := 0; i < 7; i++ {
		if f.Decode&(1<<i) != 0 {
			chars[i] = hexChars[f.Digits[i]&0x0F]
		} else if f.Digits[i]&^byte(MASK_DP) == 0 {
			chars[i] = ' '
		} else {
			chars[i] = '#'
		}
	}
	misc := f.Digits[DIGIT_MISC]
	out := string(chars[0:2])
	if misc&MASK_COLON_HM != 0 {
		out += ":"
	} else {
		out += " "
	}
	out += string(chars[2:4])
	if misc&MASK_COLON_MS != 0 {
		out += ":"
	} else {
		out += " "
	}
	out += string(chars[4:6])
	if f.Digits[DIGIT_1_SEC]&MASK_DP != 0 {
		out += "."
	} else {
		out += " "
	}
	out += string(chars[6])
	if misc&MASK_AM != 0 {
		out += " A"
	} else if misc&MASK_PM != 0 {
		out += " P"
	}
	return strings.TrimRight(out, " ")
}
