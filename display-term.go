package main

import (
	"syscall"

	"github.com/nsf/termbox-go"

	"dials.dev/spiclock/max6951"
)

// termDisplay renders frames as 7-segment ascii art in the terminal,
// for running without the hardware attached
type termDisplay struct {
	current max6951.Frame
	on      bool
	lamp    bool
	bright  uint8
}

// column of each digit position, leaving gaps for the colons
var termDigitCol = [7]int{0, 4, 10, 14, 20, 24, 30}

const termColonHM = 8
const termColonMS = 18
const termDecimal = 28
const termMeridiem = 34

func (td *termDisplay) OpenDisplay(settings configSettings) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.Flush()

	go td.watchKeys()
	return nil
}

// watchKeys turns the quit keys into the same signal ^C would send, so
// shutdown runs through one path
func (td *termDisplay) watchKeys() {
	for true {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
				syscall.Kill(syscall.Getpid(), syscall.SIGINT)
				return
			}
		case termbox.EventInterrupt:
			return
		}
	}
}

func (td *termDisplay) DebugDump(on bool) {
}

func (td *termDisplay) SetBrightness(b uint8) error {
	td.bright = b
	return td.redraw()
}

func (td *termDisplay) DisplayOn(on bool) error {
	td.on = on
	return td.redraw()
}

func (td *termDisplay) LampTest(on bool) error {
	td.lamp = on
	return td.redraw()
}

func (td *termDisplay) WriteFrame(frame max6951.Frame) error {
	td.current = frame
	return td.redraw()
}

func (td *termDisplay) Close() error {
	termbox.Interrupt()
	termbox.Close()
	return nil
}

func (td *termDisplay) redraw() error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	fg := termbox.ColorDefault
	if td.bright >= 12 {
		fg = termbox.ColorDefault | termbox.AttrBold
	}

	frame := td.current
	if td.lamp {
		// every segment on at full drive, digit data ignored
		for i := range frame.Digits {
			frame.Digits[i] = 0xFF
		}
		frame.Decode = 0
	}

	if td.on || td.lamp {
		for i := 0; i < 7; i++ {
			drawDigit(termDigitCol[i], 1, max6951.SegmentsAt(frame, byte(i)), fg)
		}
		misc := frame.Digits[max6951.DIGIT_MISC]
		if misc&max6951.MASK_COLON_HM != 0 {
			termbox.SetCell(termColonHM, 2, ':', fg, termbox.ColorDefault)
		}
		if misc&max6951.MASK_COLON_MS != 0 {
			termbox.SetCell(termColonMS, 2, ':', fg, termbox.ColorDefault)
		}
		if max6951.SegmentsAt(frame, max6951.DIGIT_1_SEC)&max6951.MASK_DP != 0 {
			termbox.SetCell(termDecimal, 3, '.', fg, termbox.ColorDefault)
		}
		if misc&max6951.MASK_AM != 0 {
			termbox.SetCell(termMeridiem, 3, 'A', fg, termbox.ColorDefault)
		}
		if misc&max6951.MASK_PM != 0 {
			termbox.SetCell(termMeridiem, 3, 'P', fg, termbox.ColorDefault)
		}
	}

	for i, c := range "q quits" {
		termbox.SetCell(i, 5, c, termbox.ColorDefault, termbox.ColorDefault)
	}

	return termbox.Flush()
}

func drawDigit(x, y int, segs byte, fg termbox.Attribute) {
	bg := termbox.ColorDefault
	if segs&(1<<max6951.SEG_A) != 0 {
		termbox.SetCell(x+1, y, '_', fg, bg)
	}
	if segs&(1<<max6951.SEG_F) != 0 {
		termbox.SetCell(x, y+1, '|', fg, bg)
	}
	if segs&(1<<max6951.SEG_G) != 0 {
		termbox.SetCell(x+1, y+1, '_', fg, bg)
	}
	if segs&(1<<max6951.SEG_B) != 0 {
		termbox.SetCell(x+2, y+1, '|', fg, bg)
	}
	if segs&(1<<max6951.SEG_E) != 0 {
		termbox.SetCell(x, y+2, '|', fg, bg)
	}
	if segs&(1<<max6951.SEG_D) != 0 {
		termbox.SetCell(x+1, y+2, '_', fg, bg)
	}
	if segs&(1<<max6951.SEG_C) != 0 {
		termbox.SetCell(x+2, y+2, '|', fg, bg)
	}
}
