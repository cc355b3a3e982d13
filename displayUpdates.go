package main

import (
	"time"

	"dials.dev/spiclock/max6951"
)

const dTenth = 100 * time.Millisecond

func init() {
	// runUpdates wg
	wg.Add(1)
}

// nextWake rounds now up to the next tenth-of-second boundary and backs
// off by the write-path latency allowance, so the new digits latch
// right as the boundary passes.  The rounding reads the nearest
// hundredth, which maps a wake that lands just shy of its own boundary
// onto that boundary before stepping forward.  Every target is derived
// from a fresh clock reading; a late tick never skews the ones after it.
func nextWake(now time.Time, fudge time.Duration) time.Time {
	hundredth := now.Nanosecond() / 10000000
	tenth := (hundredth+5)/10 + 1
	boundary := now.Truncate(time.Second).Add(time.Duration(tenth) * dTenth)
	return boundary.Add(-fudge)
}

// tickWaiter carries the loop to its next absolute target.  Two ways to
// get there: an absolute timer wake, or polling the clock at fine grain
// until the target passes.
type tickWaiter interface {
	waitUntil(rt runtimeConfig, target time.Time) bool
}

type timerWaiter struct{}

func (tw timerWaiter) waitUntil(rt runtimeConfig, target time.Time) bool {
	d := target.Sub(rt.clock.Now())
	if d < 0 {
		d = 0
	}
	select {
	case <-rt.comms.quit:
		return true
	case <-rt.clock.After(d):
		return false
	}
}

type pollWaiter struct {
	interval time.Duration
}

func (pw pollWaiter) waitUntil(rt runtimeConfig, target time.Time) bool {
	for rt.clock.Now().Before(target) {
		select {
		case <-rt.comms.quit:
			return true
		default:
		}
		rt.clock.Sleep(pw.interval)
	}
	return false
}

func waiterFromSettings(settings configSettings) tickWaiter {
	if settings.GetString(sWake) == "poll" {
		return pollWaiter{interval: settings.GetDuration(sPollEvery)}
	}
	return timerWaiter{}
}

func startUpdates(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Updates"}
	go runUpdates(rt)
}

func runUpdates(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runUpdates")
	}()

	settings := rt.settings

	source, opts, err := timeSourceFromSettings(settings)
	if err != nil {
		rt.comms.fatal <- err
		return
	}
	waiter := waiterFromSettings(settings)
	fudge := settings.GetDuration(sFudge)
	debug := settings.GetBool(sDebug)

	if err := rt.display.OpenDisplay(settings); err != nil {
		rt.comms.fatal <- err
		return
	}
	defer rt.display.Close()
	// leave the display dark on the way out, whatever got us there
	defer rt.display.DisplayOn(false)

	rt.display.DebugDump(debug)
	if err := rt.display.SetBrightness(settings.GetByte(sBright) & 0x0F); err != nil {
		rt.comms.fatal <- err
		return
	}

	// flash every segment once so dead ones show at boot
	if !settings.GetBool(sSkipTest) {
		rt.display.LampTest(true)
		rt.clock.Sleep(time.Second)
		rt.display.LampTest(false)
	}
	if err := rt.display.DisplayOn(true); err != nil {
		rt.comms.fatal <- err
		return
	}

	for true {
		target := nextWake(rt.clock.Now(), fudge)
		if waiter.waitUntil(rt, target) {
			rt.logger.Println("quit from runUpdates")
			return
		}

		woke := rt.clock.Now()
		frame := max6951.EncodeFrame(source.sample(woke), opts)
		if err := rt.display.WriteFrame(frame); err != nil {
			rt.comms.fatal <- err
			return
		}
		rt.stats.tick(woke, target)
		if debug {
			rt.logger.Printf("wake error %v", woke.Sub(target))
		}
	}
}
