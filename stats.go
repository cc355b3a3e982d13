package main

import (
	"sync"
	"time"
)

// a tick missing its boundary by more than this counts as late
const lateTick = 10 * time.Millisecond

// tickStats collects scheduling diagnostics.  The update loop writes,
// the gps watcher writes, the status service reads.
type tickStats struct {
	mutex      sync.Mutex
	ticks      int64
	late       int64
	lastTick   time.Time
	lastTarget time.Time
	worstWake  time.Duration
	totalWake  time.Duration
	gpsOffset  time.Duration
	gpsSeen    time.Time
}

type statsView struct {
	Ticks     int64
	Late      int64
	LastTick  time.Time
	NextWake  time.Time
	WorstWake time.Duration
	MeanWake  time.Duration
	GPSOffset time.Duration
	GPSSeen   time.Time
}

func (ts *tickStats) tick(woke time.Time, target time.Time) {
	wakeErr := woke.Sub(target)

	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	ts.ticks++
	ts.lastTick = woke
	ts.lastTarget = target
	ts.totalWake += wakeErr
	if wakeErr > ts.worstWake {
		ts.worstWake = wakeErr
	}
	if wakeErr > lateTick {
		ts.late++
	}
}

func (ts *tickStats) gpsReport(offset time.Duration, when time.Time) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	ts.gpsOffset = offset
	ts.gpsSeen = when
}

func (ts *tickStats) view() statsView {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	v := statsView{
		Ticks:     ts.ticks,
		Late:      ts.late,
		LastTick:  ts.lastTick,
		WorstWake: ts.worstWake,
		GPSOffset: ts.gpsOffset,
		GPSSeen:   ts.gpsSeen,
	}
	if ts.ticks > 0 {
		v.MeanWake = ts.totalWake / time.Duration(ts.ticks)
		// one display period past the last target, which is what the
		// update loop arms next when it runs on schedule
		v.NextWake = ts.lastTarget.Add(dTenth)
	}
	return v
}
