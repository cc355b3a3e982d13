package main

import (
	"fmt"
	"time"

	"dials.dev/spiclock/max6951"
	"dials.dev/spiclock/sidereal"
)

// civilTime reads the wall clock, rounded to the nearest tenth
type civilTime struct {
	twelveHour bool
}

func (ct civilTime) sample(now time.Time) max6951.TimeOfDay {
	// round the sub-second part, carrying into the seconds when it
	// rounds off the end; the scheduler wakes a hair before each tenth
	// boundary, so truncation would display every tick one tenth late
	tenth := (now.Nanosecond()/10000000 + 5) / 10
	if tenth > 9 {
		tenth = 0
		now = now.Add(time.Second)
	}

	hour, min, sec := now.Clock()
	tod := max6951.TimeOfDay{Hour: hour, Minute: min, Second: sec, Tenth: tenth}
	if ct.twelveHour {
		tod.PM = hour >= 12
		if hour == 0 {
			tod.Hour = 12
		} else if hour > 12 {
			tod.Hour = hour - 12
		}
	}
	return tod
}

// siderealTime converts the wall clock to local sidereal time at a
// fixed observer longitude
type siderealTime struct {
	longitude float64
}

func (st siderealTime) sample(now time.Time) max6951.TimeOfDay {
	h, m, s, tenth := sidereal.Split(sidereal.Local(now, st.longitude))
	return max6951.TimeOfDay{Hour: h, Minute: m, Second: s, Tenth: tenth}
}

// timeSourceFromSettings picks the source and the fixed render options
// for the configured mode
func timeSourceFromSettings(settings configSettings) (timeSource, max6951.FrameOptions, error) {
	opts := max6951.FrameOptions{
		Colon:      settings.GetBool(sColon),
		ColonBlink: settings.GetBool(sBlink),
		Tenths:     settings.GetBool(sTenths),
	}

	switch settings.GetString(sClockMode) {
	case "civil24", "24":
		return civilTime{}, opts, nil
	case "civil12", "12":
		opts.TwelveHour = true
		return civilTime{twelveHour: true}, opts, nil
	case "sidereal":
		return siderealTime{longitude: settings.GetFloat64(sLongitude)}, opts, nil
	}
	return nil, opts, fmt.Errorf("unknown clock mode: %s", settings.GetString(sClockMode))
}
