// Package sidereal converts wall-clock instants to local sidereal time.
package sidereal

import "time"

// 2000-01-01T00:00:00 UTC.  All day counts in the polynomial are taken
// relative to this instant so the float64 math works on small numbers
// instead of raw Julian dates; at full Julian-date magnitude the
// precision loss shows up as whole seconds of drift over a few hours.
const epochUnix = 946684800

// Greenwich computes Greenwich mean sidereal time in hours at t using
// the usual polynomial approximation.  The result is not wrapped into
// [0,24).
func Greenwich(t time.Time) float64 {
	// seconds since the epoch, split at the most recent UTC midnight
	now := float64(t.Unix()-epochUnix) + float64(t.Nanosecond())/1e9
	midnight := float64((t.Unix()/86400)*86400 - epochUnix)

	// whole days from J2000 (noon, hence the half day), hours since
	// midnight, julian centuries from J2000
	d0 := midnight/86400.0 - 0.5
	h := (now - midnight) / 3600.0
	tc := (now/86400.0 - 0.5) / 36525.0

	return 6.697374558 + 0.06570982441908*d0 + 1.00273790935*h + 0.000026*tc*tc
}

// Local converts t to local sidereal hours at an observer longitude in
// degrees, east positive, and wraps the result into [0,24).
func Local(t time.Time, longitude float64) float64 {
	lst := Greenwich(t) + longitude/360.0*24.0
	for lst < 0 {
		lst += 24.0
	}
	for lst >= 24.0 {
		lst -= 24.0
	}
	return lst
}

// Split decomposes fractional hours into display fields by successive
// truncation.  Nothing below the tenths place rounds.
func Split(hours float64) (h, m, s, tenth int) {
	h = int(hours)
	hours = (hours - float64(h)) * 60.0
	m = int(hours)
	hours = (hours - float64(m)) * 60.0
	s = int(hours)
	tenth = int((hours - float64(s)) * 10.0)
	return
}
