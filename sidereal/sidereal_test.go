package sidereal

import (
	"math"
	"testing"
	"time"

	"gotest.tools/assert"
)

// one second of sidereal time, as an hour fraction
const tolerance = 1.0 / 3600.0

func wrap24(h float64) float64 {
	for h < 0 {
		h += 24.0
	}
	for h >= 24.0 {
		h -= 24.0
	}
	return h
}

func TestGreenwichReference(t *testing.T) {
	// J2000.0 itself: published GMST is 18h 41m 50.548s
	noon := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Assert(t, math.Abs(wrap24(Greenwich(noon))-18.697374558) < tolerance)

	// twelve hours earlier: 6h 39m 52.27s
	midnight := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Assert(t, math.Abs(wrap24(Greenwich(midnight))-6.664519646) < tolerance)
}

func TestGreenwichAdvancesFasterThanCivil(t *testing.T) {
	// a sidereal day is ~3m56s short of a civil day, so the same wall
	// clock hour reads about 0.0657 sidereal hours later the next day
	day1 := time.Date(2024, 3, 9, 4, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	gain := wrap24(Greenwich(day2)) - wrap24(Greenwich(day1))
	assert.Assert(t, math.Abs(gain-0.0657098) < tolerance)
}

func TestLocalLongitude(t *testing.T) {
	noon := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	// 90 degrees east is six sidereal hours ahead, wrapped
	east := Local(noon, 90.0)
	assert.Assert(t, math.Abs(east-0.697374558) < tolerance)

	// 90 degrees west is six behind
	west := Local(noon, -90.0)
	assert.Assert(t, math.Abs(west-12.697374558) < tolerance)
}

func TestLocalWrapRange(t *testing.T) {
	when := time.Date(2026, 8, 23, 21, 17, 3, 400000000, time.UTC)
	for lon := -360.0; lon <= 360.0; lon += 7.5 {
		lst := Local(when, lon)
		assert.Assert(t, lst >= 0.0 && lst < 24.0, "lon %f gave %f", lon, lst)
	}

	// a full turn of longitude lands on the same sidereal time
	assert.Assert(t, math.Abs(Local(when, 360.0)-Local(when, 0.0)) < 1e-9)
	assert.Assert(t, math.Abs(Local(when, -360.0)-Local(when, 0.0)) < 1e-9)
}

func TestSplit(t *testing.T) {
	h, m, s, tenth := Split(18.697374558)
	assert.Equal(t, h, 18)
	assert.Equal(t, m, 41)
	assert.Equal(t, s, 50)
	assert.Equal(t, tenth, 5)

	h, m, s, tenth = Split(0.0)
	assert.Equal(t, h, 0)
	assert.Equal(t, m, 0)
	assert.Equal(t, s, 0)
	assert.Equal(t, tenth, 0)

	// truncation, not rounding: 1.9999h is 1:59:59.6
	h, m, s, tenth = Split(1.9999)
	assert.Equal(t, h, 1)
	assert.Equal(t, m, 59)
	assert.Equal(t, s, 59)
	assert.Equal(t, tenth, 6)
}
