package main

import (
	"testing"
	"time"

	"dials.dev/spiclock/max6951"
	"dials.dev/spiclock/sidereal"
	"gotest.tools/assert"
)

func TestCivilSample24(t *testing.T) {
	ct := civilTime{}

	now := time.Date(2026, time.March, 1, 13, 4, 5, 640000000, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 13, Minute: 4, Second: 5, Tenth: 6})

	// sub-tenth times round to the nearest tenth, not down
	now = time.Date(2026, time.March, 1, 13, 4, 5, 655000000, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 13, Minute: 4, Second: 5, Tenth: 7})
}

func TestCivilSampleCarry(t *testing.T) {
	ct := civilTime{}

	// .96 rounds up and carries into the next second
	now := time.Date(2026, time.March, 1, 13, 4, 5, 960000000, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 13, Minute: 4, Second: 6, Tenth: 0})

	// and across a day boundary
	now = time.Date(2026, time.March, 1, 23, 59, 59, 960000000, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 0, Minute: 0, Second: 0, Tenth: 0})
}

func TestCivilSample12(t *testing.T) {
	ct := civilTime{twelveHour: true}

	// midnight reads 12 AM
	now := time.Date(2026, time.March, 1, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 12, Minute: 5, PM: false})

	// noon reads 12 PM
	now = time.Date(2026, time.March, 1, 12, 5, 0, 0, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 12, Minute: 5, PM: true})

	// the afternoon wraps back to 1
	now = time.Date(2026, time.March, 1, 13, 5, 0, 0, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 1, Minute: 5, PM: true})

	now = time.Date(2026, time.March, 1, 23, 5, 0, 0, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 11, Minute: 5, PM: true})

	// morning hours stay put
	now = time.Date(2026, time.March, 1, 11, 5, 0, 0, time.UTC)
	assert.Equal(t, ct.sample(now), max6951.TimeOfDay{Hour: 11, Minute: 5, PM: false})
}

func TestSiderealSample(t *testing.T) {
	st := siderealTime{longitude: -71.06}
	now := time.Date(2026, time.March, 1, 4, 30, 15, 250000000, time.UTC)

	h, m, s, tn := sidereal.Split(sidereal.Local(now, -71.06))
	assert.Equal(t, st.sample(now), max6951.TimeOfDay{Hour: h, Minute: m, Second: s, Tenth: tn})
}

func TestTimeSourceFromSettings(t *testing.T) {
	s := testSettings.Copy()

	s.Set(sClockMode, "civil24")
	s.Set(sColon, false)
	s.Set(sTenths, false)
	src, opts, err := timeSourceFromSettings(s)
	assert.NilError(t, err)
	assert.Equal(t, src, civilTime{})
	assert.Equal(t, opts.TwelveHour, false)
	assert.Equal(t, opts.Colon, false)
	assert.Equal(t, opts.Tenths, false)

	s.Set(sClockMode, "12")
	src, opts, err = timeSourceFromSettings(s)
	assert.NilError(t, err)
	assert.Equal(t, src, civilTime{twelveHour: true})
	assert.Equal(t, opts.TwelveHour, true)

	s.Set(sClockMode, "sidereal")
	s.Set(sLongitude, -71.06)
	src, opts, err = timeSourceFromSettings(s)
	assert.NilError(t, err)
	assert.Equal(t, src, siderealTime{longitude: -71.06})
	assert.Equal(t, opts.TwelveHour, false)

	s.Set(sClockMode, "stardate")
	_, _, err = timeSourceFromSettings(s)
	assert.Error(t, err, "unknown clock mode: stardate")
}
