package max6951

import (
	"errors"
	"testing"

	"gotest.tools/assert"
)

// recordingSink captures register writes in order, optionally failing
// partway through
type recordingSink struct {
	writes [][2]byte
	failAt int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{failAt: -1}
}

func (rs *recordingSink) WriteReg(reg byte, data byte) error {
	if rs.failAt == len(rs.writes) {
		return errors.New("transport rejected the transfer")
	}
	rs.writes = append(rs.writes, [2]byte{reg, data})
	return nil
}

func TestOpenSequence(t *testing.T) {
	sink := newRecordingSink()
	_, err := Open(sink, 8)
	assert.NilError(t, err)

	// wipe the planes and wake, scan all eight digits, set intensity
	assert.Equal(t, len(sink.writes), 3)
	assert.Equal(t, sink.writes[0], [2]byte{REG_CONFIG, CONFIG_R | CONFIG_S})
	assert.Equal(t, sink.writes[1], [2]byte{REG_SCAN_LIMIT, 7})
	assert.Equal(t, sink.writes[2], [2]byte{REG_INTENSITY, 8})
}

func TestWriteFrameOrder(t *testing.T) {
	sink := newRecordingSink()
	dev, err := Open(sink, 8)
	assert.NilError(t, err)
	sink.writes = nil

	frame := EncodeFrame(TimeOfDay{Hour: 12, Minute: 5, Second: 9, Tenth: 3},
		FrameOptions{TwelveHour: true, Colon: true, Tenths: true})
	assert.NilError(t, dev.WriteFrame(frame))

	// decode mask lands before any digit data
	assert.Equal(t, len(sink.writes), 9)
	assert.Equal(t, sink.writes[0], [2]byte{REG_DECODE_MODE, 0x7F})
	for i := 0; i < 8; i++ {
		assert.Equal(t, sink.writes[1+i][0], byte(REG_DIGITS|i))
		assert.Equal(t, sink.writes[1+i][1], frame.Digits[i])
	}
}

func TestWriteFrameFailure(t *testing.T) {
	sink := newRecordingSink()
	dev, err := Open(sink, 8)
	assert.NilError(t, err)

	// fail on the fourth digit write and make sure nothing follows it
	sink.failAt = len(sink.writes) + 4
	frame := EncodeFrame(TimeOfDay{Hour: 1}, FrameOptions{})
	assert.Assert(t, dev.WriteFrame(frame) != nil)
	assert.Equal(t, sink.writes[len(sink.writes)-1][0], byte(REG_DIGITS|2))
}

func TestBrightnessRange(t *testing.T) {
	sink := newRecordingSink()
	dev, err := Open(sink, 0)
	assert.NilError(t, err)

	assert.NilError(t, dev.SetBrightness(15))
	assert.Assert(t, dev.SetBrightness(16) != nil)

	_, err = Open(newRecordingSink(), 200)
	assert.Assert(t, err != nil)
}

func TestLampTest(t *testing.T) {
	sink := newRecordingSink()
	dev, _ := Open(sink, 8)
	sink.writes = nil

	assert.NilError(t, dev.LampTest(true))
	assert.NilError(t, dev.LampTest(false))
	assert.Equal(t, sink.writes[0], [2]byte{REG_TEST, 1})
	assert.Equal(t, sink.writes[1], [2]byte{REG_TEST, 0})
}

func TestDisplayOn(t *testing.T) {
	sink := newRecordingSink()
	dev, _ := Open(sink, 8)
	sink.writes = nil

	// off is the controller's shutdown mode
	assert.NilError(t, dev.DisplayOn(false))
	assert.Equal(t, sink.writes[0], [2]byte{REG_CONFIG, 0})
	assert.NilError(t, dev.DisplayOn(true))
	assert.Equal(t, sink.writes[1], [2]byte{REG_CONFIG, CONFIG_S})
}
