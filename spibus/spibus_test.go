package spibus

import (
	"testing"

	"gotest.tools/assert"
)

func TestOpenSim(t *testing.T) {
	bus, err := Open("sim", "", 20000000, 0)
	assert.NilError(t, err)

	sb := bus.(*simBus)
	assert.NilError(t, bus.WriteReg(0x04, 0x21))
	assert.NilError(t, bus.WriteReg(0x02, 0x0f))
	assert.Equal(t, len(sb.writes), 2)
	assert.Equal(t, sb.writes[0], [2]byte{0x04, 0x21})
	assert.Equal(t, sb.writes[1], [2]byte{0x02, 0x0f})

	assert.NilError(t, bus.Close())
	assert.Equal(t, sb.closed, true)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("i2c", "", 20000000, 0)
	assert.Error(t, err, "unknown spi driver: i2c")
}
