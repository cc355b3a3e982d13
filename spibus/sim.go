package spibus

import "log"

// simBus logs every transfer and touches no hardware.  It keeps the
// register writes it saw so tests can read them back.
type simBus struct {
	writes [][2]byte
	closed bool
}

func openSim() *simBus {
	return &simBus{}
}

func (sb *simBus) WriteReg(reg byte, data byte) error {
	log.Printf("spi write: %02x %02x", reg, data)
	sb.writes = append(sb.writes, [2]byte{reg, data})
	return nil
}

func (sb *simBus) Close() error {
	log.Println("spi close")
	sb.closed = true
	return nil
}
