package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBus(prgSize int) *Bus {
	ram := NewRegion(0, ramSize)
	prg := NewRegion(prgROMStart, prgSize)
	return NewBus(ram, prg)
}

// Testable property 6: RAM mirrors every 2KiB for all addresses below
// $2000.
func TestRAMMirroring(t *testing.T) {
	b := newTestBus(prg16KiBSize)
	b.Write8(0x0001, 0x55)
	assert.Equal(t, byte(0x55), b.Read8(0x0001))
	assert.Equal(t, byte(0x55), b.Read8(0x0801))
	assert.Equal(t, byte(0x55), b.Read8(0x1001))
	assert.Equal(t, byte(0x55), b.Read8(0x1801))
}

// Testable property 6: a 16KiB PRG ROM mirrors its lower half into the
// upper half of the $8000-$FFFF window.
func TestPRGROMMirroring16KiB(t *testing.T) {
	b := newTestBus(prg16KiBSize)
	b.prgROM.Bytes[0] = 0xEA
	assert.Equal(t, byte(0xEA), b.Read8(0x8000))
	assert.Equal(t, byte(0xEA), b.Read8(0xC000))
}

func TestPRGROM32KiBNotMirrored(t *testing.T) {
	b := newTestBus(2 * prg16KiBSize)
	b.prgROM.Bytes[0] = 0x11
	b.prgROM.Bytes[prg16KiBSize] = 0x22
	assert.Equal(t, byte(0x11), b.Read8(0x8000))
	assert.Equal(t, byte(0x22), b.Read8(0xC000))
}

func TestPPURegistersAreNoOp(t *testing.T) {
	b := newTestBus(prg16KiBSize)
	b.Write8(0x2000, 0xFF)
	assert.Equal(t, byte(0), b.Read8(0x2000))
}

func TestUnmappedReadReturnsZero(t *testing.T) {
	b := newTestBus(prg16KiBSize)
	assert.Equal(t, byte(0), b.Read8(0x5000))
	b.Write8(0x5000, 0x42) // should not panic, silently dropped
	assert.Equal(t, byte(0), b.Read8(0x5000))
}

func TestReadWrite16(t *testing.T) {
	b := newTestBus(prg16KiBSize)
	b.Write16(0x0010, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), b.Read16(0x0010))
}

func TestFramebufferAndWellKnownAddresses(t *testing.T) {
	b := newTestBus(prg16KiBSize)
	b.SetEntropy(7)
	b.SetLastKey('w')
	assert.Equal(t, byte(7), b.Read8(EntropyAddress))
	assert.Equal(t, byte('w'), b.Read8(LastKeyAddress))

	b.Write8(FramebufferStart, 3)
	fb := b.Framebuffer()
	assert.Equal(t, byte(3), fb[0])
}
