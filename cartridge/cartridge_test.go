package cartridge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeROM(t *testing.T, header []byte, prg, chr int) string {
	t.Helper()
	buf := make([]byte, headerSize)
	copy(buf, header)
	buf = append(buf, make([]byte, prg)...)
	buf = append(buf, make([]byte, chr)...)
	path := filepath.Join(t.TempDir(), "rom.nes")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestOpenInvalidMagic(t *testing.T) {
	path := writeROM(t, []byte{'N', 'O', 'S', 0x1A, 2, 1, 0, 0}, 2*prgPageSize, 1*chrPageSize)
	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMagic))
}

func TestOpenUnsupportedVersion(t *testing.T) {
	// byte 7 bits 2-3 == 0b10 marks NES 2.0.
	path := writeROM(t, []byte{'N', 'E', 'S', 0x1A, 2, 1, 0, 0x08}, 2*prgPageSize, 1*chrPageSize)
	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

// Scenario F from the CPU/cartridge testable properties: a header with
// 2 PRG banks, 1 CHR bank, vertical mirroring, mapper 0, no trainer.
func TestOpenScenarioF(t *testing.T) {
	path := writeROM(t, []byte{'N', 'E', 'S', 0x1A, 0x02, 0x01, 0x01, 0x00}, 2*prgPageSize, 1*chrPageSize)

	c, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, 0x8000, c.PRGROMSize)
	assert.Equal(t, 0x2000, c.CHRROMSize)
	assert.Equal(t, Vertical, c.Mirroring)
	assert.Equal(t, byte(0), c.MapperType)
	assert.Equal(t, 16, c.PRGROMStart)
}

func TestOpenTrainerOffset(t *testing.T) {
	// bit 2 of control byte 1 flags a 512-byte trainer; prg_rom_start must
	// be 16+512, not 16+(flagByte*512) as the buggy original computed.
	path := writeROM(t, []byte{'N', 'E', 'S', 0x1A, 0x01, 0x00, 0x04, 0x00}, 1*prgPageSize, 0)
	// writeROM doesn't account for the trainer bytes; pad them in manually.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	withTrainer := append(data[:headerSize], append(make([]byte, trainerSize), data[headerSize:]...)...)
	require.NoError(t, os.WriteFile(path, withTrainer, 0o644))

	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 16+512, c.PRGROMStart)
	assert.Equal(t, 16+512+c.PRGROMSize, c.CHRROMStart)
}

func TestReadPRGROM(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1A, 0x01, 0x00, 0x00, 0x00}
	path := writeROM(t, header, prgPageSize, 0)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	copy(data[headerSize:], []byte{0xA9, 0xC0, 0xAA, 0xE8})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Open(path)
	require.NoError(t, err)

	prg, err := c.ReadPRGROM()
	require.NoError(t, err)
	assert.Equal(t, prgPageSize, len(prg))
	assert.Equal(t, byte(0xA9), prg[0])
	assert.Equal(t, byte(0xE8), prg[3])
}
