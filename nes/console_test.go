package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNROM assembles a minimal 16 KiB-PRG, horizontal-mirroring iNES
// image whose reset vector points straight at prg[0].
func buildNROM(prg []byte) []byte {
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = 1 // 16 KiB PRG
	header[5] = 0 // CHR-RAM

	full := make([]byte, 16*1024)
	copy(full, prg)
	full[0x3FFC] = 0x00 // reset vector low -> $8000
	full[0x3FFD] = 0x80

	return append(header, full...)
}

func TestConsole_NROM_MirroredPRG(t *testing.T) {
	prg := []byte{0xA9, 0x42, 0x00} // LDA #$42, BRK
	rom := buildNROM(prg)

	c, err := NewConsole(rom, nil)
	require.NoError(t, err)
	c.Reset()

	assert.Equal(t, uint16(0x8000), c.Registers().PC)

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), c.Registers().A)

	// NROM with 16 KiB of PRG mirrors it across $8000-$BFFF and $C000-$FFFF.
	assert.Equal(t, c.Read(0x8000), c.Read(0xC000))
}

func TestConsole_WorkRAM_MirroredFourTimes(t *testing.T) {
	rom := buildNROM(nil)
	c, err := NewConsole(rom, nil)
	require.NoError(t, err)

	c.Write(0x0000, 0x99)
	assert.Equal(t, byte(0x99), c.Read(0x0800))
	assert.Equal(t, byte(0x99), c.Read(0x1000))
	assert.Equal(t, byte(0x99), c.Read(0x1800))
}

func TestConsole_TraceLine_NoSideEffects(t *testing.T) {
	prg := []byte{0xEA, 0xEA} // NOP, NOP
	rom := buildNROM(prg)

	var trace bytes.Buffer
	c, err := NewConsole(rom, &trace)
	require.NoError(t, err)
	c.Reset()

	before := c.Read(0x8001)
	_, err = c.Step()
	require.NoError(t, err)
	after := c.Read(0x8001)

	assert.Equal(t, before, after, "tracing must not mutate the bus it observes")
	assert.Contains(t, trace.String(), "NOP")
	assert.Contains(t, trace.String(), "8000")
}

func TestConsole_UnsupportedMapper(t *testing.T) {
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = 1
	header[6] = 0xF0 // mapper id nibble -> 15, unsupported
	rom := append(header, make([]byte, 16*1024)...)

	_, err := NewConsole(rom, nil)
	require.Error(t, err)
	var unsupported *UnsupportedMapperError
	require.ErrorAs(t, err, &unsupported)
}

func TestConsole_BadMagic(t *testing.T) {
	_, err := NewConsole([]byte("not a rom"), nil)
	require.Error(t, err)
}
