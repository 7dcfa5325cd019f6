package ines

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestParse_BadMagic(t *testing.T) {
	data := decodeHex(t, "00000000010100000000000000000000")
	_, err := Parse(data)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParse_TooShort(t *testing.T) {
	_, err := Parse([]byte{0x4E, 0x45, 0x53, 0x1A})
	require.Error(t, err)
}

func TestParse_INESMapper0PRG16CHR8Horizontal(t *testing.T) {
	// header only, 16KiB PRG + 8KiB CHR of zero bytes appended
	header := decodeHex(t, "4E45531A010100000000000000000000")
	data := make([]byte, 0, len(header)+16*1024+8*1024)
	data = append(data, header...)
	data = append(data, make([]byte, 16*1024+8*1024)...)

	rom, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, FormatINES, rom.Header.Format)
	assert.EqualValues(t, 0, rom.Header.MapperID)
	assert.Equal(t, 16*1024, rom.Header.PRGROMSize)
	assert.Equal(t, 8*1024, rom.Header.CHRROMSize)
	assert.Equal(t, MirroringHorizontal, rom.Header.Mirroring)
	assert.False(t, rom.Header.HasTrainer)
	assert.False(t, rom.Header.HasBattery)
	assert.Len(t, rom.PRGROM, 16*1024)
	assert.Len(t, rom.CHRROM, 8*1024)
}

func TestParse_Mirroring(t *testing.T) {
	build := func(flags6 byte) []byte {
		h := decodeHex(t, "4E45531A010100000000000000000000")
		h[6] = flags6
		data := make([]byte, 0, len(h)+16*1024+8*1024)
		data = append(data, h...)
		data = append(data, make([]byte, 16*1024+8*1024)...)
		return data
	}

	rom, err := Parse(build(0x00))
	require.NoError(t, err)
	assert.Equal(t, MirroringHorizontal, rom.Header.Mirroring)

	rom, err = Parse(build(mirroringVerticalMask))
	require.NoError(t, err)
	assert.Equal(t, MirroringVertical, rom.Header.Mirroring)

	rom, err = Parse(build(mirroringFourScreenMask))
	require.NoError(t, err)
	assert.Equal(t, MirroringFourScreen, rom.Header.Mirroring)
}

func TestParse_BatteryAndTrainer(t *testing.T) {
	h := decodeHex(t, "4E45531A010100000000000000000000")
	h[6] = hasBatteryMask | hasTrainerMask
	data := make([]byte, 0, len(h)+trainerLen+16*1024+8*1024)
	data = append(data, h...)
	data = append(data, make([]byte, trainerLen+16*1024+8*1024)...)

	rom, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, rom.Header.HasBattery)
	assert.True(t, rom.Header.HasTrainer)
	assert.Len(t, rom.Trainer, trainerLen)
}

func TestParse_TruncatedPRG(t *testing.T) {
	h := decodeHex(t, "4E45531A010100000000000000000000")
	data := append([]byte{}, h...)
	data = append(data, make([]byte, 100)...) // declares 16KiB PRG, only has 100 bytes
	_, err := Parse(data)
	require.Error(t, err)
}

func TestParse_NES20ExtendedSize(t *testing.T) {
	h := decodeHex(t, "4E45531A000008000000000000000000")
	h[7] |= 0x08 // NES 2.0 format bits
	// exponent=10 (top 6 bits = 0x28), multiplier=0 -> 2^10 * 1 = 1024 bytes PRG
	h[4] = 0x28
	h[9] = 0x0F // PRG msb nibble = 0xF (sentinel); CHR msb nibble = 0x0 (plain)
	h[5] = 0x00 // CHR size field stays 0 with plain encoding -> 0 bytes CHR
	data := make([]byte, 0, len(h)+1024)
	data = append(data, h...)
	data = append(data, make([]byte, 1024)...) // PRG

	rom, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, FormatNES20, rom.Header.Format)
	assert.Equal(t, 1024, rom.Header.PRGROMSize)
	assert.Equal(t, 0, rom.Header.CHRROMSize)
}
