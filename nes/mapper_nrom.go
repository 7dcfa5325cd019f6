package nes

import "github.com/flga/nescpu/nes/ines"

const prgRAMSize = 8 * 1024

// nrom implements mapper 0: a fixed 16 or 32 KiB PRG-ROM window (mirrored
// when only 16 KiB is present), 8 KiB of battery-less PRG-RAM, and a fixed
// 8 KiB CHR-ROM (or CHR-RAM when the cartridge declares none).
type nrom struct {
	prgROM []byte
	prgRAM [prgRAMSize]byte
	chr    []byte
	chrRAM bool
}

func newNROM(rom *ines.ROM) *nrom {
	chr := rom.CHRROM
	chrRAM := len(chr) == 0
	if chrRAM {
		chr = make([]byte, 8*1024)
	}
	return &nrom{prgROM: rom.PRGROM, chr: chr, chrRAM: chrRAM}
}

func (m *nrom) ID() byte { return 0 }

func (m *nrom) CPURead(addr uint16) byte {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		return m.prgRAM[int(addr-0x6000)%len(m.prgRAM)]
	case addr >= 0x8000:
		return m.prgROM[int(addr-0x8000)%len(m.prgROM)]
	default:
		return 0
	}
}

func (m *nrom) CPUWrite(addr uint16, v byte) {
	if addr >= 0x6000 && addr <= 0x7FFF {
		m.prgRAM[int(addr-0x6000)%len(m.prgRAM)] = v
	}
}

func (m *nrom) PPURead(addr uint16) byte {
	if addr <= 0x1FFF {
		return m.chr[int(addr)%len(m.chr)]
	}
	return 0
}

func (m *nrom) PPUWrite(addr uint16, v byte) {
	if addr <= 0x1FFF && m.chrRAM {
		m.chr[int(addr)%len(m.chr)] = v
	}
}
