package nes

import "github.com/flga/nescpu/nes/ines"

const uxromBankSize = 16 * 1024

// uxrom implements mapper 2 (and the 94/180 aliases): a switchable 16 KiB
// PRG-ROM window at $8000-$BFFF plus a fixed window over the last bank at
// $C000-$FFFF. CHR is always a fixed 8 KiB window, ROM or RAM.
type uxrom struct {
	prgROM []byte
	banks  int
	bank   int
	chr    []byte
	chrRAM bool
}

func newUxROM(rom *ines.ROM) *uxrom {
	banks := len(rom.PRGROM) / uxromBankSize
	if banks == 0 {
		banks = 1
	}
	chr := rom.CHRROM
	chrRAM := len(chr) == 0
	if chrRAM {
		chr = make([]byte, 8*1024)
	}
	return &uxrom{prgROM: rom.PRGROM, banks: banks, chr: chr, chrRAM: chrRAM}
}

func (m *uxrom) ID() byte { return 2 }

func (m *uxrom) CPURead(addr uint16) byte {
	switch {
	case addr >= 0x8000 && addr <= 0xBFFF:
		offset := m.bank*uxromBankSize + int(addr-0x8000)
		return m.prgROM[offset]
	case addr >= 0xC000:
		offset := (len(m.prgROM) - uxromBankSize) + int(addr-0xC000)
		return m.prgROM[offset]
	default:
		return 0
	}
}

func (m *uxrom) CPUWrite(addr uint16, v byte) {
	if addr >= 0x8000 {
		m.bank = int(v) & (m.banks - 1)
	}
}

func (m *uxrom) PPURead(addr uint16) byte {
	if addr <= 0x1FFF {
		return m.chr[int(addr)%len(m.chr)]
	}
	return 0
}

func (m *uxrom) PPUWrite(addr uint16, v byte) {
	if addr <= 0x1FFF && m.chrRAM {
		m.chr[int(addr)%len(m.chr)] = v
	}
}
