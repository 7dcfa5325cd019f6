package nes

import (
	"fmt"

	"github.com/flga/nescpu/nes/ines"
)

// UnsupportedMapperError reports a mapper id this module has no
// implementation for.
type UnsupportedMapperError struct {
	MapperID uint16
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("nes: unsupported mapper %d", e.MapperID)
}

// Mapper translates CPU and PPU addresses into a cartridge's PRG/CHR
// storage. Exactly one Mapper is constructed per loaded cartridge; the
// cpu bus and the Console's Mapper field hold the same value. No PPU-side
// bus exists in this package, so PPURead/PPUWrite have no caller here.
type Mapper interface {
	ID() byte
	CPURead(addr uint16) byte
	CPUWrite(addr uint16, v byte)
	PPURead(addr uint16) byte
	PPUWrite(addr uint16, v byte)
}

// NewMapper selects and constructs the concrete Mapper for rom's header.
func NewMapper(rom *ines.ROM) (Mapper, error) {
	switch rom.Header.MapperID {
	case 0:
		return newNROM(rom), nil
	case 2, 94, 180:
		return newUxROM(rom), nil
	default:
		return nil, &UnsupportedMapperError{MapperID: rom.Header.MapperID}
	}
}
