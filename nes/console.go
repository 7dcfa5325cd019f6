package nes

import (
	"io"

	"github.com/flga/nescpu/nes/ines"
)

const workRAMSize = 2 * 1024

// cpuBus is the address space the cpu actually walks: 2 KiB of work RAM
// mirrored four times over $0000-$1FFF, the PPU register mirror over
// $2000-$3FFF, the APU/IO block over $4000-$401F, and everything from
// $4020 up routed to the cartridge mapper.
type cpuBus struct {
	ram    [workRAMSize]byte
	ppu    *ppuStub
	apu    *apuStub
	mapper Mapper
}

func (b *cpuBus) Read(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr%workRAMSize]
	case addr <= 0x3FFF:
		return b.ppu.Read(addr)
	case addr <= 0x401F:
		return b.apu.Read(addr)
	default:
		return b.mapper.CPURead(addr)
	}
}

func (b *cpuBus) Write(addr uint16, v byte) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr%workRAMSize] = v
	case addr <= 0x3FFF:
		b.ppu.Write(addr, v)
	case addr <= 0x401F:
		b.apu.Write(addr, v)
	default:
		b.mapper.CPUWrite(addr, v)
	}
}

func (b *cpuBus) ReadRange(lo, hi uint16) []byte {
	return readRange(b, lo, hi)
}

func (b *cpuBus) Peek(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr%workRAMSize]
	case addr <= 0x3FFF:
		return b.ppu.Peek(addr)
	case addr <= 0x401F:
		return b.apu.Peek(addr)
	default:
		return b.mapper.CPURead(addr)
	}
}

// Console wires a cpu, its bus and a cartridge mapper into a runnable
// unit. It is the module's driver-facing type: construct one with
// NewConsole, Reset it, then call Step in a loop.
type Console struct {
	cpu    *cpu
	bus    *cpuBus
	Mapper Mapper
}

// NewConsole parses rom and wires a Console ready to Reset and Step. The
// returned error is a *ines.ParseError or *UnsupportedMapperError.
func NewConsole(rom []byte, trace io.Writer) (*Console, error) {
	parsed, err := ines.Parse(rom)
	if err != nil {
		return nil, err
	}

	mapper, err := NewMapper(parsed)
	if err != nil {
		return nil, err
	}

	bus := &cpuBus{
		ppu:    &ppuStub{},
		apu:    &apuStub{},
		mapper: mapper,
	}

	return &Console{
		cpu:    newCPU(trace),
		bus:    bus,
		Mapper: mapper,
	}, nil
}

// Reset loads the cpu's PC from the reset vector; see cpu.Reset for the
// exact semantics (only PC and the cycle counter are touched).
func (c *Console) Reset() {
	c.cpu.Reset(c.bus)
}

// SetPC forces the program counter directly, bypassing the reset vector.
// Used by test harnesses that need to start execution at a fixed address.
func (c *Console) SetPC(pc uint16) {
	c.cpu.pc = pc
}

// Step executes exactly one instruction and returns the cycles it took.
func (c *Console) Step() (uint64, error) {
	return c.cpu.Step(c.bus)
}

// Trigger arms an NMI or IRQ for the next Step.
func (c *Console) Trigger(nmi bool) {
	if nmi {
		c.cpu.Trigger(interruptNMI)
	} else {
		c.cpu.Trigger(interruptIRQ)
	}
}

// Read, Write and ReadRange expose the cpu's address space directly, for
// test harnesses and the driver CLI's memory dump.
func (c *Console) Read(addr uint16) byte          { return c.bus.Read(addr) }
func (c *Console) Write(addr uint16, v byte)      { c.bus.Write(addr, v) }
func (c *Console) ReadRange(lo, hi uint16) []byte { return c.bus.ReadRange(lo, hi) }
func (c *Console) Peek(addr uint16) byte          { return c.bus.Peek(addr) }

// Registers snapshots the cpu's register file, mainly for test
// assertions and the driver CLI's trace output.
type Registers struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	P       byte
	Cycles  uint64
}

func (c *Console) Registers() Registers {
	return Registers{
		A: c.cpu.a, X: c.cpu.x, Y: c.cpu.y,
		PC: c.cpu.pc, SP: c.cpu.s, P: byte(c.cpu.p),
		Cycles: c.cpu.cycles,
	}
}
