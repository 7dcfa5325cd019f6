package nes

// ppuStub stands in for the eight CPU-visible PPU registers, mirrored
// every 8 bytes across $2000-$3FFF. It implements no rendering: every
// register is a plain latch that returns whatever was last written to it.
// This is enough for a cpu-only build to exercise real bus timing (mirror
// math, register-write side effects on cycle count) without pretending to
// model vblank, sprite zero, or any other rendering state.
type ppuStub struct {
	regs [8]byte
}

func (p *ppuStub) Read(addr uint16) byte {
	return p.regs[addr&0x7]
}

func (p *ppuStub) Write(addr uint16, v byte) {
	p.regs[addr&0x7] = v
}

func (p *ppuStub) Peek(addr uint16) byte {
	return p.regs[addr&0x7]
}
