package nes

import (
	"fmt"
	"io"
)

const (
	nmiAddr    = uint16(0xFFFA)
	resetAddr  = uint16(0xFFFC)
	irqBrkAddr = uint16(0xFFFE)

	stackHi = uint16(0x0100)
)

// pendingInterrupt is set by Trigger and consumed at the start of the next
// Step.
type pendingInterrupt byte

const (
	interruptNone pendingInterrupt = iota
	interruptNMI
	interruptIRQ
)

// status is the processor status register: a bitfield of six real flags
// plus two bits (B, U) with no flag behind them: U always reads as 1, and
// B only carries meaning in the byte pushed to the stack.
type status byte

const (
	// carry holds the result of the last ADC/shift carry-out, or the
	// inverse-borrow result of SBC/CMP.
	carry status = 1 << iota
	// zero is set when the last flag-affecting result was zero.
	zero
	// interruptDisable masks IRQ (never NMI) while set.
	interruptDisable
	// decimal has no effect on this cpu; BCD arithmetic is not modeled.
	decimal
	// brk only exists in the byte pushed by BRK/PHP, set there to 1, and
	// in the byte pulled by PLP/RTI, where it is ignored.
	brk
	// unused is always 1 in the live register and in any pushed copy.
	unused
	// overflow is set when adding two same-signed operands produces a
	// result of the opposite sign.
	overflow
	// negative mirrors bit 7 of the last flag-affecting result.
	negative
)

// String renders p as an NVUBDIZC letter string: upper case for a set bit,
// lower case for a clear one.
func (p status) String() string {
	bits := []struct {
		mask byte
		ch   byte
	}{
		{byte(negative), 'N'},
		{byte(overflow), 'V'},
		{byte(unused), 'U'},
		{byte(brk), 'B'},
		{byte(decimal), 'D'},
		{byte(interruptDisable), 'I'},
		{byte(zero), 'Z'},
		{byte(carry), 'C'},
	}
	out := make([]byte, len(bits))
	for i, b := range bits {
		if byte(p)&b.mask != 0 {
			out[i] = b.ch
		} else {
			out[i] = b.ch - 'A' + 'a'
		}
	}
	return string(out)
}

// UnimplementedOpcodeError reports an illegal or undocumented opcode byte
// encountered at pc. Execution cannot continue past it.
type UnimplementedOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("nes: unimplemented opcode %02X at %04X", e.Opcode, e.PC)
}

// cpu is the 6502-class core: registers, status, cycle counter, and the
// fetch/decode/execute loop. It owns no memory itself; every access goes
// through the Bus passed to Step.
type cpu struct {
	cycles uint64

	a, x, y byte
	pc      uint16
	s       byte
	p       status

	trace   io.Writer
	pending pendingInterrupt
}

// newCPU constructs a cpu in its power-on state: PC=$0000 (set properly by
// Reset), SP=$FF, P=$20 (only the unused bit), A=X=Y=$00.
func newCPU(trace io.Writer) *cpu {
	return &cpu{
		s:     0xFF,
		p:     unused,
		trace: trace,
	}
}

// Reset loads PC from the reset vector and seeds the cycle counter to 8,
// modeling the power-on/reset delay. It does not touch A, X, Y, SP or P:
// the I flag is not set and SP is not decremented.
func (c *cpu) Reset(bus Bus) {
	c.pc = c.readAddress(bus, resetAddr)
	c.cycles = 8
}

// Trigger arms an NMI or IRQ to be serviced before the next instruction
// fetch. An IRQ is dropped immediately if interruptDisable is set; NMI is
// never maskable.
func (c *cpu) Trigger(kind pendingInterrupt) {
	if kind == interruptIRQ && c.p&interruptDisable != 0 {
		return
	}
	c.pending = kind
}

// Step executes exactly one instruction (after servicing any pending
// interrupt) and returns the number of bus cycles it consumed. An
// unimplemented opcode aborts the instruction before any of its side
// effects happen and returns a non-nil error; the cpu's registers still
// reflect having fetched (but not executed) that opcode.
func (c *cpu) Step(bus Bus) (uint64, error) {
	startCycles := c.cycles

	c.handleInterrupts(bus)

	pcAtFetch := c.pc
	cyclesAtFetch := c.cycles
	opcode := c.read(bus, c.pc)
	c.pc++

	inst := instructions[opcode]
	if inst.mode == modeUnimplemented {
		return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: pcAtFetch}
	}

	if c.trace != nil {
		c.writeTrace(bus, pcAtFetch, opcode, inst, cyclesAtFetch)
	}

	intermediate, addr := c.resolveAddress(bus, inst)
	_ = intermediate

	handler := handlers[opcode]
	handler(c, bus, inst.mode, addr)

	return c.cycles - startCycles, nil
}

func (c *cpu) clock() {
	c.cycles++
}

func (c *cpu) read(bus Bus, addr uint16) byte {
	c.clock()
	return bus.Read(addr)
}

func (c *cpu) readAddress(bus Bus, addr uint16) uint16 {
	lo := c.read(bus, addr)
	hi := c.read(bus, addr+1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *cpu) write(bus Bus, addr uint16, v byte) {
	c.clock()
	bus.Write(addr, v)
}

// resolveAddress advances pc past the instruction's operand bytes,
// performing every dummy read or write the addressing mode requires, and
// returns the intermediate pointer (meaningful only for the indirect
// modes) and the final effective address.
func (c *cpu) resolveAddress(bus Bus, inst instruction) (intermediateAddr, address uint16) {
	switch inst.mode {
	case modeAccumulator, modeImplied:
		c.read(bus, c.pc)
		return 0, 0

	case modeImmediate:
		pc := c.pc
		c.pc++
		return 0, pc

	case modeAbsolute:
		lo := c.read(bus, c.pc)
		c.pc++
		hi := c.read(bus, c.pc)
		c.pc++
		return 0, uint16(hi)<<8 | uint16(lo)

	case modeZeroPage:
		addr := c.read(bus, c.pc)
		c.pc++
		return 0, uint16(addr)

	case modeZeroPageX:
		addr := c.read(bus, c.pc)
		c.pc++
		c.read(bus, uint16(addr))
		return 0, uint16(addr + c.x)

	case modeZeroPageY:
		addr := c.read(bus, c.pc)
		c.pc++
		c.read(bus, uint16(addr))
		return 0, uint16(addr + c.y)

	case modeAbsoluteX:
		lo := c.read(bus, c.pc)
		c.pc++
		hi := c.read(bus, c.pc)
		c.pc++

		switch inst.kind {
		case accessRead:
			if lo+c.x < lo {
				c.read(bus, uint16(hi)<<8|uint16(lo+c.x))
			}
		default:
			c.read(bus, uint16(hi)<<8|uint16(lo+c.x))
		}
		return 0, uint16(hi)<<8 + uint16(lo) + uint16(c.x)

	case modeAbsoluteY:
		lo := c.read(bus, c.pc)
		c.pc++
		hi := c.read(bus, c.pc)
		c.pc++

		switch inst.kind {
		case accessRead:
			if lo+c.y < lo {
				c.read(bus, uint16(hi)<<8|uint16(lo+c.y))
			}
		default:
			c.read(bus, uint16(hi)<<8|uint16(lo+c.y))
		}
		return 0, uint16(hi)<<8 + uint16(lo) + uint16(c.y)

	case modeRelative:
		offset := c.read(bus, c.pc)
		c.pc++
		return 0, c.pc + uint16(int8(offset))

	case modeIndirectZeroPageX:
		pointer := c.read(bus, c.pc)
		c.pc++
		c.read(bus, uint16(pointer))
		pointer += c.x // zero-page wraparound is intentional
		lo := c.read(bus, uint16(pointer))
		hi := c.read(bus, uint16(pointer+1))
		return uint16(pointer), uint16(hi)<<8 | uint16(lo)

	case modeIndirectZeroPageY:
		pointer := c.read(bus, c.pc)
		c.pc++
		lo := c.read(bus, uint16(pointer))
		hi := c.read(bus, uint16(pointer+1))

		switch inst.kind {
		case accessRead:
			if lo+c.y < lo {
				c.read(bus, uint16(hi)<<8|uint16(lo+c.y))
			}
		default:
			c.read(bus, uint16(hi)<<8|uint16(lo+c.y))
		}
		base := uint16(hi)<<8 | uint16(lo)
		return base, base + uint16(c.y)

	case modeIndirectAbsolute:
		ptrLo := c.read(bus, c.pc)
		c.pc++
		ptrHi := c.read(bus, c.pc)
		c.pc++

		pointer := uint16(ptrHi)<<8 | uint16(ptrLo)
		lo := c.read(bus, pointer)
		// The classic page-wrap bug: only the low byte of the pointer
		// wraps when fetching the address's high byte.
		hi := c.read(bus, pointer&0xFF00|uint16(byte(pointer)+1))
		return pointer, uint16(hi)<<8 | uint16(lo)
	}

	return 0, 0
}

func (c *cpu) handleInterrupts(bus Bus) {
	switch c.pending {
	case interruptNMI:
		c.pending = interruptNone
		c.pushAddress(bus, c.pc)
		c.push(bus, byte(c.p|unused)&^byte(brk))
		c.p |= interruptDisable
		c.pc = c.readAddress(bus, nmiAddr)
		c.clock()
		c.clock()
	case interruptIRQ:
		c.pending = interruptNone
		if c.p&interruptDisable != 0 {
			return
		}
		c.pushAddress(bus, c.pc)
		c.push(bus, byte(c.p|unused)&^byte(brk))
		c.p |= interruptDisable
		c.pc = c.readAddress(bus, irqBrkAddr)
		c.clock()
		c.clock()
	}
}

func (c *cpu) push(bus Bus, v byte) {
	c.write(bus, stackHi|uint16(c.s), v)
	c.s--
}

func (c *cpu) pull(bus Bus) byte {
	c.s++
	return c.read(bus, stackHi|uint16(c.s))
}

func (c *cpu) pushAddress(bus Bus, v uint16) {
	c.push(bus, byte(v>>8))
	c.push(bus, byte(v))
}

func (c *cpu) pullAddress(bus Bus) uint16 {
	lo := uint16(c.pull(bus))
	hi := uint16(c.pull(bus))
	return hi<<8 | lo
}

func (c *cpu) updateZero(v byte) {
	if v == 0 {
		c.p |= zero
	} else {
		c.p &^= zero
	}
}

func (c *cpu) updateNegative(v byte) {
	if v&0x80 != 0 {
		c.p |= negative
	} else {
		c.p &^= negative
	}
}

// compare implements CMP/CPX/CPY: it only ever updates flags, never the
// register it was given.
func (c *cpu) compare(reg, v byte) {
	if reg >= v {
		c.p |= carry
	} else {
		c.p &^= carry
	}
	if reg == v {
		c.p |= zero
	} else {
		c.p &^= zero
	}
	c.updateNegative(reg - v)
}

func (c *cpu) doDec(v byte) byte {
	r := v - 1
	c.updateZero(r)
	c.updateNegative(r)
	return r
}

func (c *cpu) doInc(v byte) byte {
	r := v + 1
	c.updateZero(r)
	c.updateNegative(r)
	return r
}

// doAdd implements binary ADC; SBC calls it with the operand's bits
// inverted, which is arithmetically identical to subtracting with borrow.
func (c *cpu) doAdd(v byte) {
	a := uint16(c.a)
	b := uint16(v)
	cin := uint16(c.p & carry)

	result := a + b + cin

	if result&0x100 != 0 {
		c.p |= carry
	} else {
		c.p &^= carry
	}

	if a&0x80 == b&0x80 && a&0x80 != result&0x80 {
		c.p |= overflow
	} else {
		c.p &^= overflow
	}

	c.a = byte(result)
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) doAsl(v byte) byte {
	if v&0x80 != 0 {
		c.p |= carry
	} else {
		c.p &^= carry
	}
	v <<= 1
	c.updateZero(v)
	c.updateNegative(v)
	return v
}

func (c *cpu) doRol(v byte) byte {
	carryOut := v&0x80 != 0
	v = v<<1 | byte(c.p&carry)
	if carryOut {
		c.p |= carry
	} else {
		c.p &^= carry
	}
	c.updateZero(v)
	c.updateNegative(v)
	return v
}

func (c *cpu) doLsr(v byte) byte {
	if v&1 != 0 {
		c.p |= carry
	} else {
		c.p &^= carry
	}
	v >>= 1
	c.updateZero(v)
	c.updateNegative(v)
	return v
}

func (c *cpu) doRor(v byte) byte {
	carryOut := v&1 != 0
	v >>= 1
	if c.p&carry != 0 {
		v |= 0x80
	}
	if carryOut {
		c.p |= carry
	} else {
		c.p &^= carry
	}
	c.updateZero(v)
	c.updateNegative(v)
	return v
}

// branch commits a taken branch: one extra cycle always, a second if the
// branch crosses a page boundary.
func (c *cpu) branch(addr uint16) {
	if c.pc&0xFF00 != addr&0xFF00 {
		c.clock()
	}
	c.clock()
	c.pc = addr
}

var handlers [256]func(c *cpu, bus Bus, mode addressingMode, addr uint16)

func init() {
	for i := range handlers {
		handlers[i] = (*cpu).opUnimplemented
	}

	set := func(op byte, fn func(c *cpu, bus Bus, mode addressingMode, addr uint16)) {
		handlers[op] = fn
	}

	set(0x00, (*cpu).opBRK)
	set(0xEA, (*cpu).opNOP)
	for _, op := range []byte{0x61, 0x65, 0x69, 0x6D, 0x71, 0x75, 0x79, 0x7D} {
		set(op, (*cpu).opADC)
	}
	for _, op := range []byte{0x21, 0x25, 0x29, 0x2D, 0x31, 0x35, 0x39, 0x3D} {
		set(op, (*cpu).opAND)
	}
	for _, op := range []byte{0x06, 0x0A, 0x0E, 0x16, 0x1E} {
		set(op, (*cpu).opASL)
	}
	set(0x90, (*cpu).opBCC)
	set(0xB0, (*cpu).opBCS)
	set(0xF0, (*cpu).opBEQ)
	for _, op := range []byte{0x24, 0x2C} {
		set(op, (*cpu).opBIT)
	}
	set(0x30, (*cpu).opBMI)
	set(0xD0, (*cpu).opBNE)
	set(0x10, (*cpu).opBPL)
	set(0x50, (*cpu).opBVC)
	set(0x70, (*cpu).opBVS)
	set(0x18, (*cpu).opCLC)
	set(0xD8, (*cpu).opCLD)
	set(0x58, (*cpu).opCLI)
	set(0xB8, (*cpu).opCLV)
	for _, op := range []byte{0xC1, 0xC5, 0xC9, 0xCD, 0xD1, 0xD5, 0xD9, 0xDD} {
		set(op, (*cpu).opCMP)
	}
	for _, op := range []byte{0xE0, 0xE4, 0xEC} {
		set(op, (*cpu).opCPX)
	}
	for _, op := range []byte{0xC0, 0xC4, 0xCC} {
		set(op, (*cpu).opCPY)
	}
	for _, op := range []byte{0xC6, 0xCE, 0xD6, 0xDE} {
		set(op, (*cpu).opDEC)
	}
	set(0xCA, (*cpu).opDEX)
	set(0x88, (*cpu).opDEY)
	for _, op := range []byte{0x41, 0x45, 0x49, 0x4D, 0x51, 0x55, 0x59, 0x5D} {
		set(op, (*cpu).opEOR)
	}
	for _, op := range []byte{0xE6, 0xEE, 0xF6, 0xFE} {
		set(op, (*cpu).opINC)
	}
	set(0xE8, (*cpu).opINX)
	set(0xC8, (*cpu).opINY)
	for _, op := range []byte{0x4C, 0x6C} {
		set(op, (*cpu).opJMP)
	}
	set(0x20, (*cpu).opJSR)
	for _, op := range []byte{0xA1, 0xA5, 0xA9, 0xAD, 0xB1, 0xB5, 0xB9, 0xBD} {
		set(op, (*cpu).opLDA)
	}
	for _, op := range []byte{0xA2, 0xA6, 0xAE, 0xB6, 0xBE} {
		set(op, (*cpu).opLDX)
	}
	for _, op := range []byte{0xA0, 0xA4, 0xAC, 0xB4, 0xBC} {
		set(op, (*cpu).opLDY)
	}
	for _, op := range []byte{0x46, 0x4A, 0x4E, 0x56, 0x5E} {
		set(op, (*cpu).opLSR)
	}
	for _, op := range []byte{0x01, 0x05, 0x09, 0x0D, 0x11, 0x15, 0x19, 0x1D} {
		set(op, (*cpu).opORA)
	}
	set(0x48, (*cpu).opPHA)
	set(0x08, (*cpu).opPHP)
	set(0x68, (*cpu).opPLA)
	set(0x28, (*cpu).opPLP)
	for _, op := range []byte{0x26, 0x2A, 0x2E, 0x36, 0x3E} {
		set(op, (*cpu).opROL)
	}
	for _, op := range []byte{0x66, 0x6A, 0x6E, 0x76, 0x7E} {
		set(op, (*cpu).opROR)
	}
	set(0x40, (*cpu).opRTI)
	set(0x60, (*cpu).opRTS)
	for _, op := range []byte{0xE1, 0xE5, 0xE9, 0xED, 0xF1, 0xF5, 0xF9, 0xFD} {
		set(op, (*cpu).opSBC)
	}
	set(0x38, (*cpu).opSEC)
	set(0xF8, (*cpu).opSED)
	set(0x78, (*cpu).opSEI)
	for _, op := range []byte{0x81, 0x85, 0x8D, 0x91, 0x95, 0x99, 0x9D} {
		set(op, (*cpu).opSTA)
	}
	for _, op := range []byte{0x86, 0x8E, 0x96} {
		set(op, (*cpu).opSTX)
	}
	for _, op := range []byte{0x84, 0x8C, 0x94} {
		set(op, (*cpu).opSTY)
	}
	set(0xAA, (*cpu).opTAX)
	set(0xA8, (*cpu).opTAY)
	set(0xBA, (*cpu).opTSX)
	set(0x8A, (*cpu).opTXA)
	set(0x9A, (*cpu).opTXS)
	set(0x98, (*cpu).opTYA)
}

func (c *cpu) opUnimplemented(bus Bus, mode addressingMode, addr uint16) {
	panic("nes: dispatched an opcode with no handler")
}

func (c *cpu) opBRK(bus Bus, mode addressingMode, addr uint16) {
	c.pushAddress(bus, c.pc+1)
	c.push(bus, byte(c.p|unused|brk))
	c.p |= interruptDisable
	c.pc = c.readAddress(bus, irqBrkAddr)
}

func (c *cpu) opNOP(bus Bus, mode addressingMode, addr uint16) {
	if mode != modeImplied {
		c.read(bus, addr)
	}
}

func (c *cpu) opSEC(bus Bus, mode addressingMode, addr uint16) { c.p |= carry }
func (c *cpu) opCLC(bus Bus, mode addressingMode, addr uint16) { c.p &^= carry }
func (c *cpu) opSED(bus Bus, mode addressingMode, addr uint16) { c.p |= decimal }
func (c *cpu) opCLD(bus Bus, mode addressingMode, addr uint16) { c.p &^= decimal }
func (c *cpu) opSEI(bus Bus, mode addressingMode, addr uint16) { c.p |= interruptDisable }
func (c *cpu) opCLI(bus Bus, mode addressingMode, addr uint16) { c.p &^= interruptDisable }
func (c *cpu) opCLV(bus Bus, mode addressingMode, addr uint16) { c.p &^= overflow }

func (c *cpu) opSTA(bus Bus, mode addressingMode, addr uint16) { c.write(bus, addr, c.a) }
func (c *cpu) opSTX(bus Bus, mode addressingMode, addr uint16) { c.write(bus, addr, c.x) }
func (c *cpu) opSTY(bus Bus, mode addressingMode, addr uint16) { c.write(bus, addr, c.y) }

func (c *cpu) opLDA(bus Bus, mode addressingMode, addr uint16) {
	c.a = c.read(bus, addr)
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opLDX(bus Bus, mode addressingMode, addr uint16) {
	c.x = c.read(bus, addr)
	c.updateZero(c.x)
	c.updateNegative(c.x)
}

func (c *cpu) opLDY(bus Bus, mode addressingMode, addr uint16) {
	c.y = c.read(bus, addr)
	c.updateZero(c.y)
	c.updateNegative(c.y)
}

func (c *cpu) opTAX(bus Bus, mode addressingMode, addr uint16) {
	c.x = c.a
	c.updateZero(c.x)
	c.updateNegative(c.x)
}

func (c *cpu) opTAY(bus Bus, mode addressingMode, addr uint16) {
	c.y = c.a
	c.updateZero(c.y)
	c.updateNegative(c.y)
}

func (c *cpu) opTSX(bus Bus, mode addressingMode, addr uint16) {
	c.x = c.s
	c.updateZero(c.x)
	c.updateNegative(c.x)
}

func (c *cpu) opTXA(bus Bus, mode addressingMode, addr uint16) {
	c.a = c.x
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opTXS(bus Bus, mode addressingMode, addr uint16) { c.s = c.x }

func (c *cpu) opTYA(bus Bus, mode addressingMode, addr uint16) {
	c.a = c.y
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opPHA(bus Bus, mode addressingMode, addr uint16) { c.push(bus, c.a) }

func (c *cpu) opPHP(bus Bus, mode addressingMode, addr uint16) {
	c.push(bus, byte(c.p|unused|brk))
}

func (c *cpu) opPLA(bus Bus, mode addressingMode, addr uint16) {
	c.read(bus, stackHi|uint16(c.s)) // dummy read of the stack slot before the pull
	c.a = c.pull(bus)
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opPLP(bus Bus, mode addressingMode, addr uint16) {
	c.clock()
	c.p = status(c.pull(bus))
	c.p &^= brk
	c.p |= unused
}

func (c *cpu) opDEC(bus Bus, mode addressingMode, addr uint16) {
	v := c.read(bus, addr)
	c.write(bus, addr, v)
	c.write(bus, addr, c.doDec(v))
}

func (c *cpu) opDEX(bus Bus, mode addressingMode, addr uint16) { c.x = c.doDec(c.x) }
func (c *cpu) opDEY(bus Bus, mode addressingMode, addr uint16) { c.y = c.doDec(c.y) }

func (c *cpu) opINC(bus Bus, mode addressingMode, addr uint16) {
	v := c.read(bus, addr)
	c.write(bus, addr, v)
	c.write(bus, addr, c.doInc(v))
}

func (c *cpu) opINX(bus Bus, mode addressingMode, addr uint16) { c.x = c.doInc(c.x) }
func (c *cpu) opINY(bus Bus, mode addressingMode, addr uint16) { c.y = c.doInc(c.y) }

func (c *cpu) opADC(bus Bus, mode addressingMode, addr uint16) { c.doAdd(c.read(bus, addr)) }
func (c *cpu) opSBC(bus Bus, mode addressingMode, addr uint16) { c.doAdd(c.read(bus, addr) ^ 0xFF) }

func (c *cpu) opASL(bus Bus, mode addressingMode, addr uint16) {
	if mode == modeAccumulator {
		c.a = c.doAsl(c.a)
		return
	}
	v := c.read(bus, addr)
	c.write(bus, addr, v)
	c.write(bus, addr, c.doAsl(v))
}

func (c *cpu) opROL(bus Bus, mode addressingMode, addr uint16) {
	if mode == modeAccumulator {
		c.a = c.doRol(c.a)
		return
	}
	v := c.read(bus, addr)
	c.write(bus, addr, v)
	c.write(bus, addr, c.doRol(v))
}

func (c *cpu) opLSR(bus Bus, mode addressingMode, addr uint16) {
	if mode == modeAccumulator {
		c.a = c.doLsr(c.a)
		return
	}
	v := c.read(bus, addr)
	c.write(bus, addr, v)
	c.write(bus, addr, c.doLsr(v))
}

func (c *cpu) opROR(bus Bus, mode addressingMode, addr uint16) {
	if mode == modeAccumulator {
		c.a = c.doRor(c.a)
		return
	}
	v := c.read(bus, addr)
	c.write(bus, addr, v)
	c.write(bus, addr, c.doRor(v))
}

func (c *cpu) opAND(bus Bus, mode addressingMode, addr uint16) {
	c.a &= c.read(bus, addr)
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opEOR(bus Bus, mode addressingMode, addr uint16) {
	c.a ^= c.read(bus, addr)
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opORA(bus Bus, mode addressingMode, addr uint16) {
	c.a |= c.read(bus, addr)
	c.updateZero(c.a)
	c.updateNegative(c.a)
}

func (c *cpu) opBIT(bus Bus, mode addressingMode, addr uint16) {
	v := c.read(bus, addr)
	c.updateNegative(v)
	c.updateZero(c.a & v)
	if v&0x40 != 0 {
		c.p |= overflow
	} else {
		c.p &^= overflow
	}
}

func (c *cpu) opCMP(bus Bus, mode addressingMode, addr uint16) { c.compare(c.a, c.read(bus, addr)) }
func (c *cpu) opCPX(bus Bus, mode addressingMode, addr uint16) { c.compare(c.x, c.read(bus, addr)) }
func (c *cpu) opCPY(bus Bus, mode addressingMode, addr uint16) { c.compare(c.y, c.read(bus, addr)) }

func (c *cpu) opBCC(bus Bus, mode addressingMode, addr uint16) {
	if c.p&carry == 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBCS(bus Bus, mode addressingMode, addr uint16) {
	if c.p&carry != 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBEQ(bus Bus, mode addressingMode, addr uint16) {
	if c.p&zero != 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBNE(bus Bus, mode addressingMode, addr uint16) {
	if c.p&zero == 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBMI(bus Bus, mode addressingMode, addr uint16) {
	if c.p&negative != 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBPL(bus Bus, mode addressingMode, addr uint16) {
	if c.p&negative == 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBVC(bus Bus, mode addressingMode, addr uint16) {
	if c.p&overflow == 0 {
		c.branch(addr)
	}
}

func (c *cpu) opBVS(bus Bus, mode addressingMode, addr uint16) {
	if c.p&overflow != 0 {
		c.branch(addr)
	}
}

func (c *cpu) opJMP(bus Bus, mode addressingMode, addr uint16) { c.pc = addr }

func (c *cpu) opJSR(bus Bus, mode addressingMode, addr uint16) {
	c.clock()
	c.pushAddress(bus, c.pc-1)
	c.pc = addr
}

func (c *cpu) opRTI(bus Bus, mode addressingMode, addr uint16) {
	c.clock()
	c.p = status(c.pull(bus))
	c.p &^= brk
	c.p |= unused
	c.pc = c.pullAddress(bus)
}

func (c *cpu) opRTS(bus Bus, mode addressingMode, addr uint16) {
	c.clock()
	ret := c.pullAddress(bus)
	c.clock()
	c.pc = ret + 1
}
