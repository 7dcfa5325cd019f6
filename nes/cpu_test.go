package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBus is a flat 64 KiB address space with an access log, used to
// assert cycle counts and read/write signatures without any cartridge or
// mapper machinery getting in the way.
type testBus struct {
	mem [65536]byte
	log []busAccess
}

type busAccess struct {
	write bool
	addr  uint16
	value byte
}

func (b *testBus) Read(addr uint16) byte {
	b.log = append(b.log, busAccess{addr: addr, value: b.mem[addr]})
	return b.mem[addr]
}

func (b *testBus) Write(addr uint16, v byte) {
	b.log = append(b.log, busAccess{write: true, addr: addr, value: v})
	b.mem[addr] = v
}

func (b *testBus) ReadRange(lo, hi uint16) []byte { return readRange(b, lo, hi) }
func (b *testBus) Peek(addr uint16) byte          { return b.mem[addr] }

func newTestCPU() (*cpu, *testBus) {
	return newCPU(nil), &testBus{}
}

func TestReset_OnlyTouchesPCAndCycles(t *testing.T) {
	c, bus := newTestCPU()
	c.a, c.x, c.y, c.s, c.p = 0x11, 0x22, 0x33, 0x44, negative|carry

	bus.mem[resetAddr] = 0x00
	bus.mem[resetAddr+1] = 0x80

	c.Reset(bus)

	assert.Equal(t, uint16(0x8000), c.pc)
	assert.Equal(t, uint64(8), c.cycles)
	assert.Equal(t, byte(0x11), c.a)
	assert.Equal(t, byte(0x22), c.x)
	assert.Equal(t, byte(0x33), c.y)
	assert.Equal(t, byte(0x44), c.s)
	assert.Equal(t, negative|carry, c.p)
}

func TestNewCPU_PowerOnState(t *testing.T) {
	c, _ := newTestCPU()
	assert.Equal(t, byte(0xFF), c.s)
	assert.Equal(t, unused, c.p)
	assert.Equal(t, byte(0), c.a)
	assert.Equal(t, byte(0), c.x)
	assert.Equal(t, byte(0), c.y)
}

func TestLDA_UpdatesZeroAndNegative(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0000] = 0xA9 // LDA #$00
	bus.mem[0x0001] = 0x00
	c.pc = 0x0000

	_, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, byte(0), c.a)
	assert.NotZero(t, c.p&zero)
	assert.Zero(t, c.p&negative)

	bus.mem[0x0002] = 0xA9 // LDA #$80
	bus.mem[0x0003] = 0x80
	_, err = c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), c.a)
	assert.Zero(t, c.p&zero)
	assert.NotZero(t, c.p&negative)
}

func TestADC_SBC_Duality(t *testing.T) {
	c, _ := newTestCPU()
	c.a = 0x10
	c.p |= carry
	c.doAdd(0x05)
	assert.Equal(t, byte(0x16), c.a)

	c2, _ := newTestCPU()
	c2.a = 0x15
	c2.p |= carry
	c2.doAdd(0x05 ^ 0xFF)
	assert.Equal(t, byte(0x10), c2.a)
}

func TestADC_OverflowFlag(t *testing.T) {
	c, _ := newTestCPU()
	c.a = 0x7F
	c.p |= carry // carry in adds one more
	c.doAdd(0x01)
	assert.Equal(t, byte(0x81), c.a)
	assert.NotZero(t, c.p&overflow)
	assert.NotZero(t, c.p&negative)
}

func TestCompare_DoesNotMutateRegister(t *testing.T) {
	c, _ := newTestCPU()
	c.a = 0x42
	c.compare(c.a, 0x50)
	assert.Equal(t, byte(0x42), c.a, "compare must never write back into the register")
	assert.Zero(t, c.p&carry)

	c.compare(c.a, 0x42)
	assert.NotZero(t, c.p&zero)
	assert.NotZero(t, c.p&carry)
}

func TestStack_WrapsSilently(t *testing.T) {
	c, bus := newTestCPU()
	c.s = 0x00
	c.push(bus, 0xAB)
	assert.Equal(t, byte(0xFF), c.s)
	assert.Equal(t, byte(0xAB), bus.mem[stackHi|0x00])

	v := c.pull(bus)
	assert.Equal(t, byte(0xAB), v)
	assert.Equal(t, byte(0x00), c.s)
}

func TestINC_IsThreeAccessReadModifyWrite(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0010] = 0x41
	bus.mem[0x0000] = 0xE6 // INC $10
	bus.mem[0x0001] = 0x10
	c.pc = 0x0000

	_, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), bus.mem[0x0010])

	var writes []busAccess
	for _, a := range bus.log {
		if a.write && a.addr == 0x0010 {
			writes = append(writes, a)
		}
	}
	require.Len(t, writes, 2, "RMW must write the unchanged value before writing the final one")
	assert.Equal(t, byte(0x41), writes[0].value)
	assert.Equal(t, byte(0x42), writes[1].value)
}

func TestJMP_IndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x02FF] = 0x00
	bus.mem[0x0200] = 0x80 // wraps to $0200, not $0300, for the high byte
	bus.mem[0x0000] = 0x6C // JMP ($02FF)
	bus.mem[0x0001] = 0xFF
	bus.mem[0x0002] = 0x02
	c.pc = 0x0000

	_, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8000), c.pc)
}

func TestBranch_PageCrossPenalty(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x00FD] = 0xF0 // BEQ +5, lands on $0104 (crosses page from $00FF)
	bus.mem[0x00FE] = 0x05
	c.pc = 0x00FD
	c.p |= zero

	cycles, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0104), c.pc)
	assert.Equal(t, uint64(4), cycles, "taken branch crossing a page costs 4 cycles")
}

func TestBranch_NoPageCross(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0000] = 0xF0 // BEQ +2
	bus.mem[0x0001] = 0x02
	c.pc = 0x0000
	c.p |= zero

	cycles, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0004), c.pc)
	assert.Equal(t, uint64(3), cycles)
}

func TestJSR_RTS_RoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0000] = 0x20 // JSR $8000
	bus.mem[0x0001] = 0x00
	bus.mem[0x0002] = 0x80
	bus.mem[0x8000] = 0x60 // RTS
	c.pc = 0x0000
	c.s = 0xFF

	_, err := c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8000), c.pc)

	_, err = c.Step(bus)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0003), c.pc)
	assert.Equal(t, byte(0xFF), c.s)
}

func TestUnimplementedOpcode_Aborts(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0000] = 0x02 // no documented instruction
	c.pc = 0x0000

	_, err := c.Step(bus)
	require.Error(t, err)
	var unimpl *UnimplementedOpcodeError
	require.ErrorAs(t, err, &unimpl)
	assert.Equal(t, byte(0x02), unimpl.Opcode)
}

func TestStatusString_NVUBDIZC(t *testing.T) {
	p := negative | zero
	assert.Equal(t, "NvubdiZc", p.String())
}
