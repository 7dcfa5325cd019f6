package nes

// Bus is the address space a cpu issues reads and writes against. Every
// call is assumed to have observable side effects, even repeated reads of
// the same address, so callers that only want to inspect memory for
// disassembly or tests should prefer Peek.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)

	// ReadRange performs real, side-effecting reads of addresses lo..=hi
	// in order and returns the resulting bytes. It is meant for
	// inspection and test assertions, not for anything performance
	// sensitive.
	ReadRange(lo, hi uint16) []byte

	// Peek reads addr without side effects where the concrete bus can
	// tell the difference (work RAM and cartridge ROM); stubbed
	// PPU/APU registers return their last-latched value. Used by the
	// disassembler so tracing an instruction never perturbs the state
	// that instruction is about to observe.
	Peek(addr uint16) byte
}

// readRange is the default ReadRange implementation, shared by any bus
// that has nothing cheaper to offer: a loop of single Read calls.
func readRange(b Bus, lo, hi uint16) []byte {
	if hi < lo {
		return nil
	}
	out := make([]byte, 0, int(hi-lo)+1)
	for addr := lo; ; addr++ {
		out = append(out, b.Read(addr))
		if addr == hi {
			break
		}
	}
	return out
}
