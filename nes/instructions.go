package nes

// addressingMode names how an opcode's operand turns into an effective
// address. Unimplemented marks every opcode with no documented instruction
// behind it; reaching one aborts execution.
type addressingMode byte

const (
	modeUnimplemented addressingMode = iota
	modeImplied
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeRelative
	modeIndirectAbsolute
	modeIndirectZeroPageX
	modeIndirectZeroPageY
)

// accessKind distinguishes how an instruction touches the address its mode
// resolves to: a plain read, a plain write, or a read-modify-write. This
// only matters for addressing modes that can cross a page boundary: read
// forms pay the extra cycle only when the crossing actually happens, write
// and read-modify-write forms always pay it, because the cpu can't yet
// know the final address is safe to use without the carry having settled.
type accessKind byte

const (
	accessRead accessKind = iota
	accessWrite
	accessReadModWrite
)

type instruction struct {
	mnemonic string
	mode     addressingMode
	kind     accessKind
}

// instructions is indexed by opcode byte. Slots with no documented 6502
// instruction default to the zero value, whose mode is modeUnimplemented.
var instructions = [256]instruction{
	0x00: {"BRK", modeImplied, accessRead},
	0x01: {"ORA", modeIndirectZeroPageX, accessRead},
	0x05: {"ORA", modeZeroPage, accessRead},
	0x06: {"ASL", modeZeroPage, accessReadModWrite},
	0x08: {"PHP", modeImplied, accessRead},
	0x09: {"ORA", modeImmediate, accessRead},
	0x0A: {"ASL", modeAccumulator, accessRead},
	0x0D: {"ORA", modeAbsolute, accessRead},
	0x0E: {"ASL", modeAbsolute, accessReadModWrite},

	0x10: {"BPL", modeRelative, accessRead},
	0x11: {"ORA", modeIndirectZeroPageY, accessRead},
	0x15: {"ORA", modeZeroPageX, accessRead},
	0x16: {"ASL", modeZeroPageX, accessReadModWrite},
	0x18: {"CLC", modeImplied, accessRead},
	0x19: {"ORA", modeAbsoluteY, accessRead},
	0x1D: {"ORA", modeAbsoluteX, accessRead},
	0x1E: {"ASL", modeAbsoluteX, accessReadModWrite},

	0x20: {"JSR", modeAbsolute, accessRead},
	0x21: {"AND", modeIndirectZeroPageX, accessRead},
	0x24: {"BIT", modeZeroPage, accessRead},
	0x25: {"AND", modeZeroPage, accessRead},
	0x26: {"ROL", modeZeroPage, accessReadModWrite},
	0x28: {"PLP", modeImplied, accessRead},
	0x29: {"AND", modeImmediate, accessRead},
	0x2A: {"ROL", modeAccumulator, accessRead},
	0x2C: {"BIT", modeAbsolute, accessRead},
	0x2D: {"AND", modeAbsolute, accessRead},
	0x2E: {"ROL", modeAbsolute, accessReadModWrite},

	0x30: {"BMI", modeRelative, accessRead},
	0x31: {"AND", modeIndirectZeroPageY, accessRead},
	0x35: {"AND", modeZeroPageX, accessRead},
	0x36: {"ROL", modeZeroPageX, accessReadModWrite},
	0x38: {"SEC", modeImplied, accessRead},
	0x39: {"AND", modeAbsoluteY, accessRead},
	0x3D: {"AND", modeAbsoluteX, accessRead},
	0x3E: {"ROL", modeAbsoluteX, accessReadModWrite},

	0x40: {"RTI", modeImplied, accessRead},
	0x41: {"EOR", modeIndirectZeroPageX, accessRead},
	0x45: {"EOR", modeZeroPage, accessRead},
	0x46: {"LSR", modeZeroPage, accessReadModWrite},
	0x48: {"PHA", modeImplied, accessRead},
	0x49: {"EOR", modeImmediate, accessRead},
	0x4A: {"LSR", modeAccumulator, accessRead},
	0x4C: {"JMP", modeAbsolute, accessRead},
	0x4D: {"EOR", modeAbsolute, accessRead},
	0x4E: {"LSR", modeAbsolute, accessReadModWrite},

	0x50: {"BVC", modeRelative, accessRead},
	0x51: {"EOR", modeIndirectZeroPageY, accessRead},
	0x55: {"EOR", modeZeroPageX, accessRead},
	0x56: {"LSR", modeZeroPageX, accessReadModWrite},
	0x58: {"CLI", modeImplied, accessRead},
	0x59: {"EOR", modeAbsoluteY, accessRead},
	0x5D: {"EOR", modeAbsoluteX, accessRead},
	0x5E: {"LSR", modeAbsoluteX, accessReadModWrite},

	0x60: {"RTS", modeImplied, accessRead},
	0x61: {"ADC", modeIndirectZeroPageX, accessRead},
	0x65: {"ADC", modeZeroPage, accessRead},
	0x66: {"ROR", modeZeroPage, accessReadModWrite},
	0x68: {"PLA", modeImplied, accessRead},
	0x69: {"ADC", modeImmediate, accessRead},
	0x6A: {"ROR", modeAccumulator, accessRead},
	0x6C: {"JMP", modeIndirectAbsolute, accessRead},
	0x6D: {"ADC", modeAbsolute, accessRead},
	0x6E: {"ROR", modeAbsolute, accessReadModWrite},

	0x70: {"BVS", modeRelative, accessRead},
	0x71: {"ADC", modeIndirectZeroPageY, accessRead},
	0x75: {"ADC", modeZeroPageX, accessRead},
	0x76: {"ROR", modeZeroPageX, accessReadModWrite},
	0x78: {"SEI", modeImplied, accessRead},
	0x79: {"ADC", modeAbsoluteY, accessRead},
	0x7D: {"ADC", modeAbsoluteX, accessRead},
	0x7E: {"ROR", modeAbsoluteX, accessReadModWrite},

	0x81: {"STA", modeIndirectZeroPageX, accessWrite},
	0x84: {"STY", modeZeroPage, accessWrite},
	0x85: {"STA", modeZeroPage, accessWrite},
	0x86: {"STX", modeZeroPage, accessWrite},
	0x88: {"DEY", modeImplied, accessRead},
	0x8A: {"TXA", modeImplied, accessRead},
	0x8C: {"STY", modeAbsolute, accessWrite},
	0x8D: {"STA", modeAbsolute, accessWrite},
	0x8E: {"STX", modeAbsolute, accessWrite},

	0x90: {"BCC", modeRelative, accessRead},
	0x91: {"STA", modeIndirectZeroPageY, accessWrite},
	0x94: {"STY", modeZeroPageX, accessWrite},
	0x95: {"STA", modeZeroPageX, accessWrite},
	0x96: {"STX", modeZeroPageY, accessWrite},
	0x98: {"TYA", modeImplied, accessRead},
	0x99: {"STA", modeAbsoluteY, accessWrite},
	0x9A: {"TXS", modeImplied, accessRead},
	0x9D: {"STA", modeAbsoluteX, accessWrite},

	0xA0: {"LDY", modeImmediate, accessRead},
	0xA1: {"LDA", modeIndirectZeroPageX, accessRead},
	0xA2: {"LDX", modeImmediate, accessRead},
	0xA4: {"LDY", modeZeroPage, accessRead},
	0xA5: {"LDA", modeZeroPage, accessRead},
	0xA6: {"LDX", modeZeroPage, accessRead},
	0xA8: {"TAY", modeImplied, accessRead},
	0xA9: {"LDA", modeImmediate, accessRead},
	0xAA: {"TAX", modeImplied, accessRead},
	0xAC: {"LDY", modeAbsolute, accessRead},
	0xAD: {"LDA", modeAbsolute, accessRead},
	0xAE: {"LDX", modeAbsolute, accessRead},

	0xB0: {"BCS", modeRelative, accessRead},
	0xB1: {"LDA", modeIndirectZeroPageY, accessRead},
	0xB4: {"LDY", modeZeroPageX, accessRead},
	0xB5: {"LDA", modeZeroPageX, accessRead},
	0xB6: {"LDX", modeZeroPageY, accessRead},
	0xB8: {"CLV", modeImplied, accessRead},
	0xB9: {"LDA", modeAbsoluteY, accessRead},
	0xBA: {"TSX", modeImplied, accessRead},
	0xBC: {"LDY", modeAbsoluteX, accessRead},
	0xBD: {"LDA", modeAbsoluteX, accessRead},
	0xBE: {"LDX", modeAbsoluteY, accessRead},

	0xC0: {"CPY", modeImmediate, accessRead},
	0xC1: {"CMP", modeIndirectZeroPageX, accessRead},
	0xC4: {"CPY", modeZeroPage, accessRead},
	0xC5: {"CMP", modeZeroPage, accessRead},
	0xC6: {"DEC", modeZeroPage, accessReadModWrite},
	0xC8: {"INY", modeImplied, accessRead},
	0xC9: {"CMP", modeImmediate, accessRead},
	0xCA: {"DEX", modeImplied, accessRead},
	0xCC: {"CPY", modeAbsolute, accessRead},
	0xCD: {"CMP", modeAbsolute, accessRead},
	0xCE: {"DEC", modeAbsolute, accessReadModWrite},

	0xD0: {"BNE", modeRelative, accessRead},
	0xD1: {"CMP", modeIndirectZeroPageY, accessRead},
	0xD5: {"CMP", modeZeroPageX, accessRead},
	0xD6: {"DEC", modeZeroPageX, accessReadModWrite},
	0xD8: {"CLD", modeImplied, accessRead},
	0xD9: {"CMP", modeAbsoluteY, accessRead},
	0xDD: {"CMP", modeAbsoluteX, accessRead},
	0xDE: {"DEC", modeAbsoluteX, accessReadModWrite},

	0xE0: {"CPX", modeImmediate, accessRead},
	0xE1: {"SBC", modeIndirectZeroPageX, accessRead},
	0xE4: {"CPX", modeZeroPage, accessRead},
	0xE5: {"SBC", modeZeroPage, accessRead},
	0xE6: {"INC", modeZeroPage, accessReadModWrite},
	0xE8: {"INX", modeImplied, accessRead},
	0xE9: {"SBC", modeImmediate, accessRead},
	0xEA: {"NOP", modeImplied, accessRead},
	0xEC: {"CPX", modeAbsolute, accessRead},
	0xED: {"SBC", modeAbsolute, accessRead},
	0xEE: {"INC", modeAbsolute, accessReadModWrite},

	0xF0: {"BEQ", modeRelative, accessRead},
	0xF1: {"SBC", modeIndirectZeroPageY, accessRead},
	0xF5: {"SBC", modeZeroPageX, accessRead},
	0xF6: {"INC", modeZeroPageX, accessReadModWrite},
	0xF8: {"SED", modeImplied, accessRead},
	0xF9: {"SBC", modeAbsoluteY, accessRead},
	0xFD: {"SBC", modeAbsoluteX, accessRead},
	0xFE: {"INC", modeAbsoluteX, accessReadModWrite},
}

// operandLen returns the number of bytes, including the opcode itself,
// that an instruction with the given mode occupies in program memory.
// Absolute, AbsoluteX, AbsoluteY and IndirectAbsolute are all 3 bytes: the
// opcode plus a full 16-bit operand.
func operandLen(mode addressingMode) byte {
	switch mode {
	case modeImplied, modeAccumulator:
		return 1
	case modeImmediate, modeZeroPage, modeZeroPageX, modeZeroPageY,
		modeRelative, modeIndirectZeroPageX, modeIndirectZeroPageY:
		return 2
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirectAbsolute:
		return 3
	default:
		return 1
	}
}
