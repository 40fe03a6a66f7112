// Package opcode holds the fixed lookup from opcode byte to instruction
// descriptor: mnemonic, addressing mode, and total instruction size in
// bytes. Generalized from hejops-gone/cpu/opcodes.go's `Opcodes` map (which
// also carried cycle counts and a function pointer, both dropped here since
// this core does not model cycle timing) and seeded byte-for-byte from the
// public 6502 opcode matrix, the same source the teacher's table cites.
package opcode

import "nesemu/addressing"

// Descriptor is the static information the instruction table carries for
// one opcode byte: what to execute, how to fetch its operand, and how many
// bytes (including the opcode itself) the instruction occupies.
type Descriptor struct {
	Mnemonic string
	Mode     addressing.Mode
	Size     int
}

// Table maps opcode bytes to their Descriptor; only the 151 documented
// legal opcodes below are present, exactly as the
// instruction table component requires. Looking up an absent key reports
// !ok, the UnknownOpcode condition.
var Table = map[byte]Descriptor{
	0xA9: {"LDA", addressing.Immediate, 2},
	0xA5: {"LDA", addressing.ZeroPage, 2},
	0xB5: {"LDA", addressing.ZeroPageX, 2},
	0xAD: {"LDA", addressing.Absolute, 3},
	0xBD: {"LDA", addressing.AbsoluteX, 3},
	0xB9: {"LDA", addressing.AbsoluteY, 3},
	0xA1: {"LDA", addressing.IndirectX, 2},
	0xB1: {"LDA", addressing.IndirectY, 2},

	0xA2: {"LDX", addressing.Immediate, 2},
	0xA6: {"LDX", addressing.ZeroPage, 2},
	0xB6: {"LDX", addressing.ZeroPageY, 2},
	0xAE: {"LDX", addressing.Absolute, 3},
	0xBE: {"LDX", addressing.AbsoluteY, 3},

	0xA0: {"LDY", addressing.Immediate, 2},
	0xA4: {"LDY", addressing.ZeroPage, 2},
	0xB4: {"LDY", addressing.ZeroPageX, 2},
	0xAC: {"LDY", addressing.Absolute, 3},
	0xBC: {"LDY", addressing.AbsoluteX, 3},

	0x85: {"STA", addressing.ZeroPage, 2},
	0x95: {"STA", addressing.ZeroPageX, 2},
	0x8D: {"STA", addressing.Absolute, 3},
	0x9D: {"STA", addressing.AbsoluteX, 3},
	0x99: {"STA", addressing.AbsoluteY, 3},
	0x81: {"STA", addressing.IndirectX, 2},
	0x91: {"STA", addressing.IndirectY, 2},

	0x86: {"STX", addressing.ZeroPage, 2},
	0x96: {"STX", addressing.ZeroPageY, 2},
	0x8E: {"STX", addressing.Absolute, 3},

	0x84: {"STY", addressing.ZeroPage, 2},
	0x94: {"STY", addressing.ZeroPageX, 2},
	0x8C: {"STY", addressing.Absolute, 3},

	0xAA: {"TAX", addressing.Implied, 1},
	0x8A: {"TXA", addressing.Implied, 1},
	0xA8: {"TAY", addressing.Implied, 1},
	0x98: {"TYA", addressing.Implied, 1},
	0xBA: {"TSX", addressing.Implied, 1},
	0x9A: {"TXS", addressing.Implied, 1},

	0x48: {"PHA", addressing.Implied, 1},
	0x68: {"PLA", addressing.Implied, 1},
	0x08: {"PHP", addressing.Implied, 1},
	0x28: {"PLP", addressing.Implied, 1},

	0x29: {"AND", addressing.Immediate, 2},
	0x25: {"AND", addressing.ZeroPage, 2},
	0x35: {"AND", addressing.ZeroPageX, 2},
	0x2D: {"AND", addressing.Absolute, 3},
	0x3D: {"AND", addressing.AbsoluteX, 3},
	0x39: {"AND", addressing.AbsoluteY, 3},
	0x21: {"AND", addressing.IndirectX, 2},
	0x31: {"AND", addressing.IndirectY, 2},

	0x49: {"EOR", addressing.Immediate, 2},
	0x45: {"EOR", addressing.ZeroPage, 2},
	0x55: {"EOR", addressing.ZeroPageX, 2},
	0x4D: {"EOR", addressing.Absolute, 3},
	0x5D: {"EOR", addressing.AbsoluteX, 3},
	0x59: {"EOR", addressing.AbsoluteY, 3},
	0x41: {"EOR", addressing.IndirectX, 2},
	0x51: {"EOR", addressing.IndirectY, 2},

	0x09: {"ORA", addressing.Immediate, 2},
	0x05: {"ORA", addressing.ZeroPage, 2},
	0x15: {"ORA", addressing.ZeroPageX, 2},
	0x0D: {"ORA", addressing.Absolute, 3},
	0x1D: {"ORA", addressing.AbsoluteX, 3},
	0x19: {"ORA", addressing.AbsoluteY, 3},
	0x01: {"ORA", addressing.IndirectX, 2},
	0x11: {"ORA", addressing.IndirectY, 2},

	0x0A: {"ASL", addressing.Accumulator, 1},
	0x06: {"ASL", addressing.ZeroPage, 2},
	0x16: {"ASL", addressing.ZeroPageX, 2},
	0x0E: {"ASL", addressing.Absolute, 3},
	0x1E: {"ASL", addressing.AbsoluteX, 3},

	0x4A: {"LSR", addressing.Accumulator, 1},
	0x46: {"LSR", addressing.ZeroPage, 2},
	0x56: {"LSR", addressing.ZeroPageX, 2},
	0x4E: {"LSR", addressing.Absolute, 3},
	0x5E: {"LSR", addressing.AbsoluteX, 3},

	0x2A: {"ROL", addressing.Accumulator, 1},
	0x26: {"ROL", addressing.ZeroPage, 2},
	0x36: {"ROL", addressing.ZeroPageX, 2},
	0x2E: {"ROL", addressing.Absolute, 3},
	0x3E: {"ROL", addressing.AbsoluteX, 3},

	0x6A: {"ROR", addressing.Accumulator, 1},
	0x66: {"ROR", addressing.ZeroPage, 2},
	0x76: {"ROR", addressing.ZeroPageX, 2},
	0x6E: {"ROR", addressing.Absolute, 3},
	0x7E: {"ROR", addressing.AbsoluteX, 3},

	0x69: {"ADC", addressing.Immediate, 2},
	0x65: {"ADC", addressing.ZeroPage, 2},
	0x75: {"ADC", addressing.ZeroPageX, 2},
	0x6D: {"ADC", addressing.Absolute, 3},
	0x7D: {"ADC", addressing.AbsoluteX, 3},
	0x79: {"ADC", addressing.AbsoluteY, 3},
	0x61: {"ADC", addressing.IndirectX, 2},
	0x71: {"ADC", addressing.IndirectY, 2},

	0xE9: {"SBC", addressing.Immediate, 2},
	0xE5: {"SBC", addressing.ZeroPage, 2},
	0xF5: {"SBC", addressing.ZeroPageX, 2},
	0xED: {"SBC", addressing.Absolute, 3},
	0xFD: {"SBC", addressing.AbsoluteX, 3},
	0xF9: {"SBC", addressing.AbsoluteY, 3},
	0xE1: {"SBC", addressing.IndirectX, 2},
	0xF1: {"SBC", addressing.IndirectY, 2},

	0xE8: {"INX", addressing.Implied, 1},
	0xC8: {"INY", addressing.Implied, 1},
	0xCA: {"DEX", addressing.Implied, 1},
	0x88: {"DEY", addressing.Implied, 1},

	0xE6: {"INC", addressing.ZeroPage, 2},
	0xF6: {"INC", addressing.ZeroPageX, 2},
	0xEE: {"INC", addressing.Absolute, 3},
	0xFE: {"INC", addressing.AbsoluteX, 3},

	0xC6: {"DEC", addressing.ZeroPage, 2},
	0xD6: {"DEC", addressing.ZeroPageX, 2},
	0xCE: {"DEC", addressing.Absolute, 3},
	0xDE: {"DEC", addressing.AbsoluteX, 3},

	0xC9: {"CMP", addressing.Immediate, 2},
	0xC5: {"CMP", addressing.ZeroPage, 2},
	0xD5: {"CMP", addressing.ZeroPageX, 2},
	0xCD: {"CMP", addressing.Absolute, 3},
	0xDD: {"CMP", addressing.AbsoluteX, 3},
	0xD9: {"CMP", addressing.AbsoluteY, 3},
	0xC1: {"CMP", addressing.IndirectX, 2},
	0xD1: {"CMP", addressing.IndirectY, 2},

	0xE0: {"CPX", addressing.Immediate, 2},
	0xE4: {"CPX", addressing.ZeroPage, 2},
	0xEC: {"CPX", addressing.Absolute, 3},

	0xC0: {"CPY", addressing.Immediate, 2},
	0xC4: {"CPY", addressing.ZeroPage, 2},
	0xCC: {"CPY", addressing.Absolute, 3},

	0x90: {"BCC", addressing.Relative, 2},
	0xB0: {"BCS", addressing.Relative, 2},
	0xF0: {"BEQ", addressing.Relative, 2},
	0x30: {"BMI", addressing.Relative, 2},
	0xD0: {"BNE", addressing.Relative, 2},
	0x10: {"BPL", addressing.Relative, 2},
	0x50: {"BVC", addressing.Relative, 2},
	0x70: {"BVS", addressing.Relative, 2},

	0x18: {"CLC", addressing.Implied, 1},
	0x38: {"SEC", addressing.Implied, 1},
	0x58: {"CLI", addressing.Implied, 1},
	0x78: {"SEI", addressing.Implied, 1},
	0xB8: {"CLV", addressing.Implied, 1},
	0xD8: {"CLD", addressing.Implied, 1},
	0xF8: {"SED", addressing.Implied, 1},

	0x00: {"BRK", addressing.Implied, 1},
	0x40: {"RTI", addressing.Implied, 1},
	0x60: {"RTS", addressing.Implied, 1},
	0x20: {"JSR", addressing.Absolute, 3},
	0x4C: {"JMP", addressing.Absolute, 3},
	0x6C: {"JMP", addressing.Indirect, 3},
	0x24: {"BIT", addressing.ZeroPage, 2},
	0x2C: {"BIT", addressing.Absolute, 3},
	0xEA: {"NOP", addressing.Implied, 1},
}
