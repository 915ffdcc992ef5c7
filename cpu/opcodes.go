package cpu

// An Opcode pairs an addressing mode with the instruction it feeds. The
// Name is carried for the disassembler and the monitor.
type Opcode struct {
	Mode        AddressingMode
	Name        string
	Instruction func(c *Cpu, addr uint16)
}

// Opcodes maps every byte the core recognizes to its decode/execute pair.
// Bytes absent from the table are fatal to Step. Only the documented
// instruction set is present; illegal opcodes are not modeled.
var Opcodes = map[byte]Opcode{
	// Loads
	0xA9: {Mode: Immediate, Name: "LDA", Instruction: (*Cpu).LDA},
	0xA5: {Mode: ZeroPage, Name: "LDA", Instruction: (*Cpu).LDA},
	0xB5: {Mode: ZeroPageX, Name: "LDA", Instruction: (*Cpu).LDA},
	0xAD: {Mode: Absolute, Name: "LDA", Instruction: (*Cpu).LDA},
	0xBD: {Mode: AbsoluteX, Name: "LDA", Instruction: (*Cpu).LDA},
	0xB9: {Mode: AbsoluteY, Name: "LDA", Instruction: (*Cpu).LDA},
	0xA1: {Mode: IndirectX, Name: "LDA", Instruction: (*Cpu).LDA},
	0xB1: {Mode: IndirectY, Name: "LDA", Instruction: (*Cpu).LDA},

	0xA2: {Mode: Immediate, Name: "LDX", Instruction: (*Cpu).LDX},
	0xA6: {Mode: ZeroPage, Name: "LDX", Instruction: (*Cpu).LDX},
	0xB6: {Mode: ZeroPageY, Name: "LDX", Instruction: (*Cpu).LDX},
	0xAE: {Mode: Absolute, Name: "LDX", Instruction: (*Cpu).LDX},
	0xBE: {Mode: AbsoluteY, Name: "LDX", Instruction: (*Cpu).LDX},

	0xA0: {Mode: Immediate, Name: "LDY", Instruction: (*Cpu).LDY},
	0xA4: {Mode: ZeroPage, Name: "LDY", Instruction: (*Cpu).LDY},
	0xB4: {Mode: ZeroPageX, Name: "LDY", Instruction: (*Cpu).LDY},
	0xAC: {Mode: Absolute, Name: "LDY", Instruction: (*Cpu).LDY},
	0xBC: {Mode: AbsoluteX, Name: "LDY", Instruction: (*Cpu).LDY},

	// Stores
	0x85: {Mode: ZeroPage, Name: "STA", Instruction: (*Cpu).STA},
	0x95: {Mode: ZeroPageX, Name: "STA", Instruction: (*Cpu).STA},
	0x8D: {Mode: Absolute, Name: "STA", Instruction: (*Cpu).STA},
	0x9D: {Mode: AbsoluteX, Name: "STA", Instruction: (*Cpu).STA},
	0x99: {Mode: AbsoluteY, Name: "STA", Instruction: (*Cpu).STA},
	0x81: {Mode: IndirectX, Name: "STA", Instruction: (*Cpu).STA},
	0x91: {Mode: IndirectY, Name: "STA", Instruction: (*Cpu).STA},

	0x86: {Mode: ZeroPage, Name: "STX", Instruction: (*Cpu).STX},
	0x96: {Mode: ZeroPageY, Name: "STX", Instruction: (*Cpu).STX},
	0x8E: {Mode: Absolute, Name: "STX", Instruction: (*Cpu).STX},

	0x84: {Mode: ZeroPage, Name: "STY", Instruction: (*Cpu).STY},
	0x94: {Mode: ZeroPageX, Name: "STY", Instruction: (*Cpu).STY},
	0x8C: {Mode: Absolute, Name: "STY", Instruction: (*Cpu).STY},

	// Arithmetic
	0x69: {Mode: Immediate, Name: "ADC", Instruction: (*Cpu).ADC},
	0x65: {Mode: ZeroPage, Name: "ADC", Instruction: (*Cpu).ADC},
	0x75: {Mode: ZeroPageX, Name: "ADC", Instruction: (*Cpu).ADC},
	0x6D: {Mode: Absolute, Name: "ADC", Instruction: (*Cpu).ADC},
	0x7D: {Mode: AbsoluteX, Name: "ADC", Instruction: (*Cpu).ADC},
	0x79: {Mode: AbsoluteY, Name: "ADC", Instruction: (*Cpu).ADC},
	0x61: {Mode: IndirectX, Name: "ADC", Instruction: (*Cpu).ADC},
	0x71: {Mode: IndirectY, Name: "ADC", Instruction: (*Cpu).ADC},

	0xE9: {Mode: Immediate, Name: "SBC", Instruction: (*Cpu).SBC},
	0xE5: {Mode: ZeroPage, Name: "SBC", Instruction: (*Cpu).SBC},
	0xF5: {Mode: ZeroPageX, Name: "SBC", Instruction: (*Cpu).SBC},
	0xED: {Mode: Absolute, Name: "SBC", Instruction: (*Cpu).SBC},
	0xFD: {Mode: AbsoluteX, Name: "SBC", Instruction: (*Cpu).SBC},
	0xF9: {Mode: AbsoluteY, Name: "SBC", Instruction: (*Cpu).SBC},
	0xE1: {Mode: IndirectX, Name: "SBC", Instruction: (*Cpu).SBC},
	0xF1: {Mode: IndirectY, Name: "SBC", Instruction: (*Cpu).SBC},

	// Compares
	0xC9: {Mode: Immediate, Name: "CMP", Instruction: (*Cpu).CMP},
	0xC5: {Mode: ZeroPage, Name: "CMP", Instruction: (*Cpu).CMP},
	0xD5: {Mode: ZeroPageX, Name: "CMP", Instruction: (*Cpu).CMP},
	0xCD: {Mode: Absolute, Name: "CMP", Instruction: (*Cpu).CMP},
	0xDD: {Mode: AbsoluteX, Name: "CMP", Instruction: (*Cpu).CMP},
	0xD9: {Mode: AbsoluteY, Name: "CMP", Instruction: (*Cpu).CMP},
	0xC1: {Mode: IndirectX, Name: "CMP", Instruction: (*Cpu).CMP},
	0xD1: {Mode: IndirectY, Name: "CMP", Instruction: (*Cpu).CMP},

	0xE0: {Mode: Immediate, Name: "CPX", Instruction: (*Cpu).CPX},
	0xE4: {Mode: ZeroPage, Name: "CPX", Instruction: (*Cpu).CPX},
	0xEC: {Mode: Absolute, Name: "CPX", Instruction: (*Cpu).CPX},

	0xC0: {Mode: Immediate, Name: "CPY", Instruction: (*Cpu).CPY},
	0xC4: {Mode: ZeroPage, Name: "CPY", Instruction: (*Cpu).CPY},
	0xCC: {Mode: Absolute, Name: "CPY", Instruction: (*Cpu).CPY},

	// Bitwise
	0x29: {Mode: Immediate, Name: "AND", Instruction: (*Cpu).AND},
	0x25: {Mode: ZeroPage, Name: "AND", Instruction: (*Cpu).AND},
	0x35: {Mode: ZeroPageX, Name: "AND", Instruction: (*Cpu).AND},
	0x2D: {Mode: Absolute, Name: "AND", Instruction: (*Cpu).AND},
	0x3D: {Mode: AbsoluteX, Name: "AND", Instruction: (*Cpu).AND},
	0x39: {Mode: AbsoluteY, Name: "AND", Instruction: (*Cpu).AND},
	0x21: {Mode: IndirectX, Name: "AND", Instruction: (*Cpu).AND},
	0x31: {Mode: IndirectY, Name: "AND", Instruction: (*Cpu).AND},

	0x09: {Mode: Immediate, Name: "ORA", Instruction: (*Cpu).ORA},
	0x05: {Mode: ZeroPage, Name: "ORA", Instruction: (*Cpu).ORA},
	0x15: {Mode: ZeroPageX, Name: "ORA", Instruction: (*Cpu).ORA},
	0x0D: {Mode: Absolute, Name: "ORA", Instruction: (*Cpu).ORA},
	0x1D: {Mode: AbsoluteX, Name: "ORA", Instruction: (*Cpu).ORA},
	0x19: {Mode: AbsoluteY, Name: "ORA", Instruction: (*Cpu).ORA},
	0x01: {Mode: IndirectX, Name: "ORA", Instruction: (*Cpu).ORA},
	0x11: {Mode: IndirectY, Name: "ORA", Instruction: (*Cpu).ORA},

	0x49: {Mode: Immediate, Name: "EOR", Instruction: (*Cpu).EOR},
	0x45: {Mode: ZeroPage, Name: "EOR", Instruction: (*Cpu).EOR},
	0x55: {Mode: ZeroPageX, Name: "EOR", Instruction: (*Cpu).EOR},
	0x4D: {Mode: Absolute, Name: "EOR", Instruction: (*Cpu).EOR},
	0x5D: {Mode: AbsoluteX, Name: "EOR", Instruction: (*Cpu).EOR},
	0x59: {Mode: AbsoluteY, Name: "EOR", Instruction: (*Cpu).EOR},
	0x41: {Mode: IndirectX, Name: "EOR", Instruction: (*Cpu).EOR},
	0x51: {Mode: IndirectY, Name: "EOR", Instruction: (*Cpu).EOR},

	// Memory increment/decrement
	0xE6: {Mode: ZeroPage, Name: "INC", Instruction: (*Cpu).INC},
	0xF6: {Mode: ZeroPageX, Name: "INC", Instruction: (*Cpu).INC},
	0xEE: {Mode: Absolute, Name: "INC", Instruction: (*Cpu).INC},
	0xFE: {Mode: AbsoluteX, Name: "INC", Instruction: (*Cpu).INC},

	0xC6: {Mode: ZeroPage, Name: "DEC", Instruction: (*Cpu).DEC},
	0xD6: {Mode: ZeroPageX, Name: "DEC", Instruction: (*Cpu).DEC},
	0xCE: {Mode: Absolute, Name: "DEC", Instruction: (*Cpu).DEC},
	0xDE: {Mode: AbsoluteX, Name: "DEC", Instruction: (*Cpu).DEC},

	// Register increment/decrement
	0xE8: {Mode: Implied, Name: "INX", Instruction: (*Cpu).INX},
	0xC8: {Mode: Implied, Name: "INY", Instruction: (*Cpu).INY},
	0xCA: {Mode: Implied, Name: "DEX", Instruction: (*Cpu).DEX},
	0x88: {Mode: Implied, Name: "DEY", Instruction: (*Cpu).DEY},

	// Transfers
	0xAA: {Mode: Implied, Name: "TAX", Instruction: (*Cpu).TAX},
	0xA8: {Mode: Implied, Name: "TAY", Instruction: (*Cpu).TAY},
	0x8A: {Mode: Implied, Name: "TXA", Instruction: (*Cpu).TXA},
	0x98: {Mode: Implied, Name: "TYA", Instruction: (*Cpu).TYA},
	0xBA: {Mode: Implied, Name: "TSX", Instruction: (*Cpu).TSX},
	0x9A: {Mode: Implied, Name: "TXS", Instruction: (*Cpu).TXS},

	// Jumps and calls
	0x4C: {Mode: Absolute, Name: "JMP", Instruction: (*Cpu).JMP},
	0x6C: {Mode: Indirect, Name: "JMP", Instruction: (*Cpu).JMP},
	0x20: {Mode: Absolute, Name: "JSR", Instruction: (*Cpu).JSR},
	0x60: {Mode: Implied, Name: "RTS", Instruction: (*Cpu).RTS},

	// Flag operations
	0x18: {Mode: Implied, Name: "CLC", Instruction: (*Cpu).CLC},
	0x38: {Mode: Implied, Name: "SEC", Instruction: (*Cpu).SEC},
	0x58: {Mode: Implied, Name: "CLI", Instruction: (*Cpu).CLI},
	0x78: {Mode: Implied, Name: "SEI", Instruction: (*Cpu).SEI},
	0xD8: {Mode: Implied, Name: "CLD", Instruction: (*Cpu).CLD},
	0xF8: {Mode: Implied, Name: "SED", Instruction: (*Cpu).SED},
	0xB8: {Mode: Implied, Name: "CLV", Instruction: (*Cpu).CLV},

	// Branches
	0x90: {Mode: Relative, Name: "BCC", Instruction: (*Cpu).BCC},
	0xB0: {Mode: Relative, Name: "BCS", Instruction: (*Cpu).BCS},
	0xF0: {Mode: Relative, Name: "BEQ", Instruction: (*Cpu).BEQ},
	0xD0: {Mode: Relative, Name: "BNE", Instruction: (*Cpu).BNE},
	0x30: {Mode: Relative, Name: "BMI", Instruction: (*Cpu).BMI},
	0x10: {Mode: Relative, Name: "BPL", Instruction: (*Cpu).BPL},
	0x50: {Mode: Relative, Name: "BVC", Instruction: (*Cpu).BVC},
	0x70: {Mode: Relative, Name: "BVS", Instruction: (*Cpu).BVS},

	// System
	0x00: {Mode: Implied, Name: "BRK", Instruction: (*Cpu).BRK},
	0xEA: {Mode: Implied, Name: "NOP", Instruction: (*Cpu).NOP},
}
