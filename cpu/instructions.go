package cpu

// One method per mnemonic. Each receives the effective address computed
// for the opcode's addressing mode; instructions that take no operand
// ignore it. Flag rules follow the documented NMOS behavior with decimal
// mode ignored: arithmetic is always binary.

// LDA - Load Accumulator
func (c *Cpu) LDA(addr uint16) {
	c.A = c.Read(addr)
	c.setZN(c.A)
}

// LDX - Load X Register
func (c *Cpu) LDX(addr uint16) {
	c.X = c.Read(addr)
	c.setZN(c.X)
}

// LDY - Load Y Register
func (c *Cpu) LDY(addr uint16) {
	c.Y = c.Read(addr)
	c.setZN(c.Y)
}

// STA - Store Accumulator. Stores never touch flags.
func (c *Cpu) STA(addr uint16) {
	c.Write(addr, c.A)
}

// STX - Store X Register
func (c *Cpu) STX(addr uint16) {
	c.Write(addr, c.X)
}

// STY - Store Y Register
func (c *Cpu) STY(addr uint16) {
	c.Write(addr, c.Y)
}

// ADC - Add with Carry. Binary mode only; the decimal flag is ignored.
func (c *Cpu) ADC(addr uint16) {
	v := c.Read(addr)
	carry := uint16(0)
	if c.Flags.Carry {
		carry = 1
	}
	r := uint16(c.A) + uint16(v) + carry

	// Overflow: both inputs share a sign the result doesn't.
	c.Flags.Overflow = (c.A^byte(r))&(v^byte(r))&0x80 != 0
	c.Flags.Carry = r > 0xff
	c.A = byte(r)
	c.setZN(c.A)
}

// SBC - Subtract with Carry. A - M - (1 - C), signed 16-bit intermediate.
func (c *Cpu) SBC(addr uint16) {
	v := c.Read(addr)
	borrow := int16(1)
	if c.Flags.Carry {
		borrow = 0
	}
	r := int16(c.A) - int16(v) - borrow

	c.Flags.Overflow = (c.A^v)&(c.A^byte(r))&0x80 != 0
	c.Flags.Carry = r >= 0
	c.A = byte(r)
	c.setZN(c.A)
}

// CMP - Compare Accumulator
func (c *Cpu) CMP(addr uint16) {
	c.compare(c.A, c.Read(addr))
}

// CPX - Compare X Register
func (c *Cpu) CPX(addr uint16) {
	c.compare(c.X, c.Read(addr))
}

// CPY - Compare Y Register
func (c *Cpu) CPY(addr uint16) {
	c.compare(c.Y, c.Read(addr))
}

// compare sets C/Z/N from reg - v without modifying the register.
func (c *Cpu) compare(reg, v byte) {
	c.Flags.Carry = reg >= v
	c.setZN(reg - v)
}

// AND - Logical AND
func (c *Cpu) AND(addr uint16) {
	c.A &= c.Read(addr)
	c.setZN(c.A)
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(addr uint16) {
	c.A |= c.Read(addr)
	c.setZN(c.A)
}

// EOR - Exclusive OR
func (c *Cpu) EOR(addr uint16) {
	c.A ^= c.Read(addr)
	c.setZN(c.A)
}

// INC - Increment Memory
func (c *Cpu) INC(addr uint16) {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.setZN(v)
}

// DEC - Decrement Memory
func (c *Cpu) DEC(addr uint16) {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.setZN(v)
}

// INX - Increment X Register
func (c *Cpu) INX(uint16) {
	c.X++
	c.setZN(c.X)
}

// INY - Increment Y Register
func (c *Cpu) INY(uint16) {
	c.Y++
	c.setZN(c.Y)
}

// DEX - Decrement X Register
func (c *Cpu) DEX(uint16) {
	c.X--
	c.setZN(c.X)
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(uint16) {
	c.Y--
	c.setZN(c.Y)
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(uint16) {
	c.X = c.A
	c.setZN(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(uint16) {
	c.Y = c.A
	c.setZN(c.Y)
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(uint16) {
	c.A = c.X
	c.setZN(c.A)
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(uint16) {
	c.A = c.Y
	c.setZN(c.A)
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(uint16) {
	c.X = c.SP
	c.setZN(c.X)
}

// TXS - Transfer X to Stack Pointer. The only transfer that leaves the
// flags alone.
func (c *Cpu) TXS(uint16) {
	c.SP = c.X
}

// JMP - Jump. The addressing mode (absolute or indirect, with the
// page-wrap bug) has already produced the target.
func (c *Cpu) JMP(addr uint16) {
	c.PC = addr
}

// JSR - Jump to Subroutine. Pushes the address of the last operand byte
// (return address minus one), high byte first.
func (c *Cpu) JSR(addr uint16) {
	c.pushWord(c.PC - 1)
	c.PC = addr
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(uint16) {
	c.PC = c.popWord() + 1
}

// BRK - Force halt. This core does not push state or fetch the IRQ
// vector; the halt latch sticks until Reset.
func (c *Cpu) BRK(uint16) {
	c.Halted = true
}

// NOP - No Operation
func (c *Cpu) NOP(uint16) {}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(uint16) { c.Flags.Carry = false }

// SEC - Set Carry Flag
func (c *Cpu) SEC(uint16) { c.Flags.Carry = true }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(uint16) { c.Flags.Interrupt = false }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(uint16) { c.Flags.Interrupt = true }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(uint16) { c.Flags.Decimal = false }

// SED - Set Decimal Mode
func (c *Cpu) SED(uint16) { c.Flags.Decimal = true }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(uint16) { c.Flags.Overflow = false }

// Branches take the precomputed Relative target only when their flag
// condition holds; the displacement was consumed either way.

// BCC - Branch if Carry Clear
func (c *Cpu) BCC(addr uint16) {
	if !c.Flags.Carry {
		c.PC = addr
	}
}

// BCS - Branch if Carry Set
func (c *Cpu) BCS(addr uint16) {
	if c.Flags.Carry {
		c.PC = addr
	}
}

// BEQ - Branch if Equal
func (c *Cpu) BEQ(addr uint16) {
	if c.Flags.Zero {
		c.PC = addr
	}
}

// BNE - Branch if Not Equal
func (c *Cpu) BNE(addr uint16) {
	if !c.Flags.Zero {
		c.PC = addr
	}
}

// BMI - Branch if Minus
func (c *Cpu) BMI(addr uint16) {
	if c.Flags.Negative {
		c.PC = addr
	}
}

// BPL - Branch if Positive
func (c *Cpu) BPL(addr uint16) {
	if !c.Flags.Negative {
		c.PC = addr
	}
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC(addr uint16) {
	if !c.Flags.Overflow {
		c.PC = addr
	}
}

// BVS - Branch if Overflow Set
func (c *Cpu) BVS(addr uint16) {
	if c.Flags.Overflow {
		c.PC = addr
	}
}
