// Package cpu implements an instruction-accurate MOS 6502 core. Execution
// is driven one instruction at a time through Step; the cycle counter
// counts instructions, not bus cycles.

package cpu

import (
	"fmt"

	"amber/mask"
	"amber/mem"
)

// Vector addresses. Only the reset vector is consulted by this core;
// interrupts are not modeled.
const (
	ResetVector = uint16(0xfffc)
	StackBase   = uint16(0x0100)
)

// Flags is the status register, one field per bit. Unused is pinned high:
// Byte always reports it set, and SetByte cannot clear it.
//
// 7654 3210
// NV1B DIZC
type Flags struct {
	Carry     bool // bit 0
	Zero      bool // bit 1
	Interrupt bool // bit 2, interrupt disable
	Decimal   bool // bit 3, decimal mode (ignored by arithmetic)
	B         bool // bit 4
	Unused    bool // bit 5, always reads 1
	Overflow  bool // bit 6
	Negative  bool // bit 7
}

// Byte packs the flags into the P register wire format.
func (f *Flags) Byte() byte {
	var p byte
	p = mask.SetBit(p, 0, f.Carry)
	p = mask.SetBit(p, 1, f.Zero)
	p = mask.SetBit(p, 2, f.Interrupt)
	p = mask.SetBit(p, 3, f.Decimal)
	p = mask.SetBit(p, 4, f.B)
	p = mask.SetBit(p, 5, true)
	p = mask.SetBit(p, 6, f.Overflow)
	p = mask.SetBit(p, 7, f.Negative)
	return p
}

// SetByte unpacks p into the individual flags. Unused stays set no matter
// what p carries in bit 5.
func (f *Flags) SetByte(p byte) {
	f.Carry = mask.Bit(p, 0)
	f.Zero = mask.Bit(p, 1)
	f.Interrupt = mask.Bit(p, 2)
	f.Decimal = mask.Bit(p, 3)
	f.B = mask.Bit(p, 4)
	f.Unused = true
	f.Overflow = mask.Bit(p, 6)
	f.Negative = mask.Bit(p, 7)
}

// A Cpu executes against the Space it was built with. It has no memory of
// its own beyond the register file; all observable side effects of Step
// land in the registers, the flags, the Space, and the Halted latch.
type Cpu struct {
	Mem *mem.Space

	A byte // accumulator
	X byte
	Y byte

	// SP is the low byte of the stack pointer; the stack lives in the
	// 01 page, so the effective top of stack is 0x0100|SP.
	SP byte

	PC uint16

	Flags Flags

	// Cycles counts executed instructions, one per Step. It only resets
	// on Reset or snapshot restore.
	Cycles uint64

	// Halted latches when BRK executes; Step is a no-op until Reset.
	Halted bool
}

// An AddressingMode tells the Cpu how to turn operand bytes into an
// effective address. Besides Implied, there are 11 operand modes in the
// documented set handled here (accumulator-operand instructions are not
// part of this core).
type AddressingMode int

const (
	Implied AddressingMode = iota

	// 1 operand byte

	Immediate // the operand byte itself is the value
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX // (zp,X): pointer indexed before indirection
	IndirectY // (zp),Y: pointer indexed after indirection
	Relative  // branches; signed displacement from the next instruction

	// 2 operand bytes

	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP only
)

// operandBytes reports how many operand bytes a mode consumes.
func (a AddressingMode) operandBytes() uint16 {
	switch a {
	case Implied:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}

// UnknownOpcode is returned by Step when the fetched byte is not in the
// documented instruction set. The PC has already advanced past the byte,
// so a host can disassemble around PC-1 or snapshot and inspect.
type UnknownOpcode struct {
	Opcode byte
	PC     uint16 // address the opcode byte was fetched from
}

// Error implements the interface for error types.
func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}

// New returns a Cpu bound to m in the power-on state: registers zeroed,
// SP at 0xFD, interrupts disabled. The PC is not loaded until Reset.
func New(m *mem.Space) *Cpu {
	return &Cpu{
		Mem:   m,
		SP:    0xfd,
		Flags: Flags{Interrupt: true, Unused: true},
	}
}

// Reset clears the register file, reloads the PC from the reset vector at
// 0xFFFC/D, and releases the halt latch. Memory is left untouched.
func (c *Cpu) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xfd
	c.Flags = Flags{Interrupt: true, Unused: true}
	c.Cycles = 0
	c.Halted = false
	c.PC = c.Mem.ReadWord(ResetVector)
}

// Read reads one byte from the bound Space.
func (c *Cpu) Read(addr uint16) byte { return c.Mem.Read(addr) }

// Write stores one byte into the bound Space.
func (c *Cpu) Write(addr uint16, v byte) { c.Mem.Write(addr, v) }

// Step executes one instruction: fetch the opcode at PC, consume operand
// bytes, perform the operation, and count one cycle. A halted Cpu returns
// immediately with no state change. An unrecognized opcode returns
// UnknownOpcode with the PC already past the offending byte and the cycle
// counter untouched.
func (c *Cpu) Step() error {
	if c.Halted {
		return nil
	}

	at := c.PC
	op := c.Read(c.PC)
	c.PC++

	entry, ok := Opcodes[op]
	if !ok {
		return UnknownOpcode{Opcode: op, PC: at}
	}

	addr := c.operand(entry.Mode)
	entry.Instruction(c, addr)
	c.Cycles++
	return nil
}

// operand consumes the operand bytes for the given mode and returns the
// effective address. For Immediate that is the address of the operand byte
// itself; for Relative it is the branch target; Implied returns 0.
//
// All arithmetic is width-correct: zero-page indexing and zero-page
// pointer fetches wrap within the first page, absolute indexing wraps at
// 64 kB, and the Indirect mode reproduces the JMP page-wrap bug.
func (c *Cpu) operand(mode AddressingMode) uint16 {
	switch mode {
	case Implied:
		return 0

	case Immediate:
		addr := c.PC
		c.PC++
		return addr

	case ZeroPage:
		addr := uint16(c.Read(c.PC))
		c.PC++
		return addr

	case ZeroPageX:
		addr := uint16(c.Read(c.PC) + c.X)
		c.PC++
		return addr

	case ZeroPageY:
		addr := uint16(c.Read(c.PC) + c.Y)
		c.PC++
		return addr

	case IndirectX:
		// The pointer is indexed in the zero page, and its second
		// byte is fetched from (ptr+1) mod 256, never from 0x0100.
		ptr := c.Read(c.PC) + c.X
		c.PC++
		return mask.Word(c.Read(uint16(ptr+1)), c.Read(uint16(ptr)))

	case IndirectY:
		ptr := c.Read(c.PC)
		c.PC++
		base := mask.Word(c.Read(uint16(ptr+1)), c.Read(uint16(ptr)))
		return base + uint16(c.Y)

	case Relative:
		off := c.Read(c.PC)
		c.PC++
		return c.PC + uint16(int16(int8(off)))

	case Absolute:
		lo := c.Read(c.PC)
		hi := c.Read(c.PC + 1)
		c.PC += 2
		return mask.Word(hi, lo)

	case AbsoluteX:
		lo := c.Read(c.PC)
		hi := c.Read(c.PC + 1)
		c.PC += 2
		return mask.Word(hi, lo) + uint16(c.X)

	case AbsoluteY:
		lo := c.Read(c.PC)
		hi := c.Read(c.PC + 1)
		c.PC += 2
		return mask.Word(hi, lo) + uint16(c.Y)

	case Indirect:
		ptrLo := c.Read(c.PC)
		ptrHi := c.Read(c.PC + 1)
		c.PC += 2
		ptr := mask.Word(ptrHi, ptrLo)

		lo := c.Read(ptr)
		var hi byte
		if ptrLo == 0xff {
			// 6502 bug: the pointer's high byte is fetched from
			// the start of the same page, not from ptr+1.
			hi = c.Read(ptr & 0xff00)
		} else {
			hi = c.Read(ptr + 1)
		}
		return mask.Word(hi, lo)
	}
	return 0
}

// push writes v at the top of the stack page and moves SP down. SP wraps
// modularly; there is no overflow.
func (c *Cpu) push(v byte) {
	c.Write(StackBase|uint16(c.SP), v)
	c.SP--
}

// pop moves SP up and reads the byte there. SP wraps modularly.
func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(StackBase | uint16(c.SP))
}

// pushWord pushes high byte first so the word reads back little-endian
// from the stack's low address.
func (c *Cpu) pushWord(v uint16) {
	c.push(mask.Hi(v))
	c.push(mask.Lo(v))
}

func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}

// setZN updates Zero and Negative from a result byte.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// A RegisterView is a value copy of the programmer-visible state, taken
// between instructions.
type RegisterView struct {
	A      byte
	X      byte
	Y      byte
	PC     uint16
	SP     byte
	P      byte
	Cycles uint64
	Halted bool
}

// Registers returns the current register file, flags packed into P.
func (c *Cpu) Registers() RegisterView {
	return RegisterView{
		A:      c.A,
		X:      c.X,
		Y:      c.Y,
		PC:     c.PC,
		SP:     c.SP,
		P:      c.Flags.Byte(),
		Cycles: c.Cycles,
		Halted: c.Halted,
	}
}
