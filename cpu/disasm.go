package cpu

import (
	"fmt"

	"amber/mask"
)

// Disassemble renders the instruction at addr as text and reports how many
// bytes it occupies. Memory is only read, never consumed: the PC does not
// move. Bytes outside the instruction set render as a .byte directive of
// size one, so a listing can walk straight through data.
func (c *Cpu) Disassemble(addr uint16) (string, uint16) {
	op := c.Read(addr)
	entry, ok := Opcodes[op]
	if !ok {
		return fmt.Sprintf(".byte $%02X", op), 1
	}

	size := 1 + entry.Mode.operandBytes()
	b1 := c.Read(addr + 1)
	word := mask.Word(c.Read(addr+2), b1)

	switch entry.Mode {
	case Implied:
		return entry.Name, size
	case Immediate:
		return fmt.Sprintf("%s #$%02X", entry.Name, b1), size
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", entry.Name, b1), size
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", entry.Name, b1), size
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", entry.Name, b1), size
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", entry.Name, b1), size
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", entry.Name, b1), size
	case Relative:
		target := addr + size + uint16(int16(int8(b1)))
		return fmt.Sprintf("%s $%04X", entry.Name, target), size
	case Absolute:
		return fmt.Sprintf("%s $%04X", entry.Name, word), size
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", entry.Name, word), size
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", entry.Name, word), size
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", entry.Name, word), size
	}
	return entry.Name, size
}
