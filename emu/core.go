// Package emu ties one Cpu and one Space together into a Core, the
// surface hosts embed. A Core is single-threaded and synchronous: hosts
// running several cores serialize access to each one themselves.

package emu

import (
	"amber/cpu"
	"amber/mem"
	"amber/snap"
)

// A Core owns a CPU and the 64 kB address space it executes against.
// External actors reach memory through Core methods; the CPU holds the
// only direct handle.
type Core struct {
	cpu *cpu.Cpu
	mem *mem.Space
}

// New returns a Core with zeroed memory and power-on register defaults.
// Call Reset after loading a program and its reset vector.
func New() *Core {
	m := &mem.Space{}
	return &Core{cpu: cpu.New(m), mem: m}
}

// Reset runs the reset sequence: registers cleared, SP to 0xFD, flags to
// unused+interrupt-disable, cycle counter zeroed, halt released, and PC
// loaded from the reset vector at 0xFFFC/D.
func (c *Core) Reset() {
	c.cpu.Reset()
}

// Step executes one instruction. A halted core is a no-op. An opcode
// outside the instruction set returns cpu.UnknownOpcode with the PC
// already past the byte.
func (c *Core) Step() error {
	return c.cpu.Step()
}

// A RunResult reports how far a batch run got.
type RunResult struct {
	Executed uint32
	Halted   bool
}

// Run steps until the core halts, the budget is exhausted, or an
// instruction fails. The core always stops on an instruction boundary,
// so a run cut short at step k is indistinguishable from k single steps.
func (c *Core) Run(budget uint32) (RunResult, error) {
	var res RunResult
	for res.Executed < budget {
		if c.cpu.Halted {
			break
		}
		if err := c.cpu.Step(); err != nil {
			res.Halted = c.cpu.Halted
			return res, err
		}
		res.Executed++
	}
	res.Halted = c.cpu.Halted
	return res, nil
}

// LoadProgram bulk-writes b into memory starting at start, truncating at
// the 64 kB boundary.
func (c *Core) LoadProgram(start uint16, b []byte) {
	c.mem.Load(start, b)
}

// ReadMem copies n bytes starting at addr. Like LoadProgram, the read
// truncates at the top of memory rather than wrapping.
func (c *Core) ReadMem(addr uint16, n int) []byte {
	if rest := mem.Size - int(addr); n > rest {
		n = rest
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = c.mem.Read(addr + uint16(i))
	}
	return out
}

// WriteMem stores one byte at addr.
func (c *Core) WriteMem(addr uint16, v byte) {
	c.mem.Write(addr, v)
}

// Registers returns a value copy of the register file.
func (c *Core) Registers() cpu.RegisterView {
	return c.cpu.Registers()
}

// Disassemble renders the instruction at addr without disturbing state.
func (c *Core) Disassemble(addr uint16) (string, uint16) {
	return c.cpu.Disassemble(addr)
}

// Snapshot freezes the full machine state into a portable blob. It must
// be called between steps; the blob records the current cycle counter
// and halt latch along with registers and memory.
func (c *Core) Snapshot() []byte {
	reg := c.cpu.Registers()
	s := snap.State{
		A:      reg.A,
		X:      reg.X,
		Y:      reg.Y,
		PC:     reg.PC,
		SP:     reg.SP,
		P:      reg.P,
		Cycles: reg.Cycles,
		Halted: reg.Halted,
		Mem:    c.mem.Dump(),
	}
	return s.Encode()
}

// Restore overwrites all register, flag, cycle, halt, and memory state
// from blob. The snapshot is authoritative; nothing is merged. On a
// decode error the core is left exactly as it was.
func (c *Core) Restore(blob []byte) error {
	s, err := snap.Decode(blob)
	if err != nil {
		return err
	}

	c.cpu.A = s.A
	c.cpu.X = s.X
	c.cpu.Y = s.Y
	c.cpu.PC = s.PC
	c.cpu.SP = s.SP
	c.cpu.Flags.SetByte(s.P)
	c.cpu.Cycles = s.Cycles
	c.cpu.Halted = s.Halted
	c.mem.Restore(s.Mem)
	return nil
}
