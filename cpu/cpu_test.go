package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amber/mem"
)

// testCpu loads prog at 0x8000, points the reset vector there, and
// returns a freshly reset Cpu.
func testCpu(t *testing.T, prog ...byte) *Cpu {
	t.Helper()
	m := &mem.Space{}
	m.Load(0x8000, prog)
	m.WriteWord(ResetVector, 0x8000)
	c := New(m)
	c.Reset()
	return c
}

func step(t *testing.T, c *Cpu, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, c.Step())
	}
}

func TestResetState(t *testing.T) {
	c := testCpu(t, 0xEA)

	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xfd), c.SP)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint64(0), c.Cycles)
	assert.False(t, c.Halted)

	// Unused and interrupt-disable set, nothing else.
	assert.Equal(t, byte(0x24), c.Flags.Byte())
}

func TestResetVectorIsTheOnlyConfig(t *testing.T) {
	m := &mem.Space{}
	m.WriteWord(ResetVector, 0xc123)
	c := New(m)
	c.Reset()
	assert.Equal(t, uint16(0xc123), c.PC)
}

func TestLDAImmediate(t *testing.T) {
	c := testCpu(t, 0xA9, 0x42) // LDA #$42
	step(t, c, 1)

	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
	assert.Equal(t, uint64(1), c.Cycles)
}

func TestLoadFlags(t *testing.T) {
	c := testCpu(t, 0xA9, 0x00, 0xA2, 0x80, 0xA0, 0x7f) // LDA #0, LDX #$80, LDY #$7F
	step(t, c, 1)
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)

	step(t, c, 1)
	assert.Equal(t, byte(0x80), c.X)
	assert.False(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative)

	step(t, c, 1)
	assert.Equal(t, byte(0x7f), c.Y)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
}

func TestADCCarryOut(t *testing.T) {
	c := testCpu(t, 0xA9, 0xFF, 0x69, 0x02) // LDA #$FF, ADC #$02
	step(t, c, 2)

	assert.Equal(t, byte(0x01), c.A)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
}

func TestADCSignedOverflow(t *testing.T) {
	c := testCpu(t, 0xA9, 0x7F, 0x69, 0x01) // LDA #$7F, ADC #$01
	step(t, c, 2)

	assert.Equal(t, byte(0x80), c.A)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Overflow)
	assert.True(t, c.Flags.Negative)
}

func TestADCUsesIncomingCarry(t *testing.T) {
	c := testCpu(t, 0x38, 0xA9, 0x10, 0x69, 0x05) // SEC, LDA #$10, ADC #$05
	step(t, c, 3)
	assert.Equal(t, byte(0x16), c.A)
	assert.False(t, c.Flags.Carry)
}

func TestADCCommutes(t *testing.T) {
	vals := []byte{0x00, 0x01, 0x40, 0x7f, 0x80, 0xff}
	for _, a := range vals {
		for _, m := range vals {
			for _, carry := range []bool{false, true} {
				lhs := testCpu(t, 0xEA)
				lhs.A = a
				lhs.Flags.Carry = carry
				lhs.Write(0x0010, m)
				lhs.ADC(0x0010)

				rhs := testCpu(t, 0xEA)
				rhs.A = m
				rhs.Flags.Carry = carry
				rhs.Write(0x0010, a)
				rhs.ADC(0x0010)

				assert.Equal(t, lhs.A, rhs.A, "A for %02x+%02x carry=%v", a, m, carry)
				assert.Equal(t, lhs.Flags, rhs.Flags, "flags for %02x+%02x carry=%v", a, m, carry)
			}
		}
	}
}

func TestSBC(t *testing.T) {
	// SEC, LDA #$50, SBC #$30: no borrow
	c := testCpu(t, 0x38, 0xA9, 0x50, 0xE9, 0x30)
	step(t, c, 3)
	assert.Equal(t, byte(0x20), c.A)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.Overflow)

	// CLC, LDA #$50, SBC #$50: the pending borrow pushes it under zero
	c = testCpu(t, 0x18, 0xA9, 0x50, 0xE9, 0x50)
	step(t, c, 3)
	assert.Equal(t, byte(0xff), c.A)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Negative)
}

func TestSBCSignedOverflow(t *testing.T) {
	// SEC, LDA #$80, SBC #$01: -128 - 1 overflows to +127
	c := testCpu(t, 0x38, 0xA9, 0x80, 0xE9, 0x01)
	step(t, c, 3)
	assert.Equal(t, byte(0x7f), c.A)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Negative)
}

func TestCompareLeavesRegister(t *testing.T) {
	for _, tc := range []struct {
		reg, m        byte
		carry, zero   bool
		negative      bool
	}{
		{0x40, 0x30, true, false, false},
		{0x40, 0x40, true, true, false},
		{0x30, 0x40, false, false, true},
		{0x00, 0xff, false, false, false},
	} {
		c := testCpu(t, 0xC9, tc.m) // CMP #m
		c.A = tc.reg
		step(t, c, 1)

		assert.Equal(t, tc.reg, c.A, "A must survive CMP")
		assert.Equal(t, tc.carry, c.Flags.Carry, "C for %02x cmp %02x", tc.reg, tc.m)
		assert.Equal(t, tc.zero, c.Flags.Zero, "Z for %02x cmp %02x", tc.reg, tc.m)
		assert.Equal(t, tc.negative, c.Flags.Negative, "N for %02x cmp %02x", tc.reg, tc.m)
	}
}

func TestCPXCPY(t *testing.T) {
	c := testCpu(t, 0xE0, 0x10, 0xC0, 0x10) // CPX #$10, CPY #$10
	c.X = 0x10
	c.Y = 0x09
	step(t, c, 1)
	assert.True(t, c.Flags.Zero)
	assert.True(t, c.Flags.Carry)
	step(t, c, 1)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Carry)
	assert.Equal(t, byte(0x10), c.X)
	assert.Equal(t, byte(0x09), c.Y)
}

func TestBitwise(t *testing.T) {
	c := testCpu(t, 0x29, 0x0F, 0x09, 0x80, 0x49, 0xFF) // AND #$0F, ORA #$80, EOR #$FF
	c.A = 0x5A

	step(t, c, 1)
	assert.Equal(t, byte(0x0a), c.A)
	step(t, c, 1)
	assert.Equal(t, byte(0x8a), c.A)
	assert.True(t, c.Flags.Negative)
	step(t, c, 1)
	assert.Equal(t, byte(0x75), c.A)
	assert.False(t, c.Flags.Negative)
}

func TestStoresDontTouchFlags(t *testing.T) {
	c := testCpu(t, 0xA9, 0x80, 0x85, 0x10, 0x86, 0x11, 0x84, 0x12) // LDA #$80, STA $10, STX $11, STY $12
	step(t, c, 1)
	before := c.Flags

	step(t, c, 3)
	assert.Equal(t, before, c.Flags)
	assert.Equal(t, byte(0x80), c.Read(0x0010))
	assert.Equal(t, byte(0x00), c.Read(0x0011))
	assert.Equal(t, byte(0x00), c.Read(0x0012))
}

func TestStoreAddressingModes(t *testing.T) {
	c := testCpu(t,
		0x95, 0xF0, // STA $F0,X
		0x96, 0xF0, // STX $F0,Y
		0x8D, 0x00, 0x20, // STA $2000
		0x99, 0xFF, 0xFF, // STA $FFFF,Y
	)
	c.A = 0xaa
	c.X = 0x20
	c.Y = 0x04

	step(t, c, 1) // zero-page indexing wraps: 0xF0+0x20 = 0x10
	assert.Equal(t, byte(0xaa), c.Read(0x0010))

	step(t, c, 1) // 0xF0+0x04 = 0xF4
	assert.Equal(t, byte(0x20), c.Read(0x00f4))

	step(t, c, 1)
	assert.Equal(t, byte(0xaa), c.Read(0x2000))

	step(t, c, 1) // absolute indexing wraps at 64 kB: 0xFFFF+4 = 0x0003
	assert.Equal(t, byte(0xaa), c.Read(0x0003))
}

func TestIndexedIndirect(t *testing.T) {
	c := testCpu(t, 0xA1, 0xF0) // LDA ($F0,X)
	c.X = 0x0F
	// pointer at 0xFF, second byte wraps to 0x00 -- never 0x0100
	c.Write(0x00ff, 0x34)
	c.Write(0x0000, 0x12)
	c.Write(0x0100, 0x99) // must not be consulted
	c.Write(0x1234, 0x5a)

	step(t, c, 1)
	assert.Equal(t, byte(0x5a), c.A)
}

func TestIndirectIndexed(t *testing.T) {
	c := testCpu(t, 0xB1, 0xFF) // LDA ($FF),Y
	c.Y = 0x10
	c.Write(0x00ff, 0x00)
	c.Write(0x0000, 0x30) // high byte from 0x00, not 0x100
	c.Write(0x3010, 0x77)

	step(t, c, 1)
	assert.Equal(t, byte(0x77), c.A)
}

func TestIncDecMemory(t *testing.T) {
	c := testCpu(t, 0xE6, 0x10, 0xC6, 0x10, 0xC6, 0x10) // INC $10, DEC $10, DEC $10
	c.Write(0x0010, 0xff)

	step(t, c, 1) // 0xff -> 0x00
	assert.Equal(t, byte(0x00), c.Read(0x0010))
	assert.True(t, c.Flags.Zero)

	step(t, c, 1) // 0x00 -> 0xff
	assert.Equal(t, byte(0xff), c.Read(0x0010))
	assert.True(t, c.Flags.Negative)

	step(t, c, 1)
	assert.Equal(t, byte(0xfe), c.Read(0x0010))
}

func TestRegisterIncDec(t *testing.T) {
	c := testCpu(t, 0xE8, 0xC8, 0xCA, 0x88) // INX, INY, DEX, DEY
	c.X = 0xff
	c.Y = 0x7f

	step(t, c, 1)
	assert.Equal(t, byte(0x00), c.X)
	assert.True(t, c.Flags.Zero)

	step(t, c, 1)
	assert.Equal(t, byte(0x80), c.Y)
	assert.True(t, c.Flags.Negative)

	step(t, c, 2)
	assert.Equal(t, byte(0xff), c.X)
	assert.Equal(t, byte(0x7f), c.Y)
}

func TestTransfers(t *testing.T) {
	c := testCpu(t, 0xAA, 0xA8, 0xBA, 0x9A, 0x8A, 0x98) // TAX, TAY, TSX, TXS, TXA, TYA
	c.A = 0x80

	step(t, c, 2)
	assert.Equal(t, byte(0x80), c.X)
	assert.Equal(t, byte(0x80), c.Y)
	assert.True(t, c.Flags.Negative)

	step(t, c, 1) // TSX
	assert.Equal(t, byte(0xfd), c.X)
	assert.True(t, c.Flags.Negative)

	flagsBefore := c.Flags
	c.X = 0x00
	step(t, c, 1) // TXS: no flags, even moving zero
	assert.Equal(t, byte(0x00), c.SP)
	assert.Equal(t, flagsBefore, c.Flags)

	step(t, c, 1) // TXA
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flags.Zero)

	step(t, c, 1) // TYA
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Flags.Negative)
}

func TestJSRRTS(t *testing.T) {
	c := testCpu(t, 0x20, 0x00, 0x90, 0xEA) // JSR $9000, NOP
	c.Write(0x9000, 0x60)                   // RTS
	sp0 := c.SP

	step(t, c, 1)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, sp0-2, c.SP)
	// return-1 on the stack, low byte at the lower address
	assert.Equal(t, byte(0x02), c.Read(StackBase|uint16(c.SP+1)))
	assert.Equal(t, byte(0x80), c.Read(StackBase|uint16(c.SP+2)))

	step(t, c, 1) // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, sp0, c.SP)
}

func TestStackPointerWraps(t *testing.T) {
	c := testCpu(t, 0xA2, 0x00, 0x9A, 0x20, 0x00, 0x90) // LDX #0, TXS, JSR $9000
	step(t, c, 3)

	assert.Equal(t, byte(0xfe), c.SP)
	assert.Equal(t, byte(0x80), c.Read(0x0100))
	assert.Equal(t, byte(0x05), c.Read(0x01ff))
}

func TestJMPAbsolute(t *testing.T) {
	c := testCpu(t, 0x4C, 0x00, 0x40) // JMP $4000
	step(t, c, 1)
	assert.Equal(t, uint16(0x4000), c.PC)
}

func TestJMPIndirect(t *testing.T) {
	c := testCpu(t, 0x6C, 0x00, 0x30) // JMP ($3000)
	c.Write(0x3000, 0x34)
	c.Write(0x3001, 0x12)
	step(t, c, 1)
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c := testCpu(t, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	c.Write(0x30ff, 0x00)
	c.Write(0x3000, 0x40) // high byte comes from the start of the page
	c.Write(0x3100, 0x50) // not from 0x3100

	step(t, c, 1)
	assert.Equal(t, uint16(0x4000), c.PC)
}

func TestBranchTakenAndNot(t *testing.T) {
	// BEQ not taken, then BNE taken forward over a NOP
	c := testCpu(t, 0xF0, 0x02, 0xD0, 0x01, 0xEA, 0xA9, 0x01)
	step(t, c, 1)
	assert.Equal(t, uint16(0x8002), c.PC)
	step(t, c, 1)
	assert.Equal(t, uint16(0x8005), c.PC)
}

func TestBranchBackward(t *testing.T) {
	// LDX #$02, DEX, BNE -3: loops until X drains
	c := testCpu(t, 0xA2, 0x02, 0xCA, 0xD0, 0xFD)
	step(t, c, 1)
	step(t, c, 2) // DEX, BNE (taken)
	assert.Equal(t, uint16(0x8002), c.PC)
	step(t, c, 2) // DEX, BNE (not taken)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, uint16(0x8005), c.PC)
}

func TestFlagOps(t *testing.T) {
	c := testCpu(t, 0x38, 0xF8, 0x78, 0x18, 0xD8, 0x58, 0xB8) // SEC SED SEI CLC CLD CLI CLV
	c.Flags.Overflow = true

	step(t, c, 3)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Decimal)
	assert.True(t, c.Flags.Interrupt)
	assert.True(t, c.Flags.Overflow)

	step(t, c, 4)
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Decimal)
	assert.False(t, c.Flags.Interrupt)
	assert.False(t, c.Flags.Overflow)
	assert.True(t, c.Flags.Unused)
}

func TestBRKHaltsWithoutStackOrVector(t *testing.T) {
	c := testCpu(t, 0x00, 0xEA) // BRK
	c.Write(0xfffe, 0x00)
	c.Write(0xffff, 0x90)
	sp0 := c.SP

	step(t, c, 1)
	assert.True(t, c.Halted)
	assert.Equal(t, uint16(0x8001), c.PC, "PC moves past the opcode, not to the IRQ vector")
	assert.Equal(t, sp0, c.SP, "nothing pushed")
	assert.Equal(t, uint64(1), c.Cycles)

	// Halted: Step is a no-op until Reset.
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8001), c.PC)
	assert.Equal(t, uint64(1), c.Cycles)

	c.Reset()
	assert.False(t, c.Halted)
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestUnknownOpcode(t *testing.T) {
	c := testCpu(t, 0x02) // not in the documented set
	err := c.Step()

	var unk UnknownOpcode
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, byte(0x02), unk.Opcode)
	assert.Equal(t, uint16(0x8000), unk.PC)
	assert.Equal(t, uint16(0x8001), c.PC, "PC left past the byte")
	assert.Equal(t, uint64(0), c.Cycles)
}

func TestStepAdvancesPC(t *testing.T) {
	// Every non-branching instruction must move the PC.
	c := testCpu(t, 0xEA, 0xA9, 0x05, 0x85, 0x10)
	for i := 0; i < 3; i++ {
		before := c.PC
		require.NoError(t, c.Step())
		assert.NotEqual(t, before, c.PC)
	}
}

func TestFlagsByteRoundTrip(t *testing.T) {
	var f Flags
	f.SetByte(0x00)
	assert.True(t, f.Unused, "bit 5 cannot be cleared")
	assert.Equal(t, byte(0x20), f.Byte())

	f.SetByte(0xff)
	assert.Equal(t, byte(0xff), f.Byte())

	f.SetByte(0xc3)
	assert.Equal(t, byte(0xe3), f.Byte()) // bit 5 forced high
}

func TestRegisterView(t *testing.T) {
	c := testCpu(t, 0xA9, 0x42, 0x00) // LDA #$42, BRK
	step(t, c, 2)

	reg := c.Registers()
	assert.Equal(t, byte(0x42), reg.A)
	assert.Equal(t, uint16(0x8003), reg.PC)
	assert.Equal(t, byte(0xfd), reg.SP)
	assert.Equal(t, uint64(2), reg.Cycles)
	assert.True(t, reg.Halted)
	assert.Equal(t, byte(0x24), reg.P&0x24)
}
