package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert.Equal(t, uint16(0x8000), Word(0x80, 0x00))
	assert.Equal(t, uint16(0x00ff), Word(0x00, 0xff))
	assert.Equal(t, uint16(0xabcd), Word(0xab, 0xcd))
}

func TestLoHi(t *testing.T) {
	w := uint16(0xabcd)
	assert.Equal(t, byte(0xcd), Lo(w))
	assert.Equal(t, byte(0xab), Hi(w))
	assert.Equal(t, w, Word(Hi(w), Lo(w)))
}

func TestBit(t *testing.T) {
	b := byte(0b1010_0001)
	assert.True(t, Bit(b, 0))
	assert.False(t, Bit(b, 1))
	assert.True(t, Bit(b, 5))
	assert.True(t, Bit(b, 7))
}

func TestSetBit(t *testing.T) {
	assert.Equal(t, byte(0x01), SetBit(0x00, 0, true))
	assert.Equal(t, byte(0x80), SetBit(0x00, 7, true))
	assert.Equal(t, byte(0x00), SetBit(0x01, 0, false))
	assert.Equal(t, byte(0xfe), SetBit(0xff, 0, false))
}

func TestByteBool(t *testing.T) {
	assert.Equal(t, byte(1), Byte(true))
	assert.Equal(t, byte(0), Byte(false))
	assert.True(t, Bool(1))
	assert.True(t, Bool(0xff))
	assert.False(t, Bool(0))
}
