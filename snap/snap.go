package snap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"amber/mask"
	"amber/mem"
)

// formatVersion is bumped whenever the blob layout changes. Decoders
// refuse versions they do not know.
const formatVersion = 1

// headerSize is the fixed prefix before the compressed memory stream:
// version(1) A(1) X(1) Y(1) PC(2) SP(1) P(1) cycles(8) halted(1).
// Multi-byte fields are little-endian. The halted flag gets a whole byte
// rather than being packed into the cycle counter.
const headerSize = 17

// ErrSchemaMismatch means the blob's version byte is outside the range
// this decoder supports.
var ErrSchemaMismatch = errors.New("snap: unsupported snapshot version")

// A State is the full observable machine state at a quiescent point
// between instructions: register file, flags, instruction counter, halt
// latch, and the uncompressed 64 kB memory image.
type State struct {
	A      byte
	X      byte
	Y      byte
	PC     uint16
	SP     byte
	P      byte
	Cycles uint64
	Halted bool
	Mem    []byte
}

// Encode serializes s into a portable blob: the fixed header followed by
// the RLE-compressed memory image.
func (s *State) Encode() []byte {
	head := make([]byte, headerSize)
	head[0] = formatVersion
	head[1] = s.A
	head[2] = s.X
	head[3] = s.Y
	binary.LittleEndian.PutUint16(head[4:], s.PC)
	head[6] = s.SP
	head[7] = s.P
	binary.LittleEndian.PutUint64(head[8:], s.Cycles)
	head[16] = mask.Byte(s.Halted)

	return append(head, Compress(s.Mem)...)
}

// Decode parses a blob produced by Encode. On any error the partially
// reconstructed state is discarded and nothing is returned.
func Decode(blob []byte) (*State, error) {
	if len(blob) < headerSize {
		return nil, fmt.Errorf("snap: %d byte blob shorter than header: %w",
			len(blob), ErrTruncatedStream)
	}
	if blob[0] != formatVersion {
		return nil, fmt.Errorf("snap: version %d: %w", blob[0], ErrSchemaMismatch)
	}

	img, err := Decompress(blob[headerSize:])
	if err != nil {
		return nil, err
	}
	if len(img) != mem.Size {
		return nil, ErrTruncatedStream
	}

	return &State{
		A:      blob[1],
		X:      blob[2],
		Y:      blob[3],
		PC:     binary.LittleEndian.Uint16(blob[4:]),
		SP:     blob[6],
		P:      blob[7],
		Cycles: binary.LittleEndian.Uint64(blob[8:]),
		Halted: mask.Bool(blob[16]),
		Mem:    img,
	}, nil
}
