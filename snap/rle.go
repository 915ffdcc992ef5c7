// Package snap freezes a running core into a portable blob and thaws it
// back, bit-identically, on any host. A blob is a fixed header carrying
// the register file followed by the 64 kB memory image compressed with a
// single-sentinel run-length scheme.

package snap

import (
	"errors"

	"amber/mem"
)

// Sentinel introduces the two escape forms in the compressed stream:
// Sentinel,0x00 is a literal 0xFF, and Sentinel,count,value is a run.
// A run count of zero is never emitted, which is what keeps the two
// forms distinguishable.
const Sentinel = 0xff

// maxRun is the longest run a single record can carry.
const maxRun = 255

var (
	// ErrTruncatedStream means the stream ended before 64 kB was produced.
	ErrTruncatedStream = errors.New("snap: truncated stream")
	// ErrOversizedStream means the stream decodes past the 64 kB image.
	ErrOversizedStream = errors.New("snap: stream decodes past 64 kB")
	// ErrBadEscape means the stream ends on a dangling sentinel byte.
	ErrBadEscape = errors.New("snap: dangling escape")
	// ErrBadRleCount means a run record was cut off before its value byte.
	ErrBadRleCount = errors.New("snap: run record missing value")
)

// Compress run-length encodes img. Runs of four or more identical bytes,
// and zero bytes of any run length, become Sentinel,count,value records;
// everything else is emitted literally, with literal 0xFF escaped as
// Sentinel,0x00.
func Compress(img []byte) []byte {
	out := make([]byte, 0, len(img)/8)

	for i := 0; i < len(img); {
		v := img[i]
		n := 1
		for i+n < len(img) && img[i+n] == v && n < maxRun {
			n++
		}

		if n >= 4 || v == 0x00 {
			out = append(out, Sentinel, byte(n), v)
		} else {
			for j := 0; j < n; j++ {
				if v == Sentinel {
					out = append(out, Sentinel, 0x00)
				} else {
					out = append(out, v)
				}
			}
		}
		i += n
	}
	return out
}

// Decompress inverts Compress. It consumes the whole stream and produces
// exactly 64 kB; anything else is an error and the partial image is
// discarded.
func Decompress(stream []byte) ([]byte, error) {
	out := make([]byte, 0, mem.Size)

	for i := 0; i < len(stream); {
		b := stream[i]
		if b != Sentinel {
			if len(out) >= mem.Size {
				return nil, ErrOversizedStream
			}
			out = append(out, b)
			i++
			continue
		}

		if i+1 >= len(stream) {
			return nil, ErrBadEscape
		}
		if stream[i+1] == 0x00 {
			// Escaped literal 0xFF.
			if len(out) >= mem.Size {
				return nil, ErrOversizedStream
			}
			out = append(out, Sentinel)
			i += 2
			continue
		}

		if i+2 >= len(stream) {
			return nil, ErrBadRleCount
		}
		count := int(stream[i+1])
		value := stream[i+2]
		if len(out)+count > mem.Size {
			return nil, ErrOversizedStream
		}
		for j := 0; j < count; j++ {
			out = append(out, value)
		}
		i += 3
	}

	if len(out) != mem.Size {
		return nil, ErrTruncatedStream
	}
	return out, nil
}
