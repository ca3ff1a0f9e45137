// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

import "encoding/binary"

// CPRS container constants. All fields are little-endian 32-bit words.
const (
	// Signature is the magic word "CPRS"; it must open and close the container.
	Signature uint32 = 0x53525043
	// WordSize is the container word size in bytes.
	WordSize = 4
	// HeaderWords is the number of leading header words
	// (signature, size hint, decompressed size, two window seeds).
	HeaderWords = 5
	// MinWords is the smallest valid container: header plus trailing signature.
	MinWords = HeaderWords + 1
)

// Container is the parsed view of a CPRS stream.
// The payload spans the words between the header and the trailing signature.
type Container struct {
	// CompressedSizeHint is header word 1. Informational only: the firmware
	// tool does not use it for decoding and neither does this package.
	CompressedSizeHint uint32
	// DecompressedSize is the declared output length in bytes. It sizes the
	// output buffer but does not stop the decoder; see Decompress.
	DecompressedSize uint32

	seedAlpha uint32 // initial bit-window register
	seedBeta  uint32 // initial lookahead register
	payload   []byte // encoded bitstream, trailing signature excluded
}

// ParseContainer validates the container invariants and returns the parsed
// header without decoding. Checks run in the reference order: alignment,
// word count, signatures. The payload slice aliases src.
func ParseContainer(src []byte) (*Container, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	if len(src)%WordSize != 0 {
		return nil, ErrMisaligned
	}

	if len(src)/WordSize < MinWords {
		return nil, ErrTooSmall
	}

	first := binary.LittleEndian.Uint32(src)
	last := binary.LittleEndian.Uint32(src[len(src)-WordSize:])
	if first != Signature || last != Signature {
		return nil, ErrBadSignature
	}

	return &Container{
		CompressedSizeHint: binary.LittleEndian.Uint32(src[4:]),
		DecompressedSize:   binary.LittleEndian.Uint32(src[8:]),
		seedAlpha:          binary.LittleEndian.Uint32(src[12:]),
		seedBeta:           binary.LittleEndian.Uint32(src[16:]),
		payload:            src[HeaderWords*WordSize : len(src)-WordSize],
	}, nil
}

// PayloadWords returns the number of encoded bitstream words.
func (c *Container) PayloadWords() int {
	return len(c.payload) / WordSize
}
