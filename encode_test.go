// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

import "encoding/binary"

// streamBuilder assembles valid CPRS containers for tests by inverting the
// decode formulas: bit-fields are appended low bit first, then packed into
// the seed words and payload. The package ships no encoder, so fixtures are
// built here.
type streamBuilder struct {
	bits     []byte // one entry per bit, 0 or 1
	consumed int    // bits the decoder will consume before the terminal code
}

// push appends the n low bits of v, least significant first.
func (b *streamBuilder) push(v uint32, n int) {
	for i := 0; i < n; i++ {
		b.bits = append(b.bits, byte(v>>i&1))
	}
}

// literal appends a 9-bit literal step for byte v.
func (b *streamBuilder) literal(v byte) {
	b.push(uint32(v)<<1, 9)
	b.consumed += literalCodeBits
}

// coded appends the raw fields of one coded step: flag bit, primary row p
// with its extra bits, secondary row s with its extra bits.
func (b *streamBuilder) coded(p, extraA, s, extraB uint32) {
	b.push(1, 1)
	b.push(p, 2)
	b.push(extraA, int(codeTable[p*4]))
	b.push(s, 4)
	b.push(extraB, int(codeTable[(s+4)*4]))
}

// symbol appends a coded step decoding to the given symbol value and repeat
// count, picking the cheapest table rows that can carry them.
func (b *streamBuilder) symbol(sym uint32, count int) {
	s, extraB := -1, uint32(0)
	for i := 0; i < 16; i++ {
		shift := codeTable[(i+4)*4]
		base := codeTable[(i+4)*4+2]
		if sym >= base && sym-base < 1<<shift {
			s, extraB = i, sym-base
			break
		}
	}
	if s < 0 {
		panic("streamBuilder: symbol value not encodable")
	}

	rem := count - int((codeTable[(s+4)*4+1]+11)>>3)
	p, extraA := -1, uint32(0)
	for i := 0; i < 4; i++ {
		shift := codeTable[i*4]
		base := int(codeTable[i*4+2])
		if rem >= base && rem-base < 1<<shift {
			p, extraA = i, uint32(rem-base)
			break
		}
	}
	if p < 0 {
		panic("streamBuilder: repeat count not encodable")
	}

	b.coded(uint32(p), extraA, uint32(s), extraB)
	b.consumed += int(codeTable[p*4]) + fixedCodeBits + int(codeTable[(s+4)*4])
}

// run appends a step that repeats the most recently emitted byte count times.
func (b *streamBuilder) run(count int) {
	b.symbol(0, count)
}

// backRef appends a copy of count bytes from dist bytes back. Distances are
// half-stored, so dist must be even and positive.
func (b *streamBuilder) backRef(dist, count int) {
	if dist <= 0 || dist%2 != 0 {
		panic("streamBuilder: back-reference distance must be positive and even")
	}

	b.symbol(uint32(dist/2), count)
}

// terminator appends the end-of-stream code (primary row 0, secondary row 15,
// extra bits adding up to the exact terminal value). Not counted as consumed:
// the decoder stops before sliding past it.
func (b *streamBuilder) terminator() {
	b.coded(0, 0, 15, terminalSymbol-0x8004)
}

// words packs the accumulated bits into 32-bit words: the first two become
// the window seeds, the rest the payload. Enough payload words are emitted
// to satisfy every refill the decoder performs before the terminal code.
func (b *streamBuilder) words() []uint32 {
	n := (len(b.bits) + 31) / 32
	if n < 2 {
		n = 2
	}

	// A refill happens each time consumption crosses a 32-bit boundary, and
	// it loads eagerly even when the freshly loaded bits go unused.
	refills := 0
	if b.consumed > 0 {
		refills = (b.consumed - 1) / 32
	}
	if n < 2+refills {
		n = 2 + refills
	}

	words := make([]uint32, n)
	for i, bit := range b.bits {
		if bit != 0 {
			words[i/32] |= uint32(bit) << (i % 32)
		}
	}

	return words
}

// container wraps the packed stream into a full CPRS container with the
// given declared decompressed size.
func (b *streamBuilder) container(declaredSize uint32) []byte {
	words := b.words()
	// Signature, hint and size words, the stream words (seeds + payload),
	// and the trailing signature.
	total := (len(words) + 4) * WordSize

	out := make([]byte, 0, total)
	out = binary.LittleEndian.AppendUint32(out, Signature)
	out = binary.LittleEndian.AppendUint32(out, uint32(total))
	out = binary.LittleEndian.AppendUint32(out, declaredSize)
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	out = binary.LittleEndian.AppendUint32(out, Signature)

	return out
}
