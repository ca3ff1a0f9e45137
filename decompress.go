// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

import "fmt"

const (
	// literalCodeBits is the width of a literal step: clear flag bit + 8 data bits.
	literalCodeBits = 9

	// fixedCodeBits is the fixed part of a coded step: set flag bit,
	// 2-bit primary row index, 4-bit secondary row index. The variable part
	// adds the extra-bit widths of both selected rows.
	fixedCodeBits = 7
)

// Decompress decodes a CPRS container from src into a new buffer.
// Options may be nil for defaults (lenient size handling, no limits).
//
// Decoding runs until the terminal symbol inside the bitstream; the declared
// decompressed size only bounds the output buffer. The returned slice holds
// the bytes actually emitted, which callers may compare against
// Container.DecompressedSize (set DecompressOptions.StrictSize to make a
// mismatch fail with ErrSizeMismatch instead).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	c, err := ParseContainer(src)
	if err != nil {
		return nil, err
	}

	if opts.MaxOutputSize > 0 && uint64(c.DecompressedSize) > uint64(opts.MaxOutputSize) {
		return nil, ErrOutputTooLarge
	}

	dst := make([]byte, c.DecompressedSize)
	n, err := decompressCore(c, dst)
	if err != nil {
		return nil, err
	}

	if opts.StrictSize && n != len(dst) {
		return nil, fmt.Errorf("%w: emitted=%d declared=%d", ErrSizeMismatch, n, len(dst))
	}

	return dst[:n], nil
}

// DecompressInto decodes a CPRS container from src into caller-managed
// memory (no per-call output allocation). dst must hold at least the
// declared decompressed size; its prefix is zeroed first, matching the
// zero-initialized buffer the format assumes. Returns the written prefix
// of dst.
func DecompressInto(src, dst []byte) ([]byte, error) {
	c, err := ParseContainer(src)
	if err != nil {
		return nil, err
	}

	size := int(c.DecompressedSize)
	if size < 0 || size > len(dst) {
		return nil, ErrOutputOverrun
	}

	clear(dst[:size])
	n, err := decompressCore(c, dst[:size])
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// decompressCore runs the symbol decode loop over the container payload,
// writing into dst starting at dst[0]. It returns the number of bytes
// emitted when the terminal symbol is reached. Each step inspects bit 0 of
// the window: clear = literal byte in bits 1..8, set = table-coded symbol
// that resolves to a run, a back-reference copy, or the terminator.
func decompressCore(c *Container, dst []byte) (int, error) {
	w := newBitWindow(c.seedAlpha, c.seedBeta, c.payload)

	var last byte
	outPos := 0

	for {
		win := w.bits()

		if win&1 == 0 {
			if err := w.consume(literalCodeBits); err != nil {
				return 0, err
			}

			if outPos >= len(dst) {
				return 0, ErrOutputOverrun
			}

			last = byte(win >> 1)
			dst[outPos] = last
			outPos++

			continue
		}

		// Window bits 1..2 pick the primary row; the low 4 bits of the
		// remainder after the primary extra bits pick the secondary row.
		primary := primaryRow(win >> 1 & 3)
		rest := (win >> 3) >> primary.shift
		secondary := secondaryRow(rest & 0xf)
		high := rest >> 4

		sym := secondary.base + (high & (1<<secondary.shift - 1))
		if sym >= terminalSymbol {
			// The reference loop breaks before its refill, so the terminal
			// code may sit in the last stream word without demanding another.
			return outPos, nil
		}

		if err := w.consume(int(primary.shift) + fixedCodeBits + int(secondary.shift)); err != nil {
			return 0, err
		}

		count := int(primary.base + (win >> 3 & (1<<primary.shift - 1)) + (secondary.aux+11)>>3)

		if sym == 0 {
			// Run: replay the most recently emitted byte.
			if outPos+count > len(dst) {
				return 0, ErrOutputOverrun
			}

			for i := 0; i < count; i++ {
				dst[outPos+i] = last
			}
			outPos += count

			continue
		}

		// Back-reference: symbol value encodes half the byte distance.
		b, err := copyBackRef(dst, outPos, int(sym)*2, count)
		if err != nil {
			return 0, err
		}

		last = b
		outPos += count
	}
}
