// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

import "encoding/binary"

// bitWindow is a sliding view over the compressed bitstream: a 64-bit
// conceptual window split across two 32-bit registers, consumed low bit
// first and refilled one payload word at a time. The firmware seeds both
// registers from header words, so the payload proper starts 64 bits in.
type bitWindow struct {
	current   uint32 // next 32 not-yet-consumed stream bits, bit 0 first
	lookahead uint32 // continuation word beyond current
	live      int    // unconsumed bits remaining in lookahead (0..32)
	payload   []byte
	pos       int // byte offset of the next refill word
}

func newBitWindow(alpha, beta uint32, payload []byte) bitWindow {
	return bitWindow{current: alpha, lookahead: beta, live: 32, payload: payload}
}

// bits returns the current 32-bit window; the next stream bit is bit 0.
func (w *bitWindow) bits() uint32 {
	return w.current
}

// consume discards the n low bits of the window and slides the next n stream
// bits in (n must be at most 30, the widest code). When the lookahead drains,
// its remaining high bits become the carry and the next payload word is
// loaded; a refill past the last payload word fails with ErrInputOverrun
// (the firmware original read out of bounds here).
func (w *bitWindow) consume(n int) error {
	carry := w.current >> n
	w.live -= n

	if w.live < 0 {
		w.live += 32
		carry = w.lookahead >> (32 - w.live)

		if w.pos+WordSize > len(w.payload) {
			return ErrInputOverrun
		}

		w.lookahead = binary.LittleEndian.Uint32(w.payload[w.pos:])
		w.pos += WordSize
	}

	w.current = w.lookahead<<w.live | carry

	return nil
}
