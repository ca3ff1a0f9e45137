// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

/*
Package cprs decompresses the proprietary CPRS container produced by the
on-chip compressor of a storage-controller firmware. Only the decode
direction exists; the scheme was reverse-engineered from the controller's
internal flash and no encoder specification is known.

Container layout (little-endian 32-bit words): "CPRS" signature, compressed
size hint, decompressed size in bytes, two bit-window seed words, the encoded
payload, and a closing "CPRS" signature word.

The payload is an entropy+LZ bitstream consumed low bit first through a
two-register 32-bit window. Bit 0 of each step selects the form: clear means
a literal byte in bits 1..8; set means a table-coded symbol. Coded symbols
resolve through a fixed 48-row parameter table to either a repeat of the most
recent byte, a back-reference copy at twice the symbol value's distance, or
the terminal value 0x10002 that ends the stream.

Unlike the firmware original, this decoder bounds every payload read and
output write, so truncated or tampered containers fail with typed errors
(ErrFormat before decoding, ErrCorrupt during) instead of reading out of
bounds.

# Decompress

From a byte slice, options may be nil:

	out, err := cprs.Decompress(data, nil)
	if err != nil {
		return err
	}

Enforce the header's declared size and cap untrusted allocations:

	opts := &cprs.DecompressOptions{StrictSize: true, MaxOutputSize: 64 << 20}
	out, err := cprs.Decompress(data, opts)

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := cprs.DecompressInto(data, dst)

From an io.Reader (reads to EOF first):

	out, err := cprs.DecompressFromReader(r, nil)

# Header inspection

ParseContainer validates and exposes the header without decoding:

	c, err := cprs.ParseContainer(data)
	if err != nil {
		return err
	}
	_ = c.DecompressedSize
*/
package cprs
