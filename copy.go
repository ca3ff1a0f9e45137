// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

// copyBackRef copies length bytes from dst[outPos-dist:] to dst[outPos:] and
// returns the last byte copied (the decoder tracks it for run emission).
// If dist < length, source and destination overlap; the copy must be
// byte-by-byte in forward order so each written byte is visible as a source
// for later bytes in the same operation (RLE-like patterns). The built-in
// copy does not handle overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outPos, dist, length int) (byte, error) {
	from := outPos - dist
	if from < 0 {
		return 0, ErrLookBehindUnderrun
	}

	if outPos+length > len(dst) {
		return 0, ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[from:from+length])
		return dst[outPos+length-1], nil
	}

	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[from+i]
	}

	return dst[outPos+length-1], nil
}
