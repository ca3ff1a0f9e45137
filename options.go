// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

// DecompressOptions configures decompression. The zero value (and nil) means
// lenient size handling and no input/output limits, matching the firmware
// tool's behavior.
type DecompressOptions struct {
	// StrictSize: if true, Decompress returns ErrSizeMismatch when the number
	// of emitted bytes differs from the header's declared decompressed size.
	// If false, the mismatch is visible only through len(out).
	StrictSize bool
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// MaxOutputSize caps the header's declared decompressed size before the
	// output buffer is allocated (0 = no limit). The size field is attacker
	// controlled in untrusted images.
	MaxOutputSize int
}

// DefaultDecompressOptions returns options with lenient size handling and no limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
