// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own; the container is not seekable-friendly anyway
// since the trailing signature word delimits the payload.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
