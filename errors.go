// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

package cprs

import (
	"errors"
	"fmt"
)

// Category sentinels. Every container-validation error matches ErrFormat and
// every mid-decode error matches ErrCorrupt via errors.Is, so callers can
// branch on the category without enumerating the specific failures.
var (
	// ErrFormat is returned when the container fails structural validation
	// before any decoding begins.
	ErrFormat = errors.New("invalid cprs container")
	// ErrCorrupt is returned when the decode loop would read past the payload
	// or write outside the output buffer.
	ErrCorrupt = errors.New("corrupt cprs stream")
)

// Specific sentinels, each wrapping its category.
var (
	// ErrMisaligned is returned when the input length is not a multiple of 4.
	ErrMisaligned = fmt.Errorf("%w: length not a multiple of the word size", ErrFormat)
	// ErrTooSmall is returned when the input has too few words to hold the
	// header and trailing signature.
	ErrTooSmall = fmt.Errorf("%w: too few words", ErrFormat)
	// ErrBadSignature is returned when the leading or trailing signature word
	// does not match "CPRS".
	ErrBadSignature = fmt.Errorf("%w: signature check failed", ErrFormat)

	// ErrInputOverrun is returned when a bit-window refill runs past the end
	// of the payload (truncated stream, no terminal symbol reached).
	ErrInputOverrun = fmt.Errorf("%w: input overrun", ErrCorrupt)
	// ErrOutputOverrun is returned when the decoder would write past the
	// declared decompressed size.
	ErrOutputOverrun = fmt.Errorf("%w: output overrun", ErrCorrupt)
	// ErrLookBehindUnderrun is returned when a back-reference points before
	// the start of the output.
	ErrLookBehindUnderrun = fmt.Errorf("%w: lookbehind underrun", ErrCorrupt)
	// ErrSizeMismatch is returned in StrictSize mode when the emitted byte
	// count differs from the declared decompressed size.
	ErrSizeMismatch = fmt.Errorf("%w: decoded size differs from header", ErrCorrupt)
)

// Input-handling sentinels outside the two categories.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrNilReader is returned when DecompressFromReader is called with a nil reader.
	ErrNilReader = errors.New("reader is nil")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrOutputTooLarge is returned when the declared decompressed size exceeds MaxOutputSize.
	ErrOutputTooLarge = errors.New("declared output exceeds MaxOutputSize")
)
