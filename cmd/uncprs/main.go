// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cprs

// Command uncprs extracts the payload of a CPRS-compressed firmware blob.
//
// Usage: uncprs INPUT [OUTPUT]
//
// INPUT of "-" reads the container from standard input; an omitted OUTPUT
// writes the decompressed bytes to standard output. Exit codes match the
// original extraction tool: 0 success, 1 usage, 2 unreadable input,
// 8 decompression failure, 16 output write failure.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/woozymasta/cprs"
)

const (
	exitOK          = 0
	exitUsage       = 1
	exitInputRead   = 2
	exitDecompress  = 8
	exitOutputWrite = 16
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s INPUT [OUTPUT]\n", filepath.Base(os.Args[0]))
		return exitUsage
	}

	data, err := readInput(args[0])
	if err != nil {
		log.Error().Err(err).Str("path", args[0]).Msg("unable to read input")
		return exitInputRead
	}

	c, err := cprs.ParseContainer(data)
	if err != nil {
		log.Error().Err(err).Msg("decompression failed")
		return exitDecompress
	}

	out, err := cprs.Decompress(data, nil)
	if err != nil {
		log.Error().Err(err).Msg("decompression failed")
		return exitDecompress
	}

	// The firmware original writes however many bytes the stream produced,
	// so a header mismatch is only worth a warning here.
	if len(out) != int(c.DecompressedSize) {
		log.Warn().
			Int("emitted", len(out)).
			Uint32("declared", c.DecompressedSize).
			Msg("decoded size differs from header")
	}

	outPath := ""
	if len(args) == 2 {
		outPath = args[1]
	}

	if err := writeOutput(outPath, out); err != nil {
		log.Error().Err(err).Str("path", outPath).Msg("unable to write output")
		return exitOutputWrite
	}

	return exitOK
}

// readInput reads the whole container; "-" means standard input.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes the decompressed payload; empty path means standard output.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
