// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngfile

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/woozymasta/pngme"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

// Read decodes the PNG file at path.
func Read(path string) (*pngme.PNG, error) {
	if path == Stdio {
		return ReadFrom(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	if !info.Mode().IsRegular() {
		return ReadFrom(f)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyFile, path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMapFile, path, err)
	}
	defer func() { _ = m.Unmap() }()

	// Decode copies chunk data out of the mapping.
	p, err := pngme.Decode(m)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return p, nil
}

// ReadFrom decodes a PNG stream that cannot be mapped, such as a pipe.
func ReadFrom(r io.Reader) (*pngme.PNG, error) {
	p, err := pngme.DecodeReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding stream: %w", err)
	}

	return p, nil
}
