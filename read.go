// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import (
	"fmt"
	"io"
)

// Decode parses a complete PNG file held in b.
// Chunk data is copied, so b may be reused or unmapped afterwards.
func Decode(b []byte) (*PNG, error) {
	if len(b) < signatureSize {
		return nil, fmt.Errorf("%w: %w: have %d bytes", ErrSignatureMismatch, ErrTruncated, len(b))
	}
	if string(b[:signatureSize]) != Signature {
		return nil, fmt.Errorf("%w: got % x", ErrSignatureMismatch, b[:signatureSize])
	}

	p := &PNG{}
	for off := signatureSize; off < len(b); {
		c, n, err := decodeChunkPrefix(b[off:])
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), off, err)
		}

		p.chunks = append(p.chunks, c)
		off += n
	}

	return p, nil
}

// DecodeReader reads r to EOF and decodes the result.
func DecodeReader(r io.Reader) (*PNG, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	return Decode(b)
}
