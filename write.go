// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import (
	"fmt"
	"io"
)

// EncodedLen returns the size of the encoded file.
func (p *PNG) EncodedLen() int {
	n := signatureSize
	for _, c := range p.chunks {
		n += c.EncodedLen()
	}

	return n
}

// Bytes encodes the signature followed by every chunk in order.
func (p *PNG) Bytes() []byte {
	out := make([]byte, 0, p.EncodedLen())
	out = append(out, Signature...)
	for _, c := range p.chunks {
		out = c.appendTo(out)
	}

	return out
}

// WriteTo writes the encoded file to w.
func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return int64(n), nil
}
