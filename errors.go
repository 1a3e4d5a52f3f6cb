// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import "errors"

var (
	// ErrSizeOverflow indicates a size exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidChunkType indicates a chunk type byte that is not an ASCII letter.
	ErrInvalidChunkType = errors.New("chunk type byte is not an ASCII letter")
	// ErrChunkTypeFormat indicates a chunk type string that is not exactly 4 ASCII letters.
	ErrChunkTypeFormat = errors.New("chunk type must be 4 ASCII letters")
	// ErrLengthMismatch indicates the declared payload length disagrees with the bytes present.
	ErrLengthMismatch = errors.New("chunk length mismatch")
	// ErrCRCMismatch indicates the stored CRC disagrees with the recomputed one.
	ErrCRCMismatch = errors.New("chunk CRC mismatch")
	// ErrTruncated indicates fewer bytes remain than a chunk record requires.
	ErrTruncated = errors.New("truncated input")
	// ErrSignatureMismatch indicates the leading bytes are not the PNG signature.
	ErrSignatureMismatch = errors.New("PNG signature mismatch")
	// ErrInvalidUTF8 indicates chunk data is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("chunk data is not valid UTF-8")
	// ErrDataTooLarge indicates chunk data exceeds MaxDataLength.
	ErrDataTooLarge = errors.New("chunk data too large")
	// ErrReadInput indicates reading the PNG stream failed.
	ErrReadInput = errors.New("reading PNG input failed")
	// ErrWriteOutput indicates writing the PNG stream failed.
	ErrWriteOutput = errors.New("writing PNG output failed")
)
