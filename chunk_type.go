// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import "fmt"

// propertyBit is bit 5 of each type byte, the ASCII case bit.
const propertyBit = 0x20

// ChunkType is a four-letter chunk type code. Each byte carries one property
// in its case bit: ancillary, private, reserved and safe-to-copy.
// The zero value is not a valid chunk type.
type ChunkType struct {
	code [4]byte
}

// ChunkTypeFromBytes builds a chunk type from raw bytes.
// Every byte must be an ASCII letter.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for i, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is 0x%02x", ErrInvalidChunkType, i, c)
		}
	}

	return ChunkType{code: b}, nil
}

// ParseChunkType builds a chunk type from a 4-letter string such as "ruSt".
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q is %d bytes", ErrChunkTypeFormat, s, len(s))
	}

	ct, err := ChunkTypeFromBytes([4]byte{s[0], s[1], s[2], s[3]})
	if err != nil {
		return ChunkType{}, fmt.Errorf("%w: %q: %w", ErrChunkTypeFormat, s, err)
	}

	return ct, nil
}

// MustParseChunkType is like ParseChunkType but panics on error.
// Intended for package-level constants.
func MustParseChunkType(s string) ChunkType {
	ct, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}

	return ct
}

// Bytes returns the four type bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.code
}

// IsCritical reports whether the ancillary bit (first byte) is clear.
func (t ChunkType) IsCritical() bool {
	return t.code[0]&propertyBit == 0
}

// IsPublic reports whether the private bit (second byte) is clear.
func (t ChunkType) IsPublic() bool {
	return t.code[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit (third byte) is clear.
func (t ChunkType) IsReservedBitValid() bool {
	return t.code[2]&propertyBit == 0
}

// IsSafeToCopy reports whether the safe-to-copy bit (fourth byte) is set.
func (t ChunkType) IsSafeToCopy() bool {
	return t.code[3]&propertyBit != 0
}

// IsValid reports whether all bytes are letters and the reserved bit is clear.
// Decode accepts chunk types that fail only the reserved bit test.
func (t ChunkType) IsValid() bool {
	for _, c := range t.code {
		if !isASCIILetter(c) {
			return false
		}
	}

	return t.IsReservedBitValid()
}

// String returns the four letters of the chunk type.
func (t ChunkType) String() string {
	return string(t.code[:])
}

func isASCIILetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
