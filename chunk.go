// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Chunk is one length-prefixed, typed and checksummed PNG record.
// Chunks are values; their data is never modified after construction.
type Chunk struct {
	typ    ChunkType
	data   []byte
	length uint32
	crc    uint32
}

// NewChunk builds a chunk from a type and payload and computes its CRC.
// The payload is copied. The length field is 32 bits wide: a payload longer
// than 4 GiB gets a truncated length and its encoding no longer decodes.
// Callers that accept untrusted sizes must check them with CheckDataLength
// first.
func NewChunk(t ChunkType, data []byte) Chunk {
	// #nosec G115 -- truncation above 4 GiB is documented; callers bound sizes with CheckDataLength.
	return Chunk{
		typ:    t,
		data:   bytes.Clone(data),
		length: uint32(len(data)),
		crc:    checksum(t, data),
	}
}

// DecodeChunk decodes exactly one chunk record: length, type, data, CRC.
// raw must hold the whole record and nothing more.
func DecodeChunk(raw []byte) (Chunk, error) {
	c, n, err := decodeChunkPrefix(raw)
	if err != nil {
		return Chunk{}, err
	}
	if n != len(raw) {
		return Chunk{}, fmt.Errorf("%w: declared %d data bytes, record carries %d", ErrLengthMismatch, c.length, len(raw)-chunkOverhead)
	}

	return c, nil
}

// decodeChunkPrefix decodes the chunk at the start of b and returns it with
// the number of bytes consumed.
func decodeChunkPrefix(b []byte) (Chunk, int, error) {
	if len(b) < lengthSize+typeSize {
		return Chunk{}, 0, fmt.Errorf("%w: need %d header bytes, have %d", ErrTruncated, lengthSize+typeSize, len(b))
	}

	length := binary.BigEndian.Uint32(b[:lengthSize])

	var code [4]byte
	copy(code[:], b[lengthSize:lengthSize+typeSize])
	typ, err := ChunkTypeFromBytes(code)
	if err != nil {
		return Chunk{}, 0, err
	}

	size, err := intFromU32(length)
	if err != nil || size > maxInt-chunkOverhead {
		return Chunk{}, 0, fmt.Errorf("%w: declared length %d", ErrTruncated, length)
	}
	total := chunkOverhead + size
	if len(b) < total {
		return Chunk{}, 0, fmt.Errorf("%w: %s chunk needs %d bytes, have %d", ErrTruncated, typ, total, len(b))
	}

	data := b[lengthSize+typeSize : lengthSize+typeSize+size]
	stored := binary.BigEndian.Uint32(b[total-crcSize : total])
	if computed := checksum(typ, data); stored != computed {
		return Chunk{}, 0, fmt.Errorf("%w: %s chunk stores 0x%08x, computed 0x%08x", ErrCRCMismatch, typ, stored, computed)
	}

	return Chunk{
		typ:    typ,
		data:   bytes.Clone(data),
		length: length,
		crc:    stored,
	}, total, nil
}

// Length returns the number of data bytes.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk type.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the chunk payload. The slice must not be modified.
func (c Chunk) Data() []byte {
	return c.data
}

// CRC returns the chunk checksum.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// DataLatin1 renders every data byte as the code point of the same value.
// It never fails and does not decode UTF-8: multi-byte sequences come out as
// separate characters. Use DataUTF8 when the payload is known to be UTF-8.
func (c Chunk) DataLatin1() string {
	var sb strings.Builder
	sb.Grow(len(c.data))
	for _, b := range c.data {
		sb.WriteRune(rune(b))
	}

	return sb.String()
}

// DataUTF8 returns the payload as a string if it is valid UTF-8.
func (c Chunk) DataUTF8() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrInvalidUTF8, c.typ)
	}

	return string(c.data), nil
}

// EncodedLen returns the size of the encoded record.
func (c Chunk) EncodedLen() int {
	return chunkOverhead + len(c.data)
}

// Bytes encodes the chunk record.
func (c Chunk) Bytes() []byte {
	return c.appendTo(make([]byte, 0, c.EncodedLen()))
}

func (c Chunk) appendTo(dst []byte) []byte {
	var hdr [lengthSize + typeSize]byte
	putChunkHeader(hdr[:], c.length, c.typ)
	dst = append(dst, hdr[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

// Equal reports whether both chunks have the same type, data and CRC.
func (c Chunk) Equal(other Chunk) bool {
	return c.typ == other.typ &&
		c.length == other.length &&
		c.crc == other.crc &&
		bytes.Equal(c.data, other.data)
}

// String renders a multi-line human-readable summary.
func (c Chunk) String() string {
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	fmt.Fprintf(&sb, "  Length: %d\n", c.length)
	fmt.Fprintf(&sb, "  Type: %s\n", c.typ)
	fmt.Fprintf(&sb, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&sb, "  Message: %s\n", c.DataLatin1())
	fmt.Fprintf(&sb, "  CRC: 0x%08x\n", c.crc)
	sb.WriteString("}")
	return sb.String()
}
