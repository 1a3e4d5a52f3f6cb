// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import (
	"encoding/binary"
	"hash/crc32"
)

// Signature is the fixed 8-byte PNG file signature.
const Signature = "\x89PNG\r\n\x1a\n"

const (
	signatureSize = len(Signature)

	lengthSize    = 4
	typeSize      = 4
	crcSize       = 4
	chunkOverhead = lengthSize + typeSize + crcSize
)

// Well-known critical chunk types.
var (
	TypeIHDR = MustParseChunkType("IHDR")
	TypeIDAT = MustParseChunkType("IDAT")
	TypeIEND = MustParseChunkType("IEND")
)

// checksum computes the CRC-32/ISO-HDLC of the type bytes followed by data.
func checksum(t ChunkType, data []byte) uint32 {
	crc := crc32.ChecksumIEEE(t.code[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// putChunkHeader writes the length and type fields into dst[:8].
func putChunkHeader(dst []byte, length uint32, t ChunkType) {
	binary.BigEndian.PutUint32(dst[:lengthSize], length)
	copy(dst[lengthSize:lengthSize+typeSize], t.code[:])
}
