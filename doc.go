// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

/*
Package pngme implements PNG chunk-stream read/write for hiding and recovering
messages in auxiliary chunks.

A PNG file is an 8-byte signature followed by chunks. Each chunk is a
big-endian length, a four-letter chunk type, the payload and a CRC-32 over
type and payload. Decode validates every chunk (type letters, declared length,
CRC) and keeps them in file order; Bytes writes them back bit-exact.

The package does not decode pixels and never compresses or interprets payload
bytes. It performs no file I/O and no logging; callers hand in the complete
file contents and persist the encoded result themselves.
*/
package pngme
