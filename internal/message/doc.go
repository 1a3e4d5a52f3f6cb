// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

/*
Package message turns a hidden message into chunk data and back.

Plain messages are stored verbatim. When compression or a passphrase is
requested the message is wrapped in an envelope:

	"PMv1" | CBOR header | body

The header records the compression, the plain size, a BLAKE3 digest of the
plain message and whether the body is age-encrypted with a scrypt passphrase.
The body is the compressed message, encrypted last. Chunk data that does not
start with the magic is returned unchanged by Open.
*/
package message
