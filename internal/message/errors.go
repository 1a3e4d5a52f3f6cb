// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package message

import "errors"

var (
	// ErrUnknownCompression indicates an unsupported compression name.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrEnvelopeHeader indicates the envelope header could not be read or written.
	ErrEnvelopeHeader = errors.New("invalid envelope header")
	// ErrPassphraseRequired indicates an encrypted envelope was opened without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required")
	// ErrEncrypt indicates age encryption failed.
	ErrEncrypt = errors.New("encrypting message failed")
	// ErrDecrypt indicates age decryption failed, usually a wrong passphrase.
	ErrDecrypt = errors.New("decrypting message failed")
	// ErrCompress indicates compression failed.
	ErrCompress = errors.New("compressing message failed")
	// ErrDecompress indicates decompression failed.
	ErrDecompress = errors.New("decompressing message failed")
	// ErrSizeLimit indicates the declared plain size exceeds MaxSize.
	ErrSizeLimit = errors.New("message size exceeds limit")
	// ErrDigestMismatch indicates the opened message does not match its digest.
	ErrDigestMismatch = errors.New("message digest mismatch")
)
