// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package message

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"

	"filippo.io/age"
	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// Magic prefixes chunk data that holds an envelope.
const Magic = "PMv1"

// MaxSize bounds the plain size an envelope may declare.
const MaxSize = 64 << 20

// Options controls how Seal wraps a message.
type Options struct {
	// Compression applied before encryption. Falls back to none when the
	// message does not shrink.
	Compression Compression
	// Passphrase enables age scrypt encryption when non-empty.
	Passphrase string
	// WorkFactor is the scrypt log2 work factor. Zero uses the age default.
	WorkFactor int
}

// enveloped reports whether opts require an envelope at all.
func (o Options) enveloped() bool {
	return (o.Compression != "" && o.Compression != CompressionNone) || o.Passphrase != ""
}

// header is the CBOR envelope header. Integer keys keep it small.
type header struct {
	Compression Compression `cbor:"1,keyasint"`
	Size        uint64      `cbor:"2,keyasint"`
	Digest      []byte      `cbor:"3,keyasint"`
	Encrypted   bool        `cbor:"4,keyasint,omitempty"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("message: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		MaxArrayElements: 16,
		MaxMapPairs:      16,
	}.DecMode()
	if err != nil {
		panic("message: CBOR decoder initialization failed: " + err.Error())
	}
}

// Sealed reports whether data starts with the envelope magic.
func Sealed(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic))
}

// Seal turns a message into chunk data. Without compression or passphrase
// the message is returned unchanged, unless it starts with Magic; such a
// message is wrapped in an uncompressed envelope so Open can tell it apart.
func Seal(plain []byte, opts Options) ([]byte, error) {
	if !opts.enveloped() && !Sealed(plain) {
		return plain, nil
	}
	if len(plain) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrSizeLimit, len(plain), MaxSize)
	}

	c, err := ParseCompression(string(opts.Compression))
	if err != nil {
		return nil, err
	}
	body, c, err := compress(plain, c)
	if err != nil {
		return nil, err
	}

	digest := blake3.Sum256(plain)
	h := header{
		Compression: c,
		Size:        uint64(len(plain)),
		Digest:      digest[:],
	}

	if opts.Passphrase != "" {
		body, err = encrypt(body, opts.Passphrase, opts.WorkFactor)
		if err != nil {
			return nil, err
		}
		h.Encrypted = true
	}

	hdr, err := encMode.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvelopeHeader, err)
	}

	out := make([]byte, 0, len(Magic)+len(hdr)+len(body))
	out = append(out, Magic...)
	out = append(out, hdr...)
	return append(out, body...), nil
}

// Open recovers the message from chunk data. Data without the envelope magic
// is returned unchanged and the passphrase is ignored.
func Open(data []byte, passphrase string) ([]byte, error) {
	if !Sealed(data) {
		return data, nil
	}

	var h header
	body, err := decMode.UnmarshalFirst(data[len(Magic):], &h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvelopeHeader, err)
	}
	if h.Size > MaxSize {
		return nil, fmt.Errorf("%w: header declares %d bytes, max %d", ErrSizeLimit, h.Size, MaxSize)
	}
	if len(h.Digest) != 32 {
		return nil, fmt.Errorf("%w: digest is %d bytes, want 32", ErrEnvelopeHeader, len(h.Digest))
	}

	if h.Encrypted {
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		body, err = decrypt(body, passphrase)
		if err != nil {
			return nil, err
		}
	}

	plain, err := decompress(body, h.Compression, int(h.Size))
	if err != nil {
		return nil, err
	}

	digest := blake3.Sum256(plain)
	if subtle.ConstantTimeCompare(digest[:], h.Digest) != 1 {
		return nil, ErrDigestMismatch
	}

	return plain, nil
}

func encrypt(body []byte, passphrase string, workFactor int) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	if workFactor > 0 {
		recipient.SetWorkFactor(workFactor)
	}

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	if _, err := w.Write(body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	return buf.Bytes(), nil
}

func decrypt(body []byte, passphrase string) ([]byte, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	r, err := age.Decrypt(bytes.NewReader(body), identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	out, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return out, nil
}
