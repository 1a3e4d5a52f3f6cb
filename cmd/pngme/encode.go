// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/woozymasta/pngme"
	"github.com/woozymasta/pngme/internal/message"
	"github.com/woozymasta/pngme/internal/pngfile"
)

type encodeOptions struct {
	compress      string
	passphraseEnv string
	appendLast    bool
}

var encodeCommand = &command{
	name:    "encode",
	usage:   "encode FILE [TYPE] MESSAGE [OUTPUT]",
	summary: "Store MESSAGE in a new chunk and write the result to OUTPUT (default FILE).",
	minArgs: 2,
	maxArgs: 4,
	setup: func(fs *pflag.FlagSet) runFunc {
		opts := &encodeOptions{}
		fs.StringVar(&opts.compress, "compress", "", "compress the message: none, lz4, zstd (default from config)")
		fs.StringVar(&opts.passphraseEnv, "passphrase-env", "", "encrypt with the passphrase held in this environment variable")
		fs.BoolVar(&opts.appendLast, "append", false, "append after IEND instead of inserting before it")
		return func(e *env, args []string) error { return runEncode(e, args, opts) }
	},
}

func runEncode(e *env, args []string, opts *encodeOptions) error {
	path := args[0]
	typeName, text, output := e.cfg.DefaultChunkType, args[1], path
	if len(args) >= 3 {
		typeName, text = args[1], args[2]
	}
	if len(args) == 4 {
		output = args[3]
	}

	ct, err := pngme.ParseChunkType(typeName)
	if err != nil {
		return err
	}
	if !ct.IsReservedBitValid() {
		if e.cfg.StrictChunkTypes {
			return fmt.Errorf("chunk type %s has the reserved bit set", ct)
		}
		e.logger.Warn("chunk type has the reserved bit set", "type", ct.String())
	}
	if ct.IsCritical() {
		e.logger.Warn("critical chunk type; viewers may refuse the image", "type", ct.String())
	}

	compression := e.cfg.Compression
	if opts.compress != "" {
		compression = opts.compress
	}
	c, err := message.ParseCompression(compression)
	if err != nil {
		return err
	}
	passphrase, err := lookupPassphrase(opts.passphraseEnv)
	if err != nil {
		return err
	}

	data, err := message.Seal([]byte(text), message.Options{
		Compression: c,
		Passphrase:  passphrase,
		WorkFactor:  e.cfg.ScryptWorkFactor,
	})
	if err != nil {
		return err
	}
	if err := pngme.CheckDataLength(len(data)); err != nil {
		return err
	}

	p, err := pngfile.Read(path)
	if err != nil {
		return err
	}

	chunk := pngme.NewChunk(ct, data)
	if opts.appendLast {
		p.AppendChunk(chunk)
	} else {
		p.InsertBeforeEnd(chunk)
	}

	if err := pngfile.Write(output, p, &pngfile.WriteOptions{Backup: e.cfg.Backup && output == path}); err != nil {
		return err
	}

	e.logger.Info("message encoded",
		"file", output,
		"type", ct.String(),
		"bytes", chunk.Length(),
		"sealed", message.Sealed(data),
		"chunks", p.ChunkCount(),
	)
	return nil
}

// lookupPassphrase reads the passphrase from the named environment variable.
// An empty name means no passphrase.
func lookupPassphrase(name string) (string, error) {
	if name == "" {
		return "", nil
	}

	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("passphrase variable %s is not set", name)
	}

	return value, nil
}
