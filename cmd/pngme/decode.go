// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/woozymasta/pngme"
	"github.com/woozymasta/pngme/internal/message"
	"github.com/woozymasta/pngme/internal/pngfile"
)

var decodeCommand = &command{
	name:    "decode",
	usage:   "decode FILE [TYPE]",
	summary: "Print the message held in every chunk of TYPE.",
	minArgs: 1,
	maxArgs: 2,
	setup: func(fs *pflag.FlagSet) runFunc {
		passphraseEnv := fs.String("passphrase-env", "", "decrypt with the passphrase held in this environment variable")
		return func(e *env, args []string) error { return runDecode(e, args, *passphraseEnv) }
	},
}

func runDecode(e *env, args []string, passphraseEnv string) error {
	typeName := e.cfg.DefaultChunkType
	if len(args) == 2 {
		typeName = args[1]
	}
	ct, err := pngme.ParseChunkType(typeName)
	if err != nil {
		return err
	}

	passphrase, err := lookupPassphrase(passphraseEnv)
	if err != nil {
		return err
	}

	p, err := pngfile.Read(args[0])
	if err != nil {
		return err
	}

	found := 0
	for i, c := range p.Chunks() {
		if c.Type() != ct {
			continue
		}
		found++

		plain, err := message.Open(c.Data(), passphrase)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		fmt.Fprintln(e.stdout, renderText(plain))
	}

	if found == 0 {
		fmt.Fprintf(e.stderr, "no %s chunk in %s\n", ct, args[0])
		return &exitError{code: 1}
	}

	e.logger.Debug("messages decoded", "file", args[0], "type", ct.String(), "count", found)
	return nil
}

// renderText shows UTF-8 messages as is and anything else as Latin-1.
func renderText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
