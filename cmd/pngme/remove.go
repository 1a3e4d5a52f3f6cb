// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/woozymasta/pngme"
	"github.com/woozymasta/pngme/internal/pngfile"
)

type removeOptions struct {
	all    bool
	output string
}

var removeCommand = &command{
	name:    "remove",
	usage:   "remove [--all] [-o OUTPUT] FILE TYPE",
	summary: "Delete the first chunk of TYPE and write the file back.",
	minArgs: 2,
	maxArgs: 2,
	setup: func(fs *pflag.FlagSet) runFunc {
		opts := &removeOptions{}
		fs.BoolVar(&opts.all, "all", false, "delete every chunk of TYPE")
		fs.StringVarP(&opts.output, "output", "o", "", "write to this path instead of FILE")
		return func(e *env, args []string) error { return runRemove(e, args, opts) }
	},
}

func runRemove(e *env, args []string, opts *removeOptions) error {
	path := args[0]
	ct, err := pngme.ParseChunkType(args[1])
	if err != nil {
		return err
	}

	p, err := pngfile.Read(path)
	if err != nil {
		return err
	}

	removed := 0
	for {
		if _, ok := p.RemoveFirstChunk(ct.String()); !ok {
			break
		}
		removed++
		if !opts.all {
			break
		}
	}

	if removed == 0 {
		fmt.Fprintf(e.stderr, "no %s chunk in %s\n", ct, path)
		return &exitError{code: 1}
	}
	if ct.IsCritical() {
		e.logger.Warn("removed a critical chunk; the image may no longer display", "type", ct.String())
	}

	output := path
	if opts.output != "" {
		output = opts.output
	}
	if err := pngfile.Write(output, p, &pngfile.WriteOptions{Backup: e.cfg.Backup && output == path}); err != nil {
		return err
	}

	e.logger.Info("chunks removed", "file", output, "type", ct.String(), "count", removed)
	return nil
}
