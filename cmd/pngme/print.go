// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/woozymasta/pngme"
	"github.com/woozymasta/pngme/internal/message"
	"github.com/woozymasta/pngme/internal/pngfile"
)

var printCommand = &command{
	name:    "print",
	usage:   "print FILE",
	summary: "List every chunk in file order.",
	minArgs: 1,
	maxArgs: 1,
	setup:   func(*pflag.FlagSet) runFunc { return runPrint },
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	flagStyle  = lipgloss.NewStyle().Faint(true)
)

func runPrint(e *env, args []string) error {
	p, err := pngfile.Read(args[0])
	if err != nil {
		return err
	}

	styled := isTerminal(e.stdout)
	for i, c := range p.Chunks() {
		writeChunk(e.stdout, i, c, styled)
	}

	e.logger.Debug("chunks printed", "file", args[0], "count", p.ChunkCount())
	return nil
}

func writeChunk(w io.Writer, index int, c pngme.Chunk, styled bool) {
	title := fmt.Sprintf("#%d %s", index, c.Type())
	props := "[" + strings.Join(chunkProperties(c), " ") + "]"
	if styled {
		title = titleStyle.Render(title)
		props = flagStyle.Render(props)
	}

	fmt.Fprintf(w, "%s %s\n%s\n", title, props, c)
}

func chunkProperties(c pngme.Chunk) []string {
	t := c.Type()
	props := make([]string, 0, 5)

	if t.IsCritical() {
		props = append(props, "critical")
	} else {
		props = append(props, "ancillary")
	}
	if t.IsPublic() {
		props = append(props, "public")
	} else {
		props = append(props, "private")
	}
	if t.IsSafeToCopy() {
		props = append(props, "safe-to-copy")
	} else {
		props = append(props, "unsafe-to-copy")
	}
	if !t.IsReservedBitValid() {
		props = append(props, "reserved-bit-set")
	}
	if message.Sealed(c.Data()) {
		props = append(props, "sealed")
	}

	return props
}
