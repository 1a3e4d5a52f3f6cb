// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

// Pngme hides messages in PNG files.
//
// Usage:
//
//	pngme [--config FILE] [--log-level LEVEL] <command> [flags] [args]
//
// Commands:
//
//	encode FILE [TYPE] MESSAGE [OUTPUT]   store MESSAGE in a new TYPE chunk
//	decode FILE [TYPE]                    print messages stored in TYPE chunks
//	remove [--all] [-o OUTPUT] FILE TYPE  delete the first (or every) TYPE chunk
//	print FILE                            list every chunk
//
// FILE and OUTPUT may be "-" for standard input and output.
// decode and remove exit with status 1 when no chunk matches.
package main
