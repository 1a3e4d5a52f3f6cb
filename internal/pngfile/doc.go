// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

// Package pngfile reads and writes PNG files for the pngme command.
// Files are memory-mapped for decoding and replaced atomically on write.
// The path "-" means standard input or standard output.
package pngfile
