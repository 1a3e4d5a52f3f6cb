// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngfile

import "errors"

var (
	// ErrOpenFile indicates the PNG file could not be opened.
	ErrOpenFile = errors.New("open file failed")
	// ErrEmptyFile indicates the PNG file has no content.
	ErrEmptyFile = errors.New("empty file")
	// ErrMapFile indicates memory-mapping the file failed.
	ErrMapFile = errors.New("mmap file failed")
	// ErrCreateFile indicates the temporary output file could not be created.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteFile indicates writing the output failed.
	ErrWriteFile = errors.New("write file failed")
	// ErrBackupFile indicates the backup copy could not be written.
	ErrBackupFile = errors.New("backup file failed")
	// ErrReplaceFile indicates the atomic rename failed.
	ErrReplaceFile = errors.New("replace file failed")
)
