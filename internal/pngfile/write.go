// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/woozymasta/pngme"
)

// BackupSuffix is appended to the path of the backup copy.
const BackupSuffix = ".bak"

// WriteOptions configures Write.
type WriteOptions struct {
	// Backup keeps the previous file contents at path+BackupSuffix.
	Backup bool
}

// Write encodes p and atomically replaces the file at path. An existing
// file keeps its permission bits.
func Write(path string, p *pngme.PNG, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}

	if path == Stdio {
		if _, err := p.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteFile, err)
		}
		return nil
	}

	mode := fs.FileMode(0o644)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
		if opts.Backup {
			if err := backup(path, mode); err != nil {
				return err
			}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := p.WriteTo(tmp); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, tmpPath, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrReplaceFile, path, err)
	}

	committed = true
	return nil
}

func backup(path string, mode fs.FileMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBackupFile, path, err)
	}
	if err := os.WriteFile(path+BackupSuffix, data, mode); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBackupFile, path+BackupSuffix, err)
	}

	return nil
}
