// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import "fmt"

const (
	maxInt    = int(^uint(0) >> 1)
	maxUint32 = uint64(^uint32(0))
)

// MaxDataLength is the largest payload the PNG format allows in one chunk.
const MaxDataLength = 1<<31 - 1

// intFromU32 converts a declared chunk length to an int.
func intFromU32(n uint32) (int, error) {
	if uint64(n) > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	return int(n), nil
}

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// CheckDataLength reports whether n payload bytes fit in a single chunk.
func CheckDataLength(n int) error {
	size, err := u32FromInt(n)
	if err != nil {
		return fmt.Errorf("%w: %d bytes", ErrDataTooLarge, n)
	}
	if size > MaxDataLength {
		return fmt.Errorf("%w: %d bytes, max %d", ErrDataTooLarge, size, MaxDataLength)
	}

	return nil
}
