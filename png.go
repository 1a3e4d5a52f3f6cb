// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package pngme

import "slices"

// PNG is a decoded PNG file: the signature followed by chunks in file order.
// A PNG is not safe for concurrent mutation.
type PNG struct {
	chunks []Chunk
}

// New returns a PNG holding the given chunks in order.
func New(chunks ...Chunk) *PNG {
	p := &PNG{chunks: make([]Chunk, 0, len(chunks))}
	p.chunks = append(p.chunks, chunks...)
	return p
}

// Chunks returns a copy of the chunk list in file order. Changing the copy
// does not affect p; use AppendChunk and RemoveFirstChunk instead.
func (p *PNG) Chunks() []Chunk {
	return slices.Clone(p.chunks)
}

// ChunkCount returns the number of chunks.
func (p *PNG) ChunkCount() int {
	return len(p.chunks)
}

// AppendChunk adds c after the last chunk. Chunk types are not deduplicated.
func (p *PNG) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// InsertBeforeEnd adds c in front of the last IEND chunk so the file stays
// displayable. Without an IEND chunk it behaves like AppendChunk.
func (p *PNG) InsertBeforeEnd(c Chunk) {
	for i := len(p.chunks) - 1; i >= 0; i-- {
		if p.chunks[i].typ == TypeIEND {
			p.chunks = slices.Insert(p.chunks, i, c)
			return
		}
	}

	p.AppendChunk(c)
}

// RemoveFirstChunk deletes the first chunk whose type renders as chunkType.
// It removes at most one chunk. When nothing matches the PNG is unchanged and
// ok is false; this is not an error.
func (p *PNG) RemoveFirstChunk(chunkType string) (removed Chunk, ok bool) {
	for i, c := range p.chunks {
		if c.typ.String() != chunkType {
			continue
		}

		p.chunks = slices.Delete(p.chunks, i, i+1)
		return c, true
	}

	return Chunk{}, false
}
