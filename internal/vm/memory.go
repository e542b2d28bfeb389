// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package vm

import "github.com/holiman/uint256"

const initialMemoryCapacity = 4 * 1024

// Memory models the contract's byte-addressable, word-expanding scratch
// space. It starts empty; Resize grows it to the requested length,
// zero-filling the new region, and never shrinks it.
type Memory struct {
	store []byte
}

// NewMemory returns an empty Memory with room for common small programs
// pre-reserved.
func NewMemory() *Memory {
	return &Memory{store: make([]byte, 0, initialMemoryCapacity)}
}

// Len returns the current size of memory in bytes.
func (m *Memory) Len() int { return len(m.store) }

// Resize grows memory to size bytes, zero-filling the new region. A
// request smaller than the current size is a no-op: memory only grows.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	if uint64(cap(m.store)) >= size {
		m.store = m.store[:size]
		return
	}
	grown := make([]byte, size)
	copy(grown, m.store)
	m.store = grown
}

// Set writes data into memory starting at offset. The region
// [offset, offset+size) must already be within bounds (the caller is
// expected to Resize first); size may be less than len(data) to copy a
// prefix only.
func (m *Memory) Set(offset, size uint64, data []byte) {
	if size == 0 {
		return
	}
	copy(m.store[offset:offset+size], data)
}

// Set32 writes v as a big-endian 32-byte word at offset.
func (m *Memory) Set32(offset uint64, v *uint256.Int) {
	end := offset + 32
	for i := range m.store[offset:end] {
		m.store[offset+uint64(i)] = 0
	}
	v.WriteToSlice(m.store[offset:end])
}

// GetCopy returns an independent copy of the size bytes at offset. It
// returns nil for a zero or negative size, or for an offset at or past
// the end of memory. When the request runs past the end of memory, the
// result still has size bytes, and those past the end read as zero.
func (m *Memory) GetCopy(offset, size int64) []byte {
	if size <= 0 {
		return nil
	}
	if offset >= int64(len(m.store)) {
		return nil
	}
	end := offset + size
	if end > int64(len(m.store)) {
		end = int64(len(m.store))
	}
	cp := make([]byte, size)
	copy(cp, m.store[offset:end])
	return cp
}

// GetPtr returns a slice referencing memory's internal storage directly;
// mutations through it affect memory. It returns nil for a zero size.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data exposes the full internal backing slice.
func (m *Memory) Data() []byte { return m.store }

// Copy moves len bytes from src to dst within memory, correctly
// handling overlapping regions (Go's builtin copy already does).
func (m *Memory) Copy(dst, src, length uint64) {
	if length == 0 {
		return
	}
	copy(m.store[dst:dst+length], m.store[src:src+length])
}

// Reset empties memory, keeping its backing array for reuse.
func (m *Memory) Reset() {
	m.store = m.store[:0]
}
