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

package types

import (
	"encoding/hex"

	"github.com/holiman/uint256"
)

// HashLength is the expected length of a hash, in bytes.
const HashLength = 32

// Hash represents a 256-bit value: a storage key, a storage value, a
// topic, or a keccak256 digest.
type Hash [HashLength]byte

// BytesToHash returns Hash with the last HashLength bytes of b. If b is
// larger than HashLength it is cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// HexToHash returns Hash with the bytes of the given hex string,
// tolerating an optional "0x" prefix.
func HexToHash(s string) Hash {
	return BytesToHash(fromHex(s))
}

// Uint256ToHash converts a U256 storage key/value into its big-endian
// Hash representation.
func Uint256ToHash(v *uint256.Int) Hash {
	var h Hash
	v.WriteToSlice(h[:])
	return h
}

// Uint256 interprets h as a big-endian U256 value.
func (h Hash) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes(h[:])
}

// Bytes returns the raw 32 bytes of h.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the "0x"-prefixed lowercase hex encoding of h.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) String() string { return h.Hex() }
