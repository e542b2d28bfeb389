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

// Package types defines the small fixed-size value types (addresses,
// hashes) shared by the EVM execution engine and its surrounding tooling.
package types

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
)

// AddressLength is the expected length of an address, in bytes.
const AddressLength = 20

// Address represents a 160-bit account address, stored as the low 20
// bytes. The execution engine treats addresses as U256-ranged keys (see
// spec §9) but external systems expect the 160-bit form, so conversions
// mask to AddressLength at the boundary.
type Address [AddressLength]byte

// BytesToAddress returns Address with the last AddressLength bytes of b.
// If b is larger than AddressLength it is cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// HexToAddress returns Address with the bytes of the given hex string,
// tolerating an optional "0x" prefix.
func HexToAddress(s string) Address {
	return BytesToAddress(fromHex(s))
}

// AddressFromUint256 masks v to the low 160 bits and returns the
// resulting Address, matching how BALANCE and the EXTCODE* opcodes treat
// a popped U256 operand as an address.
func AddressFromUint256(v *uint256.Int) Address {
	var b [32]byte
	v.WriteToSlice(b[:])
	return BytesToAddress(b[:])
}

// Uint256 returns the address left-padded as a U256, the representation
// ADDRESS/CALLER/ORIGIN-family opcodes push onto the stack.
func (a Address) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes(a[:])
}

// Bytes returns the raw 20 bytes of a.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the "0x"-prefixed lowercase hex encoding of a.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string { return a.Hex() }

func fromHex(s string) []byte {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}
