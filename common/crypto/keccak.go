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

// Package crypto provides the hash primitive the execution engine treats
// as a black box: KECCAK256, used by the SHA3 opcode and by callers that
// need a code hash.
package crypto

import (
	"hash"

	"github.com/n42blockchain/N42/common/types"
	"golang.org/x/crypto/sha3"
)

// KeccakState wraps sha3.state. In addition to the usual hash.Hash methods
// it supports Read to pull a variable amount of output from the sponge
// without copying internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState returns a fresh Keccak-256 sponge.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	for _, chunk := range data {
		d.Write(chunk)
	}
	d.Read(b)
	return b
}

// Keccak256Hash returns the Keccak-256 digest of data as a types.Hash.
func Keccak256Hash(data ...[]byte) (h types.Hash) {
	d := NewKeccakState()
	for _, chunk := range data {
		d.Write(chunk)
	}
	d.Read(h[:])
	return h
}
