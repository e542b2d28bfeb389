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

import "github.com/n42blockchain/N42/common/types"

// Storage is a total mapping from 256-bit keys to 256-bit values, with
// the zero value standing in for any key never written. It backs both
// SSTORE/SLOAD and, as a second independent instance, TSTORE/TLOAD.
type Storage map[types.Hash]types.Hash

// Get returns the value stored at key, or the zero hash if absent.
func (s Storage) Get(key types.Hash) types.Hash {
	return s[key]
}

// Set stores value at key, overwriting any prior value.
func (s Storage) Set(key, value types.Hash) {
	s[key] = value
}
