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

// Package block holds the small execution-record types the VM emits:
// event logs produced by the LOG0..LOG4 family.
package block

import "github.com/n42blockchain/N42/common/types"

// Log is a single event record emitted by a LOGn instruction. It carries
// only what the execution engine itself produces; block/receipt linkage
// (block number, transaction index, bloom membership, ...) belongs to a
// layer above the interpreter and is intentionally absent here.
type Log struct {
	Address types.Address
	Topics  []types.Hash
	Data    []byte
}

// Logs is an ordered collection of Log records, in emission order.
type Logs []*Log
