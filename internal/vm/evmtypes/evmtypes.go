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

// Package evmtypes carries the read-only ambient data the interpreter may
// consult but never mutate: the transaction, the block, and the subset of
// world state exposed to account-query opcodes.
package evmtypes

import (
	"github.com/holiman/uint256"
	"github.com/n42blockchain/N42/common/types"
)

// TxContext describes the transaction the running code was invoked by.
type TxContext struct {
	From     types.Address
	To       types.Address
	Origin   types.Address
	GasPrice *uint256.Int
	Value    *uint256.Int
	Data     []byte
}

// BlockContext describes the block the running code executes within.
type BlockContext struct {
	BaseFee    *uint256.Int
	Coinbase   types.Address
	Timestamp  uint64
	Number     uint64
	Difficulty *uint256.Int
	GasLimit   uint64
	ChainID    *uint256.Int
}

// Account is the portion of a world-state entry account-query opcodes can
// observe: its balance and its code. BALANCE, EXTCODESIZE and EXTCODECOPY
// read an absent account the same as one with zero balance and no code;
// EXTCODEHASH does not (0 for an absent account, keccak256 of the empty
// code for a present one).
type Account struct {
	Balance *uint256.Int
	Code    []byte
}

// WorldState is a read-only projection of accounts by 20-byte address.
// An address recovered from a popped stack operand is masked to its low
// 160 bits (types.AddressFromUint256) before lookup.
type WorldState map[types.Address]Account

// Get returns the account at addr, or the zero Account if absent.
func (w WorldState) Get(addr types.Address) Account {
	if acc, ok := w[addr]; ok {
		return acc
	}
	return Account{}
}

// Environment bundles the transaction, block, and world-state views an
// execution may read. It is never mutated once built.
type Environment struct {
	Tx    TxContext
	Block BlockContext
	State WorldState
}

// Empty returns an Environment with every numeric field wired to a zero
// U256 rather than a nil pointer, and an empty world state — the
// environment a host supplies when it has no transaction or block
// context to offer (e.g. the `test=<hex>` CLI mode).
func Empty() Environment {
	return Environment{
		Tx: TxContext{
			GasPrice: new(uint256.Int),
			Value:    new(uint256.Int),
		},
		Block: BlockContext{
			BaseFee:    new(uint256.Int),
			Difficulty: new(uint256.Int),
			ChainID:    new(uint256.Int),
		},
		State: make(WorldState),
	}
}
