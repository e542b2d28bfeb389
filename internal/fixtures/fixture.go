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

// Package fixtures loads JSON test vectors for the execution engine and
// checks their expectations against what it actually produced.
package fixtures

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/holiman/uint256"

	"github.com/n42blockchain/N42/common/types"
	"github.com/n42blockchain/N42/internal/vm/evmtypes"
)

// Code carries a bytecode body alongside the mnemonic listing it was
// assembled from, kept only for diagnostics on failure.
type Code struct {
	Asm string `json:"asm"`
	Bin string `json:"bin"`
}

// TxFixture mirrors evmtypes.TxContext in wire form.
type TxFixture struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Origin   string `json:"origin"`
	GasPrice string `json:"gasprice"`
	Value    string `json:"value"`
	Data     string `json:"data"`
}

// BlockFixture mirrors evmtypes.BlockContext in wire form.
type BlockFixture struct {
	BaseFee    string `json:"basefee"`
	Coinbase   string `json:"coinbase"`
	Timestamp  string `json:"timestamp"`
	Number     string `json:"number"`
	Difficulty string `json:"difficulty"`
	GasLimit   string `json:"gaslimit"`
	ChainID    string `json:"chainid"`
}

// AccountFixture mirrors evmtypes.Account in wire form.
type AccountFixture struct {
	Balance string `json:"balance"`
	Code    *Code  `json:"code"`
}

// Expectation names the outcome a Fixture is checked against. At most one
// of Stack, Logs, Return is meaningful, chosen by which the vector sets.
type Expectation struct {
	Success bool       `json:"success"`
	Stack   []string   `json:"stack"`
	Logs    []LogEntry `json:"logs"`
	Return  string     `json:"return"`
}

// LogEntry is the wire form of an emitted block.Log.
type LogEntry struct {
	Address string   `json:"address"`
	Data    string   `json:"data"`
	Topics  []string `json:"topics"`
}

// Fixture is one test vector: a program plus the environment it runs
// against and the outcome it must produce.
type Fixture struct {
	Name   string                    `json:"name"`
	Hint   string                    `json:"hint"`
	Code   Code                      `json:"code"`
	Tx     *TxFixture                `json:"tx"`
	Block  *BlockFixture             `json:"block"`
	State  map[string]AccountFixture `json:"state"`
	Expect Expectation               `json:"expect"`
}

// Load reads and decodes a JSON array of fixtures from path.
func Load(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var fixtures []Fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return fixtures, nil
}

// Bytecode decodes the fixture's hex-encoded code body.
func (f Fixture) Bytecode() ([]byte, error) {
	return decodeHex(f.Code.Bin)
}

// Environment builds the evmtypes.Environment this fixture's Tx, Block and
// State fields describe, applying evmtypes.Empty() defaults to any field
// the fixture omits: a present-but-unset numeric field reads as zero, not
// as a decode error, and an absent Tx or Block section leaves every one
// of its fields at that same zero default.
func (f Fixture) Environment() (evmtypes.Environment, error) {
	env := evmtypes.Empty()

	if f.Tx != nil {
		var err error
		env.Tx.To, err = decodeAddress(f.Tx.To)
		if err != nil {
			return env, fmt.Errorf("tx.to: %w", err)
		}
		env.Tx.From, err = decodeAddress(f.Tx.From)
		if err != nil {
			return env, fmt.Errorf("tx.from: %w", err)
		}
		env.Tx.Origin, err = decodeAddress(f.Tx.Origin)
		if err != nil {
			return env, fmt.Errorf("tx.origin: %w", err)
		}
		if env.Tx.GasPrice, err = decodeU256(f.Tx.GasPrice); err != nil {
			return env, fmt.Errorf("tx.gasprice: %w", err)
		}
		if env.Tx.Value, err = decodeU256(f.Tx.Value); err != nil {
			return env, fmt.Errorf("tx.value: %w", err)
		}
		if env.Tx.Data, err = decodeHex(f.Tx.Data); err != nil {
			return env, fmt.Errorf("tx.data: %w", err)
		}
	}

	if f.Block != nil {
		var err error
		if env.Block.BaseFee, err = decodeU256(f.Block.BaseFee); err != nil {
			return env, fmt.Errorf("block.basefee: %w", err)
		}
		if env.Block.Coinbase, err = decodeAddress(f.Block.Coinbase); err != nil {
			return env, fmt.Errorf("block.coinbase: %w", err)
		}
		if env.Block.Timestamp, err = decodeUint64(f.Block.Timestamp); err != nil {
			return env, fmt.Errorf("block.timestamp: %w", err)
		}
		if env.Block.Number, err = decodeUint64(f.Block.Number); err != nil {
			return env, fmt.Errorf("block.number: %w", err)
		}
		if env.Block.Difficulty, err = decodeU256(f.Block.Difficulty); err != nil {
			return env, fmt.Errorf("block.difficulty: %w", err)
		}
		if env.Block.GasLimit, err = decodeUint64(f.Block.GasLimit); err != nil {
			return env, fmt.Errorf("block.gaslimit: %w", err)
		}
		if env.Block.ChainID, err = decodeU256(f.Block.ChainID); err != nil {
			return env, fmt.Errorf("block.chainid: %w", err)
		}
	}

	for addrHex, acct := range f.State {
		addr, err := decodeAddress(addrHex)
		if err != nil {
			return env, fmt.Errorf("state key %q: %w", addrHex, err)
		}
		balance, err := decodeU256(acct.Balance)
		if err != nil {
			return env, fmt.Errorf("state[%s].balance: %w", addrHex, err)
		}
		var code []byte
		if acct.Code != nil {
			if code, err = decodeHex(acct.Code.Bin); err != nil {
				return env, fmt.Errorf("state[%s].code: %w", addrHex, err)
			}
		}
		env.State[addr] = evmtypes.Account{Balance: balance, Code: code}
	}

	return env, nil
}

func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	trimmed := s
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	return hex.DecodeString(trimmed)
}

func decodeAddress(s string) (types.Address, error) {
	if s == "" {
		return types.Address{}, nil
	}
	b, err := decodeHex(s)
	if err != nil {
		return types.Address{}, err
	}
	return types.BytesToAddress(b), nil
}

func decodeU256(s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(b), nil
}

func decodeUint64(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	b, err := decodeHex(s)
	if err != nil {
		return 0, err
	}
	return new(uint256.Int).SetBytes(b).Uint64(), nil
}
