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

package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/n42blockchain/N42/common/types"
)

func TestLoadDecodesTestdataFixtures(t *testing.T) {
	all, err := Load("../../testdata/fixtures.json")
	require.NoError(t, err)
	require.Len(t, all, 7)
	require.Equal(t, "push-add-stop", all[0].Name)
}

func TestBytecodeDecodesHex(t *testing.T) {
	f := Fixture{Code: Code{Bin: "6001"}}
	code, err := f.Bytecode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x01}, code)
}

func TestEnvironmentDefaultsWhenFieldsAbsent(t *testing.T) {
	f := Fixture{}
	env, err := f.Environment()
	require.NoError(t, err)
	require.True(t, env.Tx.Value.IsZero())
	require.True(t, env.Tx.To.IsZero())
	require.Empty(t, env.State)
}

func TestEnvironmentDecodesTxAndBlock(t *testing.T) {
	f := Fixture{
		Tx: &TxFixture{
			To:    "0x01",
			Value: "0x0a",
		},
		Block: &BlockFixture{
			Number:  "0x05",
			ChainID: "0x01",
		},
	}
	env, err := f.Environment()
	require.NoError(t, err)
	require.Equal(t, types.HexToAddress("0x01"), env.Tx.To)
	require.Equal(t, uint64(10), env.Tx.Value.Uint64())
	require.Equal(t, uint64(5), env.Block.Number)
	require.Equal(t, uint64(1), env.Block.ChainID.Uint64())
}

func TestEnvironmentDecodesState(t *testing.T) {
	f := Fixture{
		State: map[string]AccountFixture{
			"0x02": {Balance: "0x64", Code: &Code{Bin: "6000"}},
		},
	}
	env, err := f.Environment()
	require.NoError(t, err)
	acct := env.State.Get(types.HexToAddress("0x02"))
	require.Equal(t, uint64(100), acct.Balance.Uint64())
	require.Equal(t, []byte{0x60, 0x00}, acct.Code)
}

func TestEnvironmentRejectsBadHex(t *testing.T) {
	f := Fixture{Tx: &TxFixture{To: "zz"}}
	_, err := f.Environment()
	require.Error(t, err)
}
