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

package block

import (
	"testing"

	"github.com/n42blockchain/N42/common/types"
	"github.com/stretchr/testify/require"
)

func TestLogFields(t *testing.T) {
	l := &Log{
		Address: types.HexToAddress("0x01"),
		Topics:  []types.Hash{types.HexToHash("0x02"), types.HexToHash("0x03")},
		Data:    []byte{0x04, 0x05},
	}

	require.Equal(t, byte(0x01), l.Address[19])
	require.Len(t, l.Topics, 2)
	require.Equal(t, []byte{0x04, 0x05}, l.Data)
}

func TestLogsOrdering(t *testing.T) {
	logs := Logs{
		&Log{Address: types.HexToAddress("0x01")},
		&Log{Address: types.HexToAddress("0x02")},
	}

	require.Len(t, logs, 2)
	require.Equal(t, types.HexToAddress("0x01"), logs[0].Address)
	require.Equal(t, types.HexToAddress("0x02"), logs[1].Address)
}
