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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunAllTestdataFixturesPass(t *testing.T) {
	all, err := Load("../../testdata/fixtures.json")
	require.NoError(t, err)

	var out bytes.Buffer
	passed, failed := RunAll(all, &out)

	require.Equal(t, 0, failed, "unexpected failures:\n%s", out.String())
	require.Equal(t, len(all), passed)
	require.Equal(t, len(all), strings.Count(out.String(), "✓"))
}

func TestRunReportsStackMismatch(t *testing.T) {
	f := Fixture{
		Name:   "bad-expectation",
		Code:   Code{Bin: "600160010100"}, // 1 + 1 = 2
		Expect: Expectation{Success: true, Stack: []string{"0x03"}},
	}
	outcome, err := Run(f)
	require.NoError(t, err)
	require.False(t, outcome.Passed)
	require.Contains(t, outcome.Reason, "want 0x3")
}

func TestRunReportsSuccessMismatch(t *testing.T) {
	f := Fixture{
		Name:   "expected-failure-got-success",
		Code:   Code{Bin: "00"}, // STOP
		Expect: Expectation{Success: false},
	}
	outcome, err := Run(f)
	require.NoError(t, err)
	require.False(t, outcome.Passed)
	require.Contains(t, outcome.Reason, "success = true")
}

func TestRunHexExecutesBareBytecode(t *testing.T) {
	success, stack, logs, returnData, err := RunHex("6001600101")
	require.NoError(t, err)
	require.True(t, success)
	require.Equal(t, []string{"0x2"}, stack)
	require.Empty(t, logs)
	require.Empty(t, returnData)
}

func TestRunHexRejectsBadHex(t *testing.T) {
	_, _, _, _, err := RunHex("zz")
	require.Error(t, err)
}

func TestRunAllReportsFailureDetails(t *testing.T) {
	fixtures := []Fixture{
		{Name: "ok", Code: Code{Bin: "00"}, Expect: Expectation{Success: true}},
		{Name: "not-ok", Hint: "should never be zero", Code: Code{Bin: "00"}, Expect: Expectation{Success: false}},
	}
	var out bytes.Buffer
	passed, failed := RunAll(fixtures, &out)
	require.Equal(t, 1, passed)
	require.Equal(t, 1, failed)
	require.Contains(t, out.String(), "not-ok")
	require.Contains(t, out.String(), "should never be zero")
}
