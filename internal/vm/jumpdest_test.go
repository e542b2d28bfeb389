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

import "testing"

func TestAnalyzeJumpDestsPlain(t *testing.T) {
	// PUSH1 0x5B; JUMPDEST
	code := []byte{byte(PUSH1), 0x5B, byte(JUMPDEST)}
	dests := analyzeJumpDests(code)
	if dests.Has(1) {
		t.Error("the 0x5B byte inside the PUSH1 immediate must not be a valid destination")
	}
	if !dests.Has(2) {
		t.Error("the real JUMPDEST at position 2 must be valid")
	}
}

func TestAnalyzeJumpDestsTruncatedPush(t *testing.T) {
	// PUSH32 with no immediate bytes at all (code ends right after the opcode).
	code := []byte{byte(PUSH32)}
	dests := analyzeJumpDests(code)
	if len(dests) != 0 {
		t.Errorf("expected no destinations, got %v", dests)
	}
}

func TestAnalyzeJumpDestsMultiple(t *testing.T) {
	code := []byte{
		byte(JUMPDEST),
		byte(PUSH2), 0x00, 0x00,
		byte(JUMPDEST),
		byte(STOP),
	}
	dests := analyzeJumpDests(code)
	if !dests.Has(0) || !dests.Has(4) {
		t.Errorf("expected destinations at 0 and 4, got %v", dests)
	}
	if len(dests) != 2 {
		t.Errorf("expected exactly 2 destinations, got %d", len(dests))
	}
}
