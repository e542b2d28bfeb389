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

// Destinations is the set of byte offsets into a contract's code that are
// legal JUMP/JUMPI targets.
type Destinations map[uint64]bool

// Has reports whether pos is a valid jump destination.
func (d Destinations) Has(pos uint64) bool {
	return d[pos]
}

// analyzeJumpDests scans code once, classifying each byte as an opcode or
// as PUSH immediate data, and records every JUMPDEST byte that is not
// itself embedded inside a PUSH's immediate range. The scan runs a plain
// position counter forward, skipping immediate bytes outright, rather
// than the increment-by-(n+1)-then-by-1 shape that's easy to mis-port.
func analyzeJumpDests(code []byte) Destinations {
	dests := make(Destinations)
	for pos := uint64(0); pos < uint64(len(code)); pos++ {
		op := OpCode(code[pos])
		if op.IsPush() {
			pos += uint64(op - PUSH1 + 1)
			continue
		}
		if op == JUMPDEST {
			dests[pos] = true
		}
	}
	return dests
}
