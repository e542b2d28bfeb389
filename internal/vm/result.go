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

// Outcome tags the three shapes an instruction's Result can take, in
// place of a single struct whose fields only make sense for certain
// opcodes.
type Outcome int

const (
	// Continue means the dispatch loop should fetch and run the next
	// opcode. It is the zero value, so a plain Result{} continues.
	Continue Outcome = iota
	// Stop means the loop should halt; Success records whether this was
	// a clean halt (STOP, natural end-of-code) or a HardFail.
	Stop
	// Return means the loop should halt successfully, carrying bytes
	// produced by the RETURN opcode.
	Return
)

// Result is what an instruction handler hands back to the dispatch
// loop: either "keep going", or a reason to halt together with whatever
// the halt carries.
type Result struct {
	Outcome    Outcome
	Success    bool
	ReturnData []byte
	Err        error // set on a HardFail Stop, for diagnostics only
}

// ContinueResult advances the dispatch loop to the next opcode.
func ContinueResult() Result {
	return Result{Outcome: Continue}
}

// StopResult halts the loop, succeeding or failing per success.
func StopResult(success bool) Result {
	return Result{Outcome: Stop, Success: success}
}

// FailResult halts the loop on a HardFail, recording err for diagnostics.
func FailResult(err error) Result {
	return Result{Outcome: Stop, Success: false, Err: err}
}

// ReturnResult halts the loop successfully, carrying data produced by
// RETURN.
func ReturnResult(data []byte) Result {
	return Result{Outcome: Return, Success: true, ReturnData: data}
}

// Halted reports whether r should terminate the dispatch loop.
func (r Result) Halted() bool {
	return r.Outcome != Continue
}
