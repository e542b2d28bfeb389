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

import (
	"github.com/holiman/uint256"

	"github.com/n42blockchain/N42/common/block"
	"github.com/n42blockchain/N42/internal/vm/evmtypes"
	"github.com/n42blockchain/N42/internal/vm/stack"
	nerrors "github.com/n42blockchain/N42/pkg/errors"
)

// Tracer observes the dispatch loop one step at a time, before the
// looked-up handler runs. It is the hook a debug build or the CLI's
// future `-trace` flag would plug into; Run never calls it itself
// unless Config.Debug is set.
type Tracer func(pc uint64, op OpCode, stack *stack.Stack)

// Config holds the Interpreter's tunables. There is no gas field: this
// engine does not model a gas meter, so nothing here bounds how much
// work a dispatch loop may perform before the caller's own external
// limits (e.g. an opcode count cap) kick in.
type Config struct {
	// JumpTable overrides the default instruction set. Nil selects
	// newInstructionSet()'s table, which is the only one this engine
	// ships (there is no fork history to switch between).
	JumpTable *JumpTable
	// Debug enables the Tracer callback. False by default so a normal
	// Run pays nothing for tracing it never uses.
	Debug bool
	// Tracer receives a callback per dispatched opcode when Debug is set.
	Tracer Tracer
}

// Interpreter runs EVM bytecode against a Context and Environment.
type Interpreter struct {
	table  *JumpTable
	debug  bool
	tracer Tracer
}

// NewInterpreter builds an Interpreter from cfg, falling back to the
// default instruction set when cfg.JumpTable is nil.
func NewInterpreter(cfg Config) *Interpreter {
	table := cfg.JumpTable
	if table == nil {
		t := newInstructionSet()
		table = &t
	}
	return &Interpreter{table: table, debug: cfg.Debug, tracer: cfg.Tracer}
}

// ExecutionResult is the fully assembled result of one Run: everything the
// external fixture runner (§6) needs to compare against an expectation.
type ExecutionResult struct {
	Success    bool
	Stack      []*uint256.Int
	Logs       block.Logs
	ReturnData []byte
	// Err carries the wrapped HardFail sentinel for logging/tracing.
	// It is never the mechanism by which failure is reported to a
	// caller; Success is. Nil on every success path.
	Err error
}

// Run executes code against calldata and env from pc=0 until a
// terminating opcode, a HardFail, or the natural end of code, then
// assembles the externally observable result. It implements the
// dispatch loop: fetch, pre-increment pc, look up the handler, validate
// stack depth, execute, and loop unless the handler halted.
func (in *Interpreter) Run(code, calldata []byte, env *evmtypes.Environment) ExecutionResult {
	c := NewContext(code, calldata)
	defer c.Release()

	for c.Pc < uint64(len(c.Code)) {
		op := c.op(c.Pc)
		pc := c.Pc
		c.Pc++

		if in.debug && in.tracer != nil {
			in.tracer(pc, op, c.Stack)
		}

		operation := in.table[op]
		if operation == nil {
			// An opcode byte with no registered handler is not the same
			// HardFail as the explicit INVALID (0xFE) opcode: this
			// reports a fake success with an empty stack rather than
			// failing. See DESIGN.md for why this diverges from "real"
			// EVM semantics, where an unassigned opcode would revert.
			return ExecutionResult{Success: true}
		}

		if depth := c.Stack.Len(); depth < operation.minStack {
			return failResult(pc, op, ErrStackUnderflow)
		} else if depth > operation.maxStack {
			return failResult(pc, op, ErrStackOverflow)
		}

		res := operation.execute(c, env)
		if !res.Halted() {
			continue
		}
		if !res.Success {
			return failResult(pc, op, res.Err)
		}
		return assembleResult(c, res)
	}

	return assembleResult(c, StopResult(true))
}

// failResult builds the failing ExecutionResult for a HardFail at pc/op,
// wrapping err (a sentinel from errors.go, or nil for a handler that
// didn't set one) with enough context to name the failing instruction in
// a log line or trace, without that context ever reaching the caller as
// a Go error return.
func failResult(pc uint64, op OpCode, err error) ExecutionResult {
	if err == nil {
		err = ErrInvalidOpcode
	}
	return ExecutionResult{
		Success: false,
		Err:     nerrors.Wrapf(err, "pc=%d op=%s", pc, op),
	}
}

// assembleResult reads the final operand stack out of c (top-of-stack
// first, per §6) together with whatever res carries.
func assembleResult(c *Context, res Result) ExecutionResult {
	data := c.Stack.Data()
	out := make([]*uint256.Int, len(data))
	for i, v := range data {
		v := v
		out[len(data)-1-i] = &v
	}
	return ExecutionResult{
		Success:    true,
		Stack:      out,
		Logs:       c.Logs,
		ReturnData: res.ReturnData,
	}
}

// Execute is the package's single entry point: run code once against
// calldata and env using the default instruction set.
func Execute(code, calldata []byte, env *evmtypes.Environment) ExecutionResult {
	return NewInterpreter(Config{}).Run(code, calldata, env)
}
