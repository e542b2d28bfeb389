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
	"github.com/n42blockchain/N42/common/block"
	"github.com/n42blockchain/N42/internal/vm/stack"
)

// Context is the per-execution mutable state threaded through every
// instruction handler. It is exclusively owned by the interpreter for the
// duration of a single Run and discarded on return; nothing outlives it
// except the values copied into a Result.
type Context struct {
	Code         []byte
	CallData     []byte
	Pc           uint64
	Stack        *stack.Stack
	Memory       *Memory
	Storage      Storage
	Transient    Storage
	Destinations Destinations
	Logs         block.Logs
}

// NewContext builds a fresh Context for one execution of code against
// calldata. JUMPDEST analysis runs once, here, before dispatch begins.
func NewContext(code, calldata []byte) *Context {
	return &Context{
		Code:         code,
		CallData:     calldata,
		Stack:        stack.New(),
		Memory:       NewMemory(),
		Storage:      make(Storage),
		Transient:    make(Storage),
		Destinations: analyzeJumpDests(code),
	}
}

// Release returns the Context's pooled components. Call once execution
// has produced its Result and nothing in Context is needed further.
func (c *Context) Release() {
	stack.ReturnNormalStack(c.Stack)
}

// op returns the opcode at pc, or STOP if pc runs past the end of code
// (the natural-end-of-code case is handled by the loop's bounds check,
// not by this fallback).
func (c *Context) op(pc uint64) OpCode {
	if pc >= uint64(len(c.Code)) {
		return STOP
	}
	return OpCode(c.Code[pc])
}
