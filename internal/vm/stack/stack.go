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

// Package stack implements the EVM's operand stack: a LIFO of 256-bit
// words, plus the separate return-address stack used by JUMPSUB-family
// bytecode.
package stack

import (
	"sync"

	"github.com/holiman/uint256"
)

// MaxDepth is the maximum number of elements the operand stack may hold.
// A Push beyond this depth is a stack overflow.
const MaxDepth = 1024

const initialCapacity = 16

// Stack is the operand stack of an executing contract.
type Stack struct {
	data []uint256.Int
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, initialCapacity)}
	},
}

// New returns an empty Stack, reused from a pool when possible.
func New() *Stack {
	return stackPool.Get().(*Stack)
}

// ReturnNormalStack clears s and returns it to the pool.
func ReturnNormalStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Push places v on top of the stack. The caller retains ownership of v;
// Push copies its value.
func (s *Stack) Push(v *uint256.Int) {
	s.data = append(s.data, *v)
}

// PushN pushes vs in order, so the last element of vs ends on top.
func (s *Stack) PushN(vs ...uint256.Int) {
	s.data = append(s.data, vs...)
}

// Pop removes and returns the top element.
func (s *Stack) Pop() *uint256.Int {
	n := len(s.data) - 1
	v := s.data[n]
	s.data = s.data[:n]
	return &v
}

// Peek returns a pointer to the top element without removing it. The
// pointer is only valid until the next mutating call.
func (s *Stack) Peek() *uint256.Int {
	return &s.data[len(s.data)-1]
}

// Back returns a pointer to the n-th element from the top; Back(0) is
// the same as Peek().
func (s *Stack) Back(n int) *uint256.Int {
	return &s.data[len(s.data)-1-n]
}

// Swap exchanges the top element with the n-th element from the top
// (1-indexed, so the top itself is element 1); Swap(2) swaps the top two
// elements.
func (s *Stack) Swap(n int) {
	top := len(s.data) - 1
	other := top - n + 1
	s.data[top], s.data[other] = s.data[other], s.data[top]
}

// Dup pushes a copy of the n-th element from the top (1-indexed, so
// Dup(1) duplicates the current top).
func (s *Stack) Dup(n int) {
	v := s.data[len(s.data)-n]
	s.data = append(s.data, v)
}

// Len returns the number of elements on the stack.
func (s *Stack) Len() int { return len(s.data) }

// Cap returns the stack's current backing capacity.
func (s *Stack) Cap() int { return cap(s.data) }

// Reset empties the stack without releasing its backing array.
func (s *Stack) Reset() { s.data = s.data[:0] }

// Data exposes the stack's contents bottom-to-top. Callers must not
// retain the slice past the next mutating call.
func (s *Stack) Data() []uint256.Int { return s.data }

// ReturnStack is the call/return-address stack used by JUMPSUB/RETURNSUB.
type ReturnStack struct {
	data []uint32
}

var returnStackPool = sync.Pool{
	New: func() interface{} {
		return &ReturnStack{data: make([]uint32, 0, initialCapacity)}
	},
}

// NewReturnStack returns an empty ReturnStack, reused from a pool when
// possible.
func NewReturnStack() *ReturnStack {
	return returnStackPool.Get().(*ReturnStack)
}

// ReturnRStack clears rs and returns it to the pool.
func ReturnRStack(rs *ReturnStack) {
	rs.data = rs.data[:0]
	returnStackPool.Put(rs)
}

// Push places a return PC on top of the return stack.
func (rs *ReturnStack) Push(pc uint32) {
	rs.data = append(rs.data, pc)
}

// Pop removes and returns the top return PC.
func (rs *ReturnStack) Pop() uint32 {
	n := len(rs.data) - 1
	pc := rs.data[n]
	rs.data = rs.data[:n]
	return pc
}

// Data exposes the return stack's contents bottom-to-top.
func (rs *ReturnStack) Data() []uint32 { return rs.data }
