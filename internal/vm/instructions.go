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
	"github.com/n42blockchain/N42/common/crypto"
	"github.com/n42blockchain/N42/common/types"
	"github.com/n42blockchain/N42/internal/vm/evmtypes"
)

// memWords returns the word-aligned memory length an access touching
// [offset, offset+size) requires, per the ceil((o+n)/32)*32 expansion
// rule. A zero-size access never expands memory.
func memWords(offset, size uint64) uint64 {
	if size == 0 {
		return 0
	}
	return (offset + size + 31) / 32 * 32
}

// ensureMemory grows c.Memory to cover [offset, offset+size) before a
// handler reads or writes that range.
func ensureMemory(c *Context, offset, size uint64) {
	if size == 0 {
		return
	}
	c.Memory.Resize(memWords(offset, size))
}

// getData returns size bytes starting at offset from src, zero-padding
// past the end rather than panicking on an out-of-range slice. It backs
// every copy-family opcode (CODECOPY, CALLDATACOPY, EXTCODECOPY).
func getData(src []byte, offset, size uint64) []byte {
	length := uint64(len(src))
	if offset > length {
		offset = length
	}
	end := offset + size
	if end > length {
		end = length
	}
	out := make([]byte, size)
	copy(out, src[offset:end])
	return out
}

// ---- 0x00s: stop and arithmetic ----

func opStop(c *Context, env *evmtypes.Environment) Result {
	return StopResult(true)
}

func opAdd(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Add(x, y)
	return ContinueResult()
}

func opMul(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Mul(x, y)
	return ContinueResult()
}

func opSub(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Sub(x, y)
	return ContinueResult()
}

func opDiv(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Div(x, y)
	return ContinueResult()
}

func opSDiv(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.SDiv(x, y)
	return ContinueResult()
}

func opMod(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Mod(x, y)
	return ContinueResult()
}

func opSMod(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.SMod(x, y)
	return ContinueResult()
}

func opAddMod(c *Context, env *evmtypes.Environment) Result {
	x, y, z := c.Stack.Pop(), c.Stack.Pop(), c.Stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.AddMod(x, y, z)
	}
	return ContinueResult()
}

func opMulMod(c *Context, env *evmtypes.Environment) Result {
	x, y, z := c.Stack.Pop(), c.Stack.Pop(), c.Stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.MulMod(x, y, z)
	}
	return ContinueResult()
}

func opExp(c *Context, env *evmtypes.Environment) Result {
	base, exponent := c.Stack.Pop(), c.Stack.Peek()
	exponent.Exp(base, exponent)
	return ContinueResult()
}

func opSignExtend(c *Context, env *evmtypes.Environment) Result {
	back, num := c.Stack.Pop(), c.Stack.Peek()
	num.ExtendSign(num, back)
	return ContinueResult()
}

// ---- 0x10s: comparison and bitwise ----

func opLt(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return ContinueResult()
}

func opGt(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return ContinueResult()
}

func opSlt(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return ContinueResult()
}

func opSgt(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return ContinueResult()
}

func opEq(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return ContinueResult()
}

func opIszero(c *Context, env *evmtypes.Environment) Result {
	x := c.Stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return ContinueResult()
}

func opAnd(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.And(x, y)
	return ContinueResult()
}

func opOr(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Or(x, y)
	return ContinueResult()
}

func opXor(c *Context, env *evmtypes.Environment) Result {
	x, y := c.Stack.Pop(), c.Stack.Peek()
	y.Xor(x, y)
	return ContinueResult()
}

func opNot(c *Context, env *evmtypes.Environment) Result {
	x := c.Stack.Peek()
	x.Not(x)
	return ContinueResult()
}

func opByte(c *Context, env *evmtypes.Environment) Result {
	th, val := c.Stack.Pop(), c.Stack.Peek()
	val.Byte(th)
	return ContinueResult()
}

func opSHL(c *Context, env *evmtypes.Environment) Result {
	shift, value := c.Stack.Pop(), c.Stack.Peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return ContinueResult()
}

func opSHR(c *Context, env *evmtypes.Environment) Result {
	shift, value := c.Stack.Pop(), c.Stack.Peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return ContinueResult()
}

func opSAR(c *Context, env *evmtypes.Environment) Result {
	shift, value := c.Stack.Pop(), c.Stack.Peek()
	if shift.GtUint64(255) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return ContinueResult()
	}
	value.SRsh(value, uint(shift.Uint64()))
	return ContinueResult()
}

// ---- 0x20: hashing ----

func opKeccak256(c *Context, env *evmtypes.Environment) Result {
	offset, size := c.Stack.Pop(), c.Stack.Peek()
	off, sz := offset.Uint64(), size.Uint64()
	ensureMemory(c, off, sz)
	data := c.Memory.GetPtr(int64(off), int64(sz))
	size.SetBytes(crypto.Keccak256(data))
	return ContinueResult()
}

// ---- 0x30s: environment ----

func opAddress(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Tx.To.Uint256())
	return ContinueResult()
}

func opBalance(c *Context, env *evmtypes.Environment) Result {
	addrWord := c.Stack.Peek()
	acc, _ := env.State[types.AddressFromUint256(addrWord)]
	if acc.Balance == nil {
		addrWord.Clear()
		return ContinueResult()
	}
	addrWord.Set(acc.Balance)
	return ContinueResult()
}

func opOrigin(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Tx.Origin.Uint256())
	return ContinueResult()
}

func opCaller(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Tx.From.Uint256())
	return ContinueResult()
}

func opCallValue(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Tx.Value)
	return ContinueResult()
}

func opCallDataLoad(c *Context, env *evmtypes.Environment) Result {
	offset := c.Stack.Peek()
	off := offset.Uint64()
	offset.SetBytes(getData(c.CallData, off, 32))
	return ContinueResult()
}

func opCallDataSize(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetUint64(uint64(len(c.CallData)))
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opCallDataCopy(c *Context, env *evmtypes.Environment) Result {
	destOffset, dataOffset, size := c.Stack.Pop(), c.Stack.Pop(), c.Stack.Pop()
	dst, off, sz := destOffset.Uint64(), dataOffset.Uint64(), size.Uint64()
	ensureMemory(c, dst, sz)
	c.Memory.Set(dst, sz, getData(c.CallData, off, sz))
	return ContinueResult()
}

func opCodeSize(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetUint64(uint64(len(c.Code)))
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opCodeCopy(c *Context, env *evmtypes.Environment) Result {
	destOffset, codeOffset, size := c.Stack.Pop(), c.Stack.Pop(), c.Stack.Pop()
	dst, off, sz := destOffset.Uint64(), codeOffset.Uint64(), size.Uint64()
	ensureMemory(c, dst, sz)
	c.Memory.Set(dst, sz, getData(c.Code, off, sz))
	return ContinueResult()
}

func opGasprice(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Tx.GasPrice)
	return ContinueResult()
}

func opExtCodeSize(c *Context, env *evmtypes.Environment) Result {
	addrWord := c.Stack.Peek()
	acc := env.State.Get(types.AddressFromUint256(addrWord))
	addrWord.SetUint64(uint64(len(acc.Code)))
	return ContinueResult()
}

func opExtCodeCopy(c *Context, env *evmtypes.Environment) Result {
	addr, destOffset, codeOffset, size := c.Stack.Pop(), c.Stack.Pop(), c.Stack.Pop(), c.Stack.Pop()
	acc := env.State.Get(types.AddressFromUint256(addr))
	dst, off, sz := destOffset.Uint64(), codeOffset.Uint64(), size.Uint64()
	ensureMemory(c, dst, sz)
	c.Memory.Set(dst, sz, getData(acc.Code, off, sz))
	return ContinueResult()
}

func opExtCodeHash(c *Context, env *evmtypes.Environment) Result {
	addrWord := c.Stack.Peek()
	acc, ok := env.State[types.AddressFromUint256(addrWord)]
	if !ok {
		addrWord.Clear()
		return ContinueResult()
	}
	addrWord.SetBytes(crypto.Keccak256(acc.Code))
	return ContinueResult()
}

// ---- 0x40s: block ----

func opBlockhash(c *Context, env *evmtypes.Environment) Result {
	// Block-hash history is not modeled; every lookup reads as absent.
	c.Stack.Peek().Clear()
	return ContinueResult()
}

func opCoinbase(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Block.Coinbase.Uint256())
	return ContinueResult()
}

func opTimestamp(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetUint64(env.Block.Timestamp)
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opNumber(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetUint64(env.Block.Number)
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opDifficulty(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Block.Difficulty)
	return ContinueResult()
}

func opGasLimit(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetUint64(env.Block.GasLimit)
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opChainID(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Block.ChainID)
	return ContinueResult()
}

func opSelfBalance(c *Context, env *evmtypes.Environment) Result {
	acc := env.State.Get(env.Tx.To)
	if acc.Balance == nil {
		v := GetUint256()
		c.Stack.Push(v)
		PutUint256(v)
		return ContinueResult()
	}
	c.Stack.Push(acc.Balance)
	return ContinueResult()
}

func opBaseFee(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Push(env.Block.BaseFee)
	return ContinueResult()
}

// ---- 0x50s: stack, memory, storage, flow ----

func opPop(c *Context, env *evmtypes.Environment) Result {
	c.Stack.Pop()
	return ContinueResult()
}

func opMload(c *Context, env *evmtypes.Environment) Result {
	offset := c.Stack.Peek()
	off := offset.Uint64()
	ensureMemory(c, off, 32)
	offset.SetBytes(c.Memory.GetPtr(int64(off), 32))
	return ContinueResult()
}

func opMstore(c *Context, env *evmtypes.Environment) Result {
	offset, value := c.Stack.Pop(), c.Stack.Pop()
	off := offset.Uint64()
	ensureMemory(c, off, 32)
	c.Memory.Set32(off, value)
	return ContinueResult()
}

func opMstore8(c *Context, env *evmtypes.Environment) Result {
	offset, value := c.Stack.Pop(), c.Stack.Pop()
	off := offset.Uint64()
	ensureMemory(c, off, 1)
	c.Memory.Set(off, 1, []byte{byte(value.Uint64())})
	return ContinueResult()
}

func opSload(c *Context, env *evmtypes.Environment) Result {
	key := c.Stack.Peek()
	value := c.Storage.Get(types.Uint256ToHash(key))
	key.SetBytes(value.Bytes())
	return ContinueResult()
}

func opSstore(c *Context, env *evmtypes.Environment) Result {
	key, value := c.Stack.Pop(), c.Stack.Pop()
	c.Storage.Set(types.Uint256ToHash(key), types.Uint256ToHash(value))
	return ContinueResult()
}

func opJump(c *Context, env *evmtypes.Environment) Result {
	dest := c.Stack.Pop()
	if !dest.IsUint64() || !c.Destinations.Has(dest.Uint64()) {
		return FailResult(ErrInvalidJump)
	}
	c.Pc = dest.Uint64()
	return ContinueResult()
}

func opJumpi(c *Context, env *evmtypes.Environment) Result {
	dest, cond := c.Stack.Pop(), c.Stack.Pop()
	if cond.IsZero() {
		return ContinueResult()
	}
	if !dest.IsUint64() || !c.Destinations.Has(dest.Uint64()) {
		return FailResult(ErrInvalidJump)
	}
	c.Pc = dest.Uint64()
	return ContinueResult()
}

func opPc(c *Context, env *evmtypes.Environment) Result {
	// c.Pc has already been advanced past this opcode's own byte by the
	// dispatch loop, so the opcode's own position is one behind it.
	v := GetUint256()
	v.SetUint64(c.Pc - 1)
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opMsize(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetUint64(uint64(c.Memory.Len()))
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opGas(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	v.SetAllOne()
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

func opJumpdest(c *Context, env *evmtypes.Environment) Result {
	return ContinueResult()
}

func opTload(c *Context, env *evmtypes.Environment) Result {
	key := c.Stack.Peek()
	value := c.Transient.Get(types.Uint256ToHash(key))
	key.SetBytes(value.Bytes())
	return ContinueResult()
}

func opTstore(c *Context, env *evmtypes.Environment) Result {
	key, value := c.Stack.Pop(), c.Stack.Pop()
	c.Transient.Set(types.Uint256ToHash(key), types.Uint256ToHash(value))
	return ContinueResult()
}

func opMcopy(c *Context, env *evmtypes.Environment) Result {
	dest, src, size := c.Stack.Pop(), c.Stack.Pop(), c.Stack.Pop()
	dst, from, sz := dest.Uint64(), src.Uint64(), size.Uint64()
	max := dst
	if from > max {
		max = from
	}
	ensureMemory(c, max, sz)
	c.Memory.Copy(dst, from, sz)
	return ContinueResult()
}

func opPush0(c *Context, env *evmtypes.Environment) Result {
	v := GetUint256()
	c.Stack.Push(v)
	PutUint256(v)
	return ContinueResult()
}

// makePush builds the PUSH1..PUSH32 handler for immediate width size.
// The dispatch loop has already advanced c.Pc past the opcode byte, so
// the immediate begins at the current c.Pc; reading fewer than size
// bytes because code ends early is right-padded with zero.
func makePush(size uint64) executionFunc {
	return func(c *Context, env *evmtypes.Environment) Result {
		codeLen := uint64(len(c.Code))
		start := c.Pc
		if start > codeLen {
			start = codeLen
		}
		end := start + size
		if end > codeLen {
			end = codeLen
		}
		buf := make([]byte, size)
		copy(buf, c.Code[start:end])
		v := GetUint256()
		v.SetBytes(buf)
		c.Stack.Push(v)
		PutUint256(v)
		c.Pc += size
		return ContinueResult()
	}
}

// makeDup builds the DUP1..DUP16 handler: DUPn duplicates the n-th item
// from the top, counting the top itself as 1.
func makeDup(n int) executionFunc {
	return func(c *Context, env *evmtypes.Environment) Result {
		c.Stack.Dup(n)
		return ContinueResult()
	}
}

// makeSwap builds the SWAP1..SWAP16 handler: SWAPn exchanges the top
// with the (n+1)-th item from the top, so it calls Stack.Swap(n+1)
// against Swap's own top-is-1 indexing.
func makeSwap(n int) executionFunc {
	return func(c *Context, env *evmtypes.Environment) Result {
		c.Stack.Swap(n + 1)
		return ContinueResult()
	}
}

// makeLog builds the LOG0..LOG4 handler for n topics.
func makeLog(n int) executionFunc {
	return func(c *Context, env *evmtypes.Environment) Result {
		offset, size := c.Stack.Pop(), c.Stack.Pop()
		topics := make([]types.Hash, n)
		for i := 0; i < n; i++ {
			topics[i] = types.Uint256ToHash(c.Stack.Pop())
		}
		off, sz := offset.Uint64(), size.Uint64()
		ensureMemory(c, off, sz)
		data := c.Memory.GetCopy(int64(off), int64(sz))
		c.Logs = append(c.Logs, &block.Log{
			Address: env.Tx.To,
			Topics:  topics,
			Data:    data,
		})
		return ContinueResult()
	}
}

func opReturn(c *Context, env *evmtypes.Environment) Result {
	offset, size := c.Stack.Pop(), c.Stack.Pop()
	off, sz := offset.Uint64(), size.Uint64()
	ensureMemory(c, off, sz)
	return ReturnResult(c.Memory.GetCopy(int64(off), int64(sz)))
}

func opInvalid(c *Context, env *evmtypes.Environment) Result {
	return FailResult(ErrInvalidOpcode)
}
