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
	"github.com/n42blockchain/N42/internal/vm/evmtypes"
	"github.com/n42blockchain/N42/internal/vm/stack"
)

// executionFunc runs one instruction's semantics. It never raises an
// error out-of-band (see the Result-based HardFail reporting in
// result.go); it advances c.Pc itself when an opcode needs to consume
// immediate bytes or take a jump.
type executionFunc func(c *Context, env *evmtypes.Environment) Result

// operation is one opcode's dispatch-table entry: its handler and the
// stack-depth bounds the loop must check before invoking it. There is no
// gas field — this engine does not model gas.
type operation struct {
	execute  executionFunc
	minStack int
	maxStack int
}

// JumpTable is a dense array from opcode byte to its operation, nil for
// bytes with no defined instruction.
type JumpTable [256]*operation

// minStackFor returns the minimum stack length required before popping
// `pops` operands.
func minStackFor(pops int) int { return pops }

// maxStackFor returns the maximum stack length allowed before execution
// such that, after popping `pops` and pushing `push`, depth still fits
// within stack.MaxDepth.
func maxStackFor(pops, push int) int { return stack.MaxDepth - push + pops }

// newInstructionSet builds the single dispatch table this engine uses.
// Unlike the fork-indexed tables this is descended from, there is only
// ever one instruction set: this engine has no protocol-upgrade history
// to replay.
func newInstructionSet() JumpTable {
	var tbl JumpTable

	set := func(op OpCode, fn executionFunc, pops, push int) {
		tbl[op] = &operation{execute: fn, minStack: minStackFor(pops), maxStack: maxStackFor(pops, push)}
	}

	// setBounds installs an operation with an explicit (minStack, maxStack)
	// pair, for opcodes like DUP/SWAP whose minimum-depth requirement and
	// actual net stack movement differ.
	setBounds := func(op OpCode, fn executionFunc, minStack, maxStack int) {
		tbl[op] = &operation{execute: fn, minStack: minStack, maxStack: maxStack}
	}

	set(STOP, opStop, 0, 0)
	set(ADD, opAdd, 2, 1)
	set(MUL, opMul, 2, 1)
	set(SUB, opSub, 2, 1)
	set(DIV, opDiv, 2, 1)
	set(SDIV, opSDiv, 2, 1)
	set(MOD, opMod, 2, 1)
	set(SMOD, opSMod, 2, 1)
	set(ADDMOD, opAddMod, 3, 1)
	set(MULMOD, opMulMod, 3, 1)
	set(EXP, opExp, 2, 1)
	set(SIGNEXTEND, opSignExtend, 2, 1)

	set(LT, opLt, 2, 1)
	set(GT, opGt, 2, 1)
	set(SLT, opSlt, 2, 1)
	set(SGT, opSgt, 2, 1)
	set(EQ, opEq, 2, 1)
	set(ISZERO, opIszero, 1, 1)
	set(AND, opAnd, 2, 1)
	set(OR, opOr, 2, 1)
	set(XOR, opXor, 2, 1)
	set(NOT, opNot, 1, 1)
	set(BYTE, opByte, 2, 1)
	set(SHL, opSHL, 2, 1)
	set(SHR, opSHR, 2, 1)
	set(SAR, opSAR, 2, 1)

	set(KECCAK256, opKeccak256, 2, 1)

	set(ADDRESS, opAddress, 0, 1)
	set(BALANCE, opBalance, 1, 1)
	set(ORIGIN, opOrigin, 0, 1)
	set(CALLER, opCaller, 0, 1)
	set(CALLVALUE, opCallValue, 0, 1)
	set(CALLDATALOAD, opCallDataLoad, 1, 1)
	set(CALLDATASIZE, opCallDataSize, 0, 1)
	set(CALLDATACOPY, opCallDataCopy, 3, 0)
	set(CODESIZE, opCodeSize, 0, 1)
	set(CODECOPY, opCodeCopy, 3, 0)
	set(GASPRICE, opGasprice, 0, 1)
	set(EXTCODESIZE, opExtCodeSize, 1, 1)
	set(EXTCODECOPY, opExtCodeCopy, 4, 0)
	set(EXTCODEHASH, opExtCodeHash, 1, 1)

	set(BLOCKHASH, opBlockhash, 1, 1)
	set(COINBASE, opCoinbase, 0, 1)
	set(TIMESTAMP, opTimestamp, 0, 1)
	set(NUMBER, opNumber, 0, 1)
	set(DIFFICULTY, opDifficulty, 0, 1)
	set(GASLIMIT, opGasLimit, 0, 1)
	set(CHAINID, opChainID, 0, 1)
	set(SELFBALANCE, opSelfBalance, 0, 1)
	set(BASEFEE, opBaseFee, 0, 1)

	set(POP, opPop, 1, 0)
	set(MLOAD, opMload, 1, 1)
	set(MSTORE, opMstore, 2, 0)
	set(MSTORE8, opMstore8, 2, 0)
	set(SLOAD, opSload, 1, 1)
	set(SSTORE, opSstore, 2, 0)
	set(JUMP, opJump, 1, 0)
	set(JUMPI, opJumpi, 2, 0)
	set(PC, opPc, 0, 1)
	set(MSIZE, opMsize, 0, 1)
	set(GAS, opGas, 0, 1)
	set(JUMPDEST, opJumpdest, 0, 0)
	set(TLOAD, opTload, 1, 1)
	set(TSTORE, opTstore, 2, 0)
	set(MCOPY, opMcopy, 3, 0)
	set(PUSH0, opPush0, 0, 1)

	for i := 0; i < 32; i++ {
		set(PUSH1+OpCode(i), makePush(uint64(i+1)), 0, 1)
	}
	for i := 1; i <= 16; i++ {
		// DUPi requires i items present but only ever pushes one more.
		setBounds(DUP1+OpCode(i-1), makeDup(i), i, maxStackFor(0, 1))
	}
	for i := 1; i <= 16; i++ {
		// SWAPi requires i+1 items and leaves depth unchanged.
		setBounds(SWAP1+OpCode(i-1), makeSwap(i), i+1, maxStackFor(i+1, i+1))
	}
	for i := 0; i <= 4; i++ {
		set(LOG0+OpCode(i), makeLog(i), 2+i, 0)
	}

	set(RETURN, opReturn, 2, 0)
	set(INVALID, opInvalid, 0, 0)

	return tbl
}
