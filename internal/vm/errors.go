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

import nerrors "github.com/n42blockchain/N42/pkg/errors"

// Sentinel errors describing the HardFail conditions the dispatch loop
// can hit. They never escape Run: they are reported through the Result
// returned from a Context's execution, not raised out-of-band.
var (
	ErrStackUnderflow = nerrors.New("vm: stack underflow")
	ErrStackOverflow  = nerrors.New("vm: stack overflow")
	ErrInvalidJump    = nerrors.New("vm: invalid jump destination")
	ErrInvalidOpcode  = nerrors.New("vm: invalid opcode")
)
