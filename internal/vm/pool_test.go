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

func TestGetUint256StartsZero(t *testing.T) {
	v := GetUint256()
	defer PutUint256(v)
	if !v.IsZero() {
		t.Errorf("value from pool = %v, want zero", v)
	}
}

func TestPutUint256ClearsBeforeReuse(t *testing.T) {
	v := GetUint256()
	v.SetUint64(0xdeadbeef)
	PutUint256(v)

	for i := 0; i < 64; i++ {
		if got := GetUint256(); !got.IsZero() {
			t.Fatalf("reused value = %v, want zero", got)
		}
	}
}

func TestPutUint256NilIsNoop(t *testing.T) {
	PutUint256(nil)
}

func TestGetByteSliceRespectsRequestedLength(t *testing.T) {
	small := GetByteSlice(10)
	if len(small) != 10 {
		t.Errorf("len(GetByteSlice(10)) = %d, want 10", len(small))
	}
	large := GetByteSlice(64)
	if len(large) != 64 {
		t.Errorf("len(GetByteSlice(64)) = %d, want 64", len(large))
	}
	PutByteSlice(small)
}

func TestGetMemorySizeClassRounding(t *testing.T) {
	b := GetMemory(100)
	if len(b) != 100 {
		t.Errorf("len(GetMemory(100)) = %d, want 100", len(b))
	}
	if cap(b) < 100 {
		t.Errorf("cap(GetMemory(100)) = %d, want >= 100", cap(b))
	}
	PutMemory(b)
}

func TestSizeClassTooLargeFallsBackToAllocation(t *testing.T) {
	if got := sizeClass(1 << 30); got != -1 {
		t.Errorf("sizeClass(1<<30) = %d, want -1", got)
	}
	const tooLarge = 1 << 21 // past the 2^19 largest pooled size class
	b := GetMemory(tooLarge)
	if len(b) != tooLarge {
		t.Errorf("len(GetMemory(tooLarge)) = %d, want %d", len(b), tooLarge)
	}
}
