// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// This file provides saturated arithmetic and the rounded averages.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// SaturatedAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4)
func SaturatedAdd[T UnsignedInts](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		sum := a.data[i] + b.data[i]
		if sum < a.data[i] {
			sum = ^T(0)
		}
		a.data[i] = sum
	}
	return a
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T UnsignedInts](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		if a.data[i] < b.data[i] {
			a.data[i] = 0
		} else {
			a.data[i] -= b.data[i]
		}
	}
	return a
}

// Avg computes the rounded average (a + b + 1) >> 1 for each element
// without overflowing the lane type.
func Avg[T UnsignedInts](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] = roundedAvg(a.data[i], b.data[i])
	}
	return a
}

// Avg4 computes the rounded mean (w + x + y + z + 2) >> 2 of four uint8
// vectors using only pairwise rounded averages.
//
// Averaging avg(w,x) with avg(y,z) rounds up twice. The result is one too
// large exactly when a low bit was lost in the first stage (w^x or y^z odd)
// and the two partial averages differ in their low bit; those lanes get 1
// subtracted.
func Avg4(w, x, y, z Vec[uint8]) Vec[uint8] {
	one := w
	for i := range one.n {
		one.data[i] = 1
	}
	avg0 := Avg(w, x)
	avg1 := Avg(y, z)
	err0 := Or(Xor(w, x), Xor(y, z))
	err1 := Xor(avg0, avg1)
	mask := And(And(err0, err1), one)
	return SaturatedSub(Avg(avg0, avg1), mask)
}

func roundedAvg[T UnsignedInts](a, b T) T {
	return a>>1 + b>>1 + (a|b)&1
}
