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

// This file provides pure Go (scalar) implementations of the lane operations.
// Every operation is element-wise over the live lanes; binary operations use
// the lane count of their first operand.

// Load creates a vector by loading one lane group of d from a slice.
// src must hold at least NumLanes[T](d) elements.
func Load[T Lanes](d Tag, src []T) Vec[T] {
	var v Vec[T]
	v.n = NumLanes[T](d)
	copy(v.data[:v.n], src[:v.n])
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst[:v.n], v.data[:v.n])
}

// Stream writes a full lane group to dst without reading it first.
// Regions written by different kernel invocations never overlap, so no
// ordering with other stores is implied.
func Stream[T Lanes](v Vec[T], dst []T) {
	copy(dst[:v.n], v.data[:v.n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](d Tag, value T) Vec[T] {
	var v Vec[T]
	v.n = NumLanes[T](d)
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Add performs element-wise (wrapping) addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] += b.data[i]
	}
	return a
}

// Sub performs element-wise (wrapping) subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] -= b.data[i]
	}
	return a
}

// Mul performs element-wise multiplication, keeping the low bits
// (mullo semantics).
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] *= b.data[i]
	}
	return a
}

// MulAdd computes a*b + c for each element.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return a
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] &= b.data[i]
	}
	return a
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] |= b.data[i]
	}
	return a
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] ^= b.data[i]
	}
	return a
}

// ShiftLeft shifts each element left by the given number of bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.n {
		v.data[i] <<= bits
	}
	return v
}

// ShiftRight shifts each element right by the given number of bits.
// Signed types use arithmetic shift, unsigned types use logical shift.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.n {
		v.data[i] >>= bits
	}
	return v
}
