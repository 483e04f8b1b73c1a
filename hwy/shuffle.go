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

// GetLane returns the value at the specified lane index.
// Returns zero if index is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= v.n {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a new vector with the value inserted at the given lane.
// Returns original vector if index is out of bounds.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	if idx < 0 || idx >= v.n {
		return v
	}
	v.data[idx] = val
	return v
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	half := a.n / 2
	for i := 0; i < half; i++ {
		r.data[2*i] = a.data[i]
		r.data[2*i+1] = b.data[i]
	}
	return r
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	half := a.n / 2
	for i := 0; i < half; i++ {
		r.data[2*i] = a.data[half+i]
		r.data[2*i+1] = b.data[half+i]
	}
	return r
}

// Slide1Up shifts all lanes up by one position; lane 0 becomes zero.
// [a0,a1,a2,a3] -> [0,a0,a1,a2]
func Slide1Up[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	copy(r.data[1:v.n], v.data[:v.n-1])
	return r
}
