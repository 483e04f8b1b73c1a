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

// Package hwy provides the portable lane-parallel primitives the chroma
// resampler is written against.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against Vec[T] and a lane-width Tag, and the same body serves every
// supported width. Results never depend on the lane width.
//
// Basic usage:
//
//	import "github.com/chikuzen/YV12To422/hwy"
//
//	var d hwy.FixedTag256
//	a := hwy.Load[uint8](d, row0)
//	b := hwy.Load[uint8](d, row1)
//	hwy.Stream(hwy.Avg(a, b), out)
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	Integers
}

// MaxBytes is the widest lane group supported, in bytes (256 bits).
const MaxBytes = 32

// Vec is a portable vector handle. It holds up to MaxBytes lanes inline so
// that kernels never allocate; only the first NumLanes entries are live.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data [MaxBytes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the live lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
