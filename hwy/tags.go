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

import "unsafe"

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit).
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

// FixedTag128 selects 128-bit lane groups (SSE2, NEON).
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128) Name() string {
	return "128bit"
}

// FixedTag256 selects 256-bit lane groups (AVX2).
type FixedTag256 struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256) Name() string {
	return "256bit"
}

// NumLanes returns the number of T values that fit in one lane group of d.
func NumLanes[T Lanes](d Tag) int {
	var dummy T
	return d.Width() / int(unsafe.Sizeof(dummy))
}

// CurrentTag returns the widest fixed tag the running CPU can use.
func CurrentTag() Tag {
	if currentWidth >= 32 {
		return FixedTag256{}
	}
	return FixedTag128{}
}
