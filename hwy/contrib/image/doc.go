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

// Package image provides lane-aligned 8-bit sample planes.
//
// A Plane is a caller-owned view over bytes: width and height in samples,
// a stride between row starts and a row order. Kernels address rows only
// through Plane.Row, so a bottom-up plane reuses the same kernel body as a
// top-down one.
//
// # Usage Example
//
//	// A 960x540 chroma plane whose rows are padded to 32 bytes
//	p := image.NewPlane(960, 540, 32)
//	for y := 0; y < p.Height; y++ {
//	    row := p.Row(y)
//	    // Process row[0:p.Stride] in whole lane groups
//	}
//
//	// The same memory read last row first
//	flipped := p.WithOrder(image.BottomUp)
//
// # Edge Handling
//
// Clamp(index, size) repeats edge rows; resampling kernels use it for every
// row index outside [0, size).
package image
