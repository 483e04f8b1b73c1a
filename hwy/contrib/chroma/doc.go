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

// Package chroma resamples 4:2:0 chroma planes to 4:2:2 by doubling the
// vertical resolution.
//
// Every kernel reads one source plane of height rows and writes 2*height rows
// to the destination, processing each row in whole lane groups of the
// LaneWidth it was instantiated for. Results are identical for every lane
// width.
//
// # Kernel Selection
//
// Lookup maps (Interpolation, Siting, interlaced, LaneWidth) to a Kernel:
//
//	k := chroma.Lookup(chroma.Cubic, chroma.MPEG1, false, chroma.Lanes256)
//	cs := chroma.NewCoefficients(1.0/3, 1.0/3, chroma.MPEG1, false)
//	k(width, height, srcU, dstU, cs)
//	k(width, height, srcV, dstV, cs)
//
// Point and Linear kernels ignore the CoefficientSet. Cubic kernels expect
// the set generated for the same siting and scan structure.
//
// # Boundaries
//
// Every kernel runs in three phases: a prologue for the first output rows,
// a steady loop over interior rows and an epilogue for the last rows. Source
// row indices outside the plane (or outside the field, for interlaced
// kernels) are clamped to the nearest valid row.
//
// # Preconditions
//
// Kernels do not validate their arguments. height must be even and at least
// MinHeight, width must be a multiple of the lane width and both planes must
// hold width bytes per row. Building with the yv12to422debug tag turns these
// into panics.
//
// # Horizontal Shift
//
// LookupShift returns a kernel that moves chroma a quarter sample to the
// right, out[x] = (3*in[x] + in[x-1] + 2) >> 2, replicating the first
// sample of each row as its own left neighbour.
package chroma
