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

package chroma

import (
	"github.com/chikuzen/YV12To422/hwy"
)

// laneIndex maps a LaneWidth to its column in the kernel tables.
func laneIndex(lw LaneWidth) int {
	if lw == Lanes256 {
		return 1
	}
	return 0
}

func scan(interlaced bool) int {
	if interlaced {
		return 1
	}
	return 0
}

// kernels is indexed by [interpolation][siting][interlaced][lane width].
// Shared entries are intentional: every Point siting uses the same pair of
// kernels, interlaced DV-PAL reuses the MPEG2 kernels, and interlaced MPEG1
// and DV-NTSC share the 8-tap cubic kernel.
var kernels = [3][4][2][2]Kernel{
	Point: {
		MPEG2:  {{pointP[hwy.FixedTag128], pointP[hwy.FixedTag256]}, {pointI[hwy.FixedTag128], pointI[hwy.FixedTag256]}},
		MPEG1:  {{pointP[hwy.FixedTag128], pointP[hwy.FixedTag256]}, {pointI[hwy.FixedTag128], pointI[hwy.FixedTag256]}},
		DVNTSC: {{pointP[hwy.FixedTag128], pointP[hwy.FixedTag256]}, {pointI[hwy.FixedTag128], pointI[hwy.FixedTag256]}},
		DVPAL:  {{pointP[hwy.FixedTag128], pointP[hwy.FixedTag256]}, {pointI[hwy.FixedTag128], pointI[hwy.FixedTag256]}},
	},
	Linear: {
		MPEG2:  {{linearC0P[hwy.FixedTag128], linearC0P[hwy.FixedTag256]}, {linearC0I[hwy.FixedTag128], linearC0I[hwy.FixedTag256]}},
		MPEG1:  {{linearC1P[hwy.FixedTag128], linearC1P[hwy.FixedTag256]}, {linearC1I[hwy.FixedTag128], linearC1I[hwy.FixedTag256]}},
		DVNTSC: {{linearC2P[hwy.FixedTag128], linearC2P[hwy.FixedTag256]}, {linearC2I[hwy.FixedTag128], linearC2I[hwy.FixedTag256]}},
		DVPAL:  {{linearC3P[hwy.FixedTag128], linearC3P[hwy.FixedTag256]}, {linearC0I[hwy.FixedTag128], linearC0I[hwy.FixedTag256]}},
	},
	Cubic: {
		MPEG2:  {{cubicC0P[hwy.FixedTag128], cubicC0P[hwy.FixedTag256]}, {cubicC0I[hwy.FixedTag128], cubicC0I[hwy.FixedTag256]}},
		MPEG1:  {{cubicC1P[hwy.FixedTag128], cubicC1P[hwy.FixedTag256]}, {cubicI8[hwy.FixedTag128], cubicI8[hwy.FixedTag256]}},
		DVNTSC: {{cubicC2P[hwy.FixedTag128], cubicC2P[hwy.FixedTag256]}, {cubicI8[hwy.FixedTag128], cubicI8[hwy.FixedTag256]}},
		DVPAL:  {{cubicC3P[hwy.FixedTag128], cubicC3P[hwy.FixedTag256]}, {cubicC0I[hwy.FixedTag128], cubicC0I[hwy.FixedTag256]}},
	},
}

var shiftKernels = [2]ShiftKernel{
	horizontalShift[hwy.FixedTag128],
	horizontalShift[hwy.FixedTag256],
}

// Lookup returns the kernel for the given configuration. Every in-range
// combination has a kernel; out-of-range values are a programming error and
// panic.
func Lookup(it Interpolation, s Siting, interlaced bool, lw LaneWidth) Kernel {
	assert(it.Valid(), "interpolation out of range")
	assert(s.Valid(), "siting out of range")
	assert(lw.Valid(), "unsupported lane width")
	return kernels[it][s][scan(interlaced)][laneIndex(lw)]
}

// LookupShift returns the quarter-sample horizontal shift for lw.
func LookupShift(lw LaneWidth) ShiftKernel {
	assert(lw.Valid(), "unsupported lane width")
	return shiftKernels[laneIndex(lw)]
}

// MinHeight is the smallest source height every kernel accepts. Kernels
// handle any even height from MinHeight up; frame heights that are a
// multiple of 4 give chroma heights that are even.
const MinHeight = 2
