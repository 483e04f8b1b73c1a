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
	"github.com/chikuzen/YV12To422/hwy/contrib/image"
)

// Interpolation selects the vertical reconstruction filter.
type Interpolation int

const (
	// Point duplicates each source row.
	Point Interpolation = iota

	// Linear blends neighbouring rows with fixed rounded weights.
	Linear

	// Cubic applies a 4-tap filter from a CoefficientSet.
	Cubic
)

// String returns the lower-case name of the interpolation.
func (i Interpolation) String() string {
	switch i {
	case Point:
		return "point"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Valid reports whether i is one of the defined interpolations.
func (i Interpolation) Valid() bool {
	return i >= Point && i <= Cubic
}

// Siting is the chroma sample position convention.
type Siting int

const (
	// MPEG2 chroma is co-sited with the left luma sample.
	MPEG2 Siting = iota

	// MPEG1 chroma is centred between luma samples.
	MPEG1

	// DVNTSC is the interlaced DV-NTSC siting.
	DVNTSC

	// DVPAL is the DV-PAL siting. Interlaced DV-PAL reads and writes the V
	// plane bottom-up.
	DVPAL
)

// String returns the conventional name of the siting.
func (s Siting) String() string {
	switch s {
	case MPEG2:
		return "mpeg2"
	case MPEG1:
		return "mpeg1"
	case DVNTSC:
		return "dv-ntsc"
	case DVPAL:
		return "dv-pal"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four sitings.
func (s Siting) Valid() bool {
	return s >= MPEG2 && s <= DVPAL
}

// LaneWidth is the number of 8-bit samples a kernel processes per step.
type LaneWidth int

const (
	Lanes128 LaneWidth = 16
	Lanes256 LaneWidth = 32
)

// Valid reports whether w is a supported lane width.
func (w LaneWidth) Valid() bool {
	return w == Lanes128 || w == Lanes256
}

// Tag returns the hwy tag of the lane width.
func (w LaneWidth) Tag() hwy.Tag {
	if w == Lanes256 {
		return hwy.FixedTag256{}
	}
	return hwy.FixedTag128{}
}

// CurrentLaneWidth returns the widest lane width the running CPU supports.
func CurrentLaneWidth() LaneWidth {
	if hwy.MaxLanes[uint8]() >= int(Lanes256) {
		return Lanes256
	}
	return Lanes128
}

// Kernel resamples one chroma plane of height rows into 2*height rows of dst.
// cs is only read by Cubic kernels.
type Kernel func(width, height int, src, dst image.Plane, cs CoefficientSet)

// ShiftKernel moves height rows of src a quarter sample to the right into
// dst. src and dst may be the same plane.
type ShiftKernel func(width, height int, src, dst image.Plane)
