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

package yuv

import (
	"fmt"

	"github.com/chikuzen/YV12To422/hwy/contrib/chroma"
)

// Options configures a Converter.
type Options struct {
	// Interpolation is the vertical chroma filter.
	Interpolation chroma.Interpolation

	// Siting is the chroma position convention of the source.
	Siting chroma.Siting

	// Interlaced resamples each field separately.
	Interlaced bool

	// B and C shape the cubic filter. Ignored unless Interpolation is Cubic.
	B, C float64

	// YUY2 selects packed output for Converter.Convert. ToYV16 and ToYUY2
	// ignore it.
	YUY2 bool

	// HorizontalShift moves chroma a quarter sample to the right before
	// vertical resampling.
	HorizontalShift bool

	// Lanes forces a lane width. Zero picks the widest the CPU supports.
	Lanes chroma.LaneWidth

	// Workers is the worker pool size. Zero or less uses GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the defaults for progressive or interlaced input:
// linear interpolation, DV-NTSC siting when interlaced and MPEG-1 siting
// otherwise, b=0, c=0.75 and YUY2 output.
func DefaultOptions(interlaced bool) Options {
	siting := chroma.MPEG1
	if interlaced {
		siting = chroma.DVNTSC
	}
	return Options{
		Interpolation: chroma.Linear,
		Siting:        siting,
		Interlaced:    interlaced,
		B:             0,
		C:             0.75,
		YUY2:          true,
	}
}

// Validate checks the options against a frame of width x height luma
// samples. Errors wrap the package's sentinel errors.
func (o Options) Validate(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: frame is %dx%d", ErrPlaneTooSmall, width, height)
	}
	if width%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddWidth, width)
	}
	if height%4 != 0 {
		return fmt.Errorf("%w: got %d", ErrNotMod4Height, height)
	}
	if !o.Interpolation.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidInterpolation, int(o.Interpolation))
	}
	if !o.Siting.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidSiting, int(o.Siting))
	}
	if o.Lanes != 0 && !o.Lanes.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidLaneWidth, int(o.Lanes))
	}
	return nil
}

// laneWidth resolves the zero value to the CPU's lane width.
func (o Options) laneWidth() chroma.LaneWidth {
	if o.Lanes == 0 {
		return chroma.CurrentLaneWidth()
	}
	return o.Lanes
}

// dvpal reports whether the V plane is processed bottom-up.
func (o Options) dvpal() bool {
	return o.Interlaced && o.Siting == chroma.DVPAL
}
