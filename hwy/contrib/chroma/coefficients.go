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
	"math"
	"sync"
)

// Scale is the fixed-point scale of every tap (10 fractional bits).
const Scale = 1024

// CoefficientSet is an immutable ordered list of 2, 4 or 8 fixed-point taps.
// The zero value is an empty set.
type CoefficientSet struct {
	taps       [8]int16
	n          int
	siting     Siting
	interlaced bool
}

// Len returns the number of taps.
func (cs CoefficientSet) Len() int {
	return cs.n
}

// At returns tap i.
func (cs CoefficientSet) At(i int) int16 {
	return cs.taps[i]
}

// Taps returns a copy of the taps.
func (cs CoefficientSet) Taps() []int16 {
	out := make([]int16, cs.n)
	copy(out, cs.taps[:cs.n])
	return out
}

// Siting returns the siting the set was generated for.
func (cs CoefficientSet) Siting() Siting {
	return cs.siting
}

// Interlaced reports whether the set was generated for interlaced input.
func (cs CoefficientSet) Interlaced() bool {
	return cs.interlaced
}

func (cs CoefficientSet) tap(i int) int32 {
	return int32(cs.taps[i])
}

// forward returns taps[off..off+3] in order.
func (cs CoefficientSet) forward(off int) [4]int32 {
	return [4]int32{cs.tap(off), cs.tap(off + 1), cs.tap(off + 2), cs.tap(off + 3)}
}

// reversed returns taps[off..off+3] last first.
func (cs CoefficientSet) reversed(off int) [4]int32 {
	return [4]int32{cs.tap(off + 3), cs.tap(off + 2), cs.tap(off + 1), cs.tap(off)}
}

// cubicFilter holds the piecewise polynomial of the two-parameter (b, c)
// cubic family: p for |d| < 1, q for 1 <= |d| < 2.
type cubicFilter struct {
	p0, p2, p3     float64
	q0, q1, q2, q3 float64
}

func newCubicFilter(b, c float64) cubicFilter {
	return cubicFilter{
		p0: (6 - 2*b) / 6,
		p2: (-18 + 12*b + 6*c) / 6,
		p3: (12 - 9*b - 6*c) / 6,
		q0: (8*b + 24*c) / 6,
		q1: (-12*b - 48*c) / 6,
		q2: (6*b + 30*c) / 6,
		q3: (-b - 6*c) / 6,
	}
}

// tap evaluates the filter at distance and converts it to fixed point.
func (f cubicFilter) tap(distance float64) int16 {
	d := math.Abs(distance)
	if d < 1 {
		return toFixed(f.p0 + d*d*(f.p2+d*f.p3))
	}
	return toFixed(f.q0 + d*(f.q1+d*(f.q2+d*f.q3)))
}

// toFixed rounds v*Scale to the nearest integer, ties away from zero.
func toFixed(v float64) int16 {
	if v < 0 {
		return int16(v*Scale - 0.5)
	}
	return int16(v*Scale + 0.5)
}

// NewCoefficients returns the cubic taps for (b, c) at the sample phases of
// the given siting and scan structure.
//
// Progressive sets have 2 (MPEG2) or 4 entries; DVNTSC and DVPAL keep only
// the two taps of their centred phase, doubled, in slots (1, 3) and (2, 0).
// Interlaced sets have 2 entries (MPEG2, DVPAL) or 8 entries in two groups of
// four, one per output phase.
func NewCoefficients(b, c float64, siting Siting, interlaced bool) CoefficientSet {
	f := newCubicFilter(b, c)
	cs := CoefficientSet{siting: siting, interlaced: interlaced}
	set := func(taps ...int16) {
		cs.n = copy(cs.taps[:], taps)
	}

	if interlaced {
		switch siting {
		case MPEG2, DVPAL:
			set(f.tap(-12.0/8), f.tap(-4.0/8))
		case MPEG1:
			set(f.tap(-14.0/8), f.tap(-6.0/8), f.tap(2.0/8), f.tap(10.0/8),
				f.tap(-14.0/8), f.tap(-6.0/8), f.tap(2.0/8), f.tap(10.0/8))
		default:
			set(f.tap(-15.0/8), f.tap(-7.0/8), f.tap(1.0/8), f.tap(9.0/8),
				f.tap(-13.0/8), f.tap(-5.0/8), f.tap(3.0/8), f.tap(11.0/8))
		}
		return cs
	}

	switch siting {
	case MPEG2:
		set(f.tap(-6.0/4), f.tap(-2.0/4))
	case MPEG1:
		set(f.tap(-7.0/4), f.tap(-3.0/4), f.tap(1.0/4), f.tap(5.0/4))
	case DVNTSC:
		set(0, 2*f.tap(-2.0/4), 0, 2*f.tap(6.0/4))
	default:
		set(2*f.tap(-6.0/4), 0, 2*f.tap(2.0/4), 0)
	}
	return cs
}

type coefficientKey struct {
	b, c       float64
	siting     Siting
	interlaced bool
}

var (
	coefficientMu    sync.Mutex
	coefficientCache = map[coefficientKey]CoefficientSet{}
)

// CachedCoefficients returns NewCoefficients(b, c, siting, interlaced),
// generating each distinct set once per process.
func CachedCoefficients(b, c float64, siting Siting, interlaced bool) CoefficientSet {
	key := coefficientKey{b: b, c: c, siting: siting, interlaced: interlaced}

	coefficientMu.Lock()
	defer coefficientMu.Unlock()
	if cs, ok := coefficientCache[key]; ok {
		return cs
	}
	cs := NewCoefficients(b, c, siting, interlaced)
	coefficientCache[key] = cs
	return cs
}
