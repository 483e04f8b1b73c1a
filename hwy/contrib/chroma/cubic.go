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

// field addresses rows off, off+step, off+2*step, ... of a plane.
// A progressive plane is the single field {off: 0, step: 1}.
type field struct {
	plane image.Plane
	off   int
	step  int
	rows  int
}

func progressive(p image.Plane, rows int) field {
	return field{plane: p, step: 1, rows: rows}
}

func parity(p image.Plane, par, rows int) field {
	return field{plane: p, off: par, step: 2, rows: rows}
}

// at returns field row k, clamping k to [0, rows) when clamp is set.
func (f field) at(k int, clamp bool) []byte {
	if clamp {
		k = image.Clamp(k, f.rows)
	}
	return f.plane.Row(f.off + f.step*k)
}

// midpointField doubles src into dst by copying every row and computing the
// centred midpoint between each pair of neighbours with mirrored taps.
//
// With shift 0, dst row 2k copies src row k and dst row 2k+1 is the midpoint
// after row k. With shift 1 the copies move to 2k+1 and dst row 2k is the
// midpoint after row k-1.
func midpointField[D hwy.Tag](width int, src, dst field, shift int, outer, inner int32) {
	n := src.rows
	lo, hi := shift+1, n-2+shift
	step := func(k int, clamp bool) {
		j := k - shift
		copyRow[D](width, src.at(k, false), dst.at(2*k+shift, false))
		cubicSymRow[D](width, src.at(j-1, clamp), src.at(j, clamp), src.at(j+1, clamp), src.at(j+2, clamp),
			outer, inner, dst.at(2*k+1-shift, false))
	}

	k := 0
	for ; k < min(lo, n); k++ {
		step(k, true)
	}
	for ; k < hi; k++ {
		step(k, false)
	}
	for ; k < n; k++ {
		step(k, true)
	}
}

// quarterField doubles src into dst at two asymmetric phases around each
// source row. dst row 2k+1 applies early to rows (k-1, k, k+1, k+2) and dst
// row 2k+2 applies late to the same window; dst row 0 is the late phase of
// the window before row 0.
func quarterField[D hwy.Tag](width int, src, dst field, early, late [4]int32) {
	n := src.rows
	step := func(k int, clamp bool) {
		r0, r1, r2, r3 := src.at(k-1, clamp), src.at(k, clamp), src.at(k+1, clamp), src.at(k+2, clamp)
		if k >= 0 {
			cubicRow[D](width, r0, r1, r2, r3, early, dst.at(2*k+1, false))
		}
		if k+1 < n {
			cubicRow[D](width, r0, r1, r2, r3, late, dst.at(2*k+2, false))
		}
	}

	k := -1
	for ; k < min(1, n); k++ {
		step(k, true)
	}
	for ; k < n-2; k++ {
		step(k, false)
	}
	for ; k < n; k++ {
		step(k, true)
	}
}

// cubicC0P: centred midpoints over the whole plane.
// Taps: 2 entries (outer, inner).
func cubicC0P[D hwy.Tag](width, height int, src, dst image.Plane, cs CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	checkTaps(cs, 2)
	midpointField[D](width, progressive(src, height), progressive(dst, 2*height), 0, cs.tap(0), cs.tap(1))
}

// cubicC0I: centred midpoints within each field.
// Taps: 2 entries (outer, inner).
func cubicC0I[D hwy.Tag](width, height int, src, dst image.Plane, cs CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	checkTaps(cs, 2)
	for p := range 2 {
		midpointField[D](width, parity(src, p, height/2), parity(dst, p, height), 0, cs.tap(0), cs.tap(1))
	}
}

// cubicC2P: same-field midpoints on the rows the linear kernel blends.
// Taps: 4 entries, inner = c[1]/2, outer = c[3]/2.
func cubicC2P[D hwy.Tag](width, height int, src, dst image.Plane, cs CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	checkTaps(cs, 4)
	outer, inner := cs.tap(3)/2, cs.tap(1)/2
	for p := range 2 {
		midpointField[D](width, parity(src, p, height/2), parity(dst, p, height), 0, outer, inner)
	}
}

// cubicC3P: odd source rows feed even output rows with the midpoint first,
// even source rows feed odd output rows with the copy first.
// Taps: 4 entries, inner = c[2]/2, outer = c[0]/2.
func cubicC3P[D hwy.Tag](width, height int, src, dst image.Plane, cs CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	checkTaps(cs, 4)
	outer, inner := cs.tap(0)/2, cs.tap(2)/2
	midpointField[D](width, parity(src, 1, height/2), parity(dst, 0, height), 1, outer, inner)
	midpointField[D](width, parity(src, 0, height/2), parity(dst, 1, height), 0, outer, inner)
}

// cubicC1P: quarter phases over the whole plane.
// Taps: 4 entries, reversed for the early phase, forward for the late one.
func cubicC1P[D hwy.Tag](width, height int, src, dst image.Plane, cs CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	checkTaps(cs, 4)
	quarterField[D](width, progressive(src, height), progressive(dst, 2*height), cs.reversed(0), cs.forward(0))
}

// cubicI8 serves interlaced MPEG1 and DV-NTSC. The top field takes its early
// phase from c[4..7] reversed and its late phase from c[0..3]; the bottom
// field takes c[0..3] reversed and c[4..7].
// Taps: 8 entries.
func cubicI8[D hwy.Tag](width, height int, src, dst image.Plane, cs CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	checkTaps(cs, 8)
	quarterField[D](width, parity(src, 0, height/2), parity(dst, 0, height), cs.reversed(4), cs.forward(0))
	quarterField[D](width, parity(src, 1, height/2), parity(dst, 1, height), cs.reversed(0), cs.forward(4))
}
