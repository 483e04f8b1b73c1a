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

// Row helpers. Each processes [0, width) in lane groups of D; width is a
// multiple of the lane count, so every Load and Stream covers a full group.

// copyRow writes s to o.
func copyRow[D hwy.Tag](width int, s, o []byte) {
	var d D
	lanes := d.Width()
	for x := 0; x < width; x += lanes {
		hwy.Stream(hwy.Load(d, s[x:]), o[x:])
	}
}

// copyRow2 writes s to both o0 and o1.
func copyRow2[D hwy.Tag](width int, s, o0, o1 []byte) {
	var d D
	lanes := d.Width()
	for x := 0; x < width; x += lanes {
		v := hwy.Load(d, s[x:])
		hwy.Stream(v, o0[x:])
		hwy.Stream(v, o1[x:])
	}
}

// avgRow writes (a + b + 1) >> 1.
func avgRow[D hwy.Tag](width int, a, b, o []byte) {
	var d D
	lanes := d.Width()
	for x := 0; x < width; x += lanes {
		hwy.Stream(hwy.Avg(hwy.Load(d, a[x:]), hwy.Load(d, b[x:])), o[x:])
	}
}

// quarterRow writes (3*near + far + 2) >> 2.
func quarterRow[D hwy.Tag](width int, near, far, o []byte) {
	var d D
	lanes := d.Width()
	for x := 0; x < width; x += lanes {
		n := hwy.Load(d, near[x:])
		hwy.Stream(hwy.Avg4(n, n, n, hwy.Load(d, far[x:])), o[x:])
	}
}

// weights is a pair of 16-bit blend weights with a rounding term and shift:
// out = (wa*a + wb*b + round) >> shift.
type weights struct {
	wa, wb, round uint16
	shift         int
}

var (
	// 2/3 and 1/3 over 256.
	weights171x85 = weights{wa: 171, wb: 85, round: 128, shift: 8}
	weights85x171 = weights{wa: 85, wb: 171, round: 128, shift: 8}

	// Eighth-phase blends over 8.
	weights5x3 = weights{wa: 5, wb: 3, round: 4, shift: 3}
	weights1x7 = weights{wa: 1, wb: 7, round: 4, shift: 3}
	weights7x1 = weights{wa: 7, wb: 1, round: 4, shift: 3}
	weights3x5 = weights{wa: 3, wb: 5, round: 4, shift: 3}
)

// blendRow writes the weighted blend of a and b.
func blendRow[D hwy.Tag](width int, a, b []byte, w weights, o []byte) {
	var d D
	lanes := d.Width()
	wa := hwy.Set(d, w.wa)
	wb := hwy.Set(d, w.wb)
	round := hwy.Set(d, w.round)
	for x := 0; x < width; x += lanes {
		hwy.Stream(blendLane(hwy.Load(d, a[x:]), hwy.Load(d, b[x:]), w, wa, wb, round), o[x:])
	}
}

func blendLane(a, b hwy.Vec[uint8], w weights, wa, wb, round hwy.Vec[uint16]) hwy.Vec[uint8] {
	lo := hwy.SaturatedAdd(scale(hwy.PromoteLowerU8ToU16(a), w.wa, wa), scale(hwy.PromoteLowerU8ToU16(b), w.wb, wb))
	hi := hwy.SaturatedAdd(scale(hwy.PromoteUpperU8ToU16(a), w.wa, wa), scale(hwy.PromoteUpperU8ToU16(b), w.wb, wb))
	lo = hwy.ShiftRight(hwy.SaturatedAdd(lo, round), w.shift)
	hi = hwy.ShiftRight(hwy.SaturatedAdd(hi, round), w.shift)
	return hwy.DemoteTwoU16ToU8(lo, hi)
}

// scale returns v*k. The odd eighth-phase weights are built from shifts;
// kv holds k in every lane for the general multiply.
func scale(v hwy.Vec[uint16], k uint16, kv hwy.Vec[uint16]) hwy.Vec[uint16] {
	switch k {
	case 1:
		return v
	case 3:
		return hwy.Add(hwy.ShiftLeft(v, 1), v)
	case 5:
		return hwy.Add(hwy.ShiftLeft(v, 2), v)
	case 7:
		return hwy.Sub(hwy.ShiftLeft(v, 3), v)
	}
	return hwy.Mul(v, kv)
}

// quarters widens one uint8 lane group into four int32 groups in lane order.
func quarters(v hwy.Vec[uint8]) [4]hwy.Vec[int32] {
	lo := hwy.PromoteLowerU8ToU16(v)
	hi := hwy.PromoteUpperU8ToU16(v)
	return [4]hwy.Vec[int32]{
		hwy.PromoteLowerU16ToI32(lo),
		hwy.PromoteUpperU16ToI32(lo),
		hwy.PromoteLowerU16ToI32(hi),
		hwy.PromoteUpperU16ToI32(hi),
	}
}

// narrow packs four int32 groups back to uint8 with saturation.
func narrow(q [4]hwy.Vec[int32]) hwy.Vec[uint8] {
	return hwy.DemoteTwoI16ToU8(
		hwy.DemoteTwoI32ToI16(q[0], q[1]),
		hwy.DemoteTwoI32ToI16(q[2], q[3]),
	)
}

// cubicLane computes (512 + c0*r0 + c1*r1 + c2*r2 + c3*r3) >> 10 per sample.
func cubicLane(bias hwy.Vec[int32], r [4]hwy.Vec[uint8], c [4]hwy.Vec[int32]) hwy.Vec[uint8] {
	var w [4][4]hwy.Vec[int32]
	for t := range r {
		w[t] = quarters(r[t])
	}
	var acc [4]hwy.Vec[int32]
	for q := range acc {
		sum := bias
		for t := range c {
			sum = hwy.MulAdd(w[t][q], c[t], sum)
		}
		acc[q] = hwy.ShiftRight(sum, 10)
	}
	return narrow(acc)
}

// cubicSymLane is cubicLane for taps (outer, inner, inner, outer), summing
// each mirrored pair before the multiply.
func cubicSymLane(bias hwy.Vec[int32], r [4]hwy.Vec[uint8], outer, inner hwy.Vec[int32]) hwy.Vec[uint8] {
	w0, w1, w2, w3 := quarters(r[0]), quarters(r[1]), quarters(r[2]), quarters(r[3])
	var acc [4]hwy.Vec[int32]
	for q := range acc {
		sum := hwy.MulAdd(hwy.Add(w0[q], w3[q]), outer, bias)
		sum = hwy.MulAdd(hwy.Add(w1[q], w2[q]), inner, sum)
		acc[q] = hwy.ShiftRight(sum, 10)
	}
	return narrow(acc)
}

// cubicRow applies four taps to rows r0..r3.
func cubicRow[D hwy.Tag](width int, r0, r1, r2, r3 []byte, taps [4]int32, o []byte) {
	var d D
	lanes := d.Width()
	bias := hwy.Set(d, int32(Scale/2))
	c := [4]hwy.Vec[int32]{
		hwy.Set(d, taps[0]), hwy.Set(d, taps[1]), hwy.Set(d, taps[2]), hwy.Set(d, taps[3]),
	}
	for x := 0; x < width; x += lanes {
		r := [4]hwy.Vec[uint8]{
			hwy.Load(d, r0[x:]), hwy.Load(d, r1[x:]), hwy.Load(d, r2[x:]), hwy.Load(d, r3[x:]),
		}
		hwy.Stream(cubicLane(bias, r, c), o[x:])
	}
}

// cubicSymRow applies the mirrored taps (outer, inner, inner, outer).
func cubicSymRow[D hwy.Tag](width int, r0, r1, r2, r3 []byte, outer, inner int32, o []byte) {
	var d D
	lanes := d.Width()
	bias := hwy.Set(d, int32(Scale/2))
	vo := hwy.Set(d, outer)
	vi := hwy.Set(d, inner)
	for x := 0; x < width; x += lanes {
		r := [4]hwy.Vec[uint8]{
			hwy.Load(d, r0[x:]), hwy.Load(d, r1[x:]), hwy.Load(d, r2[x:]), hwy.Load(d, r3[x:]),
		}
		hwy.Stream(cubicSymLane(bias, r, vo, vi), o[x:])
	}
}
