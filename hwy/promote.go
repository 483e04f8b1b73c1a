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

// This file provides widening (promote) and saturating narrowing (demote)
// conversions. Promotions split one vector into a lower and an upper half in
// lane order; demotions concatenate two halves back into one vector.

// PromoteLowerU8ToU16 zero-extends the lower half of v to uint16.
func PromoteLowerU8ToU16(v Vec[uint8]) Vec[uint16] {
	var r Vec[uint16]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = uint16(v.data[i])
	}
	return r
}

// PromoteUpperU8ToU16 zero-extends the upper half of v to uint16.
func PromoteUpperU8ToU16(v Vec[uint8]) Vec[uint16] {
	var r Vec[uint16]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = uint16(v.data[r.n+i])
	}
	return r
}

// PromoteLowerU8ToU16High widens the lower half of v into the high byte of
// each uint16 lane (low byte zero). This is the reversed widening used when
// a second plane is later OR-ed into the low byte.
func PromoteLowerU8ToU16High(v Vec[uint8]) Vec[uint16] {
	var r Vec[uint16]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = uint16(v.data[i]) << 8
	}
	return r
}

// PromoteUpperU8ToU16High widens the upper half of v into the high byte of
// each uint16 lane.
func PromoteUpperU8ToU16High(v Vec[uint8]) Vec[uint16] {
	var r Vec[uint16]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = uint16(v.data[r.n+i]) << 8
	}
	return r
}

// PromoteLowerU16ToI32 zero-extends the lower half of v to int32.
func PromoteLowerU16ToI32(v Vec[uint16]) Vec[int32] {
	var r Vec[int32]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = int32(v.data[i])
	}
	return r
}

// PromoteUpperU16ToI32 zero-extends the upper half of v to int32.
func PromoteUpperU16ToI32(v Vec[uint16]) Vec[int32] {
	var r Vec[int32]
	r.n = v.n / 2
	for i := range r.n {
		r.data[i] = int32(v.data[r.n+i])
	}
	return r
}

// DemoteTwoI32ToI16 narrows two int32 vectors into one int16 vector with
// signed saturation (packs semantics): lo fills the lower half, hi the upper.
func DemoteTwoI32ToI16(lo, hi Vec[int32]) Vec[int16] {
	var r Vec[int16]
	r.n = lo.n + hi.n
	for i := range lo.n {
		r.data[i] = satI16(lo.data[i])
	}
	for i := range hi.n {
		r.data[lo.n+i] = satI16(hi.data[i])
	}
	return r
}

// DemoteTwoI16ToU8 narrows two int16 vectors into one uint8 vector with
// unsigned saturation (packus semantics): negatives become 0, values above
// 255 become 255.
func DemoteTwoI16ToU8(lo, hi Vec[int16]) Vec[uint8] {
	var r Vec[uint8]
	r.n = lo.n + hi.n
	for i := range lo.n {
		r.data[i] = satU8(int32(lo.data[i]))
	}
	for i := range hi.n {
		r.data[lo.n+i] = satU8(int32(hi.data[i]))
	}
	return r
}

// DemoteTwoU16ToU8 narrows two uint16 vectors into one uint8 vector (saturating).
func DemoteTwoU16ToU8(lo, hi Vec[uint16]) Vec[uint8] {
	var r Vec[uint8]
	r.n = lo.n + hi.n
	for i := range lo.n {
		r.data[i] = satU8(int32(lo.data[i]))
	}
	for i := range hi.n {
		r.data[lo.n+i] = satU8(int32(hi.data[i]))
	}
	return r
}

// BitCastU16ToU8 reinterprets uint16 lanes as little-endian byte pairs.
func BitCastU16ToU8(v Vec[uint16]) Vec[uint8] {
	var r Vec[uint8]
	r.n = 2 * v.n
	for i := range v.n {
		r.data[2*i] = uint8(v.data[i])
		r.data[2*i+1] = uint8(v.data[i] >> 8)
	}
	return r
}

func satI16(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}

func satU8(x int32) uint8 {
	if x > 255 {
		return 255
	}
	if x < 0 {
		return 0
	}
	return uint8(x)
}
