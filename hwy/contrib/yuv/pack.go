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
	"github.com/chikuzen/YV12To422/hwy"
	"github.com/chikuzen/YV12To422/hwy/contrib/chroma"
	"github.com/chikuzen/YV12To422/hwy/contrib/image"
)

// packRow interleaves one row of 4:2:2 planes into YUY2. Each lane group of
// chroma produces four lane groups of output; groups starting at or past
// rowSize are skipped, so dst needs room for whole groups only up to the
// first one that starts inside the row.
func packRow[D hwy.Tag](chromaWidth, rowSize int, ys, us, vs, dst []byte) {
	var d D
	lanes := d.Width()
	for x := 0; x < chromaWidth; x += lanes {
		y0 := hwy.Load(d, ys[2*x:])
		y1 := hwy.Load(d, ys[2*x+lanes:])
		u := hwy.Load(d, us[x:])
		v := hwy.Load(d, vs[x:])

		uLo, uHi := hwy.PromoteLowerU8ToU16High(u), hwy.PromoteUpperU8ToU16High(u)
		vLo, vHi := hwy.PromoteLowerU8ToU16High(v), hwy.PromoteUpperU8ToU16High(v)

		out := [4]hwy.Vec[uint16]{
			hwy.Or(hwy.PromoteLowerU8ToU16(y0), hwy.InterleaveLower(uLo, vLo)),
			hwy.Or(hwy.PromoteUpperU8ToU16(y0), hwy.InterleaveUpper(uLo, vLo)),
			hwy.Or(hwy.PromoteLowerU8ToU16(y1), hwy.InterleaveLower(uHi, vHi)),
			hwy.Or(hwy.PromoteUpperU8ToU16(y1), hwy.InterleaveUpper(uHi, vHi)),
		}
		for k, o := range out {
			pos := 4*x + k*lanes
			if pos >= rowSize {
				break
			}
			hwy.Stream(hwy.BitCastU16ToU8(o), dst[pos:])
		}
	}
}

// packRows packs rows [start, end) of src into dst.
func packRows[D hwy.Tag](src Frame, dst Packed, start, end int) {
	for y := start; y < end; y++ {
		packRow[D](src.U.Width, dst.Plane.Width, src.Y.Row(y), src.U.Row(y), src.V.Row(y), dst.Plane.Row(y))
	}
}

var packers = [2]func(src Frame, dst Packed, start, end int){
	packRows[hwy.FixedTag128],
	packRows[hwy.FixedTag256],
}

// PackYUY2 interleaves a 4:2:2 planar frame into dst using lw-wide lane
// groups. Chroma rows must be readable up to the chroma width rounded to lw
// and luma rows up to twice that.
func PackYUY2(lw chroma.LaneWidth, src Frame, dst Packed) error {
	if err := checkPacked(lw, src, dst); err != nil {
		return err
	}
	packers[laneIndex(lw)](src, dst, 0, src.Height)
	return nil
}

// copyPlane copies the first width bytes of every row, whole lane groups
// first and the remainder bytewise.
func copyPlane[D hwy.Tag](src, dst image.Plane, start, end int) {
	var d D
	for y := start; y < end; y++ {
		s, o := src.Row(y), dst.Row(y)
		hwy.ProcessWithTail(d, src.Width,
			func(offset int) { hwy.Stream(hwy.Load(d, s[offset:]), o[offset:]) },
			func(offset, count int) { copy(o[offset:offset+count], s[offset:]) },
		)
	}
}

var planeCopiers = [2]func(src, dst image.Plane, start, end int){
	copyPlane[hwy.FixedTag128],
	copyPlane[hwy.FixedTag256],
}

func laneIndex(lw chroma.LaneWidth) int {
	if lw == chroma.Lanes256 {
		return 1
	}
	return 0
}
