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

// horizontalShift writes (3*s[x] + s[x-1] + 2) >> 2 for every sample, with
// s[-1] = s[0]. Lane groups are processed right to left, so src and dst may
// share memory.
func horizontalShift[D hwy.Tag](width, height int, src, dst image.Plane) {
	var d D
	lanes := d.Width()
	assert(width > 0 && hwy.IsAligned(width, lanes), "width must be a positive multiple of the lane width")
	last := (width - 1) / lanes * lanes
	for y := 0; y < height; y++ {
		s, o := src.Row(y), dst.Row(y)
		for x := last; x >= 0; x -= lanes {
			cur := hwy.Load(d, s[x:])
			var left hwy.Vec[uint8]
			if x == 0 {
				left = hwy.InsertLane(hwy.Slide1Up(cur), 0, hwy.GetLane(cur, 0))
			} else {
				left = hwy.Load(d, s[x-1:])
			}
			hwy.Store(hwy.Avg4(cur, cur, cur, left), o[x:])
		}
	}
}
