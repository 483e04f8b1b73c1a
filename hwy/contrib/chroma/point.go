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

// pointP duplicates every source row: out[2y] = out[2y+1] = s[y].
func pointP[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	for y := 0; y < height; y++ {
		copyRow2[D](width, src.Row(y), dst.Row(2*y), dst.Row(2*y+1))
	}
}

// pointI duplicates every row within its field: source row 2m+p lands on
// output rows 4m+p and 4m+2+p.
func pointI[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	for y := 0; y < height; y += 2 {
		copyRow2[D](width, src.Row(y), dst.Row(2*y), dst.Row(2*y+2))
		copyRow2[D](width, src.Row(y+1), dst.Row(2*y+1), dst.Row(2*y+3))
	}
}
