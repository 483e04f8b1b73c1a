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

// linearC0P keeps each source row and places the rounded average of it and
// the next row below it. The last row is replicated.
func linearC0P[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	for y := 0; y < height-1; y++ {
		s0 := src.Row(y)
		copyRow[D](width, s0, dst.Row(2*y))
		avgRow[D](width, s0, src.Row(y+1), dst.Row(2*y+1))
	}
	copyRow2[D](width, src.Row(height-1), dst.Row(2*height-2), dst.Row(2*height-1))
}

// linearC0I is linearC0P per field. Output rows 4m+p copy field row m and
// rows 4m+2+p average field rows m and m+1.
func linearC0I[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	y := 0
	for ; y < height-2; y += 2 {
		s0, s1 := src.Row(y), src.Row(y+1)
		copyRow[D](width, s0, dst.Row(2*y))
		copyRow[D](width, s1, dst.Row(2*y+1))
		avgRow[D](width, s0, src.Row(y+2), dst.Row(2*y+2))
		avgRow[D](width, s1, src.Row(y+3), dst.Row(2*y+3))
	}
	copyRow2[D](width, src.Row(y), dst.Row(2*y), dst.Row(2*y+2))
	copyRow2[D](width, src.Row(y+1), dst.Row(2*y+1), dst.Row(2*y+3))
}

// linearC1P places outputs a quarter and three quarters of the way between
// neighbouring rows. The first and last output rows copy the edge rows.
func linearC1P[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	copyRow[D](width, src.Row(0), dst.Row(0))
	for y := 0; y < height-1; y++ {
		s0, s1 := src.Row(y), src.Row(y+1)
		quarterRow[D](width, s0, s1, dst.Row(2*y+1))
		quarterRow[D](width, s1, s0, dst.Row(2*y+2))
	}
	copyRow[D](width, src.Row(height-1), dst.Row(2*height-1))
}

// linearC1I is linearC1P per field.
func linearC1I[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	copyRow[D](width, src.Row(0), dst.Row(0))
	copyRow[D](width, src.Row(1), dst.Row(1))
	for y := 0; y < height-2; y += 2 {
		s0, s1, s2, s3 := src.Row(y), src.Row(y+1), src.Row(y+2), src.Row(y+3)
		quarterRow[D](width, s0, s2, dst.Row(2*y+2))
		quarterRow[D](width, s1, s3, dst.Row(2*y+3))
		quarterRow[D](width, s2, s0, dst.Row(2*y+4))
		quarterRow[D](width, s3, s1, dst.Row(2*y+5))
	}
	copyRow[D](width, src.Row(height-2), dst.Row(2*height-2))
	copyRow[D](width, src.Row(height-1), dst.Row(2*height-1))
}

// linearC2P copies row pairs and fills the gap between row y+1 and y+2 with
// thirds (171 and 85 over 256). The last source row fills the final three
// output rows.
func linearC2P[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	y := 0
	for ; y < height-2; y += 2 {
		s1, s2 := src.Row(y+1), src.Row(y+2)
		copyRow[D](width, src.Row(y), dst.Row(2*y))
		copyRow[D](width, s1, dst.Row(2*y+1))
		blendRow[D](width, s1, s2, weights171x85, dst.Row(2*y+2))
		blendRow[D](width, s1, s2, weights85x171, dst.Row(2*y+3))
	}
	last := src.Row(y + 1)
	copyRow[D](width, src.Row(y), dst.Row(2*y))
	copyRow2[D](width, last, dst.Row(2*y+1), dst.Row(2*y+2))
	copyRow[D](width, last, dst.Row(2*y+3))
}

// linearC2I blends within each field at eighth phases: 5:3 and 1:7 for the
// top field, 7:1 and 3:5 for the bottom field.
func linearC2I[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	copyRow[D](width, src.Row(0), dst.Row(0))
	copyRow[D](width, src.Row(1), dst.Row(1))
	for y := 0; y < height-2; y += 2 {
		s0, s1, s2, s3 := src.Row(y), src.Row(y+1), src.Row(y+2), src.Row(y+3)
		blendRow[D](width, s0, s2, weights5x3, dst.Row(2*y+2))
		blendRow[D](width, s0, s2, weights1x7, dst.Row(2*y+4))
		blendRow[D](width, s1, s3, weights7x1, dst.Row(2*y+3))
		blendRow[D](width, s1, s3, weights3x5, dst.Row(2*y+5))
	}
	copyRow[D](width, src.Row(height-2), dst.Row(2*height-2))
	copyRow[D](width, src.Row(height-1), dst.Row(2*height-1))
}

// linearC3P copies each odd row to the output row above its pair and each
// even row to the row below, filling the gap with thirds. The first and last
// source rows are replicated.
func linearC3P[D hwy.Tag](width, height int, src, dst image.Plane, _ CoefficientSet) {
	checkPlanes[D](width, height, src, dst)
	copyRow2[D](width, src.Row(0), dst.Row(0), dst.Row(1))
	for y := 1; y < height-1; y += 2 {
		s0, s1 := src.Row(y), src.Row(y+1)
		copyRow[D](width, s0, dst.Row(2*y))
		blendRow[D](width, s0, s1, weights171x85, dst.Row(2*y+1))
		blendRow[D](width, s0, s1, weights85x171, dst.Row(2*y+2))
		copyRow[D](width, s1, dst.Row(2*y+3))
	}
	copyRow2[D](width, src.Row(height-1), dst.Row(2*height-2), dst.Row(2*height-1))
}
