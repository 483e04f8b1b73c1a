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

// checkPlanes asserts the kernel preconditions on geometry.
func checkPlanes[D hwy.Tag](width, height int, src, dst image.Plane) {
	var d D
	assert(height >= MinHeight && height%2 == 0, "height must be even and at least MinHeight")
	assert(width > 0 && hwy.IsAligned(width, d.Width()), "width must be a positive multiple of the lane width")
	assert(src.Height >= height && src.Stride >= width, "source plane too small")
	assert(dst.Height >= 2*height && dst.Stride >= width, "destination plane too small")
}

func checkTaps(cs CoefficientSet, n int) {
	assert(cs.Len() == n, "coefficient set does not match the kernel")
}
