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

// Command yv12to422 converts a raw YV12 stream to YV16 or YUY2.
//
// Usage:
//
//	yv12to422 --width 720 --height 480 --interlaced in.yv12 out.yuy2
//	yv12to422 --width 1920 --height 1080 --itype 2 --yuy2=false in.yv12.zst out.yv16.zst
//	cat in.yv12 | yv12to422 --width 720 --height 576 --interlaced --cplace 3 > out.yuy2
//
// Input frames are raw planar Y, V, U with no row padding. Paths ending in
// .zst are read and written through zstd; "-" (the default) selects stdin
// or stdout.
//
// HWY_NO_SIMD forces 16-byte lanes. YV12TO422_LANES sets --lanes when the
// flag is not given.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
