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

// Package contrib groups the image packages built on the hwy lane primitives.
//
// # Subpackages
//
//   - image: 8-bit planes with stride and row order
//   - chroma: vertical 4:2:0 to 4:2:2 chroma kernels and cubic coefficients
//   - yuv: YV12 frames in, YV16 or YUY2 frames out, via a Converter
//   - workerpool: persistent goroutine pool used by the Converter
//
// # Chroma Kernels (hwy/contrib/chroma)
//
// Kernels are looked up by interpolation, siting, scan type and lane width:
//
//	import "github.com/chikuzen/YV12To422/hwy/contrib/chroma"
//
//	k := chroma.Lookup(chroma.Linear, chroma.MPEG2, false, chroma.CurrentLaneWidth())
//	k(alignedWidth, srcHeight, src, dst, chroma.CoefficientSet{})
//
// # Frames (hwy/contrib/yuv)
//
//	conv, err := yuv.NewConverter(720, 480, yuv.DefaultOptions(true))
//	if err != nil {
//	    return err
//	}
//	defer conv.Close()
//	in := conv.NewInput()
//	for {
//	    if _, err := in.ReadFrom(r); err != nil {
//	        break
//	    }
//	    if _, err := conv.Convert(in, w); err != nil {
//	        return err
//	    }
//	}
package contrib
