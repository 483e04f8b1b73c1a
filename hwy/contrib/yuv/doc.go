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

// Package yuv converts YV12 (planar 4:2:0) frames to YV16 (planar 4:2:2) or
// YUY2 (packed 4:2:2).
//
// A Converter validates the frame geometry and Options once, selects the
// chroma kernel for the running CPU and owns the intermediate planes:
//
//	conv, err := yuv.NewConverter(1920, 1080, yuv.DefaultOptions(false))
//	if err != nil {
//	    return err
//	}
//	defer conv.Close()
//
//	in := conv.NewInput()
//	out := conv.NewYUY2()
//	for {
//	    if _, err := in.ReadFrom(r); err != nil {
//	        break
//	    }
//	    conv.ToYUY2(in, out)
//	    out.WriteTo(w)
//	}
//
// Raw frames are read and written plane by plane in Y, V, U order, without
// row padding, the layout of .yuv dumps.
package yuv
