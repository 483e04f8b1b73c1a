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
	"errors"
	"io"

	"github.com/chikuzen/YV12To422/hwy"
	"github.com/chikuzen/YV12To422/hwy/contrib/image"
)

// LumaAlign is the row alignment of luma planes. It is twice the widest lane
// width so that a chroma row rounded to lanes maps to a luma row inside the
// padded stride.
const LumaAlign = 64

// Frame is a planar frame of Width x Height luma samples.
type Frame struct {
	Width  int
	Height int
	Y      image.Plane
	U      image.Plane
	V      image.Plane
}

// NewYV12 allocates a 4:2:0 frame. Chroma rows are padded to align bytes.
func NewYV12(width, height, align int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Y:      image.NewPlane(width, height, LumaAlign),
		U:      image.NewPlane(width/2, height/2, align),
		V:      image.NewPlane(width/2, height/2, align),
	}
}

// NewYV16 allocates a 4:2:2 frame. Chroma rows are padded to align bytes.
func NewYV16(width, height, align int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Y:      image.NewPlane(width, height, LumaAlign),
		U:      image.NewPlane(width/2, height, align),
		V:      image.NewPlane(width/2, height, align),
	}
}

// Size returns the number of bytes of one raw frame.
func (f Frame) Size() int {
	return f.Y.Width*f.Y.Height + 2*f.U.Width*f.U.Height
}

// ReadFrom fills the frame from r in Y, V, U order. It returns io.EOF if r
// is exhausted before the first byte and io.ErrUnexpectedEOF if the frame is
// truncated.
func (f Frame) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	for _, p := range [3]image.Plane{f.Y, f.V, f.U} {
		for y := 0; y < p.Height; y++ {
			m, err := io.ReadFull(r, p.Row(y)[:p.Width])
			n += int64(m)
			if err != nil {
				if errors.Is(err, io.EOF) && n > 0 {
					err = io.ErrUnexpectedEOF
				}
				return n, err
			}
		}
	}
	return n, nil
}

// WriteTo writes the frame to w in Y, V, U order without row padding.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, p := range [3]image.Plane{f.Y, f.V, f.U} {
		m, err := writePlane(w, p)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Packed is a YUY2 frame: each row holds Width luma samples as
// Y0 U0 Y1 V0 byte quads, so Plane.Width is 2*Width bytes.
type Packed struct {
	Width  int
	Height int
	Plane  image.Plane
}

// NewYUY2 allocates a packed frame whose stride covers whole lane groups of
// the chroma width.
func NewYUY2(width, height, align int) Packed {
	p := image.NewPlane(4*alignedChroma(width, align), height, 0)
	p.Width = 2 * width
	return Packed{Width: width, Height: height, Plane: p}
}

// Size returns the number of bytes of one raw frame.
func (p Packed) Size() int {
	return p.Plane.Width * p.Plane.Height
}

// WriteTo writes the frame to w without row padding.
func (p Packed) WriteTo(w io.Writer) (int64, error) {
	return writePlane(w, p.Plane)
}

func writePlane(w io.Writer, p image.Plane) (int64, error) {
	var n int64
	for y := 0; y < p.Height; y++ {
		m, err := w.Write(p.Row(y)[:p.Width])
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// alignedChroma returns the chroma width of a width-sample frame rounded up
// to whole lane groups.
func alignedChroma(width, align int) int {
	return hwy.AlignedSize(width/2, align)
}
