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

package image

import (
	"github.com/chikuzen/YV12To422/hwy"
)

// RowOrder selects how logical row indices map to memory.
type RowOrder int

const (
	// TopDown stores logical row 0 first.
	TopDown RowOrder = iota

	// BottomUp stores logical row 0 last, the equivalent of a negative pitch.
	BottomUp
)

// String returns "top-down" or "bottom-up".
func (o RowOrder) String() string {
	if o == BottomUp {
		return "bottom-up"
	}
	return "top-down"
}

// Plane is a view over 8-bit samples.
//
// Data holds Height rows of Stride bytes each, in memory order. Width is the
// logical sample count per row; the bytes between Width and Stride are
// padding that kernels may read and write when they process whole lane
// groups.
type Plane struct {
	Data   []byte
	Width  int
	Height int
	Stride int
	Order  RowOrder
}

// NewPlane allocates a top-down plane whose stride is width rounded up to a
// multiple of align. An align of 0 or less leaves the stride equal to width.
// Non-positive dimensions yield an empty plane.
func NewPlane(width, height, align int) Plane {
	if width <= 0 || height <= 0 {
		return Plane{}
	}
	stride := hwy.AlignedSize(width, align)
	return Plane{
		Data:   make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// Row returns the Stride bytes of logical row y, resolved through Order.
// The returned slice has its capacity capped at Stride so writes past the
// row end panic instead of spilling into the neighbouring row.
func (p Plane) Row(y int) []byte {
	if p.Order == BottomUp {
		y = p.Height - 1 - y
	}
	off := y * p.Stride
	return p.Data[off : off+p.Stride : off+p.Stride]
}

// Head returns a view of the first rows rows. A bottom-up view of the
// result starts at row rows-1 rather than at the last allocated row.
func (p Plane) Head(rows int) Plane {
	if rows < p.Height {
		p.Height = max(rows, 0)
		p.Data = p.Data[:p.Height*p.Stride]
	}
	return p
}

// WithOrder returns the same memory viewed with a different row order.
func (p Plane) WithOrder(o RowOrder) Plane {
	p.Order = o
	return p
}

// Empty reports whether the plane has no samples.
func (p Plane) Empty() bool {
	return p.Width <= 0 || p.Height <= 0
}

// Fill sets every byte of the plane, padding included, to value.
func (p Plane) Fill(value byte) {
	for i := range p.Data {
		p.Data[i] = value
	}
}

// Clone returns a deep copy of the plane with the same geometry and order.
func (p Plane) Clone() Plane {
	c := p
	c.Data = make([]byte, len(p.Data))
	copy(c.Data, p.Data)
	return c
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
