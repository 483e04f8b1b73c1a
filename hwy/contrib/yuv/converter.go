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
	"fmt"
	"io"

	"github.com/chikuzen/YV12To422/hwy/contrib/chroma"
	"github.com/chikuzen/YV12To422/hwy/contrib/image"
	"github.com/chikuzen/YV12To422/hwy/contrib/workerpool"
)

// Converter turns YV12 frames of one geometry into YV16 or YUY2. It holds
// the kernel, the coefficient set and the scratch planes, so one Converter
// must not be used from several goroutines at once.
type Converter struct {
	opts   Options
	width  int
	height int
	lanes  chroma.LaneWidth

	// chromaWidth is the chroma row width rounded up to whole lane groups.
	chromaWidth int

	kernel chroma.Kernel
	shift  chroma.ShiftKernel
	cs     chroma.CoefficientSet
	pool   *workerpool.Pool

	shifted [2]image.Plane // U and V after the horizontal shift
	yv16    Frame          // intermediate for packed output
	packed  Packed         // output buffer for Convert
}

// NewConverter validates opts for width x height frames and prepares the
// kernel. Close releases the worker pool.
func NewConverter(width, height int, opts Options) (*Converter, error) {
	if err := opts.Validate(width, height); err != nil {
		return nil, err
	}

	lw := opts.laneWidth()
	c := &Converter{
		opts:        opts,
		width:       width,
		height:      height,
		lanes:       lw,
		chromaWidth: alignedChroma(width, int(lw)),
		kernel:      chroma.Lookup(opts.Interpolation, opts.Siting, opts.Interlaced, lw),
		pool:        workerpool.New(opts.Workers),
	}
	if opts.Interpolation == chroma.Cubic {
		c.cs = chroma.CachedCoefficients(opts.B, opts.C, opts.Siting, opts.Interlaced)
	}
	if opts.HorizontalShift {
		c.shift = chroma.LookupShift(lw)
		for i := range c.shifted {
			c.shifted[i] = image.NewPlane(width/2, height/2, int(lw))
		}
	}
	return c, nil
}

// Close stops the worker pool. The Converter keeps working afterwards on the
// calling goroutine only.
func (c *Converter) Close() {
	c.pool.Close()
}

// Options returns the options the Converter was built with.
func (c *Converter) Options() Options {
	return c.opts
}

// LaneWidth returns the lane width the kernels run at.
func (c *Converter) LaneWidth() chroma.LaneWidth {
	return c.lanes
}

// CoefficientSet returns the cubic taps in use; empty for Point and Linear.
func (c *Converter) CoefficientSet() chroma.CoefficientSet {
	return c.cs
}

// String describes the conversion for logs.
func (c *Converter) String() string {
	scan := "progressive"
	if c.opts.Interlaced {
		scan = "interlaced"
	}
	return fmt.Sprintf("%dx%d %s %s %s lanes=%d", c.width, c.height, c.opts.Interpolation, c.opts.Siting, scan, c.lanes)
}

// NewInput allocates a YV12 frame with the padding the Converter needs.
func (c *Converter) NewInput() Frame {
	return NewYV12(c.width, c.height, int(c.lanes))
}

// NewYV16 allocates a YV16 output frame.
func (c *Converter) NewYV16() Frame {
	return NewYV16(c.width, c.height, int(c.lanes))
}

// NewYUY2 allocates a YUY2 output frame.
func (c *Converter) NewYUY2() Packed {
	return NewYUY2(c.width, c.height, int(c.lanes))
}

// ToYV16 resamples the chroma of src into dst and copies the luma.
func (c *Converter) ToYV16(src, dst Frame) error {
	if err := c.checkInput(src); err != nil {
		return err
	}
	if err := c.checkYV16(dst); err != nil {
		return err
	}
	c.resample(src, dst)
	copier := planeCopiers[laneIndex(c.lanes)]
	c.pool.ParallelFor(c.height, func(start, end int) {
		copier(src.Y, dst.Y, start, end)
	})
	return nil
}

// ToYUY2 resamples the chroma of src and packs it with the luma into dst.
func (c *Converter) ToYUY2(src Frame, dst Packed) error {
	if err := c.checkInput(src); err != nil {
		return err
	}
	if dst.Width != c.width || dst.Height != c.height {
		return fmt.Errorf("%w: output is %dx%d, want %dx%d", ErrPlaneTooSmall, dst.Width, dst.Height, c.width, c.height)
	}
	if c.yv16.Y.Empty() {
		c.yv16 = c.NewYV16()
	}
	c.resample(src, c.yv16)

	// The packer reads luma straight from the source frame.
	planar := Frame{Width: c.width, Height: c.height, Y: src.Y, U: c.yv16.U, V: c.yv16.V}
	if err := checkPacked(c.lanes, planar, dst); err != nil {
		return err
	}
	pack := packers[laneIndex(c.lanes)]
	c.pool.ParallelFor(c.height, func(start, end int) {
		pack(planar, dst, start, end)
	})
	return nil
}

// Convert converts src and writes it to w as YUY2 or YV16, following
// Options.YUY2.
func (c *Converter) Convert(src Frame, w io.Writer) (int64, error) {
	if !c.opts.YUY2 {
		if c.yv16.Y.Empty() {
			c.yv16 = c.NewYV16()
		}
		if err := c.ToYV16(src, c.yv16); err != nil {
			return 0, err
		}
		return c.yv16.WriteTo(w)
	}
	if c.packed.Plane.Empty() {
		c.packed = c.NewYUY2()
	}
	if err := c.ToYUY2(src, c.packed); err != nil {
		return 0, err
	}
	return c.packed.WriteTo(w)
}

// resample runs the chroma kernel on U and V concurrently.
func (c *Converter) resample(src, dst Frame) {
	h := c.height / 2
	srcPlanes := [2]image.Plane{src.U, src.V}
	dstPlanes := [2]image.Plane{dst.U, dst.V}

	c.pool.Run(
		func() { c.resamplePlane(0, srcPlanes[0], dstPlanes[0], h) },
		func() { c.resamplePlane(1, srcPlanes[1], dstPlanes[1], h) },
	)
}

func (c *Converter) resamplePlane(i int, src, dst image.Plane, h int) {
	if c.shift != nil {
		c.shift(c.chromaWidth, h, src, c.shifted[i])
		src = c.shifted[i]
	}
	// Interlaced DV-PAL stores V with the field order reversed.
	if i == 1 && c.opts.dvpal() {
		src = src.Head(h).WithOrder(image.BottomUp)
		dst = dst.Head(2 * h).WithOrder(image.BottomUp)
	}
	c.kernel(c.chromaWidth, h, src, dst, c.cs)
}

func (c *Converter) checkInput(src Frame) error {
	if src.Width != c.width || src.Height != c.height {
		return fmt.Errorf("%w: input is %dx%d, want %dx%d", ErrPlaneTooSmall, src.Width, src.Height, c.width, c.height)
	}
	if err := checkPlane("Y", src.Y, c.width, c.height, 2*c.chromaWidth); err != nil {
		return err
	}
	for _, p := range []struct {
		name  string
		plane image.Plane
	}{{"U", src.U}, {"V", src.V}} {
		if err := checkPlane(p.name, p.plane, c.width/2, c.height/2, c.chromaWidth); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) checkYV16(dst Frame) error {
	if err := checkPlane("Y", dst.Y, c.width, c.height, c.width); err != nil {
		return err
	}
	if err := checkPlane("U", dst.U, c.width/2, c.height, c.chromaWidth); err != nil {
		return err
	}
	return checkPlane("V", dst.V, c.width/2, c.height, c.chromaWidth)
}

// checkPlane reports whether p holds height rows of width samples readable
// up to stride bytes.
func checkPlane(name string, p image.Plane, width, height, stride int) error {
	if p.Width < width || p.Height < height || p.Stride < stride || len(p.Data) < p.Stride*height {
		return fmt.Errorf("%w: %s plane is %dx%d stride %d, want %dx%d stride >= %d",
			ErrPlaneTooSmall, name, p.Width, p.Height, p.Stride, width, height, stride)
	}
	return nil
}

// checkPacked validates the planes PackYUY2 reads and writes.
func checkPacked(lw chroma.LaneWidth, src Frame, dst Packed) error {
	if !lw.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidLaneWidth, int(lw))
	}
	cw := alignedChroma(src.Width, int(lw))
	if err := checkPlane("Y", src.Y, src.Width, src.Height, 2*cw); err != nil {
		return err
	}
	if err := checkPlane("U", src.U, src.Width/2, src.Height, cw); err != nil {
		return err
	}
	if err := checkPlane("V", src.V, src.Width/2, src.Height, cw); err != nil {
		return err
	}
	return checkPlane("YUY2", dst.Plane, 2*src.Width, src.Height, 4*cw)
}
