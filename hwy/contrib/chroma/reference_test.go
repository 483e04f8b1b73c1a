package chroma

import (
	"fmt"
	"math/rand/v2"

	"github.com/chikuzen/YV12To422/hwy/contrib/image"
)

// This file holds a scalar model of every kernel. It works on [][]byte rows,
// clamps every source index and shares no code with the lane kernels.

type refKernel func(s [][]byte, cs CoefficientSet) [][]byte

func clampRow(s [][]byte, k int) []byte {
	return s[image.Clamp(k, len(s))]
}

func newRows(n, width int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, width)
	}
	return out
}

func mapRows(out []byte, fn func(x int) int) {
	for x := range out {
		out[x] = byte(fn(x))
	}
}

func refPointP(s [][]byte, _ CoefficientSet) [][]byte {
	out := newRows(2*len(s), len(s[0]))
	for y := range s {
		copy(out[2*y], s[y])
		copy(out[2*y+1], s[y])
	}
	return out
}

func refPointI(s [][]byte, _ CoefficientSet) [][]byte {
	out := newRows(2*len(s), len(s[0]))
	for y := range s {
		base := 4*(y/2) + y%2
		copy(out[base], s[y])
		copy(out[base+2], s[y])
	}
	return out
}

func avg2(a, b byte) int { return (int(a) + int(b) + 1) >> 1 }

func avg3to1(near, far byte) int { return (3*int(near) + int(far) + 2) >> 2 }

func wblend(a, b byte, wa, wb, round, shift int) int {
	return (wa*int(a) + wb*int(b) + round) >> shift
}

func refLinearC0P(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	for y := 0; y < h; y++ {
		copy(out[2*y], s[y])
		n := clampRow(s, y+1)
		mapRows(out[2*y+1], func(x int) int { return avg2(s[y][x], n[x]) })
	}
	return out
}

func refLinearC0I(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	for y := 0; y < h; y++ {
		base := 4*(y/2) + y%2
		next := y + 2
		if next >= h {
			next = y
		}
		copy(out[base], s[y])
		mapRows(out[base+2], func(x int) int { return avg2(s[y][x], s[next][x]) })
	}
	return out
}

func refLinearC1P(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	copy(out[0], s[0])
	copy(out[2*h-1], s[h-1])
	for y := 0; y < h-1; y++ {
		a, b := s[y], s[y+1]
		mapRows(out[2*y+1], func(x int) int { return avg3to1(a[x], b[x]) })
		mapRows(out[2*y+2], func(x int) int { return avg3to1(b[x], a[x]) })
	}
	return out
}

func refLinearC1I(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	copy(out[0], s[0])
	copy(out[1], s[1])
	copy(out[2*h-2], s[h-2])
	copy(out[2*h-1], s[h-1])
	for y := 0; y+2 < h; y++ {
		a, b := s[y], s[y+2]
		base := 4*(y/2) + y%2
		mapRows(out[base+2], func(x int) int { return avg3to1(a[x], b[x]) })
		mapRows(out[base+4], func(x int) int { return avg3to1(b[x], a[x]) })
	}
	return out
}

func refLinearC2P(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	for y := 0; y < h; y += 2 {
		copy(out[2*y], s[y])
		copy(out[2*y+1], s[y+1])
		if y+2 < h {
			a, b := s[y+1], s[y+2]
			mapRows(out[2*y+2], func(x int) int { return wblend(a[x], b[x], 171, 85, 128, 8) })
			mapRows(out[2*y+3], func(x int) int { return wblend(a[x], b[x], 85, 171, 128, 8) })
		} else {
			copy(out[2*y+2], s[y+1])
			copy(out[2*y+3], s[y+1])
		}
	}
	return out
}

func refLinearC2I(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	copy(out[0], s[0])
	copy(out[1], s[1])
	copy(out[2*h-2], s[h-2])
	copy(out[2*h-1], s[h-1])
	for m := 0; 2*m+2 < h; m++ {
		t0, t1 := s[2*m], s[2*m+2]
		b0, b1 := s[2*m+1], s[2*m+3]
		mapRows(out[4*m+2], func(x int) int { return wblend(t0[x], t1[x], 5, 3, 4, 3) })
		mapRows(out[4*m+4], func(x int) int { return wblend(t0[x], t1[x], 1, 7, 4, 3) })
		mapRows(out[4*m+3], func(x int) int { return wblend(b0[x], b1[x], 7, 1, 4, 3) })
		mapRows(out[4*m+5], func(x int) int { return wblend(b0[x], b1[x], 3, 5, 4, 3) })
	}
	return out
}

func refLinearC3P(s [][]byte, _ CoefficientSet) [][]byte {
	h := len(s)
	out := newRows(2*h, len(s[0]))
	copy(out[0], s[0])
	copy(out[1], s[0])
	copy(out[2*h-2], s[h-1])
	copy(out[2*h-1], s[h-1])
	for y := 1; y+1 < h; y += 2 {
		a, b := s[y], s[y+1]
		copy(out[2*y], a)
		copy(out[2*y+3], b)
		mapRows(out[2*y+1], func(x int) int { return wblend(a[x], b[x], 171, 85, 128, 8) })
		mapRows(out[2*y+2], func(x int) int { return wblend(a[x], b[x], 85, 171, 128, 8) })
	}
	return out
}

// refTap4 is the general four-tap evaluation with clamping to [0, 255].
func refTap4(r [4]byte, taps [4]int32) byte {
	sum := int32(Scale / 2)
	for i := range r {
		sum += taps[i] * int32(r[i])
	}
	sum >>= 10
	return byte(min(max(sum, 0), 255))
}

// fieldRows splits s into the rows y with y%step == off.
func fieldRows(s [][]byte, off, step int) [][]byte {
	var out [][]byte
	for y := off; y < len(s); y += step {
		out = append(out, s[y])
	}
	return out
}

func window(f [][]byte, k int) [4][]byte {
	return [4][]byte{clampRow(f, k-1), clampRow(f, k), clampRow(f, k+1), clampRow(f, k+2)}
}

func evalRow(w [4][]byte, taps [4]int32) []byte {
	out := make([]byte, len(w[0]))
	for x := range out {
		out[x] = refTap4([4]byte{w[0][x], w[1][x], w[2][x], w[3][x]}, taps)
	}
	return out
}

// refMidpoint returns the doubled field: copies at 2k+shift, midpoints
// between field rows k-shift and k-shift+1 at 2k+1-shift.
func refMidpoint(f [][]byte, shift int, outer, inner int32) [][]byte {
	out := make([][]byte, 2*len(f))
	taps := [4]int32{outer, inner, inner, outer}
	for k := range f {
		out[2*k+shift] = append([]byte(nil), f[k]...)
		out[2*k+1-shift] = evalRow(window(f, k-shift), taps)
	}
	return out
}

// refQuarter returns the doubled field: early phase after row k at 2k+1,
// late phase after row k at 2k+2, late phase after row -1 at 0.
func refQuarter(f [][]byte, early, late [4]int32) [][]byte {
	out := make([][]byte, 2*len(f))
	out[0] = evalRow(window(f, -1), late)
	for k := range f {
		out[2*k+1] = evalRow(window(f, k), early)
		if 2*k+2 < len(out) {
			out[2*k+2] = evalRow(window(f, k), late)
		}
	}
	return out
}

// weave places the rows of a at off, off+step, ... of out.
func weave(out, a [][]byte, off, step int) {
	for i, r := range a {
		out[off+step*i] = r
	}
}

func refCubicC0P(s [][]byte, cs CoefficientSet) [][]byte {
	return refMidpoint(s, 0, cs.tap(0), cs.tap(1))
}

func refCubicMidpointFields(s [][]byte, outer, inner int32) [][]byte {
	out := make([][]byte, 2*len(s))
	for p := range 2 {
		weave(out, refMidpoint(fieldRows(s, p, 2), 0, outer, inner), p, 2)
	}
	return out
}

func refCubicC0I(s [][]byte, cs CoefficientSet) [][]byte {
	return refCubicMidpointFields(s, cs.tap(0), cs.tap(1))
}

func refCubicC2P(s [][]byte, cs CoefficientSet) [][]byte {
	return refCubicMidpointFields(s, cs.tap(3)/2, cs.tap(1)/2)
}

func refCubicC3P(s [][]byte, cs CoefficientSet) [][]byte {
	out := make([][]byte, 2*len(s))
	outer, inner := cs.tap(0)/2, cs.tap(2)/2
	weave(out, refMidpoint(fieldRows(s, 1, 2), 1, outer, inner), 0, 2)
	weave(out, refMidpoint(fieldRows(s, 0, 2), 0, outer, inner), 1, 2)
	return out
}

func refCubicC1P(s [][]byte, cs CoefficientSet) [][]byte {
	return refQuarter(s, cs.reversed(0), cs.forward(0))
}

func refCubicI8(s [][]byte, cs CoefficientSet) [][]byte {
	out := make([][]byte, 2*len(s))
	weave(out, refQuarter(fieldRows(s, 0, 2), cs.reversed(4), cs.forward(0)), 0, 2)
	weave(out, refQuarter(fieldRows(s, 1, 2), cs.reversed(0), cs.forward(4)), 1, 2)
	return out
}

// refKernels mirrors the dispatch table.
var refKernels = [3][4][2]refKernel{
	Point: {
		{refPointP, refPointI}, {refPointP, refPointI}, {refPointP, refPointI}, {refPointP, refPointI},
	},
	Linear: {
		MPEG2:  {refLinearC0P, refLinearC0I},
		MPEG1:  {refLinearC1P, refLinearC1I},
		DVNTSC: {refLinearC2P, refLinearC2I},
		DVPAL:  {refLinearC3P, refLinearC0I},
	},
	Cubic: {
		MPEG2:  {refCubicC0P, refCubicC0I},
		MPEG1:  {refCubicC1P, refCubicI8},
		DVNTSC: {refCubicC2P, refCubicI8},
		DVPAL:  {refCubicC3P, refCubicC0I},
	},
}

// config is one entry of the dispatch cross product, without the lane width.
type config struct {
	it         Interpolation
	siting     Siting
	interlaced bool
}

func (c config) String() string {
	scan := "progressive"
	if c.interlaced {
		scan = "interlaced"
	}
	return fmt.Sprintf("%s/%s/%s", c.it, c.siting, scan)
}

func allConfigs() []config {
	var out []config
	for it := Point; it <= Cubic; it++ {
		for s := MPEG2; s <= DVPAL; s++ {
			for _, il := range []bool{false, true} {
				out = append(out, config{it, s, il})
			}
		}
	}
	return out
}

// testShapes are the (b, c) pairs the equivalence tests run with.
var testShapes = [][2]float64{
	{0, 0.5},
	{1.0 / 3, 1.0 / 3},
	{0, 0.75},
	{1, 0},
	{0, 2},
}

func randomRows(rng *rand.Rand, n, width int) [][]byte {
	out := newRows(n, width)
	for _, r := range out {
		for x := range r {
			r[x] = byte(rng.UintN(256))
		}
	}
	return out
}

// fencedPlane copies rows into a plane of the given stride surrounded by
// guard bytes. Data is capped so that reads past the last row panic.
type fencedPlane struct {
	image.Plane
	buf   []byte
	guard int
}

const fenceByte = 0xA5

func newFencedPlane(rows [][]byte, height, stride int) fencedPlane {
	const guard = 64
	buf := make([]byte, guard+height*stride+guard)
	for i := range buf {
		buf[i] = fenceByte
	}
	n := height * stride
	p := image.Plane{
		Data:   buf[guard : guard+n : guard+n],
		Width:  stride,
		Height: height,
		Stride: stride,
	}
	for y, r := range rows {
		copy(p.Row(y), r)
	}
	return fencedPlane{Plane: p, buf: buf, guard: guard}
}

// intact reports whether both guard regions are untouched.
func (f fencedPlane) intact() bool {
	for i := 0; i < f.guard; i++ {
		if f.buf[i] != fenceByte || f.buf[len(f.buf)-1-i] != fenceByte {
			return false
		}
	}
	return true
}

// rows returns the first width bytes of every row.
func (f fencedPlane) rows(width int) [][]byte {
	out := make([][]byte, f.Height)
	for y := range out {
		out[y] = append([]byte(nil), f.Row(y)[:width]...)
	}
	return out
}
