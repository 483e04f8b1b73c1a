package yuv

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chikuzen/YV12To422/hwy/contrib/chroma"
)

func randomYV16(rng *rand.Rand, width, height int, lw chroma.LaneWidth) Frame {
	f := NewYV16(width, height, int(lw))
	for _, p := range [][]byte{f.Y.Data, f.U.Data, f.V.Data} {
		for i := range p {
			p[i] = byte(rng.UintN(256))
		}
	}
	return f
}

func refPack(f Frame) [][]byte {
	out := make([][]byte, f.Height)
	for y := range out {
		row := make([]byte, 2*f.Width)
		ys, us, vs := f.Y.Row(y), f.U.Row(y), f.V.Row(y)
		for x := 0; x < f.Width/2; x++ {
			row[4*x] = ys[2*x]
			row[4*x+1] = us[x]
			row[4*x+2] = ys[2*x+1]
			row[4*x+3] = vs[x]
		}
		out[y] = row
	}
	return out
}

func TestPackYUY2(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	// 40 leaves a partial lane group of chroma; 128 is whole groups.
	for _, width := range []int{40, 128, 200} {
		for _, lw := range []chroma.LaneWidth{chroma.Lanes128, chroma.Lanes256} {
			src := randomYV16(rng, width, 4, lw)
			dst := NewYUY2(width, 4, int(lw))
			require.NoError(t, PackYUY2(lw, src, dst))

			want := refPack(src)
			for y := range want {
				require.Equal(t, want[y], dst.Plane.Row(y)[:2*width], "width %d lanes %d row %d", width, lw, y)
			}
		}
	}
}

func TestPackYUY2RowSizeGuard(t *testing.T) {
	// Chroma width 10 is padded to 16; the groups starting at byte 48 and
	// beyond must not be written.
	const width = 20
	rng := rand.New(rand.NewPCG(1, 1))
	src := randomYV16(rng, width, 4, chroma.Lanes128)
	dst := NewYUY2(width, 4, 16)
	require.Equal(t, 64, dst.Plane.Stride)
	for i := range dst.Plane.Data {
		dst.Plane.Data[i] = 0xEE
	}
	require.NoError(t, PackYUY2(chroma.Lanes128, src, dst))
	for y := 0; y < 4; y++ {
		row := dst.Plane.Row(y)
		for x := 48; x < 64; x++ {
			require.Equal(t, byte(0xEE), row[x], "row %d byte %d", y, x)
		}
	}
}

func TestPackYUY2Errors(t *testing.T) {
	src := NewYV16(64, 4, 16)
	require.ErrorIs(t, PackYUY2(8, src, NewYUY2(64, 4, 16)), ErrInvalidLaneWidth)

	// Chroma width 40 padded to 48 is too narrow for 32-byte lanes.
	narrow := NewYV16(80, 4, 16)
	require.ErrorIs(t, PackYUY2(chroma.Lanes256, narrow, NewYUY2(80, 4, 32)), ErrPlaneTooSmall)

	small := NewYUY2(64, 2, 16)
	small.Height = 4
	require.ErrorIs(t, PackYUY2(chroma.Lanes128, src, small), ErrPlaneTooSmall)
}
