package chroma

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCoefficientsGolden(t *testing.T) {
	// b=0, c=0.5 (Catmull-Rom) evaluates exactly in binary floating point.
	tests := []struct {
		siting     Siting
		interlaced bool
		want       []int16
	}{
		{MPEG2, false, []int16{-64, 576}},
		{MPEG1, false, []int16{-24, 232, 888, -72}},
		{DVNTSC, false, []int16{0, 1152, 0, -128}},
		{DVPAL, false, []int16{-128, 0, 1152, 0}},
		{MPEG2, true, []int16{-64, 576}},
		{MPEG1, true, []int16{-24, 232, 888, -72, -24, 232, 888, -72}},
		{DVNTSC, true, []int16{-7, 93, 987, -49, -45, 399, 745, -75}},
		{DVPAL, true, []int16{-64, 576}},
	}
	for _, tt := range tests {
		cs := NewCoefficients(0, 0.5, tt.siting, tt.interlaced)
		if diff := cmp.Diff(tt.want, cs.Taps()); diff != "" {
			t.Errorf("%v interlaced=%v (-want +got):\n%s", tt.siting, tt.interlaced, diff)
		}
		if cs.Len() != len(tt.want) {
			t.Errorf("%v interlaced=%v Len: got %d, want %d", tt.siting, tt.interlaced, cs.Len(), len(tt.want))
		}
		if cs.Siting() != tt.siting || cs.Interlaced() != tt.interlaced {
			t.Errorf("%v interlaced=%v: recorded as %v/%v", tt.siting, tt.interlaced, cs.Siting(), cs.Interlaced())
		}
	}
}

func TestCoefficientsSumToScale(t *testing.T) {
	for s := MPEG2; s <= DVPAL; s++ {
		for _, il := range []bool{false, true} {
			cs := NewCoefficients(0, 0.5, s, il)
			sum := 0
			for i := range cs.Len() {
				sum += int(cs.At(i))
			}
			groups := max(1, cs.Len()/4)
			if cs.Len() == 2 {
				sum *= 2
			}
			if sum != Scale*groups {
				t.Errorf("%v interlaced=%v: taps sum to %d, want %d", s, il, sum, Scale*groups)
			}
		}
	}
}

func TestToFixedRounding(t *testing.T) {
	tests := []struct {
		v    float64
		want int16
	}{
		{0, 0},
		{0.5 / Scale, 1},
		{-0.5 / Scale, -1},
		{0.49 / Scale, 0},
		{-0.49 / Scale, 0},
		{1.5 / Scale, 2},
		{-1.5 / Scale, -2},
		{1, 1024},
		{-0.0234375, -24},
	}
	for _, tt := range tests {
		if got := toFixed(tt.v); got != tt.want {
			t.Errorf("toFixed(%v): got %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestFilterIsEven(t *testing.T) {
	f := newCubicFilter(1.0/3, 1.0/3)
	for _, d := range []float64{0.125, 0.5, 0.75, 1.25, 1.875} {
		if f.tap(d) != f.tap(-d) {
			t.Errorf("tap(%v) = %d, tap(-%v) = %d", d, f.tap(d), d, f.tap(-d))
		}
	}
	if got := f.tap(0); got != toFixed((6-2.0/3)/6) {
		t.Errorf("tap(0): got %d, want %d", got, toFixed((6-2.0/3)/6))
	}
}

func TestCoefficientSetIsImmutable(t *testing.T) {
	cs := NewCoefficients(0, 0.5, MPEG1, false)
	taps := cs.Taps()
	taps[0] = 999
	if cs.At(0) != -24 {
		t.Errorf("At(0) after modifying Taps(): got %d, want -24", cs.At(0))
	}
	var zero CoefficientSet
	if zero.Len() != 0 || len(zero.Taps()) != 0 {
		t.Errorf("zero set: got Len %d", zero.Len())
	}
}

func TestTapOrderHelpers(t *testing.T) {
	cs := NewCoefficients(0, 0.5, DVNTSC, true)
	if got, want := cs.forward(4), [4]int32{-45, 399, 745, -75}; got != want {
		t.Errorf("forward(4): got %v, want %v", got, want)
	}
	if got, want := cs.reversed(0), [4]int32{-49, 987, 93, -7}; got != want {
		t.Errorf("reversed(0): got %v, want %v", got, want)
	}
}

func TestCachedCoefficients(t *testing.T) {
	want := NewCoefficients(0.2, 0.4, DVNTSC, true)

	var wg sync.WaitGroup
	results := make([]CoefficientSet, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = CachedCoefficients(0.2, 0.4, DVNTSC, true)
		}()
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want.Taps(), got.Taps()); diff != "" {
			t.Errorf("goroutine %d (-want +got):\n%s", i, diff)
		}
	}
	other := CachedCoefficients(0.2, 0.4, DVNTSC, false)
	if other.Len() != 4 {
		t.Errorf("progressive set from cache: got Len %d, want 4", other.Len())
	}
}
