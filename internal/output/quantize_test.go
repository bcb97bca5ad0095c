package output

import "testing"

func TestQuantizeSample_FullScaleSaturates(t *testing.T) {
	if got := QuantizeSample(1.5, Depth16); got != 1<<15-1 {
		t.Fatalf("got %d, want %d", got, 1<<15-1)
	}
	if got := QuantizeSample(-1.5, Depth16); got != -(1 << 15) {
		t.Fatalf("got %d, want %d", got, -(1 << 15))
	}
}

func TestQuantizeSample_RoundHalfToEven(t *testing.T) {
	// 0.5 and 1.5 (in integer units) must round to the nearest even integer.
	if got := roundHalfToEven(0.5); got != 0 {
		t.Fatalf("roundHalfToEven(0.5) = %v, want 0", got)
	}
	if got := roundHalfToEven(1.5); got != 2 {
		t.Fatalf("roundHalfToEven(1.5) = %v, want 2", got)
	}
	if got := roundHalfToEven(2.5); got != 2 {
		t.Fatalf("roundHalfToEven(2.5) = %v, want 2", got)
	}
	if got := roundHalfToEven(-0.5); got != 0 {
		t.Fatalf("roundHalfToEven(-0.5) = %v, want 0", got)
	}
}

func TestQuantizeSample_Int32UsesInvertedSignConvention(t *testing.T) {
	// The reference float-to-int32 path multiplies by -2^31, not +2^31;
	// a positive input sample must quantize to a negative-going value.
	got := QuantizeSample(0.5, Depth32)
	if got >= 0 {
		t.Fatalf("got %d, want negative (inverted-sign convention)", got)
	}
	want := int64(-(1 << 30))
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestQuantizeSample_Zero(t *testing.T) {
	if got := QuantizeSample(0, Depth24); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestInterleave(t *testing.T) {
	planar := [][]int64{{1, 2, 3}, {10, 20, 30}}
	got := Interleave(planar)
	want := []int64{1, 10, 2, 20, 3, 30}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestApplyTrim(t *testing.T) {
	planar := [][]float64{{1, 2, 3, 4, 5}}
	out := ApplyTrim(planar, 1, 2)
	want := []float64{2, 3}
	if len(out[0]) != len(want) {
		t.Fatalf("len = %d, want %d", len(out[0]), len(want))
	}
	for i := range want {
		if out[0][i] != want[i] {
			t.Fatalf("out[0][%d] = %v, want %v", i, out[0][i], want[i])
		}
	}
}

func TestApplyTrim_ClampsOversizedTrim(t *testing.T) {
	planar := [][]float64{{1, 2}}
	out := ApplyTrim(planar, 10, 10)
	if len(out[0]) != 0 {
		t.Fatalf("len = %d, want 0", len(out[0]))
	}
}
