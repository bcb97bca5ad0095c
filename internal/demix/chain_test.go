package demix

import (
	"math"
	"testing"

	"github.com/iamfgo/iamf/internal/param"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestExpandSurroundToSevenOne_Mode1(t *testing.T) {
	c, err := NewChain(param.DemixingMode(1))
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	sl5 := []float64{1.0, 0.5}
	sr5 := []float64{1.0, 0.5}

	sl7, sr7, bl7, br7 := c.ExpandSurroundToSevenOne(sl5, sr5)

	alpha := 0.707 // mode 1's table alpha
	for i := range sl5 {
		if !approxEqual(sl7[i], sl5[i], 1e-9) {
			t.Fatalf("sl7[%d] = %v, want pass-through %v", i, sl7[i], sl5[i])
		}
		if !approxEqual(sr7[i], sr5[i], 1e-9) {
			t.Fatalf("sr7[%d] = %v, want pass-through %v", i, sr7[i], sr5[i])
		}
		wantBL := sl5[i] * (1 - alpha)
		if !approxEqual(bl7[i], wantBL, 1e-6) {
			t.Fatalf("bl7[%d] = %v, want %v", i, bl7[i], wantBL)
		}
		wantBR := sr5[i] * (1 - alpha)
		if !approxEqual(br7[i], wantBR, 1e-6) {
			t.Fatalf("br7[%d] = %v, want %v", i, br7[i], wantBR)
		}
	}
}

func TestDownmix_IdentityWhenUpperChannelsZero(t *testing.T) {
	c, err := NewChain(param.DemixingMode(0))
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	n := 4
	full := Buffers{
		ChHFL: make([]float64, n),
		ChHFR: make([]float64, n),
		ChHBL: make([]float64, n),
		ChHBR: make([]float64, n),
		ChSL7: make([]float64, n),
		ChSR7: make([]float64, n),
		ChBL7: make([]float64, n),
		ChBR7: make([]float64, n),
		ChL5:  {1, 1, 1, 1},
		ChR5:  {1, 1, 1, 1},
		ChC:   make([]float64, n),
	}
	out := c.Downmix(full, n)
	for i := 0; i < n; i++ {
		if out[ChL2][i] != 1 || out[ChR2][i] != 1 {
			t.Fatalf("L2/R2[%d] = %v/%v, want pass-through of L5/R5", i, out[ChL2][i], out[ChR2][i])
		}
		if out[ChMono][i] != 1 {
			t.Fatalf("Mono[%d] = %v, want 1", i, out[ChMono][i])
		}
	}
}

func TestApplyReconGain(t *testing.T) {
	buf := Buffers{ChC: {1, 1, 1}}
	ApplyReconGain(buf, map[Channel]float64{ChC: 0.5})
	for _, v := range buf[ChC] {
		if v != 0.5 {
			t.Fatalf("got %v, want 0.5", v)
		}
	}
}

func TestChain_StepW(t *testing.T) {
	c, err := NewChain(param.DemixingMode(4)) // WSign +1
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	if c.W() != 0 {
		t.Fatalf("initial W = %v, want 0", c.W())
	}
	for i := 0; i < param.MaxWIndex+5; i++ {
		c.StepW()
	}
	if c.W() != 1 {
		t.Fatalf("W after many steps = %v, want clamped to 1", c.W())
	}
}
