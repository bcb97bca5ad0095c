package param

import "testing"

func TestBezierAlpha_LinearControl(t *testing.T) {
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		got := bezierAlpha(frac, 0.5)
		if diff := got - frac; diff < -1e-9 || diff > 1e-9 {
			t.Fatalf("bezierAlpha(%v, 0.5) = %v, want %v", frac, got, frac)
		}
	}
}

func TestBezierAlpha_Endpoints(t *testing.T) {
	for _, tCtrl := range []float64{0.1, 0.3, 0.7, 0.9} {
		if got := bezierAlpha(0, tCtrl); got < -1e-9 || got > 1e-9 {
			t.Fatalf("bezierAlpha(0, %v) = %v, want 0", tCtrl, got)
		}
		if got := bezierAlpha(1, tCtrl); got < 1-1e-6 {
			t.Fatalf("bezierAlpha(1, %v) = %v, want ~1", tCtrl, got)
		}
	}
}

func TestBezierValue_Endpoints(t *testing.T) {
	if v := bezierValue(1, 5, 9, 0); v != 1 {
		t.Fatalf("bezierValue at alpha=0 = %v, want 1", v)
	}
	if v := bezierValue(1, 5, 9, 1); v != 9 {
		t.Fatalf("bezierValue at alpha=1 = %v, want 9", v)
	}
}
