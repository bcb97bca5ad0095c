package output

import "math"

import "testing"

func TestNormalizationGain_NoChangeWhenAtTarget(t *testing.T) {
	g := NormalizationGain(0, 0)
	if math.Abs(g-1.0) > 1e-9 {
		t.Fatalf("gain = %v, want 1.0", g)
	}
}

func TestNormalizationGain_AttenuatesLoudSignal(t *testing.T) {
	// Measured at +6dB relative to target: gain should be ~0.5.
	g := NormalizationGain(6*256, 0)
	if g >= 0.6 || g <= 0.4 {
		t.Fatalf("gain = %v, want ~0.5", g)
	}
}

func TestApplyLoudnessNormalization(t *testing.T) {
	planar := [][]float64{{1, 2, -1}}
	ApplyLoudnessNormalization(planar, 0.5)
	want := []float64{0.5, 1, -0.5}
	for i := range want {
		if planar[0][i] != want[i] {
			t.Fatalf("planar[0][%d] = %v, want %v", i, planar[0][i], want[i])
		}
	}
}
