package output

import "math"

// NormalizationGain returns the linear gain that would bring a signal
// measured at measuredQ7_8 dB LKFS to targetLKFS, for the optional
// loudness-normalization step applied before quantization.
func NormalizationGain(measuredQ7_8 int16, targetLKFS float64) float64 {
	measured := float64(measuredQ7_8) / 256.0
	return math.Pow(10, (targetLKFS-measured)/20.0)
}

// ApplyLoudnessNormalization scales every channel buffer in place by gain.
func ApplyLoudnessNormalization(planar [][]float64, gain float64) {
	for _, buf := range planar {
		for i := range buf {
			buf[i] *= gain
		}
	}
}
