package render

import "testing"

func TestLFEFilter_AttenuatesHighFrequency(t *testing.T) {
	const sampleRate = 48000.0
	f := NewLFEFilter(sampleRate, DefaultLFECutoffHz)

	n := 4800
	buf := make([]float64, n)
	for i := range buf {
		// 8kHz tone, well above the 120Hz cutoff.
		buf[i] = 1.0
		if i%6 < 3 {
			buf[i] = -1.0
		}
	}
	inputPeak := 1.0
	f.Apply(buf)

	var outputPeak float64
	for _, v := range buf[len(buf)/2:] {
		if v > outputPeak {
			outputPeak = v
		}
		if -v > outputPeak {
			outputPeak = -v
		}
	}
	if outputPeak >= inputPeak*0.5 {
		t.Fatalf("high-frequency content not attenuated: peak=%v", outputPeak)
	}
}

func TestLFEFilter_PassesDC(t *testing.T) {
	f := NewLFEFilter(48000, DefaultLFECutoffHz)
	buf := make([]float64, 2000)
	for i := range buf {
		buf[i] = 1.0
	}
	f.Apply(buf)
	if buf[len(buf)-1] < 0.9 {
		t.Fatalf("DC not passed through: settled value = %v", buf[len(buf)-1])
	}
}
