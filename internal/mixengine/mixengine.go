// Package mixengine sums each mix presentation's rendered elements into
// the final output signal, applying the element and output mix gains.
package mixengine

import (
	"github.com/iamfgo/iamf/internal/descriptor"
	"github.com/iamfgo/iamf/internal/param"
)

// GainAt resolves a GainRef's linear gain at sample position t: the
// parameter engine's timeline if one exists for the id, falling back to
// the descriptor's default_gain_q7_8 when no parameter block has been
// received yet (NoParameter).
func GainAt(eng *param.Engine, ref descriptor.GainRef, t uint64) float64 {
	g, err := eng.MixGainAt(ref.ParamID, t)
	if err != nil {
		return param.Q7_8(ref.DefaultGainQ7_8).Linear()
	}
	return g
}

// ElementContribution is one element's rendered signal awaiting summation,
// already at the output layout's channel order and sample rate.
type ElementContribution struct {
	MixGain descriptor.GainRef
	Planar  [][]float64 // one buffer per output channel, length n
}

// Sum computes y[ch][t] = output_mix_gain(t) * sum_element(element_mix_gain(t) * element[ch][t])
// for n samples starting at absolute sample position startT, writing into
// out (pre-allocated, one buffer per channel, length >= n). Contributions
// with a shorter buffer than n are zero-padded and reported in shortfalls,
// keyed by their index in elements.
func Sum(eng *param.Engine, outputMix descriptor.GainRef, elements []ElementContribution, out [][]float64, startT uint64, n int) (shortfalls map[int]int) {
	nChannels := len(out)
	for _, buf := range out {
		for i := range buf {
			buf[i] = 0
		}
	}

	for ei, el := range elements {
		if len(el.Planar) != nChannels {
			continue
		}
		for ch := 0; ch < nChannels; ch++ {
			src := el.Planar[ch]
			short := n - len(src)
			if short > 0 {
				if shortfalls == nil {
					shortfalls = make(map[int]int)
				}
				shortfalls[ei] = short
			}
			for t := 0; t < n; t++ {
				var s float64
				if t < len(src) {
					s = src[t]
				}
				g := GainAt(eng, el.MixGain, startT+uint64(t))
				out[ch][t] += g * s
			}
		}
	}

	for t := 0; t < n; t++ {
		g := GainAt(eng, outputMix, startT+uint64(t))
		for ch := 0; ch < nChannels; ch++ {
			out[ch][t] *= g
		}
	}
	return shortfalls
}
