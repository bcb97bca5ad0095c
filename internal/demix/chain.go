package demix

import "github.com/iamfgo/iamf/internal/param"

// Chain reconstructs the channel ladder for one audio element across
// consecutive blocks, carrying the w-index state between calls the way a
// decoder carries frame-to-frame filter state.
type Chain struct {
	Factors param.MixFactors
	wIndex  int
	wSign   int
}

// NewChain builds a Chain for the given demixing mode, with the w-index
// starting at its minimum and stepping in the mode's sign direction on
// each StepW call.
func NewChain(mode param.DemixingMode) (*Chain, error) {
	mf, err := param.ModeFactors(mode)
	if err != nil {
		return nil, err
	}
	return &Chain{Factors: mf, wIndex: param.MinWIndex, wSign: mf.WSign}, nil
}

// StepW advances the running w-index by one block and returns the
// resulting weight in [0,1].
func (c *Chain) StepW() float64 {
	c.wIndex = param.StepW(c.wIndex, c.wSign)
	return param.GetW(c.wIndex)
}

// W returns the current w-weight without advancing it.
func (c *Chain) W() float64 { return param.GetW(c.wIndex) }

func mul(dst []float64, src []float64, g float64) {
	for i := range dst {
		dst[i] = src[i] * g
	}
}

func addScaled(dst, src []float64, g float64) {
	for i := range dst {
		dst[i] += src[i] * g
	}
}

// Downmix derives every lower-ladder channel reachable from whatever rung
// full already carries, following the closed-form dependency chain:
//
//	HL  = HFL + delta*HBL,        HR  = HFR + delta*HBR
//	TL  = HL  + gamma*w*SL5,      TR  = HR  + gamma*w*SR5
//	SL5 = alpha*SL7 + alpha*BL7,  SR5 = alpha*SR7 + alpha*BR7
//	L3  = L5  + beta*SL5,         R3  = R5  + beta*SR5
//	L2  = L3  + 0.707*C,          R2  = R3  + 0.707*C
//	Mono = 0.5*L2 + 0.5*R2
//
// Unlike a strict one-pass reduction from a full 7.1.4 source, a decode
// layer may already carry an intermediate rung directly (e.g. an element
// decoded at 5.1 already has SL5/SR5, never SL7/BL7): recomputing such a
// channel from its absent upper-rung dependencies would silently zero it.
// So each derived channel is taken from full unchanged when full already
// has it, and only computed from its dependency formula otherwise. full's
// buffers must already be allocated with n samples.
func (c *Chain) Downmix(full Buffers, n int) Buffers {
	f := c.Factors
	w := c.W()

	get := func(ch Channel) []float64 {
		if b, ok := full[ch]; ok {
			return b
		}
		return make([]float64, n)
	}

	derive := func(ch Channel, compute func() []float64) []float64 {
		if b, ok := full[ch]; ok {
			return b
		}
		return compute()
	}

	hl := derive(ChHL, func() []float64 {
		hl := make([]float64, n)
		copy(hl, get(ChHFL))
		addScaled(hl, get(ChHBL), f.Delta)
		return hl
	})
	hr := derive(ChHR, func() []float64 {
		hr := make([]float64, n)
		copy(hr, get(ChHFR))
		addScaled(hr, get(ChHBR), f.Delta)
		return hr
	})

	sl5 := derive(ChSL5, func() []float64 {
		sl5 := make([]float64, n)
		mul(sl5, get(ChSL7), f.Alpha)
		addScaled(sl5, get(ChBL7), f.Alpha)
		return sl5
	})
	sr5 := derive(ChSR5, func() []float64 {
		sr5 := make([]float64, n)
		mul(sr5, get(ChSR7), f.Alpha)
		addScaled(sr5, get(ChBR7), f.Alpha)
		return sr5
	})

	tl := derive(ChTL, func() []float64 {
		tl := make([]float64, n)
		copy(tl, hl)
		addScaled(tl, sl5, f.Gamma*w)
		return tl
	})
	tr := derive(ChTR, func() []float64 {
		tr := make([]float64, n)
		copy(tr, hr)
		addScaled(tr, sr5, f.Gamma*w)
		return tr
	})

	l3 := derive(ChL3, func() []float64 {
		l3 := make([]float64, n)
		copy(l3, get(ChL5))
		addScaled(l3, sl5, f.Beta)
		return l3
	})
	r3 := derive(ChR3, func() []float64 {
		r3 := make([]float64, n)
		copy(r3, get(ChR5))
		addScaled(r3, sr5, f.Beta)
		return r3
	})

	l2 := derive(ChL2, func() []float64 {
		l2 := make([]float64, n)
		copy(l2, l3)
		addScaled(l2, get(ChC), 0.707)
		return l2
	})
	r2 := derive(ChR2, func() []float64 {
		r2 := make([]float64, n)
		copy(r2, r3)
		addScaled(r2, get(ChC), 0.707)
		return r2
	})

	mono := derive(ChMono, func() []float64 {
		mono := make([]float64, n)
		for i := 0; i < n; i++ {
			mono[i] = 0.5*l2[i] + 0.5*r2[i]
		}
		return mono
	})

	out := Buffers{
		ChHL: hl, ChHR: hr,
		ChSL5: sl5, ChSR5: sr5,
		ChTL: tl, ChTR: tr,
		ChL3: l3, ChR3: r3,
		ChL2: l2, ChR2: r2,
		ChMono: mono,
	}
	for ch, b := range full {
		out[ch] = b
	}
	return out
}

// ExpandSurroundToSevenOne derives the two extra 7.1-layout side/back
// channels from a decoded 5.1-layout surround channel when no additional
// substream carries them: the surround signal is kept as the side channel
// unchanged and the back channel is synthesised as the complementary
// (1-alpha) fraction of it.
func (c *Chain) ExpandSurroundToSevenOne(sl5, sr5 []float64) (sl7, sr7, bl7, br7 []float64) {
	n := len(sl5)
	alpha := c.Factors.Alpha
	sl7 = make([]float64, n)
	sr7 = make([]float64, n)
	bl7 = make([]float64, n)
	br7 = make([]float64, n)
	copy(sl7, sl5)
	copy(sr7, sr5)
	for i := 0; i < n; i++ {
		bl7[i] = sl5[i] * (1 - alpha)
		br7[i] = sr5[i] * (1 - alpha)
	}
	return sl7, sr7, bl7, br7
}

// ApplyReconGain scales each named channel buffer in place by its
// linear recon-gain scalar. Channels absent from scalars are untouched.
func ApplyReconGain(buf Buffers, scalars map[Channel]float64) {
	for ch, g := range scalars {
		b, ok := buf[ch]
		if !ok {
			continue
		}
		for i := range b {
			b[i] *= g
		}
	}
}
