package iamf

import (
	"github.com/iamfgo/iamf/internal/demix"
	"github.com/iamfgo/iamf/internal/descriptor"
	"github.com/iamfgo/iamf/internal/errcode"
	"github.com/iamfgo/iamf/internal/mixengine"
	"github.com/iamfgo/iamf/internal/output"
	"github.com/iamfgo/iamf/internal/render"
	"github.com/iamfgo/iamf/internal/resolver"
)

// PendingFrame holds one audio element's already-decoded channel buffers
// for the block about to be rendered. A caller drives decode (via the
// element's bound codec.Port) and hands the resulting buffers in here,
// named either by the decode layer's ladder position (channel-based
// elements) or in raw ambisonic transmission order (scene-based
// elements); RenderBlock itself runs the demix chain and the M2M/H2M
// matrix, matching the injected-port design of internal/codec.
type PendingFrame struct {
	ElementID uint64
	// Channels holds one buffer per ladder channel (internal/demix.Channel)
	// this element's decode layer directly produces, length == n. Used for
	// channel-based (M2M/M2B) elements; ignored for scene-based ones.
	Channels map[demix.Channel][]float64
	// Ambisonics holds the decoded substreams in the stream's transmission
	// order (not yet ACN-reordered), length == n each. Used for scene-based
	// (H2M/H2B) elements; ignored for channel-based ones.
	Ambisonics [][]float64
}

// RenderBlock mixes n samples starting at the decoder's current sample
// cursor from the supplied per-element frames, according to the Plan
// built by SelectOutput, discards trimStart/trimEnd samples from the
// mixed result (§4.9), and returns interleaved integer PCM at depth.
// Elements present in the Plan but missing from frames are treated as
// silence for this block (matching "fewer samples than the frame" zero
// padding, generalized to "frame absent entirely"). d's sample cursor
// always advances by the full, untrimmed n, since parameter timelines are
// keyed to the stream's absolute sample position, not the trimmed output.
func (d *Decoder) RenderBlock(frames []PendingFrame, n int, trimStart, trimEnd uint64, depth output.BitDepth) ([]int64, error) {
	if d.plan == nil {
		return nil, errcode.New(errcode.InvalidState, "iamf.Decoder.RenderBlock")
	}
	target := d.plan.Layout.Target
	if target.Kind == descriptor.LayoutTargetBinaural {
		// Binaural targets render each element's planar signal straight
		// through a BinauralPort, bypassing the loudspeaker matrix entirely;
		// not wired here since the port is caller-supplied per internal/render.
		return nil, errcode.New(errcode.Unimplemented, "iamf.Decoder.RenderBlock")
	}

	byElement := make(map[uint64]PendingFrame, len(frames))
	for _, f := range frames {
		byElement[f.ElementID] = f
	}

	order := render.ChannelOrder(target.System)
	if order == nil {
		return nil, errcode.New(errcode.UnsupportedProfile, "iamf.Decoder.RenderBlock")
	}

	contributions := make([]mixengine.ElementContribution, 0, len(d.plan.Elements))
	for _, ep := range d.plan.Elements {
		planar := make([][]float64, len(order))
		for i := range planar {
			planar[i] = make([]float64, n)
		}
		pf, ok := byElement[ep.AudioElement.ID]
		if ok && ep.Matrix.Weights != nil {
			switch ep.Renderer {
			case resolver.RendererM2M:
				in := d.assembleM2MInput(ep, pf, n)
				ep.Matrix.Apply(in, planar, n)
			case resolver.RendererH2M:
				numACN := len(ep.Matrix.InChannels)
				acn := render.ReorderToACN(pf.Ambisonics, ambisonicsMapping(ep.AudioElement), numACN)
				for i, buf := range acn {
					if buf == nil {
						acn[i] = make([]float64, n)
					}
				}
				ep.Matrix.Apply(acn, planar, n)
			}
		}
		contributions = append(contributions, mixengine.ElementContribution{
			MixGain: ep.ElementMix,
			Planar:  planar,
		})
	}

	out := make([][]float64, len(order))
	for i := range out {
		out[i] = make([]float64, n)
	}
	mixengine.Sum(d.params, d.plan.OutputMix, contributions, out, d.sampleT, n)

	if idx := render.LFEIndex(order); idx >= 0 {
		if d.lfe == nil {
			d.lfe = render.NewLFEFilter(float64(d.outputSampleRate()), render.DefaultLFECutoffHz)
		}
		d.lfe.Apply(out[idx])
	}

	d.sampleT += uint64(n)

	trimmed := output.ApplyTrim(out, trimStart, trimEnd)

	for _, buf := range trimmed {
		for _, s := range buf {
			d.peak.Next(s)
		}
	}

	quantized := output.QuantizePlanar(trimmed, depth)
	return output.Interleave(quantized), nil
}

// ambisonicsMapping returns ae's transmitted-channel-to-ACN mapping, or
// nil for a channel-based element (ReorderToACN then leaves every ACN
// slot unmapped, which RenderBlock zero-fills).
func ambisonicsMapping(ae descriptor.AudioElement) []byte {
	if ae.Ambisonics == nil {
		return nil
	}
	return ae.Ambisonics.Mapping
}

// assembleM2MInput builds the per-column input buffers an ElementPlan's
// M2M matrix expects: the element's directly-decoded ladder channels,
// enriched by the demix chain (upmix/downmix derivation plus recon-gain
// compensation) wherever the element's decode layer doesn't already carry
// a given rung directly.
func (d *Decoder) assembleM2MInput(ep resolver.ElementPlan, pf PendingFrame, n int) [][]float64 {
	full := make(demix.Buffers, len(pf.Channels))
	for ch, buf := range pf.Channels {
		full[ch] = buf
	}

	if ep.NeedsUpmix || ep.NeedsDownmix {
		if chain, err := d.RefreshDemixChain(ep.AudioElement.ID); err == nil {
			if ep.NeedsUpmix {
				// Reaching for more channels than were decoded: synthesize the
				// 7.1 back pair from the decoded 5.1 surrounds before folding
				// the rest of the ladder, per §4.6's "no additional substream
				// carries them" case.
				if _, hasSL5 := full[demix.ChSL5]; hasSL5 {
					if _, hasSL7 := full[demix.ChSL7]; !hasSL7 {
						sl7, sr7, bl7, br7 := chain.ExpandSurroundToSevenOne(full[demix.ChSL5], full[demix.ChSR5])
						full[demix.ChSL7], full[demix.ChSR7] = sl7, sr7
						full[demix.ChBL7], full[demix.ChBR7] = bl7, br7
					}
				}
			}
			chain.StepW()
			full = chain.Downmix(full, n)
			if scalars := d.reconGainScalars(ep.AudioElement); scalars != nil {
				demix.ApplyReconGain(full, scalars)
			}
		}
	}

	in := make([][]float64, len(ep.Matrix.InChannels))
	for i, ch := range ep.Matrix.InChannels {
		if buf, ok := full[demix.Channel(ch)]; ok {
			in[i] = buf
		} else {
			in[i] = make([]float64, n)
		}
	}
	return in
}

// reconGainBitOrder names, in bitmap-bit order (least-significant first),
// the ladder channel each ReconGainSegment.Bitmap bit/Scalars entry
// compensates, following the scalable ladder's own growth order (§4.6):
// lower layers' channels first, each new layer's additions appended.
var reconGainBitOrder = []demix.Channel{
	demix.ChL5, demix.ChR5, demix.ChC, demix.ChLFE, demix.ChSL5, demix.ChSR5,
	demix.ChHL, demix.ChHR,
	demix.ChHFL, demix.ChHFR, demix.ChHBL, demix.ChHBR,
}

// reconGainScalars looks up ae's live recon-gain segment (if any) and
// converts its Q0.8 scalars, packed densely in bitmap-bit order, into a
// map keyed by the ladder channel each one compensates.
func (d *Decoder) reconGainScalars(ae descriptor.AudioElement) map[demix.Channel]float64 {
	for _, p := range ae.ParameterDefs {
		if p.Type != descriptor.ParamReconGain {
			continue
		}
		seg, err := d.params.ReconGainAt(p.ID, d.sampleT)
		if err != nil {
			return nil
		}
		out := make(map[demix.Channel]float64, len(seg.Scalars))
		si := 0
		for bit, ch := range reconGainBitOrder {
			if seg.Bitmap&(1<<uint(bit)) == 0 {
				continue
			}
			if si >= len(seg.Scalars) {
				break
			}
			out[ch] = float64(seg.Scalars[si]) / 256.0
			si++
		}
		return out
	}
	return nil
}

// TruePeak returns the running true-peak estimate across every rendered
// block since the last SelectOutput call.
func (d *Decoder) TruePeak() float64 {
	if d.peak == nil {
		return 0
	}
	return d.peak.Peak()
}
