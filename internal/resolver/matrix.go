package resolver

import (
	"github.com/iamfgo/iamf/internal/demix"
	"github.com/iamfgo/iamf/internal/descriptor"
	"github.com/iamfgo/iamf/internal/render"
)

// ladderSpeaker names the loudspeaker position each fully-reconstructed
// ladder channel feeds, for sound systems that carry it. A ladder channel
// absent from this table (because no sound system ever names a speaker
// for it, e.g. the transitional TL/TR/L3/R3 rungs) never contributes a
// non-zero column to a BuildM2M matrix directly; it still participates as
// an intermediate value inside demix.Chain.Downmix.
var ladderSpeaker = map[demix.Channel]render.Ch{
	demix.ChMono: render.ChL,
	demix.ChL2:   render.ChL,
	demix.ChR2:   render.ChR,
	demix.ChC:    render.ChC,
	demix.ChLFE:  render.ChLFE,
	demix.ChL5:   render.ChL,
	demix.ChR5:   render.ChR,
	demix.ChSL5:  render.ChSL,
	demix.ChSR5:  render.ChSR,
	demix.ChHL:   render.ChHL,
	demix.ChHR:   render.ChHR,
	demix.ChHFL:  render.ChHFL,
	demix.ChHFR:  render.ChHFR,
	demix.ChHBL:  render.ChHBL,
	demix.ChHBR:  render.ChHBR,
	demix.ChSL7:  render.ChSL,
	demix.ChSR7:  render.ChSR,
	demix.ChBL7:  render.ChBL,
	demix.ChBR7:  render.ChBR,
}

// enrichedLadderChannels returns every ladder channel a decoded layout can
// ultimately supply once demix.Chain.Downmix (and, where applicable,
// ExpandSurroundToSevenOne) has run: the layer's directly-decoded
// channels plus every rung Downmix derives from them. This is exactly the
// set BuildM2M needs to size a matrix's input columns, and it is static
// per decode layout — computable once in Build rather than per block.
func enrichedLadderChannels(layout descriptor.LoudspeakerLayout) []demix.Channel {
	base := demix.LadderChannels(layout)
	present := make(map[demix.Channel]bool, len(base)+12)
	for _, ch := range base {
		present[ch] = true
	}
	derivable := []demix.Channel{
		demix.ChHL, demix.ChHR,
		demix.ChSL5, demix.ChSR5,
		demix.ChTL, demix.ChTR,
		demix.ChL3, demix.ChR3,
		demix.ChL2, demix.ChR2,
		demix.ChMono,
		demix.ChSL7, demix.ChSR7, demix.ChBL7, demix.ChBR7,
	}
	for _, ch := range derivable {
		present[ch] = true
	}
	out := make([]demix.Channel, 0, len(present))
	for _, ch := range demix.AllChannels {
		if present[ch] {
			out = append(out, ch)
		}
	}
	return out
}

// targetLadderRung picks the ladder rung whose channel count matches an
// output layout's channel count, the nearest rung at or below it. Sound
// systems authored directly on the scalable ladder (A/B/D/J) land on an
// exact rung; the AOM-extended and non-ladder BS.2051 systems (C, E, F-I,
// Ext*) are approximated by whichever same-size rung is nearest — their
// back/height speaker placement can differ from the ladder's own (see
// DESIGN.md), the same approximation soundSystemChannelCount already
// documents for layer selection.
func targetLadderRung(outChannels int) descriptor.LoudspeakerLayout {
	switch {
	case outChannels <= 1:
		return descriptor.LayoutMono
	case outChannels <= 2:
		return descriptor.LayoutStereo
	case outChannels <= 6:
		return descriptor.Layout5_1
	case outChannels <= 8:
		return descriptor.Layout5_1_2
	case outChannels <= 10:
		return descriptor.Layout5_1_4
	default:
		return descriptor.Layout7_1_4
	}
}

// BuildM2M builds the static loudspeaker-to-loudspeaker mixing matrix
// (§4.4 step 5, §4.7 M2M) for an element decoding at decodeLadder's
// channel set and rendering into outOrder. The ladder rung matching
// outOrder's own size names exactly one source channel per output
// position (ladderSpeaker has no collisions within a single rung); that
// channel gets unity gain, everything else in the row stays zero. Any
// actual cross-channel reduction (e.g. 5.1 surrounds folding into a
// stereo pair) happens upstream in demix.Chain.Downmix, which derives the
// matching rung's named channels (L2/R2, Mono, ...) from whatever higher
// rung was actually decoded, before this matrix ever runs — picking more
// than one ladder rung's worth of same-named-speaker columns here would
// double-count a channel Downmix has already folded.
func BuildM2M(decodeLadder []demix.Channel, outOrder []render.Ch) render.Matrix {
	targetChannels := demix.LadderChannels(targetLadderRung(len(outOrder)))
	source := make(map[render.Ch]int, len(targetChannels))
	for _, ladderCh := range targetChannels {
		speaker, named := ladderSpeaker[ladderCh]
		if !named {
			continue
		}
		for i, dch := range decodeLadder {
			if dch == ladderCh {
				source[speaker] = i
				break
			}
		}
	}

	weights := make([][]float64, len(outOrder))
	for o, outCh := range outOrder {
		row := make([]float64, len(decodeLadder))
		if i, ok := source[outCh]; ok {
			row[i] = 1
		}
		weights[o] = row
	}
	return render.Matrix{InChannels: ladderAsCh(decodeLadder), OutChannels: outOrder, Weights: weights}
}

// ladderAsCh relabels a demix.Channel ladder as render.Ch values so it can
// populate Matrix.InChannels: both are defined-string types over the same
// underlying names, and Matrix.Apply never interprets InChannels/
// OutChannels itself (they are bookkeeping labels, not lookup keys) — only
// the positional index into Weights matters. Callers that need the
// original ladder names back (RenderBlock, assembling the `in` slice)
// convert element-wise with demix.Channel(ch).
func ladderAsCh(decodeLadder []demix.Channel) []render.Ch {
	out := make([]render.Ch, len(decodeLadder))
	for i, ch := range decodeLadder {
		out[i] = render.Ch(ch)
	}
	return out
}
