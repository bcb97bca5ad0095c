// Package resolver builds a static rendering Plan from a descriptor
// database and a caller-chosen mix presentation and output layout: which
// sub-mix to render, which scalable layer each audio element decodes at,
// which demixing chain each element needs, and which renderer kind applies.
package resolver

import (
	"github.com/iamfgo/iamf/internal/descriptor"
	"github.com/iamfgo/iamf/internal/errcode"
	"github.com/iamfgo/iamf/internal/render"
)

// RendererKind selects the rendering path for one output layout.
type RendererKind uint8

const (
	RendererM2M RendererKind = iota // loudspeaker layout -> loudspeaker layout matrix
	RendererH2M                     // ambisonics -> loudspeaker layout matrix
	RendererM2B                     // loudspeaker layout -> binaural
	RendererH2B                     // ambisonics -> binaural
)

// ElementPlan is one audio element's contribution to a Plan.
type ElementPlan struct {
	AudioElement descriptor.AudioElement
	// DecodeLayer is the scalable layer index (into AudioElement.Channel.Layers)
	// the decoder should decode at: the highest layer whose channel count does
	// not exceed the output layout's. Meaningless for scene-based elements.
	DecodeLayer int
	// NeedsUpmix is true when DecodeLayer's layout has fewer channels than the
	// output layout and the element has a higher layer than DecodeLayer, so
	// the demix chain must run to reach it.
	NeedsUpmix bool
	// NeedsDownmix is true when DecodeLayer's layout has more channels than
	// the output layout needs (a single-layer element authored above the
	// target, with no lower layer to decode directly), so the demix chain's
	// Downmix must fold it down rather than rendering the extra channels
	// straight through.
	NeedsDownmix bool
	Renderer     RendererKind
	ElementMix descriptor.GainRef
	// Matrix is the static mixing matrix resolved for this element against
	// the Plan's output layout (§4.4 step 5): M2M rows are named loudspeaker
	// positions, H2M rows are the same but the input columns are ACN-ordered
	// ambisonic channels instead of ladder channels. Zero-valued (nil
	// Weights) when the output layout has no concrete channel-order table
	// (e.g. an SP-label custom speaker subset) or the element renders to
	// binaural, neither of which this matrix applies to.
	Matrix render.Matrix
}

// Plan is the fully resolved, static rendering configuration for one
// (mix presentation, output layout) pair.
type Plan struct {
	MixPresentation descriptor.MixPresentation
	Layout          descriptor.LayoutEntry
	Elements        []ElementPlan
	OutputMix       descriptor.GainRef
}

// outputChannelCount approximates the target layout's channel count for
// layer-selection purposes: sound-system and labelled-subset layouts map
// through LoudspeakerLayout's ladder; binaural targets always decode at
// the highest available layer since the binaural port needs full spatial
// information.
func outputChannelCount(t descriptor.LayoutTarget) int {
	switch t.Kind {
	case descriptor.LayoutTargetBinaural:
		return 1 << 30 // sentinel: "use the highest layer"
	case descriptor.LayoutTargetSoundSystem, descriptor.LayoutTargetSPLabel:
		return soundSystemChannelCount(t.System)
	default:
		return 0
	}
}

func soundSystemChannelCount(s descriptor.SoundSystem) int {
	switch s {
	case descriptor.SoundSystemMono:
		return 1
	case descriptor.SoundSystemA:
		return 2
	case descriptor.SoundSystemB:
		return 6
	case descriptor.SoundSystemC, descriptor.SoundSystemE:
		return 8
	case descriptor.SoundSystemD, descriptor.SoundSystemExt712:
		return 10
	case descriptor.SoundSystemJ:
		return 12
	case descriptor.SoundSystemF, descriptor.SoundSystemI:
		return 8
	case descriptor.SoundSystemG, descriptor.SoundSystemH, descriptor.SoundSystemExt916:
		return 16
	case descriptor.SoundSystemExt312:
		return 6
	default:
		return 2
	}
}

// outputChannelOrder returns the concrete per-position loudspeaker order
// for a sound-system target, or nil when t names a custom SP-label subset
// (no static per-bit speaker table is carried; see DESIGN.md) or a
// binaural target (rendered through a caller-supplied port instead of a
// matrix).
func outputChannelOrder(t descriptor.LayoutTarget) []render.Ch {
	if t.Kind != descriptor.LayoutTargetSoundSystem {
		return nil
	}
	return render.ChannelOrder(t.System)
}

// selectDecodeLayer picks the highest scalable layer whose channel count
// does not exceed maxChannels, defaulting to the lowest layer if every
// layer exceeds it (a decoder must always decode at least the base layer).
func selectDecodeLayer(layers []descriptor.ChannelLayer, maxChannels int) int {
	best := 0
	for i, l := range layers {
		if l.Layout.ChannelCount() <= maxChannels {
			best = i
		}
	}
	return best
}

func rendererFor(kind descriptor.ElementKind, target descriptor.LayoutTargetKind) RendererKind {
	binaural := target == descriptor.LayoutTargetBinaural
	scene := kind == descriptor.ElementSceneBased
	switch {
	case scene && binaural:
		return RendererH2B
	case scene && !binaural:
		return RendererH2M
	case !scene && binaural:
		return RendererM2B
	default:
		return RendererM2M
	}
}

// Build resolves a Plan for mix presentation mp rendered at the given
// layout entry, which must be one of mp.Layouts.
func Build(db *descriptor.Database, mp descriptor.MixPresentation, layout descriptor.LayoutEntry) (*Plan, error) {
	found := false
	for _, l := range mp.Layouts {
		if l.Target == layout.Target {
			found = true
			break
		}
	}
	if !found {
		return nil, errcode.New(errcode.BadArgument, "resolver.Build")
	}

	maxChannels := outputChannelCount(layout.Target)

	plan := &Plan{
		MixPresentation: mp,
		Layout:          layout,
		OutputMix:       mp.OutputMix,
	}

	for _, sme := range mp.Elements {
		ae, ok := db.AudioElement(sme.AudioElementID)
		if !ok {
			return nil, errcode.New(errcode.InvalidState, "resolver.Build")
		}
		ep := ElementPlan{
			AudioElement: ae,
			Renderer:     rendererFor(ae.Kind, layout.Target.Kind),
			ElementMix:   sme.ElementMix,
		}
		outOrder := outputChannelOrder(layout.Target)
		switch {
		case ae.Kind == descriptor.ElementChannelBased && ae.Channel != nil && len(ae.Channel.Layers) > 0:
			ep.DecodeLayer = selectDecodeLayer(ae.Channel.Layers, maxChannels)
			top := ae.Channel.Layers[len(ae.Channel.Layers)-1].Layout.ChannelCount()
			chosen := ae.Channel.Layers[ep.DecodeLayer].Layout.ChannelCount()
			ep.NeedsUpmix = chosen < top && maxChannels > chosen
			ep.NeedsDownmix = chosen > maxChannels
			if outOrder != nil {
				decodeLadder := enrichedLadderChannels(ae.Channel.Layers[ep.DecodeLayer].Layout)
				ep.Matrix = BuildM2M(decodeLadder, outOrder)
			}
		case ae.Kind == descriptor.ElementSceneBased && ae.Ambisonics != nil:
			if outOrder != nil {
				ep.Matrix = render.HOAMatrix(ae.Ambisonics.OutChannels, outOrder)
			}
		}
		plan.Elements = append(plan.Elements, ep)
	}
	return plan, nil
}

// SelectMixPresentation applies the "first in descriptor order wins"
// tie-break among every mix presentation sharing label.
func SelectMixPresentation(db *descriptor.Database, label string) (descriptor.MixPresentation, bool) {
	candidates := db.MixPresentationsByLabel(label)
	if len(candidates) == 0 {
		return descriptor.MixPresentation{}, false
	}
	return candidates[0], true
}
