package iamf

import (
	"github.com/iamfgo/iamf/internal/codec"
	"github.com/iamfgo/iamf/internal/demix"
	"github.com/iamfgo/iamf/internal/descriptor"
	"github.com/iamfgo/iamf/internal/errcode"
	"github.com/iamfgo/iamf/internal/obu"
	"github.com/iamfgo/iamf/internal/output"
	"github.com/iamfgo/iamf/internal/param"
	"github.com/iamfgo/iamf/internal/render"
	"github.com/iamfgo/iamf/internal/resolver"
)

// elementState is the per-audio-element decode state a Decoder carries
// across frames: the codec port decoding its substreams and the demixing
// chain reconstructing the scalable ladder. The sample cursor lives on
// Decoder itself.
type elementState struct {
	port    codec.Port
	chain   *demix.Chain
	lastErr error
}

// Decoder is the public, stable entry point into this module: create,
// configure, set the codec/output wiring, feed frames, pull rendered
// output, destroy.
type Decoder struct {
	db       *descriptor.Database
	params   *param.Engine
	elements map[uint64]*elementState // keyed by AudioElement.ID
	plan     *resolver.Plan
	lfe      *render.LFEFilter
	peak     *output.TruePeakMeter
	sampleT  uint64
	closed   bool
}

// New returns an empty, unconfigured Decoder. Feed descriptor OBUs via
// Configure before decoding any audio frame.
func New() *Decoder {
	return &Decoder{
		db:       descriptor.NewDatabase(),
		params:   param.NewEngine(),
		elements: make(map[uint64]*elementState),
	}
}

// Configure feeds a span of descriptor OBUs (CodecConfig, AudioElement,
// MixPresentation, IAMFVersion) into the decoder's database. It may be
// called repeatedly as more descriptor bytes arrive; redundant OBUs are
// accepted as no-ops per the byte-exact dedup rule, and a framing error
// partway through is returned so the caller can append more bytes and
// retry the unconsumed remainder.
func (d *Decoder) Configure(data []byte) (consumed int, err error) {
	if d.closed {
		return 0, errcode.New(errcode.InvalidState, "iamf.Decoder.Configure")
	}
	for len(data) > 0 {
		o, rerr := obu.Read(data)
		if rerr != nil {
			return consumed, rerr
		}
		if derr := d.applyDescriptorOBU(o); derr != nil {
			return consumed, derr
		}
		consumed += o.Size
		data = data[o.Size:]
	}
	return consumed, nil
}

func (d *Decoder) applyDescriptorOBU(o obu.OBU) error {
	switch o.Type {
	case obu.TypeIAMFVersion:
		v, err := descriptor.ParseVersion(o.Payload)
		if err != nil {
			return err
		}
		return d.db.SetVersion(v)
	case obu.TypeCodecConfig:
		cfg, err := descriptor.ParseCodecConfig(o.Payload)
		if err != nil {
			return err
		}
		return d.db.AddCodecConfig(cfg, o.Payload)
	case obu.TypeAudioElement:
		ae, err := descriptor.ParseAudioElement(o.Payload)
		if err != nil {
			return err
		}
		if err := d.db.AddAudioElement(ae, o.Payload); err != nil {
			return err
		}
		if _, ok := d.elements[ae.ID]; !ok {
			d.elements[ae.ID] = &elementState{}
		}
		return nil
	case obu.TypeMixPresentation:
		mp, err := descriptor.ParseMixPresentation(o.Payload)
		if err != nil {
			return err
		}
		return d.db.AddMixPresentation(mp, o.Payload)
	case obu.TypeTemporalDelimiter, obu.TypeAudioFrame, obu.TypeAudioFrameID0, obu.TypeParameterBlock:
		// Not a descriptor OBU; Configure only consumes the descriptor set.
		return errcode.New(errcode.BadArgument, "iamf.Decoder.Configure")
	default:
		return errcode.New(errcode.InvalidValue, "iamf.Decoder.Configure")
	}
}

// BindCodecPort attaches the decoder implementation for one audio
// element's codec config. Required before any audio frame for that
// element can be decoded.
func (d *Decoder) BindCodecPort(elementID uint64, port codec.Port) error {
	ae, ok := d.db.AudioElement(elementID)
	if !ok {
		return errcode.New(errcode.BadArgument, "iamf.Decoder.BindCodecPort")
	}
	cfg, ok := d.db.CodecConfig(ae.CodecConfigID)
	if !ok {
		return errcode.New(errcode.InvalidState, "iamf.Decoder.BindCodecPort")
	}
	if err := port.Init(cfg.DecoderSpecificBytes); err != nil {
		return err
	}
	st := d.elements[elementID]
	if st == nil {
		st = &elementState{}
		d.elements[elementID] = st
	}
	st.port = port
	return nil
}

// RefreshDemixChain re-derives the demix chain an element uses for its
// current block from the live demixing-mode parameter timeline.
// RenderBlock calls this once per block for every M2M element whose
// ElementPlan.NeedsUpmix or NeedsDownmix is set; the chain's w-index state
// persists across calls for the same element while the mode is unchanged.
func (d *Decoder) RefreshDemixChain(elementID uint64) (*demix.Chain, error) {
	st := d.elements[elementID]
	if st == nil {
		return nil, errcode.New(errcode.BadArgument, "iamf.Decoder.RefreshDemixChain")
	}
	ae, ok := d.db.AudioElement(elementID)
	if !ok {
		return nil, errcode.New(errcode.InvalidState, "iamf.Decoder.RefreshDemixChain")
	}
	for _, p := range ae.ParameterDefs {
		if p.Type != descriptor.ParamDemixingMode {
			continue
		}
		mode, err := d.params.DemixingModeAt(p.ID, d.sampleT)
		if err != nil {
			if st.chain != nil {
				return st.chain, nil
			}
			return nil, err
		}
		factors, err := param.ModeFactors(mode)
		if err != nil {
			return nil, err
		}
		if st.chain != nil && st.chain.Factors == factors {
			// Same mode as last block: keep the chain so its w-index state
			// carries forward instead of resetting to MinWIndex.
			return st.chain, nil
		}
		chain, err := demix.NewChain(mode)
		if err != nil {
			return nil, err
		}
		st.chain = chain
		return chain, nil
	}
	return nil, errcode.New(errcode.NoParameter, "iamf.Decoder.RefreshDemixChain")
}

// SelectOutput resolves which mix presentation and output layout every
// later Render call targets, applying the "first in descriptor order
// wins" tie-break when multiple mix presentations share label.
func (d *Decoder) SelectOutput(label string, target descriptor.LayoutTarget) error {
	mp, ok := resolver.SelectMixPresentation(d.db, label)
	if !ok {
		return errcode.New(errcode.BadArgument, "iamf.Decoder.SelectOutput")
	}
	var layout descriptor.LayoutEntry
	found := false
	for _, l := range mp.Layouts {
		if l.Target == target {
			layout = l
			found = true
			break
		}
	}
	if !found {
		return errcode.New(errcode.BadArgument, "iamf.Decoder.SelectOutput")
	}
	plan, err := resolver.Build(d.db, mp, layout)
	if err != nil {
		return err
	}
	d.plan = plan
	d.lfe = nil // re-derived lazily in RenderBlock once a codec port's rate is known
	d.peak = output.NewTruePeakMeter()
	return nil
}

// outputSampleRate returns the actual decode sample rate of whichever
// bound codec port backs the plan's elements, falling back to 48000 only
// when no port is bound yet (the rate is then re-derived once one is).
func (d *Decoder) outputSampleRate() uint32 {
	if d.plan != nil {
		for _, ep := range d.plan.Elements {
			if st := d.elements[ep.AudioElement.ID]; st != nil && st.port != nil {
				if sr := st.port.SampleRate(); sr != 0 {
					return sr
				}
			}
		}
	}
	return 48000
}

// Params returns the decoder's live parameter engine. To add one
// parameter-block OBU's segment(s) to the timeline for its parameter id,
// callers parse the OBU payload against the matching ParameterBase (from
// the owning AudioElement or MixPresentation's GainRef), construct the
// appropriate param segment type, and call the matching Append* method on
// the returned engine.
func (d *Decoder) Params() *param.Engine { return d.params }

// Close releases the codec ports this decoder owns. The Decoder must not
// be used afterward.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	var firstErr error
	for _, st := range d.elements {
		if st.port == nil {
			continue
		}
		if err := st.port.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
