package param

import "github.com/iamfgo/iamf/internal/errcode"

var noParameterErr = errcode.New(errcode.NoParameter, "param.Engine")

// Engine holds every parameter timeline in a stream, keyed by parameter id
// and separated by the domain each timeline drives (mix-gain, demixing
// mode, recon-gain). A single id space is shared across all three kinds;
// callers look a given id up in the timeline map matching its declared
// ParameterBase.Type.
type Engine struct {
	mixGain  map[uint64]*mixGainTimeline
	demixing map[uint64]*demixingTimeline
	reconGain map[uint64]*reconGainTimeline
}

// NewEngine returns an empty parameter engine.
func NewEngine() *Engine {
	return &Engine{
		mixGain:   make(map[uint64]*mixGainTimeline),
		demixing:  make(map[uint64]*demixingTimeline),
		reconGain: make(map[uint64]*reconGainTimeline),
	}
}

// AppendMixGain appends a segment to id's mix-gain timeline, creating the
// timeline on first use.
func (e *Engine) AppendMixGain(id uint64, seg MixGainSegment) {
	tl := e.mixGain[id]
	if tl == nil {
		tl = &mixGainTimeline{}
		e.mixGain[id] = tl
	}
	tl.append(seg)
}

// AppendDemixing appends a segment to id's demixing-mode timeline.
func (e *Engine) AppendDemixing(id uint64, seg DemixingSegment) {
	tl := e.demixing[id]
	if tl == nil {
		tl = &demixingTimeline{}
		e.demixing[id] = tl
	}
	tl.append(seg)
}

// AppendReconGain appends a segment to id's recon-gain timeline.
func (e *Engine) AppendReconGain(id uint64, seg ReconGainSegment) {
	tl := e.reconGain[id]
	if tl == nil {
		tl = &reconGainTimeline{}
		e.reconGain[id] = tl
	}
	tl.append(seg)
}

// MixGainAt returns the linear amplitude for parameter id at absolute
// sample position t.
func (e *Engine) MixGainAt(id uint64, t uint64) (float64, error) {
	tl := e.mixGain[id]
	if tl == nil {
		return valueAtMissing[float64]()
	}
	return tl.valueAt(t)
}

// DemixingModeAt returns the demixing mode for parameter id at t.
func (e *Engine) DemixingModeAt(id uint64, t uint64) (DemixingMode, error) {
	tl := e.demixing[id]
	if tl == nil {
		return valueAtMissing[DemixingMode]()
	}
	return tl.valueAt(t)
}

// ReconGainAt returns the recon-gain segment active for parameter id at t.
func (e *Engine) ReconGainAt(id uint64, t uint64) (ReconGainSegment, error) {
	tl := e.reconGain[id]
	if tl == nil {
		return valueAtMissing[ReconGainSegment]()
	}
	return tl.valueAt(t)
}

// DropBefore discards every consumed segment (entirely before t) across
// every timeline, for every parameter id, to bound timeline memory.
// Nothing in this module calls it: Decoder.RenderBlock does not drop
// consumed segments, so timelines grow until a caller invokes it.
func (e *Engine) DropBefore(t uint64) {
	for _, tl := range e.mixGain {
		tl.drop(t)
	}
	for _, tl := range e.demixing {
		tl.drop(t)
	}
	for _, tl := range e.reconGain {
		tl.drop(t)
	}
}

func valueAtMissing[V any]() (V, error) {
	var zero V
	return zero, noParameterErr
}
