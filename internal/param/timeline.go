package param

import "github.com/iamfgo/iamf/internal/errcode"

type mixGainEntry struct {
	start, end uint64
	seg        MixGainSegment
}

type demixingEntry struct {
	start, end uint64
	seg        DemixingSegment
}

type reconGainEntry struct {
	start, end uint64
	seg        ReconGainSegment
}

// mixGainTimeline is the append-only, absolute-sample-indexed segment queue
// for one mix-gain parameter id.
type mixGainTimeline struct {
	entries []mixGainEntry
	cursor  uint64 // running total of appended intervals
	last    *mixGainEntry
}

func (tl *mixGainTimeline) append(seg MixGainSegment) {
	e := mixGainEntry{start: tl.cursor, end: tl.cursor + seg.Interval, seg: seg}
	tl.entries = append(tl.entries, e)
	tl.cursor = e.end
	tl.last = &tl.entries[len(tl.entries)-1]
}

// drop discards every entry whose end is at or before sample t, keeping the
// most recent dropped entry reachable as the "last emitted value" fallback.
func (tl *mixGainTimeline) drop(t uint64) {
	i := 0
	for i < len(tl.entries) && tl.entries[i].end <= t {
		i++
	}
	if i == 0 {
		return
	}
	tl.last = &tl.entries[i-1]
	tl.entries = tl.entries[i:]
}

func (tl *mixGainTimeline) valueAt(t uint64) (float64, error) {
	for i := range tl.entries {
		e := &tl.entries[i]
		if t >= e.start && t < e.end {
			return mixGainAnimValue(e.seg.Anim, t, e.start, e.end), nil
		}
	}
	if tl.last != nil {
		return mixGainAnimValue(tl.last.seg.Anim, tl.last.end, tl.last.start, tl.last.end), nil
	}
	return 0, errcode.New(errcode.NoParameter, "param.mixGainTimeline.valueAt")
}

func mixGainAnimValue(a MixGainAnim, t, start, end uint64) float64 {
	switch a.Kind {
	case AnimStep:
		return a.G0.Linear()
	case AnimLinear:
		frac := fraction(t, start, end)
		db := a.G0.DB() + (a.G1.DB()-a.G0.DB())*frac
		return dbToLinear(db)
	case AnimBezier:
		frac := fraction(t, start, end)
		alpha := bezierAlpha(frac, a.TCtrl)
		db := bezierValue(a.G0.DB(), a.Ctrl.DB(), a.G1.DB(), alpha)
		return dbToLinear(db)
	default:
		return 1.0
	}
}

func fraction(t, start, end uint64) float64 {
	if end <= start {
		return 0
	}
	return float64(t-start) / float64(end-start)
}

func dbToLinear(db float64) float64 { return Q7_8(db * 256.0).Linear() }

// demixingTimeline mirrors mixGainTimeline for piecewise-constant demixing
// mode segments.
type demixingTimeline struct {
	entries []demixingEntry
	cursor  uint64
	last    *demixingEntry
}

func (tl *demixingTimeline) append(seg DemixingSegment) {
	e := demixingEntry{start: tl.cursor, end: tl.cursor + seg.Interval, seg: seg}
	tl.entries = append(tl.entries, e)
	tl.cursor = e.end
	tl.last = &tl.entries[len(tl.entries)-1]
}

func (tl *demixingTimeline) drop(t uint64) {
	i := 0
	for i < len(tl.entries) && tl.entries[i].end <= t {
		i++
	}
	if i == 0 {
		return
	}
	tl.last = &tl.entries[i-1]
	tl.entries = tl.entries[i:]
}

func (tl *demixingTimeline) valueAt(t uint64) (DemixingMode, error) {
	for i := range tl.entries {
		e := &tl.entries[i]
		if t >= e.start && t < e.end {
			return e.seg.Mode, nil
		}
	}
	if tl.last != nil {
		return tl.last.seg.Mode, nil
	}
	return 0, errcode.New(errcode.NoParameter, "param.demixingTimeline.valueAt")
}

// reconGainTimeline mirrors mixGainTimeline for piecewise-constant
// recon-gain segments.
type reconGainTimeline struct {
	entries []reconGainEntry
	cursor  uint64
	last    *reconGainEntry
}

func (tl *reconGainTimeline) append(seg ReconGainSegment) {
	e := reconGainEntry{start: tl.cursor, end: tl.cursor + seg.Interval, seg: seg}
	tl.entries = append(tl.entries, e)
	tl.cursor = e.end
	tl.last = &tl.entries[len(tl.entries)-1]
}

func (tl *reconGainTimeline) drop(t uint64) {
	i := 0
	for i < len(tl.entries) && tl.entries[i].end <= t {
		i++
	}
	if i == 0 {
		return
	}
	tl.last = &tl.entries[i-1]
	tl.entries = tl.entries[i:]
}

func (tl *reconGainTimeline) valueAt(t uint64) (ReconGainSegment, error) {
	for i := range tl.entries {
		e := &tl.entries[i]
		if t >= e.start && t < e.end {
			return e.seg, nil
		}
	}
	if tl.last != nil {
		return tl.last.seg, nil
	}
	return ReconGainSegment{}, errcode.New(errcode.NoParameter, "param.reconGainTimeline.valueAt")
}
