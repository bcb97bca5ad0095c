// Package param holds per-parameter-id timelines (mix-gain, demixing-mode,
// recon-gain) and interpolates them at an arbitrary sample position.
package param

import "math"

// Q7_8 is a fixed-point dB value: the integer value divided by 256 is the
// quantity in decibels.
type Q7_8 int16

// DB returns the value as a floating-point decibel quantity.
func (q Q7_8) DB() float64 { return float64(q) / 256.0 }

// Linear converts a Q7.8 dB value to a linear amplitude scalar.
func (q Q7_8) Linear() float64 { return math.Pow(10, q.DB()/20.0) }

// AnimKind distinguishes the three mix-gain animation shapes.
type AnimKind uint8

const (
	AnimStep AnimKind = iota
	AnimLinear
	AnimBezier
)

// MixGainAnim is a tagged union over Step/Linear/Bezier mix-gain animation,
// all in Q7.8 dB.
type MixGainAnim struct {
	Kind AnimKind

	G0 Q7_8 // Step, Linear, Bezier
	G1 Q7_8 // Linear, Bezier

	Ctrl  Q7_8    // Bezier control-point gain
	TCtrl float64 // Bezier control-point time fraction, in [0,1]
}

// MixGainSegment is one interval of a mix-gain timeline.
type MixGainSegment struct {
	Interval uint64
	Anim     MixGainAnim
}

// DemixingMode indexes the closed demix-factor table. Modes 3 and 7 are
// reserved and rejected by the table lookup.
type DemixingMode uint8

// DemixingSegment is one interval of a demixing-mode timeline.
type DemixingSegment struct {
	Interval uint64
	Mode     DemixingMode
}

// ReconGainSegment is one interval of a recon-gain timeline: a bitmap of
// which output channels carry a scalar, and the Q0.8 scalars themselves in
// bitmap order (least-significant bit first).
type ReconGainSegment struct {
	Interval uint64
	Bitmap   uint32
	Scalars  []uint8 // Q0.8, one per set bit in Bitmap, value/256.0 in [0,1]
}
