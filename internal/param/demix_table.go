package param

import "github.com/iamfgo/iamf/internal/errcode"

// MixFactors are the closed-form demixing coefficients for one demixing
// mode: the same (alpha, beta, gamma, delta) used throughout the
// channel-ladder reconstruction formulas, plus the sign the mode applies
// to the running w-index step.
type MixFactors struct {
	Alpha, Beta, Gamma, Delta float64
	WSign                     int // +1 or -1
}

// mixFactorsTable is indexed directly by DemixingMode; modes 3 and 7 are
// reserved and carry the zero value (rejected by ModeFactors).
var mixFactorsTable = [8]MixFactors{
	{Alpha: 1.0, Beta: 1.0, Gamma: 0.707, Delta: 0.707, WSign: -1},
	{Alpha: 0.707, Beta: 0.707, Gamma: 0.707, Delta: 0.707, WSign: -1},
	{Alpha: 1.0, Beta: 0.866, Gamma: 0.866, Delta: 0.866, WSign: -1},
	{}, // reserved
	{Alpha: 1.0, Beta: 1.0, Gamma: 0.707, Delta: 0.707, WSign: 1},
	{Alpha: 0.707, Beta: 0.707, Gamma: 0.707, Delta: 0.707, WSign: 1},
	{Alpha: 1.0, Beta: 0.866, Gamma: 0.866, Delta: 0.866, WSign: 1},
	{}, // reserved
}

// ModeFactors looks up the demix factors for mode, rejecting the two
// reserved modes and anything outside the table.
func ModeFactors(mode DemixingMode) (MixFactors, error) {
	if mode == 3 || mode == 7 || int(mode) >= len(mixFactorsTable) {
		return MixFactors{}, errcode.New(errcode.InvalidValue, "param.ModeFactors")
	}
	return mixFactorsTable[mode], nil
}

// MinWIndex and MaxWIndex bound the running w-index state: the weight
// state walks this range one step per demixed block, in the direction
// given by the active mode's WSign.
const (
	MinWIndex = 0
	MaxWIndex = 10
)

// GetW maps a w-index to its fractional weight in [0,1].
func GetW(idx int) float64 {
	if idx < MinWIndex {
		idx = MinWIndex
	}
	if idx > MaxWIndex {
		idx = MaxWIndex
	}
	return float64(idx) / float64(MaxWIndex)
}

// StepW advances idx by one step in the direction of sign, clamped to
// [MinWIndex, MaxWIndex].
func StepW(idx, sign int) int {
	next := idx + sign
	if next < MinWIndex {
		return MinWIndex
	}
	if next > MaxWIndex {
		return MaxWIndex
	}
	return next
}
