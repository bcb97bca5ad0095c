// Package demix reconstructs the scalable channel-layout ladder
// (Mono ⊂ Stereo ⊂ 5.1 ⊂ 5.1.2 ⊂ 5.1.4 ⊂ 7.1.4) using the closed-form
// per-transition expressions, parameterised by a demixing mode's mix
// factors and a running w-state, plus recon-gain compensation.
package demix

// Channel names the ladder's named signal positions. Buffers are keyed by
// these names rather than a fixed channel index, since not every layout
// carries every channel.
type Channel string

const (
	ChMono Channel = "Mono"
	ChL2   Channel = "L2"
	ChR2   Channel = "R2"
	ChL3   Channel = "L3"
	ChR3   Channel = "R3"
	ChC    Channel = "C"
	ChLFE  Channel = "LFE"
	ChL5   Channel = "L5"
	ChR5   Channel = "R5"
	ChSL5  Channel = "SL5"
	ChSR5  Channel = "SR5"
	ChTL   Channel = "TL"
	ChTR   Channel = "TR"
	ChHL   Channel = "HL"
	ChHR   Channel = "HR"
	ChHFL  Channel = "HFL"
	ChHFR  Channel = "HFR"
	ChHBL  Channel = "HBL"
	ChHBR  Channel = "HBR"
	ChSL7  Channel = "SL7"
	ChSR7  Channel = "SR7"
	ChBL7  Channel = "BL7"
	ChBR7  Channel = "BR7"
)

// Buffers is one rendering block's worth of per-channel sample slices.
type Buffers map[Channel][]float64
