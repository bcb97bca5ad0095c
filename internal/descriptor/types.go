// Package descriptor implements the IAMF descriptor object model: typed,
// ID-keyed records parsed from codec-config, audio-element and
// mix-presentation OBUs. Cyclic references (AudioElement -> CodecConfig,
// MixPresentation -> AudioElement) are resolved by ID lookup through a
// Database rather than held as pointers, so downstream components can be
// reset without chasing live references.
package descriptor

// Profile is the IAMF primary/additional profile declared by the single
// IAMFVersion descriptor that must precede all others in a stream.
type Profile uint8

const (
	ProfileSimple Profile = iota
	ProfileBase
	ProfileBaseEnhanced
)

// Version is the mandatory, singular version descriptor.
type Version struct {
	Magic              [4]byte
	ProfilePrimary     Profile
	ProfileAdditional  Profile
}

// FourCC identifies a codec's bitstream format.
type FourCC [4]byte

var (
	FourCCMP4A = FourCC{'m', 'p', '4', 'a'}
	FourCCOpus = FourCC{'O', 'p', 'u', 's'}
	FourCCFLAC = FourCC{'f', 'L', 'a', 'C'}
	FourCCIPCM = FourCC{'i', 'p', 'c', 'm'}
)

// CodecConfig is immutable once created; its ID is unique within a stream.
type CodecConfig struct {
	ID                   uint64
	FourCC               FourCC
	SamplesPerFrame      uint32
	RollDistance         int16
	DecoderSpecificBytes []byte
}

// ElementKind distinguishes channel-based from scene-based (ambisonics)
// audio elements.
type ElementKind uint8

const (
	ElementChannelBased ElementKind = iota
	ElementSceneBased
)

// LoudspeakerLayout is a point on the scalable channel-layout ladder
// (Mono ⊂ Stereo ⊂ 5.1 ⊂ 5.1.2 ⊂ 5.1.4 ⊂ 7.1.4).
type LoudspeakerLayout uint8

const (
	LayoutMono LoudspeakerLayout = iota
	LayoutStereo
	Layout5_1
	Layout5_1_2
	Layout5_1_4
	Layout7_1_4
)

// ChannelCount returns the number of discrete loudspeaker feeds in the
// layout, LFE included.
func (l LoudspeakerLayout) ChannelCount() int {
	switch l {
	case LayoutMono:
		return 1
	case LayoutStereo:
		return 2
	case Layout5_1:
		return 6
	case Layout5_1_2:
		return 8
	case Layout5_1_4:
		return 10
	case Layout7_1_4:
		return 12
	default:
		return 0
	}
}

// Dominates reports whether l has strictly more channels than other,
// i.e. l sits strictly later on the scalable ladder. AudioElement's
// recon_gain_flag invariant is permitted only when this holds between a
// layer and its predecessor.
func (l LoudspeakerLayout) Dominates(other LoudspeakerLayout) bool {
	return l.ChannelCount() > other.ChannelCount()
}

// ChannelLayer is one rung of a ChannelBased element's scalable layer
// ladder.
type ChannelLayer struct {
	Layout             LoudspeakerLayout
	OutputGainQ7_8      *int16 // nil if absent
	ReconGainFlag       bool
	NSubstreams         int
	NCoupledSubstreams  int
}

// ChannelConfig is the variant body of a ChannelBased AudioElement.
type ChannelConfig struct {
	Layers []ChannelLayer
}

// AmbisonicsMode selects how an AmbisonicsConfig's mapping bytes are
// interpreted when deriving the mapping table's size.
type AmbisonicsMode uint8

const (
	AmbisonicsMono AmbisonicsMode = iota
	AmbisonicsProjection
)

// AmbisonicsConfig is the variant body of a SceneBased AudioElement.
type AmbisonicsConfig struct {
	Mode         AmbisonicsMode
	OutChannels  int
	NSubstreams  int
	NCoupled     int
	Mapping      []byte
}

// AmbisonicsMappingSize returns the expected length of Mapping for the
// given mode: mono is one byte per output channel; projection is
// 2·out_channels·(n_sub+n_coupled) bytes.
func AmbisonicsMappingSize(mode AmbisonicsMode, outChannels, nSub, nCoupled int) int {
	switch mode {
	case AmbisonicsMono:
		return outChannels
	case AmbisonicsProjection:
		return 2 * outChannels * (nSub + nCoupled)
	default:
		return 0
	}
}

// AudioElement ties a codec config and a set of substreams to either a
// ChannelConfig or an AmbisonicsConfig.
type AudioElement struct {
	ID            uint64
	Kind          ElementKind
	CodecConfigID uint64
	SubstreamIDs  []uint64
	ParameterDefs []ParameterBase

	Channel    *ChannelConfig    // set iff Kind == ElementChannelBased
	Ambisonics *AmbisonicsConfig // set iff Kind == ElementSceneBased
}

// LayoutTargetKind distinguishes the three ways an output layout can be
// named in a MixPresentation's layouts list.
type LayoutTargetKind uint8

const (
	LayoutTargetSoundSystem LayoutTargetKind = iota
	LayoutTargetSPLabel
	LayoutTargetBinaural
)

// SoundSystem is a BS.2051 sound system (A..J) or an AOM-extended layout.
type SoundSystem uint8

const (
	SoundSystemA SoundSystem = iota // 0+2.0 stereo
	SoundSystemB                    // 0+5.1
	SoundSystemC                    // 2+5.1
	SoundSystemD                    // 4+5.1
	SoundSystemE                    // 4+5.1.2
	SoundSystemF                    // 3+7.1
	SoundSystemG                    // 4+9.1
	SoundSystemH                    // 9+10.2
	SoundSystemI                    // 0+7.1
	SoundSystemJ                    // 4+7.1.4
	SoundSystemExt712               // 7.1.2
	SoundSystemExt312               // 3.1.2
	SoundSystemExt916               // 9.1.6
	SoundSystemMono
	SoundSystemBinaural
)

// LayoutTarget is a tagged union over the three ways to name an output
// layout: a small struct in place of a variant-inheritance hierarchy.
type LayoutTarget struct {
	Kind LayoutTargetKind

	System SoundSystem // valid when Kind == LayoutTargetSoundSystem or LayoutTargetSPLabel
	SPBits uint32       // valid when Kind == LayoutTargetSPLabel: custom speaker subset bitmask
}

// LoudnessInfo carries the Q7.8 loudness metadata attached to one layout
// entry of a mix presentation.
type LoudnessInfo struct {
	InfoType       uint8
	IntegratedQ7_8 int16
	DigitalPeakQ7_8 int16
	TruePeakQ7_8   *int16 // set iff InfoType&0x01 != 0
}

// LayoutEntry is one (target layout, loudness) pair within a sub-mix.
type LayoutEntry struct {
	Target   LayoutTarget
	Loudness LoudnessInfo
}

// GainRef names the parameter id backing a time-varying mix gain, plus the
// default_gain_q7_8 value to use before any parameter block is available.
type GainRef struct {
	ParamID        uint64
	DefaultGainQ7_8 int16
}

// SubMixElement is one element's contribution to a mix presentation's
// single sub-mix.
type SubMixElement struct {
	AudioElementID uint64
	Label          string
	ElementMix     GainRef
}

// MixPresentation names exactly one sub-mix of elements, an output mix
// gain, and the layouts it was authored for.
type MixPresentation struct {
	ID       uint64
	Label    string
	Elements []SubMixElement
	OutputMix GainRef
	Layouts  []LayoutEntry
}

// ParamType identifies which timeline kind a ParameterBase drives.
type ParamType uint8

const (
	ParamMixGain ParamType = iota
	ParamDemixingMode
	ParamReconGain
)

// ParamMode says whether a parameter's segmentation is declared by the
// stream (in the descriptor OBU) or per-OBU (in each ParameterBlock).
type ParamMode uint8

const (
	ParamModeStreamDefined ParamMode = iota
	ParamModeOBUDefined
)

// ParameterBase is the descriptor-side declaration of a parameter timeline.
// When Mode is ParamModeStreamDefined, Duration/NSegments/ConstInterval/
// SegmentIntervals are meaningful and sum(SegmentIntervals) == Duration
// (or, if ConstInterval != 0, SegmentIntervals is empty and every segment
// uses ConstInterval).
type ParameterBase struct {
	Type ParamType
	ID   uint64
	Rate uint32
	Mode ParamMode

	Duration         uint64
	NSegments        uint32
	ConstInterval    uint64
	SegmentIntervals []uint64
}
