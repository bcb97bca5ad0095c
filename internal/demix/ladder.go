package demix

import "github.com/iamfgo/iamf/internal/descriptor"

// AllChannels lists every named ladder position in a fixed, canonical
// order, used wherever a deterministic enumeration of Buffers keys is
// needed (building a Matrix's input-channel order, for instance).
var AllChannels = []Channel{
	ChMono,
	ChL2, ChR2,
	ChL3, ChR3,
	ChC, ChLFE,
	ChL5, ChR5,
	ChSL5, ChSR5,
	ChTL, ChTR,
	ChHL, ChHR,
	ChHFL, ChHFR, ChHBL, ChHBR,
	ChSL7, ChSR7, ChBL7, ChBR7,
}

// LadderChannels returns the named channels a decoder directly produces
// when decoding the given scalable layer, i.e. the channels carried by
// that layer's substreams rather than ones later derived by Downmix.
func LadderChannels(layout descriptor.LoudspeakerLayout) []Channel {
	switch layout {
	case descriptor.LayoutMono:
		return []Channel{ChMono}
	case descriptor.LayoutStereo:
		return []Channel{ChL2, ChR2}
	case descriptor.Layout5_1:
		return []Channel{ChL5, ChR5, ChC, ChLFE, ChSL5, ChSR5}
	case descriptor.Layout5_1_2:
		return []Channel{ChL5, ChR5, ChC, ChLFE, ChSL5, ChSR5, ChHL, ChHR}
	case descriptor.Layout5_1_4:
		return []Channel{ChL5, ChR5, ChC, ChLFE, ChSL5, ChSR5, ChHFL, ChHFR, ChHBL, ChHBR}
	case descriptor.Layout7_1_4:
		return []Channel{ChL5, ChR5, ChC, ChLFE, ChSL7, ChSR7, ChBL7, ChBR7, ChHFL, ChHFR, ChHBL, ChHBR}
	default:
		return nil
	}
}
