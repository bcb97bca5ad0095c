// Package render turns a Plan's resolved demixed channel buffers into the
// planar loudspeaker or binaural signal for one output layout: a
// static per-layout channel order, a loudspeaker-to-loudspeaker mixing
// matrix, an LFE low-pass stage, and a thin binaural delegation port.
package render

import "github.com/iamfgo/iamf/internal/descriptor"

// Ch names one output position in a loudspeaker layout's channel order.
type Ch string

const (
	ChL   Ch = "L"
	ChR   Ch = "R"
	ChC   Ch = "C"
	ChLFE Ch = "LFE"
	ChSL  Ch = "SL" // 5.x surround left
	ChSR  Ch = "SR"
	ChHL  Ch = "HL" // 5.1.2-style top pair
	ChHR  Ch = "HR"
	ChHFL Ch = "HFL" // 5.1.4/7.1.4-style front-top
	ChHFR Ch = "HFR"
	ChHBL Ch = "HBL" // back-top
	ChHBR Ch = "HBR"
	ChBL  Ch = "BL" // 7.x back-left
	ChBR  Ch = "BR"
)

// channelOrders is the output channel sequence for each sound system,
// grounded directly on the decoding_map/channel_layout tables in
// original_source/code/src/iamf_dec/IAMF_layout.c. Systems E, F, G, H and
// Ext916 have no entry (the source's layout table leaves their
// channel_layout arrays unpopulated), so ChannelOrder returns nil for
// them; see DESIGN.md.
var channelOrders = map[descriptor.SoundSystem][]Ch{
	descriptor.SoundSystemA:       {ChL, ChR},
	descriptor.SoundSystemB:       {ChL, ChR, ChC, ChLFE, ChSL, ChSR},
	descriptor.SoundSystemC:       {ChL, ChR, ChC, ChLFE, ChSL, ChSR, ChHL, ChHR},
	descriptor.SoundSystemD:       {ChL, ChR, ChC, ChLFE, ChSL, ChSR, ChHFL, ChHFR, ChHBL, ChHBR},
	descriptor.SoundSystemI:       {ChL, ChR, ChC, ChLFE, ChSL, ChSR, ChBL, ChBR},
	descriptor.SoundSystemJ:       {ChL, ChR, ChC, ChLFE, ChSL, ChSR, ChBL, ChBR, ChHFL, ChHFR, ChHBL, ChHBR},
	descriptor.SoundSystemExt712:  {ChL, ChR, ChC, ChLFE, ChSL, ChSR, ChBL, ChBR, ChHL, ChHR},
	descriptor.SoundSystemExt312:  {ChL, ChR, ChC, ChLFE, ChHL, ChHR},
	descriptor.SoundSystemMono:    {ChL},
}

// ChannelOrder returns the output channel sequence for a sound system, or
// nil if it isn't one this renderer has a concrete table for.
func ChannelOrder(s descriptor.SoundSystem) []Ch {
	return channelOrders[s]
}

// LFEIndex returns the position of the LFE channel in order, or -1 if the
// layout has none.
func LFEIndex(order []Ch) int {
	for i, c := range order {
		if c == ChLFE {
			return i
		}
	}
	return -1
}
