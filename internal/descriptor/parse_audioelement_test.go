package descriptor

import (
	"testing"

	"github.com/iamfgo/iamf/internal/errcode"
)

func buildParameterBaseStreamDefined(ptype ParamType, id, rate uint64, intervals []uint64) []byte {
	var b []byte
	b = append(b, byte(ptype))
	b = append(b, encLeb128(id)...)
	b = append(b, encLeb128(rate)...)
	b = append(b, byte(ParamModeStreamDefined))

	var duration uint64
	for _, iv := range intervals {
		duration += iv
	}
	b = append(b, encLeb128(duration)...)
	b = append(b, encLeb128(uint64(len(intervals)))...)
	b = append(b, encLeb128(0)...) // const_interval = 0 -> explicit intervals follow
	for _, iv := range intervals {
		b = append(b, encLeb128(iv)...)
	}
	return b
}

func buildStereoChannelElement(id, codecConfigID uint64, substreamIDs []uint64) []byte {
	var b []byte
	b = append(b, encLeb128(id)...)
	b = append(b, byte(0)) // channel-based
	b = append(b, encLeb128(codecConfigID)...)
	b = append(b, encLeb128(uint64(len(substreamIDs)))...)
	for _, sid := range substreamIDs {
		b = append(b, encLeb128(sid)...)
	}
	b = append(b, encLeb128(0)...) // num_parameters = 0

	// channel_config: one layer, stereo, no output gain, no recon gain.
	b = append(b, byte(1)) // num_layers
	b = append(b, byte(LayoutStereo))
	b = append(b, byte(0)) // flags
	b = append(b, byte(1)) // n_substreams
	b = append(b, byte(1)) // n_coupled_substreams
	return b
}

func TestParseAudioElement_ChannelBased(t *testing.T) {
	payload := buildStereoChannelElement(3, 7, []uint64{10})

	ae, err := ParseAudioElement(payload)
	if err != nil {
		t.Fatalf("ParseAudioElement: %v", err)
	}
	if ae.ID != 3 || ae.CodecConfigID != 7 {
		t.Fatalf("ID/CodecConfigID = (%d,%d), want (3,7)", ae.ID, ae.CodecConfigID)
	}
	if ae.Kind != ElementChannelBased || ae.Channel == nil {
		t.Fatalf("Kind = %v, want ElementChannelBased with Channel set", ae.Kind)
	}
	if len(ae.Channel.Layers) != 1 || ae.Channel.Layers[0].Layout != LayoutStereo {
		t.Fatalf("Layers = %+v, want one stereo layer", ae.Channel.Layers)
	}
	if len(ae.SubstreamIDs) != 1 || ae.SubstreamIDs[0] != 10 {
		t.Fatalf("SubstreamIDs = %v, want [10]", ae.SubstreamIDs)
	}
}

func TestParseAudioElement_SceneBasedMono(t *testing.T) {
	var b []byte
	b = append(b, encLeb128(5)...)
	b = append(b, byte(1)) // scene-based
	b = append(b, encLeb128(9)...)
	b = append(b, encLeb128(1)...)
	b = append(b, encLeb128(20)...) // substream id
	b = append(b, encLeb128(0)...)  // num_parameters

	// ambisonics_config: mono mode, 4 out channels.
	b = append(b, byte(0)) // mode = mono
	b = append(b, byte(4)) // out_channels
	b = append(b, byte(1)) // n_substreams
	b = append(b, byte(0)) // n_coupled
	b = append(b, []byte{0, 1, 2, 3}...)

	ae, err := ParseAudioElement(b)
	if err != nil {
		t.Fatalf("ParseAudioElement: %v", err)
	}
	if ae.Kind != ElementSceneBased || ae.Ambisonics == nil {
		t.Fatalf("Kind = %v, want ElementSceneBased with Ambisonics set", ae.Kind)
	}
	if len(ae.Ambisonics.Mapping) != 4 {
		t.Fatalf("len(Mapping) = %d, want 4", len(ae.Ambisonics.Mapping))
	}
}

func TestParseAudioElement_WithParameterBase(t *testing.T) {
	var b []byte
	b = append(b, encLeb128(1)...)
	b = append(b, byte(0)) // channel-based
	b = append(b, encLeb128(1)...)
	b = append(b, encLeb128(1)...)
	b = append(b, encLeb128(0)...) // substream id 0
	b = append(b, encLeb128(1)...) // num_parameters = 1
	b = append(b, buildParameterBaseStreamDefined(ParamDemixingMode, 99, 48000, []uint64{480, 480})...)
	// minimal channel_config: one mono layer
	b = append(b, byte(1))
	b = append(b, byte(LayoutMono))
	b = append(b, byte(0))
	b = append(b, byte(1))
	b = append(b, byte(0))

	ae, err := ParseAudioElement(b)
	if err != nil {
		t.Fatalf("ParseAudioElement: %v", err)
	}
	if len(ae.ParameterDefs) != 1 {
		t.Fatalf("len(ParameterDefs) = %d, want 1", len(ae.ParameterDefs))
	}
	pd := ae.ParameterDefs[0]
	if pd.Type != ParamDemixingMode || pd.ID != 99 || pd.Duration != 960 {
		t.Fatalf("ParameterDefs[0] = %+v, want demixing id=99 duration=960", pd)
	}
}

func TestParseAudioElement_BadKind(t *testing.T) {
	var b []byte
	b = append(b, encLeb128(1)...)
	b = append(b, byte(2)) // invalid kind
	_, err := ParseAudioElement(b)
	if errcode.CodeOf(err) != errcode.InvalidValue {
		t.Fatalf("err = %v, want InvalidValue", err)
	}
}
