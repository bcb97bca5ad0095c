package descriptor

import "github.com/iamfgo/iamf/internal/errcode"

// ParseAudioElement parses an AudioElement descriptor payload:
//
//	id (leb128) | kind (1 byte: 0 channel-based, 1 scene-based) |
//	codec_config_id (leb128) | num_substreams (leb128) |
//	substream_id[num_substreams] (leb128 each) |
//	num_parameters (leb128) | parameter_base[num_parameters] |
//	<channel_config | ambisonics_config>
func ParseAudioElement(payload []byte) (AudioElement, error) {
	r := newByteReader(payload)

	id, err := r.leb128()
	if err != nil {
		return AudioElement{}, err
	}
	kindByte, err := r.u8()
	if err != nil {
		return AudioElement{}, err
	}
	var kind ElementKind
	switch kindByte {
	case 0:
		kind = ElementChannelBased
	case 1:
		kind = ElementSceneBased
	default:
		return AudioElement{}, errcode.New(errcode.InvalidValue, "descriptor.ParseAudioElement")
	}

	codecConfigID, err := r.leb128()
	if err != nil {
		return AudioElement{}, err
	}
	numSubstreams, err := r.leb128()
	if err != nil {
		return AudioElement{}, err
	}
	substreamIDs := make([]uint64, 0, numSubstreams)
	for i := uint64(0); i < numSubstreams; i++ {
		sid, err := r.leb128()
		if err != nil {
			return AudioElement{}, err
		}
		substreamIDs = append(substreamIDs, sid)
	}

	numParams, err := r.leb128()
	if err != nil {
		return AudioElement{}, err
	}
	paramDefs := make([]ParameterBase, 0, numParams)
	for i := uint64(0); i < numParams; i++ {
		pb, err := parseParameterBase(r)
		if err != nil {
			return AudioElement{}, err
		}
		paramDefs = append(paramDefs, pb)
	}

	ae := AudioElement{
		ID:            id,
		Kind:          kind,
		CodecConfigID: codecConfigID,
		SubstreamIDs:  substreamIDs,
		ParameterDefs: paramDefs,
	}

	switch kind {
	case ElementChannelBased:
		cc, err := parseChannelConfig(r)
		if err != nil {
			return AudioElement{}, err
		}
		ae.Channel = &cc
	case ElementSceneBased:
		ac, err := parseAmbisonicsConfig(r)
		if err != nil {
			return AudioElement{}, err
		}
		ae.Ambisonics = &ac
	}

	return ae, nil
}

func parseChannelConfig(r *byteReader) (ChannelConfig, error) {
	numLayers, err := r.u8()
	if err != nil {
		return ChannelConfig{}, err
	}
	layers := make([]ChannelLayer, 0, numLayers)
	for i := uint8(0); i < numLayers; i++ {
		layoutByte, err := r.u8()
		if err != nil {
			return ChannelConfig{}, err
		}
		layout := LoudspeakerLayout(layoutByte)
		if layout > Layout7_1_4 {
			return ChannelConfig{}, errcode.New(errcode.InvalidValue, "descriptor.parseChannelConfig")
		}
		flags, err := r.u8()
		if err != nil {
			return ChannelConfig{}, err
		}
		hasOutputGain := flags&0x01 != 0
		reconGainFlag := flags&0x02 != 0

		nSub, err := r.u8()
		if err != nil {
			return ChannelConfig{}, err
		}
		nCoupled, err := r.u8()
		if err != nil {
			return ChannelConfig{}, err
		}
		if int(nCoupled) > int(nSub) {
			return ChannelConfig{}, errcode.New(errcode.InvalidValue, "descriptor.parseChannelConfig")
		}

		layer := ChannelLayer{
			Layout:             layout,
			ReconGainFlag:      reconGainFlag,
			NSubstreams:        int(nSub),
			NCoupledSubstreams: int(nCoupled),
		}
		if hasOutputGain {
			gainRaw, err := r.u16be()
			if err != nil {
				return ChannelConfig{}, err
			}
			g := int16(gainRaw)
			layer.OutputGainQ7_8 = &g
		}
		layers = append(layers, layer)
	}
	return ChannelConfig{Layers: layers}, nil
}

func parseAmbisonicsConfig(r *byteReader) (AmbisonicsConfig, error) {
	modeByte, err := r.u8()
	if err != nil {
		return AmbisonicsConfig{}, err
	}
	var mode AmbisonicsMode
	switch modeByte {
	case 0:
		mode = AmbisonicsMono
	case 1:
		mode = AmbisonicsProjection
	default:
		return AmbisonicsConfig{}, errcode.New(errcode.InvalidValue, "descriptor.parseAmbisonicsConfig")
	}

	outChannels, err := r.u8()
	if err != nil {
		return AmbisonicsConfig{}, err
	}
	nSub, err := r.u8()
	if err != nil {
		return AmbisonicsConfig{}, err
	}
	nCoupled, err := r.u8()
	if err != nil {
		return AmbisonicsConfig{}, err
	}

	size := AmbisonicsMappingSize(mode, int(outChannels), int(nSub), int(nCoupled))
	mapping, err := r.bytes(size)
	if err != nil {
		return AmbisonicsConfig{}, err
	}

	return AmbisonicsConfig{
		Mode:        mode,
		OutChannels: int(outChannels),
		NSubstreams: int(nSub),
		NCoupled:    int(nCoupled),
		Mapping:     append([]byte(nil), mapping...),
	}, nil
}
