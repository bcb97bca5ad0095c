package descriptor

import "github.com/iamfgo/iamf/internal/errcode"

// ParseMixPresentation parses a MixPresentation descriptor payload:
//
//	id (leb128) | label (c-string) | num_elements (leb128) |
//	sub_mix_element[num_elements] | output_mix_gain | num_layouts (leb128) |
//	layout_entry[num_layouts]
//
// Exactly one sub-mix is represented per MixPresentation; num_elements
// counts its member audio elements.
func ParseMixPresentation(payload []byte) (MixPresentation, error) {
	r := newByteReader(payload)

	id, err := r.leb128()
	if err != nil {
		return MixPresentation{}, err
	}
	label, err := r.cstring()
	if err != nil {
		return MixPresentation{}, err
	}

	numElements, err := r.leb128()
	if err != nil {
		return MixPresentation{}, err
	}
	if numElements == 0 {
		return MixPresentation{}, errcode.New(errcode.InvalidValue, "descriptor.ParseMixPresentation")
	}
	elements := make([]SubMixElement, 0, numElements)
	for i := uint64(0); i < numElements; i++ {
		elem, err := parseSubMixElement(r)
		if err != nil {
			return MixPresentation{}, err
		}
		elements = append(elements, elem)
	}

	outputMix, err := parseGainRef(r)
	if err != nil {
		return MixPresentation{}, err
	}

	numLayouts, err := r.leb128()
	if err != nil {
		return MixPresentation{}, err
	}
	layouts := make([]LayoutEntry, 0, numLayouts)
	for i := uint64(0); i < numLayouts; i++ {
		entry, err := parseLayoutEntry(r)
		if err != nil {
			return MixPresentation{}, err
		}
		layouts = append(layouts, entry)
	}

	return MixPresentation{
		ID:        id,
		Label:     label,
		Elements:  elements,
		OutputMix: outputMix,
		Layouts:   layouts,
	}, nil
}

func parseSubMixElement(r *byteReader) (SubMixElement, error) {
	aeID, err := r.leb128()
	if err != nil {
		return SubMixElement{}, err
	}
	label, err := r.cstring()
	if err != nil {
		return SubMixElement{}, err
	}
	gain, err := parseGainRef(r)
	if err != nil {
		return SubMixElement{}, err
	}
	return SubMixElement{
		AudioElementID: aeID,
		Label:          label,
		ElementMix:     gain,
	}, nil
}

func parseGainRef(r *byteReader) (GainRef, error) {
	paramID, err := r.leb128()
	if err != nil {
		return GainRef{}, err
	}
	defaultGainRaw, err := r.u16be()
	if err != nil {
		return GainRef{}, err
	}
	return GainRef{
		ParamID:         paramID,
		DefaultGainQ7_8: int16(defaultGainRaw),
	}, nil
}

func parseLayoutEntry(r *byteReader) (LayoutEntry, error) {
	kindByte, err := r.u8()
	if err != nil {
		return LayoutEntry{}, err
	}
	var target LayoutTarget
	switch kindByte {
	case 0:
		target.Kind = LayoutTargetSoundSystem
		sysByte, err := r.u8()
		if err != nil {
			return LayoutEntry{}, err
		}
		target.System = SoundSystem(sysByte)
	case 1:
		target.Kind = LayoutTargetSPLabel
		bits, err := r.u32be()
		if err != nil {
			return LayoutEntry{}, err
		}
		target.SPBits = bits
	case 2:
		target.Kind = LayoutTargetBinaural
	default:
		return LayoutEntry{}, errcode.New(errcode.InvalidValue, "descriptor.parseLayoutEntry")
	}

	loudness, err := parseLoudnessInfo(r)
	if err != nil {
		return LayoutEntry{}, err
	}
	return LayoutEntry{Target: target, Loudness: loudness}, nil
}

func parseLoudnessInfo(r *byteReader) (LoudnessInfo, error) {
	infoType, err := r.u8()
	if err != nil {
		return LoudnessInfo{}, err
	}
	integratedRaw, err := r.u16be()
	if err != nil {
		return LoudnessInfo{}, err
	}
	peakRaw, err := r.u16be()
	if err != nil {
		return LoudnessInfo{}, err
	}
	li := LoudnessInfo{
		InfoType:        infoType,
		IntegratedQ7_8:  int16(integratedRaw),
		DigitalPeakQ7_8: int16(peakRaw),
	}
	if infoType&0x01 != 0 {
		truePeakRaw, err := r.u16be()
		if err != nil {
			return LoudnessInfo{}, err
		}
		tp := int16(truePeakRaw)
		li.TruePeakQ7_8 = &tp
	}
	return li, nil
}
