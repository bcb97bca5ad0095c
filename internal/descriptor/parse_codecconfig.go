package descriptor

import "github.com/iamfgo/iamf/internal/errcode"

// ParseCodecConfig parses a CodecConfig descriptor payload:
//
//	id (leb128) | four_cc (4 bytes) | samples_per_frame (leb128) |
//	roll_distance (int16 BE) | decoder_specific_bytes (rest of payload)
func ParseCodecConfig(payload []byte) (CodecConfig, error) {
	r := newByteReader(payload)

	id, err := r.leb128()
	if err != nil {
		return CodecConfig{}, err
	}
	fourCCBytes, err := r.bytes(4)
	if err != nil {
		return CodecConfig{}, err
	}
	var fourCC FourCC
	copy(fourCC[:], fourCCBytes)
	if !validFourCC(fourCC) {
		return CodecConfig{}, errcode.New(errcode.InvalidValue, "descriptor.ParseCodecConfig")
	}

	samplesPerFrame, err := r.leb128()
	if err != nil {
		return CodecConfig{}, err
	}
	rollDistanceRaw, err := r.u16be()
	if err != nil {
		return CodecConfig{}, err
	}

	return CodecConfig{
		ID:                   id,
		FourCC:               fourCC,
		SamplesPerFrame:      uint32(samplesPerFrame),
		RollDistance:         int16(rollDistanceRaw),
		DecoderSpecificBytes: append([]byte(nil), r.remaining()...),
	}, nil
}

func validFourCC(f FourCC) bool {
	switch f {
	case FourCCMP4A, FourCCOpus, FourCCFLAC, FourCCIPCM:
		return true
	default:
		return false
	}
}
