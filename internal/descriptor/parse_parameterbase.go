package descriptor

import "github.com/iamfgo/iamf/internal/errcode"

// parseParameterBase parses one parameter_base record:
//
//	type (1 byte) | id (leb128) | rate (leb128) | mode (1 byte) |
//	  if mode == stream_defined:
//	    duration (leb128) | num_segments (leb128) | const_interval (leb128)
//	    if const_interval == 0: segment_interval[num_segments] (leb128 each)
func parseParameterBase(r *byteReader) (ParameterBase, error) {
	typeByte, err := r.u8()
	if err != nil {
		return ParameterBase{}, err
	}
	var ptype ParamType
	switch typeByte {
	case 0:
		ptype = ParamMixGain
	case 1:
		ptype = ParamDemixingMode
	case 2:
		ptype = ParamReconGain
	default:
		return ParameterBase{}, errcode.New(errcode.InvalidValue, "descriptor.parseParameterBase")
	}

	id, err := r.leb128()
	if err != nil {
		return ParameterBase{}, err
	}
	rate, err := r.leb128()
	if err != nil {
		return ParameterBase{}, err
	}
	modeByte, err := r.u8()
	if err != nil {
		return ParameterBase{}, err
	}
	var mode ParamMode
	switch modeByte {
	case 0:
		mode = ParamModeStreamDefined
	case 1:
		mode = ParamModeOBUDefined
	default:
		return ParameterBase{}, errcode.New(errcode.InvalidValue, "descriptor.parseParameterBase")
	}

	pb := ParameterBase{
		Type: ptype,
		ID:   id,
		Rate: uint32(rate),
		Mode: mode,
	}
	if mode != ParamModeStreamDefined {
		return pb, nil
	}

	duration, err := r.leb128()
	if err != nil {
		return ParameterBase{}, err
	}
	numSegments, err := r.leb128()
	if err != nil {
		return ParameterBase{}, err
	}
	constInterval, err := r.leb128()
	if err != nil {
		return ParameterBase{}, err
	}
	pb.Duration = duration
	pb.NSegments = uint32(numSegments)
	pb.ConstInterval = constInterval

	if constInterval == 0 {
		intervals := make([]uint64, 0, numSegments)
		var sum uint64
		for i := uint64(0); i < numSegments; i++ {
			iv, err := r.leb128()
			if err != nil {
				return ParameterBase{}, err
			}
			intervals = append(intervals, iv)
			sum += iv
		}
		if sum != duration {
			return ParameterBase{}, errcode.New(errcode.InvalidValue, "descriptor.parseParameterBase")
		}
		pb.SegmentIntervals = intervals
	} else if constInterval*numSegments != duration {
		return ParameterBase{}, errcode.New(errcode.InvalidValue, "descriptor.parseParameterBase")
	}

	return pb, nil
}
