package descriptor

import (
	"bytes"

	"github.com/iamfgo/iamf/internal/errcode"
)

// store holds descriptors of one kind, keyed by their leb128 id, along with
// the raw payload bytes each was parsed from (needed to implement the
// byte-exact redundant-OBU equality rule).
type store[V any] struct {
	items map[uint64]entry[V]
	order []uint64
}

type entry[V any] struct {
	raw   []byte
	value V
}

func newStore[V any]() store[V] {
	return store[V]{items: make(map[uint64]entry[V])}
}

// add inserts a descriptor at first occurrence, or accepts a later OBU with
// byte-identical payload as a harmless no-op. A later OBU with the same id
// but a different payload is stream corruption: InvalidState.
func (s *store[V]) add(id uint64, raw []byte, value V) error {
	if existing, ok := s.items[id]; ok {
		if bytes.Equal(existing.raw, raw) {
			return nil
		}
		return errcode.New(errcode.InvalidState, "descriptor.store.add")
	}
	s.items[id] = entry[V]{raw: raw, value: value}
	s.order = append(s.order, id)
	return nil
}

func (s *store[V]) get(id uint64) (V, bool) {
	e, ok := s.items[id]
	return e.value, ok
}

// inOrder returns every stored value in descriptor (first-occurrence) order.
func (s *store[V]) inOrder() []V {
	out := make([]V, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].value)
	}
	return out
}

// Database holds every descriptor parsed so far, keyed by ID: downstream
// components hold IDs, not pointers, into this database so that the
// database's backing storage can be reset or reallocated freely.
type Database struct {
	version    *Version
	codecCfg   store[CodecConfig]
	audioElem  store[AudioElement]
	mixPres    store[MixPresentation]
}

// NewDatabase returns an empty descriptor database.
func NewDatabase() *Database {
	return &Database{
		codecCfg:  newStore[CodecConfig](),
		audioElem: newStore[AudioElement](),
		mixPres:   newStore[MixPresentation](),
	}
}

// SetVersion records the stream's singular IAMFVersion descriptor. It must
// be called before any other descriptor is added; calling it twice with a
// differing version is rejected with InvalidState.
func (db *Database) SetVersion(v Version) error {
	if db.version != nil {
		if *db.version == v {
			return nil
		}
		return errcode.New(errcode.InvalidState, "descriptor.SetVersion")
	}
	if len(db.codecCfg.order) != 0 || len(db.audioElem.order) != 0 || len(db.mixPres.order) != 0 {
		return errcode.New(errcode.InvalidState, "descriptor.SetVersion")
	}
	db.version = &v
	return nil
}

// Version returns the stream's version descriptor, if set.
func (db *Database) Version() (Version, bool) {
	if db.version == nil {
		return Version{}, false
	}
	return *db.version, true
}

// AddCodecConfig inserts or no-ops a CodecConfig descriptor. raw is the
// exact payload bytes the OBU carried, used for the redundant-OBU equality
// check.
func (db *Database) AddCodecConfig(cfg CodecConfig, raw []byte) error {
	if db.version == nil {
		return errcode.New(errcode.InvalidState, "descriptor.AddCodecConfig")
	}
	return db.codecCfg.add(cfg.ID, raw, cfg)
}

// CodecConfig looks up a codec config by id.
func (db *Database) CodecConfig(id uint64) (CodecConfig, bool) {
	return db.codecCfg.get(id)
}

// AddAudioElement inserts or no-ops an AudioElement descriptor, validating
// two invariants: the layer substream-count sum must match the referenced
// substream id list, and recon_gain_flag is only permitted on a layer that
// strictly dominates its predecessor in channel count.
func (db *Database) AddAudioElement(ae AudioElement, raw []byte) error {
	if db.version == nil {
		return errcode.New(errcode.InvalidState, "descriptor.AddAudioElement")
	}
	if ae.Kind == ElementChannelBased && ae.Channel != nil {
		total := 0
		var prev *ChannelLayer
		for i := range ae.Channel.Layers {
			layer := &ae.Channel.Layers[i]
			total += layer.NSubstreams
			if layer.ReconGainFlag {
				if prev == nil || !layer.Layout.Dominates(prev.Layout) {
					return errcode.New(errcode.InvalidValue, "descriptor.AddAudioElement")
				}
			}
			prev = layer
		}
		if total != len(ae.SubstreamIDs) {
			return errcode.New(errcode.InvalidValue, "descriptor.AddAudioElement")
		}
	}
	return db.audioElem.add(ae.ID, raw, ae)
}

// AudioElement looks up an audio element by id.
func (db *Database) AudioElement(id uint64) (AudioElement, bool) {
	return db.audioElem.get(id)
}

// AddMixPresentation inserts or no-ops a MixPresentation descriptor.
func (db *Database) AddMixPresentation(mp MixPresentation, raw []byte) error {
	if db.version == nil {
		return errcode.New(errcode.InvalidState, "descriptor.AddMixPresentation")
	}
	return db.mixPres.add(mp.ID, raw, mp)
}

// MixPresentation looks up a mix presentation by id.
func (db *Database) MixPresentation(id uint64) (MixPresentation, bool) {
	return db.mixPres.get(id)
}

// MixPresentationsByLabel returns every mix presentation with the given
// label, in descriptor order. Resolvers implement a "first in descriptor
// order wins" tie-break by taking index 0 of this slice.
func (db *Database) MixPresentationsByLabel(label string) []MixPresentation {
	var out []MixPresentation
	for _, mp := range db.mixPres.inOrder() {
		if mp.Label == label {
			out = append(out, mp)
		}
	}
	return out
}
