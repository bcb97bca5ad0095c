package resolver

import (
	"testing"

	"github.com/iamfgo/iamf/internal/descriptor"
)

func mustDB(t *testing.T) *descriptor.Database {
	t.Helper()
	db := descriptor.NewDatabase()
	if err := db.SetVersion(descriptor.Version{ProfilePrimary: descriptor.ProfileSimple}); err != nil {
		t.Fatalf("SetVersion: %v", err)
	}
	return db
}

func buildScalableElement(t *testing.T, db *descriptor.Database) descriptor.AudioElement {
	t.Helper()
	ae := descriptor.AudioElement{
		ID:            1,
		Kind:          descriptor.ElementChannelBased,
		CodecConfigID: 0,
		SubstreamIDs:  []uint64{0, 1, 2, 3, 4, 5},
		Channel: &descriptor.ChannelConfig{
			Layers: []descriptor.ChannelLayer{
				{Layout: descriptor.LayoutStereo, NSubstreams: 2},
				{Layout: descriptor.Layout5_1, NSubstreams: 4, ReconGainFlag: true},
			},
		},
	}
	if err := db.AddAudioElement(ae, []byte{1, 2, 3}); err != nil {
		t.Fatalf("AddAudioElement: %v", err)
	}
	return ae
}

func TestBuild_SelectsLowerLayerForStereoOutput(t *testing.T) {
	db := mustDB(t)
	buildScalableElement(t, db)

	layout := descriptor.LayoutEntry{
		Target: descriptor.LayoutTarget{Kind: descriptor.LayoutTargetSoundSystem, System: descriptor.SoundSystemA},
	}
	mp := descriptor.MixPresentation{
		ID:    10,
		Label: "default",
		Elements: []descriptor.SubMixElement{
			{AudioElementID: 1, Label: "main", ElementMix: descriptor.GainRef{DefaultGainQ7_8: 256}},
		},
		OutputMix: descriptor.GainRef{DefaultGainQ7_8: 256},
		Layouts:   []descriptor.LayoutEntry{layout},
	}
	if err := db.AddMixPresentation(mp, []byte{9, 9}); err != nil {
		t.Fatalf("AddMixPresentation: %v", err)
	}

	plan, err := Build(db, mp, layout)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(plan.Elements) != 1 {
		t.Fatalf("len(Elements) = %d, want 1", len(plan.Elements))
	}
	ep := plan.Elements[0]
	if ep.DecodeLayer != 0 {
		t.Fatalf("DecodeLayer = %d, want 0 (stereo)", ep.DecodeLayer)
	}
	if ep.Renderer != RendererM2M {
		t.Fatalf("Renderer = %v, want RendererM2M", ep.Renderer)
	}
}

func TestBuild_SelectsUpperLayerAndUpmixForFiveOneOutput(t *testing.T) {
	db := mustDB(t)
	buildScalableElement(t, db)

	layout := descriptor.LayoutEntry{
		Target: descriptor.LayoutTarget{Kind: descriptor.LayoutTargetSoundSystem, System: descriptor.SoundSystemB},
	}
	mp := descriptor.MixPresentation{
		ID:       11,
		Label:    "surround",
		Elements: []descriptor.SubMixElement{{AudioElementID: 1}},
		Layouts:  []descriptor.LayoutEntry{layout},
	}
	if err := db.AddMixPresentation(mp, []byte{1}); err != nil {
		t.Fatalf("AddMixPresentation: %v", err)
	}

	plan, err := Build(db, mp, layout)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ep := plan.Elements[0]
	if ep.DecodeLayer != 1 {
		t.Fatalf("DecodeLayer = %d, want 1 (5.1)", ep.DecodeLayer)
	}
}

func TestBuild_RejectsUnlistedLayout(t *testing.T) {
	db := mustDB(t)
	buildScalableElement(t, db)
	mp := descriptor.MixPresentation{
		ID:       12,
		Elements: []descriptor.SubMixElement{{AudioElementID: 1}},
		Layouts: []descriptor.LayoutEntry{{
			Target: descriptor.LayoutTarget{Kind: descriptor.LayoutTargetSoundSystem, System: descriptor.SoundSystemA},
		}},
	}
	if err := db.AddMixPresentation(mp, []byte{2}); err != nil {
		t.Fatalf("AddMixPresentation: %v", err)
	}
	other := descriptor.LayoutEntry{
		Target: descriptor.LayoutTarget{Kind: descriptor.LayoutTargetBinaural},
	}
	if _, err := Build(db, mp, other); err == nil {
		t.Fatal("Build should reject a layout not in mp.Layouts")
	}
}

func TestSelectMixPresentation_FirstWins(t *testing.T) {
	db := mustDB(t)
	buildScalableElement(t, db)
	first := descriptor.MixPresentation{ID: 1, Label: "dup", Elements: []descriptor.SubMixElement{{AudioElementID: 1}}}
	second := descriptor.MixPresentation{ID: 2, Label: "dup", Elements: []descriptor.SubMixElement{{AudioElementID: 1}}}
	if err := db.AddMixPresentation(first, []byte{1}); err != nil {
		t.Fatalf("AddMixPresentation: %v", err)
	}
	if err := db.AddMixPresentation(second, []byte{2}); err != nil {
		t.Fatalf("AddMixPresentation: %v", err)
	}
	got, ok := SelectMixPresentation(db, "dup")
	if !ok || got.ID != 1 {
		t.Fatalf("SelectMixPresentation = %+v, ok=%v, want ID=1", got, ok)
	}
}
