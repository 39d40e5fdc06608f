package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures everything the engine emits.
type recorder struct {
	lines    []string
	cues     []string
	ambients []string
}

func (r *recorder) Say(line string)       { r.lines = append(r.lines, line) }
func (r *recorder) Cue(id string)         { r.cues = append(r.cues, id) }
func (r *recorder) Ambient(key string)    { r.ambients = append(r.ambients, key) }
func (r *recorder) reset()                { r.lines, r.cues, r.ambients = nil, nil, nil }
func (r *recorder) said(line string) bool {
	for _, l := range r.lines {
		if l == line {
			return true
		}
	}
	return false
}

func testWorld(rec *recorder) *World {
	rooms := map[string]*Room{
		"exterior":  {Key: "exterior", Name: "Exterior"},
		"vestibulo": {Key: "vestibulo", Name: "Vestíbulo"},
	}
	zones := Zones{
		Interiors:   map[string]bool{"vestibulo": true},
		CameraZones: map[string]bool{"vestibulo": true},
		LootNoisy:   map[string]bool{"vestibulo": true},
	}
	narrations := map[string]Narration{
		"vestibulo": {
			Lines:    []string{"Bernal (radio): Adentro. Respira."},
			Cue:      "radio_vestibulo.wav",
			OffLines: []string{"Bernal (radio): A ciegas es más fácil."},
			OffCue:   "radio_seguridad_off.wav",
		},
	}
	return New(rooms, zones, narrations, Hard(), rec)
}

func TestWorld_RaiseAlert(t *testing.T) {
	w := testWorld(&recorder{})

	w.RaiseAlert(2)
	assert.Equal(t, 2, w.AlertLevel)
	w.RaiseAlert(0)
	w.RaiseAlert(-3)
	assert.Equal(t, 2, w.AlertLevel, "alert never decreases")
	assert.False(t, w.PoliceArrives())

	w.RaiseAlert(2)
	assert.True(t, w.PoliceArrives())
}

func TestWorld_NilSinkRunsHeadless(t *testing.T) {
	rooms := map[string]*Room{"exterior": {Key: "exterior", Name: "Exterior"}}
	w := New(rooms, Zones{}, nil, Hard(), nil)

	require.NotNil(t, w)
	assert.NotPanics(t, func() {
		w.ResolveGatedExit("", &Player{})
		w.TotalMoves = w.Settings.PatrolStartMoves - 1
		w.Tick(true)
	})
	assert.True(t, w.PatrolActive)
}

func TestWorld_ResolveGatedExit(t *testing.T) {
	tests := []struct {
		name        string
		requirement string
		inventory   []string
		pass        bool
		wantCue     string
	}{
		{
			name:        "no requirement never opens",
			requirement: "",
			inventory:   []string{"Ganzua"},
			pass:        false,
			wantCue:     "puerta_cerrada.wav",
		},
		{
			name:        "missing item",
			requirement: "Tarjeta",
			inventory:   nil,
			pass:        false,
			wantCue:     "puerta_cerrada.wav",
		},
		{
			name:        "card passes",
			requirement: "Tarjeta",
			inventory:   []string{"Tarjeta"},
			pass:        true,
			wantCue:     "card_beep.wav",
		},
		{
			name:        "pick passes",
			requirement: "Ganzua",
			inventory:   []string{"Ganzua"},
			pass:        true,
			wantCue:     "ganzua.wav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			w := testWorld(rec)
			p := &Player{Location: "exterior", Inventory: tt.inventory}

			assert.Equal(t, tt.pass, w.ResolveGatedExit(tt.requirement, p))
			require.NotEmpty(t, rec.cues)
			assert.Equal(t, tt.wantCue, rec.cues[0])
		})
	}
}

func TestWorld_PickDurability(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)
	p := &Player{Location: "exterior", Inventory: []string{"Ganzua"}}

	for i := 0; i < 2; i++ {
		assert.True(t, w.ResolveGatedExit("Ganzua", p))
		assert.True(t, p.HasItem("Ganzua"))
	}

	// Third use breaks the pick out of the inventory.
	assert.True(t, w.ResolveGatedExit("Ganzua", p))
	assert.False(t, p.HasItem("Ganzua"))
	assert.True(t, rec.said("La ganzúa se parte en el último giro."))

	assert.False(t, w.ResolveGatedExit("Ganzua", p), "without the pick the door stays shut")
}

func TestWorld_DisableCameras(t *testing.T) {
	w := testWorld(&recorder{})

	assert.True(t, w.DisableCameras(10))
	assert.True(t, w.CamerasDisabled)
	require.NotNil(t, w.CamsOffMovesLeft)
	assert.Equal(t, 10, *w.CamsOffMovesLeft)

	assert.False(t, w.DisableCameras(5), "blackout does not stack")
	assert.Equal(t, 10, *w.CamsOffMovesLeft)
}

func TestWorld_CameraZoneAlert(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)
	p := &Player{Location: "vestibulo"}

	w.ApplyRoomEntryEffects(p)
	assert.Equal(t, w.Settings.AlertMove, w.AlertLevel)
	assert.True(t, rec.said("Bernal (radio): Cuidado. No hagas mucho ruido aqui."))
}

func TestWorld_DisguiseSuppressesCameras(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)
	w.DisguiseMovesLeft = 3
	p := &Player{Location: "vestibulo"}

	w.ApplyRoomEntryEffects(p)
	assert.Equal(t, 0, w.AlertLevel, "disguise silences camera zones")
}

func TestWorld_BlackoutCountdownRestores(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)
	require.True(t, w.DisableCameras(2))
	p := &Player{Location: "exterior"}

	w.ApplyRoomEntryEffects(p)
	assert.True(t, w.CamerasDisabled)

	w.ApplyRoomEntryEffects(p)
	assert.False(t, w.CamerasDisabled, "cameras come back when the countdown drains")
	assert.Nil(t, w.CamsOffMovesLeft)
	assert.True(t, rec.said("Las cámaras vuelven a parpadear."))
	assert.Equal(t, 0, w.AlertLevel, "exterior is not a camera zone")
}

func TestWorld_LootNoise(t *testing.T) {
	w := testWorld(&recorder{})
	w.DisableCameras(10)
	p := &Player{Location: "vestibulo", HasLoot: true}

	w.ApplyRoomEntryEffects(p)
	assert.Equal(t, w.Settings.LootNoise, w.AlertLevel, "loot rattles in noisy rooms even with cameras off")
}

func TestWorld_PatrolTick(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)

	for i := 0; i < w.Settings.PatrolStartMoves-1; i++ {
		w.Tick(false)
	}
	assert.False(t, w.PatrolActive)

	w.Tick(false)
	assert.True(t, w.PatrolActive)
	assert.True(t, rec.said("A lo lejos, una patrulla agarra la avenida. No mira, pero aprende."))
	assert.Equal(t, 0, w.AlertLevel, "patrol only charges while inside")

	w.Tick(true)
	assert.Equal(t, w.Settings.PatrolAlertPerMove, w.AlertLevel)
}

func TestWorld_FireRoomNarration(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)

	w.FireRoomNarration("vestibulo")
	require.Len(t, rec.lines, 1)
	assert.Equal(t, "Bernal (radio): Adentro. Respira.", rec.lines[0])
	assert.Equal(t, []string{"radio_vestibulo.wav"}, rec.cues)
	assert.True(t, w.NarrationFired("vestibulo"))

	rec.reset()
	w.FireRoomNarration("vestibulo")
	assert.Empty(t, rec.lines, "narration is one-shot")

	w.FireRoomNarration("exterior")
	assert.Empty(t, rec.lines, "rooms without a script stay quiet")
}

func TestWorld_FireRoomNarrationOffVariant(t *testing.T) {
	rec := &recorder{}
	w := testWorld(rec)
	w.DisableCameras(10)

	w.FireRoomNarration("vestibulo")
	require.Len(t, rec.lines, 1)
	assert.Equal(t, "Bernal (radio): A ciegas es más fácil.", rec.lines[0])
	assert.Equal(t, []string{"radio_seguridad_off.wav"}, rec.cues)
}
