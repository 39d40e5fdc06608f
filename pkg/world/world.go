package world

import (
	"fmt"
	"strings"
)

// Narration is a room's one-shot radio script. The security room
// carries an alternate variant used while cameras are disabled.
type Narration struct {
	Lines    []string `json:"lines"`
	Cue      string   `json:"cue,omitempty"`
	OffLines []string `json:"off_lines,omitempty"`
	OffCue   string   `json:"off_cue,omitempty"`
}

// Zones are the fixed room sets the pressure rules key on. Fixed at
// content-build time.
type Zones struct {
	Interiors   map[string]bool
	CameraZones map[string]bool
	LootNoisy   map[string]bool
}

// Fixed narration lines owned by the engine rather than the catalog:
// they are tied to state transitions, not to rooms.
const (
	lineCameraWarn      = "Bernal (radio): Cuidado. No hagas mucho ruido aqui."
	lineCamerasRestored = "Las cámaras vuelven a parpadear."
	lineCamerasRadio    = "Bernal (radio): Se acabó el préstamo de oscuridad. De aquí en adelante es pulso."
	linePatrolSeen      = "A lo lejos, una patrulla agarra la avenida. No mira, pero aprende."
	linePatrolRadio     = "Bernal (radio): El tiempo se les puso a favor. Remata lo tuyo."
	linePickClick       = "La cerradura aprende a ceder. *clic*"
	linePickBroken      = "La ganzúa se parte en el último giro."
	linePickRadio       = "Bernal (radio): Se te partió la ganzúa. Sin eso, cada puerta pesa el doble. Calculá."
	lineCardReader      = "El lector suspira en verde."
	lineKeyTurn         = "La llave gira con resistencia y cede."
	lineDoorHeld        = "La salida no cede."
)

// World holds the session's global mutable counters and flags, plus
// the rules that mutate them. One instance per session; a second
// player would need its own World, since room item lists mutate in
// place.
type World struct {
	Rooms      map[string]*Room
	Settings   Settings
	Zones      Zones
	Narrations map[string]Narration
	VaultCode  string

	CamerasDisabled   bool
	CamsOffMovesLeft  *int // nil while cameras are active
	AlertLevel        int
	Evidence          bool
	KeypadLockMoves   int
	PickUses          int
	DisguiseMovesLeft int
	TotalMoves        int
	PatrolActive      bool

	fired map[string]bool
	sink  Sink
}

// New builds a session world. A nil sink falls back to NopSink, so a
// world can run headless.
func New(rooms map[string]*Room, zones Zones, narrations map[string]Narration, settings Settings, sink Sink) *World {
	if sink == nil {
		sink = NopSink{}
	}
	return &World{
		Rooms:      rooms,
		Settings:   settings,
		Zones:      zones,
		Narrations: narrations,
		VaultCode:  "573",
		PickUses:   settings.PickDurability,
		fired:      make(map[string]bool),
		sink:       sink,
	}
}

// RaiseAlert is the single mutation point for the alert level, which
// only ever goes up.
func (w *World) RaiseAlert(n int) {
	if n > 0 {
		w.AlertLevel += n
	}
}

// PoliceArrives reports whether the alert level crossed the capture
// threshold. Pure predicate.
func (w *World) PoliceArrives() bool {
	return w.AlertLevel >= w.Settings.AlertThreshold
}

// ResolveGatedExit checks the player's inventory for a gated exit's
// requirement. Holding the item always grants passage; the pick wears
// down one use per lockpicked door and breaks out of the inventory
// when its durability runs out.
func (w *World) ResolveGatedExit(requirement string, p *Player) bool {
	if requirement == "" {
		w.sink.Say(lineDoorHeld)
		w.sink.Cue("puerta_cerrada.wav")
		return false
	}
	if !p.HasItem(requirement) {
		w.sink.Say(fmt.Sprintf("Necesitas %s.", requirement))
		w.sink.Cue("puerta_cerrada.wav")
		return false
	}

	switch requirementKind(requirement) {
	case ReqPick:
		w.sink.Say(linePickClick)
		w.sink.Cue("ganzua.wav")
		w.PickUses--
		if w.PickUses <= 0 {
			w.sink.Say(linePickBroken)
			p.RemoveItem(requirement)
			w.sink.Say(linePickRadio)
		}
	case ReqCard:
		w.sink.Say(lineCardReader)
		w.sink.Cue("card_beep.wav")
	case ReqKey:
		w.sink.Say(lineKeyTurn)
		w.sink.Cue("card_beep.wav")
	}
	return true
}

// DisableCameras blacks out the cameras for the given number of moves.
// Returns false if they are already disabled; the blackout does not
// stack or extend.
func (w *World) DisableCameras(moves int) bool {
	if w.CamerasDisabled {
		return false
	}
	w.CamerasDisabled = true
	left := moves
	w.CamsOffMovesLeft = &left
	return true
}

// updateAlertOnMove applies the camera-zone alert rule and advances
// the blackout countdown after the player lands in a room.
func (w *World) updateAlertOnMove(roomKey string) {
	if !w.CamerasDisabled && w.DisguiseMovesLeft <= 0 && w.Zones.CameraZones[roomKey] {
		w.RaiseAlert(w.Settings.AlertMove)
		w.sink.Cue("beep_camara.wav")
		w.sink.Say(lineCameraWarn)
	}
	if w.CamerasDisabled && w.CamsOffMovesLeft != nil {
		*w.CamsOffMovesLeft--
		if *w.CamsOffMovesLeft <= 0 {
			w.CamerasDisabled = false
			w.CamsOffMovesLeft = nil
			w.sink.Say(lineCamerasRestored)
			w.sink.Cue("beep_camara.wav")
			w.sink.Say(lineCamerasRadio)
		}
	}
}

// Tick advances the move counter, activates the patrol once the
// threshold is crossed, and charges the patrol pressure while the
// player stays inside the bank.
func (w *World) Tick(insideBank bool) {
	w.TotalMoves++
	if !w.PatrolActive && w.TotalMoves >= w.Settings.PatrolStartMoves {
		w.PatrolActive = true
		w.sink.Say(linePatrolSeen)
		w.sink.Say(linePatrolRadio)
	}
	if w.PatrolActive && insideBank {
		w.RaiseAlert(w.Settings.PatrolAlertPerMove)
		w.sink.Cue("beep_camara.wav")
	}
}

// FireRoomNarration plays the room's one-shot radio script. Idempotent:
// at most once per room per session.
func (w *World) FireRoomNarration(roomKey string) {
	if w.fired[roomKey] {
		return
	}
	n, ok := w.Narrations[roomKey]
	if !ok {
		return
	}
	w.fired[roomKey] = true

	lines, cue := n.Lines, n.Cue
	if w.CamerasDisabled && len(n.OffLines) > 0 {
		lines, cue = n.OffLines, n.OffCue
	}
	if cue != "" {
		w.sink.Cue(cue)
	}
	for _, line := range lines {
		w.sink.Say(line)
	}
}

// NarrationFired reports whether a room's one-shot script already ran.
func (w *World) NarrationFired(roomKey string) bool {
	return w.fired[roomKey]
}

// ApplyRoomEntryEffects runs the pressure rules for the room the
// player just entered: one-shot narration for interiors, camera-zone
// alert, blackout countdown, loot noise, then the move tick.
func (w *World) ApplyRoomEntryEffects(p *Player) {
	inside := w.Zones.Interiors[p.Location]
	if inside {
		w.FireRoomNarration(p.Location)
	}

	w.updateAlertOnMove(p.Location)

	if p.HasLoot && w.Zones.LootNoisy[p.Location] {
		w.RaiseAlert(w.Settings.LootNoise)
	}

	w.Tick(inside)
}

// DescribeObjects reports the room's visible items.
func (w *World) DescribeObjects(r *Room) {
	if len(r.Items) > 0 {
		w.sink.Say("Ves: " + strings.Join(r.Items, ", ") + ".")
		w.sink.Cue("buscar.wav")
		return
	}
	w.sink.Say("No parece haber algo útil a la vista.")
	w.sink.Cue("nada.wav")
}
