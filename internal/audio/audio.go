// Package audio is the playback collaborator. It accepts cue ids with
// optional position/gain hints and returns without contributing to
// game state; every failure is swallowed so playback can never
// interrupt game logic.
package audio

// Params are a cue's source position and gain.
type Params struct {
	X, Y, Z float64
	Gain    float64
}

// Position is an explicit 3D hint overriding a cue's default.
type Position struct {
	X, Y, Z float64
}

// Player plays a cue. Fire-and-forget: no return value, no effect on
// game state.
type Player interface {
	Play(cueID string, pos *Position, gain *float64)
}

// Null discards every cue. The default backend when no audio
// directory is configured.
type Null struct{}

func (Null) Play(string, *Position, *float64) {}

// Resolve merges a cue's table defaults with explicit hints. Unknown
// cues fall back to a centered source at moderate gain.
func Resolve(cueID string, pos *Position, gain *float64) Params {
	p, ok := sfxParams[cueID]
	if !ok {
		p = Params{0, 0, 0, 0.60}
	}
	if pos != nil {
		p.X, p.Y, p.Z = pos.X, pos.Y, pos.Z
	}
	if gain != nil {
		p.Gain = *gain
	}
	return p
}

// RadioCue maps a narration key to its radio cue, falling back to the
// generic help cue for unmapped keys.
func RadioCue(key string) string {
	if cue, ok := radioCues[key]; ok {
		return cue
	}
	return "radio_ayuda.wav"
}

// AmbientParams returns the ambient source position for a room, or a
// soft centered default when the room has no entry.
func AmbientParams(roomKey string) Params {
	if p, ok := ambientSourcePos[roomKey]; ok {
		return p
	}
	return Params{0, 0, 1.2, 0.50}
}

// Positional reports whether a cue should be rendered as a mono point
// source with distance attenuation.
func Positional(cueID string) bool {
	return forceMono[cueID]
}
