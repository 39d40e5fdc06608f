// Package transcript connects the game engine's output to a text
// stream and an audio backend. It is the only place where narration
// becomes bytes and cue ids become playback calls.
package transcript

import (
	"fmt"
	"io"

	"github.com/dmarulanda/atraco/internal/audio"
)

// AmbientLookup resolves a room key to its ambient cue id, or "" when
// the room has no ambient bed.
type AmbientLookup func(roomKey string) string

// Sink writes narration lines to w and forwards cues to the audio
// player. Write errors are dropped: a broken pipe ends the process
// through the input loop, not through game logic.
type Sink struct {
	w       io.Writer
	player  audio.Player
	ambient AmbientLookup
}

// New builds a sink. player may not be nil; pass audio.Null{} to play
// nothing.
func New(w io.Writer, player audio.Player, ambient AmbientLookup) *Sink {
	return &Sink{w: w, player: player, ambient: ambient}
}

func (s *Sink) Say(line string) {
	fmt.Fprintln(s.w, line)
}

func (s *Sink) Cue(id string) {
	s.player.Play(id, nil, nil)
}

func (s *Sink) Ambient(roomKey string) {
	if s.ambient == nil {
		return
	}
	cue := s.ambient(roomKey)
	if cue == "" {
		return
	}
	p := audio.AmbientParams(roomKey)
	pos := &audio.Position{X: p.X, Y: p.Y, Z: p.Z}
	gain := p.Gain
	s.player.Play(cue, pos, &gain)
}
