package main

import (
	"strings"

	"github.com/dmarulanda/atraco/internal/audio"
	"github.com/dmarulanda/atraco/internal/transcript"
)

// entry is one transcript line with its speaker role.
type entry struct {
	role    string // "game" or "player"
	content string
}

// captureSink collects narration for the viewport and forwards cues to
// the audio backend. Execute is synchronous, so the UI reads the
// captured lines right after each command without locking.
type captureSink struct {
	player  audio.Player
	ambient transcript.AmbientLookup
	entries []entry
}

func newCaptureSink(player audio.Player, ambient transcript.AmbientLookup) *captureSink {
	return &captureSink{player: player, ambient: ambient}
}

func (s *captureSink) Say(line string) {
	s.entries = append(s.entries, entry{role: "game", content: line})
}

func (s *captureSink) Cue(id string) {
	s.player.Play(id, nil, nil)
}

func (s *captureSink) Ambient(roomKey string) {
	cue := s.ambient(roomKey)
	if cue == "" {
		return
	}
	p := audio.AmbientParams(roomKey)
	pos := &audio.Position{X: p.X, Y: p.Y, Z: p.Z}
	gain := p.Gain
	s.player.Play(cue, pos, &gain)
}

func (s *captureSink) addPlayerLine(input string) {
	s.entries = append(s.entries, entry{role: "player", content: input})
}

// plainTranscript renders the session so far as copyable text.
func (s *captureSink) plainTranscript() string {
	var b strings.Builder
	for _, e := range s.entries {
		if e.role == "player" {
			b.WriteString("> ")
		}
		b.WriteString(e.content)
		b.WriteString("\n")
	}
	return b.String()
}
