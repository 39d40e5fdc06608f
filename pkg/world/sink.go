package world

// Sink receives narration lines and audio cues produced by the engine.
// The engine never writes to stdout directly; the line loop, the TUI
// and the tests each attach their own sink.
type Sink interface {
	// Say emits one narrative line.
	Say(line string)
	// Cue queues an audio cue by id. Implementations must never fail
	// back into game logic.
	Cue(id string)
	// Ambient queues the ambient bed for a room.
	Ambient(roomKey string)
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Say(string)     {}
func (NopSink) Cue(string)     {}
func (NopSink) Ambient(string) {}
