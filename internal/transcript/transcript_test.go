package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarulanda/atraco/internal/audio"
)

type fakePlayer struct {
	cues  []string
	pos   []*audio.Position
	gains []*float64
}

func (f *fakePlayer) Play(cueID string, pos *audio.Position, gain *float64) {
	f.cues = append(f.cues, cueID)
	f.pos = append(f.pos, pos)
	f.gains = append(f.gains, gain)
}

func TestSink_Say(t *testing.T) {
	var buf strings.Builder
	sink := New(&buf, audio.Null{}, nil)

	sink.Say("La calle calla.")
	sink.Say("Tú no.")

	assert.Equal(t, "La calle calla.\nTú no.\n", buf.String())
}

func TestSink_Cue(t *testing.T) {
	player := &fakePlayer{}
	sink := New(&strings.Builder{}, player, nil)

	sink.Cue("pasos.wav")

	require.Len(t, player.cues, 1)
	assert.Equal(t, "pasos.wav", player.cues[0])
	assert.Nil(t, player.pos[0], "plain cues carry no position hint")
}

func TestSink_Ambient(t *testing.T) {
	player := &fakePlayer{}
	lookup := func(roomKey string) string {
		if roomKey == "boveda" {
			return "amb_boveda.wav"
		}
		return ""
	}
	sink := New(&strings.Builder{}, player, lookup)

	sink.Ambient("boveda")
	require.Len(t, player.cues, 1)
	assert.Equal(t, "amb_boveda.wav", player.cues[0])
	require.NotNil(t, player.pos[0], "ambient beds are positioned per room")
	require.NotNil(t, player.gains[0])

	sink.Ambient("exterior")
	assert.Len(t, player.cues, 1, "rooms without an ambient bed play nothing")
}

func TestSink_AmbientWithoutLookup(t *testing.T) {
	player := &fakePlayer{}
	sink := New(&strings.Builder{}, player, nil)

	sink.Ambient("boveda")
	assert.Empty(t, player.cues)
}
