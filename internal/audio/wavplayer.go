package audio

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// The ebitengine audio context is process-global.
var sharedContext = sync.OnceValue(func() *eaudio.Context {
	return eaudio.NewContext(sampleRate)
})

// WAVPlayer plays cues from a directory of WAV assets through the
// ebitengine audio context. Playback is asynchronous; missing files
// and decode failures are logged at debug level and dropped.
type WAVPlayer struct {
	dir string
	log *slog.Logger

	mu    sync.Mutex
	cache map[string][]byte
}

func NewWAVPlayer(dir string, log *slog.Logger) *WAVPlayer {
	return &WAVPlayer{
		dir:   dir,
		log:   log,
		cache: make(map[string][]byte),
	}
}

func (p *WAVPlayer) Play(cueID string, pos *Position, gain *float64) {
	params := Resolve(cueID, pos, gain)
	go p.play(cueID, params)
}

func (p *WAVPlayer) play(cueID string, params Params) {
	data, err := p.load(cueID)
	if err != nil {
		p.log.Debug("audio asset unavailable", "cue", cueID, "error", err)
		return
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		p.log.Debug("audio decode failed", "cue", cueID, "error", err)
		return
	}

	player, err := sharedContext().NewPlayer(stream)
	if err != nil {
		p.log.Debug("audio player unavailable", "cue", cueID, "error", err)
		return
	}
	player.SetVolume(volume(cueID, params))
	player.Play()

	// Hold the player until the clip drains, then release it.
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}
	_ = player.Close()
}

func (p *WAVPlayer) load(cueID string) ([]byte, error) {
	name := filepath.Base(cueID)
	if name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("bad cue id %q", cueID)
	}

	p.mu.Lock()
	data, ok := p.cache[name]
	p.mu.Unlock()
	if ok {
		return data, nil
	}

	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[name] = data
	p.mu.Unlock()
	return data, nil
}

// volume folds the positional hint into a scalar: mono point sources
// attenuate with distance from the listener.
func volume(cueID string, p Params) float64 {
	g := p.Gain
	if Positional(cueID) {
		d := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		g /= 1 + d
	}
	return math.Min(1, math.Max(0, g))
}
