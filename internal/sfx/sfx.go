// Package sfx plays short interface tones. Sound is optional: when the audio
// device cannot be opened every call is a no-op.
package sfx

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a feedback sound.
type Cue int

const (
	CueOpen Cue = iota
	CueNavigate
	CueClose
	CueToggle
)

var cueTones = map[Cue]struct {
	freq float64
	dur  time.Duration
}{
	CueOpen:     {660, 60 * time.Millisecond},
	CueNavigate: {880, 35 * time.Millisecond},
	CueClose:    {440, 60 * time.Millisecond},
	CueToggle:   {990, 25 * time.Millisecond},
}

// Player emits cues on the default audio device.
type Player struct {
	volume float64
	ready  bool
}

// NewPlayer opens the speaker when enabled. Failure leaves a silent player.
func NewPlayer(enabled bool, volume float64, log *zap.Logger) *Player {
	p := &Player{volume: volume}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Debug("audio unavailable, interface sounds disabled", zap.Error(err))
		return p
	}
	p.ready = true
	return p
}

func (p *Player) Enabled() bool { return p != nil && p.ready }

func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	tone, ok := cueTones[c]
	if !ok {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: Tone(sampleRate, tone.freq, tone.dur),
		Base:     2,
		Volume:   p.volume,
	})
}

// Tone is a sine blip of the given length with a linear decay, so it ends
// without a click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}
