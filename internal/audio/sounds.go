package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundStroke    Sound = iota // putter click
	SoundSink                   // ball dropping into the cup
	SoundRoundOver              // two-note chime after the last hole
)

func (s Sound) String() string {
	switch s {
	case SoundStroke:
		return "stroke"
	case SoundSink:
		return "sink"
	case SoundRoundOver:
		return "roundover"
	default:
		return "unknown"
	}
}

// Wave shapes for tone.
type Wave int

const (
	WaveSine Wave = iota
	WaveNoise
)

// tone is a fixed-length oscillator whose pitch glides linearly from
// `from` to `to` Hz and whose amplitude decays exponentially.
type tone struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64
	decay    float64 // 1/seconds
	total    int
	pos      int
	phase    float64
	seed     uint32
}

// NewTone creates a decaying tone streamer.
func NewTone(rate beep.SampleRate, wave Wave, from, to float64, d time.Duration, decay float64) beep.Streamer {
	return &tone{
		rate:  rate,
		wave:  wave,
		from:  from,
		to:    to,
		decay: decay,
		total: rate.N(d),
		seed:  0x2545f491,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		frac := float64(t.pos) / float64(t.total)
		secs := float64(t.pos) / float64(t.rate)
		freq := t.from + (t.to-t.from)*frac

		var val float64
		switch t.wave {
		case WaveNoise:
			// xorshift keeps the noise reproducible
			t.seed ^= t.seed << 13
			t.seed ^= t.seed >> 17
			t.seed ^= t.seed << 5
			val = float64(t.seed)/float64(math.MaxUint32)*2 - 1
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= math.Exp(-secs * t.decay)

		// Short fade-out avoids a click at the end
		if left := t.total - t.pos; left < t.rate.N(5*time.Millisecond) {
			val *= float64(left) / float64(t.rate.N(5*time.Millisecond))
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewSound builds the streamer for a sound effect at the given volume.
func NewSound(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundStroke:
		// A noise tick over a short high ping
		st = beep.Mix(
			withVolume(NewTone(rate, WaveNoise, 0, 0, 25*time.Millisecond, 120), 0.35),
			withVolume(NewTone(rate, WaveSine, 1400, 1100, 60*time.Millisecond, 60), 0.5),
		)
	case SoundSink:
		// Falling "plop" followed by a low rattle in the cup
		st = beep.Seq(
			withVolume(NewTone(rate, WaveSine, 520, 140, 160*time.Millisecond, 12), 0.8),
			withVolume(NewTone(rate, WaveSine, 180, 160, 90*time.Millisecond, 30), 0.4),
		)
	case SoundRoundOver:
		st = beep.Seq(
			withVolume(NewTone(rate, WaveSine, 784, 784, 140*time.Millisecond, 6), 0.6),
			withVolume(NewTone(rate, WaveSine, 1047, 1047, 320*time.Millisecond, 5), 0.6),
		)
	default:
		return nil
	}
	return withVolume(st, volume)
}
