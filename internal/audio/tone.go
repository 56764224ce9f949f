// Package audio renders short procedural cues with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// toneGenerator streams a sine tone with a linear attack/release envelope.
type toneGenerator struct {
	freq    float64
	pos     int
	samples int
	attack  int
	release int
	volume  float64
}

func newTone(freq float64, dur time.Duration, volume float64) *toneGenerator {
	samples := sampleRate.N(dur)
	edge := sampleRate.N(5 * time.Millisecond)
	if edge*2 > samples {
		edge = samples / 2
	}
	return &toneGenerator{
		freq:    freq,
		samples: samples,
		attack:  edge,
		release: edge,
		volume:  volume,
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(sampleRate)
		v := g.volume * math.Sin(2*math.Pi*g.freq*t)

		vol := 1.0
		if g.pos < g.attack && g.attack > 0 {
			vol = float64(g.pos) / float64(g.attack)
		} else if rest := g.samples - g.pos; rest < g.release && g.release > 0 {
			vol = float64(rest) / float64(g.release)
		}
		v *= vol

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// buzzGenerator streams a sawtooth buzz for miss feedback.
type buzzGenerator struct {
	freq    float64
	pos     int
	samples int
	volume  float64
}

func newBuzz(freq float64, dur time.Duration, volume float64) *buzzGenerator {
	return &buzzGenerator{freq: freq, samples: sampleRate.N(dur), volume: volume}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(sampleRate)
		phase := t*g.freq - math.Floor(t*g.freq)
		fade := float64(g.samples-g.pos) / float64(g.samples)
		v := g.volume * (2*phase - 1) * fade

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }

// semitone raises a base frequency by n semitones in equal temperament.
func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}
