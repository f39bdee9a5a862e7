package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays a short two-note tone when the button is selected. Without an
// audio device it stays silent.
type chime struct {
	ready bool
}

func newChime() (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}
	return &chime{ready: true}, nil
}

func (c *chime) play() {
	if c == nil || !c.ready {
		return
	}
	low, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return
	}
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(40*time.Millisecond), low),
		beep.Take(sampleRate.N(60*time.Millisecond), high),
	))
}

func (c *chime) close() {
	if c != nil && c.ready {
		speaker.Close()
	}
}
