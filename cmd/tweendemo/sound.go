package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// chime plays a short sine tone through the default audio device.
type chime struct {
	rate beep.SampleRate
}

func newChime() (*chime, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &chime{rate: rate}, nil
}

// play queues a tone of freq Hz. A nil chime is silent.
func (c *chime) play(freq float64) {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(c.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(60*time.Millisecond), sine))
}

func (c *chime) close() {
	if c != nil {
		speaker.Close()
	}
}
