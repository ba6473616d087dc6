// Package sound synthesises the hit blip.
package sound

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100
	BlipFreq   = 880
	BlipLength = 60 * time.Millisecond
	blipVolume = 0.25
)

type Blip struct {
	player *audio.Player
}

// NewBlip prepares the hit blip on ctx. Only one audio.Context may exist
// per process, so the caller owns it.
func NewBlip(ctx *audio.Context) *Blip {
	pcm := Tone(ctx.SampleRate(), BlipFreq, BlipLength, blipVolume)
	return &Blip{player: ctx.NewPlayerFromBytes(pcm)}
}

// Play restarts the blip from the beginning.
func (b *Blip) Play() {
	if err := b.player.Rewind(); err != nil {
		log.Printf("[Sound] rewind error: %v\n", err)
		return
	}
	b.player.Play()
}

// Tone renders a square wave that fades out linearly, as 16-bit
// little-endian stereo PCM.
func Tone(sampleRate int, freq float64, d time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		phase := math.Mod(float64(i)*freq/float64(sampleRate), 1)
		val := volume
		if phase >= 0.5 {
			val = -volume
		}
		val *= 1 - float64(i)/float64(n)
		v := int16(val * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
