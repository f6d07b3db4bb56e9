package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
)

const sampleRate = 44100

// AudioManager plays a short click whenever a move lands.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	volume  float64
}

// NewAudioManager creates the audio context and synthesizes the clicks.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		volume:  0.5,
	}
	am.sounds = map[SoundType][]byte{
		SoundMove:    synthClick(440, 0.08, 0.3),
		SoundCapture: synthClick(330, 0.12, 0.5),
	}
	return am
}

// synthClick renders a decaying sine with a little noise as 16-bit stereo PCM.
func synthClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		sample := (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude

		sample = math.Max(-1, math.Min(1, sample))
		val := int16(sample * 32767)

		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A new player per call lets clicks overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}
