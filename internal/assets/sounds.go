package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Sound effect files.
const (
	SoundJump = "jump.wav"
	SoundCoin = "coin.wav"
	SoundRoar = "roar.wav"
	SoundHit  = "hit.wav"
)

// Sound is a playable effect.
type Sound interface {
	Play()
}

type silentSound struct{}

func (silentSound) Play() {}

// Silent is the sound used whenever a real one cannot be loaded.
var Silent Sound = silentSound{}

type audio struct {
	mixer *beep.Mixer
}

func (a *audio) close() {
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// bufferedSound replays a decoded WAV through the shared mixer.
type bufferedSound struct {
	buf   *beep.Buffer
	mixer *beep.Mixer
}

func (s *bufferedSound) Play() {
	speaker.Lock()
	s.mixer.Add(s.buf.Streamer(0, s.buf.Len()))
	speaker.Unlock()
}

// EnableAudio opens the speaker. Until it succeeds every sound is silent.
func (p *Provider) EnableAudio() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.audio != nil {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("assets: init speaker: %w", err)
	}
	a := &audio{mixer: &beep.Mixer{}}
	speaker.Play(a.mixer)
	p.audio = a
	return nil
}

// LoadSound returns the effect in <dir>/<name>, or Silent if audio is off
// or the file cannot be decoded.
func (p *Provider) LoadSound(name string) Sound {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.sounds[name]; ok {
		return s
	}
	if p.audio == nil || p.dir == "" {
		return Silent
	}

	buf, err := decodeWAV(filepath.Join(p.dir, name))
	if err != nil {
		p.logger.Warn("sound unavailable, staying silent", "name", name, "err", err)
		p.sounds[name] = Silent
		return Silent
	}
	s := &bufferedSound{buf: buf, mixer: p.audio.mixer}
	p.sounds[name] = s
	return s
}

// decodeWAV reads a WAV file fully into memory at the speaker's rate.
func decodeWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	out := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(out)
	var src beep.Streamer = stream
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}
