// internal/sound/ebiten_audio.go
package sound

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// EbitenAudio проигрывает WAV-дорожки из каталога dir (<name>.wav).
// Зацикленная дорожка одна (музыка уровня), разовые звуки играют поверх неё.
type EbitenAudio struct {
	ctx     *audio.Context
	dir     string
	cache   map[string][]byte
	music   *audio.Player
	effects []*audio.Player
}

// NewEbitenAudio создаёт проигрыватель. Аудио-контекст ebiten один на процесс.
func NewEbitenAudio(dir string) *EbitenAudio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &EbitenAudio{ctx: ctx, dir: dir, cache: make(map[string][]byte)}
}

func (a *EbitenAudio) PlayTrack(name string, loop bool) error {
	data, err := a.load(name)
	if err != nil {
		return err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	if loop {
		if a.music != nil {
			a.music.Close()
		}
		player, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
		if err != nil {
			return fmt.Errorf("player %s: %w", name, err)
		}
		a.music = player
		player.Play()
		return nil
	}

	player, err := a.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("player %s: %w", name, err)
	}
	a.pruneEffects()
	a.effects = append(a.effects, player)
	player.Play()
	return nil
}

// Stop глушит музыку и все разовые звуки.
func (a *EbitenAudio) Stop() error {
	if a.music != nil {
		if err := a.music.Close(); err != nil {
			return fmt.Errorf("stop music: %w", err)
		}
		a.music = nil
	}
	for _, p := range a.effects {
		p.Close()
	}
	a.effects = nil
	return nil
}

func (a *EbitenAudio) load(name string) ([]byte, error) {
	if data, ok := a.cache[name]; ok {
		return data, nil
	}
	data, err := os.ReadFile(filepath.Join(a.dir, name+".wav"))
	if err != nil {
		return nil, fmt.Errorf("failed to read track %s: %w", name, err)
	}
	a.cache[name] = data
	return data, nil
}

func (a *EbitenAudio) pruneEffects() {
	kept := a.effects[:0]
	for _, p := range a.effects {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		p.Close()
	}
	a.effects = kept
}
