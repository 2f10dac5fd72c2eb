// internal/terminal/audio.go
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-sky-battle/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// note — одна нота мелодии; freq 0 — пауза.
type note struct {
	freq float64
	dur  time.Duration
}

// tracks — синтезированные дорожки вместо WAV-файлов.
var tracks = map[string][]note{
	config.TrackLevelMusic: {
		{220, 200 * time.Millisecond}, {0, 100 * time.Millisecond},
		{262, 200 * time.Millisecond}, {0, 100 * time.Millisecond},
		{330, 300 * time.Millisecond}, {0, 300 * time.Millisecond},
	},
	config.TrackWin: {
		{523, 150 * time.Millisecond}, {659, 150 * time.Millisecond}, {784, 400 * time.Millisecond},
	},
	config.TrackGameOver: {
		{392, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {262, 500 * time.Millisecond},
	},
}

// BeepAudio проигрывает синтезированные дорожки через микшер beep.
type BeepAudio struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	music *beep.Ctrl
}

// NewBeepAudio инициализирует динамик. Ошибка не фатальна: хост может взять NopAudio.
func NewBeepAudio() (*BeepAudio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	a := &BeepAudio{mixer: &beep.Mixer{}}
	speaker.Play(a.mixer)
	return a, nil
}

func (a *BeepAudio) PlayTrack(name string, loop bool) error {
	notes, ok := tracks[name]
	if !ok {
		return fmt.Errorf("unknown track %q", name)
	}
	first, err := phrase(notes)
	if err != nil {
		return fmt.Errorf("track %s: %w", name, err)
	}

	speaker.Lock()
	defer speaker.Unlock()
	a.mu.Lock()
	defer a.mu.Unlock()

	if !loop {
		a.mixer.Add(first)
		return nil
	}
	if a.music != nil {
		a.music.Paused = true
	}
	next := first
	stream := beep.Iterate(func() beep.Streamer {
		if next != nil {
			s := next
			next = nil
			return s
		}
		s, err := phrase(notes)
		if err != nil {
			return nil
		}
		return s
	})
	a.music = &beep.Ctrl{Streamer: stream}
	a.mixer.Add(a.music)
	return nil
}

func (a *BeepAudio) Stop() error {
	speaker.Lock()
	defer speaker.Unlock()
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.music != nil {
		a.music.Paused = true
		a.music = nil
	}
	a.mixer.Clear()
	return nil
}

// Close останавливает звук и закрывает динамик.
func (a *BeepAudio) Close() {
	a.Stop()
	speaker.Close()
}

// phrase собирает мелодию из синусоид и пауз.
func phrase(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		length := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(length))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(length, &gain{s: tone, volume: 0.2}))
	}
	return beep.Seq(parts...), nil
}

// phraseLength — длина мелодии в сэмплах.
func phraseLength(notes []note) int {
	n := 0
	for _, nt := range notes {
		n += sampleRate.N(nt.dur)
	}
	return n
}

// gain приглушает поток, чтобы синусоида не резала слух.
type gain struct {
	s      beep.Streamer
	volume float64
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.volume
		samples[i][1] *= g.volume
	}
	return n, ok
}

func (g *gain) Err() error { return g.s.Err() }
