// internal/interfaces/audio.go
package interfaces

// Audio — проигрыватель именованных дорожек.
type Audio interface {
	PlayTrack(name string, loop bool) error
	Stop() error
}

// NopAudio молчит.
type NopAudio struct{}

func (NopAudio) PlayTrack(string, bool) error { return nil }
func (NopAudio) Stop() error                  { return nil }
