// internal/interfaces/renderer.go
package interfaces

import (
	"go-sky-battle/internal/component"
	"go-sky-battle/internal/entity"
)

// Renderer — сцена, в которую уровень добавляет и из которой убирает актёров.
type Renderer interface {
	AttachActor(a *entity.Actor) error
	DetachActor(a *entity.Actor) error
	// RenderHitboxOverlay — отладочная рамка хитбокса на текущий кадр.
	RenderHitboxOverlay(b component.Box) error
}

// NopRenderer ничего не рисует.
type NopRenderer struct{}

func (NopRenderer) AttachActor(*entity.Actor) error         { return nil }
func (NopRenderer) DetachActor(*entity.Actor) error         { return nil }
func (NopRenderer) RenderHitboxOverlay(component.Box) error { return nil }
