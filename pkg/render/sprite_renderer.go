// pkg/render/sprite_renderer.go
package render

import (
	"errors"
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-sky-battle/internal/component"
	"go-sky-battle/internal/config"
	"go-sky-battle/internal/entity"
)

var errNilActor = errors.New("render: nil actor")

// SpriteRenderer keeps the attached actors in attach order and draws them
// as flat rectangles. Hitbox overlays live until ClearOverlays.
type SpriteRenderer struct {
	palette  Palette
	actors   map[uuid.UUID]*entity.Actor
	order    []uuid.UUID
	overlays []component.Box
}

func NewSpriteRenderer(p Palette) *SpriteRenderer {
	return &SpriteRenderer{
		palette: p,
		actors:  make(map[uuid.UUID]*entity.Actor),
	}
}

func (r *SpriteRenderer) AttachActor(a *entity.Actor) error {
	if a == nil {
		return errNilActor
	}
	if _, ok := r.actors[a.ID]; ok {
		return nil
	}
	r.actors[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

// DetachActor removes an actor; unknown actors are ignored.
func (r *SpriteRenderer) DetachActor(a *entity.Actor) error {
	if a == nil {
		return errNilActor
	}
	if _, ok := r.actors[a.ID]; !ok {
		return nil
	}
	delete(r.actors, a.ID)
	for i, id := range r.order {
		if id == a.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SpriteRenderer) RenderHitboxOverlay(b component.Box) error {
	r.overlays = append(r.overlays, b)
	return nil
}

// ClearOverlays drops the overlays of the previous tick.
func (r *SpriteRenderer) ClearOverlays() { r.overlays = r.overlays[:0] }

// Len reports the number of attached actors.
func (r *SpriteRenderer) Len() int { return len(r.order) }

// Draw paints the background, every attached actor and the overlays.
func (r *SpriteRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.palette.BackgroundColor)
	for _, id := range r.order {
		r.drawActor(screen, r.actors[id])
	}
	for _, b := range r.overlays {
		strokeBox(screen, b, r.palette.StrokeWidth, r.palette.HitboxColor)
	}
}

func (r *SpriteRenderer) drawActor(screen *ebiten.Image, a *entity.Actor) {
	fill := r.palette.ColorFor(a.Kind)
	body := a.HitBox()
	if a.Kind.IsProjectile() {
		vector.DrawFilledRect(screen, float32(body.Min.X()), float32(body.Min.Y()),
			float32(body.Width()), float32(body.Height()), fill, false)
		return
	}
	bounds := a.Bounds()
	strokeBox(screen, bounds, 1, DarkenColor(fill))
	vector.DrawFilledRect(screen, float32(body.Min.X()), float32(body.Min.Y()),
		float32(body.Width()), float32(body.Height()), fill, false)

	if a.Shield != nil && a.Shield.IsActive() {
		shield := bounds.Shrink(-config.ShieldPadding)
		strokeBox(screen, shield, 4, r.palette.ShieldColor)
	}
}

func strokeBox(screen *ebiten.Image, b component.Box, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(b.Min.X()), float32(b.Min.Y()),
		float32(b.Width()), float32(b.Height()), width, clr, false)
}
