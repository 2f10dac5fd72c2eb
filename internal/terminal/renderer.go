// internal/terminal/renderer.go
package terminal

import (
	"errors"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"go-sky-battle/internal/component"
	"go-sky-battle/internal/config"
	"go-sky-battle/internal/entity"
	mathutil "go-sky-battle/pkg/utils"
)

var errNilActor = errors.New("terminal: nil actor")

// Renderer рисует поле в терминале: экранные координаты масштабируются
// в ячейки, последняя строка отдана под HUD.
type Renderer struct {
	screen   tcell.Screen
	actors   map[uuid.UUID]*entity.Actor
	order    []uuid.UUID
	overlays []component.Box
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, actors: make(map[uuid.UUID]*entity.Actor)}
}

func (r *Renderer) AttachActor(a *entity.Actor) error {
	if a == nil {
		return errNilActor
	}
	if _, ok := r.actors[a.ID]; !ok {
		r.actors[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	return nil
}

func (r *Renderer) DetachActor(a *entity.Actor) error {
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

func (r *Renderer) RenderHitboxOverlay(b component.Box) error {
	r.overlays = append(r.overlays, b)
	return nil
}

func (r *Renderer) ClearOverlays() { r.overlays = r.overlays[:0] }

func (r *Renderer) Len() int { return len(r.order) }

// Draw перерисовывает экран целиком.
func (r *Renderer) Draw(hud []string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return
	}
	for _, id := range r.order {
		a := r.actors[id]
		style := tcell.StyleDefault.Foreground(toTerminalColor(kindColor(a.Kind)))
		x0, y0, x1, y1 := CellRect(a.HitBox(), w, rows)
		r.fill(x0, y0, x1, y1, glyph(a.Kind), style)
		if a.Shield != nil && a.Shield.IsActive() {
			sx0, sy0, sx1, sy1 := CellRect(a.Bounds(), w, rows)
			r.frame(sx0, sy0, sx1, sy1, '#', tcell.StyleDefault.Foreground(toTerminalColor(config.ShieldColor)))
		}
	}
	overlay := tcell.StyleDefault.Foreground(toTerminalColor(config.HitboxColor))
	for _, b := range r.overlays {
		x0, y0, x1, y1 := CellRect(b, w, rows)
		r.frame(x0, y0, x1, y1, '+', overlay)
	}
	r.text(0, h-1, strings.Join(hud, " | "), tcell.StyleDefault.Reverse(true))
	r.screen.Show()
}

// Message выводит строки по центру пустого экрана (меню, конец игры).
func (r *Renderer) Message(lines []string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	y := h/2 - len(lines)/2
	for i, line := range lines {
		r.text((w-len(line))/2, y+i, line, tcell.StyleDefault)
	}
	r.screen.Show()
}

// CellRect переводит прямоугольник экрана в диапазон ячеек [x0,x1]×[y0,y1]
// сетки cols×rows. Любой видимый прямоугольник занимает хотя бы одну ячейку.
func CellRect(b component.Box, cols, rows int) (x0, y0, x1, y1 int) {
	sx := float64(cols) / config.ScreenWidth
	sy := float64(rows) / config.ScreenHeight
	x0 = int(math.Floor(b.Min.X() * sx))
	y0 = int(math.Floor(b.Min.Y() * sy))
	x1 = int(math.Ceil(b.Max.X()*sx)) - 1
	y1 = int(math.Ceil(b.Max.Y()*sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	for y := mathutil.ClampInt(y0, 0, h-1); y <= mathutil.ClampInt(y1, -1, h-2); y++ {
		for x := mathutil.ClampInt(x0, 0, w); x <= mathutil.ClampInt(x1, -1, w-1); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) frame(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	put := func(x, y int) {
		if x >= 0 && x < w && y >= 0 && y < h-1 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	for x := x0; x <= x1; x++ {
		put(x, y0)
		put(x, y1)
	}
	for y := y0; y <= y1; y++ {
		put(x0, y)
		put(x1, y)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func glyph(k entity.Kind) rune {
	switch k {
	case entity.KindUserPlane:
		return '>'
	case entity.KindEnemyPlane:
		return '<'
	case entity.KindBoss:
		return 'B'
	case entity.KindUserProjectile:
		return '-'
	case entity.KindEnemyProjectile:
		return '*'
	case entity.KindBossProjectile:
		return '~'
	}
	return '?'
}

func kindColor(k entity.Kind) color.RGBA {
	switch k {
	case entity.KindUserPlane:
		return config.UserPlaneColor
	case entity.KindEnemyPlane:
		return config.EnemyPlaneColor
	case entity.KindBoss:
		return config.BossColor
	case entity.KindUserProjectile:
		return config.UserProjectileColor
	case entity.KindEnemyProjectile:
		return config.EnemyProjectileColor
	case entity.KindBossProjectile:
		return config.BossProjectileColor
	}
	return config.TextLightColor
}

func toTerminalColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
