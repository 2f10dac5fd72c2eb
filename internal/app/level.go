// internal/app/level.go
package app

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"go-sky-battle/internal/component"
	"go-sky-battle/internal/config"
	"go-sky-battle/internal/defs"
	"go-sky-battle/internal/entity"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/interfaces"
	"go-sky-battle/internal/system"
	"go-sky-battle/internal/utils"
)

// State — состояние уровня.
type State int

const (
	StateReady State = iota
	StateRunning
	StatePaused
	StateGameOverLoss
	StateGameOverWin
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOverLoss:
		return "game_over_loss"
	case StateGameOverWin:
		return "game_over_win"
	case StateTransitioning:
		return "transitioning"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Options — внешние зависимости уровня. Пустые поля заменяются заглушками.
type Options struct {
	Renderer     interfaces.Renderer
	Audio        interfaces.Audio
	Dispatcher   *event.Dispatcher
	RNG          utils.Random
	ShowHitboxes bool
	Field        component.Box // игровое поле; по умолчанию весь экран
}

func (o Options) withDefaults() Options {
	if o.Renderer == nil {
		o.Renderer = interfaces.NopRenderer{}
	}
	if o.Audio == nil {
		o.Audio = interfaces.NopAudio{}
	}
	if o.Dispatcher == nil {
		o.Dispatcher = event.NewDispatcher()
	}
	if o.RNG == nil {
		o.RNG = utils.NewPRNGService(0)
	}
	if o.Field.Empty() {
		o.Field = component.NewBox(mgl64.Vec2{0, 0}, mgl64.Vec2{config.ScreenWidth, config.ScreenHeight})
	}
	return o
}

// Level владеет всеми актёрами уровня и проводит тик симуляции.
// Все методы вызываются из одной горутины.
type Level struct {
	def   defs.LevelDefinition
	rules Rules

	registry   *entity.Registry
	user       *entity.Actor
	movement   *system.MovementSystem
	collisions *system.CollisionSystem

	renderer     interfaces.Renderer
	audio        interfaces.Audio
	dispatcher   *event.Dispatcher
	showHitboxes bool

	state          State
	score          int
	currentEnemies int
	ticks          int
	lastHealth     int
}

// NewLevel собирает уровень по определению. Неверная конфигурация
// возвращает ошибку с config.ErrInvalidConfig, уровень не создаётся.
func NewLevel(def defs.LevelDefinition, opts Options) (*Level, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	rules, err := NewRules(def, opts.RNG)
	if err != nil {
		return nil, err
	}
	l := &Level{
		def:          def,
		rules:        rules,
		registry:     entity.NewRegistry(),
		movement:     system.NewMovementSystem(opts.Field),
		collisions:   system.NewCollisionSystem(),
		renderer:     opts.Renderer,
		audio:        opts.Audio,
		dispatcher:   opts.Dispatcher,
		showHitboxes: opts.ShowHitboxes,
	}
	l.spawnUser()
	return l, nil
}

func (l *Level) spawnUser() {
	l.user = entity.NewUserPlane(l.def.PlayerHealth)
	l.registry.Friendly.Add(l.user)
	l.lastHealth = l.user.Health.Current()
}

// Start запускает уровень: самолёт игрока на сцене, играет музыка.
func (l *Level) Start() {
	if l.state != StateReady {
		log.Printf("level %s: start ignored in state %s", l.def.ID, l.state)
		return
	}
	l.state = StateRunning
	for _, a := range l.registry.Friendly.Actors() {
		l.attach(a)
	}
	l.playMusic()
	log.Printf("level %s started", l.def.ID)
	l.emit(event.LevelStarted, l.def.ID)
	l.emit(event.UserHealthChanged, l.user.Health.Current())
}

// Tick — один шаг симуляции. Вне RUNNING ничего не делает.
func (l *Level) Tick() {
	if l.state != StateRunning {
		return
	}
	l.ticks++

	l.rules.Spawn(l)
	l.movement.Update(l.registry)
	l.generateEnemyFire()
	l.collisions.ResolveAll(l.registry)
	l.handleEnemyPenetration()
	removed := l.removeAllDestroyedActors()
	l.updateKillCount(removed)
	l.renderHitboxes()
	l.notifyHealth()
	if o, ok := l.rules.(observer); ok {
		o.Observe(l)
	}
	l.checkIfGameOver()
}

// AddEnemyUnit регистрирует врага и показывает его на сцене.
func (l *Level) AddEnemyUnit(a *entity.Actor) {
	l.registry.Enemies.Add(a)
	l.currentEnemies++
	l.attach(a)
}

func (l *Level) generateEnemyFire() {
	l.registry.Enemies.Each(func(e *entity.Actor) {
		if p := e.Fire(); p != nil {
			l.registry.EnemyProjectiles.Add(p)
			l.attach(p)
		}
	})
}

// handleEnemyPenetration — враг за линией обороны ранит игрока и исчезает.
func (l *Level) handleEnemyPenetration() {
	l.registry.Enemies.Each(func(e *entity.Actor) {
		if e.X() >= config.DefenseLineX {
			return
		}
		l.user.TakeDamage()
		e.Destroy(entity.CausePenetration)
	})
}

func (l *Level) removeAllDestroyedActors() []*entity.Actor {
	removed := l.registry.Sweep()
	for _, a := range removed {
		l.detach(a)
	}
	return removed
}

// updateKillCount засчитывает только врагов, сбитых в бою.
func (l *Level) updateKillCount(removed []*entity.Actor) {
	kills := 0
	for _, a := range removed {
		if a.Kind != entity.KindEnemyPlane && a.Kind != entity.KindBoss {
			continue
		}
		if a.Cause() == entity.CauseCombat {
			kills++
		}
	}
	l.currentEnemies = l.registry.Enemies.Len()
	if kills == 0 {
		return
	}
	for i := 0; i < kills; i++ {
		l.user.Kills.Increment()
	}
	l.score += kills * config.PointsPerKill
	l.emit(event.KillsChanged, l.user.Kills.Kills())
	l.emit(event.ScoreChanged, l.score)
}

func (l *Level) renderHitboxes() {
	if !l.showHitboxes {
		return
	}
	draw := func(a *entity.Actor) {
		if err := l.renderer.RenderHitboxOverlay(a.HitBox()); err != nil {
			l.report("hitbox overlay", err)
		}
	}
	l.registry.Friendly.Each(draw)
	l.registry.Enemies.Each(draw)
}

func (l *Level) notifyHealth() {
	if hp := l.user.Health.Current(); hp != l.lastHealth {
		l.lastHealth = hp
		l.emit(event.UserHealthChanged, hp)
	}
}

func (l *Level) checkIfGameOver() {
	if l.user.Health.IsZero() {
		l.gameOver(StateGameOverLoss, event.GameOverLoss, config.TrackGameOver)
		return
	}
	switch o, next := l.rules.Outcome(l); o {
	case system.OutcomeWin:
		l.gameOver(StateGameOverWin, event.GameOverWin, config.TrackWin)
	case system.OutcomeAdvance:
		l.GoToNextLevel(next)
	case system.OutcomeLoss:
		l.gameOver(StateGameOverLoss, event.GameOverLoss, config.TrackGameOver)
	}
}

func (l *Level) gameOver(s State, et event.EventType, jingle string) {
	l.state = s
	l.stopMusic()
	if err := l.audio.PlayTrack(jingle, false); err != nil {
		l.report("play "+jingle, err)
	}
	log.Printf("level %s: %s, score %d", l.def.ID, s, l.score)
	l.emit(et, l.score)
}

// TogglePause переключает RUNNING и PAUSED. В других состояниях ничего не делает.
func (l *Level) TogglePause() {
	switch l.state {
	case StateRunning:
		l.state = StatePaused
		l.emit(event.Paused, nil)
	case StatePaused:
		l.state = StateRunning
		l.emit(event.Resumed, nil)
	}
}

// Restart начинает уровень заново с пустыми наборами и обнулённым счётом.
func (l *Level) Restart() error {
	if l.state == StateTransitioning {
		log.Printf("level %s: restart ignored while transitioning", l.def.ID)
		return nil
	}
	l.Teardown()
	if err := l.rules.Reset(); err != nil {
		return fmt.Errorf("level %s restart: %w", l.def.ID, err)
	}
	l.score = 0
	l.ticks = 0
	l.spawnUser()
	l.state = StateRunning
	l.attach(l.user)
	l.stopMusic()
	l.playMusic()
	log.Printf("level %s restarted", l.def.ID)
	l.emit(event.LevelRestarted, l.def.ID)
	l.emit(event.ScoreChanged, 0)
	l.emit(event.KillsChanged, 0)
	l.emit(event.UserHealthChanged, l.user.Health.Current())
	return nil
}

// GoToNextLevel уводит уровень в TRANSITIONING и сообщает менеджеру id следующего.
func (l *Level) GoToNextLevel(id string) {
	if l.state == StateTransitioning {
		return
	}
	l.state = StateTransitioning
	l.stopMusic()
	log.Printf("level %s complete, next %s", l.def.ID, id)
	l.emit(event.LevelComplete, id)
}

// GoToMainMenu уводит уровень в TRANSITIONING с возвратом в меню.
func (l *Level) GoToMainMenu() {
	if l.state == StateTransitioning {
		return
	}
	l.state = StateTransitioning
	l.stopMusic()
	l.emit(event.ReturnToMenu, l.def.ID)
}

// Teardown уничтожает и убирает со сцены всех актёров.
func (l *Level) Teardown() {
	for _, a := range l.registry.Teardown() {
		l.detach(a)
	}
	l.currentEnemies = 0
}

// Fire — выстрел игрока.
func (l *Level) Fire() {
	if l.state != StateRunning {
		return
	}
	if p := l.user.Fire(); p != nil {
		l.registry.UserProjectiles.Add(p)
		l.attach(p)
	}
}

func (l *Level) MoveUp()     { l.steer(-1) }
func (l *Level) MoveDown()   { l.steer(1) }
func (l *Level) StopMoving() { l.steer(0) }

func (l *Level) steer(direction float64) {
	if l.state != StateRunning {
		return
	}
	l.user.Steer(direction)
}

func (l *Level) State() State                     { return l.state }
func (l *Level) Score() int                       { return l.score }
func (l *Level) Kills() int                       { return l.user.Kills.Kills() }
func (l *Level) UserHealth() int                  { return l.user.Health.Current() }
func (l *Level) User() *entity.Actor              { return l.user }
func (l *Level) EnemyCount() int                  { return l.currentEnemies }
func (l *Level) Registry() *entity.Registry       { return l.registry }
func (l *Level) Definition() defs.LevelDefinition { return l.def }
func (l *Level) ID() string                       { return l.def.ID }
func (l *Level) Ticks() int                       { return l.ticks }
func (l *Level) Rules() Rules                     { return l.rules }

// Boss возвращает босса уровня или nil.
func (l *Level) Boss() *entity.Actor {
	if r, ok := l.rules.(*BossRules); ok && r.Spawned() {
		return r.Boss()
	}
	return nil
}

func (l *Level) attach(a *entity.Actor) {
	if err := l.renderer.AttachActor(a); err != nil {
		l.report("attach "+a.Kind.String(), err)
	}
}

func (l *Level) detach(a *entity.Actor) {
	if err := l.renderer.DetachActor(a); err != nil {
		l.report("detach "+a.Kind.String(), err)
	}
}

func (l *Level) playMusic() {
	if l.def.Music == "" {
		return
	}
	if err := l.audio.PlayTrack(l.def.Music, true); err != nil {
		l.report("play "+l.def.Music, err)
	}
}

func (l *Level) stopMusic() {
	if err := l.audio.Stop(); err != nil {
		l.report("stop audio", err)
	}
}

// report — сбой рендера или звука не останавливает симуляцию.
func (l *Level) report(what string, err error) {
	log.Printf("level %s: %s: %v", l.def.ID, what, err)
	l.emit(event.CollaboratorFailed, fmt.Errorf("%s: %w", what, err))
}

func (l *Level) emit(et event.EventType, data interface{}) {
	l.dispatcher.Emit(et, data)
}
