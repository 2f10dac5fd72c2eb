package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"go-sky-battle/internal/component"
	"go-sky-battle/internal/defs"
	"go-sky-battle/internal/entity"
	"go-sky-battle/internal/event"
	"go-sky-battle/internal/utils"
)

type recordingRenderer struct {
	attached  map[uuid.UUID]*entity.Actor
	detached  int
	overlays  []component.Box
	attachErr error
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{attached: make(map[uuid.UUID]*entity.Actor)}
}

func (r *recordingRenderer) AttachActor(a *entity.Actor) error {
	if r.attachErr != nil {
		return r.attachErr
	}
	r.attached[a.ID] = a
	return nil
}

func (r *recordingRenderer) DetachActor(a *entity.Actor) error {
	delete(r.attached, a.ID)
	r.detached++
	return nil
}

func (r *recordingRenderer) RenderHitboxOverlay(b component.Box) error {
	r.overlays = append(r.overlays, b)
	return nil
}

type recordingAudio struct {
	played []string
	loops  []bool
	stops  int
}

func (a *recordingAudio) PlayTrack(name string, loop bool) error {
	a.played = append(a.played, name)
	a.loops = append(a.loops, loop)
	return nil
}

func (a *recordingAudio) Stop() error {
	a.stops++
	return nil
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) last(t event.EventType) (event.Event, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Type == t {
			return l.events[i], true
		}
	}
	return event.Event{}, false
}

type harness struct {
	level    *Level
	renderer *recordingRenderer
	audio    *recordingAudio
	events   *eventLog
	opts     Options
}

func killsLevel(total int, p float64, kills int, next string) defs.LevelDefinition {
	return defs.LevelDefinition{
		ID:               "TEST",
		Kind:             defs.KindKillTarget,
		TotalEnemies:     total,
		SpawnProbability: p,
		KillsToAdvance:   kills,
		PlayerHealth:     5,
		NextLevel:        next,
		Music:            "level_music",
	}
}

func bossLevel() defs.LevelDefinition {
	return defs.LevelDefinition{ID: "BOSS", Kind: defs.KindBoss, PlayerHealth: 5, Music: "level_music"}
}

func newHarness(t *testing.T, def defs.LevelDefinition, rng utils.Random) *harness {
	t.Helper()
	h := &harness{
		renderer: newRecordingRenderer(),
		audio:    &recordingAudio{},
		events:   &eventLog{},
	}
	h.opts = Options{
		Renderer:   h.renderer,
		Audio:      h.audio,
		Dispatcher: event.NewDispatcher(),
		RNG:        rng,
	}
	h.opts.Dispatcher.SubscribeAll(h.events)
	lvl, err := NewLevel(def, h.opts)
	require.NoError(t, err)
	h.level = lvl
	return h
}

// quietEnemy — враг, который никогда не стреляет.
func quietEnemy(x, y float64) *entity.Actor {
	return entity.NewEnemyPlane(x, y, utils.NewScriptedRandom(0.5))
}

// overlappingEnemy стоит на самолёте игрока и после шага всё ещё пересекается с ним.
func overlappingEnemy(l *Level) *entity.Actor {
	u := l.User()
	return quietEnemy(u.X()+10, u.Y())
}
