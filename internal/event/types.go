// internal/event/types.go
package event

const (
	LevelComplete EventType = "LevelComplete" // Уровень пройден, Data: id следующего уровня
	GameOverWin   EventType = "GameOverWin"   // Победа
	GameOverLoss  EventType = "GameOverLoss"  // Поражение
	ReturnToMenu  EventType = "ReturnToMenu"  // Выход в главное меню

	LevelStarted   EventType = "LevelStarted"   // Data: id уровня
	LevelRestarted EventType = "LevelRestarted" // Data: id уровня
	Paused         EventType = "Paused"
	Resumed        EventType = "Resumed"

	ScoreChanged      EventType = "ScoreChanged"      // Data: int
	KillsChanged      EventType = "KillsChanged"      // Data: int
	UserHealthChanged EventType = "UserHealthChanged" // Data: int
	BossHealthChanged EventType = "BossHealthChanged" // Data: int
	ShieldChanged     EventType = "ShieldChanged"     // Data: bool, активен ли щит

	CollaboratorFailed EventType = "CollaboratorFailed" // Data: error
	TransitionFailed   EventType = "TransitionFailed"   // Data: error
)

// AllTypes — все типы событий, для подписки «на всё».
var AllTypes = []EventType{
	LevelComplete, GameOverWin, GameOverLoss, ReturnToMenu,
	LevelStarted, LevelRestarted, Paused, Resumed,
	ScoreChanged, KillsChanged, UserHealthChanged, BossHealthChanged, ShieldChanged,
	CollaboratorFailed, TransitionFailed,
}

// SubscribeAll подписывает listener на все типы событий.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllTypes {
		d.Subscribe(t, listener)
	}
}
