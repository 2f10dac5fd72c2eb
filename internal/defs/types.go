// internal/defs/types.go
package defs

// LevelKind определяет правила победы на уровне.
type LevelKind string

const (
	KindKillTarget LevelKind = "kills" // набрать нужное число сбитых врагов
	KindBoss       LevelKind = "boss"  // сбить босса
)

// LevelDefinition описывает один уровень в levels.json.
type LevelDefinition struct {
	ID               string    `json:"id"`
	Kind             LevelKind `json:"kind"`
	TotalEnemies     int       `json:"total_enemies,omitempty"`     // одновременно живых врагов
	SpawnProbability float64   `json:"spawn_probability,omitempty"` // вероятность спавна на слот за тик
	KillsToAdvance   int       `json:"kills_to_advance,omitempty"`
	PlayerHealth     int       `json:"player_health"`
	NextLevel        string    `json:"next_level,omitempty"` // пусто — последний уровень
	Music            string    `json:"music,omitempty"`
	Background       string    `json:"background,omitempty"`
}
