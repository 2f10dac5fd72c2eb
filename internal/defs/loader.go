// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-sky-battle/internal/config"
)

//go:embed levels.json
var defaultLevels []byte

// LevelLibrary — уровни по id, в порядке файла.
type LevelLibrary struct {
	levels map[string]LevelDefinition
	order  []string
}

// Get возвращает определение уровня по id.
func (l *LevelLibrary) Get(id string) (LevelDefinition, bool) {
	def, ok := l.levels[id]
	return def, ok
}

// First — первый уровень файла, с него начинается игра.
func (l *LevelLibrary) First() LevelDefinition {
	return l.levels[l.order[0]]
}

// IDs возвращает id уровней в порядке файла.
func (l *LevelLibrary) IDs() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

func (l *LevelLibrary) Len() int { return len(l.order) }

// Validate проверяет одно определение.
func (d LevelDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("level without id: %w", config.ErrInvalidConfig)
	}
	if d.PlayerHealth <= 0 {
		return fmt.Errorf("level %s: player health %d: %w", d.ID, d.PlayerHealth, config.ErrInvalidConfig)
	}
	switch d.Kind {
	case KindKillTarget:
		if d.TotalEnemies <= 0 {
			return fmt.Errorf("level %s: total enemies %d: %w", d.ID, d.TotalEnemies, config.ErrInvalidConfig)
		}
		if d.SpawnProbability < 0 || d.SpawnProbability > 1 {
			return fmt.Errorf("level %s: spawn probability %v: %w", d.ID, d.SpawnProbability, config.ErrInvalidConfig)
		}
		if d.KillsToAdvance <= 0 {
			return fmt.Errorf("level %s: kills to advance %d: %w", d.ID, d.KillsToAdvance, config.ErrInvalidConfig)
		}
	case KindBoss:
	default:
		return fmt.Errorf("level %s: unknown kind %q: %w", d.ID, d.Kind, config.ErrInvalidConfig)
	}
	return nil
}

// ParseLevelDefinitions разбирает и проверяет JSON с уровнями:
// id уникальны, next_level ссылается на существующий уровень.
func ParseLevelDefinitions(data []byte) (*LevelLibrary, error) {
	var levelDefs []LevelDefinition
	if err := json.Unmarshal(data, &levelDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}
	if len(levelDefs) == 0 {
		return nil, fmt.Errorf("no level definitions: %w", config.ErrInvalidConfig)
	}

	lib := &LevelLibrary{levels: make(map[string]LevelDefinition, len(levelDefs))}
	for _, def := range levelDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.levels[def.ID]; dup {
			return nil, fmt.Errorf("duplicate level %s: %w", def.ID, config.ErrInvalidConfig)
		}
		lib.levels[def.ID] = def
		lib.order = append(lib.order, def.ID)
	}
	for _, id := range lib.order {
		next := lib.levels[id].NextLevel
		if next == "" {
			continue
		}
		if _, ok := lib.levels[next]; !ok {
			return nil, fmt.Errorf("level %s: next level %s not defined: %w", id, next, config.ErrInvalidConfig)
		}
	}
	return lib, nil
}

// LoadLevelDefinitions читает файл уровней с диска.
func LoadLevelDefinitions(path string) (*LevelLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file: %w", err)
	}
	lib, err := ParseLevelDefinitions(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d level definitions from %s", lib.Len(), path)
	return lib, nil
}

// DefaultLevels возвращает встроенный набор уровней.
func DefaultLevels() *LevelLibrary {
	lib, err := ParseLevelDefinitions(defaultLevels)
	if err != nil {
		panic(fmt.Sprintf("embedded levels.json is broken: %v", err))
	}
	return lib
}
