// internal/system/spawner.go
package system

import (
	"fmt"

	"go-sky-battle/internal/config"
	"go-sky-battle/internal/entity"
	"go-sky-battle/internal/utils"
)

// Spawnable — то, куда спавнер кладёт новых врагов.
type Spawnable interface {
	AddEnemyUnit(a *entity.Actor)
}

// EnemySpawner каждый тик добирает врагов до TotalEnemies:
// на каждый свободный слот одно испытание с вероятностью SpawnProbability.
type EnemySpawner struct {
	TotalEnemies     int
	SpawnProbability float64
	SpawnX           float64
	MaxY             float64
	rng              utils.Random
}

func NewEnemySpawner(total int, probability, spawnX, maxY float64, rng utils.Random) (*EnemySpawner, error) {
	if total <= 0 {
		return nil, fmt.Errorf("spawner total enemies %d: %w", total, config.ErrInvalidConfig)
	}
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("spawner probability %v: %w", probability, config.ErrInvalidConfig)
	}
	if maxY < 0 {
		return nil, fmt.Errorf("spawner max y %v: %w", maxY, config.ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("spawner without random source: %w", config.ErrInvalidConfig)
	}
	return &EnemySpawner{
		TotalEnemies:     total,
		SpawnProbability: probability,
		SpawnX:           spawnX,
		MaxY:             maxY,
		rng:              rng,
	}, nil
}

// Spawn добавляет врагов в level и возвращает, сколько появилось.
func (s *EnemySpawner) Spawn(level Spawnable, current int) int {
	spawned := 0
	for slot := current; slot < s.TotalEnemies; slot++ {
		if !utils.Chance(s.rng, s.SpawnProbability) {
			continue
		}
		y := utils.Between(s.rng, 0, s.MaxY)
		level.AddEnemyUnit(entity.NewEnemyPlane(s.SpawnX, y, s.rng))
		spawned++
	}
	return spawned
}
