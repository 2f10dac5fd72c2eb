// internal/component/health.go
package component

import (
	"fmt"
	"log"
)

// Health — компонент здоровья: счётчик с полом в нуле.
// Сверху не ограничен, Increase может поднять его выше начального значения.
type Health struct {
	current int
	initial int
}

// NewHealth создаёт здоровье с начальным значением; отрицательное значение обнуляется.
func NewHealth(initial int) *Health {
	if initial < 0 {
		log.Printf("component: negative initial health %d clamped to 0", initial)
		initial = 0
	}
	return &Health{current: initial, initial: initial}
}

// TakeDamage уменьшает здоровье на единицу, но не ниже нуля.
func (h *Health) TakeDamage() {
	if h.current > 0 {
		h.current--
	}
	if h.current < 0 {
		h.current = 0
	}
}

// Increase добавляет n единиц здоровья. Отрицательные n игнорируются.
func (h *Health) Increase(n int) {
	if n < 0 {
		log.Printf("component: ignoring negative health increase %d", n)
		return
	}
	h.current += n
}

// Reset переинициализирует здоровье новым значением.
func (h *Health) Reset(n int) {
	if n < 0 {
		n = 0
	}
	h.current = n
	h.initial = n
}

func (h *Health) Current() int  { return h.current }
func (h *Health) Initial() int  { return h.initial }
func (h *Health) IsAlive() bool { return h.current > 0 }
func (h *Health) IsZero() bool  { return h.current == 0 }

func (h *Health) String() string {
	return fmt.Sprintf("Health{%d/%d}", h.current, h.initial)
}

// KillCounter считает подтверждённые убийства игрока.
type KillCounter struct {
	kills int
}

func (k *KillCounter) Kills() int { return k.kills }

func (k *KillCounter) Increment() { k.kills++ }

func (k *KillCounter) Reset() { k.kills = 0 }

// HasReached сообщает, достигнут ли порог milestone.
func (k *KillCounter) HasReached(milestone int) bool {
	return k.kills >= milestone
}
