package utils

import mathutil "go-sky-battle/pkg/utils"

// ScriptedRandom is a deterministic Random for tests and replays.
// Float64 cycles through Floats (0 when empty) and Intn through Ints modulo n.
// Shuffle leaves the order as is and counts calls.
type ScriptedRandom struct {
	Floats []float64
	Ints   []int

	floatPos int
	intPos   int
	Shuffles int
}

// NewScriptedRandom returns a ScriptedRandom that yields floats in order.
func NewScriptedRandom(floats ...float64) *ScriptedRandom {
	return &ScriptedRandom{Floats: floats}
}

func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatPos%len(s.Floats)]
	s.floatPos++
	return v
}

func (s *ScriptedRandom) Intn(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.intPos%len(s.Ints)]
	s.intPos++
	return mathutil.Abs(v) % n
}

// Shuffle only counts calls.
func (s *ScriptedRandom) Shuffle(n int, swap func(i, j int)) {
	s.Shuffles++
}

// Reset rewinds both scripts.
func (s *ScriptedRandom) Reset() {
	s.floatPos = 0
	s.intPos = 0
	s.Shuffles = 0
}
