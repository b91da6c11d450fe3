package rocket

// Snapshot captures the complete session state for determinism testing and
// the headless simulator.
type Snapshot struct {
	Tick          uint64  `json:"tick" yaml:"tick"`
	Phase         string  `json:"phase" yaml:"phase"`
	Score         int     `json:"score" yaml:"score"`
	Lives         int     `json:"lives" yaml:"lives"`
	Level         int     `json:"level" yaml:"level"`
	Boosts        int     `json:"boosts" yaml:"boosts"`
	CraftX        float64 `json:"craft_x" yaml:"craft_x"`
	CraftSpeed    float64 `json:"craft_speed" yaml:"craft_speed"`
	FallSpeed     float64 `json:"fall_speed" yaml:"fall_speed"`
	BaseInterval  float64 `json:"base_interval" yaml:"base_interval"`
	SpawnInterval int     `json:"spawn_interval" yaml:"spawn_interval"`
	Obstacles     int     `json:"obstacles" yaml:"obstacles"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:          s.frame,
		Phase:         s.phase.String(),
		Score:         s.score,
		Lives:         s.lives,
		Level:         s.level,
		Boosts:        s.tier - 1,
		CraftX:        s.craft.X,
		CraftSpeed:    s.craft.Speed,
		FallSpeed:     s.fallSpeed,
		BaseInterval:  s.baseInterval,
		SpawnInterval: s.SpawnInterval(),
		Obstacles:     len(s.obstacles),
	}
}
