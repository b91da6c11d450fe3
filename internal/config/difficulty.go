package config

import "math"

// DifficultyCurve derives level, speed boosts and spawn frequency from score.
type DifficultyCurve struct {
	cfg          DifficultyConfig
	levelUpScore int
	minInterval  int
}

// NewDifficultyCurve creates a difficulty curve from a game config.
func NewDifficultyCurve(cfg RocketConfig) *DifficultyCurve {
	levelUp := cfg.Gameplay.LevelUpScore
	if levelUp <= 0 {
		levelUp = 1 // Prevent division by zero
	}
	minInterval := cfg.Obstacles.MinSpawnInterval
	if minInterval < 1 {
		minInterval = 1
	}
	return &DifficultyCurve{
		cfg:          cfg.Difficulty,
		levelUpScore: levelUp,
		minInterval:  minInterval,
	}
}

// Level returns the level for a score: floor(score / levelUpScore) + 1.
func (d *DifficultyCurve) Level(score int) int {
	if score < 0 {
		return 1
	}
	return score/d.levelUpScore + 1
}

// ShouldLevelUp reports whether a boost is due. tier is the number of boosts
// already applied plus one, so the first boost fires at one levelUpScore.
func (d *DifficultyCurve) ShouldLevelUp(score, tier int) bool {
	if !d.cfg.Enabled {
		return false
	}
	return score >= tier*d.levelUpScore
}

// Boost applies one compounding level-up to the speeds and base interval.
func (d *DifficultyCurve) Boost(craftSpeed, obstacleSpeed, baseInterval float64) (float64, float64, float64) {
	return craftSpeed * d.cfg.CraftSpeedFactor,
		obstacleSpeed * d.cfg.ObstacleSpeedFactor,
		baseInterval * d.cfg.SpawnIntervalFactor
}

// SpawnInterval returns the effective frames between spawns at a level:
// max(minInterval, floor(base / (1 + level*scale))).
func (d *DifficultyCurve) SpawnInterval(baseInterval float64, level int) int {
	divisor := 1 + float64(level)*d.cfg.LevelIntervalScale
	if divisor <= 0 {
		divisor = 1
	}
	interval := int(math.Floor(baseInterval / divisor))
	if interval < d.minInterval {
		interval = d.minInterval
	}
	return interval
}
