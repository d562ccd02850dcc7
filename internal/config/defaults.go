package config

import (
	_ "embed"
)

//go:embed defaults/wavetap.yaml
var defaultWavetapYAML []byte

// DefaultGameConfig returns the default wavetap configuration.
// Kept in sync with defaults/wavetap.yaml as a last-resort fallback.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Timing: TimingConfig{
			StartSpeedMs:    100,
			MinSpeedMs:      50,
			ColorCycleMs:    1500,
			TargetWindowMs:  3000,
			PowerUpRollMs:   15000,
			PowerUpActiveMs: 5000,
		},
		Scoring: ScoringConfig{
			BasePoints:     100,
			ComboCap:       5,
			LevelThreshold: 1000,
			DifficultyStep: 0.5,
			MaxDifficulty:  3.0,
			SpeedFactor:    0.9,
		},
		Rules: RulesConfig{
			Lives:         3,
			PowerUpChance: 0.1,
		},
	}
}
