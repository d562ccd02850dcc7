// Package config provides YAML-based game configuration loading and
// difficulty presets for wavetap.
package config

// GameConfig contains all tunable parameters for the wavetap engine.
type GameConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`
}

// TimingConfig defines the intervals driving the tick scheduler.
// All values are in milliseconds.
type TimingConfig struct {
	StartSpeedMs    int `yaml:"start_speed_ms"`     // Initial wave tick interval
	MinSpeedMs      int `yaml:"min_speed_ms"`       // Wave interval floor
	ColorCycleMs    int `yaml:"color_cycle_ms"`     // Palette rotation interval
	TargetWindowMs  int `yaml:"target_window_ms"`   // Base target lifetime (divided by difficulty)
	PowerUpRollMs   int `yaml:"power_up_roll_ms"`   // Shield roll interval
	PowerUpActiveMs int `yaml:"power_up_active_ms"` // Shield duration once activated
}

// ScoringConfig defines scoring and progression parameters.
type ScoringConfig struct {
	BasePoints     int     `yaml:"base_points"`     // Points per hit before multipliers
	ComboCap       int     `yaml:"combo_cap"`       // Maximum combo multiplier
	LevelThreshold int     `yaml:"level_threshold"` // Score per level needed to advance
	DifficultyStep float64 `yaml:"difficulty_step"` // Difficulty increase every 3rd level
	MaxDifficulty  float64 `yaml:"max_difficulty"`  // Difficulty multiplier cap
	SpeedFactor    float64 `yaml:"speed_factor"`    // Wave interval multiplier every 3rd level
}

// RulesConfig defines the remaining gameplay rules.
type RulesConfig struct {
	Lives         int     `yaml:"lives"`           // Starting lives
	PowerUpChance float64 `yaml:"power_up_chance"` // Probability per roll that the shield activates
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Timing.StartSpeedMs = 120
		cfg.Timing.TargetWindowMs = 4000
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Timing.StartSpeedMs = 80
		cfg.Timing.TargetWindowMs = 2000
	}
}
