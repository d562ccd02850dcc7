package game

import "time"

// Snapshot is the complete render model handed to the presentation layer
// each frame. It is a value copy; the presenter can never mutate engine
// state through it.
type Snapshot struct {
	Grid      Grid
	Target    Target
	HasTarget bool

	Score      int
	HighScore  int
	Level      int
	Combo      int
	Lives      int
	Difficulty float64
	Speed      time.Duration
	Pattern    Pattern
	Direction  int
	Shield     bool
	ColorIndex int

	Playing  bool
	Paused   bool
	GameOver bool
}

// Snapshot returns the current render model.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:       e.grid,
		Target:     e.target,
		HasTarget:  e.hasTarget,
		Score:      e.score,
		HighScore:  e.highScore,
		Level:      e.level,
		Combo:      e.combo,
		Lives:      e.lives,
		Difficulty: e.difficulty,
		Speed:      e.speed,
		Pattern:    e.pattern,
		Direction:  e.direction,
		Shield:     e.shield,
		ColorIndex: e.colorIndex,
		Playing:    e.playing,
		Paused:     e.paused,
		GameOver:   e.gameOver,
	}
}
