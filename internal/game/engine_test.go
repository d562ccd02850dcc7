package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/wavetap/internal/config"
)

func newTestEngine(seed int64) *Engine {
	e := New(config.DefaultGameConfig(), seed)
	e.Start()
	return e
}

// lightTarget forces the wave to light the current target cell so a click
// on it resolves as a hit.
func lightTarget(e *Engine) {
	e.grid[e.target.Row][e.target.Col] = true
}

func TestScoringFormula(t *testing.T) {
	e := newTestEngine(1)

	// combo=2 pre-hit, level=3, difficulty=1.5 -> 100 * min(3,5) * 3 * 1.5
	e.combo = 2
	e.level = 3
	e.difficulty = 1.5
	lightTarget(e)

	outcome := e.Click(e.target.Row, e.target.Col)

	if outcome != ClickHit {
		t.Fatalf("outcome = %v, expected Hit", outcome)
	}
	if e.score != 1350 {
		t.Errorf("score = %d, expected 1350", e.score)
	}
	if e.combo != 3 {
		t.Errorf("combo = %d, expected 3", e.combo)
	}
}

func TestComboMultiplierCapped(t *testing.T) {
	e := newTestEngine(1)

	e.combo = 10 // multiplier must cap at 5
	lightTarget(e)
	e.Click(e.target.Row, e.target.Col)

	if e.score != 500 {
		t.Errorf("score = %d, expected 500 (capped multiplier)", e.score)
	}
}

func TestHitRequiresLitCell(t *testing.T) {
	e := newTestEngine(1)

	// Grid is empty before the first wave tick, so the target is unlit
	e.combo = 3
	outcome := e.Click(e.target.Row, e.target.Col)

	if outcome != ClickMiss {
		t.Fatalf("click on unlit target = %v, expected Miss", outcome)
	}
	if e.lives != 2 {
		t.Errorf("lives = %d, expected 2", e.lives)
	}
	if e.combo != 0 {
		t.Errorf("combo = %d, expected 0 after miss", e.combo)
	}
}

func TestMissRespawnsTarget(t *testing.T) {
	e := newTestEngine(1)

	e.Click(0, 0)

	if !e.hasTarget {
		t.Error("target should respawn after a miss")
	}
}

func TestSingleLevelUpPerHit(t *testing.T) {
	e := newTestEngine(1)

	// A single hit worth 1500 points crosses the level-1 threshold (1000)
	// and would also cross a second one if level-ups looped. They don't.
	e.combo = 10
	e.difficulty = 3.0
	lightTarget(e)
	e.Click(e.target.Row, e.target.Col)

	if e.score != 1500 {
		t.Fatalf("score = %d, expected 1500", e.score)
	}
	if e.level != 2 {
		t.Errorf("level = %d, expected exactly one level-up", e.level)
	}
}

func TestThirdLevelRaisesDifficulty(t *testing.T) {
	e := newTestEngine(1)

	e.level = 2
	e.score = 1999
	lightTarget(e)
	e.Click(e.target.Row, e.target.Col) // +200 -> 2199, crosses 2000

	if e.level != 3 {
		t.Fatalf("level = %d, expected 3", e.level)
	}
	if e.difficulty != 1.5 {
		t.Errorf("difficulty = %v, expected 1.5", e.difficulty)
	}
	if e.speed != 90*time.Millisecond {
		t.Errorf("speed = %v, expected 90ms", e.speed)
	}
}

func TestDifficultyAndSpeedBounds(t *testing.T) {
	e := newTestEngine(1)

	e.difficulty = 3.0
	e.speed = 50 * time.Millisecond
	e.level = 2
	e.score = 2*e.cfg.Scoring.LevelThreshold - 1
	lightTarget(e)
	e.Click(e.target.Row, e.target.Col)

	if e.level != 3 {
		t.Fatalf("level = %d, expected 3", e.level)
	}
	if e.difficulty != 3.0 {
		t.Errorf("difficulty = %v, expected cap at 3.0", e.difficulty)
	}
	if e.speed != 50*time.Millisecond {
		t.Errorf("speed = %v, expected floor at 50ms", e.speed)
	}
}

func TestFifthLevelRerollsPattern(t *testing.T) {
	e := newTestEngine(1)

	e.level = 4
	e.score = 4*e.cfg.Scoring.LevelThreshold - 1
	lightTarget(e)
	e.Click(e.target.Row, e.target.Col)

	if e.level != 5 {
		t.Fatalf("level = %d, expected 5", e.level)
	}
	if e.pattern < PatternNormal || e.pattern >= patternCount {
		t.Errorf("pattern = %d, out of range after reroll", e.pattern)
	}
}

func TestTargetExpiryCostsLife(t *testing.T) {
	e := newTestEngine(1)
	e.combo = 2

	e.Advance(3 * time.Second) // base expiry window at difficulty 1.0

	if e.lives != 2 {
		t.Errorf("lives = %d, expected 2 after expiry", e.lives)
	}
	if e.combo != 0 {
		t.Errorf("combo = %d, expected 0 after expiry", e.combo)
	}
	if !e.hasTarget {
		t.Error("target should respawn after expiry")
	}
}

func TestExpiryEventuallyEndsGame(t *testing.T) {
	e := newTestEngine(1)
	e.score = 700

	// Never click; three expiries drain all lives
	for range 3 {
		e.Advance(3 * time.Second)
	}

	if !e.gameOver {
		t.Fatal("game should be over after three expiries")
	}
	if e.highScore != 700 {
		t.Errorf("highScore = %d, expected 700 snapshot at game over", e.highScore)
	}
}

func TestShieldBlocksClickMissLifeLoss(t *testing.T) {
	e := newTestEngine(1)

	e.shield = true
	e.combo = 4
	outcome := e.Click(0, 0)

	if outcome != ClickMiss {
		t.Fatalf("outcome = %v, expected Miss", outcome)
	}
	if e.lives != 3 {
		t.Errorf("lives = %d, expected 3 with shield up", e.lives)
	}
	if e.combo != 0 {
		t.Errorf("combo = %d, click-miss must still break the combo", e.combo)
	}
}

func TestShieldBlocksExpiryEntirely(t *testing.T) {
	e := newTestEngine(1)

	e.shield = true
	e.combo = 4
	before := e.target

	e.Advance(3 * time.Second)

	if e.lives != 3 {
		t.Errorf("lives = %d, expected 3 with shield up", e.lives)
	}
	if e.combo != 4 {
		t.Errorf("combo = %d, expiry without a click must not break the combo", e.combo)
	}
	if e.target != before {
		t.Error("target should not respawn on a shielded expiry")
	}
}

func TestShieldActivatesAndExpires(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Rules.PowerUpChance = 1.0 // every roll activates
	e := New(cfg, 1)
	e.Start()
	e.lives = 100 // keep expiries from ending the run first

	e.Advance(15 * time.Second)
	if !e.shield {
		t.Fatal("shield should be active after a guaranteed roll")
	}

	e.Advance(5 * time.Second)
	if e.shield {
		t.Error("shield should deactivate after its window")
	}
}

func TestGameOverExactlyOnce(t *testing.T) {
	e := newTestEngine(1)

	e.score = 500
	e.lives = 1
	e.Click(0, 0) // miss, last life

	if !e.gameOver {
		t.Fatal("game should be over")
	}
	if e.highScore != 500 {
		t.Errorf("highScore = %d, expected 500", e.highScore)
	}

	// Everything is inert until reset
	if outcome := e.Click(0, 0); outcome != ClickIgnored {
		t.Errorf("click after game over = %v, expected Ignored", outcome)
	}
	e.Advance(time.Minute)
	if e.score != 500 || e.lives != 0 || e.level != 1 {
		t.Error("state mutated after game over")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	e := newTestEngine(1)

	e.lives = 1
	e.Click(0, 0)
	e.Click(0, 0)
	e.Advance(10 * time.Second)

	if e.lives < 0 {
		t.Errorf("lives = %d, must never go negative", e.lives)
	}
}

func TestResetRestoresBaseline(t *testing.T) {
	e := newTestEngine(1)

	// Dirty every field, then end the run
	e.score = 4200
	e.level = 6
	e.combo = 3
	e.difficulty = 2.0
	e.speed = 70 * time.Millisecond
	e.pattern = PatternChaos
	e.lives = 1
	e.Click(0, 0) // miss ends the game, snapshots high score
	e.shield = true

	e.Reset()

	s := e.Snapshot()
	switch {
	case s.Score != 0:
		t.Errorf("score = %d", s.Score)
	case s.Level != 1:
		t.Errorf("level = %d", s.Level)
	case s.Combo != 0:
		t.Errorf("combo = %d", s.Combo)
	case s.Lives != 3:
		t.Errorf("lives = %d", s.Lives)
	case s.GameOver:
		t.Error("gameOver still set")
	case s.Speed != 100*time.Millisecond:
		t.Errorf("speed = %v", s.Speed)
	case s.Pattern != PatternNormal:
		t.Errorf("pattern = %v", s.Pattern)
	case s.Difficulty != 1.0:
		t.Errorf("difficulty = %v", s.Difficulty)
	case s.Shield:
		t.Error("shield still set")
	case s.Grid != (Grid{}):
		t.Error("grid not empty")
	case !s.Playing || !s.HasTarget:
		t.Error("reset should start a fresh run with an active target")
	}

	if s.HighScore != 4200 {
		t.Errorf("highScore = %d, expected 4200 preserved across reset", s.HighScore)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := newTestEngine(1)

	e.Pause()
	e.Advance(time.Minute)

	if e.position != 0 || e.lives != 3 {
		t.Error("simulation advanced while paused")
	}
	if outcome := e.Click(e.target.Row, e.target.Col); outcome != ClickIgnored {
		t.Errorf("click while paused = %v, expected Ignored", outcome)
	}

	e.Pause() // resume
	e.Advance(100 * time.Millisecond)
	if e.position == 0 {
		t.Error("simulation did not resume after unpause")
	}
}

func TestWaveAdvancesAndFlipsDirection(t *testing.T) {
	e := newTestEngine(1)

	// Cols wave ticks sweep the full board and wrap back to zero
	e.Advance(time.Duration(Cols) * 100 * time.Millisecond)

	if e.position != 0 {
		t.Errorf("position = %d, expected 0 after a full sweep", e.position)
	}
	if e.direction != -1 {
		t.Errorf("direction = %d, expected flip to -1 on wraparound", e.direction)
	}
}

func TestDeterminismWithSameSeed(t *testing.T) {
	run := func() Snapshot {
		e := newTestEngine(12345)
		for range 10 {
			e.Advance(700 * time.Millisecond)
			e.Click(e.target.Row, e.target.Col)
		}
		return e.Snapshot()
	}

	if run() != run() {
		t.Error("identical seed and input sequence should produce identical snapshots")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(1)
	e.Advance(100 * time.Millisecond)

	s := e.Snapshot()
	s.Grid[0][0] = !s.Grid[0][0]
	s.Score = 999999

	if e.grid[0][0] == s.Grid[0][0] {
		t.Error("snapshot grid shares storage with the engine")
	}
	if e.score == 999999 {
		t.Error("mutating a snapshot must not touch engine state")
	}
}
