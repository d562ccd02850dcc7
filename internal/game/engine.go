package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wavetap/internal/config"
)

// PaletteSize is the number of entries in the wave color palette the
// renderer cycles through. The engine only tracks the index.
const PaletteSize = 6

// Target is the single cell the player must tap while the wave lights it.
type Target struct {
	Row int
	Col int
}

// ClickOutcome classifies the result of a player tap.
type ClickOutcome int

const (
	// ClickIgnored means the tap had no effect: not playing, paused,
	// game over, or no target active.
	ClickIgnored ClickOutcome = iota
	// ClickHit means the tap landed on the target while it was lit.
	ClickHit
	// ClickMiss means the tap landed anywhere else, or on an unlit target.
	ClickMiss
)

// String returns a human-readable name for the outcome.
func (o ClickOutcome) String() string {
	switch o {
	case ClickHit:
		return "Hit"
	case ClickMiss:
		return "Miss"
	default:
		return "Ignored"
	}
}

// Engine owns the full game state and every transition on it. All state
// changes happen inside Click or scheduler callbacks, each of which runs to
// completion before the next, so every event is applied atomically: a tap
// and a target expiry for the same target can never interleave.
type Engine struct {
	cfg   config.GameConfig
	rng   *rand.Rand
	sched *Scheduler

	// Wave state
	grid      Grid
	position  int
	direction int
	pattern   Pattern

	// Target state
	target    Target
	hasTarget bool

	// Progression state
	score      int
	highScore  int
	combo      int
	level      int
	lives      int
	difficulty float64
	speed      time.Duration
	shield     bool
	colorIndex int

	// Run state
	playing  bool
	paused   bool
	gameOver bool

	// Scheduler handles, re-armed whenever a rate input changes
	waveTask   *TaskHandle
	colorTask  *TaskHandle
	expiryTask *TaskHandle
	rollTask   *TaskHandle
	shieldOff  *TaskHandle
}

// New creates an engine with the given tunables and RNG seed.
// The engine is idle until Start is called.
func New(cfg config.GameConfig, seed int64) *Engine {
	e := &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		sched: NewScheduler(),
	}
	e.initState()
	return e
}

// initState restores the baseline for a fresh run. The high score survives.
func (e *Engine) initState() {
	e.grid = Grid{}
	e.position = 0
	e.direction = 1
	e.pattern = PatternNormal
	e.hasTarget = false
	e.score = 0
	e.combo = 0
	e.level = 1
	e.lives = e.cfg.Rules.Lives
	e.difficulty = 1.0
	e.speed = time.Duration(e.cfg.Timing.StartSpeedMs) * time.Millisecond
	e.shield = false
	e.colorIndex = 0
	e.playing = false
	e.paused = false
	e.gameOver = false
}

// Start begins a run: spawns the first target and arms all timers.
// No-op if a run is already in progress.
func (e *Engine) Start() {
	if e.playing && !e.gameOver {
		return
	}
	if e.gameOver {
		e.Reset()
		return
	}
	e.playing = true
	e.paused = false
	e.spawnTarget()
	e.armTimers()
}

// Pause toggles the paused state. While paused the logical clock is frozen,
// so every timer, including a pending shield expiry, holds in place.
func (e *Engine) Pause() {
	if !e.playing || e.gameOver {
		return
	}
	e.paused = !e.paused
}

// Reset cancels everything, including a pending shield expiry one-shot,
// restores the baseline state and starts a new run. The high score from
// earlier runs in this session is preserved.
func (e *Engine) Reset() {
	e.sched.CancelAll()
	e.waveTask = nil
	e.colorTask = nil
	e.expiryTask = nil
	e.rollTask = nil
	e.shieldOff = nil
	e.initState()
	e.playing = true
	e.spawnTarget()
	e.armTimers()
}

// Advance moves the simulation forward by dt of wall-clock time.
// Frozen while paused, before Start, and after game over.
func (e *Engine) Advance(dt time.Duration) {
	if !e.playing || e.paused || e.gameOver {
		return
	}
	e.sched.Advance(dt)
}

// Click resolves a player tap at (row, col). A hit requires both that the
// tap lands on the active target and that the wave currently lights that
// cell; a tap on an unlit target is a miss.
func (e *Engine) Click(row, col int) ClickOutcome {
	if !e.playing || e.paused || e.gameOver || !e.hasTarget {
		return ClickIgnored
	}

	if row == e.target.Row && col == e.target.Col && e.grid.Lit(row, col) {
		e.applyHit()
		return ClickHit
	}

	e.applyMiss()
	return ClickMiss
}

// armTimers (re)registers the four periodic activities at their current
// rates. Existing handles are cancelled first so a rate change never leaves
// a stale timer running.
func (e *Engine) armTimers() {
	e.waveTask.Cancel()
	e.colorTask.Cancel()
	e.expiryTask.Cancel()
	e.rollTask.Cancel()

	e.waveTask = e.sched.Every(e.speed, e.waveTick)
	e.colorTask = e.sched.Every(time.Duration(e.cfg.Timing.ColorCycleMs)*time.Millisecond, e.colorTick)
	e.expiryTask = e.sched.Every(e.expiryInterval(), e.expiryTick)
	e.rollTask = e.sched.Every(time.Duration(e.cfg.Timing.PowerUpRollMs)*time.Millisecond, e.powerUpRoll)
}

// expiryInterval is the target lifetime, shrinking as difficulty grows.
func (e *Engine) expiryInterval() time.Duration {
	base := float64(e.cfg.Timing.TargetWindowMs) * float64(time.Millisecond)
	return time.Duration(base / e.difficulty)
}

// waveTick recomputes the grid from the current sweep position, then
// advances the position. The direction flips each time the position wraps;
// only the Normal pattern reads it.
func (e *Engine) waveTick() {
	e.grid = GenerateWave(e.position, e.pattern, e.direction, e.rng)
	e.position = (e.position + 1) % Cols
	if e.position == 0 {
		e.direction = -e.direction
	}
}

// colorTick advances the cosmetic palette index.
func (e *Engine) colorTick() {
	e.colorIndex = (e.colorIndex + 1) % PaletteSize
}

// expiryTick penalizes a target that was never tapped. An active shield
// suppresses the whole penalty: the target stays and the combo survives.
func (e *Engine) expiryTick() {
	if !e.hasTarget || e.shield {
		return
	}
	e.combo = 0
	e.loseLife()
	if !e.gameOver {
		e.spawnTarget()
	}
}

// powerUpRoll occasionally activates the shield for a fixed window.
func (e *Engine) powerUpRoll() {
	if e.shield {
		return
	}
	if e.rng.Float64() >= e.cfg.Rules.PowerUpChance {
		return
	}
	e.shield = true
	e.shieldOff = e.sched.After(time.Duration(e.cfg.Timing.PowerUpActiveMs)*time.Millisecond, func() {
		e.shield = false
		e.shieldOff = nil
	})
}

// applyHit awards points, extends the combo, checks the level threshold and
// respawns the target. At most one level is gained per hit even when the
// points overshoot several thresholds at once.
func (e *Engine) applyHit() {
	mult := min(e.combo+1, e.cfg.Scoring.ComboCap)
	points := int(float64(e.cfg.Scoring.BasePoints*mult*e.level) * e.difficulty)
	e.score += points
	e.combo++

	if e.score >= e.level*e.cfg.Scoring.LevelThreshold {
		e.levelUp()
	}

	e.spawnTarget()
}

// levelUp advances one level. Every 3rd level raises the difficulty
// multiplier and tightens the wave interval, which re-arms the timers;
// every 5th level re-rolls the wave pattern.
func (e *Engine) levelUp() {
	e.level++

	if e.level%3 == 0 {
		e.difficulty = min(e.difficulty+e.cfg.Scoring.DifficultyStep, e.cfg.Scoring.MaxDifficulty)
		minSpeed := time.Duration(e.cfg.Timing.MinSpeedMs) * time.Millisecond
		e.speed = max(time.Duration(float64(e.speed)*e.cfg.Scoring.SpeedFactor), minSpeed)
		e.armTimers()
	}

	if e.level%5 == 0 {
		e.pattern = RandomPattern(e.rng)
	}
}

// applyMiss breaks the combo, costs a life unless the shield is up, and
// respawns the target.
func (e *Engine) applyMiss() {
	e.combo = 0
	if !e.shield {
		e.loseLife()
	}
	if !e.gameOver {
		e.spawnTarget()
	}
}

// loseLife decrements lives and performs the game-over transition exactly
// once: snapshot the high score, stop every timer and go inert until Reset.
func (e *Engine) loseLife() {
	if e.lives > 0 {
		e.lives--
	}
	if e.lives > 0 || e.gameOver {
		return
	}

	e.gameOver = true
	e.highScore = max(e.highScore, e.score)
	e.sched.CancelAll()
	e.waveTask = nil
	e.colorTask = nil
	e.expiryTask = nil
	e.rollTask = nil
	e.shieldOff = nil
	e.shield = false
}

// spawnTarget places the target at uniformly random coordinates.
// Repeating the previous position is allowed.
func (e *Engine) spawnTarget() {
	e.target = Target{
		Row: e.rng.Intn(Rows),
		Col: e.rng.Intn(Cols),
	}
	e.hasTarget = true
}
