package core

// RuntimeConfig contains configuration passed to the platform at startup.
// The engine itself runs a fixed-size board; screen dimensions only affect
// presentation, and the seed makes simulation runs reproducible.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Presentation frames per second (default 30)
	Seed    int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
		Seed:    0,
	}
}
