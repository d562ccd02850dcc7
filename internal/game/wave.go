package game

import (
	"math"
	"math/rand"
)

// Pattern selects the wave shape. The active pattern only changes at
// level-up boundaries that are multiples of 5.
type Pattern int

const (
	PatternNormal Pattern = iota
	PatternSplit
	PatternZigzag
	PatternChaos
	patternCount // Sentinel for counting patterns
)

// String returns the display name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternNormal:
		return "Normal"
	case PatternSplit:
		return "Split"
	case PatternZigzag:
		return "Zigzag"
	case PatternChaos:
		return "Chaos"
	default:
		return "Unknown"
	}
}

// RandomPattern picks a uniformly random pattern. The current pattern may
// be reselected.
func RandomPattern(rng *rand.Rand) Pattern {
	return Pattern(rng.Intn(int(patternCount)))
}

// GenerateWave produces the lit-cell set for one tick given the scalar
// sweep position, the active pattern and the sweep direction (+1 or -1).
// Direction only affects the Normal pattern; the others ignore it.
// The Chaos pattern draws one offset per row from rng, so consecutive calls
// differ even at the same position.
func GenerateWave(position int, pattern Pattern, direction int, rng *rand.Rand) Grid {
	var g Grid

	switch pattern {
	case PatternNormal:
		for row := range Rows {
			for j := range WaveWidth {
				col := position + j
				if direction < 0 {
					col = (Cols - 1) - (position + j)
				}
				g.set(row, mod(col, Cols))
			}
		}

	case PatternSplit:
		for row := range Rows {
			for j := range WaveWidth {
				g.set(row, mod(position+j, Cols))
				g.set(row, mod(Cols-1-(position+j), Cols))
			}
		}

	case PatternZigzag:
		for row := range Rows {
			offset := math.Sin(float64(row)*0.5) * 3
			markOffsetBand(&g, row, position, offset)
		}

	case PatternChaos:
		for row := range Rows {
			offset := rng.Float64()*4 - 2
			markOffsetBand(&g, row, position, offset)
		}
	}

	return g
}

// markOffsetBand lights WaveWidth columns starting at position shifted by a
// per-row fractional offset. Columns that fall out of range after flooring
// are dropped rather than wrapped a second time.
func markOffsetBand(g *Grid, row, position int, offset float64) {
	for j := range WaveWidth {
		col := int(math.Floor(math.Mod(float64(position+j)+offset+Cols, Cols)))
		if col >= 0 && col < Cols {
			g.set(row, col)
		}
	}
}

// mod is the non-negative remainder of a/b.
func mod(a, b int) int {
	return ((a % b) + b) % b
}
