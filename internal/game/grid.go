// Package game implements the wavetap simulation engine: the wave generator,
// the tick scheduler, the target lifecycle and the scoring/progression state
// machine. It contains pure logic with no presentation dependencies; the
// platform layer drives it through Advance and Click and reads Snapshot.
package game

// Board dimensions and wave width are fixed, not runtime configuration.
const (
	Rows      = 15
	Cols      = 20
	WaveWidth = 6
)

// Grid is the board occupancy matrix: true means the cell is lit by the
// wave this tick. A fresh grid is produced every wave tick; no cell state
// persists across ticks.
type Grid [Rows][Cols]bool

// Lit reports whether the cell at (row, col) is lit.
// Out-of-range coordinates are never lit.
func (g *Grid) Lit(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return g[row][col]
}

// set marks a cell lit, silently dropping out-of-range writes.
func (g *Grid) set(row, col int) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	g[row][col] = true
}

// RowCount returns the number of lit cells in a row.
func (g *Grid) RowCount(row int) int {
	n := 0
	for col := range Cols {
		if g[row][col] {
			n++
		}
	}
	return n
}
