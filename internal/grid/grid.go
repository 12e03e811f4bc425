// Package grid holds the 11×11 illumination buffer of the word clock.
package grid

import "strings"

// ---- Board Geometry

const (
	// Size is the edge length of the square board.
	Size = 11

	// WordRows is the number of rows that carry letters.
	WordRows = 10

	// PrecisionRow is the row of minute dots below the letters.
	PrecisionRow = 10

	// PrecisionCells is the number of dots on the precision row.
	PrecisionCells = 4
)

// Grid is the row-major illumination buffer. Grid[row][col] is true when
// the cell is lit. The zero value is a dark board.
type Grid [Size][Size]bool

// Span is a contiguous run of cells within one row, End inclusive.
type Span struct {
	Row   int
	Start int
	End   int
}

// Clear turns every cell off.
func (g *Grid) Clear() {
	*g = Grid{}
}

// Light turns on every cell of the span.
func (g *Grid) Light(s Span) {
	for col := s.Start; col <= s.End; col++ {
		g[s.Row][col] = true
	}
}

// LightRun turns on exactly n cells of row, starting at column 0.
// n <= 0 lights nothing.
func (g *Grid) LightRun(row, n int) {
	for col := 0; col < n; col++ {
		g[row][col] = true
	}
}

// Lit reports whether every cell of the span is on.
func (g *Grid) Lit(s Span) bool {
	for col := s.Start; col <= s.End; col++ {
		if !g[s.Row][col] {
			return false
		}
	}
	return true
}

// String dumps the grid one row per line, '1' for lit and '0' for dark.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Rows returns the grid as bit strings, one per row.
func (g *Grid) Rows() []string {
	rows := make([]string, Size)
	var b strings.Builder
	for r := range g {
		b.Reset()
		for _, on := range g[r] {
			if on {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[r] = b.String()
	}
	return rows
}
