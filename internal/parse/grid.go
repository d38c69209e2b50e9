package parse

import "fmt"

// Grid is a rectangular grid of single-digit cells stored row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []int
}

// DigitGrid parses lines of decimal digits into a Grid.
func DigitGrid(s string) (Grid, error) {
	lines := Lines(s)
	if len(lines) == 0 {
		return Grid{}, ErrEmpty
	}
	g := Grid{Width: len(lines[0]), Height: len(lines)}
	g.Cells = make([]int, 0, g.Width*g.Height)
	for y, line := range lines {
		if len(line) != g.Width {
			return Grid{}, fmt.Errorf("%w: line %d has width %d, want %d", ErrRagged, y+1, len(line), g.Width)
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return Grid{}, fmt.Errorf("%w: %q at %d,%d", ErrNotDigit, c, x, y)
			}
			g.Cells = append(g.Cells, int(c-'0'))
		}
	}
	return g, nil
}

func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

func (g Grid) At(x, y int) int {
	return g.Cells[g.Index(x, y)]
}

func (g Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Clone returns a copy with its own cell storage.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

var (
	offsets4 = [][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}
	offsets8 = [][2]int{{0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}}
)

// Neighbors4 returns the cell indexes orthogonally adjacent to (x, y).
func (g Grid) Neighbors4(x, y int) []int {
	return g.neighbors(x, y, offsets4)
}

// Neighbors8 returns the cell indexes adjacent to (x, y), diagonals included.
func (g Grid) Neighbors8(x, y int) []int {
	return g.neighbors(x, y, offsets8)
}

func (g Grid) neighbors(x, y int, offsets [][2]int) []int {
	out := make([]int, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if g.In(nx, ny) {
			out = append(out, g.Index(nx, ny))
		}
	}
	return out
}
