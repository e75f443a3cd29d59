package grid

import (
	"bufio"
	"io"
	"strings"
)

// Base grid characters.
const (
	CellFloor = "r"
	CellMark  = "Q"
)

// Position is the (row, col) of a cell, 0-based from the top-left corner.
// For a patch it marks the patch's top-left cell.
type Position struct {
	Row int
	Col int
}

// Patch is the size of a rectangular patch in cells.
type Patch struct {
	Width  int
	Height int
}

// Area returns the number of cells a patch covers.
func (p Patch) Area() int {
	return p.Width * p.Height
}

// Cells calls fn for every cell a patch at pos covers, row by row.
// Iteration stops early when fn returns false.
func (p Patch) Cells(pos Position, fn func(Position) bool) {
	for r := pos.Row; r < pos.Row+p.Height; r++ {
		for c := pos.Col; c < pos.Col+p.Width; c++ {
			if !fn(Position{Row: r, Col: c}) {
				return
			}
		}
	}
}

// Grid is a height × width matrix of string cells.
type Grid struct {
	width  int
	height int
	cells  [][]string
}

// New returns a width × height grid with every cell set to fill.
func New(width, height int, fill string) *Grid {
	g := &Grid{width: width, height: height, cells: make([][]string, height)}
	for r := range g.cells {
		row := make([]string, width)
		for c := range row {
			row[c] = fill
		}
		g.cells[r] = row
	}
	return g
}

// Base returns the background grid for the given size.
//
// Even rows (0-based) are all [CellFloor]. Odd rows alternate [CellFloor] and
// [CellMark] starting with [CellFloor] at column 0; a row the alternation leaves
// short is padded with [CellFloor].
//
// Base has no error paths; width and height are validated by the caller.
func Base(width, height int) *Grid {
	g := New(width, height, CellFloor)
	for r := 1; r < height; r += 2 {
		row := g.cells[r][:0]
		for c := 0; c < width; c++ {
			if c%2 == 0 {
				row = append(row, CellFloor)
			} else {
				row = append(row, CellMark)
			}
		}
		for len(row) < width {
			row = append(row, CellFloor)
		}
		g.cells[r] = row
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the cell at pos.
func (g *Grid) At(pos Position) string {
	return g.cells[pos.Row][pos.Col]
}

// Set overwrites the cell at pos.
func (g *Grid) Set(pos Position, v string) {
	g.cells[pos.Row][pos.Col] = v
}

// Contains reports whether a patch placed at pos lies entirely inside g.
func (g *Grid) Contains(pos Position, p Patch) bool {
	return pos.Row >= 0 && pos.Col >= 0 &&
		pos.Row+p.Height <= g.height && pos.Col+p.Width <= g.width
}

// Clone returns a deep copy of g. Changes to the copy never affect g.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([][]string, g.height)}
	for r, row := range g.cells {
		out.cells[r] = append([]string(nil), row...)
	}
	return out
}

// Fill overwrites every cell of a patch at pos with label. A patch that does
// not fit inside the grid is rejected: Fill leaves g unchanged and returns false.
func (g *Grid) Fill(pos Position, p Patch, label string) bool {
	if !g.Contains(pos, p) {
		return false
	}
	p.Cells(pos, func(c Position) bool {
		g.cells[c.Row][c.Col] = label
		return true
	})
	return true
}

// Rows returns each row with its cells concatenated.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for r, row := range g.cells {
		rows[r] = strings.Join(row, "")
	}
	return rows
}

// String returns the serialized grid: one row per line, each ending in "\n".
func (g *Grid) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the serialized grid to w and returns the number of bytes written.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, row := range g.cells {
		for _, cell := range row {
			k, err := bw.WriteString(cell)
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
