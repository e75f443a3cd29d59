// Package layout enumerates non-overlapping patch placements and renders them.
//
// A layout run is described by [Params]: a grid size, a patch size and the
// number of patches per layout. [Positions] lists every top-left corner where
// a single patch fits; [Enumerate] walks the N-element combinations of those
// positions in lexicographic order and yields the ones whose patches do not
// overlap; [Render] stamps a combination onto a copy of the base grid.
//
// # Usage
//
//	p := layout.Params{GridWidth: 4, GridHeight: 1, Patches: 1, PatchWidth: 2, PatchHeight: 1}
//	if err := p.Validate(); err != nil {
//	    return err
//	}
//	base := grid.Base(p.GridWidth, p.GridHeight)
//	for c := range layout.Enumerate(p) {
//	    fmt.Print(layout.Render(base, c, p.Patch()))
//	}
//
// Enumeration order is deterministic, so identical parameters always produce
// the same layouts in the same order.
package layout

import (
	"iter"
	"strconv"

	"github.com/matzehuels/patchgrid/pkg/comb"
	"github.com/matzehuels/patchgrid/pkg/grid"
)

// Combination is an ordered list of patch positions. The patch at index i is
// labelled i+1 when rendered.
type Combination []grid.Position

// Positions returns every top-left position where one patch fits, row-major:
// rows 0..GridHeight-PatchHeight and cols 0..GridWidth-PatchWidth, inclusive.
func Positions(p Params) []grid.Position {
	rows := p.GridHeight - p.PatchHeight + 1
	cols := p.GridWidth - p.PatchWidth + 1
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([]grid.Position, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, grid.Position{Row: r, Col: c})
		}
	}
	return out
}

// UpperBound returns C(len(Positions(p)), p.Patches), the number of candidate
// combinations before overlap filtering. It saturates at math.MaxInt.
func UpperBound(p Params) int {
	return comb.Binomial(len(Positions(p)), p.Patches)
}

// Enumerate yields every combination of p.Patches positions whose patches are
// pairwise disjoint, in lexicographic order of the position list.
//
// A candidate is rejected as soon as one of its patches covers a cell already
// claimed by an earlier patch in the same candidate. Each yielded Combination
// is a fresh slice. The sequence is finite and meant to be consumed once.
func Enumerate(p Params) iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		positions := Positions(p)
		patch := p.Patch()
		occupied := make([]bool, p.GridWidth*p.GridHeight)

		for idx := range comb.Combinations(len(positions), p.Patches) {
			clear(occupied)
			if !claim(occupied, p.GridWidth, positions, idx, patch) {
				continue
			}
			c := make(Combination, len(idx))
			for i, j := range idx {
				c[i] = positions[j]
			}
			if !yield(c) {
				return
			}
		}
	}
}

// claim marks the cells of each chosen patch in order and reports false on the
// first cell that is already taken.
func claim(occupied []bool, width int, positions []grid.Position, idx []int, patch grid.Patch) bool {
	ok := true
	for _, j := range idx {
		patch.Cells(positions[j], func(c grid.Position) bool {
			k := c.Row*width + c.Col
			if occupied[k] {
				ok = false
				return false
			}
			occupied[k] = true
			return true
		})
		if !ok {
			return false
		}
	}
	return true
}

// Count returns the number of combinations [Enumerate] yields for p.
func Count(p Params) int {
	n := 0
	for range Enumerate(p) {
		n++
	}
	return n
}

// Render returns a copy of base with each patch of c stamped with its decimal
// 1-based label. base is not modified.
func Render(base *grid.Grid, c Combination, patch grid.Patch) *grid.Grid {
	g := base.Clone()
	for i, pos := range c {
		g.Fill(pos, patch, strconv.Itoa(i+1))
	}
	return g
}
