package layout

import (
	"github.com/matzehuels/patchgrid/pkg/errors"
	"github.com/matzehuels/patchgrid/pkg/grid"
)

// Grid size limits, inclusive.
const (
	MinGridSize = 1
	MaxGridSize = 16
)

// User-facing validation messages.
const (
	MsgGridBounds  = "Grid width and height must be integers between 1 and 16."
	MsgPatchBounds = "Patch dimensions must be positive integers within the grid dimensions."
	MsgTooMany     = "Number of patches is too large for the grid size."
)

// Params describes one generation run.
type Params struct {
	GridWidth   int
	GridHeight  int
	Patches     int // number of patches per layout
	PatchWidth  int
	PatchHeight int
}

// Patch returns the patch size.
func (p Params) Patch() grid.Patch {
	return grid.Patch{Width: p.PatchWidth, Height: p.PatchHeight}
}

// MaxPatches returns floor(grid area / patch area), the largest patch count
// that can be requested. It returns 0 for a degenerate patch.
func (p Params) MaxPatches() int {
	area := p.Patch().Area()
	if area <= 0 {
		return 0
	}
	return (p.GridWidth * p.GridHeight) / area
}

// Validate checks the grid, patch and count bounds in that order and returns
// the first violation as a coded error. Validation never touches the filesystem.
func (p Params) Validate() error {
	if p.GridWidth < MinGridSize || p.GridWidth > MaxGridSize ||
		p.GridHeight < MinGridSize || p.GridHeight > MaxGridSize {
		return errors.New(errors.ErrCodeInvalidGrid, MsgGridBounds)
	}
	if p.PatchWidth < 1 || p.PatchWidth > p.GridWidth ||
		p.PatchHeight < 1 || p.PatchHeight > p.GridHeight {
		return errors.New(errors.ErrCodeInvalidPatch, MsgPatchBounds)
	}
	if p.Patches < 1 || p.Patches > p.MaxPatches() {
		return errors.New(errors.ErrCodeInvalidCount, MsgTooMany)
	}
	return nil
}
