// Package grid provides the character grid that patch layouts are drawn on.
//
// A [Grid] is a height × width matrix of cells. Each cell holds a short string:
// a single base character ("r" or "Q") or the decimal label of the patch that
// covers it. Labels of 10 and above therefore take two characters when a row is
// serialized.
//
// # Base Grids
//
// [Base] builds the deterministic background every layout starts from:
//
//	rrrr    even rows are all "r"
//	rQrQ    odd rows alternate "r" and "Q", starting with "r"
//	rrrr
//
// # Stamping Patches
//
// Grids are copied with [Grid.Clone] and patched with [Grid.Fill]; the base
// instance is never modified:
//
//	base := grid.Base(4, 3)
//	g := base.Clone()
//	g.Fill(grid.Position{Row: 1, Col: 1}, grid.Patch{Width: 2, Height: 2}, "1")
//	g.WriteTo(os.Stdout)
//
// # Serialization
//
// [Grid.WriteTo] writes one row per line with cells concatenated and every line
// terminated by "\n". [Grid.String] returns the same text.
package grid
