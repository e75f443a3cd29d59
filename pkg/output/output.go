// Package output names and writes layout files.
//
// Layouts for a W×H grid are written into a directory named "layouts<W>x<H>";
// each file is named
//
//	layout_<W>x<H>_<counter>_<N>_<patchW>x<patchH>.txt
//
// where counter starts at 1 and counts only layouts actually written. Files
// with the same name are overwritten.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/patchgrid/pkg/errors"
	"github.com/matzehuels/patchgrid/pkg/grid"
	"github.com/matzehuels/patchgrid/pkg/layout"
)

// File permissions for created directories and layout files.
const (
	DirPerm  = 0755
	FilePerm = 0644
)

// DirName returns the output directory name for a grid size.
func DirName(width, height int) string {
	return fmt.Sprintf("layouts%dx%d", width, height)
}

// FileName returns the file name of the counter-th layout (1-based) of a run.
func FileName(p layout.Params, counter int) string {
	return fmt.Sprintf("layout_%dx%d_%d_%d_%dx%d.txt",
		p.GridWidth, p.GridHeight, counter, p.Patches, p.PatchWidth, p.PatchHeight)
}

// Writer writes the layouts of one run into Dir.
type Writer struct {
	Dir    string
	params layout.Params
	count  int
}

// NewWriter creates the output directory for p under root (created if absent)
// and returns a Writer for it. An empty root means the working directory.
func NewWriter(root string, p layout.Params) (*Writer, error) {
	dir := filepath.Join(root, DirName(p.GridWidth, p.GridHeight))
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
	}
	return &Writer{Dir: dir, params: p}, nil
}

// Write serializes g as the next layout and returns its path.
func (w *Writer) Write(g *grid.Grid) (string, error) {
	path := filepath.Join(w.Dir, FileName(w.params, w.count+1))
	if err := writeGrid(path, g); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	w.count++
	return path, nil
}

// Count returns the number of layouts written so far.
func (w *Writer) Count() int {
	return w.count
}

func writeGrid(path string, g *grid.Grid) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return err
	}
	if _, err := g.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
