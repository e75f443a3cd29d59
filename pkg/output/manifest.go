package output

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/patchgrid/pkg/errors"
	"github.com/matzehuels/patchgrid/pkg/layout"
)

// ManifestName is the file name of the run manifest inside the output directory.
const ManifestName = "manifest.toml"

// Manifest records how a layout directory was produced.
type Manifest struct {
	RunID      string    `toml:"run_id"`
	Version    string    `toml:"version"`
	StartedAt  time.Time `toml:"started_at"`
	FinishedAt time.Time `toml:"finished_at"`
	Layouts    int       `toml:"layouts"`
	UpperBound int       `toml:"upper_bound"`
	Params     struct {
		GridWidth   int `toml:"grid_width"`
		GridHeight  int `toml:"grid_height"`
		Patches     int `toml:"patches"`
		PatchWidth  int `toml:"patch_width"`
		PatchHeight int `toml:"patch_height"`
	} `toml:"params"`
}

// NewRunID returns a fresh identifier for a generation run.
func NewRunID() string {
	return uuid.NewString()
}

// NewManifest fills a manifest for a run of p.
func NewManifest(runID string, p layout.Params) *Manifest {
	m := &Manifest{RunID: runID, UpperBound: layout.UpperBound(p)}
	m.Params.GridWidth = p.GridWidth
	m.Params.GridHeight = p.GridHeight
	m.Params.Patches = p.Patches
	m.Params.PatchWidth = p.PatchWidth
	m.Params.PatchHeight = p.PatchHeight
	return m
}

// LayoutParams returns the run parameters recorded in the manifest.
func (m *Manifest) LayoutParams() layout.Params {
	return layout.Params{
		GridWidth:   m.Params.GridWidth,
		GridHeight:  m.Params.GridHeight,
		Patches:     m.Params.Patches,
		PatchWidth:  m.Params.PatchWidth,
		PatchHeight: m.Params.PatchHeight,
	}
}

// WriteManifest encodes m as TOML into dir/manifest.toml and returns the path.
func WriteManifest(dir string, m *Manifest) (string, error) {
	path := filepath.Join(dir, ManifestName)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(m); err != nil {
		f.Close()
		return "", errors.Wrap(errors.ErrCodeIO, err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return path, nil
}

// ReadManifest decodes the manifest in dir.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "invalid run id in %s", path)
	}
	return &m, nil
}
