package layout

import (
	"testing"

	"github.com/matzehuels/patchgrid/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		code    errors.Code
		message string
	}{
		{"valid", Params{4, 4, 2, 2, 2}, "", ""},
		{"full tiling", Params{4, 4, 16, 1, 1}, "", ""},
		{"largest grid", Params{16, 16, 1, 16, 16}, "", ""},
		{"width too large", Params{17, 4, 1, 1, 1}, errors.ErrCodeInvalidGrid, MsgGridBounds},
		{"height zero", Params{4, 0, 1, 1, 1}, errors.ErrCodeInvalidGrid, MsgGridBounds},
		{"negative width", Params{-2, 4, 1, 1, 1}, errors.ErrCodeInvalidGrid, MsgGridBounds},
		{"patch wider than grid", Params{4, 4, 1, 5, 1}, errors.ErrCodeInvalidPatch, MsgPatchBounds},
		{"patch height zero", Params{4, 4, 1, 1, 0}, errors.ErrCodeInvalidPatch, MsgPatchBounds},
		{"zero patches", Params{4, 4, 0, 1, 1}, errors.ErrCodeInvalidCount, MsgTooMany},
		{"negative patches", Params{4, 4, -3, 1, 1}, errors.ErrCodeInvalidCount, MsgTooMany},
		{"too many patches", Params{4, 4, 5, 2, 2}, errors.ErrCodeInvalidCount, MsgTooMany},
		{"grid checked before patch", Params{17, 4, 0, 20, 1}, errors.ErrCodeInvalidGrid, MsgGridBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() error = %v, want code %s", err, tt.code)
			}
			if got := errors.UserMessage(err); got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestMaxPatches(t *testing.T) {
	tests := []struct {
		params Params
		want   int
	}{
		{Params{GridWidth: 4, GridHeight: 4, PatchWidth: 1, PatchHeight: 1}, 16},
		{Params{GridWidth: 5, GridHeight: 3, PatchWidth: 2, PatchHeight: 2}, 3},
		{Params{GridWidth: 3, GridHeight: 3, PatchWidth: 0, PatchHeight: 2}, 0},
	}
	for _, tt := range tests {
		if got := tt.params.MaxPatches(); got != tt.want {
			t.Errorf("MaxPatches(%+v) = %d, want %d", tt.params, got, tt.want)
		}
	}
}
