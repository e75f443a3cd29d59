package layout

import (
	"slices"
	"testing"

	"github.com/matzehuels/patchgrid/pkg/comb"
	"github.com/matzehuels/patchgrid/pkg/grid"
)

func TestPositions(t *testing.T) {
	p := Params{GridWidth: 3, GridHeight: 3, PatchWidth: 2, PatchHeight: 2}
	want := []grid.Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if got := Positions(p); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}

	full := Params{GridWidth: 3, GridHeight: 2, PatchWidth: 3, PatchHeight: 2}
	if got := Positions(full); !slices.Equal(got, []grid.Position{{0, 0}}) {
		t.Errorf("Positions(full) = %v, want [{0 0}]", got)
	}
}

func TestEnumerateSinglePatchRow(t *testing.T) {
	p := Params{GridWidth: 4, GridHeight: 1, Patches: 1, PatchWidth: 2, PatchHeight: 1}
	base := grid.Base(p.GridWidth, p.GridHeight)

	var got []string
	for c := range Enumerate(p) {
		got = append(got, Render(base, c, p.Patch()).String())
	}
	want := []string{"11rr\n", "r11r\n", "rr11\n"}
	if !slices.Equal(got, want) {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestEnumerateCounts(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{"4x1 one 2x1", Params{4, 1, 1, 2, 1}, 3},
		{"2x2 two 1x1", Params{2, 2, 2, 1, 1}, 6},
		{"3x3 two 2x2 always overlap", Params{3, 3, 2, 2, 2}, 0},
		{"4x2 two 2x2", Params{4, 2, 2, 2, 2}, 1},
		{"3x2 two 1x2", Params{3, 2, 2, 1, 2}, 3},
		{"4x4 sixteen 1x1", Params{4, 4, 16, 1, 1}, 1},
		{"3x1 one 2x1", Params{3, 1, 1, 2, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); err != nil {
				t.Fatalf("invalid params: %v", err)
			}
			if got := Count(tt.params); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnumerateFullTiling(t *testing.T) {
	p := Params{GridWidth: 4, GridHeight: 4, Patches: 16, PatchWidth: 1, PatchHeight: 1}
	var got []string
	for c := range Enumerate(p) {
		got = append(got, Render(grid.Base(4, 4), c, p.Patch()).String())
	}
	want := "1234\n5678\n9101112\n13141516\n"
	if len(got) != 1 || got[0] != want {
		t.Errorf("rendered = %q, want [%q]", got, want)
	}
}

func TestEnumerateDisjointAndBounded(t *testing.T) {
	cases := []Params{
		{5, 4, 2, 2, 2},
		{4, 4, 3, 2, 1},
		{6, 3, 2, 3, 1},
		{3, 5, 3, 1, 2},
	}
	for _, p := range cases {
		patch := p.Patch()
		n := 0
		for c := range Enumerate(p) {
			n++
			if len(c) != p.Patches {
				t.Fatalf("%+v: combination %v has %d positions", p, c, len(c))
			}
			cells := make(map[grid.Position]bool)
			for _, pos := range c {
				patch.Cells(pos, func(cell grid.Position) bool {
					cells[cell] = true
					return true
				})
			}
			if len(cells) != p.Patches*patch.Area() {
				t.Fatalf("%+v: combination %v covers %d cells, want %d",
					p, c, len(cells), p.Patches*patch.Area())
			}
		}
		if want := bruteForceCount(p); n != want {
			t.Errorf("%+v: Count = %d, brute force = %d", p, n, want)
		}
		if ub := UpperBound(p); n > ub {
			t.Errorf("%+v: Count %d exceeds upper bound %d", p, n, ub)
		}
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	p := Params{5, 3, 2, 2, 1}
	first := slices.Collect(Enumerate(p))
	second := slices.Collect(Enumerate(p))
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !slices.Equal(first[i], second[i]) {
			t.Fatalf("combination %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEnumerateLabelsFollowOrder(t *testing.T) {
	p := Params{GridWidth: 3, GridHeight: 1, Patches: 2, PatchWidth: 1, PatchHeight: 1}
	got := slices.Collect(Enumerate(p))
	want := []Combination{
		{{0, 0}, {0, 1}},
		{{0, 0}, {0, 2}},
		{{0, 1}, {0, 2}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d combinations, want %d", len(got), len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("combination %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s := Render(grid.Base(3, 1), got[1], p.Patch()).String(); s != "1r2\n" {
		t.Errorf("Render = %q, want %q", s, "1r2\n")
	}
}

func TestRenderLeavesBaseUntouched(t *testing.T) {
	base := grid.Base(3, 2)
	_ = Render(base, Combination{{0, 0}}, grid.Patch{Width: 3, Height: 2})
	if got := base.String(); got != "rrr\nrQr\n" {
		t.Errorf("base changed to %q", got)
	}
}

func TestUpperBound(t *testing.T) {
	p := Params{GridWidth: 4, GridHeight: 4, Patches: 2, PatchWidth: 2, PatchHeight: 2}
	if got := UpperBound(p); got != comb.Binomial(9, 2) {
		t.Errorf("UpperBound() = %d, want %d", got, comb.Binomial(9, 2))
	}
}

// bruteForceCount counts disjoint combinations with a pairwise rectangle test.
func bruteForceCount(p Params) int {
	positions := Positions(p)
	n := 0
	for idx := range comb.Combinations(len(positions), p.Patches) {
		ok := true
		for i := 0; i < len(idx) && ok; i++ {
			for j := i + 1; j < len(idx); j++ {
				a, b := positions[idx[i]], positions[idx[j]]
				if a.Row < b.Row+p.PatchHeight && b.Row < a.Row+p.PatchHeight &&
					a.Col < b.Col+p.PatchWidth && b.Col < a.Col+p.PatchWidth {
					ok = false
					break
				}
			}
		}
		if ok {
			n++
		}
	}
	return n
}
