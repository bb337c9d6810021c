package tool

import (
	"testing"

	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/tmap"
)

func TestSnapModes(t *testing.T) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	r := render.NewRenderer(m)

	cases := []struct {
		name string
		mods scene.Modifiers
		in   tmap.PointF
		want tmap.PointF
	}{
		{"grid_rounds_to_tile", 0, tmap.Pt(100, 64), tmap.Pt(96, 64)},
		{"grid_rounds_up", 0, tmap.Pt(113, 49), tmap.Pt(128, 64)},
		{"fine_quarter_tile", scene.ModControl, tmap.Pt(100, 64), tmap.Pt(104, 64)},
		{"none_with_alt", scene.ModAlt, tmap.Pt(100.5, 64.25), tmap.Pt(100.5, 64.25)},
		{"alt_beats_control", scene.ModControl | scene.ModAlt, tmap.Pt(100.5, 64.25), tmap.Pt(100.5, 64.25)},
		{"shift_does_not_affect_snap", scene.ModShift, tmap.Pt(100, 64), tmap.Pt(96, 64)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewSnapHelper(r, c.mods)
			if got := h.Snap(c.in); got != c.want {
				t.Fatalf("Snap(%v) = %v, want %v", c.in, got, c.want)
			}
			// Snapping an already snapped position is a no-op.
			if got := h.Snap(c.want); got != c.want {
				t.Fatalf("Snap(%v) not idempotent: got %v", c.want, got)
			}
		})
	}
}

func TestSnapFineDivisionsConfigurable(t *testing.T) {
	m := tmap.NewMap(tmap.Orthogonal, 10, 10, 32, 32)
	r := render.NewRenderer(m)

	old := FineGridDivisions
	FineGridDivisions = 2
	defer func() { FineGridDivisions = old }()

	h := NewSnapHelper(r, scene.ModControl)
	if got := h.Snap(tmap.Pt(100, 64)); got != tmap.Pt(96, 64) {
		t.Fatalf("Snap(100,64) with half-tile steps = %v, want (96,64)", got)
	}
}
