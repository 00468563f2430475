package geometry

import (
	"math"
	"testing"

	"github.com/terrasense/pitcheck/internal/model"
)

var pit = model.PitConfig{
	Composition: model.CompositionSoil,
	SafetyLevel: 1,
	Length:      30,
	Width:       20,
	Depth:       10,
}

func TestRadial(t *testing.T) {
	tests := []struct {
		pos  model.Position
		want float64
	}{
		{model.Position{X: 3, Z: 4}, 5},
		{model.Position{X: -3, Z: 4}, 5},
		{model.Position{X: 0, Z: 0}, 0},
		{model.Position{X: 3, Y: 100, Z: 4}, 5}, // vertical axis ignored
	}
	for _, tt := range tests {
		if got := Radial(tt.pos); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Radial(%+v) = %g, want %g", tt.pos, got, tt.want)
		}
	}
}

func TestSideOf(t *testing.T) {
	tests := []struct {
		name string
		pos  model.Position
		side Side
		ok   bool
	}{
		{"east midpoint", model.Position{X: 15, Z: 0}, SideEast, true},
		{"west midpoint", model.Position{X: -15, Z: 0}, SideWest, true},
		{"north midpoint", model.Position{X: 0, Z: 10}, SideNorth, true},
		{"south midpoint", model.Position{X: 0, Z: -10}, SideSouth, true},
		{"just inside tolerance", model.Position{X: 13.5, Z: 0}, SideEast, true},
		{"exactly at tolerance", model.Position{X: 13, Z: 0}, 0, false},
		{"pit center", model.Position{}, 0, false},
		{"far outside", model.Position{X: 40, Z: 40}, 0, false},
	}
	for _, tt := range tests {
		side, ok := SideOf(pit, tt.pos, 2.0)
		if ok != tt.ok {
			t.Errorf("%s: classified = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && side != tt.side {
			t.Errorf("%s: side = %s, want %s", tt.name, side, tt.side)
		}
	}
}

func TestSideOfCornerPrecedence(t *testing.T) {
	// A corner point sits on two wall lines; the x-axis walls win.
	side, ok := SideOf(pit, model.Position{X: 15, Z: 10}, 2.0)
	if !ok {
		t.Fatal("corner point should classify to a side")
	}
	if side != SideEast {
		t.Errorf("corner classified to %s, want east", side)
	}

	side, ok = SideOf(pit, model.Position{X: -15, Z: -10}, 2.0)
	if !ok || side != SideWest {
		t.Errorf("corner classified to %s (ok=%v), want west", side, ok)
	}
}

func TestCorners(t *testing.T) {
	corners := Corners(pit)
	want := map[model.Position]bool{
		{X: 15, Z: 10}:   true,
		{X: 15, Z: -10}:  true,
		{X: -15, Z: 10}:  true,
		{X: -15, Z: -10}: true,
	}
	for _, c := range corners {
		if !want[c] {
			t.Errorf("unexpected corner %+v", c)
		}
		delete(want, c)
	}
	if len(want) != 0 {
		t.Errorf("missing corners: %v", want)
	}
}

func TestPlanDistance(t *testing.T) {
	a := model.Position{X: 1, Y: 5, Z: 1}
	b := model.Position{X: 4, Y: -2, Z: 5}
	if got := PlanDistance(a, b); math.Abs(got-5) > 1e-9 {
		t.Errorf("PlanDistance = %g, want 5", got)
	}
}

func TestPerimeter(t *testing.T) {
	if got := Perimeter(pit); got != 100 {
		t.Errorf("Perimeter = %g, want 100", got)
	}
}

// The footprint radius and the edge offset are computed from different
// formulas and verified independently.

func TestFootprintRadius(t *testing.T) {
	if got := FootprintRadius(pit); got != 15 {
		t.Errorf("FootprintRadius = %g, want 15", got)
	}
	tall := model.PitConfig{Length: 10, Width: 44}
	if got := FootprintRadius(tall); got != 22 {
		t.Errorf("FootprintRadius(tall) = %g, want 22", got)
	}
}

func TestEdgeOffset(t *testing.T) {
	if got := EdgeOffset(pit); got != 15 {
		t.Errorf("EdgeOffset = %g, want 15", got)
	}
	tall := model.PitConfig{Length: 10, Width: 44}
	if got := EdgeOffset(tall); got != 22 {
		t.Errorf("EdgeOffset(tall) = %g, want 22", got)
	}
}

func TestMaxRadial(t *testing.T) {
	if got := MaxRadial(nil); got != 0 {
		t.Errorf("MaxRadial(nil) = %g, want 0", got)
	}

	ps := []model.Position{
		{X: 3, Z: 4},
		{X: 10, Z: 0},
		{X: 0, Z: -7},
	}
	if got := MaxRadial(ps); math.Abs(got-10) > 1e-9 {
		t.Errorf("MaxRadial = %g, want 10", got)
	}
}

func TestMeanWallSpacing(t *testing.T) {
	// Three points along the east wall, five meters apart.
	ps := []model.Position{
		{X: 15, Z: -5},
		{X: 15, Z: 0},
		{X: 15, Z: 5},
	}
	if got := MeanWallSpacing(pit, ps, 2.0); math.Abs(got-5) > 1e-9 {
		t.Errorf("MeanWallSpacing = %g, want 5", got)
	}
}

func TestMeanWallSpacingSparse(t *testing.T) {
	// One point per side: no gaps to measure.
	ps := []model.Position{
		{X: 15, Z: 0},
		{X: -15, Z: 0},
		{X: 0, Z: 10},
		{X: 0, Z: -10},
	}
	if got := MeanWallSpacing(pit, ps, 2.0); got != 0 {
		t.Errorf("MeanWallSpacing = %g, want 0", got)
	}

	if got := MeanWallSpacing(pit, nil, 2.0); got != 0 {
		t.Errorf("MeanWallSpacing(nil) = %g, want 0", got)
	}
}
