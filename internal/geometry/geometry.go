// Package geometry implements the spatial analysis behind the layout
// checks: classifying points to pit sides and corners, radial distances
// and wall spacing. It carries no knowledge of the monitoring standard;
// tolerances come in as arguments.
package geometry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/terrasense/pitcheck/internal/model"
)

// Side identifies one wall of the rectangular pit footprint.
type Side int

const (
	SideEast  Side = iota // x = +length/2
	SideWest              // x = -length/2
	SideNorth             // z = +width/2
	SideSouth             // z = -width/2
)

func (s Side) String() string {
	switch s {
	case SideEast:
		return "east"
	case SideWest:
		return "west"
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	default:
		return "unknown"
	}
}

// Sides returns the four pit sides in classification order.
func Sides() []Side {
	return []Side{SideEast, SideWest, SideNorth, SideSouth}
}

// Radial returns the horizontal distance from the pit center to a position.
// The vertical coordinate does not contribute.
func Radial(p model.Position) float64 {
	return math.Hypot(p.X, p.Z)
}

// PlanDistance returns the horizontal distance between two positions.
func PlanDistance(a, b model.Position) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// SideOf classifies a position to the pit side whose wall line it sits on,
// within tol meters. A position near two walls (a corner) resolves to the
// first match in east, west, north, south order. The bool reports whether
// any side matched.
func SideOf(cfg model.PitConfig, p model.Position, tol float64) (Side, bool) {
	halfLength := cfg.Length / 2
	halfWidth := cfg.Width / 2

	switch {
	case math.Abs(p.X-halfLength) < tol:
		return SideEast, true
	case math.Abs(p.X+halfLength) < tol:
		return SideWest, true
	case math.Abs(p.Z-halfWidth) < tol:
		return SideNorth, true
	case math.Abs(p.Z+halfWidth) < tol:
		return SideSouth, true
	}
	return 0, false
}

// Corners returns the four corners of the pit footprint at ground level.
func Corners(cfg model.PitConfig) [4]model.Position {
	halfLength := cfg.Length / 2
	halfWidth := cfg.Width / 2
	return [4]model.Position{
		{X: halfLength, Z: halfWidth},
		{X: halfLength, Z: -halfWidth},
		{X: -halfLength, Z: halfWidth},
		{X: -halfLength, Z: -halfWidth},
	}
}

// Perimeter returns the footprint perimeter of the pit.
func Perimeter(cfg model.PitConfig) float64 {
	return 2 * (cfg.Length + cfg.Width)
}

// FootprintRadius is the radius separating in-pit points from peripheral
// ones: half of the longer footprint dimension.
func FootprintRadius(cfg model.PitConfig) float64 {
	return math.Max(cfg.Length, cfg.Width) / 2
}

// EdgeOffset estimates the distance from the pit center to the farthest
// wall, taking the larger of the half-length and the half-width.
func EdgeOffset(cfg model.PitConfig) float64 {
	return math.Max(cfg.Length/2, cfg.Width/2)
}

// MaxRadial returns the largest radial distance among the positions, or 0
// when the list is empty.
func MaxRadial(ps []model.Position) float64 {
	if len(ps) == 0 {
		return 0
	}
	rs := make([]float64, len(ps))
	for i, p := range ps {
		rs[i] = Radial(p)
	}
	return floats.Max(rs)
}

// MeanWallSpacing returns the mean gap between neighbouring points along
// the sides they classify to, or 0 when no side holds two or more points.
// Along the east and west walls points are ordered by Z, along the north
// and south walls by X.
func MeanWallSpacing(cfg model.PitConfig, ps []model.Position, tol float64) float64 {
	along := make(map[Side][]float64)
	for _, p := range ps {
		side, ok := SideOf(cfg, p, tol)
		if !ok {
			continue
		}
		switch side {
		case SideEast, SideWest:
			along[side] = append(along[side], p.Z)
		default:
			along[side] = append(along[side], p.X)
		}
	}

	var gaps []float64
	for _, coords := range along {
		if len(coords) < 2 {
			continue
		}
		sort.Float64s(coords)
		for i := 1; i < len(coords); i++ {
			gaps = append(gaps, coords[i]-coords[i-1])
		}
	}
	if len(gaps) == 0 {
		return 0
	}
	return stat.Mean(gaps, nil)
}
