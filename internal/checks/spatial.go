package checks

import (
	"fmt"
	"math"

	"github.com/terrasense/pitcheck/internal/geometry"
	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/standard"
)

// SpatialCheck assesses whether sensors sit at the structurally meaningful
// locations: wall middles and corners, deep displacement profiles and the
// settlement ring. Its three sub-checks all run once reached; none blocks
// another.
func SpatialCheck(in *Input, rpt *Report) {
	layout := LayoutReport{}
	checkWallLayout(in, rpt, &layout)
	checkDeepLayout(in, rpt, &layout)
	checkSettlementLayout(in, rpt, &layout)
	rpt.Compliance.Layout = layout
}

// checkWallLayout classifies displacement points to the four pit sides and
// scores middle and corner coverage.
func checkWallLayout(in *Input, rpt *Report, layout *LayoutReport) {
	walls := in.positions(model.HorizontalDisplacement, model.VerticalDisplacement)

	perSide := make(map[geometry.Side]int, 4)
	classified := 0
	for _, p := range walls {
		if side, ok := geometry.SideOf(in.Config, p, standard.SideTolerance); ok {
			perSide[side]++
			classified++
		}
	}

	sparse := 0
	for _, side := range geometry.Sides() {
		if perSide[side] < standard.MinPerSide {
			sparse++
		}
	}
	if sparse > 0 {
		rpt.add(Finding{
			Check:    "spatial",
			Kind:     KindSparseSides,
			Severity: model.SeverityWarning,
			Actual:   float64(sparse),
			Want:     float64(standard.MinPerSide),
			Message: fmt.Sprintf("%d side(s) hold fewer than %d wall displacement points; cover each wall middle",
				sparse, standard.MinPerSide),
		})
	}

	uncovered := 0
	for _, corner := range geometry.Corners(in.Config) {
		covered := false
		for _, p := range walls {
			if geometry.PlanDistance(corner, p) < standard.CornerRadius {
				covered = true
				break
			}
		}
		if !covered {
			uncovered++
		}
	}
	if uncovered > 0 {
		rpt.add(Finding{
			Check:    "spatial",
			Kind:     KindUncoveredCorners,
			Severity: model.SeverityWarning,
			Actual:   float64(uncovered),
			Want:     float64(standard.CornerRadius),
			Message: fmt.Sprintf("%d corner(s) have no displacement point within %g m",
				uncovered, standard.CornerRadius),
		})
	}

	if classified < standard.MinWallPoints {
		rpt.add(Finding{
			Check:    "spatial",
			Kind:     KindThinWallCoverage,
			Severity: model.SeverityWarning,
			Actual:   float64(classified),
			Want:     float64(standard.MinWallPoints),
			Message: fmt.Sprintf("only %d displacement point(s) sit on the pit sides; the standard expects at least %d",
				classified, standard.MinWallPoints),
		})
	}

	layout.WallPoints = classified
	layout.SidesCovered = len(geometry.Sides()) - sparse
	layout.CornersCovered = len(geometry.Corners(in.Config)) - uncovered
	layout.MeanWallSpacing = geometry.MeanWallSpacing(in.Config, walls, standard.SideTolerance)
}

// checkDeepLayout sizes the deep horizontal profile count against the pit's
// longer dimension.
func checkDeepLayout(in *Input, rpt *Report, layout *LayoutReport) {
	count := in.Counts[model.DeepHorizontal]
	want := standard.DeepPointsBase
	if math.Max(in.Config.Length, in.Config.Width) > standard.LargePitDimension {
		want = standard.DeepPointsLargePit
	}
	if count < want {
		rpt.add(Finding{
			Check:    "spatial",
			Kind:     KindDeepShortfall,
			Severity: model.SeverityWarning,
			Category: model.DeepHorizontal,
			Actual:   float64(count),
			Want:     float64(want),
			Message: fmt.Sprintf("this pit calls for %d deep horizontal profile(s), found %d",
				want, count),
		})
	}
	layout.DeepPoints = count
	layout.DeepWant = want
}

// checkSettlementLayout measures how far settlement monitoring reaches
// beyond the pit edge, and whether enough points exist at all. The reach is
// negative when every settlement point sits inside the footprint.
func checkSettlementLayout(in *Input, rpt *Report, layout *LayoutReport) {
	points := in.positions(model.GroundSettlement)

	reach := geometry.MaxRadial(points) - geometry.EdgeOffset(in.Config)
	want := standard.SettlementRangeFactor * in.Config.Depth
	if reach < want {
		rpt.add(Finding{
			Check:    "spatial",
			Kind:     KindShortSettlementRange,
			Severity: model.SeverityWarning,
			Category: model.GroundSettlement,
			Actual:   reach,
			Want:     want,
			Message: fmt.Sprintf("ground settlement monitoring should reach %.1f m beyond the pit edge (%gx depth); current reach is %.1f m",
				want, standard.SettlementRangeFactor, reach),
		})
	}

	if len(points) < standard.SettlementMinPoints {
		rpt.add(Finding{
			Check:    "spatial",
			Kind:     KindSparseSettlement,
			Severity: model.SeverityWarning,
			Category: model.GroundSettlement,
			Actual:   float64(len(points)),
			Want:     float64(standard.SettlementMinPoints),
			Message: fmt.Sprintf("only %d ground settlement point(s); the standard recommends at least %d",
				len(points), standard.SettlementMinPoints),
		})
	}

	layout.SettlementReach = reach
	layout.SettlementWant = want
}
