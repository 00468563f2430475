package standard

import "github.com/terrasense/pitcheck/internal/model"

// Layout thresholds from the standard's distribution rules.
const (
	// SideTolerance is how far a point may sit from a wall line and still
	// count as on that side, in meters.
	SideTolerance = 2.0
	// CornerRadius is the distance within which a corner counts as covered.
	CornerRadius = 5.0
	// MinPerSide is the wall displacement point count each side needs.
	MinPerSide = 3
	// MinWallPoints is the minimum total of side-classified wall points.
	MinWallPoints = 12

	// DeepPointsBase and DeepPointsLargePit are the deep horizontal profile
	// counts; the larger applies when the longer pit dimension exceeds
	// LargePitDimension.
	DeepPointsBase     = 4
	DeepPointsLargePit = 6
	LargePitDimension  = 50.0

	// SettlementRangeFactor sizes the settlement monitoring reach beyond the
	// pit edge as a multiple of pit depth. SettlementMinPoints is the least
	// acceptable number of settlement points.
	SettlementRangeFactor = 2.0
	SettlementMinPoints   = 8

	// PeripheralShare is the fraction of points that should sit beyond the
	// pit footprint. ReachFactor sizes the recommended maximum monitoring
	// radius as a multiple of the longer pit dimension.
	PeripheralShare = 0.3
	ReachFactor     = 1.5

	// DensitySlack is the tolerated fraction of the recommended density.
	DensitySlack = 0.8
)

// Monitoring-necessity thresholds.
const (
	// MandatoryLevel is the safety level at or below which monitoring is
	// compulsory for the whole construction period.
	MandatoryLevel model.SafetyLevel = 2
	// AdvisoryDepth is the pit depth, in meters, from which monitoring is
	// advised regardless of safety level.
	AdvisoryDepth = 5.0
)

// Zone names a preferred placement region along the pit wall.
type Zone string

const (
	ZoneMiddle Zone = "middle"
	ZoneCorner Zone = "corner"
)

// Constraint captures the layout rules the standard attaches to a category.
// Zero-valued fields mean the standard leaves that aspect unspecified.
type Constraint struct {
	MinPerSide  int     // points per pit side
	Zones       []Zone  // preferred placement regions
	MaxSpacing  float64 // meters between neighbouring points along the wall
	RangeFactor float64 // monitoring reach as a multiple of pit depth
	MinPoints   int     // minimum total points
}

var constraints = map[model.Category]Constraint{
	model.HorizontalDisplacement: {
		MinPerSide: MinPerSide,
		Zones:      []Zone{ZoneMiddle, ZoneCorner},
		MaxSpacing: 20,
	},
	model.VerticalDisplacement: {
		MinPerSide: MinPerSide,
		Zones:      []Zone{ZoneMiddle, ZoneCorner},
		MaxSpacing: 20,
	},
	model.DeepHorizontal: {
		Zones:     []Zone{ZoneMiddle},
		MinPoints: DeepPointsBase,
	},
	model.SupportForce: {
		MinPerSide: 1,
		Zones:      []Zone{ZoneMiddle},
	},
	model.AnchorForce: {
		MaxSpacing: 20,
	},
	model.WaterLevel: {
		MaxSpacing: 50,
	},
	model.GroundSettlement: {
		RangeFactor: SettlementRangeFactor,
		MinPoints:   SettlementMinPoints,
	},
	model.WallInternalForce: {
		Zones: []Zone{ZoneMiddle},
	},
	model.PorePressure: {
		Zones: []Zone{ZoneMiddle},
	},
	model.SoilPressure: {
		Zones: []Zone{ZoneMiddle},
	},
}

// ConstraintFor returns the layout constraint the standard defines for a
// category, if any.
func ConstraintFor(c model.Category) (Constraint, bool) {
	con, ok := constraints[c]
	return con, ok
}

// baseDensity is the recommended number of points per meter of pit
// perimeter, by safety level.
var baseDensity = map[model.SafetyLevel]float64{
	1: 0.8,
	2: 0.6,
	3: 0.4,
}

// RecommendedDensity returns the recommended sensor density for a safety
// level. Levels outside the standard's table fall back to 0.5.
func RecommendedDensity(l model.SafetyLevel) float64 {
	if d, ok := baseDensity[l]; ok {
		return d
	}
	return 0.5
}
