package checks

import "github.com/terrasense/pitcheck/internal/model"

// Compliance carries the per-axis numeric detail of a validation run. All
// fields are recomputed on every run.
type Compliance struct {
	Required    CoverageReport `json:"required"`
	Recommended CoverageReport `json:"recommended"`
	Layout      LayoutReport   `json:"layout"`
	Quantity    QuantityReport `json:"quantity"`
	Range       RangeReport    `json:"range"`
}

// CoverageReport counts how many categories of one requirement tier are
// present in the layout.
type CoverageReport struct {
	Total   int              `json:"total"`
	Covered int              `json:"covered"`
	Missing []model.Category `json:"missing,omitempty"`
}

// LayoutReport summarizes the spatial distribution axis.
type LayoutReport struct {
	WallPoints      int     `json:"wall_points"`       // side-classified displacement points
	SidesCovered    int     `json:"sides_covered"`     // sides meeting the per-side minimum
	CornersCovered  int     `json:"corners_covered"`   // corners with a point in reach
	MeanWallSpacing float64 `json:"mean_wall_spacing"` // meters, 0 when not measurable
	DeepPoints      int     `json:"deep_points"`
	DeepWant        int     `json:"deep_want"`
	SettlementReach float64 `json:"settlement_reach"` // meters beyond the pit edge
	SettlementWant  float64 `json:"settlement_want"`
}

// QuantityReport summarizes the point density axis.
type QuantityReport struct {
	Sensors            int     `json:"sensors"`
	Perimeter          float64 `json:"perimeter"`
	Density            float64 `json:"density"` // points per meter of perimeter
	RecommendedDensity float64 `json:"recommended_density"`
	Adequate           bool    `json:"adequate"`
}

// RangeReport summarizes the monitoring reach axis.
type RangeReport struct {
	Sensors        int     `json:"sensors"`
	Peripheral     int     `json:"peripheral"` // points beyond the pit footprint
	Share          float64 `json:"share"`      // peripheral fraction of all points
	MaxDistance    float64 `json:"max_distance"`
	RecommendedMax float64 `json:"recommended_max"`
}
