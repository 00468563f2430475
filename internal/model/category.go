package model

// Category identifies the physical quantity a monitoring point measures.
// The set is closed: the standard defines exactly these ten instrument
// classes.
type Category string

const (
	HorizontalDisplacement Category = "horizontal-displacement"
	VerticalDisplacement   Category = "vertical-displacement"
	DeepHorizontal         Category = "deep-horizontal"
	SupportForce           Category = "support-force"
	AnchorForce            Category = "anchor-force"
	WaterLevel             Category = "water-level"
	GroundSettlement       Category = "ground-settlement"
	WallInternalForce      Category = "wall-internal-force"
	PorePressure           Category = "pore-pressure"
	SoilPressure           Category = "soil-pressure"
)

// CategoryInfo carries the static metadata attached to a category.
type CategoryInfo struct {
	DisplayName string
	Unit        string
	MinCount    int  // minimum recommended number of points
	Glyph       rune // single-character marker for plan views
}

var categoryInfo = map[Category]CategoryInfo{
	HorizontalDisplacement: {"horizontal displacement", "mm", 8, 'H'},
	VerticalDisplacement:   {"vertical displacement", "mm", 8, 'V'},
	DeepHorizontal:         {"deep horizontal displacement", "mm", 4, 'D'},
	SupportForce:           {"strut axial force", "kN", 4, 'S'},
	AnchorForce:            {"anchor axial force", "kN", 2, 'A'},
	WaterLevel:             {"groundwater level", "m", 2, 'W'},
	GroundSettlement:       {"ground settlement", "mm", 6, 'G'},
	WallInternalForce:      {"retaining wall internal force", "kN·m", 1, 'I'},
	PorePressure:           {"pore water pressure", "kPa", 1, 'P'},
	SoilPressure:           {"earth pressure", "kPa", 1, 'E'},
}

// categoryOrder fixes the display order of the closed set.
var categoryOrder = []Category{
	HorizontalDisplacement,
	VerticalDisplacement,
	DeepHorizontal,
	SupportForce,
	AnchorForce,
	WaterLevel,
	GroundSettlement,
	WallInternalForce,
	PorePressure,
	SoilPressure,
}

// Categories returns every defined category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Info returns the metadata for a category. The bool reports whether the
// category is a member of the closed set.
func Info(c Category) (CategoryInfo, bool) {
	info, ok := categoryInfo[c]
	return info, ok
}

// Known reports whether c is one of the ten defined categories.
func Known(c Category) bool {
	_, ok := categoryInfo[c]
	return ok
}

// DisplayName returns the human-readable name of a category. Unknown
// categories render as their raw key.
func DisplayName(c Category) string {
	if info, ok := categoryInfo[c]; ok {
		return info.DisplayName
	}
	return string(c)
}

// MinCount returns the minimum recommended point count for a category.
// Categories without a listed minimum default to 1.
func MinCount(c Category) int {
	if info, ok := categoryInfo[c]; ok {
		return info.MinCount
	}
	return 1
}
