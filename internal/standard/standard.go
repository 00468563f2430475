// Package standard encodes the monitoring standard's static knowledge: the
// instrument categories each pit class calls for and the layout rules points
// must follow. The tables are built once and never mutated.
package standard

import "github.com/terrasense/pitcheck/internal/model"

// Requirements lists the monitoring categories for one pit class, in the
// order the standard tabulates them. Message ordering follows list order.
type Requirements struct {
	Required    []model.Category
	Recommended []model.Category
	Optional    []model.Category
}

// matrix keys requirements by composition, then safety level. It covers
// exactly the nine combinations the standard defines.
var matrix = map[model.Composition]map[model.SafetyLevel]Requirements{
	model.CompositionSoil: {
		1: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.DeepHorizontal,
				model.SupportForce,
				model.WaterLevel,
				model.GroundSettlement,
			},
			Recommended: []model.Category{
				model.AnchorForce,
				model.WallInternalForce,
			},
			Optional: []model.Category{
				model.PorePressure,
				model.SoilPressure,
			},
		},
		2: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.DeepHorizontal,
				model.SupportForce,
				model.WaterLevel,
			},
			Recommended: []model.Category{
				model.GroundSettlement,
				model.AnchorForce,
			},
			Optional: []model.Category{
				model.WallInternalForce,
				model.PorePressure,
				model.SoilPressure,
			},
		},
		3: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.WaterLevel,
			},
			Recommended: []model.Category{
				model.DeepHorizontal,
				model.GroundSettlement,
			},
			Optional: []model.Category{
				model.SupportForce,
				model.AnchorForce,
			},
		},
	},
	model.CompositionRock: {
		1: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.AnchorForce,
				model.WaterLevel,
			},
			Recommended: []model.Category{
				model.GroundSettlement,
			},
			Optional: []model.Category{
				model.SupportForce,
			},
		},
		2: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.AnchorForce,
			},
			Recommended: []model.Category{
				model.WaterLevel,
				model.GroundSettlement,
			},
			Optional: []model.Category{
				model.SupportForce,
			},
		},
		3: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
			},
			Recommended: []model.Category{
				model.AnchorForce,
			},
			Optional: []model.Category{
				model.WaterLevel,
				model.GroundSettlement,
			},
		},
	},
	model.CompositionSoilRock: {
		1: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.DeepHorizontal,
				model.AnchorForce,
				model.WaterLevel,
				model.GroundSettlement,
			},
			Recommended: []model.Category{
				model.SupportForce,
				model.WallInternalForce,
			},
			Optional: []model.Category{
				model.PorePressure,
			},
		},
		2: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.DeepHorizontal,
				model.WaterLevel,
			},
			Recommended: []model.Category{
				model.AnchorForce,
				model.GroundSettlement,
			},
			Optional: []model.Category{
				model.SupportForce,
			},
		},
		3: {
			Required: []model.Category{
				model.HorizontalDisplacement,
				model.VerticalDisplacement,
				model.WaterLevel,
			},
			Recommended: []model.Category{
				model.GroundSettlement,
			},
			Optional: []model.Category{
				model.DeepHorizontal,
				model.AnchorForce,
			},
		},
	},
}

// Resolve looks up the monitoring requirements for a pit class. The bool
// reports whether the combination is one of the nine the standard defines.
// The returned lists are shared and must not be mutated.
func Resolve(c model.Composition, l model.SafetyLevel) (Requirements, bool) {
	levels, ok := matrix[c]
	if !ok {
		return Requirements{}, false
	}
	reqs, ok := levels[l]
	return reqs, ok
}

// Compositions returns the compositions the standard covers, in
// tabulation order.
func Compositions() []model.Composition {
	return []model.Composition{
		model.CompositionSoil,
		model.CompositionRock,
		model.CompositionSoilRock,
	}
}

// Levels returns the safety levels the standard covers, most stringent
// first.
func Levels() []model.SafetyLevel {
	return []model.SafetyLevel{1, 2, 3}
}
