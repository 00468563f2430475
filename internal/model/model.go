// Package model defines the core data types shared across pitcheck.
package model

// Composition classifies the ground an excavation pit is cut into.
type Composition string

const (
	CompositionSoil     Composition = "soil"
	CompositionRock     Composition = "rock"
	CompositionSoilRock Composition = "soil-rock"
)

// SafetyLevel is the standard's three-tier risk classification for a pit.
// Level 1 is the most stringent.
type SafetyLevel int

// Severity grades a validation finding.
type Severity int

const (
	SeveritySuggestion Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuggestion:
		return "suggestion"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Position locates a sensor relative to the pit center. Y is the vertical
// axis; X and Z span the horizontal plane.
type Position struct {
	X float64
	Y float64
	Z float64
}

// Sensor is a single placed monitoring point. Sensors are inputs to
// validation and are never mutated.
type Sensor struct {
	Category Category
	Position Position
}

// PitConfig describes the excavation pit under assessment. Dimensions are
// in meters: Length spans the X axis, Width the Z axis, Depth the Y axis.
type PitConfig struct {
	Composition Composition
	SafetyLevel SafetyLevel
	Length      float64
	Width       float64
	Depth       float64
}
