package checks

import (
	"github.com/terrasense/pitcheck/internal/geometry"
	"github.com/terrasense/pitcheck/internal/standard"
)

// QuantityCheck relates the total point count to the pit perimeter. It
// emits no findings; the numbers land only in the quantity compliance
// record.
func QuantityCheck(in *Input, rpt *Report) {
	perimeter := geometry.Perimeter(in.Config)

	density := 0.0
	if perimeter > 0 {
		density = float64(len(in.Sensors)) / perimeter
	}
	recommended := standard.RecommendedDensity(in.Config.SafetyLevel)

	rpt.Compliance.Quantity = QuantityReport{
		Sensors:            len(in.Sensors),
		Perimeter:          perimeter,
		Density:            density,
		RecommendedDensity: recommended,
		Adequate:           density >= recommended*standard.DensitySlack,
	}
}
