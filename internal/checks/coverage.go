package checks

import (
	"fmt"
	"math"

	"github.com/terrasense/pitcheck/internal/geometry"
	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/standard"
)

// RangeCheck partitions points into in-pit and peripheral ones and sizes
// the monitored reach against the recommended maximum. Peripheral points
// watch the surroundings the excavation can disturb.
func RangeCheck(in *Input, rpt *Report) {
	radius := geometry.FootprintRadius(in.Config)

	peripheral := 0
	positions := make([]model.Position, len(in.Sensors))
	for i, s := range in.Sensors {
		positions[i] = s.Position
		if geometry.Radial(s.Position) > radius {
			peripheral++
		}
	}

	total := len(in.Sensors)
	share := 0.0
	if total > 0 {
		share = float64(peripheral) / float64(total)
	}

	if float64(peripheral) < float64(total)*standard.PeripheralShare {
		rpt.add(Finding{
			Check:    "range",
			Kind:     KindLowPeripheralShare,
			Severity: model.SeverityWarning,
			Actual:   share,
			Want:     standard.PeripheralShare,
			Message: fmt.Sprintf("only %.0f%% of points monitor beyond the pit footprint; the standard suggests at least %.0f%%",
				share*100, standard.PeripheralShare*100),
		})
	}

	rpt.Compliance.Range = RangeReport{
		Sensors:        total,
		Peripheral:     peripheral,
		Share:          share,
		MaxDistance:    geometry.MaxRadial(positions),
		RecommendedMax: math.Max(in.Config.Length, in.Config.Width) * standard.ReachFactor,
	}
}
