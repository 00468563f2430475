package checks

import (
	"fmt"

	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/standard"
)

// NecessityCheck issues the standard's monitoring-necessity advisory.
// Exactly one suggestion is emitted per run, independent of every other
// check outcome.
func NecessityCheck(in *Input, rpt *Report) {
	switch {
	case in.Config.SafetyLevel <= standard.MandatoryLevel:
		rpt.add(Finding{
			Check:    "necessity",
			Kind:     KindMonitoringMandatory,
			Severity: model.SeveritySuggestion,
			Actual:   float64(in.Config.SafetyLevel),
			Want:     float64(standard.MandatoryLevel),
			Message: fmt.Sprintf("safety level %d pits must be monitored for the whole construction period",
				in.Config.SafetyLevel),
		})
	case in.Config.Depth >= standard.AdvisoryDepth:
		rpt.add(Finding{
			Check:    "necessity",
			Kind:     KindMonitoringAdvised,
			Severity: model.SeveritySuggestion,
			Actual:   in.Config.Depth,
			Want:     standard.AdvisoryDepth,
			Message: fmt.Sprintf("pits %g m deep or more should be monitored; this one is %g m",
				standard.AdvisoryDepth, in.Config.Depth),
		})
	default:
		rpt.add(Finding{
			Check:    "necessity",
			Kind:     KindMonitoringDiscretionary,
			Severity: model.SeveritySuggestion,
			Actual:   in.Config.Depth,
			Want:     standard.AdvisoryDepth,
			Message:  "monitoring is discretionary for this pit; decide from site conditions",
		})
	}
}
