package checks

import (
	"fmt"

	"github.com/terrasense/pitcheck/internal/model"
)

// PresenceCheck verifies that every required category is present in
// sufficient number and suggests the recommended categories that are
// absent. Findings append in requirement-list order: required first, then
// recommended.
func PresenceCheck(in *Input, rpt *Report) {
	required := CoverageReport{Total: len(in.Reqs.Required)}
	for _, cat := range in.Reqs.Required {
		n := in.Counts[cat]
		if n == 0 {
			required.Missing = append(required.Missing, cat)
			rpt.add(Finding{
				Check:    "presence",
				Kind:     KindMissingRequired,
				Severity: model.SeverityError,
				Category: cat,
				Want:     float64(model.MinCount(cat)),
				Message:  fmt.Sprintf("missing required monitoring: %s", model.DisplayName(cat)),
			})
			continue
		}
		required.Covered++

		if min := model.MinCount(cat); n < min {
			rpt.add(Finding{
				Check:    "presence",
				Kind:     KindBelowMinimum,
				Severity: model.SeverityWarning,
				Category: cat,
				Actual:   float64(n),
				Want:     float64(min),
				Message: fmt.Sprintf("%s has %d point(s), the standard recommends at least %d",
					model.DisplayName(cat), n, min),
			})
		}
	}

	recommended := CoverageReport{Total: len(in.Reqs.Recommended)}
	for _, cat := range in.Reqs.Recommended {
		if in.Counts[cat] == 0 {
			recommended.Missing = append(recommended.Missing, cat)
			rpt.add(Finding{
				Check:    "presence",
				Kind:     KindMissingRecommended,
				Severity: model.SeveritySuggestion,
				Category: cat,
				Message:  fmt.Sprintf("consider adding %s monitoring", model.DisplayName(cat)),
			})
			continue
		}
		recommended.Covered++
	}

	rpt.Compliance.Required = required
	rpt.Compliance.Recommended = recommended
}
