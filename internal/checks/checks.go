// Package checks implements the layout validation pipeline: it resolves the
// monitoring requirements for a pit class and scores the placed sensors
// against them along independent axes.
package checks

import (
	"fmt"
	"strings"

	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/standard"
)

// Kind tags a finding with its machine-readable cause, so hosts can act on
// findings without parsing message text.
type Kind int

const (
	KindRequirementNotFound Kind = iota
	KindMissingRequired
	KindBelowMinimum
	KindMissingRecommended
	KindSparseSides
	KindUncoveredCorners
	KindThinWallCoverage
	KindDeepShortfall
	KindShortSettlementRange
	KindSparseSettlement
	KindLowPeripheralShare
	KindMonitoringMandatory
	KindMonitoringAdvised
	KindMonitoringDiscretionary
)

func (k Kind) String() string {
	switch k {
	case KindRequirementNotFound:
		return "requirement-not-found"
	case KindMissingRequired:
		return "missing-required"
	case KindBelowMinimum:
		return "below-minimum"
	case KindMissingRecommended:
		return "missing-recommended"
	case KindSparseSides:
		return "sparse-sides"
	case KindUncoveredCorners:
		return "uncovered-corners"
	case KindThinWallCoverage:
		return "thin-wall-coverage"
	case KindDeepShortfall:
		return "deep-shortfall"
	case KindShortSettlementRange:
		return "short-settlement-range"
	case KindSparseSettlement:
		return "sparse-settlement"
	case KindLowPeripheralShare:
		return "low-peripheral-share"
	case KindMonitoringMandatory:
		return "monitoring-mandatory"
	case KindMonitoringAdvised:
		return "monitoring-advised"
	case KindMonitoringDiscretionary:
		return "monitoring-discretionary"
	default:
		return "unknown"
	}
}

// Finding is a single validation finding. Actual and Want carry the numeric
// context for kinds that count or measure something; both are zero for
// purely qualitative findings.
type Finding struct {
	Check    string // which check produced this
	Kind     Kind
	Severity model.Severity
	Category model.Category // empty for layout-wide findings
	Message  string
	Actual   float64
	Want     float64
}

func (f Finding) String() string {
	if f.Category != "" {
		return fmt.Sprintf("[%s] %s: %s", f.Check, f.Category, f.Message)
	}
	return fmt.Sprintf("[%s] %s", f.Check, f.Message)
}

// Report is the outcome of validating a sensor layout. A report is rebuilt
// from scratch on every run and never merged with a previous one.
type Report struct {
	Valid       bool // true iff Errors is empty
	Errors      []Finding
	Warnings    []Finding
	Suggestions []Finding

	// Compliance holds the per-axis numeric detail. It is nil when the
	// requirement lookup failed; callers must treat that as "not
	// evaluated", not as "passed".
	Compliance *Compliance
}

// add routes a finding to the list its severity belongs in.
func (r *Report) add(f Finding) {
	switch f.Severity {
	case model.SeverityError:
		r.Errors = append(r.Errors, f)
	case model.SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Suggestions = append(r.Suggestions, f)
	}
}

// All returns every finding in report order: errors, then warnings, then
// suggestions.
func (r *Report) All() []Finding {
	out := make([]Finding, 0, len(r.Errors)+len(r.Warnings)+len(r.Suggestions))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	out = append(out, r.Suggestions...)
	return out
}

// ByCategory groups findings by sensor category. Layout-wide findings group
// under the empty category.
func (r *Report) ByCategory() map[model.Category][]Finding {
	m := make(map[model.Category][]Finding)
	for _, f := range r.All() {
		m[f.Category] = append(m[f.Category], f)
	}
	return m
}

// Summary returns a one-line summary of the report.
func (r *Report) Summary() string {
	if len(r.Errors) == 0 && len(r.Warnings) == 0 && len(r.Suggestions) == 0 {
		return "layout meets the standard"
	}

	var parts []string
	if n := len(r.Errors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", n))
	}
	if n := len(r.Warnings); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", n))
	}
	if n := len(r.Suggestions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d suggestion(s)", n))
	}
	return strings.Join(parts, ", ")
}

// Input carries the resolved context every check reads.
type Input struct {
	Config  model.PitConfig
	Sensors []model.Sensor
	Reqs    standard.Requirements
	Counts  map[model.Category]int
}

// positions returns the positions of all sensors in the given categories,
// in placement order.
func (in *Input) positions(cats ...model.Category) []model.Position {
	want := make(map[model.Category]bool, len(cats))
	for _, c := range cats {
		want[c] = true
	}
	var ps []model.Position
	for _, s := range in.Sensors {
		if want[s.Category] {
			ps = append(ps, s.Position)
		}
	}
	return ps
}

// Check evaluates one aspect of the layout and records findings and
// compliance detail on the report.
type Check func(in *Input, rpt *Report)

// checkOrder fixes the sequence checks run in. Finding order within each
// severity list follows this sequence.
var checkOrder = []struct {
	Name string
	Fn   Check
}{
	{"presence", PresenceCheck},
	{"spatial", SpatialCheck},
	{"quantity", QuantityCheck},
	{"range", RangeCheck},
	{"necessity", NecessityCheck},
}

// CheckNames returns the names accepted by the skip list, in run order.
func CheckNames() []string {
	names := make([]string, len(checkOrder))
	for i, c := range checkOrder {
		names[i] = c.Name
	}
	return names
}

// Validate scores a sensor layout against the monitoring standard. It is a
// pure function of its inputs: identical inputs yield identical reports.
func Validate(cfg model.PitConfig, sensors []model.Sensor) *Report {
	return Run(cfg, sensors, nil)
}

// Run executes all checks, or all but the skipped ones, and returns the
// aggregated report. An unresolvable (composition, level) pair yields a
// single error and skips every check.
func Run(cfg model.PitConfig, sensors []model.Sensor, skip []string) *Report {
	rpt := &Report{}

	reqs, ok := standard.Resolve(cfg.Composition, cfg.SafetyLevel)
	if !ok {
		rpt.add(Finding{
			Check:    "requirements",
			Kind:     KindRequirementNotFound,
			Severity: model.SeverityError,
			Message: fmt.Sprintf("no monitoring requirements defined for composition %q at safety level %d",
				cfg.Composition, cfg.SafetyLevel),
		})
		rpt.Valid = len(rpt.Errors) == 0
		return rpt
	}

	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}

	in := &Input{
		Config:  cfg,
		Sensors: sensors,
		Reqs:    reqs,
		Counts:  countByCategory(sensors),
	}
	rpt.Compliance = &Compliance{}

	for _, c := range checkOrder {
		if skipSet[c.Name] {
			continue
		}
		c.Fn(in, rpt)
	}

	rpt.Valid = len(rpt.Errors) == 0
	return rpt
}

func countByCategory(sensors []model.Sensor) map[model.Category]int {
	m := make(map[model.Category]int, len(sensors))
	for _, s := range sensors {
		m[s.Category]++
	}
	return m
}
