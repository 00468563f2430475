package checks

import (
	"strings"
	"testing"

	"github.com/terrasense/pitcheck/internal/model"
)

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRequirementNotFound, "requirement-not-found"},
		{KindMissingRequired, "missing-required"},
		{KindBelowMinimum, "below-minimum"},
		{KindMissingRecommended, "missing-recommended"},
		{KindSparseSides, "sparse-sides"},
		{KindUncoveredCorners, "uncovered-corners"},
		{KindThinWallCoverage, "thin-wall-coverage"},
		{KindDeepShortfall, "deep-shortfall"},
		{KindShortSettlementRange, "short-settlement-range"},
		{KindSparseSettlement, "sparse-settlement"},
		{KindLowPeripheralShare, "low-peripheral-share"},
		{KindMonitoringMandatory, "monitoring-mandatory"},
		{KindMonitoringAdvised, "monitoring-advised"},
		{KindMonitoringDiscretionary, "monitoring-discretionary"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFindingString(t *testing.T) {
	f := Finding{
		Check:    "presence",
		Category: model.WaterLevel,
		Message:  "missing required monitoring: groundwater level",
	}
	got := f.String()
	if !strings.HasPrefix(got, "[presence]") {
		t.Errorf("String() = %q, want check prefix", got)
	}
	if !strings.Contains(got, string(model.WaterLevel)) {
		t.Errorf("String() = %q, want category", got)
	}

	wide := Finding{Check: "spatial", Message: "4 corner(s) uncovered"}
	if got := wide.String(); strings.Contains(got, "  ") || !strings.HasPrefix(got, "[spatial] 4") {
		t.Errorf("layout-wide String() = %q", got)
	}
}

func TestReportAdd(t *testing.T) {
	var rpt Report
	rpt.add(Finding{Severity: model.SeverityError})
	rpt.add(Finding{Severity: model.SeverityWarning})
	rpt.add(Finding{Severity: model.SeverityWarning})
	rpt.add(Finding{Severity: model.SeveritySuggestion})

	if len(rpt.Errors) != 1 || len(rpt.Warnings) != 2 || len(rpt.Suggestions) != 1 {
		t.Errorf("add routed findings wrong: %d/%d/%d",
			len(rpt.Errors), len(rpt.Warnings), len(rpt.Suggestions))
	}
}

func TestReportAllOrder(t *testing.T) {
	rpt := Validate(soilPit(), nil)
	all := rpt.All()

	if len(all) != len(rpt.Errors)+len(rpt.Warnings)+len(rpt.Suggestions) {
		t.Fatalf("All() length = %d", len(all))
	}
	for i, f := range all[:len(rpt.Errors)] {
		if f.Severity != model.SeverityError {
			t.Errorf("All()[%d] severity = %v, want error first", i, f.Severity)
		}
	}
	if last := all[len(all)-1]; last.Severity != model.SeveritySuggestion {
		t.Errorf("All() must end with suggestions, got %v", last.Severity)
	}
}

func TestReportByCategory(t *testing.T) {
	rpt := Validate(soilPit(), nil)
	groups := rpt.ByCategory()

	hd := groups[model.HorizontalDisplacement]
	if len(hd) == 0 {
		t.Fatal("expected findings for horizontal displacement")
	}
	for _, f := range hd {
		if f.Category != model.HorizontalDisplacement {
			t.Errorf("mis-grouped finding: %v", f)
		}
	}

	// Layout-wide findings (sparse sides, necessity, ...) group under the
	// empty category.
	if len(groups[model.Category("")]) == 0 {
		t.Error("expected layout-wide findings under the empty category")
	}
}

func TestReportSummary(t *testing.T) {
	clean := &Report{Valid: true}
	if got := clean.Summary(); got != "layout meets the standard" {
		t.Errorf("clean Summary() = %q", got)
	}

	rpt := Validate(soilPit(), nil)
	got := rpt.Summary()
	if !strings.Contains(got, "6 error(s)") {
		t.Errorf("Summary() = %q, want error count", got)
	}
	if !strings.Contains(got, "suggestion(s)") {
		t.Errorf("Summary() = %q, want suggestion count", got)
	}

	warnOnly := &Report{Warnings: []Finding{{}}}
	if got := warnOnly.Summary(); got != "1 warning(s)" {
		t.Errorf("warning-only Summary() = %q", got)
	}
}
