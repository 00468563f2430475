package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/terrasense/pitcheck/internal/checks"
	"github.com/terrasense/pitcheck/internal/site"
)

const testSiteYAML = `site:
  name: Riverside Tower basement
pit:
  composition: soil
  safety_level: 1
  length: 30
  width: 20
  depth: 10
sensors:
  - category: horizontal-displacement
    x: 15
    y: 0
    z: 0
  - category: ground-settlement
    x: 25
    y: 0
    z: 0
`

func testSite(t *testing.T, yaml string) *site.Site {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riverside.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	st, err := site.Load(path, "yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return st
}

func setupModel(t *testing.T) Model {
	t.Helper()
	st := testSite(t, testSiteYAML)
	rpt := checks.Validate(st.Config, st.Sensors)
	m := New(st, rpt)
	// Simulate window size
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return newM.(Model)
}

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return newM.(Model)
}

func TestModelInit(t *testing.T) {
	m := setupModel(t)

	if m.tab != TabFindings {
		t.Errorf("expected findings tab first, got %v", m.tab)
	}
	if len(m.findings) == 0 {
		t.Error("expected findings for an under-instrumented pit")
	}
	if len(m.source) == 0 {
		t.Error("expected site file to be loaded for the source tab")
	}
}

func TestTabCycle(t *testing.T) {
	m := setupModel(t)

	want := []Tab{TabPlan, TabCompliance, TabSource, TabFindings}
	for _, w := range want {
		m = press(t, m, 'n')
		if m.tab != w {
			t.Fatalf("expected tab %v after next, got %v", w, m.tab)
		}
	}

	m = press(t, m, 'N')
	if m.tab != TabSource {
		t.Errorf("expected source tab after prev, got %v", m.tab)
	}
}

func TestFindingNavigation(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, 'j')
	if m.findingIndex != 1 {
		t.Errorf("expected findingIndex 1, got %d", m.findingIndex)
	}

	// Walk past the end — should clamp
	for range m.findings {
		m = press(t, m, 'j')
	}
	if m.findingIndex != len(m.findings)-1 {
		t.Errorf("expected findingIndex %d at end, got %d", len(m.findings)-1, m.findingIndex)
	}

	m = press(t, m, 'k')
	if m.findingIndex != len(m.findings)-2 {
		t.Errorf("expected findingIndex %d after up, got %d", len(m.findings)-2, m.findingIndex)
	}
}

func TestSourceScroll(t *testing.T) {
	m := setupModel(t)

	// Findings scrolling must not move the source view
	m = press(t, m, 'j')
	if m.scrollOffset != 0 {
		t.Errorf("expected scrollOffset 0 on findings tab, got %d", m.scrollOffset)
	}

	for m.tab != TabSource {
		m = press(t, m, 'n')
	}
	m = press(t, m, 'j')
	if m.scrollOffset != 1 {
		t.Errorf("expected scrollOffset 1, got %d", m.scrollOffset)
	}

	m = press(t, m, 'k')
	m = press(t, m, 'k')
	if m.scrollOffset != 0 {
		t.Errorf("expected scrollOffset 0 at top, got %d", m.scrollOffset)
	}
}

func TestViewRenders(t *testing.T) {
	m := setupModel(t)

	view := m.View()
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if !strings.Contains(view, "Findings") {
		t.Error("expected view to contain the tab bar")
	}
	if !strings.Contains(view, "Riverside") {
		t.Error("expected view to contain the site name")
	}
	if !strings.Contains(view, "missing required monitoring") {
		t.Error("expected view to contain a finding message")
	}
}

func TestPlanView(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, 'n') // plan tab

	view := m.View()
	if !strings.Contains(view, "Plan view") {
		t.Error("expected plan header")
	}
	if !strings.Contains(view, "+") {
		t.Error("expected pit outline corners")
	}
	if !strings.Contains(view, "horizontal displacement") {
		t.Error("expected legend entry for placed sensors")
	}
}

func TestComplianceView(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, 'n')
	m = press(t, m, 'n') // compliance tab

	view := m.View()
	if !strings.Contains(view, "required") {
		t.Error("expected coverage rows")
	}
	if !strings.Contains(view, "covered") {
		t.Error("expected coverage values")
	}
}

func TestComplianceNotEvaluated(t *testing.T) {
	yaml := strings.Replace(testSiteYAML, "composition: soil", "composition: sand", 1)
	st := testSite(t, yaml)
	rpt := checks.Validate(st.Config, st.Sensors)

	m := New(st, rpt)
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newM.(Model)

	m = press(t, m, 'n')
	m = press(t, m, 'n')
	view := m.View()
	if !strings.Contains(view, "not evaluated") {
		t.Error("expected compliance tab to flag the unresolved pit class")
	}
}

func TestHelpToggle(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, '?')
	if !m.showHelp {
		t.Error("expected help to be shown")
	}

	view := m.View()
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("expected help view to contain shortcuts")
	}
}

func TestExport(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, 'e')
	if !strings.Contains(m.exportStatus, "report written") {
		t.Fatalf("export status = %q", m.exportStatus)
	}

	path := defaultExportPath(m.site.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported report: %v", err)
	}

	var out struct {
		ReportID string `json:"report_id"`
		Valid    bool   `json:"valid"`
		Errors   []struct {
			Kind string `json:"kind"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("exported report is not valid JSON: %v", err)
	}
	if out.ReportID == "" {
		t.Error("expected a report ID")
	}
	if out.Valid {
		t.Error("under-instrumented pit must export as invalid")
	}
	if len(out.Errors) == 0 || out.Errors[0].Kind != "missing-required" {
		t.Errorf("exported errors = %+v", out.Errors)
	}
}

func TestDefaultExportPath(t *testing.T) {
	got := defaultExportPath(filepath.Join("sites", "riverside.yaml"))
	want := filepath.Join("sites", "riverside.report.json")
	if got != want {
		t.Errorf("defaultExportPath = %q, want %q", got, want)
	}
}
