package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/terrasense/pitcheck/internal/checks"
	"github.com/terrasense/pitcheck/internal/site"
)

const leanSiteYAML = `site:
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

// fullSiteYAML builds a site whose layout satisfies every check: counts at
// the minimums, walls ringed at middles and corners, settlement points out
// to twice the pit depth.
func fullSiteYAML() string {
	var b strings.Builder
	b.WriteString(`site:
  name: Harbor substation pit
pit:
  composition: soil
  safety_level: 1
  length: 30
  width: 20
  depth: 10
sensors:
`)
	add := func(cat string, x, z float64) {
		fmt.Fprintf(&b, "  - category: %s\n    x: %g\n    y: 0\n    z: %g\n", cat, x, z)
	}
	for _, z := range []float64{-9, -3, 3, 9} {
		add("horizontal-displacement", 15, z)
		add("horizontal-displacement", -15, z)
	}
	for _, x := range []float64{-9, -3, 3, 9} {
		add("vertical-displacement", x, 10)
		add("vertical-displacement", x, -10)
	}
	for _, x := range []float64{-10, -5, 5, 10} {
		add("deep-horizontal", x, 0)
	}
	for _, x := range []float64{-12, -6, 6, 12} {
		add("support-force", x, 0)
	}
	add("water-level", 0, 6)
	add("water-level", 0, -6)
	for _, p := range [][2]float64{
		{35, 0}, {-35, 0}, {0, 35}, {0, -35},
		{30, 0}, {-30, 0}, {0, 30}, {0, -30},
	} {
		add("ground-settlement", p[0], p[1])
	}
	return b.String()
}

func writeSite(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// captureStdout redirects os.Stdout around fn and returns what it printed.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	fnErr := fn()
	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	if fnErr != nil {
		t.Fatalf("command failed: %v", fnErr)
	}
	return string(data)
}

func TestOutputJSONEnvelope(t *testing.T) {
	path := writeSite(t, "riverside.yaml", leanSiteYAML)
	st, err := site.Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rpt := checks.Validate(st.Config, st.Sensors)

	out := captureStdout(t, func() error { return outputJSON(st, rpt) })

	var envelope struct {
		ReportID    string `json:"report_id"`
		GeneratedAt string `json:"generated_at"`
		Site        string `json:"site"`
		Path        string `json:"path"`
		Pit         struct {
			Composition string  `json:"composition"`
			SafetyLevel int     `json:"safety_level"`
			Length      float64 `json:"length"`
			Width       float64 `json:"width"`
			Depth       float64 `json:"depth"`
		} `json:"pit"`
		Valid   bool   `json:"valid"`
		Summary string `json:"summary"`
		Errors  []struct {
			Check    string  `json:"check"`
			Kind     string  `json:"kind"`
			Severity string  `json:"severity"`
			Category string  `json:"category"`
			Message  string  `json:"message"`
			Want     float64 `json:"want"`
		} `json:"errors"`
		Warnings    []json.RawMessage `json:"warnings"`
		Suggestions []struct {
			Kind string `json:"kind"`
		} `json:"suggestions"`
		Compliance *struct {
			Required struct {
				Total   int      `json:"total"`
				Covered int      `json:"covered"`
				Missing []string `json:"missing"`
			} `json:"required"`
			Quantity struct {
				Perimeter float64 `json:"perimeter"`
			} `json:"quantity"`
			Range struct {
				Share float64 `json:"share"`
			} `json:"range"`
		} `json:"compliance"`
	}
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if _, err := uuid.Parse(envelope.ReportID); err != nil {
		t.Errorf("report_id %q is not a UUID: %v", envelope.ReportID, err)
	}
	if _, err := time.Parse(time.RFC3339, envelope.GeneratedAt); err != nil {
		t.Errorf("generated_at %q is not RFC 3339: %v", envelope.GeneratedAt, err)
	}
	if envelope.Site != "Riverside Tower basement" {
		t.Errorf("site = %q", envelope.Site)
	}
	if envelope.Path != st.Path {
		t.Errorf("path = %q, want %q", envelope.Path, st.Path)
	}
	if envelope.Pit.Composition != "soil" || envelope.Pit.SafetyLevel != 1 {
		t.Errorf("pit class = %s/%d", envelope.Pit.Composition, envelope.Pit.SafetyLevel)
	}
	if envelope.Pit.Length != 30 || envelope.Pit.Width != 20 || envelope.Pit.Depth != 10 {
		t.Errorf("pit dimensions = %g x %g x %g",
			envelope.Pit.Length, envelope.Pit.Width, envelope.Pit.Depth)
	}
	if envelope.Valid {
		t.Error("an under-instrumented pit must not report valid")
	}
	if !strings.Contains(envelope.Summary, "4 error(s)") {
		t.Errorf("summary = %q", envelope.Summary)
	}

	if len(envelope.Errors) != 4 {
		t.Fatalf("expected 4 errors, got %d", len(envelope.Errors))
	}
	first := envelope.Errors[0]
	if first.Check != "presence" || first.Kind != "missing-required" || first.Severity != "error" {
		t.Errorf("errors[0] = %+v", first)
	}
	if first.Category != "vertical-displacement" || first.Want != 8 {
		t.Errorf("errors[0] category/want = %s/%g", first.Category, first.Want)
	}
	if len(envelope.Warnings) != 8 {
		t.Errorf("expected 8 warnings, got %d", len(envelope.Warnings))
	}
	if n := len(envelope.Suggestions); n != 3 {
		t.Fatalf("expected 3 suggestions, got %d", n)
	}
	if last := envelope.Suggestions[2].Kind; last != "monitoring-mandatory" {
		t.Errorf("suggestions end with %q, want the necessity call", last)
	}

	if envelope.Compliance == nil {
		t.Fatal("expected compliance detail in the envelope")
	}
	if envelope.Compliance.Required.Total != 6 || envelope.Compliance.Required.Covered != 2 {
		t.Errorf("required coverage = %d/%d",
			envelope.Compliance.Required.Covered, envelope.Compliance.Required.Total)
	}
	if len(envelope.Compliance.Required.Missing) != 4 {
		t.Errorf("missing categories = %v", envelope.Compliance.Required.Missing)
	}
	if envelope.Compliance.Quantity.Perimeter != 100 {
		t.Errorf("perimeter = %g", envelope.Compliance.Quantity.Perimeter)
	}
	if envelope.Compliance.Range.Share != 0.5 {
		t.Errorf("peripheral share = %g", envelope.Compliance.Range.Share)
	}
}

// TestCheckCommandCompliantSite drives the check command end to end on a
// site with nothing to flag, the one path where it neither exits nor errors.
func TestCheckCommandCompliantSite(t *testing.T) {
	path := writeSite(t, "harbor.yaml", fullSiteYAML())

	out := captureStdout(t, func() error { return runCheck(checkCmd, []string{path}) })

	if !strings.Contains(out, "Site: Harbor substation pit") {
		t.Errorf("site header missing:\n%s", out)
	}
	if !strings.Contains(out, "Verdict: 3 suggestion(s)") {
		t.Errorf("verdict missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "Coverage: 6/6 required, 0/2 recommended") {
		t.Errorf("expected full required coverage:\n%s", out)
	}
}

func TestCheckCommandJSONFormat(t *testing.T) {
	path := writeSite(t, "harbor.yaml", fullSiteYAML())

	if err := checkCmd.Flags().Set("format", "json"); err != nil {
		t.Fatalf("setting format: %v", err)
	}
	t.Cleanup(func() { _ = checkCmd.Flags().Set("format", "text") })

	out := captureStdout(t, func() error { return runCheck(checkCmd, []string{path}) })

	var envelope struct {
		ReportID   string            `json:"report_id"`
		Valid      bool              `json:"valid"`
		Errors     []json.RawMessage `json:"errors"`
		Warnings   []json.RawMessage `json:"warnings"`
		Compliance json.RawMessage   `json:"compliance"`
	}
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("check --format json did not produce JSON: %v", err)
	}
	if envelope.ReportID == "" {
		t.Error("expected a report_id")
	}
	if !envelope.Valid {
		t.Error("a fully instrumented pit must report valid")
	}
	if len(envelope.Errors) != 0 || len(envelope.Warnings) != 0 {
		t.Errorf("expected a clean report, got %d error(s), %d warning(s)",
			len(envelope.Errors), len(envelope.Warnings))
	}
	if len(envelope.Compliance) == 0 {
		t.Error("expected compliance detail for a resolvable pit class")
	}
}
