package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/terrasense/pitcheck/internal/checks"
	"github.com/terrasense/pitcheck/internal/site"
)

// exportFinding mirrors checks.Finding with wire-friendly fields.
type exportFinding struct {
	Check    string  `json:"check"`
	Kind     string  `json:"kind"`
	Severity string  `json:"severity"`
	Category string  `json:"category,omitempty"`
	Message  string  `json:"message"`
	Actual   float64 `json:"actual"`
	Want     float64 `json:"want"`
}

type exportPit struct {
	Composition string  `json:"composition"`
	SafetyLevel int     `json:"safety_level"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
}

// exportReport is the JSON envelope written by the export action. The ID and
// timestamp identify the artifact, not the validation outcome: running the
// same site twice gives the same findings under different envelopes.
type exportReport struct {
	ReportID    string             `json:"report_id"`
	GeneratedAt string             `json:"generated_at"`
	Site        string             `json:"site"`
	Path        string             `json:"path,omitempty"`
	Pit         exportPit          `json:"pit"`
	Valid       bool               `json:"valid"`
	Summary     string             `json:"summary"`
	Errors      []exportFinding    `json:"errors"`
	Warnings    []exportFinding    `json:"warnings"`
	Suggestions []exportFinding    `json:"suggestions"`
	Compliance  *checks.Compliance `json:"compliance,omitempty"`
}

// WriteReport writes the validation report for a site as indented JSON.
func WriteReport(path string, st *site.Site, rpt *checks.Report) error {
	out := exportReport{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Site:        st.Name,
		Path:        st.Path,
		Pit: exportPit{
			Composition: string(st.Config.Composition),
			SafetyLevel: int(st.Config.SafetyLevel),
			Length:      st.Config.Length,
			Width:       st.Config.Width,
			Depth:       st.Config.Depth,
		},
		Valid:       rpt.Valid,
		Summary:     rpt.Summary(),
		Errors:      convertFindings(rpt.Errors),
		Warnings:    convertFindings(rpt.Warnings),
		Suggestions: convertFindings(rpt.Suggestions),
		Compliance:  rpt.Compliance,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return err
	}
	zap.S().Debugw("report exported", "path", path, "valid", rpt.Valid)
	return nil
}

func convertFindings(fs []checks.Finding) []exportFinding {
	out := make([]exportFinding, 0, len(fs))
	for _, f := range fs {
		out = append(out, exportFinding{
			Check:    f.Check,
			Kind:     f.Kind.String(),
			Severity: f.Severity.String(),
			Category: string(f.Category),
			Message:  f.Message,
			Actual:   f.Actual,
			Want:     f.Want,
		})
	}
	return out
}

// defaultExportPath derives the report filename from the site file:
// riverside.yaml becomes riverside.report.json.
func defaultExportPath(sitePath string) string {
	base := strings.TrimSuffix(sitePath, filepath.Ext(sitePath))
	return base + ".report.json"
}
