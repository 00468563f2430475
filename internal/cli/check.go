package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/terrasense/pitcheck/internal/checks"
	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check [site-file]",
	Short: "Validate a site and output a report (non-interactive)",
	Long: `Run all validation checks on a site definition and output a structured
report. Useful for CI, pre-handover reviews, and piping into other tools.

Without an argument, looks for a conventionally named site file
(pitcheck.yaml, site.yaml, ...) in the current directory.

Exit codes:
  0 — layout meets the standard (suggestions may remain)
  1 — warnings found
  2 — errors found`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringP("format", "f", "text", "output format: text, json, markdown, html")
	checkCmd.Flags().StringSlice("skip", nil, "validation checks to skip")
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, err := loadSite(args)
	if err != nil {
		return err
	}

	skip, _ := cmd.Flags().GetStringSlice("skip")
	rpt := checks.Run(st.Config, st.Sensors, skip)
	zap.S().Debugw("checks complete",
		"site", st.Name,
		"errors", len(rpt.Errors),
		"warnings", len(rpt.Warnings),
		"suggestions", len(rpt.Suggestions))

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		err = outputJSON(st, rpt)
	case "markdown":
		err = outputMarkdown(st, rpt)
	case "html":
		err = outputHTML(st, rpt)
	default:
		err = outputText(st, rpt)
	}
	if err != nil {
		return err
	}

	// Set exit code
	if len(rpt.Errors) > 0 {
		os.Exit(2)
	} else if len(rpt.Warnings) > 0 {
		os.Exit(1)
	}
	return nil
}

// loadSite resolves the site file from the argument list, falling back to
// detection in the working directory.
func loadSite(args []string) (*site.Site, error) {
	if len(args) == 1 {
		return site.Load(args[0], "")
	}
	return site.DetectAndLoad(".")
}

func outputText(st *site.Site, rpt *checks.Report) error {
	fmt.Printf("Site: %s (%s)\n", st.Name, st.Path)
	fmt.Printf("Pit:  %s, safety level %d, %g x %g m, %g m deep\n",
		st.Config.Composition, st.Config.SafetyLevel,
		st.Config.Length, st.Config.Width, st.Config.Depth)
	fmt.Printf("Sensors: %d placed, %d categories\n", len(st.Sensors), categoryCount(st.Sensors))
	fmt.Printf("Verdict: %s\n\n", rpt.Summary())

	for _, f := range rpt.All() {
		fmt.Printf("  %s %s\n", severityIcon(f.Severity), f)
	}

	if c := rpt.Compliance; c != nil {
		fmt.Println()
		fmt.Printf("Coverage: %d/%d required, %d/%d recommended\n",
			c.Required.Covered, c.Required.Total,
			c.Recommended.Covered, c.Recommended.Total)
		fmt.Printf("Density:  %.2f points/m vs %.2f recommended\n",
			c.Quantity.Density, c.Quantity.RecommendedDensity)
		fmt.Printf("Reach:    settlement to %.1f m beyond the edge (target %.1f m)\n",
			c.Layout.SettlementReach, c.Layout.SettlementWant)
	}

	return nil
}

func outputJSON(st *site.Site, rpt *checks.Report) error {
	type jsonFinding struct {
		Check    string  `json:"check"`
		Kind     string  `json:"kind"`
		Severity string  `json:"severity"`
		Category string  `json:"category,omitempty"`
		Message  string  `json:"message"`
		Actual   float64 `json:"actual"`
		Want     float64 `json:"want"`
	}

	type jsonPit struct {
		Composition string  `json:"composition"`
		SafetyLevel int     `json:"safety_level"`
		Length      float64 `json:"length"`
		Width       float64 `json:"width"`
		Depth       float64 `json:"depth"`
	}

	type jsonOutput struct {
		ReportID    string             `json:"report_id"`
		GeneratedAt string             `json:"generated_at"`
		Site        string             `json:"site"`
		Path        string             `json:"path,omitempty"`
		Pit         jsonPit            `json:"pit"`
		Valid       bool               `json:"valid"`
		Summary     string             `json:"summary"`
		Errors      []jsonFinding      `json:"errors"`
		Warnings    []jsonFinding      `json:"warnings"`
		Suggestions []jsonFinding      `json:"suggestions"`
		Compliance  *checks.Compliance `json:"compliance,omitempty"`
	}

	convert := func(fs []checks.Finding) []jsonFinding {
		out := make([]jsonFinding, 0, len(fs))
		for _, f := range fs {
			out = append(out, jsonFinding{
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

	out := jsonOutput{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Site:        st.Name,
		Path:        st.Path,
		Pit: jsonPit{
			Composition: string(st.Config.Composition),
			SafetyLevel: int(st.Config.SafetyLevel),
			Length:      st.Config.Length,
			Width:       st.Config.Width,
			Depth:       st.Config.Depth,
		},
		Valid:       rpt.Valid,
		Summary:     rpt.Summary(),
		Errors:      convert(rpt.Errors),
		Warnings:    convert(rpt.Warnings),
		Suggestions: convert(rpt.Suggestions),
		Compliance:  rpt.Compliance,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputMarkdown(st *site.Site, rpt *checks.Report) error {
	fmt.Printf("## Layout Report — %s\n\n", st.Name)
	fmt.Printf("**Pit:** %s, safety level %d, %g x %g m, %g m deep\n\n",
		st.Config.Composition, st.Config.SafetyLevel,
		st.Config.Length, st.Config.Width, st.Config.Depth)
	fmt.Printf("**Sensors:** %d | **Verdict:** %s\n\n", len(st.Sensors), rpt.Summary())

	all := rpt.All()
	if len(all) == 0 {
		fmt.Println("No findings.")
		return nil
	}

	fmt.Println("| Severity | Check | Category | Finding |")
	fmt.Println("|----------|-------|----------|---------|")
	for _, f := range all {
		cat := string(f.Category)
		if cat == "" {
			cat = "—"
		}
		fmt.Printf("| %s | %s | `%s` | %s |\n", f.Severity, f.Check, cat, f.Message)
	}

	return nil
}

func outputHTML(st *site.Site, rpt *checks.Report) error {
	fmt.Print(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>pitcheck Layout Report</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; background: #282a36; color: #f8f8f2; }
  h1 { color: #bd93f9; }
  .summary { background: #343746; padding: 16px; border-radius: 8px; margin-bottom: 24px; }
  .summary span { margin-right: 24px; }
  .sev-error { color: #ff5555; font-weight: bold; }
  .sev-warning { color: #f1fa8c; }
  .sev-suggestion { color: #8be9fd; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; padding: 8px 12px; background: #44475a; color: #f8f8f2; }
  td { padding: 8px 12px; border-bottom: 1px solid #44475a; }
  tr:hover { background: #343746; }
  .check { color: #bd93f9; }
  .category { color: #8be9fd; }
  code { background: #343746; padding: 2px 6px; border-radius: 4px; font-size: 0.9em; }
  .clean { color: #50fa7b; font-size: 1.2em; }
  footer { margin-top: 32px; color: #6272a4; font-size: 0.85em; }
</style>
</head>
<body>
<h1>pitcheck Layout Report</h1>
`)

	fmt.Printf(`<div class="summary">
  <span><strong>%s</strong></span>
  <span>%s, safety level %d</span>
  <span>%g x %g m, %g m deep</span>
  <span>Sensors: <strong>%d</strong></span>
  <span>%s</span>
</div>
`, htmlEscape(st.Name),
		htmlEscape(string(st.Config.Composition)), st.Config.SafetyLevel,
		st.Config.Length, st.Config.Width, st.Config.Depth,
		len(st.Sensors), htmlEscape(rpt.Summary()))

	all := rpt.All()
	if len(all) == 0 {
		fmt.Println(`<p class="clean">No findings.</p>`)
	} else {
		fmt.Println(`<table>
<thead><tr><th>Severity</th><th>Check</th><th>Category</th><th>Finding</th></tr></thead>
<tbody>`)
		for _, f := range all {
			cat := string(f.Category)
			if cat == "" {
				cat = "&mdash;"
			} else {
				cat = "<code>" + htmlEscape(cat) + "</code>"
			}
			sevClass := "sev-" + f.Severity.String()
			fmt.Printf(`<tr><td class="%s">%s</td><td class="check">%s</td><td class="category">%s</td><td>%s</td></tr>
`, sevClass, f.Severity, f.Check, cat, htmlEscape(f.Message))
		}
		fmt.Println(`</tbody></table>`)
	}

	fmt.Println(`<footer>Generated by <strong>pitcheck</strong></footer>
</body>
</html>`)

	return nil
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

func severityIcon(s model.Severity) string {
	switch s {
	case model.SeverityError:
		return "!!"
	case model.SeverityWarning:
		return "! "
	default:
		return "- "
	}
}

func categoryCount(sensors []model.Sensor) int {
	seen := make(map[model.Category]bool)
	for _, s := range sensors {
		seen[s.Category] = true
	}
	return len(seen)
}
