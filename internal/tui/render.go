package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/terrasense/pitcheck/internal/geometry"
	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/standard"
)

// --- Findings tab ---

func (m Model) renderFindings(width, height int) string {
	innerHeight := height - 2

	if len(m.findings) == 0 {
		return paneStyle.Width(width - 2).Height(innerHeight).Render(
			compliancePassStyle.Render("No findings — layout meets the standard."))
	}

	listWidth := width * 2 / 5
	if listWidth < 30 {
		listWidth = 30
	}
	detailWidth := width - listWidth - 3

	list := m.renderFindingList(listWidth, innerHeight)
	detail := m.renderFindingDetail(detailWidth, innerHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
}

func (m Model) renderFindingList(width, height int) string {
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.findingIndex >= visible {
		start = m.findingIndex - visible + 1
	}

	var b strings.Builder
	for i := start; i < len(m.findings) && i-start < visible; i++ {
		f := m.findings[i]
		line := fmt.Sprintf("%s %s", severityGlyph(f.Severity), truncate(f.Message, width-8))

		style := severityStyle(f.Severity)
		if i == m.findingIndex {
			style = findingSelectedStyle
		}

		b.WriteString(style.Width(width - 4).Render(line))
		if i < len(m.findings)-1 && i-start < visible-1 {
			b.WriteByte('\n')
		}
	}

	return paneStyle.Width(width).Height(height).Render(b.String())
}

func (m Model) renderFindingDetail(width, height int) string {
	f := m.findings[m.findingIndex]

	var b strings.Builder
	b.WriteString(paneHeaderStyle.Render(f.Kind.String()))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	row("severity", f.Severity.String())
	row("check", f.Check)
	if f.Category != "" {
		row("category", model.DisplayName(f.Category))
	}

	b.WriteByte('\n')
	b.WriteString(f.Message)

	if f.Actual != 0 || f.Want != 0 {
		b.WriteString("\n\n")
		row("actual", fmt.Sprintf("%g", f.Actual))
		row("target", fmt.Sprintf("%g", f.Want))
	}

	return paneStyle.Width(width).Height(height).Render(b.String())
}

// --- Plan tab ---

func (m Model) renderPlan(width, height int) string {
	innerHeight := height - 2
	cfg := m.site.Config

	legend := m.renderLegend()
	legendLines := 0
	if legend != "" {
		legendLines = strings.Count(legend, "\n") + 1
	}

	rows := innerHeight - legendLines - 3
	if rows < 8 {
		rows = 8
	}
	if rows > 24 {
		rows = 24
	}
	cols := width - 8
	if cols > 72 {
		cols = 72
	}
	if cols < 16 {
		cols = 16
	}

	grid := planGrid(cfg, m.site.Sensors, cols, rows)

	var b strings.Builder
	b.WriteString(paneHeaderStyle.Render(fmt.Sprintf(
		"Plan view — %g x %g m footprint, north up (schematic)", cfg.Length, cfg.Width)))
	b.WriteByte('\n')
	for _, row := range grid {
		b.WriteString(styleGridRow(row))
		b.WriteByte('\n')
	}
	if legend != "" {
		b.WriteByte('\n')
		b.WriteString(legend)
	}

	return paneStyle.Width(width - 2).Height(innerHeight).Render(b.String())
}

// planGrid draws the pit outline and sensor glyphs onto a character grid.
// X maps to columns (east right), Z to rows (north up); depth is not shown.
func planGrid(cfg model.PitConfig, sensors []model.Sensor, cols, rows int) [][]rune {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	extent := geometry.FootprintRadius(cfg) * 1.4
	positions := make([]model.Position, len(sensors))
	for i, s := range sensors {
		positions[i] = s.Position
	}
	if r := geometry.MaxRadial(positions); r*1.15 > extent {
		extent = r * 1.15
	}

	toCell := func(x, z float64) (int, int) {
		col := int(math.Round((x + extent) / (2 * extent) * float64(cols-1)))
		row := int(math.Round((extent - z) / (2 * extent) * float64(rows-1)))
		if col < 0 {
			col = 0
		}
		if col > cols-1 {
			col = cols - 1
		}
		if row < 0 {
			row = 0
		}
		if row > rows-1 {
			row = rows - 1
		}
		return col, row
	}

	// Pit outline
	x0, y0 := toCell(-cfg.Length/2, cfg.Width/2)
	x1, y1 := toCell(cfg.Length/2, -cfg.Width/2)
	for x := x0; x <= x1; x++ {
		grid[y0][x] = '-'
		grid[y1][x] = '-'
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = '|'
		grid[y][x1] = '|'
	}
	grid[y0][x0], grid[y0][x1] = '+', '+'
	grid[y1][x0], grid[y1][x1] = '+', '+'

	cx, cy := toCell(0, 0)
	grid[cy][cx] = '·'

	// Sensors overwrite the outline; overlapping sensors collapse to '*'.
	glyphs := sensorGlyphs()
	for _, s := range sensors {
		col, row := toCell(s.Position.X, s.Position.Z)
		info, ok := model.Info(s.Category)
		if !ok {
			continue
		}
		if glyphs[grid[row][col]] {
			grid[row][col] = '*'
		} else {
			grid[row][col] = info.Glyph
		}
	}

	return grid
}

func sensorGlyphs() map[rune]bool {
	set := make(map[rune]bool)
	for _, c := range model.Categories() {
		info, _ := model.Info(c)
		set[info.Glyph] = true
	}
	set['*'] = true
	return set
}

func styleGridRow(row []rune) string {
	glyphs := sensorGlyphs()
	var b strings.Builder
	for _, r := range row {
		switch {
		case r == '*':
			b.WriteString(planOverlapStyle.Render(string(r)))
		case glyphs[r]:
			b.WriteString(planSensorStyle.Render(string(r)))
		case r == ' ':
			b.WriteByte(' ')
		default:
			b.WriteString(planOutlineStyle.Render(string(r)))
		}
	}
	return b.String()
}

func (m Model) renderLegend() string {
	counts := make(map[model.Category]int)
	for _, s := range m.site.Sensors {
		counts[s.Category]++
	}

	var lines []string
	for _, c := range model.Categories() {
		n := counts[c]
		if n == 0 {
			continue
		}
		info, _ := model.Info(c)
		lines = append(lines, fmt.Sprintf("%c %s ×%d", info.Glyph, info.DisplayName, n))
	}
	if len(lines) == 0 {
		return legendStyle.Render("no sensors placed")
	}
	return legendStyle.Render(strings.Join(lines, "\n"))
}

// --- Compliance tab ---

func (m Model) renderCompliance(width, height int) string {
	innerHeight := height - 2

	c := m.report.Compliance
	if c == nil {
		return paneStyle.Width(width - 2).Height(innerHeight).Render(
			complianceFailStyle.Render("Compliance not evaluated — requirements could not be resolved for this pit class."))
	}

	var b strings.Builder
	b.WriteString(paneHeaderStyle.Render("Compliance"))
	b.WriteByte('\n')

	line := func(label, value string, ok bool) {
		v := compliancePassStyle.Render(value)
		if !ok {
			v = complianceFailStyle.Render(value)
		}
		b.WriteString(complianceLabelStyle.Render(label))
		b.WriteString(v)
		b.WriteByte('\n')
	}
	plain := func(label, value string) {
		b.WriteString(complianceLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	line("required",
		fmt.Sprintf("%d/%d covered", c.Required.Covered, c.Required.Total),
		c.Required.Covered == c.Required.Total)
	if len(c.Required.Missing) > 0 {
		plain("", legendStyle.Render("missing: "+joinCategories(c.Required.Missing)))
	}
	line("recommended",
		fmt.Sprintf("%d/%d covered", c.Recommended.Covered, c.Recommended.Total),
		c.Recommended.Covered == c.Recommended.Total)

	b.WriteByte('\n')
	line("wall points",
		fmt.Sprintf("%d (min %d)", c.Layout.WallPoints, standard.MinWallPoints),
		c.Layout.WallPoints >= standard.MinWallPoints)
	line("sides covered", fmt.Sprintf("%d/4", c.Layout.SidesCovered), c.Layout.SidesCovered == 4)
	line("corners covered", fmt.Sprintf("%d/4", c.Layout.CornersCovered), c.Layout.CornersCovered == 4)
	plain("mean wall spacing", fmt.Sprintf("%.1f m", c.Layout.MeanWallSpacing))
	line("deep profiles",
		fmt.Sprintf("%d of %d", c.Layout.DeepPoints, c.Layout.DeepWant),
		c.Layout.DeepPoints >= c.Layout.DeepWant)
	line("settlement reach",
		fmt.Sprintf("%.1f m (target %.1f m)", c.Layout.SettlementReach, c.Layout.SettlementWant),
		c.Layout.SettlementReach >= c.Layout.SettlementWant)

	b.WriteByte('\n')
	line("density",
		fmt.Sprintf("%.2f points/m (recommended %.2f)", c.Quantity.Density, c.Quantity.RecommendedDensity),
		c.Quantity.Adequate)
	plain("perimeter", fmt.Sprintf("%.0f m, %d sensor(s)", c.Quantity.Perimeter, c.Quantity.Sensors))

	b.WriteByte('\n')
	line("peripheral share",
		fmt.Sprintf("%d/%d (%.0f%%)", c.Range.Peripheral, c.Range.Sensors, c.Range.Share*100),
		c.Range.Sensors == 0 || c.Range.Share >= standard.PeripheralShare)
	plain("max distance", fmt.Sprintf("%.1f m (recommended max %.1f m)", c.Range.MaxDistance, c.Range.RecommendedMax))

	return paneStyle.Width(width - 2).Height(innerHeight).Render(b.String())
}

func joinCategories(cats []model.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = model.DisplayName(c)
	}
	return strings.Join(names, ", ")
}

// --- Source tab ---

func (m Model) renderSource(width, height int) string {
	innerHeight := height - 2

	if len(m.source) == 0 {
		return paneStyle.Width(width - 2).Height(innerHeight).Render(
			legendStyle.Render("source unavailable: " + m.site.Path))
	}

	visible := innerHeight - 2
	if visible < 1 {
		visible = 1
	}
	end := m.scrollOffset + visible
	if end > len(m.source) {
		end = len(m.source)
	}

	var b strings.Builder
	b.WriteString(paneHeaderStyle.Render(m.site.Path))
	b.WriteByte('\n')
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%4d", i+1)))
		b.WriteByte(' ')
		b.WriteString(renderSourceLine(m.source[i], width-12))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return paneStyle.Width(width - 2).Height(innerHeight).Render(b.String())
}

// --- Shared helpers ---

func severityGlyph(s model.Severity) string {
	switch s {
	case model.SeverityError:
		return "!!"
	case model.SeverityWarning:
		return "! "
	default:
		return "- "
	}
}

func severityStyle(s model.Severity) lipgloss.Style {
	switch s {
	case model.SeverityError:
		return findingErrorStyle
	case model.SeverityWarning:
		return findingWarningStyle
	default:
		return findingSuggestionStyle
	}
}

// truncate shortens s to max runes, ellipsizing when it cuts.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}
