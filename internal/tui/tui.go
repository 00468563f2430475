// Package tui implements the Bubble Tea terminal user interface.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/terrasense/pitcheck/internal/checks"
	"github.com/terrasense/pitcheck/internal/site"
)

// Tab identifies one of the report views.
type Tab int

const (
	TabFindings Tab = iota
	TabPlan
	TabCompliance
	TabSource
)

func (t Tab) String() string {
	switch t {
	case TabFindings:
		return "Findings"
	case TabPlan:
		return "Plan"
	case TabCompliance:
		return "Compliance"
	case TabSource:
		return "Source"
	default:
		return "?"
	}
}

var tabs = []Tab{TabFindings, TabPlan, TabCompliance, TabSource}

// Model is the top-level Bubble Tea model for pitcheck.
type Model struct {
	site   *site.Site
	report *checks.Report

	// UI state
	width  int
	height int

	// Active view
	tab Tab

	// Findings tab
	findingIndex int // currently selected finding
	findings     []checks.Finding

	// Source tab
	scrollOffset int // scroll position within the site file
	viewHeight   int // number of visible lines in the content area

	// Highlighted site file, one entry per line
	source []sourceLine

	exportStatus string
	showHelp     bool
}

// New creates a new TUI model from a loaded site and its validation report.
func New(st *site.Site, rpt *checks.Report) Model {
	m := Model{
		site:     st,
		report:   rpt,
		findings: rpt.All(),
	}
	m.loadSource()
	return m
}

func (m *Model) loadSource() {
	data, err := os.ReadFile(m.site.Path)
	if err != nil {
		m.source = nil
		return
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	m.source = highlightSite(m.site.Path, lines)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewHeight = m.height - 5 // tab bar + status bar + borders
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			m.moveDown()

		case key.Matches(msg, keys.Up):
			m.moveUp()

		case key.Matches(msg, keys.NextTab):
			m.tab = (m.tab + 1) % Tab(len(tabs))

		case key.Matches(msg, keys.PrevTab):
			m.tab = (m.tab + Tab(len(tabs)) - 1) % Tab(len(tabs))

		case key.Matches(msg, keys.Export):
			m.exportReport()

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

func (m *Model) moveDown() {
	switch m.tab {
	case TabFindings:
		if m.findingIndex < len(m.findings)-1 {
			m.findingIndex++
		}
	case TabSource:
		if m.scrollOffset < len(m.source)-1 {
			m.scrollOffset++
		}
	}
}

func (m *Model) moveUp() {
	switch m.tab {
	case TabFindings:
		if m.findingIndex > 0 {
			m.findingIndex--
		}
	case TabSource:
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
}

func (m *Model) exportReport() {
	path := defaultExportPath(m.site.Path)
	if err := WriteReport(path, m.site, m.report); err != nil {
		m.exportStatus = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.exportStatus = "report written to " + path
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	tabBar := m.renderTabBar()
	contentHeight := m.height - 3 // tab bar + status bar + spacing

	var content string
	switch m.tab {
	case TabPlan:
		content = m.renderPlan(m.width, contentHeight)
	case TabCompliance:
		content = m.renderCompliance(m.width, contentHeight)
	case TabSource:
		content = m.renderSource(m.width, contentHeight)
	default:
		content = m.renderFindings(m.width, contentHeight)
	}

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t == m.tab {
			parts = append(parts, tabActiveStyle.Render(t.String()))
		} else {
			parts = append(parts, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderStatusBar() string {
	cfg := m.site.Config
	left := fmt.Sprintf(" %s — %s, level %d, %gx%g m", m.site.Name,
		cfg.Composition, cfg.SafetyLevel, cfg.Length, cfg.Width)
	if m.exportStatus != "" {
		left += "  " + m.exportStatus
	}

	verdict := " VALID "
	vStyle := statusValidStyle
	if !m.report.Valid {
		verdict = " INVALID "
		vStyle = statusInvalidStyle
	}

	right := fmt.Sprintf("%s  ? help ", m.report.Summary())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(verdict) - 2
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Render(left+strings.Repeat(" ", gap)+right) + vStyle.Render(verdict)
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(paneHeaderStyle.Render("pitcheck — Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"n/Tab", "Next tab"},
		{"N/S-Tab", "Previous tab"},
		{"e", "Export report as JSON"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))

	return b.String()
}

// Run starts the TUI application.
func Run(st *site.Site, rpt *checks.Report) error {
	m := New(st, rpt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
