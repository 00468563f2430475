package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorRed       = lipgloss.Color("#ff5555")
	colorGreen     = lipgloss.Color("#50fa7b")
	colorYellow    = lipgloss.Color("#f1fa8c")
	colorBlue      = lipgloss.Color("#8be9fd")
	colorPurple    = lipgloss.Color("#bd93f9")
	colorDim       = lipgloss.Color("#6272a4")
	colorBgLight   = lipgloss.Color("#343746")
	colorFg        = lipgloss.Color("#f8f8f2")
	colorOrange    = lipgloss.Color("#ffb86c")
	colorBorder    = lipgloss.Color("#44475a")
	colorHighlight = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	// Tab bar styles
	tabStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Background(colorBgLight).
			Bold(true).
			Padding(0, 2)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	paneHeaderStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 0, 1, 0)

	// Finding list styles
	findingErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	findingWarningStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	findingSuggestionStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	findingSelectedStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Background(colorHighlight).
				Bold(true)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Width(10)

	// Plan view styles
	planOutlineStyle = lipgloss.NewStyle().
				Foreground(colorBorder)

	planSensorStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	planOverlapStyle = lipgloss.NewStyle().
				Foreground(colorOrange).
				Bold(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Compliance styles
	compliancePassStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	complianceFailStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	complianceLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Width(20)

	// Source view styles
	lineNumberStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(4).
			Align(lipgloss.Right)

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBgLight).
			Padding(0, 1)

	statusValidStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Background(colorBgLight).
				Bold(true)

	statusInvalidStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorBgLight).
				Bold(true)

	// Help bar
	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
