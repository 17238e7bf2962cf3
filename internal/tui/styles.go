package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("86")  // Cyan.
	ColorLabel     = lipgloss.Color("245") // Gray.
	ColorValue     = lipgloss.Color("255") // White.
	ColorMuted     = lipgloss.Color("240") // Dark gray.
	ColorBorder    = lipgloss.Color("63")  // Purple.
	ColorHighlight = lipgloss.Color("212") // Pink.
	ColorOK        = lipgloss.Color("42")  // Green.
	ColorWarning   = lipgloss.Color("214") // Orange.
	ColorCritical  = lipgloss.Color("196") // Red.

	// ColorCombustion and ColorElectric are the chart series colors.
	ColorCombustion = lipgloss.Color("#ef4444")
	ColorElectric   = lipgloss.Color("#2dd4bf")
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are package-level by convention.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel)

	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	FocusedStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)
)

// Icons.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
	IconCursor     = "▸"
	IconLeaf       = "🌱"
	IconTree       = "🌳"
	IconBar        = "█"
	IconSliderFill = "━"
	IconSliderRest = "─"
	IconSliderKnob = "●"
)

// Layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 40
	borderPadding = 2
)
