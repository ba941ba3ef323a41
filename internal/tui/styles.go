package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorNavy   = lipgloss.Color("#0B1D3A")
	ColorYellow = lipgloss.Color("#FACC15")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("#9CA3AF")
	ColorDim    = lipgloss.Color("#4B5563")
	ColorBlue   = lipgloss.Color("#60A5FA")
)

var (
	headerStyle   = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	bodyStyle     = lipgloss.NewStyle().Foreground(ColorGray)
	imageStyle    = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
	statusStyle   = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite)

	indicatorActive   = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	indicatorInactive = lipgloss.NewStyle().Foreground(ColorDim)
)
