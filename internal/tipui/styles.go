package tipui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: CRT green terminal aesthetic.
var (
	colorBG = c("#080e0b")

	// Trigger buttons
	btnFG       = c("#00ffc8")
	btnBG       = c("#123326")
	btnActiveFG = c("#080e0b")
	btnActiveBG = c("#ffcc00")
	btnFocusFG  = c("#00ffee")
	btnFocusBG  = c("#1a4a3a")

	// Tooltip
	tipBG     = c("#0a1a15")
	tipFG     = c("#c8ffe8")
	tipBorder = c("#00d4a0")
	tipArrow  = c("#ffcc00")

	// Chrome
	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
	gridColor    = c("#0e2e20")
)

// Z levels between the chrome and the modal.
const (
	zTriggers = 2
	zTooltip  = 50
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	btnStyle = lipgloss.NewStyle().
			Foreground(btnFG).
			Background(btnBG)

	btnActiveStyle = lipgloss.NewStyle().
			Foreground(btnActiveFG).
			Background(btnActiveBG).
			Bold(true)

	btnFocusStyle = lipgloss.NewStyle().
			Foreground(btnFocusFG).
			Background(btnFocusBG).
			Underline(true)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tipBorder).
			Background(c("#0a1510")).
			Width(44).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(c("#0a1510")).
			Bold(true)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(c("#0a1510")).
			Italic(true)
)
