package webradio

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// --- Config ---

// defaultStationKey selects the station tuned in at startup.
const defaultStationKey = '5'

// menuDelay is how long after startup the menu is shown once.
const menuDelay = 5 * time.Second

// engineTickInterval paces the event drain from the audio engine.
const engineTickInterval = 200 * time.Millisecond

// clearLineWidth is how many columns the console status line blanks
// before rewriting itself.
const clearLineWidth = 100

const defaultMaxLogMessages = 10

// Styles
var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))  // Magenta
	stationStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))  // Cyan
	trackStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Gray
	menuKeyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // Bright Green
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	statusStyle     = lipgloss.NewStyle().Faint(true)
	logoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)  // Magenta
	logMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true) // Gray
	speakerOnIcon   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("🔊")
	speakerOffIcon  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")).Render("🔇")
)
