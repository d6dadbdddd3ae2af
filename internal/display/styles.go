package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the game transcript
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Round     lipgloss.Style
	Player    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Winner    lipgloss.Style
	Tie       lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles creates styles bound to the writer's terminal. When color is
// false every style renders plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Round: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Tie: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
