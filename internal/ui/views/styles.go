package views

import (
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/ui/logic"
	"countdown/internal/ui/state"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Confirm      lipgloss.Style
	Dim          lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Scroll       lipgloss.Style
	Main         lipgloss.Style
	StatLabel    lipgloss.Style
	StatValue    lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardName     lipgloss.Style
	Days         lipgloss.Style
	DialogBox    lipgloss.Style
	InfoBox      lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style

	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1).
		Width(30)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm:      lipgloss.NewStyle().Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		StatLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatValue:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Card:         card,
		CardSelected: card.BorderForeground(lipgloss.Color("226")),
		CardName:     lipgloss.NewStyle().Bold(true),
		Days:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2).
			Width(50),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		FieldLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FieldFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// Notification returns the style for a notification level
func (s *Styles) Notification(level state.Level) lipgloss.Style {
	switch level {
	case state.LevelError:
		return s.StatusError
	case state.LevelWarning:
		return s.StatusWarning
	case state.LevelSuccess:
		return s.StatusSuccess
	default:
		return s.StatusInfo
	}
}

// TreatmentColor returns the border color for a card treatment
func TreatmentColor(t logic.Treatment) string {
	switch t {
	case logic.TreatmentExpired:
		return "203" // red
	case logic.TreatmentCurrent:
		return "78" // green
	default:
		return "241" // gray
	}
}

// BadgeColor returns the badge background for a status label
func BadgeColor(label string) string {
	switch label {
	case "Active":
		return "33" // blue
	case "Upcoming":
		return "78"
	case "Expired":
		return "203"
	default:
		return "241"
	}
}
