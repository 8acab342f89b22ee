package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{styles: styles}
}

// RenderPopupOverlay centers a popup on screen. lipgloss v1 has no layers, so
// the main content is replaced rather than drawn underneath.
func (pr *PopupRenderer) RenderPopupOverlay(popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup,
		lipgloss.WithWhitespaceForeground(lipgloss.Color("238")),
	)
}

// Field renders a labelled input line, highlighting the focused one
func (pr *PopupRenderer) Field(label, input string, focused bool) string {
	style := pr.styles.FieldLabel
	marker := "  "
	if focused {
		style = pr.styles.FieldFocused
		marker = "> "
	}
	return marker + style.Render(label) + "\n  " + input
}

// AddDialog renders the create form
func (pr *PopupRenderer) AddDialog(nameInput, dateInput string, focus int) string {
	lines := []string{
		pr.styles.Title.Render("Add event"),
		"",
		pr.Field("Name", nameInput, focus == 0),
		"",
		pr.Field("Date (YYYY-MM-DD)", dateInput, focus == 1),
		"",
		pr.styles.Dim.Render("tab switch field • enter save • esc cancel"),
	}
	return strings.Join(lines, "\n")
}

// EditDialog renders the date form; the name is shown read-only
func (pr *PopupRenderer) EditDialog(name, dateInput string) string {
	lines := []string{
		pr.styles.Title.Render("Edit event"),
		"",
		pr.styles.FieldLabel.Render("Name"),
		"  " + name,
		"",
		pr.Field("Date (YYYY-MM-DD)", dateInput, true),
		"",
		pr.styles.Dim.Render("enter save • esc cancel"),
	}
	return strings.Join(lines, "\n")
}

// DeleteDialog renders the confirmation prompt
func (pr *PopupRenderer) DeleteDialog(prompt string) string {
	return strings.Join([]string{
		pr.styles.Title.Render("Delete event"),
		"",
		pr.styles.Confirm.Render(prompt),
		"",
		pr.styles.Dim.Render("y confirm • n cancel"),
	}, "\n")
}
