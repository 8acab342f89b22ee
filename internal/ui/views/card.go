package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"countdown/internal/domain"
	"countdown/internal/ui/logic"
)

// CardRenderer handles rendering of event cards
type CardRenderer struct {
	styles     *Styles
	dateLayout string
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, dateLayout string) *CardRenderer {
	return &CardRenderer{styles: styles, dateLayout: dateLayout}
}

// RenderCard renders one event
func (r *CardRenderer) RenderCard(ev domain.Event, isSelected bool) string {
	label := logic.StatusLabel(ev.Status)
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(BadgeColor(label))).
		Padding(0, 1).
		Render(label)

	// Long lines are cut so every card has the same height
	inner := r.styles.Card.GetWidth() - r.styles.Card.GetHorizontalPadding()
	name := r.styles.CardName.Render(ansi.Truncate(logic.SanitizeTerminal(ev.Name), inner, "…"))
	date := r.styles.Dim.Render(ansi.Truncate(logic.SanitizeTerminal(logic.FormatDate(ev.Date, r.dateLayout)), inner, "…"))
	days := fmt.Sprintf("%s %s",
		r.styles.Days.Render(fmt.Sprintf("%d", ev.DaysRemaining)),
		logic.DayLabel(ev.DaysRemaining))

	body := strings.Join([]string{name, badge, date, days}, "\n")

	style := r.styles.Card
	if isSelected {
		style = r.styles.CardSelected
	} else {
		style = style.BorderForeground(lipgloss.Color(TreatmentColor(logic.TreatmentFor(ev.Status))))
	}
	if logic.TreatmentFor(ev.Status) == logic.TreatmentExpired {
		body = r.styles.Dim.Render(body)
	}
	return style.Render(body)
}

// CardHeight returns the number of lines one card takes
func (r *CardRenderer) CardHeight() int {
	return lipgloss.Height(r.RenderCard(domain.Event{}, false))
}

// PerRow returns how many cards fit side by side in width
func (r *CardRenderer) PerRow(width int) int {
	cardWidth := lipgloss.Width(r.styles.Card.Render(""))
	perRow := 1
	if width > cardWidth {
		perRow = width / (cardWidth + 1)
	}
	if perRow < 1 {
		perRow = 1
	}
	return perRow
}

// RenderGrid lays cards out perRow to a row and renders rows grid rows
// starting at row offset. rows <= 0 renders every row.
func (r *CardRenderer) RenderGrid(events []domain.Event, cursor, perRow, offset, rows int) string {
	if len(events) == 0 {
		return ""
	}
	if perRow < 1 {
		perRow = 1
	}

	start := offset * perRow
	if start < 0 || start >= len(events) {
		start = 0
	}
	end := len(events)
	if rows > 0 && start+rows*perRow < end {
		end = start + rows*perRow
	}

	var lines []string
	for rowStart := start; rowStart < end; rowStart += perRow {
		rowEnd := rowStart + perRow
		if rowEnd > end {
			rowEnd = end
		}
		cards := make([]string, 0, 2*(rowEnd-rowStart))
		for i := rowStart; i < rowEnd; i++ {
			cards = append(cards, r.RenderCard(events[i], i == cursor), " ")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
