package views

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"countdown/internal/domain"
	"countdown/internal/ui/logic"
)

// htmlCard is what one card template receives
type htmlCard struct {
	Name      string
	Status    string // lower-case status, used as a class
	Badge     string
	Treatment string
	Date      string
	Days      int
	DayLabel  string
}

const cardTemplates = `
{{define "cards"}}{{if .}}{{range .}}{{template "card" .}}{{end}}{{else}}{{template "empty"}}{{end}}{{end}}

{{define "card"}}<div class="event-card {{.Treatment}}">
  <div class="event-header">
    <h3 class="event-name">{{.Name}}</h3>
    <span class="event-status {{.Status}}">{{.Badge}}</span>
  </div>
  <div class="event-date">{{.Date}}</div>
  <div class="event-countdown">
    <div class="countdown-value {{.Treatment}}">{{.Days}}</div>
    <div class="countdown-label">{{.DayLabel}}</div>
  </div>
</div>
{{end}}

{{define "empty"}}<div id="empty-state" class="empty-state">{{emptyText}}</div>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; background: #f5f5f7; }
.stats { display: flex; gap: 2rem; margin-bottom: 1.5rem; }
.stat-value { font-size: 1.5rem; font-weight: bold; }
#events-container { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.event-card { background: #fff; border-radius: 8px; padding: 1rem; border-left: 4px solid #4a6cf7; }
.event-card.current { border-left-color: #2e9d5b; }
.event-card.expired { border-left-color: #d9534f; opacity: 0.7; }
.event-status { font-size: 0.8rem; padding: 0.1rem 0.5rem; border-radius: 4px; background: #eee; }
.countdown-value { font-size: 2rem; font-weight: bold; }
.countdown-value.expired { color: #d9534f; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="stats">
  <div><div class="stat-label">Total</div><div id="stat-total" class="stat-value">{{.Stats.TotalEvents}}</div></div>
  <div><div class="stat-label">Active</div><div id="stat-active" class="stat-value">{{.Stats.ActiveEvents}}</div></div>
  <div><div class="stat-label">Expired</div><div id="stat-expired" class="stat-value">{{.Stats.ExpiredEvents}}</div></div>
  <div><div class="stat-label">Next</div><div id="stat-next" class="stat-value">{{.Next}}</div></div>
</div>
<div id="events-container">
{{template "cards" .Cards}}</div>
</body>
</html>
{{end}}`

var htmlTemplates = template.Must(template.New("countdown").
	Funcs(template.FuncMap{"emptyText": func() string { return EmptyStateText }}).
	Parse(cardTemplates))

// HTMLRenderer renders events as HTML cards. All interpolated text is escaped
// by html/template.
type HTMLRenderer struct {
	templates  *template.Template
	dateLayout string
}

// NewHTMLRenderer creates a new HTML renderer
func NewHTMLRenderer(dateLayout string) *HTMLRenderer {
	return &HTMLRenderer{templates: htmlTemplates, dateLayout: dateLayout}
}

func (h *HTMLRenderer) cards(events []domain.Event) []htmlCard {
	cards := make([]htmlCard, 0, len(events))
	for _, ev := range events {
		status := "unknown"
		if st, ok := domain.ParseStatus(string(ev.Status)); ok && st != "" {
			status = strings.ToLower(string(st))
		}
		cards = append(cards, htmlCard{
			Name:      ev.Name,
			Status:    status,
			Badge:     logic.StatusLabel(ev.Status),
			Treatment: string(logic.TreatmentFor(ev.Status)),
			Date:      logic.FormatDate(ev.Date, h.dateLayout),
			Days:      ev.DaysRemaining,
			DayLabel:  logic.DayLabel(ev.DaysRemaining),
		})
	}
	return cards
}

// RenderCards renders one card per event, or the empty state
func (h *HTMLRenderer) RenderCards(events []domain.Event) (string, error) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "cards", h.cards(events)); err != nil {
		return "", fmt.Errorf("render cards: %w", err)
	}
	return buf.String(), nil
}

// WritePage writes a standalone page with the stats header and the cards
func (h *HTMLRenderer) WritePage(w io.Writer, title string, events []domain.Event, stats domain.Stats) error {
	data := map[string]any{
		"Title": title,
		"Stats": stats,
		"Next":  logic.NextEventText(stats),
		"Cards": h.cards(events),
	}
	if err := h.templates.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
