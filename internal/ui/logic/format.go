package logic

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"countdown/internal/domain"
)

// DefaultDateLayout is the long-form date used on cards
const DefaultDateLayout = "Mon, January 2, 2006"

// Day-count labels
const (
	LabelToday    = "today"
	LabelTomorrow = "tomorrow"
	LabelDays     = "days"
)

// DayLabel is a three-way rule: 0 and 1 get their own words, every other
// value (including negatives) reads "days"
func DayLabel(days int) string {
	switch days {
	case 0:
		return LabelToday
	case 1:
		return LabelTomorrow
	default:
		return LabelDays
	}
}

// StatusLabel maps a status to its badge text
func StatusLabel(s domain.Status) string {
	switch s {
	case domain.StatusActive:
		return "Active"
	case domain.StatusCurrent:
		return "Upcoming"
	case domain.StatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// Treatment is the visual variant of a card
type Treatment string

const (
	TreatmentDefault Treatment = ""
	TreatmentCurrent Treatment = "current"
	TreatmentExpired Treatment = "expired"
)

// TreatmentFor returns the card treatment for a status
func TreatmentFor(s domain.Status) Treatment {
	switch s {
	case domain.StatusExpired:
		return TreatmentExpired
	case domain.StatusCurrent:
		return TreatmentCurrent
	default:
		return TreatmentDefault
	}
}

// FormatDate renders a YYYY-MM-DD date with layout. Dates that do not parse
// are returned as given.
func FormatDate(date, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format(layout)
}

// Tomorrow returns the calendar day after now as YYYY-MM-DD
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(time.DateOnly)
}

// NextEventText is the stats "next" field: "<name> (<n> days)" or "none"
func NextEventText(st domain.Stats) string {
	if st.NextEvent == nil || *st.NextEvent == "" {
		return "none"
	}
	days := 0
	if st.NextEventDays != nil {
		days = *st.NextEventDays
	}
	return fmt.Sprintf("%s (%d days)", *st.NextEvent, days)
}

// SanitizeTerminal strips escape sequences and control characters so a
// server-supplied name cannot drive the terminal
func SanitizeTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// NoEventsText is the plain-text listing of an empty list
const NoEventsText = "No events"

// FormatEventLine is the one-line plain-text form of an event
func FormatEventLine(ev domain.Event) string {
	if ev.Status == domain.StatusExpired {
		return fmt.Sprintf("%s (expired)", ev.Name)
	}
	return fmt.Sprintf("%s: %d days left", ev.Name, ev.DaysRemaining)
}

// FormatEventList numbers events from 1, one per line
func FormatEventList(events []domain.Event) string {
	if len(events) == 0 {
		return NoEventsText
	}
	lines := make([]string, 0, len(events))
	for i, ev := range events {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatEventLine(ev)))
	}
	return strings.Join(lines, "\n")
}
