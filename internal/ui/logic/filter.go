package logic

import (
	"strings"

	"countdown/internal/domain"
)

// FilterByName returns the events whose name contains query, ignoring case.
// An empty query returns events unchanged. The input slice is never modified.
func FilterByName(events []domain.Event, query string) []domain.Event {
	if query == "" {
		return events
	}

	q := strings.ToLower(query)
	filtered := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), q) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// ClampIndex keeps a cursor inside [0, n); it returns 0 for an empty list
func ClampIndex(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}

// NextStatusFilter cycles all -> ACTIVE -> CURRENT -> EXPIRED -> all
func NextStatusFilter(current domain.Status) domain.Status {
	for i, st := range domain.Statuses {
		if st == current {
			if i+1 < len(domain.Statuses) {
				return domain.Statuses[i+1]
			}
			return ""
		}
	}
	return domain.Statuses[0]
}
