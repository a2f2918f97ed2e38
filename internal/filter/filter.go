// Package filter derives the visible subset of events from the search
// query and category selection.
package filter

import (
	"strings"

	"github.com/eventdeck/eventdeck/internal/model"
)

// Visible returns the events matching state. Both criteria compose by
// logical AND; empty criteria impose no restriction. The input slice is
// never mutated and ordering is preserved.
func Visible(events []model.Event, state model.FilterState) []model.Event {
	result := events

	if len(state.SelectedCategoryIDs) > 0 {
		filtered := make([]model.Event, 0, len(result))
		for _, ev := range result {
			if intersects(ev.CategoryIDs, state.SelectedCategoryIDs) {
				filtered = append(filtered, ev)
			}
		}
		result = filtered
	}

	query := strings.TrimSpace(state.SearchQuery)
	if query != "" {
		query = strings.ToLower(query)
		filtered := make([]model.Event, 0, len(result))
		for _, ev := range result {
			if ev.Title != "" && strings.Contains(strings.ToLower(ev.Title), query) {
				filtered = append(filtered, ev)
			}
		}
		result = filtered
	}

	return result
}

// NoMatches reports the "No events match your criteria" condition: an
// active search query that filtered everything out. Not a fault.
func NoMatches(visible []model.Event, state model.FilterState) bool {
	return len(visible) == 0 && strings.TrimSpace(state.SearchQuery) != ""
}

func intersects(have, want []int64) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
