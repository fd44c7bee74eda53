// Package match classifies calendar meeting titles against a dynamically
// derived customer list. Customers come out of the tracker query's IN clause;
// each maps to a set of substring patterns (configured aliases, or the
// customer name itself). Matching is deliberately permissive: a false
// positive on a common word beats silently hiding a relevant meeting.
package match

import (
	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/internal/fold"
)

// PatternSet maps a canonical customer name to its ordered match patterns.
type PatternSet map[string][]string

// BuildPatterns returns the configured pattern list for customer, or the
// single-element fallback of the customer name itself.
func BuildPatterns(customer string, filters map[string][]string) []string {
	if patterns, ok := filters[customer]; ok && len(patterns) > 0 {
		return patterns
	}
	return []string{customer}
}

// BuildPatternSet builds the full pattern set for a customer list.
func BuildPatternSet(customers []string, filters map[string][]string) PatternSet {
	set := make(PatternSet, len(customers))
	for _, c := range customers {
		set[c] = BuildPatterns(c, filters)
	}
	return set
}

// Matches reports whether any pattern occurs as a case-insensitive substring
// of title. It is a total function over any two strings.
func Matches(title string, patterns []string) bool {
	for _, p := range patterns {
		if fold.Contains(title, p) {
			return true
		}
	}
	return false
}

// MatchTitle reports whether the title matches any customer in the set.
func (s PatternSet) MatchTitle(title string) bool {
	for _, patterns := range s {
		if Matches(title, patterns) {
			return true
		}
	}
	return false
}

// MatchEvents keeps the events whose title matches the set, preserving
// order. An empty set matches nothing.
func MatchEvents(events []model.CalendarEvent, set PatternSet) []model.CalendarEvent {
	var out []model.CalendarEvent
	for _, ev := range events {
		if set.MatchTitle(ev.Title) {
			out = append(out, ev)
		}
	}
	return out
}
