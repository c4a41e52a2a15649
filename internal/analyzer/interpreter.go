package analyzer

import (
	"errors"
	"strings"

	"realestate-analyzer/internal/dataset"
	"realestate-analyzer/internal/models"
)

// ErrNoAreaMatched means the query mentioned no known area.
var ErrNoAreaMatched = errors.New("no known area matched the query")

// Interpret maps a free-text query to the matched area names and an intent.
//
// Matching is case-insensitive. An exact match (the full area name appears in
// the query) always beats a partial match (a query word appears inside an
// area name). Within exact matches, when one matched name is contained in
// another the longer name wins; remaining ties keep dataset order.
func Interpret(query string, store *dataset.Store) ([]string, models.Intent, error) {
	q := strings.ToLower(query)

	matched := exactMatches(q, store.Areas())
	if len(matched) == 0 {
		matched = partialMatches(q, store.Areas())
	}
	if len(matched) == 0 {
		return nil, "", ErrNoAreaMatched
	}

	return matched, detectIntent(q, len(matched)), nil
}

func exactMatches(q string, areas []string) []string {
	var found []string
	for _, area := range areas {
		if strings.Contains(q, strings.ToLower(area)) {
			found = append(found, area)
		}
	}
	return dropContained(found)
}

// dropContained removes any match whose name is a substring of a longer
// match, so "viman nagar" resolves to Viman Nagar and not also to Nagar.
func dropContained(found []string) []string {
	var kept []string
	for i, a := range found {
		contained := false
		for j, b := range found {
			if i == j {
				continue
			}
			if len(b) > len(a) && strings.Contains(strings.ToLower(b), strings.ToLower(a)) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func queryWords(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}

func partialMatches(q string, areas []string) []string {
	words := queryWords(q)
	var found []string
	for _, area := range areas {
		name := strings.ToLower(area)
		for _, w := range words {
			// short words like "in" or "for" match too many names
			if len(w) >= 4 && strings.Contains(name, w) {
				found = append(found, area)
				break
			}
		}
	}
	return found
}

func detectIntent(q string, matchCount int) models.Intent {
	switch {
	case containsAny(q, "rank", "best", "cheapest", "most expensive") || containsWord(q, "top"):
		return models.IntentRank
	case containsAny(q, "compare", "versus", " vs ", "difference"):
		return models.IntentCompare
	case containsAny(q, "trend", "growth", "history", "over time", "change"):
		return models.IntentTrend
	case matchCount > 1:
		return models.IntentCompare
	default:
		return models.IntentTrend
	}
}

// containsWord matches on word boundaries, so "top" is found at the end of
// a query but not inside "stop".
func containsWord(s, word string) bool {
	for _, f := range queryWords(s) {
		if f == word {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
