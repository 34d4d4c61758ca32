// Package query filters and sorts the in-memory card list. Pure functions:
// the input slice is never mutated and no pagination is involved.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cardwallet/internal/models"
)

// Sort selects the list ordering.
type Sort int

const (
	// SortRecent orders by creation time, most recent first.
	SortRecent Sort = iota
	// SortName orders by name ascending with Korean collation.
	SortName
)

// ParseSort resolves the CLI sort argument.
func ParseSort(s string) (Sort, bool) {
	switch s {
	case "", "recent":
		return SortRecent, true
	case "name":
		return SortName, true
	}
	return SortRecent, false
}

// Query describes one filter/sort pass over the card list.
type Query struct {
	// Search is a case-insensitive substring matched against name,
	// company and title; a card matches if any of the three contains it.
	Search string
	// Group, when set, keeps only cards of exactly that group.
	Group *models.Group
	Sort  Sort
}

// Apply returns the cards matching q in the requested order.
func Apply(cards []*models.Card, q Query) []*models.Card {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]*models.Card, 0, len(cards))
	for _, card := range cards {
		if term != "" && !matchesTerm(card, term) {
			continue
		}
		if q.Group != nil && card.Group != *q.Group {
			continue
		}
		out = append(out, card)
	}

	switch q.Sort {
	case SortName:
		col := collate.New(language.Korean)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	}

	return out
}

func matchesTerm(card *models.Card, term string) bool {
	return strings.Contains(strings.ToLower(card.Name), term) ||
		strings.Contains(strings.ToLower(card.Company), term) ||
		strings.Contains(strings.ToLower(card.Title), term)
}
