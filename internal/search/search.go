// Package search filters inventory items by keyword.
package search

import (
	"strings"

	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// Match is an item that satisfied a query together with its position in the
// list it was found in. Index is what DeleteAt expects.
type Match struct {
	Index int
	Item  models.Item
}

// Find returns the items whose name or notes contain term, ignoring case.
// Matches keep the order of items. An empty term matches nothing; callers
// decide whether that means "ask for a keyword" or "show everything".
func Find(items []models.Item, term string) []Match {
	if term == "" {
		return nil
	}

	needle := strings.ToLower(term)

	var result []Match
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Notes), needle) {
			result = append(result, Match{Index: i, Item: item})
		}
	}
	return result
}
