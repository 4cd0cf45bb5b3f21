package pantry

import (
	"strings"
)

const (
	ActionConsumed = "consumed"
	ActionWasted   = "wasted"
)

// Item is the inventory snapshot view the reconciler works on.
type Item struct {
	ID       string
	Name     string
	Category string
	Quantity int
}

type Match struct {
	Item   Item
	Action string
}

// MatchConsumed selects the inventory items whose name equals one of the
// used ingredient names after case folding. Exact match only: no
// substring, fuzzy or stemmed matching, and whitespace is significant.
// Unmatched ingredient names are silently skipped; unmatched inventory
// stays untouched. Inventory order is preserved in the result.
func MatchConsumed(usedNames []string, inventory []Item) []Match {
	matches := make([]Match, 0)
	for _, item := range inventory {
		for _, name := range usedNames {
			if strings.EqualFold(name, item.Name) {
				matches = append(matches, Match{Item: item, Action: ActionConsumed})
				break
			}
		}
	}
	return matches
}
