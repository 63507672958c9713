package fixture

import "sort"

// Event is one in-match incident (goal, card, substitution). ID is assigned
// by the store in insertion order and breaks ties on the same minute.
type Event struct {
	ID         int64
	FixtureID  int64
	Elapsed    *int
	TeamName   *string
	PlayerName *string
	Type       *string
	Detail     *string
}

// SortEvents orders events by elapsed minute with unknown minutes last,
// keeping the incoming order for ties.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Elapsed, events[j].Elapsed
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		}
		return events[i].ID < events[j].ID
	})
}
