// Package votes tracks up/down voters per suggestion message and renders the
// voting controls derived from that state. State is deliberately transient:
// it lives for the process lifetime only.
package votes

import (
	"sort"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

// Store holds the voter sets for every suggestion. A user is in at most one
// of the two sets per suggestion at any time.
type Store interface {
	// CastVote applies one vote click. Clicking the direction the user
	// already holds withdraws the vote; clicking the opposite direction
	// switches it. Returns the updated counts.
	CastVote(suggestionID, userID string, dir domain.Direction) (up, down int)
	// Record returns a read-only snapshot for a suggestion. Unknown IDs
	// yield an empty record.
	Record(suggestionID string) Record
}

// Record is a point-in-time snapshot of one suggestion's voters.
type Record struct {
	Up   []string
	Down []string
}

// Counts returns the number of voters on each side.
func (r Record) Counts() (up, down int) {
	return len(r.Up), len(r.Down)
}

func snapshot(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
