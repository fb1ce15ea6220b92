package votes

import (
	"fmt"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

// Renderer derives the visible voting controls for a suggestion from the
// store. Pure: rendering twice with no intervening vote yields identical
// output.
type Renderer struct {
	store Store
}

func NewRenderer(store Store) *Renderer {
	return &Renderer{store: store}
}

// RenderControls returns the button row for a suggestion message: up and
// down buttons with live counts in their labels, plus the staff results
// button.
func (r *Renderer) RenderControls(suggestionID string) []domain.Control {
	up, down := r.store.Record(suggestionID).Counts()
	return []domain.Control{
		{
			Label:    fmt.Sprintf("👍 %d", up),
			CustomID: domain.VoteCustomID(domain.DirectionUp, suggestionID),
			Style:    domain.StyleSuccess,
		},
		{
			Label:    fmt.Sprintf("👎 %d", down),
			CustomID: domain.VoteCustomID(domain.DirectionDown, suggestionID),
			Style:    domain.StyleDanger,
		},
		{
			Label:    "View results",
			CustomID: domain.ViewResultsCustomID(suggestionID),
			Style:    domain.StyleSecondary,
		},
	}
}
