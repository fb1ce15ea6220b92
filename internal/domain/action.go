package domain

// Action is one decoded inbound interaction. The gateway boundary decodes
// custom-id strings exactly once; everything downstream type-switches on
// these structured variants.
type Action interface {
	isAction()
}

// ChooseModeAction is the /feedback command: reply privately with the two
// submission entry buttons.
type ChooseModeAction struct{}

// OpenFormAction is a click on one of the submission entry buttons.
type OpenFormAction struct {
	Anonymous bool
}

// SubmitFormAction is a completed submission modal.
type SubmitFormAction struct {
	Anonymous bool
	Text      string
	UserID    string
}

// CastVoteAction is a click on one of the vote buttons of a suggestion.
type CastVoteAction struct {
	Direction    Direction
	SuggestionID string
	UserID       string
}

// ViewResultsAction is a click on the "View results" button. The requester's
// role memberships arrive with the interaction itself, so no separate member
// fetch is needed to gate the disclosure.
type ViewResultsAction struct {
	SuggestionID     string
	UserID           string
	RequesterRoleIDs []string
}

func (ChooseModeAction) isAction()  {}
func (OpenFormAction) isAction()    {}
func (SubmitFormAction) isAction()  {}
func (CastVoteAction) isAction()    {}
func (ViewResultsAction) isAction() {}

// ActionName returns a stable label for metrics and logs.
func ActionName(a Action) string {
	switch a.(type) {
	case ChooseModeAction:
		return "choose_mode"
	case OpenFormAction:
		return "open_form"
	case SubmitFormAction:
		return "submit_form"
	case CastVoteAction:
		return "cast_vote"
	case ViewResultsAction:
		return "view_results"
	default:
		return "unknown"
	}
}
