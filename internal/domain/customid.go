package domain

import "strings"

// Custom-id wire format, kept compatible with the original panel messages:
//
//	fb_open:public | fb_open:anon     submission entry buttons
//	fb_modal:0 | fb_modal:1           submission modal (1 = anonymous)
//	vote:up:<id> | vote:down:<id>     vote buttons, <id> = suggestion message ID
//	vote:view:<id>                    staff results button
const (
	openFormPrefix = "fb_open"
	formPrefix     = "fb_modal"
	votePrefix     = "vote"

	voteViewVerb = "view"
)

// OpenFormCustomID encodes an entry button.
func OpenFormCustomID(anonymous bool) string {
	if anonymous {
		return openFormPrefix + ":anon"
	}
	return openFormPrefix + ":public"
}

// FormCustomID encodes the submission modal, carrying the anonymity flag
// through the platform and back.
func FormCustomID(anonymous bool) string {
	if anonymous {
		return formPrefix + ":1"
	}
	return formPrefix + ":0"
}

// VoteCustomID encodes a vote button for a suggestion message.
func VoteCustomID(dir Direction, suggestionID string) string {
	return votePrefix + ":" + string(dir) + ":" + suggestionID
}

// ViewResultsCustomID encodes the results button for a suggestion message.
func ViewResultsCustomID(suggestionID string) string {
	return votePrefix + ":" + voteViewVerb + ":" + suggestionID
}

// DecodeComponentAction decodes a button click into an Action. The user and
// role IDs come from the surrounding interaction, not the custom ID.
func DecodeComponentAction(customID, userID string, roleIDs []string) (Action, bool) {
	parts := strings.Split(customID, ":")
	switch parts[0] {
	case openFormPrefix:
		if len(parts) != 2 {
			return nil, false
		}
		return OpenFormAction{Anonymous: parts[1] == "anon"}, true
	case votePrefix:
		if len(parts) != 3 || parts[2] == "" {
			return nil, false
		}
		switch parts[1] {
		case string(DirectionUp), string(DirectionDown):
			return CastVoteAction{Direction: Direction(parts[1]), SuggestionID: parts[2], UserID: userID}, true
		case voteViewVerb:
			return ViewResultsAction{SuggestionID: parts[2], UserID: userID, RequesterRoleIDs: roleIDs}, true
		}
	}
	return nil, false
}

// DecodeFormAction decodes a modal submission into an Action.
func DecodeFormAction(customID, text, userID string) (Action, bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 2 || parts[0] != formPrefix {
		return nil, false
	}
	return SubmitFormAction{Anonymous: parts[1] == "1", Text: text, UserID: userID}, true
}
