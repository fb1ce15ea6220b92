package domain

import "errors"

var (
	// ErrEmptySuggestion is returned when a submitted suggestion is blank
	// after trimming. Reported privately to the submitter, never logged.
	ErrEmptySuggestion = errors.New("suggestion has no content")
	// ErrNotAuthorized is returned when a results request comes from a user
	// without any configured staff role. The reply carries no vote detail.
	ErrNotAuthorized = errors.New("not authorized to view voting results")
	// ErrChannelMisconfigured is returned when the suggestions channel is
	// missing or not a text channel.
	ErrChannelMisconfigured = errors.New("suggestions channel is misconfigured")
)
