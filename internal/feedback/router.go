// Package feedback implements the suggestion workflow: routing decoded
// interactions to the vote store, rendering replies, and keeping the
// submission panel reconciled.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/Osisis/discord-feedback-helper/internal/authz"
	"github.com/Osisis/discord-feedback-helper/internal/domain"
	"github.com/Osisis/discord-feedback-helper/internal/metrics"
	"github.com/Osisis/discord-feedback-helper/internal/votes"
)

const (
	suggestionTitle = "New Suggestion"
	formTitle       = "Submit Feedback"
	formLabel       = "Your suggestion or feedback"
	formMaxLength   = 1024

	anonymousFooter = "Submitted anonymously"
	unknownName     = "Unknown"
)

// Router dispatches decoded interactions to the vote store and the gateway.
// One instance serves all suggestions for the process lifetime.
type Router struct {
	gateway  domain.Gateway
	store    votes.Store
	renderer *votes.Renderer
	clock    clockwork.Clock

	guildID              string
	suggestionsChannelID string
	staffRoleIDs         []string
}

func NewRouter(gateway domain.Gateway, store votes.Store, renderer *votes.Renderer, clock clockwork.Clock, guildID, suggestionsChannelID string, staffRoleIDs []string) *Router {
	return &Router{
		gateway:              gateway,
		store:                store,
		renderer:             renderer,
		clock:                clock,
		guildID:              guildID,
		suggestionsChannelID: suggestionsChannelID,
		staffRoleIDs:         staffRoleIDs,
	}
}

// HandleAction runs one decoded interaction to completion. Errors that were
// already reported privately to the user (validation, authorization, channel
// configuration) are returned as the matching domain sentinel so the caller
// can classify them without reporting again.
func (r *Router) HandleAction(ctx context.Context, action domain.Action, res domain.Responder) error {
	switch a := action.(type) {
	case domain.ChooseModeAction:
		return res.ReplyPrivateWithControls("Choose how to submit:", SubmitButtons())
	case domain.OpenFormAction:
		return r.requestForm(a, res)
	case domain.SubmitFormAction:
		return r.submitForm(ctx, a, res)
	case domain.CastVoteAction:
		return r.castVote(ctx, a, res)
	case domain.ViewResultsAction:
		return r.viewResults(ctx, a, res)
	default:
		return fmt.Errorf("unhandled action type %T", action)
	}
}

// requestForm shows the submission modal. The anonymity flag travels inside
// the modal's custom ID; nothing is validated here because no text exists yet.
func (r *Router) requestForm(a domain.OpenFormAction, res domain.Responder) error {
	return res.ShowForm(domain.Form{
		CustomID:  domain.FormCustomID(a.Anonymous),
		Title:     formTitle,
		Label:     formLabel,
		MaxLength: formMaxLength,
	})
}

func (r *Router) submitForm(ctx context.Context, a domain.SubmitFormAction, res domain.Responder) error {
	text := strings.TrimSpace(a.Text)
	if text == "" {
		_ = res.ReplyPrivate("Please include some text.")
		return domain.ErrEmptySuggestion
	}

	footer := anonymousFooter
	anonymity := "anonymous"
	if !a.Anonymous {
		footer = "Submitted by " + r.resolveName(ctx, a.UserID)
		anonymity = "named"
	}

	post := domain.SuggestionPost{
		Title:     suggestionTitle,
		Body:      text,
		Footer:    footer,
		Timestamp: r.clock.Now(),
	}

	messageID, err := r.gateway.PostSuggestion(ctx, r.suggestionsChannelID, post)
	if err != nil {
		_ = res.ReplyPrivate("Config error: target suggestions channel is invalid.")
		return fmt.Errorf("%w: %v", domain.ErrChannelMisconfigured, err)
	}

	// The vote buttons embed the message's own ID, so they can only be
	// attached after posting.
	controls := r.renderer.RenderControls(messageID)
	if err := r.gateway.EditControls(ctx, r.suggestionsChannelID, messageID, controls); err != nil {
		slog.WarnContext(ctx, "Could not attach voting controls", "suggestion_id", messageID, "error", err)
		metrics.ControlRefreshFailures.Inc()
	}

	metrics.SuggestionsPostedTotal.WithLabelValues(anonymity).Inc()
	slog.InfoContext(ctx, "Suggestion posted", "suggestion_id", messageID, "anonymity", anonymity)

	return res.ReplyPrivate("Thanks! Your suggestion was submitted.")
}

// castVote applies the vote, then refreshes the button labels in place. A
// failed refresh is logged and swallowed: the vote itself was honored, and
// the labels converge on the next successful edit.
func (r *Router) castVote(ctx context.Context, a domain.CastVoteAction, res domain.Responder) error {
	up, down := r.store.CastVote(a.SuggestionID, a.UserID, a.Direction)
	metrics.VotesCastTotal.WithLabelValues(string(a.Direction)).Inc()

	controls := r.renderer.RenderControls(a.SuggestionID)
	if err := r.gateway.EditControls(ctx, r.suggestionsChannelID, a.SuggestionID, controls); err != nil {
		slog.WarnContext(ctx, "Could not edit message to update votes", "suggestion_id", a.SuggestionID, "error", err)
		metrics.ControlRefreshFailures.Inc()
	}

	slog.DebugContext(ctx, "Vote recorded", "suggestion_id", a.SuggestionID, "direction", string(a.Direction), "up", up, "down", down)

	// Acknowledge without a visible reply so voters never see an error
	// indicator for a vote that was counted.
	return res.AckSilent()
}

func (r *Router) viewResults(ctx context.Context, a domain.ViewResultsAction, res domain.Responder) error {
	if !authz.Authorized(a.RequesterRoleIDs, r.staffRoleIDs) {
		_ = res.ReplyPrivate("You are not authorized to view voting results.")
		return domain.ErrNotAuthorized
	}

	rec := r.store.Record(a.SuggestionID)
	upNames := r.resolveNames(ctx, rec.Up)
	downNames := r.resolveNames(ctx, rec.Down)

	return res.ReplyPrivate(formatResults(upNames, downNames))
}

// resolveName resolves a single user's display name, falling back to
// "Unknown" rather than failing the caller.
func (r *Router) resolveName(ctx context.Context, userID string) string {
	name, err := r.gateway.DisplayName(ctx, r.guildID, userID)
	if err != nil || name == "" {
		metrics.NameResolutionFailures.Inc()
		return unknownName
	}
	return name
}

func (r *Router) resolveNames(ctx context.Context, userIDs []string) []string {
	names := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		names = append(names, r.resolveName(ctx, id))
	}
	return names
}

func formatResults(upNames, downNames []string) string {
	lines := []string{
		fmt.Sprintf("👍 Upvotes (%d):", len(upNames)),
		bulletList(upNames),
		"",
		fmt.Sprintf("👎 Downvotes (%d):", len(downNames)),
		bulletList(downNames),
	}
	return strings.Join(lines, "\n")
}

func bulletList(names []string) string {
	if len(names) == 0 {
		return "• None"
	}
	bullets := make([]string, 0, len(names))
	for _, name := range names {
		bullets = append(bullets, "• "+name)
	}
	return strings.Join(bullets, "\n")
}
