package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
	"github.com/Osisis/discord-feedback-helper/internal/feedback"
	"github.com/Osisis/discord-feedback-helper/internal/logging"
	"github.com/Osisis/discord-feedback-helper/internal/metrics"
)

const feedbackCommandName = "feedback"

// BindInteractions registers the InteractionCreate handler that decodes
// gateway events into actions and dispatches them to the router.
func BindInteractions(session *discordgo.Session, router *feedback.Router) {
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteraction(s, router, i)
	})
}

func handleInteraction(s *discordgo.Session, router *feedback.Router, i *discordgo.InteractionCreate) {
	ctx := logging.WithInteractionID(context.Background(), logging.NewInteractionID())

	action, ok := decodeInteraction(i)
	if !ok {
		return
	}

	res := &interactionResponder{session: s, interaction: i.Interaction}
	err := router.HandleAction(ctx, action, res)
	metrics.InteractionsTotal.WithLabelValues(domain.ActionName(action), resultLabel(err)).Inc()

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmptySuggestion), errors.Is(err, domain.ErrNotAuthorized):
		// Already reported privately; validation and authorization
		// outcomes are not operational failures.
	case errors.Is(err, domain.ErrChannelMisconfigured):
		slog.ErrorContext(ctx, "Suggestions channel misconfigured", "error", err)
	default:
		slog.ErrorContext(ctx, "Interaction error", "action", domain.ActionName(action), "error", err)
		// Best-effort apology; the interaction may already be responded to.
		_ = res.ReplyPrivate("Sorry, something went wrong handling that action.")
	}
}

func decodeInteraction(i *discordgo.InteractionCreate) (domain.Action, bool) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == feedbackCommandName {
			return domain.ChooseModeAction{}, true
		}
	case discordgo.InteractionMessageComponent:
		return domain.DecodeComponentAction(i.MessageComponentData().CustomID, interactionUserID(i), interactionRoleIDs(i))
	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		return domain.DecodeFormAction(data.CustomID, modalText(data), interactionUserID(i))
	}
	return nil, false
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func interactionRoleIDs(i *discordgo.InteractionCreate) []string {
	if i.Member == nil {
		return nil
	}
	return i.Member.Roles
}

// modalText extracts the single text input value from a submitted modal.
func modalText(data discordgo.ModalSubmitInteractionData) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				return input.Value
			}
		}
	}
	return ""
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "handled"
	case errors.Is(err, domain.ErrEmptySuggestion):
		return "validation_error"
	case errors.Is(err, domain.ErrNotAuthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrChannelMisconfigured):
		return "config_error"
	default:
		return "error"
	}
}
