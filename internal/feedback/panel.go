package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
	"github.com/Osisis/discord-feedback-helper/internal/metrics"
)

// PanelTitle marks panel messages so stale copies from earlier deploys can
// be found and removed.
const PanelTitle = "Submit a Suggestion"

const panelDescription = "Click a button to open the form.\n\n" +
	"• **Submit (with name)** posts your Discord tag with the suggestion.\n" +
	"• **Submit Anonymously** hides your identity in the posted message."

const (
	panelColor    = 0x5865F2
	panelLookback = 20
)

// SubmitButtons returns the two submission entry buttons, shared by the
// panel and the /feedback command reply.
func SubmitButtons() []domain.Control {
	return []domain.Control{
		{Label: "Submit (with name)", CustomID: domain.OpenFormCustomID(false), Style: domain.StylePrimary},
		{Label: "Submit Anonymously", CustomID: domain.OpenFormCustomID(true), Style: domain.StyleSecondary},
	}
}

// Reconciler guarantees at most one live submission panel after each startup.
// It scans a bounded recent window rather than exhaustive channel history.
type Reconciler struct {
	gateway       domain.Gateway
	formChannelID string
}

func NewReconciler(gateway domain.Gateway, formChannelID string) *Reconciler {
	return &Reconciler{gateway: gateway, formChannelID: formChannelID}
}

// Reconcile deletes stale panels authored by this bot, posts a fresh one,
// and tries to pin it. Individual deletions and the pin are best-effort so
// one stuck message cannot block the rest.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	recent, err := r.gateway.RecentMessages(ctx, r.formChannelID, panelLookback)
	if err != nil {
		slog.WarnContext(ctx, "Could not list recent messages for panel cleanup", "channel_id", r.formChannelID, "error", err)
	} else {
		botID := r.gateway.BotUserID()
		for _, m := range recent {
			if m.AuthorID != botID || m.EmbedTitle != PanelTitle {
				continue
			}
			if err := r.gateway.DeleteMessage(ctx, r.formChannelID, m.ID); err != nil {
				slog.WarnContext(ctx, "Could not delete stale panel", "message_id", m.ID, "error", err)
				continue
			}
			metrics.PanelMessagesDeleted.Inc()
		}
	}

	panel := domain.Panel{
		Title:       PanelTitle,
		Description: panelDescription,
		Color:       panelColor,
		Controls:    SubmitButtons(),
	}

	messageID, err := r.gateway.PostPanel(ctx, r.formChannelID, panel)
	if err != nil {
		return fmt.Errorf("post panel: %w", err)
	}

	if err := r.gateway.PinMessage(ctx, r.formChannelID, messageID); err != nil {
		slog.WarnContext(ctx, "Could not pin panel", "message_id", messageID, "error", err)
	}

	slog.InfoContext(ctx, "Feedback panel posted", "channel_id", r.formChannelID, "message_id", messageID)
	return nil
}
