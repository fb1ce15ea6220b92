package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

const formChannelID = "form-1"

func TestReconcile_PostsAndPinsFreshPanel(t *testing.T) {
	gateway := newFakeGateway()
	reconciler := NewReconciler(gateway, formChannelID)

	err := reconciler.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, gateway.panelCount())
	require.Len(t, gateway.pins, 1)
	assert.Equal(t, gateway.messages[0].ID, gateway.pins[0])
}

func TestReconcile_TwiceLeavesExactlyOnePanel(t *testing.T) {
	gateway := newFakeGateway()
	reconciler := NewReconciler(gateway, formChannelID)

	require.NoError(t, reconciler.Reconcile(context.Background()))
	require.NoError(t, reconciler.Reconcile(context.Background()))

	assert.Equal(t, 1, gateway.panelCount())
}

func TestReconcile_RemovesOnlyOwnPanels(t *testing.T) {
	gateway := newFakeGateway()
	gateway.messages = []domain.Message{
		{ID: "stale-1", AuthorID: gateway.botID, EmbedTitle: PanelTitle},
		{ID: "other-bot", AuthorID: "someone-else", EmbedTitle: PanelTitle},
		{ID: "chatter", AuthorID: gateway.botID, EmbedTitle: "Weekly Update"},
	}
	reconciler := NewReconciler(gateway, formChannelID)

	require.NoError(t, reconciler.Reconcile(context.Background()))

	ids := make([]string, 0, len(gateway.messages))
	for _, m := range gateway.messages {
		ids = append(ids, m.ID)
	}
	assert.NotContains(t, ids, "stale-1")
	assert.Contains(t, ids, "other-bot")
	assert.Contains(t, ids, "chatter")
	assert.Equal(t, 1, gateway.panelCount())
}

func TestReconcile_StuckDeletionDoesNotBlockOthers(t *testing.T) {
	gateway := newFakeGateway()
	gateway.messages = []domain.Message{
		{ID: "stuck", AuthorID: gateway.botID, EmbedTitle: PanelTitle},
		{ID: "stale-2", AuthorID: gateway.botID, EmbedTitle: PanelTitle},
	}
	gateway.deleteErr = map[string]error{"stuck": errors.New("missing permissions")}
	reconciler := NewReconciler(gateway, formChannelID)

	require.NoError(t, reconciler.Reconcile(context.Background()))

	ids := make([]string, 0, len(gateway.messages))
	for _, m := range gateway.messages {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, "stuck")
	assert.NotContains(t, ids, "stale-2")
}

func TestReconcile_ListFailureStillPostsPanel(t *testing.T) {
	gateway := newFakeGateway()
	gateway.listErr = errors.New("history unavailable")
	reconciler := NewReconciler(gateway, formChannelID)

	require.NoError(t, reconciler.Reconcile(context.Background()))
	assert.Equal(t, 1, gateway.panelCount())
}

func TestReconcile_PinFailureIsNonFatal(t *testing.T) {
	gateway := newFakeGateway()
	gateway.pinErr = errors.New("pin limit reached")
	reconciler := NewReconciler(gateway, formChannelID)

	require.NoError(t, reconciler.Reconcile(context.Background()))
	assert.Equal(t, 1, gateway.panelCount())
	assert.Empty(t, gateway.pins)
}

func TestReconcile_PostFailureReturnsError(t *testing.T) {
	gateway := newFakeGateway()
	gateway.postPanelErr = errors.New("channel gone")
	reconciler := NewReconciler(gateway, formChannelID)

	err := reconciler.Reconcile(context.Background())
	assert.Error(t, err)
}
