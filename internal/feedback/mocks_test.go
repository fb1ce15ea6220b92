package feedback

import (
	"context"
	"fmt"
	"sync"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

// --- Mocks ---

type postedSuggestion struct {
	ChannelID string
	Post      domain.SuggestionPost
}

type editCall struct {
	ChannelID string
	MessageID string
	Controls  []domain.Control
}

// fakeGateway is an in-memory domain.Gateway. The messages slice doubles as
// the form channel content for reconciler tests.
type fakeGateway struct {
	mu     sync.Mutex
	botID  string
	nextID int

	messages []domain.Message
	pins     []string

	posted []postedSuggestion
	edits  []editCall

	names map[string]string

	postSuggestionErr error
	editErr           error
	postPanelErr      error
	pinErr            error
	deleteErr         map[string]error
	listErr           error
	nameErr           error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		botID: "bot-1",
		names: make(map[string]string),
	}
}

func (g *fakeGateway) PostSuggestion(_ context.Context, channelID string, post domain.SuggestionPost) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.postSuggestionErr != nil {
		return "", g.postSuggestionErr
	}
	g.nextID++
	g.posted = append(g.posted, postedSuggestion{ChannelID: channelID, Post: post})
	return fmt.Sprintf("msg-%d", g.nextID), nil
}

func (g *fakeGateway) EditControls(_ context.Context, channelID, messageID string, controls []domain.Control) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.editErr != nil {
		return g.editErr
	}
	g.edits = append(g.edits, editCall{ChannelID: channelID, MessageID: messageID, Controls: controls})
	return nil
}

func (g *fakeGateway) PostPanel(_ context.Context, channelID string, panel domain.Panel) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.postPanelErr != nil {
		return "", g.postPanelErr
	}
	g.nextID++
	id := fmt.Sprintf("msg-%d", g.nextID)
	g.messages = append(g.messages, domain.Message{ID: id, AuthorID: g.botID, EmbedTitle: panel.Title})
	return id, nil
}

func (g *fakeGateway) PinMessage(_ context.Context, _, messageID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pinErr != nil {
		return g.pinErr
	}
	g.pins = append(g.pins, messageID)
	return nil
}

func (g *fakeGateway) DeleteMessage(_ context.Context, _, messageID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err, ok := g.deleteErr[messageID]; ok {
		return err
	}
	for idx, m := range g.messages {
		if m.ID == messageID {
			g.messages = append(g.messages[:idx], g.messages[idx+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) RecentMessages(_ context.Context, _ string, limit int) ([]domain.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listErr != nil {
		return nil, g.listErr
	}
	msgs := g.messages
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (g *fakeGateway) DisplayName(_ context.Context, _, userID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.nameErr != nil {
		return "", g.nameErr
	}
	name, ok := g.names[userID]
	if !ok {
		return "", fmt.Errorf("member %s not found", userID)
	}
	return name, nil
}

func (g *fakeGateway) BotUserID() string {
	return g.botID
}

func (g *fakeGateway) panelCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	count := 0
	for _, m := range g.messages {
		if m.AuthorID == g.botID && m.EmbedTitle == PanelTitle {
			count++
		}
	}
	return count
}

type controlReply struct {
	Text     string
	Controls []domain.Control
}

type mockResponder struct {
	mu             sync.Mutex
	forms          []domain.Form
	replies        []string
	controlReplies []controlReply
	silentAcks     int
}

func (r *mockResponder) ShowForm(form domain.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, form)
	return nil
}

func (r *mockResponder) ReplyPrivate(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, text)
	return nil
}

func (r *mockResponder) ReplyPrivateWithControls(text string, controls []domain.Control) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controlReplies = append(r.controlReplies, controlReply{Text: text, Controls: controls})
	return nil
}

func (r *mockResponder) AckSilent() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.silentAcks++
	return nil
}
