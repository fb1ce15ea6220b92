// Package domain holds the core types shared across the bot: vote directions,
// decoded interaction actions, rendered controls, and the narrow platform
// surface the core calls through.
package domain

import (
	"context"
	"time"
)

// Direction is the side of a vote on a suggestion.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ControlStyle mirrors the platform's button styles.
type ControlStyle int

const (
	StylePrimary ControlStyle = iota + 1
	StyleSecondary
	StyleSuccess
	StyleDanger
)

// Control is one button rendered onto a message. The vote counts live in the
// label itself, so every vote immediately updates the visible affordance.
type Control struct {
	Label    string
	CustomID string
	Style    ControlStyle
}

// Form describes the submission modal shown to a user. The custom ID carries
// the anonymity flag; no server-side session exists between opening the form
// and submitting it.
type Form struct {
	CustomID  string
	Title     string
	Label     string
	MaxLength int
}

// SuggestionPost is the content of a suggestion message about to be posted.
type SuggestionPost struct {
	Title     string
	Body      string
	Footer    string
	Timestamp time.Time
}

// Panel is the static submission panel posted into the form channel.
type Panel struct {
	Title       string
	Description string
	Color       int
	Controls    []Control
}

// Message is the minimal view of a channel message the core inspects when
// cleaning up stale panels.
type Message struct {
	ID         string
	AuthorID   string
	EmbedTitle string
}

// Gateway is the platform surface the core depends on. Only the discord
// adapter implements it against a real session; tests use in-memory fakes.
type Gateway interface {
	// PostSuggestion posts a suggestion embed and returns the new message ID.
	// Controls are attached afterwards via EditControls because their custom
	// IDs embed the message's own ID, which is only known after posting.
	PostSuggestion(ctx context.Context, channelID string, post SuggestionPost) (string, error)
	// EditControls replaces the button row on an existing message.
	EditControls(ctx context.Context, channelID, messageID string, controls []Control) error
	// PostPanel posts the submission panel and returns the new message ID.
	PostPanel(ctx context.Context, channelID string, panel Panel) (string, error)
	PinMessage(ctx context.Context, channelID, messageID string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	// RecentMessages returns up to limit most recent messages in a channel.
	RecentMessages(ctx context.Context, channelID string, limit int) ([]Message, error)
	// DisplayName resolves a member's human-readable name, best-effort:
	// guild nickname, then global display name, then account username.
	DisplayName(ctx context.Context, guildID, userID string) (string, error)
	// BotUserID is the bot's own user ID, known once the session is open.
	BotUserID() string
}

// Responder delivers the outcome of a single interaction back to the user who
// triggered it. Every reply is private (ephemeral).
type Responder interface {
	ShowForm(form Form) error
	ReplyPrivate(text string) error
	ReplyPrivateWithControls(text string, controls []Control) error
	// AckSilent acknowledges the interaction without any visible reply.
	AckSilent() error
}
