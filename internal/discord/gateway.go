// Package discord adapts a discordgo session to the narrow platform surface
// the core packages depend on. No other package imports discordgo.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

// Gateway implements domain.Gateway over a discordgo session.
type Gateway struct {
	session *discordgo.Session
}

func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) PostSuggestion(ctx context.Context, channelID string, post domain.SuggestionPost) (string, error) {
	embed := &discordgo.MessageEmbed{
		Title:       post.Title,
		Description: post.Body,
		Timestamp:   post.Timestamp.Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: post.Footer},
	}
	msg, err := g.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send suggestion: %w", err)
	}
	return msg.ID, nil
}

func (g *Gateway) EditControls(ctx context.Context, channelID, messageID string, controls []domain.Control) error {
	components := []discordgo.MessageComponent{actionRow(controls)}
	_, err := g.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("edit controls: %w", err)
	}
	return nil
}

func (g *Gateway) PostPanel(ctx context.Context, channelID string, panel domain.Panel) (string, error) {
	embed := &discordgo.MessageEmbed{
		Title:       panel.Title,
		Description: panel.Description,
		Color:       panel.Color,
	}
	msg, err := g.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{actionRow(panel.Controls)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send panel: %w", err)
	}
	return msg.ID, nil
}

func (g *Gateway) PinMessage(ctx context.Context, channelID, messageID string) error {
	if err := g.session.ChannelMessagePin(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("pin message: %w", err)
	}
	return nil
}

func (g *Gateway) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := g.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func (g *Gateway) RecentMessages(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	msgs, err := g.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]domain.Message, 0, len(msgs))
	for _, m := range msgs {
		dm := domain.Message{ID: m.ID, AuthorID: m.Author.ID}
		if len(m.Embeds) > 0 {
			dm.EmbedTitle = m.Embeds[0].Title
		}
		out = append(out, dm)
	}
	return out, nil
}

// DisplayName resolves a member's name with the precedence guild nickname >
// global display name > account username. Ordered this way because the later
// fields are the least likely to be unset.
func (g *Gateway) DisplayName(ctx context.Context, guildID, userID string) (string, error) {
	member, err := g.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick, nil
		}
		if member.User != nil {
			return userDisplayName(member.User), nil
		}
	}

	// Not a guild member anymore (or fetch failed): fall back to the
	// account profile.
	user, uerr := g.session.User(userID, discordgo.WithContext(ctx))
	if uerr != nil {
		return "", fmt.Errorf("resolve display name: %w", uerr)
	}
	return userDisplayName(user), nil
}

func userDisplayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func (g *Gateway) BotUserID() string {
	if g.session.State != nil && g.session.State.User != nil {
		return g.session.State.User.ID
	}
	return ""
}

// Connected reports whether the gateway websocket has completed its initial
// handshake. Used by the ops server readiness check.
func (g *Gateway) Connected() bool {
	return g.session.DataReady
}

// EnsureTextChannel verifies a configured channel exists and is a guild text
// channel. Called at startup before the panel is posted.
func (g *Gateway) EnsureTextChannel(ctx context.Context, channelID string) error {
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: fetch channel %s: %v", domain.ErrChannelMisconfigured, channelID, err)
	}
	if ch.Type != discordgo.ChannelTypeGuildText {
		return fmt.Errorf("%w: channel %s is not a text channel", domain.ErrChannelMisconfigured, channelID)
	}
	return nil
}

func actionRow(controls []domain.Control) discordgo.ActionsRow {
	components := make([]discordgo.MessageComponent, 0, len(controls))
	for _, c := range controls {
		components = append(components, discordgo.Button{
			Label:    c.Label,
			Style:    buttonStyle(c.Style),
			CustomID: c.CustomID,
		})
	}
	return discordgo.ActionsRow{Components: components}
}

func buttonStyle(style domain.ControlStyle) discordgo.ButtonStyle {
	switch style {
	case domain.StylePrimary:
		return discordgo.PrimaryButton
	case domain.StyleSuccess:
		return discordgo.SuccessButton
	case domain.StyleDanger:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}
