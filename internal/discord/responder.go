package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

// interactionResponder implements domain.Responder for one interaction.
// Every visible reply is ephemeral.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r *interactionResponder) ShowForm(form domain.Form) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: form.CustomID,
			Title:    form.Title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "text",
							Label:     form.Label,
							Style:     discordgo.TextInputParagraph,
							Required:  true,
							MaxLength: form.MaxLength,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("show form: %w", err)
	}
	return nil
}

func (r *interactionResponder) ReplyPrivate(text string) error {
	return r.reply(&discordgo.InteractionResponseData{
		Content: text,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func (r *interactionResponder) ReplyPrivateWithControls(text string, controls []domain.Control) error {
	return r.reply(&discordgo.InteractionResponseData{
		Content:    text,
		Flags:      discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{actionRow(controls)},
	})
}

func (r *interactionResponder) reply(data *discordgo.InteractionResponseData) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	return nil
}

func (r *interactionResponder) AckSilent() error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		return fmt.Errorf("acknowledge: %w", err)
	}
	return nil
}
