package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// NewSession creates a discordgo session with the guilds intent. Interactions
// arrive over the gateway regardless of intents; nothing heavier is needed.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

// RegisterCommands deploys the guild-scoped /feedback command. The command is
// a convenience entry point; the panel buttons remain the primary UX.
func RegisterCommands(session *discordgo.Session, appID, guildID string) error {
	dmPermission := false
	commands := []*discordgo.ApplicationCommand{
		{
			Name:         "feedback",
			Description:  "Open the feedback form (not required if panel is present)",
			DMPermission: &dmPermission,
		},
	}
	if _, err := session.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}
