package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultStaffRoleID is the fallback role allowed to view voting results
// when STAFF_ROLE_IDS is unset.
const defaultStaffRoleID = "1356279578200637490"

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	DiscordToken         string
	AppID                string
	GuildID              string
	FormChannelID        string
	SuggestionsChannelID string
	StaffRoleIDs         []string
}

func Load() (*Config, error) {
	// Best-effort .env loading for local development
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:               getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		DiscordToken:         getEnv("DISCORD_TOKEN", ""),
		AppID:                getEnv("APP_ID", ""),
		GuildID:              getEnv("GUILD_ID", ""),
		FormChannelID:        getEnv("FORM_CHANNEL_ID", ""),
		SuggestionsChannelID: getEnv("SUGGESTIONS_CHANNEL_ID", ""),
		StaffRoleIDs:         splitRoleIDs(getEnv("STAFF_ROLE_IDS", defaultStaffRoleID)),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("APP_ID is required")
	}
	if cfg.GuildID == "" {
		return nil, fmt.Errorf("GUILD_ID is required")
	}
	if cfg.FormChannelID == "" {
		return nil, fmt.Errorf("FORM_CHANNEL_ID is required")
	}
	if cfg.SuggestionsChannelID == "" {
		return nil, fmt.Errorf("SUGGESTIONS_CHANNEL_ID is required")
	}
	if len(cfg.StaffRoleIDs) == 0 {
		cfg.StaffRoleIDs = []string{defaultStaffRoleID}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitRoleIDs parses a comma-separated role list, trimming whitespace and
// dropping empty entries.
func splitRoleIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
