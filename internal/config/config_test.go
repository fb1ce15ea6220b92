package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("APP_ID", "app-123")
	t.Setenv("GUILD_ID", "guild-123")
	t.Setenv("FORM_CHANNEL_ID", "form-123")
	t.Setenv("SUGGESTIONS_CHANNEL_ID", "suggestions-123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STAFF_ROLE_IDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{defaultStaffRoleID}, cfg.StaffRoleIDs)
}

func TestLoad_RequiredFields(t *testing.T) {
	required := []string{"DISCORD_TOKEN", "APP_ID", "GUILD_ID", "FORM_CHANNEL_ID", "SUGGESTIONS_CHANNEL_ID"}

	for _, key := range required {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_StaffRoleParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STAFF_ROLE_IDS", " role-a, role-b ,,role-c ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"role-a", "role-b", "role-c"}, cfg.StaffRoleIDs)
}

func TestLoad_StaffRolesAllBlankFallsBackToDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STAFF_ROLE_IDS", " , ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{defaultStaffRoleID}, cfg.StaffRoleIDs)
}
