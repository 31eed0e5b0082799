package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Setenv("INVITE_CODE_USER", "user-code")
	t.Setenv("TOKEN_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "user-code", cfg.InviteCodeUser)
	assert.Equal(t, "secret", cfg.TokenSecret)
	assert.NotNil(t, Validate)
}

func TestLoadRequiresInviteCode(t *testing.T) {
	viper.Reset()
	t.Setenv("INVITE_CODE_USER", "")
	t.Setenv("TOKEN_SECRET", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "invite code")
}

func TestLoadRequiresTokenSecret(t *testing.T) {
	viper.Reset()
	t.Setenv("INVITE_CODE_USER", "user-code")
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "token secret")
}
