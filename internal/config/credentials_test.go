package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewCredentialsConfig(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		password     string
		bcryptCost   string
		wantUsername string
		wantPassword string
		wantCost     int
		wantErr      bool
	}{
		{
			name:         "defaults",
			bcryptCost:   "4",
			wantUsername: DefaultUsername,
			wantPassword: DefaultPassword,
			wantCost:     4,
		},
		{
			name:         "custom pair",
			username:     "admin",
			password:     "s3cret",
			bcryptCost:   "5",
			wantUsername: "admin",
			wantPassword: "s3cret",
			wantCost:     5,
		},
		{name: "cost too low", bcryptCost: "3", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "invalid cost", bcryptCost: "invalid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_USERNAME", tt.username)
			t.Setenv("APP_PASSWORD", tt.password)
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", "")

			cfg, err := NewCredentialsConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUsername, cfg.Username)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.True(t, cfg.Verify(tt.wantUsername, tt.wantPassword))
		})
	}
}

func TestCredentials_Verify(t *testing.T) {
	cfg, err := NewCredentials("user", "pass", bcrypt.MinCost, "")
	require.NoError(t, err)

	assert.True(t, cfg.Verify("user", "pass"))
	assert.False(t, cfg.Verify("user", "wrong"))
	assert.False(t, cfg.Verify("other", "pass"))
	assert.False(t, cfg.Verify("", ""))
}

func TestCredentials_Pepper(t *testing.T) {
	peppered, err := NewCredentials("user", "pass", bcrypt.MinCost, "pepper")
	require.NoError(t, err)
	assert.True(t, peppered.Verify("user", "pass"))

	hash, err := peppered.HashPassword("pass")
	require.NoError(t, err)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pass")), "hash must include the pepper")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("passpepper")))
}

func TestNewCredentials_EmptyUsername(t *testing.T) {
	_, err := NewCredentials("", "pass", bcrypt.MinCost, "")
	assert.Error(t, err)
}
