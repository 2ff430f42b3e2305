package config

import (
	"crypto/subtle"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Default login pair used when APP_USERNAME / APP_PASSWORD are unset
const (
	DefaultUsername = "user"
	DefaultPassword = "pass"
)

// CredentialsConfig holds the single username/password pair that gates the web surface.
// The password is kept only as a bcrypt hash.
type CredentialsConfig struct {
	Username     string
	BcryptCost   int
	Pepper       string // optional global secret appended before hashing
	passwordHash string
}

// NewCredentialsConfig creates the login gate from environment variables.
// It reads APP_USERNAME, APP_PASSWORD, BCRYPT_COST (default: 12) and optionally PASSWORD_PEPPER.
func NewCredentialsConfig() (*CredentialsConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	username := os.Getenv("APP_USERNAME")
	if username == "" {
		username = DefaultUsername
	}
	password := os.Getenv("APP_PASSWORD")
	if password == "" {
		password = DefaultPassword
	}

	return NewCredentials(username, password, cost, os.Getenv("PASSWORD_PEPPER"))
}

// NewCredentials builds a login gate from explicit values, hashing the password.
func NewCredentials(username, password string, cost int, pepper string) (*CredentialsConfig, error) {
	cfg := &CredentialsConfig{
		Username:   username,
		BcryptCost: cost,
		Pepper:     pepper,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	hash, err := cfg.HashPassword(password)
	if err != nil {
		return nil, err
	}
	cfg.passwordHash = hash

	return cfg, nil
}

// normalize validates the configuration.
func (c *CredentialsConfig) normalize() error {
	if c.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *CredentialsConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.pepper(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the username and password match the configured pair.
func (c *CredentialsConfig) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(c.pepper(password))) == nil
	return userOK && passOK
}

func (c *CredentialsConfig) pepper(pw string) string {
	if c.Pepper != "" {
		return pw + c.Pepper
	}
	return pw
}
