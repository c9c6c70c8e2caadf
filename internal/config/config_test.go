package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Database.Host = "localhost"
	cfg.Database.User = "outersclub"
	cfg.Database.Database = "outersclub"
	cfg.JWT.Secret = "test-secret-that-is-long-enough-0"
	return cfg
}

func TestValidate_DefaultsRentalPolicy(t *testing.T) {
	cfg := validConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 24, cfg.Rental.TurnoverBufferHours)
	assert.Equal(t, 30, cfg.Rental.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.Rental.RateLimitBurst)
}

func TestValidate_NegativeRentalPolicyFallsBack(t *testing.T) {
	cfg := validConfig()
	cfg.Rental.TurnoverBufferHours = -1
	cfg.Rental.RateLimitPerMinute = -5
	cfg.Rental.RateLimitBurst = -2

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 24, cfg.Rental.TurnoverBufferHours)
	assert.Equal(t, 30, cfg.Rental.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.Rental.RateLimitBurst)
}

func TestValidate_RejectsShortJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = "too-short"

	assert.Error(t, cfg.Validate())
}
