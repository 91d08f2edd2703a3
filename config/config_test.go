package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.CORSAllowedOrigin = "https://anndann.app, http://localhost:3000,,"
	assert.Equal(t, []string{"https://anndann.app", "http://localhost:3000"}, AllowedOrigins())

	AppConfig.CORSAllowedOrigin = ""
	assert.Empty(t, AllowedOrigins())
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}
