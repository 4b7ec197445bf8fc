package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "PORT", "ALLOWED_ORIGIN",
		"SHOP", "ADMIN_TOKEN", "ADMIN_VERSION", "UPSTREAM_PROTOCOL",
		"MATCH_MODE", "EXPOSE_UPSTREAM_ERRORS",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "2025-07", cfg.Shopify.Version)
	assert.Equal(t, ProtocolREST, cfg.Shopify.Protocol)
	assert.Equal(t, MatchModeStrict, cfg.Lookup.MatchMode)
	assert.False(t, cfg.Lookup.ExposeUpstreamErrors)
	assert.False(t, cfg.Shopify.Configured())
	assert.Nil(t, cfg.Origins())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("PORT", "9090")
	os.Setenv("SHOP", "acme.myshopify.com")
	os.Setenv("ADMIN_TOKEN", "shpat_test")
	os.Setenv("ADMIN_VERSION", "2024-10")
	os.Setenv("UPSTREAM_PROTOCOL", "graphql")
	os.Setenv("MATCH_MODE", "lenient")
	os.Setenv("EXPOSE_UPSTREAM_ERRORS", "true")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("PORT")
		os.Unsetenv("SHOP")
		os.Unsetenv("ADMIN_TOKEN")
		os.Unsetenv("ADMIN_VERSION")
		os.Unsetenv("UPSTREAM_PROTOCOL")
		os.Unsetenv("MATCH_MODE")
		os.Unsetenv("EXPOSE_UPSTREAM_ERRORS")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "acme.myshopify.com", cfg.Shopify.Shop)
	assert.Equal(t, "shpat_test", cfg.Shopify.Token)
	assert.Equal(t, "2024-10", cfg.Shopify.Version)
	assert.Equal(t, ProtocolGraphQL, cfg.Shopify.Protocol)
	assert.Equal(t, MatchModeLenient, cfg.Lookup.MatchMode)
	assert.True(t, cfg.Lookup.ExposeUpstreamErrors)
	assert.True(t, cfg.Shopify.Configured())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
PORT=7070
SHOP=staging.myshopify.com
ADMIN_TOKEN=shpat_staging
ALLOWED_ORIGIN=https://staging.example.com
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "staging.myshopify.com", cfg.Shopify.Shop)
	assert.Equal(t, []string{"https://staging.example.com"}, cfg.Origins())
}

// TestLoad_MissingCredentials verifies that an unconfigured shop still loads.
// The lookup endpoint reports the problem per request instead.
func TestLoad_MissingCredentials(t *testing.T) {
	os.Unsetenv("SHOP")
	os.Unsetenv("ADMIN_TOKEN")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.False(t, cfg.Shopify.Configured())
}

func TestOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"Empty", "", nil},
		{"OnlySpaces", "   ", nil},
		{"Single", "https://shop.example.com", []string{"https://shop.example.com"}},
		{
			"MultipleWithSpaces",
			"https://a.example.com, https://b.example.com ,https://c.example.com",
			[]string{"https://a.example.com", "https://b.example.com", "https://c.example.com"},
		},
		{"DanglingCommas", ",https://a.example.com,,", []string{"https://a.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AppConfig{AllowedOrigin: tt.raw}
			assert.Equal(t, tt.want, cfg.Origins())
		})
	}
}

func TestShopifyConfig_Configured(t *testing.T) {
	assert.False(t, ShopifyConfig{}.Configured())
	assert.False(t, ShopifyConfig{Shop: "acme.myshopify.com"}.Configured())
	assert.False(t, ShopifyConfig{Token: "shpat_test"}.Configured())
	assert.True(t, ShopifyConfig{Shop: "acme.myshopify.com", Token: "shpat_test"}.Configured())
}
