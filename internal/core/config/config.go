package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// Admin API surfaces selectable through UPSTREAM_PROTOCOL.
const (
	ProtocolREST    = "rest"
	ProtocolGraphQL = "graphql"
)

// Postcode match modes selectable through MATCH_MODE.
const (
	MatchModeStrict  = "strict"
	MatchModeLenient = "lenient"
)

// AppConfig holds the configuration for the application. It is loaded once at
// startup and passed explicitly to every component that needs it.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// Port is the port where the server will listen.
	Port int `mapstructure:"PORT" default:"3000"`

	// AllowedOrigin is the comma-separated browser origin allow-list. Empty
	// means every origin is allowed, which is only acceptable for local
	// testing.
	AllowedOrigin string `mapstructure:"ALLOWED_ORIGIN"`

	// Shopify holds the Admin API configuration.
	Shopify ShopifyConfig `mapstructure:",squash"`

	// Lookup holds the per-deployment lookup behavior.
	Lookup LookupConfig `mapstructure:",squash"`
}

// ShopifyConfig holds the Admin API coordinates and credentials. Shop and
// Token are deliberately not required at load time: an unconfigured server
// still boots and answers every lookup with "server not configured".
type ShopifyConfig struct {
	// Shop is the bare admin domain, e.g. "acme.myshopify.com".
	Shop string `mapstructure:"SHOP"`
	// Token is the Admin API access token, sent as X-Shopify-Access-Token.
	Token string `mapstructure:"ADMIN_TOKEN"`
	// Version is the Admin API version path segment.
	Version string `mapstructure:"ADMIN_VERSION" default:"2025-07"`
	// Protocol selects the Admin surface, ProtocolREST or ProtocolGraphQL.
	Protocol string `mapstructure:"UPSTREAM_PROTOCOL" default:"rest"`
}

// LookupConfig tunes how candidate orders are matched and how failures are
// reported.
type LookupConfig struct {
	// MatchMode is MatchModeStrict or MatchModeLenient. Strict refuses to
	// disclose anything when no postcode matches.
	MatchMode string `mapstructure:"MATCH_MODE" default:"strict"`
	// ExposeUpstreamErrors surfaces sanitized upstream error messages to
	// clients instead of a generic "server error".
	ExposeUpstreamErrors bool `mapstructure:"EXPOSE_UPSTREAM_ERRORS"`
}

// Configured reports whether the Admin API credentials are present.
func (s ShopifyConfig) Configured() bool {
	return s.Shop != "" && s.Token != ""
}

// Origins returns the parsed allow-list: split on commas, trimmed, empty
// entries dropped. A nil slice means the permissive default.
func (c *AppConfig) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigin) == "" {
		return nil
	}

	parts := strings.Split(c.AllowedOrigin, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds their env keys and sets
// default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}
