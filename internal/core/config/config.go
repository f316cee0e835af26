package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the cache connection settings.
	Redis RedisConfig `mapstructure:",squash"`

	// Site holds the settings of the public site features.
	Site SiteConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection string.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// SiteConfig holds the settings of the language switcher, route finder and contact form.
type SiteConfig struct {
	// DefaultLanguage is used when a visitor has no preference and no Accept-Language match.
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE" default:"vi"`
	// LanguageTTLSeconds is how long a stored language preference lives. 0 keeps it forever.
	LanguageTTLSeconds int `mapstructure:"LANGUAGE_TTL_SECONDS" default:"0"`
	// ContactRetentionSeconds is how long contact submissions are kept for follow-up.
	ContactRetentionSeconds int `mapstructure:"CONTACT_RETENTION_SECONDS" default:"2592000"`
	// BookingURL is the page a selected trip links to.
	BookingURL string `mapstructure:"BOOKING_URL" default:"booking.html"`
	// Hotline is the support number quoted in not-found messages.
	Hotline string `mapstructure:"HOTLINE" default:"1900 1234"`
}

// LanguageTTL returns LanguageTTLSeconds as a duration.
func (s SiteConfig) LanguageTTL() time.Duration {
	return time.Duration(s.LanguageTTLSeconds) * time.Second
}

// ContactRetention returns ContactRetentionSeconds as a duration.
func (s SiteConfig) ContactRetention() time.Duration {
	return time.Duration(s.ContactRetentionSeconds) * time.Second
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

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its environment key and registers defaults.
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
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
