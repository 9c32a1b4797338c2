// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all server configuration, split into partial configs per
// subsystem.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Translate TranslateConfig `mapstructure:"translate"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string `mapstructure:"addr"             default:":8080"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout"     default:"15"`
	WriteTimeoutSec int    `mapstructure:"write_timeout"    default:"30"`
	ShutdownSec     int    `mapstructure:"shutdown_timeout" default:"10"`
	RateLimit       int    `mapstructure:"rate_limit"       default:"300"`
	RateWindowSec   int    `mapstructure:"rate_window"      default:"60"`
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" default:"lyrebird.db"`
}

// AuthConfig holds the token settings.
type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"        default:""`
	AccessTokenTTLMin int    `mapstructure:"access_ttl_min"    default:"15"`
	RefreshTokenTTLHr int    `mapstructure:"refresh_ttl_hours" default:"720"`
}

// StorageConfig holds the object storage settings for cover images.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"   default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	Bucket    string `mapstructure:"bucket"     default:"covers"`
	Region    string `mapstructure:"region"     default:""`
	UseSSL    bool   `mapstructure:"use_ssl"    default:"false"`
}

// TranslateConfig holds the translation provider settings.
type TranslateConfig struct {
	APIKey            string  `mapstructure:"api_key"  default:""`
	BaseURL           string  `mapstructure:"base_url" default:""`
	RequestsPerSecond float64 `mapstructure:"rps"      default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  default:"info"`
	Format string `mapstructure:"format" default:"json"`
}

// Load reads configuration from environment variables, seeded from the
// .env file at path if one exists. Environment variables use underscore
// separated keys, e.g. SERVER_ADDR, STORAGE_ACCESS_KEY.
func Load(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine, the environment alone is enough
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindDefaults(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// bindDefaults walks the config struct and registers every key with its
// default tag value, which also makes AutomaticEnv pick the key up.
func bindDefaults(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
