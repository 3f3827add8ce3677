// Package config loads settings from an optional config file and the environment.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/logger"
)

// EnvPrefix prefixes every environment variable, e.g. PANTRY_DATABASE_DRIVER.
const EnvPrefix = "PANTRY"

// devJWTSecret is only accepted in dev mode.
const devJWTSecret = "pantrypulse-dev-secret-change-in-production"

// Config overall data structure.
type Config struct {
	DevMode  bool       `mapstructure:"dev_mode"`
	Server   Server     `mapstructure:"server"`
	Database Database   `mapstructure:"database"`
	Auth     Auth       `mapstructure:"auth"`
	Google   Google     `mapstructure:"google"`
	Log      logger.Log `mapstructure:"log"`
}

// Server holds the process model settings.
type Server struct {
	Port        int    `mapstructure:"port"`
	BaseURL     string `mapstructure:"base_url"`     // public URL of this API
	FrontendURL string `mapstructure:"frontend_url"` // where Google login redirects with ?token=
	StaticDir   string `mapstructure:"static_dir"`   // optional built SPA
}

// Database selects the dialect and connection.
type Database struct {
	Driver       string `mapstructure:"driver"` // sqlite, postgres or mysql
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// Auth holds token and password settings.
type Auth struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	PasswordScheme string `mapstructure:"password_scheme"` // bcrypt or argon2id
}

// Google holds the OAuth client used for Google login.
type Google struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// Enabled reports whether Google login is configured.
func (g Google) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

// aliases maps config keys to the unprefixed variable names deployments already use.
var aliases = map[string]string{
	"auth.jwt_secret":      "JWT_SECRET",
	"database.dsn":         "DATABASE_URL",
	"server.port":          "PORT",
	"server.frontend_url":  "FRONTEND_URL",
	"google.client_id":     "GOOGLE_CLIENT_ID",
	"google.client_secret": "GOOGLE_CLIENT_SECRET",
	"google.redirect_url":  "GOOGLE_CALLBACK_URL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dev_mode", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.frontend_url", "http://localhost:3000")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "pantrypulse.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.password_scheme", "bcrypt")
	v.SetDefault("google.client_id", "")
	v.SetDefault("google.client_secret", "")
	v.SetDefault("google.redirect_url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.service_name", "pantrypulse")
	v.SetDefault("log.report_caller", false)
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.pretty", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.max_size", 50)
	v.SetDefault("log.file.max_backups", 5)
	v.SetDefault("log.file.max_age", 28)
}

// Load reads the config file at path (if any), applies environment overrides and validates the result.
func Load(path string, devMode bool) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range aliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return Config{}, errors.Wrapf(err, "failed to bind env for %s", key)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	if devMode {
		c.DevMode = true
	}
	if c.Auth.JWTSecret == "" && c.DevMode {
		c.Auth.JWTSecret = devJWTSecret
	}
	if c.Google.RedirectURL == "" {
		c.Google.RedirectURL = strings.TrimRight(c.Server.BaseURL, "/") + "/api/auth/google/callback"
	}

	return c, Validate(c)
}

// Validate checks the settings every runtime needs.
func Validate(c Config) error {
	invalidErrMessage := "invalid config"

	if c.Server.Port == 0 {
		return errors.Wrap(ErrPortCanNotBeZero, invalidErrMessage)
	}

	if c.Auth.JWTSecret == "" {
		return errors.Wrap(ErrJWTSecretMissing, invalidErrMessage)
	}

	switch c.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return errors.Wrapf(ErrUnknownDriver, "%s: %q", invalidErrMessage, c.Database.Driver)
	}

	if c.Database.DSN == "" {
		return errors.Wrap(ErrEmptyDSN, invalidErrMessage)
	}

	switch c.Auth.PasswordScheme {
	case "bcrypt", "argon2id":
	default:
		return errors.Wrapf(ErrUnknownPasswordScheme, "%s: %q", invalidErrMessage, c.Auth.PasswordScheme)
	}

	return nil
}
