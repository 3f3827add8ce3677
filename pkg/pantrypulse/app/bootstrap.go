package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/config"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/database"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/logger"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/oidc"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/routes"
)

// loadConfig reads the configuration and initializes logging.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath, devMode)
	if err != nil {
		return config.Config{}, err
	}
	if err := logger.Init(cfg.Log); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore connects to and migrates the configured database.
func openStore(cfg config.Config) (*gorm.DB, error) {
	db, err := database.OpenAndMigrate(cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("database ready")
	return db, nil
}

// googleLogin discovers the Google provider. Login stays disabled when it is
// not configured or discovery fails.
func googleLogin(ctx context.Context, cfg config.Config) oidc.Exchanger {
	if !cfg.Google.Enabled() {
		return nil
	}
	provider, err := oidc.NewProvider(ctx, oidc.GoogleIssuer, cfg.Google)
	if err != nil {
		log.Error().Err(err).Msg("google login disabled: provider discovery failed")
		return nil
	}
	return provider
}

// buildRoutes wires the handlers.
func buildRoutes(cfg config.Config, tokens *auth.TokenManager, google oidc.Exchanger) ([]api.Route, error) {
	passwords, err := auth.NewPasswordHasher(cfg.Auth.PasswordScheme)
	if err != nil {
		return nil, err
	}

	return routes.All(routes.Deps{
		Tokens:      tokens,
		Passwords:   passwords,
		Google:      google,
		JWTSecret:   cfg.Auth.JWTSecret,
		FrontendURL: cfg.Server.FrontendURL,
	}), nil
}
