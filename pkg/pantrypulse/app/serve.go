package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/server"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API as a long-lived HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.DevMode {
			gin.SetMode(gin.ReleaseMode)
		}

		db, err := openStore(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
		apiRoutes, err := buildRoutes(cfg, tokens, googleLogin(ctx, cfg))
		if err != nil {
			return err
		}

		engine := server.New(cfg.Server, db, apiRoutes, tokens)
		return server.Run(ctx, cfg.Server.Port, engine)
	},
}
