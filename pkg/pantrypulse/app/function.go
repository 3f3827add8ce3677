package app

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/edge"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/server"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(functionCmd)
}

var functionCmd = &cobra.Command{
	Use:   "function",
	Short: "Host the API as a stateless function, one fresh binding per request",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openStore(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		google := googleLogin(ctx, cfg)

		// Each request gets its own binding, as a function platform would provide.
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
			apiRoutes, err := buildRoutes(cfg, tokens, google)
			if err != nil {
				api.Write(w, api.ErrorResponse(api.ServerError(err)))
				return
			}
			edge.Handle(edge.Env{DB: db, Tokens: tokens, Routes: apiRoutes}, w, r)
		})

		return server.Run(ctx, cfg.Server.Port, handler)
	},
}
