// Package server hosts the API as a long-lived gin process sharing one
// connection pool across concurrent requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/config"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/metrics"
)

const shutdownTimeout = 10 * time.Second

// New builds the gin engine serving routes under /api.
func New(cfg config.Server, db *gorm.DB, routes []api.Route, tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), requestLogger(), metricsMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"service": "pantrypulse",
			})
		})

		protected := apiGroup.Group("", auth.Middleware(tokens))
		for _, route := range routes {
			group := apiGroup
			if route.Protected {
				group = protected
			}
			group.Handle(route.Method, route.Path, handle(db, route))
		}
	}

	indexHTML := serveStatic(r, cfg.StaticDir)

	r.NoRoute(func(c *gin.Context) {
		if indexHTML != "" && c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.File(indexHTML)
			return
		}
		api.Write(c.Writer, api.Message(http.StatusNotFound, api.MsgRouteNotFound))
	})

	return r
}

// handle adapts a runtime-neutral handler to gin.
func handle(db *gorm.DB, route api.Route) gin.HandlerFunc {
	names := api.ParamNames(route.Path)
	return func(c *gin.Context) {
		params := make(map[string]string, len(names))
		for _, name := range names {
			params[name] = c.Param(name)
		}
		api.Serve(c.Writer, c.Request, db, params, route.Handler)
	}
}

// serveStatic mounts a built single page app and returns its index.html,
// or "" when no build is present.
func serveStatic(r *gin.Engine, dir string) string {
	if dir == "" {
		return ""
	}
	indexHTML := filepath.Join(dir, "index.html")
	if _, err := os.Stat(indexHTML); err != nil {
		log.Warn().Str("dir", dir).Msg("no frontend build found, API only mode")
		return ""
	}

	r.Static("/assets", filepath.Join(dir, "assets"))
	r.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))
	r.StaticFile("/robots.txt", filepath.Join(dir, "robots.txt"))

	log.Info().Str("dir", dir).Msg("serving frontend")
	return indexHTML
}

// Run serves handler on port until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, port int, handler http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
