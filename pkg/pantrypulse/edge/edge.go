// Package edge hosts the API as a stateless function: every invocation receives
// its data-store binding and builds its router from scratch, keeping nothing
// between requests.
package edge

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/metrics"
)

// Env is the per-invocation binding supplied by the function host.
type Env struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
	Routes []api.Route
}

// Handle serves a single invocation.
func Handle(env Env, w http.ResponseWriter, r *http.Request) {
	NewRouter(env).ServeHTTP(w, r)
}

// NewRouter builds a chi router for env. Routes are mounted under /api.
func NewRouter(env Env) http.Handler {
	r := chi.NewRouter()
	r.Use(observe)

	notFound := func(w http.ResponseWriter, _ *http.Request) {
		api.Write(w, api.Message(http.StatusNotFound, api.MsgRouteNotFound))
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Route("/api", func(r chi.Router) {
		for _, route := range env.Routes {
			r.Method(route.Method, api.ChiPath(route.Path), handler(env, route))
		}
	})

	return r
}

// handler adapts a runtime-neutral handler to net/http. Protected routes use
// the early-return authorization style.
func handler(env Env, route api.Route) http.HandlerFunc {
	names := api.ParamNames(route.Path)
	return func(w http.ResponseWriter, r *http.Request) {
		if route.Protected {
			authorized, resp := auth.Authorize(env.Tokens, r)
			if resp != nil {
				api.Write(w, resp)
				return
			}
			r = authorized
		}

		params := make(map[string]string, len(names))
		for _, name := range names {
			params[name] = chi.URLParam(r, name)
		}
		api.Serve(w, r, env.DB, params, route.Handler)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// observe logs and records metrics for the invocation.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.Observe(metrics.RuntimeFunction, r.Method, route, rec.status, elapsed)
		api.LogRequest(metrics.RuntimeFunction, r.Method, r.URL.Path, rec.status, elapsed)
	})
}
