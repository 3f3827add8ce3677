// Package routes assembles the route table shared by the process server and the
// function runtime.
package routes

import (
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/groups"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/items"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/oidc"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/storage"
)

// StateSuffix derives the OAuth state signing key from the JWT secret, so a login
// state can never be replayed as a bearer token.
const StateSuffix = ":oauth-state"

// Deps are the collaborators the handlers need.
type Deps struct {
	Tokens      *auth.TokenManager
	Passwords   *auth.PasswordHasher
	Google      oidc.Exchanger // nil disables Google login
	JWTSecret   string
	FrontendURL string
}

// All returns every API route, relative to /api.
func All(deps Deps) []api.Route {
	var routes []api.Route
	routes = append(routes, auth.NewHandler(deps.Tokens, deps.Passwords).Routes()...)
	routes = append(routes, oidc.NewHandler(deps.Google, deps.Tokens, deps.JWTSecret+StateSuffix, deps.FrontendURL).Routes()...)
	routes = append(routes, items.NewHandler().Routes()...)
	routes = append(routes, groups.NewHandler().Routes()...)
	routes = append(routes, storage.NewHandler().Routes()...)
	return routes
}
