package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
)

// Client-facing authorization failures. Both middleware styles return these verbatim.
const (
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is not valid"
)

// ContextKeyIdentity is the key for the caller identity in gin context
const ContextKeyIdentity = "identity"

// Authenticate validates an Authorization header value of the exact form "Bearer <token>".
func Authenticate(tokens *TokenManager, header string) (*api.Identity, error) {
	if header == "" {
		return nil, api.Unauthorized(MsgNoToken)
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, api.Unauthorized(MsgInvalidToken)
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		return nil, api.Unauthorized(MsgInvalidToken)
	}

	return &api.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// Middleware is the blocking style: it aborts the gin chain on failure and
// otherwise attaches the identity and calls the next handler.
func Middleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := Authenticate(tokens, c.GetHeader("Authorization"))
		if err != nil {
			api.Write(c.Writer, api.ErrorResponse(err))
			c.Abort()
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Request = c.Request.WithContext(api.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// Authorize is the early-return style: it yields either the request carrying the
// identity or the response the caller must write and return.
func Authorize(tokens *TokenManager, r *http.Request) (*http.Request, *api.Response) {
	identity, err := Authenticate(tokens, r.Header.Get("Authorization"))
	if err != nil {
		return nil, api.ErrorResponse(err)
	}
	return r.WithContext(api.WithIdentity(r.Context(), identity)), nil
}

// GetIdentity returns the identity set by Middleware.
func GetIdentity(c *gin.Context) (*api.Identity, bool) {
	v, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*api.Identity)
	return identity, ok
}
