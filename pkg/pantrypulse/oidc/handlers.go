package oidc

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/auth"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

// ErrNotConfigured is returned when Google login is disabled.
var ErrNotConfigured = errors.New("google login is not configured")

// Handler handles Google login requests
type Handler struct {
	exchanger   Exchanger
	tokens      *auth.TokenManager
	state       *stateSigner
	frontendURL string
}

// NewHandler creates a new Google login handler. A nil exchanger disables the routes.
func NewHandler(exchanger Exchanger, tokens *auth.TokenManager, stateSecret, frontendURL string) *Handler {
	return &Handler{
		exchanger:   exchanger,
		tokens:      tokens,
		state:       newStateSigner(stateSecret),
		frontendURL: frontendURL,
	}
}

// Begin redirects to Google's consent page
// @Summary Start Google login
// @Tags auth
// @Success 302 "Redirect to Google"
// @Failure 500 {object} api.MessageBody "Google login unavailable"
// @Router /auth/google [get]
func (h *Handler) Begin(r *api.Request) (*api.Response, error) {
	if h.exchanger == nil {
		return nil, api.ServerError(ErrNotConfigured)
	}

	state, err := h.state.Issue()
	if err != nil {
		return nil, api.ServerError(err)
	}

	return api.Redirect(h.exchanger.AuthCodeURL(state)), nil
}

// Callback handles Google's redirect back
// @Summary Complete Google login
// @Description Exchanges the code, finds or creates the user and redirects to the front end with ?token=
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /auth/google"
// @Success 302 "Redirect to the front end with token"
// @Failure 400 {object} api.MessageBody "Invalid state"
// @Failure 500 {object} api.MessageBody "Provider failure"
// @Router /auth/google/callback [get]
func (h *Handler) Callback(r *api.Request) (*api.Response, error) {
	if h.exchanger == nil {
		return nil, api.ServerError(ErrNotConfigured)
	}

	if err := h.state.Verify(r.Query.Get("state")); err != nil {
		return nil, api.Validation("Invalid state")
	}

	code := r.Query.Get("code")
	if code == "" {
		return nil, api.ServerError(fmt.Errorf("google returned no code: %s", r.Query.Get("error")))
	}

	profile, err := h.exchanger.Exchange(r.Ctx, code)
	if err != nil {
		return nil, api.ServerError(err)
	}

	user, err := FindOrCreateUser(r.Store(), profile)
	if err != nil {
		return nil, api.ServerError(err)
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, api.ServerError(err)
	}

	location, err := withToken(h.frontendURL, token)
	if err != nil {
		return nil, api.ServerError(err)
	}

	log.Info().Str("user_id", user.ID).Msg("google login")

	return api.Redirect(location), nil
}

// Routes returns the Google login routes.
func (h *Handler) Routes() []api.Route {
	return []api.Route{
		{Method: http.MethodGet, Path: "/auth/google", Handler: h.Begin},
		{Method: http.MethodGet, Path: "/auth/google/callback", Handler: h.Callback},
	}
}

// FindOrCreateUser resolves a Google profile to a user: by Google id first, then
// by email (attaching the Google id), else a new account without a password.
func FindOrCreateUser(db *gorm.DB, profile *Profile) (*models.User, error) {
	if profile.Subject == "" || profile.Email == "" {
		return nil, errors.New("google profile is missing subject or email")
	}

	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("google_id = ?", profile.Subject).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err = tx.Where("email = ?", profile.Email).First(&user).Error
		if err == nil {
			user.GoogleID = &profile.Subject
			if user.Name == "" {
				user.Name = profile.Name
			}
			return tx.Save(&user).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		name := profile.Name
		if name == "" {
			name = strings.Split(profile.Email, "@")[0]
		}
		user = models.User{
			Email:    profile.Email,
			GoogleID: &profile.Subject,
			Name:     name,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func withToken(frontendURL, token string) (string, error) {
	u, err := url.Parse(frontendURL)
	if err != nil {
		return "", fmt.Errorf("parse frontend url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
