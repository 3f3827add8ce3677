package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/database"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

const (
	msgCredentialsRequired = "Email and password are required."
	msgEmailTaken          = "User with this email already exists."
	msgInvalidCredentials  = "Invalid credentials."
)

// Handler handles authentication requests
type Handler struct {
	tokens    *TokenManager
	passwords *PasswordHasher
}

// NewHandler creates a new auth handler
func NewHandler(tokens *TokenManager, passwords *PasswordHasher) *Handler {
	return &Handler{tokens: tokens, passwords: passwords}
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// TokenResponse represents the authentication response
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) bindCredentials(r *api.Request) (CredentialsRequest, error) {
	var req CredentialsRequest
	if err := r.Bind(&req); err != nil {
		return req, err
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return req, api.Validation(msgCredentialsRequired)
	}
	return req, nil
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account and receive a one-hour JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Registration details"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} api.MessageBody "Validation error"
// @Failure 409 {object} api.MessageBody "Email already registered"
// @Router /auth/register [post]
func (h *Handler) Register(r *api.Request) (*api.Response, error) {
	req, err := h.bindCredentials(r)
	if err != nil {
		return nil, err
	}

	db := r.Store()

	var existing models.User
	err = db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, api.Conflict(msgEmailTaken)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api.ServerError(err)
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		return nil, api.ServerError(err)
	}

	name, _, _ := strings.Cut(req.Email, "@")
	user := models.User{
		Email:        req.Email,
		PasswordHash: &hash,
		Name:         name,
	}
	if err := db.Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration.
		if database.IsDuplicate(err) {
			return nil, api.Conflict(msgEmailTaken)
		}
		return nil, api.ServerError(err)
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, api.ServerError(err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	return api.JSON(http.StatusCreated, TokenResponse{Token: token}), nil
}

// Login handles user login
// @Summary Login
// @Description Authenticate with email and password to receive a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} api.MessageBody "Validation error"
// @Failure 401 {object} api.MessageBody "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(r *api.Request) (*api.Response, error) {
	req, err := h.bindCredentials(r)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.Store().Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, api.ServerError(err)
	}

	// Google-only accounts have no password to compare against.
	if !user.HasPassword() {
		return nil, api.Unauthorized(msgInvalidCredentials)
	}

	match, err := h.passwords.Verify(req.Password, *user.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash could not be verified")
		return nil, api.Unauthorized(msgInvalidCredentials)
	}
	if !match {
		return nil, api.Unauthorized(msgInvalidCredentials)
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(TokenResponse{Token: token}), nil
}

// Me returns the current authenticated user
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} api.MessageBody "Authentication required"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *Handler) Me(r *api.Request) (*api.Response, error) {
	var user models.User
	err := r.Store().Where("id = ?", r.UserID()).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api.NotFound("User not found")
	}
	if err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}), nil
}

// Routes returns the auth routes.
func (h *Handler) Routes() []api.Route {
	return []api.Route{
		{Method: http.MethodPost, Path: "/auth/register", Handler: h.Register},
		{Method: http.MethodPost, Path: "/auth/login", Handler: h.Login},
		{Method: http.MethodGet, Path: "/auth/me", Protected: true, Handler: h.Me},
	}
}
