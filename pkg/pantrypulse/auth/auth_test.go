package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/config"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/database"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenAndMigrate(config.Database{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

func setupTestHandler(t *testing.T) *Handler {
	hasher, err := NewPasswordHasher(SchemeBcrypt)
	if err != nil {
		t.Fatalf("NewPasswordHasher failed: %v", err)
	}
	return NewHandler(NewTokenManager(testSecret), hasher)
}

func newRequest(db *gorm.DB, body string) *api.Request {
	return &api.Request{Ctx: context.Background(), DB: db, Body: []byte(body)}
}

func statusOf(t *testing.T, resp *api.Response, err error) int {
	t.Helper()
	if err != nil {
		return api.KindOf(err).Status()
	}
	return resp.Status
}

func tokenOf(t *testing.T, resp *api.Response) string {
	t.Helper()
	body, ok := resp.Body.(TokenResponse)
	if !ok {
		t.Fatalf("Expected TokenResponse, got %T", resp.Body)
	}
	if body.Token == "" {
		t.Fatal("Expected token in response")
	}
	return body.Token
}

func TestPasswordHashing(t *testing.T) {
	for _, scheme := range []string{SchemeBcrypt, SchemeArgon2id} {
		hasher, err := NewPasswordHasher(scheme)
		if err != nil {
			t.Fatalf("NewPasswordHasher(%s) failed: %v", scheme, err)
		}

		hash, err := hasher.Hash("testpassword123")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if hash == "testpassword123" {
			t.Error("Hash should not equal plain password")
		}

		ok, err := hasher.Verify("testpassword123", hash)
		if err != nil || !ok {
			t.Errorf("%s: Verify should succeed for correct password (err=%v)", scheme, err)
		}
		ok, err = hasher.Verify("wrongpassword", hash)
		if err != nil || ok {
			t.Errorf("%s: Verify should fail for incorrect password (err=%v)", scheme, err)
		}
	}
}

func TestLegacyPBKDF2Hashes(t *testing.T) {
	hasher, _ := NewPasswordHasher(SchemeBcrypt)

	hash, err := HashPBKDF2("hunter2")
	if err != nil {
		t.Fatalf("HashPBKDF2 failed: %v", err)
	}
	if len(hash) != 32+1+64 {
		t.Errorf("Expected hex(16)$hex(32), got %q", hash)
	}

	if ok, err := hasher.Verify("hunter2", hash); err != nil || !ok {
		t.Errorf("Verify should accept legacy hash (err=%v)", err)
	}
	if ok, _ := hasher.Verify("hunter3", hash); ok {
		t.Error("Verify should reject wrong password for legacy hash")
	}
	if _, err := hasher.Verify("x", "not-a-hash"); err == nil {
		t.Error("Expected error for unknown hash format")
	}
}

func TestUnknownScheme(t *testing.T) {
	if _, err := NewPasswordHasher("md5"); err == nil {
		t.Error("Expected error for unknown scheme")
	}
}

func TestJWTToken(t *testing.T) {
	tokens := NewTokenManager(testSecret)

	token, err := tokens.Generate("user-1", "test@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Expected UserID user-1, got %s", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("Expected email test@example.com, got %s", claims.Email)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("Expected one hour validity, got %s", got)
	}
}

func TestInvalidToken(t *testing.T) {
	tokens := NewTokenManager(testSecret)

	if _, err := tokens.Validate("invalid-token"); err == nil {
		t.Error("Expected error for invalid token")
	}

	other, _ := NewTokenManager("another-secret").Generate("user-1", "a@example.com")
	if _, err := tokens.Validate(other); err == nil {
		t.Error("Expected error for token signed with another secret")
	}
}

func TestExpiredToken(t *testing.T) {
	tokens := NewTokenManager(testSecret)
	issued := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return issued }

	token, err := tokens.Generate("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tokens.now = time.Now
	_, err = tokens.Validate(token)
	if err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)

	resp, err := h.Register(newRequest(db, `{"email":"test@example.com","password":"password123"}`))
	if status := statusOf(t, resp, err); status != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %v", status, err)
	}

	var user models.User
	if err := db.Where("email = ?", "test@example.com").First(&user).Error; err != nil {
		t.Fatalf("Expected user to be stored: %v", err)
	}
	if user.Name != "test" {
		t.Errorf("Expected name derived from email, got %q", user.Name)
	}
	if !user.HasPassword() || *user.PasswordHash == "password123" {
		t.Error("Expected a hashed password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)
	body := `{"email":"test@example.com","password":"password123"}`

	h.Register(newRequest(db, body))
	resp, err := h.Register(newRequest(db, body))
	if status := statusOf(t, resp, err); status != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", status)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)

	bodies := []string{
		``,
		`{"email":"test@example.com"}`,
		`{"password":"password123"}`,
		`{"email":"not-an-email","password":"password123"}`,
		`{"email":"test@example.com","password":"password123","user_id":"x"}`,
	}
	for _, body := range bodies {
		resp, err := h.Register(newRequest(db, body))
		if status := statusOf(t, resp, err); status != http.StatusBadRequest {
			t.Errorf("Body %s: expected status 400, got %d", body, status)
		}
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)

	resp, err := h.Register(newRequest(db, `{"email":"test@example.com","password":"password123"}`))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	registered := tokenOf(t, resp)

	resp, err = h.Login(newRequest(db, `{"email":"test@example.com","password":"password123"}`))
	if status := statusOf(t, resp, err); status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %v", status, err)
	}
	loggedIn := tokenOf(t, resp)

	a, err := h.tokens.Validate(registered)
	if err != nil {
		t.Fatalf("Register token invalid: %v", err)
	}
	b, err := h.tokens.Validate(loggedIn)
	if err != nil {
		t.Fatalf("Login token invalid: %v", err)
	}
	if a.UserID != b.UserID {
		t.Errorf("Expected tokens for the same user, got %s and %s", a.UserID, b.UserID)
	}
}

func TestLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)

	h.Register(newRequest(db, `{"email":"test@example.com","password":"password123"}`))
	googleID := "google-123"
	db.Create(&models.User{Email: "google@example.com", GoogleID: &googleID, Name: "G"})

	cases := map[string]int{
		`{"email":"test@example.com","password":"wrongpassword"}`:   http.StatusUnauthorized,
		`{"email":"nobody@example.com","password":"password123"}`:   http.StatusUnauthorized,
		`{"email":"google@example.com","password":"password123"}`:   http.StatusUnauthorized,
		`{"email":"test@example.com"}`:                               http.StatusBadRequest,
		`{"email":"test@example.com","password":"","user_id":"abc"}`: http.StatusBadRequest,
	}
	for body, want := range cases {
		resp, err := h.Login(newRequest(db, body))
		if status := statusOf(t, resp, err); status != want {
			t.Errorf("Body %s: expected status %d, got %d", body, want, status)
		}
	}
}

func TestLoginLegacyHash(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)

	hash, _ := HashPBKDF2("password123")
	db.Create(&models.User{Email: "old@example.com", PasswordHash: &hash})

	resp, err := h.Login(newRequest(db, `{"email":"old@example.com","password":"password123"}`))
	if status := statusOf(t, resp, err); status != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %v", status, err)
	}
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	h := setupTestHandler(t)

	resp, _ := h.Register(newRequest(db, `{"email":"test@example.com","password":"password123"}`))
	claims, _ := h.tokens.Validate(tokenOf(t, resp))

	req := newRequest(db, "")
	req.Identity = &api.Identity{UserID: claims.UserID, Email: claims.Email}
	resp, err := h.Me(req)
	if status := statusOf(t, resp, err); status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %v", status, err)
	}

	raw, _ := json.Marshal(resp.Body)
	var user UserResponse
	json.Unmarshal(raw, &user)
	if user.Email != "test@example.com" {
		t.Errorf("Expected email test@example.com, got %s", user.Email)
	}
}

func TestRoutes(t *testing.T) {
	h := setupTestHandler(t)
	protected := map[string]bool{}
	for _, r := range h.Routes() {
		protected[r.Method+" "+r.Path] = r.Protected
	}
	if protected["POST /auth/register"] || protected["POST /auth/login"] {
		t.Error("register and login must be public")
	}
	if !protected["GET /auth/me"] {
		t.Error("me must be protected")
	}
}
