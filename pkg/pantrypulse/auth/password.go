package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Supported schemes for new hashes.
const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

// BcryptCost is the work factor for new bcrypt hashes.
const BcryptCost = 10

// Legacy PBKDF2-SHA256 parameters, stored as hex(salt)$hex(key).
const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLength  = 32
	pbkdf2SaltLength = 16
)

var (
	ErrUnknownScheme     = errors.New("unknown password scheme")
	ErrUnknownHashFormat = errors.New("unrecognized password hash format")
)

// PasswordHasher hashes new passwords with one scheme and verifies any supported format.
type PasswordHasher struct {
	scheme string
}

// NewPasswordHasher returns a hasher producing scheme hashes.
func NewPasswordHasher(scheme string) (*PasswordHasher, error) {
	switch scheme {
	case SchemeBcrypt, SchemeArgon2id:
		return &PasswordHasher{scheme: scheme}, nil
	case "":
		return &PasswordHasher{scheme: SchemeBcrypt}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Hash creates a new password hash.
func (h *PasswordHasher) Hash(password string) (string, error) {
	switch h.scheme {
	case SchemeArgon2id:
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return "", fmt.Errorf("argon2id hash: %w", err)
		}
		return hash, nil
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
		if err != nil {
			return "", fmt.Errorf("bcrypt hash: %w", err)
		}
		return string(hash), nil
	}
}

// Verify compares password against encoded in constant time, whatever scheme produced it.
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("bcrypt compare: %w", err)
		}
		return true, nil
	case strings.HasPrefix(encoded, "$argon2id$"):
		match, err := argon2id.ComparePasswordAndHash(password, encoded)
		if err != nil {
			return false, fmt.Errorf("argon2id compare: %w", err)
		}
		return match, nil
	default:
		return verifyPBKDF2(password, encoded)
	}
}

// HashPBKDF2 produces the legacy hex(salt)$hex(key) format.
func HashPBKDF2(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

func verifyPBKDF2(password, encoded string) (bool, error) {
	saltHex, keyHex, ok := strings.Cut(encoded, "$")
	if !ok || strings.Contains(keyHex, "$") {
		return false, ErrUnknownHashFormat
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false, ErrUnknownHashFormat
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) == 0 {
		return false, ErrUnknownHashFormat
	}

	got := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
