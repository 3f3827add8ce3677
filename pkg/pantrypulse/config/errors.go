package config

import (
	"errors"
)

var (
	// ErrPortCanNotBeZero error if server.port is 0.
	ErrPortCanNotBeZero = errors.New("config server.port listening port can not be 0")

	// ErrJWTSecretMissing error if no signing secret is configured outside dev mode.
	ErrJWTSecretMissing = errors.New("config auth.jwt_secret (or JWT_SECRET) must be set outside dev mode")

	// ErrUnknownDriver error if database.driver is not supported.
	ErrUnknownDriver = errors.New("config database.driver must be sqlite, postgres or mysql")

	// ErrEmptyDSN error if database.dsn is empty.
	ErrEmptyDSN = errors.New("config database.dsn can not be empty")

	// ErrUnknownPasswordScheme error if auth.password_scheme is not supported.
	ErrUnknownPasswordScheme = errors.New("config auth.password_scheme must be bcrypt or argon2id")
)
