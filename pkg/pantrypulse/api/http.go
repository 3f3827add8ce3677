package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MaxBodyBytes caps the request body a handler will read.
const MaxBodyBytes = 1 << 20

// MsgRouteNotFound answers requests no route matches.
const MsgRouteNotFound = "Route not found"

// FromHTTP builds a Request from an inbound HTTP request. The identity, if any,
// is read from the request context where the auth middleware put it.
func FromHTTP(r *http.Request, db *gorm.DB, params map[string]string) (*Request, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		body = b
	}

	identity, _ := IdentityFrom(r.Context())

	return &Request{
		Ctx:      r.Context(),
		Method:   r.Method,
		Path:     r.URL.Path,
		DB:       db,
		Identity: identity,
		Params:   params,
		Query:    r.URL.Query(),
		Body:     body,
	}, nil
}

// Serve runs h for an inbound HTTP request and writes the result.
func Serve(w http.ResponseWriter, r *http.Request, db *gorm.DB, params map[string]string, h HandlerFunc) {
	req, err := FromHTTP(r, db, params)
	if err != nil {
		Write(w, ErrorResponse(Validation("Invalid request body")))
		return
	}
	Write(w, Invoke(h, req))
}

// LogRequest logs a finished request at a level chosen by its status.
func LogRequest(runtime, method, path string, status int, elapsed time.Duration) {
	var event *zerolog.Event
	switch {
	case status >= http.StatusInternalServerError:
		event = log.Error()
	case status >= http.StatusBadRequest:
		event = log.Warn()
	default:
		event = log.Info()
	}
	event.
		Str("runtime", runtime).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", elapsed).
		Msg("request")
}
