package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Response is a runtime-neutral reply. Location turns it into a redirect.
type Response struct {
	Status   int
	Body     interface{}
	Location string
}

// MessageBody is the {"msg": ...} shape used for errors and confirmations.
type MessageBody struct {
	Msg string `json:"msg"`
}

// JSON replies with body encoded as JSON.
func JSON(status int, body interface{}) *Response {
	return &Response{Status: status, Body: body}
}

// OK is JSON with status 200.
func OK(body interface{}) *Response {
	return JSON(http.StatusOK, body)
}

// Message replies with {"msg": msg}.
func Message(status int, msg string) *Response {
	return JSON(status, MessageBody{Msg: msg})
}

// Redirect replies with a 302 to location.
func Redirect(location string) *Response {
	return &Response{Status: http.StatusFound, Location: location}
}

// ErrorResponse renders err. Anything other than a client-facing *Error is logged
// and collapsed into a generic 500.
func ErrorResponse(err error) *Response {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Msg("unhandled handler error")
		return Message(http.StatusInternalServerError, ServerErrorMessage)
	}
	if apiErr.Kind == KindServer {
		log.Error().Err(apiErr.Err).Msg("handler failed")
		return Message(http.StatusInternalServerError, ServerErrorMessage)
	}
	return Message(apiErr.Kind.Status(), apiErr.Msg)
}

// Write serializes resp onto w. Both runtimes write through here, so equal
// responses are byte-identical on the wire.
func Write(w http.ResponseWriter, resp *Response) {
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if resp.Location != "" {
		status := resp.Status
		if status == 0 {
			status = http.StatusFound
		}
		w.Header().Set("Location", resp.Location)
		w.WriteHeader(status)
		return
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	body, err := json.Marshal(resp.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(MessageBody{Msg: ServerErrorMessage})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
