package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Request is everything a handler sees, independent of the hosting runtime.
type Request struct {
	Ctx      context.Context
	Method   string
	Path     string
	DB       *gorm.DB // data-store binding for this request
	Identity *Identity
	Params   map[string]string
	Query    url.Values
	Body     []byte
}

// Param returns a path parameter.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// UserID is the authenticated caller's id, empty on public routes.
func (r *Request) UserID() string {
	if r.Identity == nil {
		return ""
	}
	return r.Identity.UserID
}

// Store returns the data-store handle bound to the request context.
func (r *Request) Store() *gorm.DB {
	ctx := r.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return r.DB.WithContext(ctx)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind decodes the JSON body into dst and validates its `validate` tags.
// The owner is always the authenticated caller, so a body naming user_id is rejected.
func (r *Request) Bind(dst interface{}) error {
	body := bytes.TrimSpace(r.Body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Validation("Request body must be a JSON object")
	}
	if _, ok := fields["user_id"]; ok {
		return Validation("user_id cannot be set by the client")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return Validation(typeErr.Field + " has the wrong type")
		}
		return Validation("Invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		return Validation(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	default:
		return fe.Field() + " is invalid"
	}
}
