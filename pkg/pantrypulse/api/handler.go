// Package api is the shared handler core. Handlers written against it run unchanged
// under the gin process server and the stateless function runtime.
package api

import "strings"

// HandlerFunc is a runtime-neutral request handler.
type HandlerFunc func(*Request) (*Response, error)

// Route binds a handler to a method and path. Paths are relative to /api and
// use :name segments for parameters.
type Route struct {
	Method    string
	Path      string
	Protected bool // requires a bearer token
	Handler   HandlerFunc
}

// Invoke runs h and turns any returned error into its response.
func Invoke(h HandlerFunc, req *Request) *Response {
	resp, err := h(req)
	if err != nil {
		return ErrorResponse(err)
	}
	return resp
}

// ChiPath converts :name segments to chi's {name} form.
func ChiPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// ParamNames lists the :name segments of path in order.
func ParamNames(path string) []string {
	var names []string
	for _, s := range strings.Split(path, "/") {
		if strings.HasPrefix(s, ":") {
			names = append(names, s[1:])
		}
	}
	return names
}
