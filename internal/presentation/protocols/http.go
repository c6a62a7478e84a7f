package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	// Headers is optional; the route adapter falls back to a JSON
	// content type when none are set.
	Headers http.Header
}

// ErrorResponse is the uniform failure envelope: a message plus whatever
// HTTP status the response carries. No operation lets an error escape
// without being shaped into one of these.
type ErrorResponse struct {
	Message string `json:"message"`
}
