// headers/headers.go
package headers

import (
	"net/http"
	"strings"
)

// TraceIDHeader is the header carrying the opaque client trace id. The parking
// platform correlates requests to its logs through this header, on both the token
// endpoint and authenticated resource requests.
const TraceIDHeader = "X-Client-Trace-Id"

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	req *http.Request
}

// NewHeaderHandler creates a new instance of HeaderHandler for a given http.Request.
func NewHeaderHandler(req *http.Request) *HeaderHandler {
	return &HeaderHandler{req: req}
}

// SetAuthorization sets the Authorization header for the request.
func (h *HeaderHandler) SetAuthorization(token string) {
	// Ensure the token is prefixed with "Bearer " only once
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	h.req.Header.Set("Authorization", token)
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.req.Header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.req.Header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.req.Header.Set("User-Agent", userAgent)
}

// SetTraceID sets the client trace id header for the request.
func (h *HeaderHandler) SetTraceID(traceID string) {
	if traceID != "" {
		h.req.Header.Set(TraceIDHeader, traceID)
	}
}
