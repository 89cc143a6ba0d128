// status.go
// This package provides utility functions for classifying HTTP response statuses.
package status

import (
	"net/http"
)

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsUnauthorized reports whether the response was rejected with 401. A 401 on a
// resource request is the only status the client auto-recovers from, by refreshing
// the token and retrying exactly once.
func IsUnauthorized(statusCode int) bool {
	return statusCode == http.StatusUnauthorized
}

// TranslateStatusCode provides a human-readable message for common status codes
// returned by the parking operations API.
func TranslateStatusCode(statusCode int) string {
	messages := map[int]string{
		http.StatusUnauthorized:        "Access token is invalid or expired.",
		http.StatusForbidden:           "The operator is not permitted to access this resource.",
		http.StatusNotFound:            "The requested resource was not found.",
		http.StatusTooManyRequests:     "Rate limit exceeded, back off before retrying.",
		http.StatusInternalServerError: "The parking platform encountered an internal error.",
		http.StatusServiceUnavailable:  "The parking platform is temporarily unavailable.",
	}

	if msg, ok := messages[statusCode]; ok {
		return msg
	}
	return http.StatusText(statusCode)
}
