// authhandler/errors.go

package authhandler

import (
	"errors"
	"fmt"
)

// ErrTokenDecode marks a TokenError caused by a 2xx token response whose body could
// not be parsed or was missing the access token. Callers distinguish "server rejected
// the credentials" from "server returned an unparseable success body" through
// errors.Is(err, ErrTokenDecode).
var ErrTokenDecode = errors.New("token response could not be decoded")

// TokenError represents a failed token acquisition. For HTTP-level failures
// StatusCode carries the token endpoint's status and Body its raw response body.
// For decode-level failures StatusCode is the (successful) response status and the
// wrapped error matches ErrTokenDecode.
type TokenError struct {
	StatusCode int    // HTTP status returned by the token endpoint.
	Body       string // Raw response body, kept for diagnostics.
	Err        error  // Underlying cause, when any.
}

// Error returns a string representation of the TokenError.
func (e *TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("token request failed (status %d): %s", e.StatusCode, e.Body)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// IsDecodeFailure reports whether the error stems from an unparseable success body
// rather than an HTTP-level rejection.
func (e *TokenError) IsDecodeFailure() bool {
	return errors.Is(e.Err, ErrTokenDecode)
}
