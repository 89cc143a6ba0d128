// authhandler/fetch.go

package authhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/headers"
	"go.uber.org/zap"
)

// fetchedToken is the committed result of one successful token exchange.
type fetchedToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// tokenResponse is the loosely-typed intermediate decoding of the token endpoint's
// response body. The upstream platform has been observed to report expiry either as
// expires_in seconds or as an expires_at ISO-8601 timestamp, so both are tolerated
// and reconciled afterwards as ordinary control flow.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   *int64 `json:"expires_in"`
	ExpiresAt   string `json:"expires_at"`
	Error       string `json:"error,omitempty"`
}

// fetchToken performs the OAuth client credentials exchange against the token
// endpoint. Fields with empty values are omitted from the form body. Only 2xx
// responses are accepted; anything else becomes a TokenError carrying the status
// and raw body. A 2xx body that is malformed JSON or lacks access_token becomes a
// decode-flavored TokenError.
func (h *AuthTokenHandler) fetchToken(ctx context.Context) (fetchedToken, error) {
	data := url.Values{}
	setNonEmpty(data, "grant_type", "client_credentials")
	setNonEmpty(data, "audience", h.Audience)
	setNonEmpty(data, "client_id", h.Credentials.ClientID)
	setNonEmpty(data, "client_secret", h.Credentials.ClientSecret)

	h.Logger.Debug("Requesting OAuth token",
		zap.String("TokenURL", h.TokenURL),
		zap.String("Audience", h.Audience))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fetchedToken{}, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	headers.NewHeaderHandler(req).SetTraceID(h.TraceID)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fetchedToken{}, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetchedToken{}, fmt.Errorf("reading token response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fetchedToken{}, &TokenError{
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	var decoded tokenResponse
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		return fetchedToken{}, &TokenError{
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
			Err:        fmt.Errorf("%w: %v", ErrTokenDecode, err),
		}
	}

	if decoded.AccessToken == "" {
		return fetchedToken{}, &TokenError{
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
			Err:        fmt.Errorf("%w: missing access_token field", ErrTokenDecode),
		}
	}

	tokenType := decoded.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return fetchedToken{
		AccessToken: decoded.AccessToken,
		TokenType:   tokenType,
		ExpiresAt:   resolveExpiry(decoded, time.Now()),
	}, nil
}

// resolveExpiry reconciles the two expiry representations the token endpoint may
// return. Precedence: a parseable expires_at timestamp wins, then expires_in seconds
// from now, then the default lifetime.
func resolveExpiry(decoded tokenResponse, now time.Time) time.Time {
	if decoded.ExpiresAt != "" {
		if expiresAt, err := time.Parse(time.RFC3339, decoded.ExpiresAt); err == nil {
			return expiresAt
		}
	}
	if decoded.ExpiresIn != nil {
		return now.Add(time.Duration(*decoded.ExpiresIn) * time.Second)
	}
	return now.Add(defaultTokenLifetime)
}

// setNonEmpty sets a form field only when the value is non-empty.
func setNonEmpty(data url.Values, key, value string) {
	if value != "" {
		data.Set(key, value)
	}
}
