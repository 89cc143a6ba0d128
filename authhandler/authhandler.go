// authhandler/authhandler.go

/* The authhandler package manages OAuth client credentials authentication for the
parking operations API. An AuthTokenHandler owns at most one cached bearer token
plus its expiry for one API client instance; it decides when the cached token is
still usable versus must be refreshed, and serializes all cache transitions so
concurrent callers on the same client observe a consistent token/expiry pairing. */
package authhandler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/credentials"
	"github.com/deploymenttheory/go-parking-api-client/headers/redact"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"go.uber.org/zap"
)

// TokenRefreshBuffer is the safety margin subtracted from a token's expiry when
// judging freshness. A cached token is stale once now >= expiresAt - buffer.
const TokenRefreshBuffer = 60 * time.Second

// defaultTokenLifetime is assumed when the token endpoint reports no expiry at all.
const defaultTokenLifetime = 3600 * time.Second

// AuthTokenHandler manages the cached authentication token for one API client instance.
type AuthTokenHandler struct {
	Credentials       credentials.Credentials // Credentials holds the client id / secret pair used for the token exchange.
	TokenURL          string                  // TokenURL is the OAuth token endpoint.
	Audience          string                  // Audience is the audience value sent with the token request.
	TraceID           string                  // TraceID is the opaque client trace id attached to token requests.
	Logger            logger.Logger           // Logger provides structured logging capabilities.
	HideSensitiveData bool

	httpClient *http.Client

	tokenLock sync.Mutex // tokenLock serializes every read/modify/write of token and expires.
	token     string
	expires   time.Time
}

// NewAuthTokenHandler creates a new instance of AuthTokenHandler.
func NewAuthTokenHandler(creds credentials.Credentials, tokenURL, audience, traceID string, httpClient *http.Client, log logger.Logger, hideSensitiveData bool) *AuthTokenHandler {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &AuthTokenHandler{
		Credentials:       creds,
		TokenURL:          tokenURL,
		Audience:          audience,
		TraceID:           traceID,
		Logger:            log,
		HideSensitiveData: hideSensitiveData,
		httpClient:        httpClient,
	}
}

// ValidToken returns a bearer token that is valid for at least the refresh buffer.
// A cached token inside its freshness window is returned without any I/O. Otherwise
// the handler performs the client credentials exchange, commits the fresh token, and
// returns it. Callers racing on a stale cache are queued on the token lock: the first
// performs the exchange and later callers find the committed token, so a single fetch
// is canonical for the race. A fetch cancelled through ctx commits nothing.
func (h *AuthTokenHandler) ValidToken(ctx context.Context) (string, error) {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()

	if h.isTokenValidLocked() {
		h.Logger.Debug("Using cached authentication token",
			zap.Time("Expires", h.expires))
		return h.token, nil
	}

	return h.refreshLocked(ctx)
}

// Invalidate unconditionally clears the cached token so the next ValidToken call
// forces a refresh. Used after a resource request is rejected with 401, where the
// cached token must not be reused.
func (h *AuthTokenHandler) Invalidate() {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()

	h.token = ""
	h.expires = time.Time{}
	h.Logger.Debug("Authentication token invalidated")
}

// Expiry returns the expiry timestamp of the cached token, or the zero time when
// the cache is empty.
func (h *AuthTokenHandler) Expiry() time.Time {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()
	return h.expires
}

// refreshLocked performs the token exchange and commits the result. The token lock
// must be held. The commit happens only after a fully successful fetch, so a failed
// or cancelled exchange leaves the previous state untouched.
func (h *AuthTokenHandler) refreshLocked(ctx context.Context) (string, error) {
	h.Logger.Debug("Token missing or close to expiry, obtaining a fresh token")

	fetched, err := h.fetchToken(ctx)
	if err != nil {
		h.Logger.Error("Failed to obtain authentication token", zap.Error(err))
		return "", err
	}

	h.token = fetched.AccessToken
	h.expires = fetched.ExpiresAt

	redactedAccessToken := redact.RedactSensitiveHeaderData(h.HideSensitiveData, "AccessToken", fetched.AccessToken)
	h.Logger.Info("Authentication token obtained successfully",
		zap.String("AccessToken", redactedAccessToken),
		zap.Time("ExpirationTime", fetched.ExpiresAt))

	return h.token, nil
}

// isTokenValidLocked checks if the current token is non-empty and not about to expire.
// A token is stale once now >= expires - buffer, so the boundary instant itself
// already forces a refresh. The token lock must be held.
func (h *AuthTokenHandler) isTokenValidLocked() bool {
	return h.token != "" && time.Until(h.expires) > TokenRefreshBuffer
}
