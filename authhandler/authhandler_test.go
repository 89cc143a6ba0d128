// authhandler/authhandler_test.go
package authhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/credentials"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logger.Logger {
	return logger.BuildLogger(logger.LogLevelNone, logger.LogOutputJSON)
}

func testCredentials() credentials.Credentials {
	return credentials.Credentials{
		ClientID:     "test-client-id-000001",
		ClientSecret: "test-client-secret-01",
	}
}

// newTokenServer returns a token endpoint issuing sequentially numbered tokens with
// the given expires_in, and a counter of fetches served.
func newTokenServer(t *testing.T, expiresIn int64) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var fetches atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := fetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":%d}`, n, expiresIn)
	}))
	t.Cleanup(srv.Close)

	return srv, &fetches
}

func newHandler(srv *httptest.Server) *AuthTokenHandler {
	return NewAuthTokenHandler(testCredentials(), srv.URL, "test-audience", "trace-0001", srv.Client(), testLogger(), false)
}

func TestValidTokenReusesFreshToken(t *testing.T) {
	srv, fetches := newTokenServer(t, 3600)
	handler := newHandler(srv)
	ctx := context.Background()

	first, err := handler.ValidToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	// A second call inside the freshness window performs no I/O.
	second, err := handler.ValidToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, fetches.Load())
}

func TestValidTokenRefreshesInsideBuffer(t *testing.T) {
	// A 30s lifetime is already inside the 60s refresh buffer, so every call
	// must trigger a fresh fetch.
	srv, fetches := newTokenServer(t, 30)
	handler := newHandler(srv)
	ctx := context.Background()

	first, err := handler.ValidToken(ctx)
	require.NoError(t, err)
	second, err := handler.ValidToken(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.EqualValues(t, 2, fetches.Load())
}

func TestInvalidateForcesRefresh(t *testing.T) {
	srv, fetches := newTokenServer(t, 3600)
	handler := newHandler(srv)
	ctx := context.Background()

	_, err := handler.ValidToken(ctx)
	require.NoError(t, err)

	handler.Invalidate()
	assert.True(t, handler.Expiry().IsZero())

	token, err := handler.ValidToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.EqualValues(t, 2, fetches.Load())
}

func TestConcurrentCallersShareOneFetch(t *testing.T) {
	srv, fetches := newTokenServer(t, 3600)
	handler := newHandler(srv)

	const callers = 16
	tokens := make([]string, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			token, err := handler.ValidToken(context.Background())
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	// Callers racing on the stale cache are queued on the token lock: the first
	// performs the exchange and the rest observe the committed token.
	assert.EqualValues(t, 1, fetches.Load())
	for _, token := range tokens {
		assert.Equal(t, "token-1", token)
	}
}

func TestCancelledFetchCommitsNothing(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(map[string]any{"access_token": "late", "expires_in": 3600})
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	handler := newHandler(srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := handler.ValidToken(ctx)
	require.Error(t, err)
	assert.True(t, handler.Expiry().IsZero(), "a cancelled fetch must leave the cache empty")
}
