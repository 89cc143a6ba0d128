// apiclient/request.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/deploymenttheory/go-parking-api-client/headers"
	"github.com/deploymenttheory/go-parking-api-client/response"
	"github.com/deploymenttheory/go-parking-api-client/status"
	"github.com/deploymenttheory/go-parking-api-client/version"
	"go.uber.org/zap"
)

// DoRequest executes an authenticated request against the parking operations API
// and decodes a 2xx JSON response body into out.
//
// The request carries a bearer token obtained from the token cache (which may
// trigger a token fetch) and the client trace id header. A 401 response triggers
// exactly one recovery cycle: the cached token is invalidated, one fresh token is
// fetched, the request is rebuilt with the new token and executed once more, and
// that second response is final. Repeated 401s after a fresh token indicate a
// genuine authorization problem and surface to the caller as an *response.HTTPError
// rather than looping.
//
// Failure taxonomy: a non-2xx status (after the allowed retry) yields an
// *response.HTTPError carrying status code and raw body; a 2xx body that does not
// match out yields an *response.DecodeError. The two are never conflated.
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, body, out any) error {
	log := c.Logger

	requestID, err := c.Concurrency.AcquirePermit(ctx)
	if err != nil {
		return log.Error("Failed to acquire concurrency permit", zap.Error(err))
	}
	defer c.Concurrency.ReleasePermit(requestID)
	c.Concurrency.RecordRequest()

	var bodyBytes []byte
	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
	}

	token, err := c.AuthHandler.ValidToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.executeOnce(ctx, method, endpoint, bodyBytes, token)
	if err != nil {
		return err
	}

	if status.IsUnauthorized(resp.StatusCode) {
		drainAndClose(resp)
		log.Warn("Request rejected with 401, refreshing token and retrying once",
			zap.String("method", method),
			zap.String("endpoint", endpoint))

		c.AuthHandler.Invalidate()
		token, err = c.AuthHandler.ValidToken(ctx)
		if err != nil {
			return err
		}

		c.Concurrency.RecordRetry()
		resp, err = c.executeOnce(ctx, method, endpoint, bodyBytes, token)
		if err != nil {
			return err
		}
	}

	defer resp.Body.Close()

	if !status.IsSuccess(resp.StatusCode) {
		httpErr := response.HandleAPIErrorResponse(resp)
		log.Warn("Request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("status_message", status.TranslateStatusCode(resp.StatusCode)))
		return httpErr
	}

	return response.HandleAPISuccessResponse(resp, out)
}

// Get issues an authenticated GET request for the given endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.DoRequest(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues an authenticated POST request with a JSON body for the given endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.DoRequest(ctx, http.MethodPost, endpoint, body, out)
}

// executeOnce builds and executes a single authenticated request attempt.
func (c *Client) executeOnce(ctx context.Context, method, endpoint string, bodyBytes []byte, token string) (*http.Response, error) {
	log := c.Logger

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := c.Endpoints.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	headerHandler := headers.NewHeaderHandler(req)
	headerHandler.SetAuthorization(token)
	headerHandler.SetTraceID(c.TraceID)
	headerHandler.SetAccept("application/json")
	headerHandler.SetUserAgent(version.UserAgent())
	if bodyBytes != nil {
		headerHandler.SetContentType("application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("Failed to send request",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}

	log.Debug("Request sent",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", resp.StatusCode))

	return resp, nil
}

// drainAndClose consumes and closes a response body so the connection can be reused.
func drainAndClose(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
