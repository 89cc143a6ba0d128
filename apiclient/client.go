// apiclient/client.go
/* The apiclient package provides the authenticated HTTP client for the parking
operations REST API. Each Client binds one environment's endpoint configuration,
one resolved credential pair, and one token handler; it attaches a valid bearer
token to every outbound request and recovers from a 401 by refreshing the token
and retrying the request exactly once. */
package apiclient

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-parking-api-client/authhandler"
	"github.com/deploymenttheory/go-parking-api-client/concurrency"
	"github.com/deploymenttheory/go-parking-api-client/credentials"
	"github.com/deploymenttheory/go-parking-api-client/environment"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is the authenticated API client for one environment.
type Client struct {
	// Private
	config ClientConfig
	http   *http.Client

	// Exported
	Environment environment.Environment
	Endpoints   environment.Endpoints
	TraceID     string
	AuthHandler *authhandler.AuthTokenHandler
	Logger      logger.Logger
	Concurrency *concurrency.Handler
}

// BuildClient creates a new API client with the provided configuration and the
// already-resolved credential pair for the configured environment.
func BuildClient(config ClientConfig, creds credentials.Credentials, populateDefaultValues bool) (*Client, error) {
	if err := validateClientConfig(&config, populateDefaultValues); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat)
	log.SetLevel(parsedLogLevel)

	var endpoints environment.Endpoints
	if config.EndpointOverride != nil {
		endpoints = *config.EndpointOverride
	} else {
		var err error
		endpoints, err = environment.EndpointsFor(config.Environment)
		if err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	traceID := uuid.NewString()

	tokenHandler := authhandler.NewAuthTokenHandler(
		creds,
		endpoints.TokenURL,
		endpoints.Audience,
		traceID,
		httpClient,
		log,
		config.HideSensitiveData,
	)

	concurrencyHandler := concurrency.NewHandler(
		config.MaxConcurrentRequests,
		log,
		&concurrency.Metrics{},
	)

	client := &Client{
		config:      config,
		http:        httpClient,
		Environment: config.Environment,
		Endpoints:   endpoints,
		TraceID:     traceID,
		AuthHandler: tokenHandler,
		Logger:      log,
		Concurrency: concurrencyHandler,
	}

	log.Debug("New API client initialized",
		zap.String("Environment", config.Environment.String()),
		zap.String("BaseURL", endpoints.BaseURL),
		zap.String("TraceID", traceID),
		zap.String("Logging Level", config.LogLevel),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Int64("Max Concurrent Requests", config.MaxConcurrentRequests),
		zap.Duration("Custom Timeout", config.CustomTimeout),
	)

	return client, nil
}

// HTTPClient exposes the underlying transport, primarily for tests that need to
// point the client at a local server.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}
