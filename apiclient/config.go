// apiclient/config.go
// Description: This file contains the client configuration, its defaults, and validation.
package apiclient

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/environment"
)

const (
	DefaultLogLevelString        = "LogLevelInfo"
	DefaultLogOutputFormatString = "json"
	DefaultHideSensitiveData     = true
	DefaultMaxConcurrentRequests = 5
	DefaultCustomTimeout         = 30 * time.Second
)

// ClientConfig holds the options for building one API client instance.
type ClientConfig struct {
	// Target
	Environment environment.Environment

	// EndpointOverride replaces the static endpoint configuration for the chosen
	// environment. Used by tests and local development against stub servers.
	EndpointOverride *environment.Endpoints

	// Log
	LogLevel          string
	LogOutputFormat   string // Output format of the logs. Use "json" for JSON format, "pretty" for human-readable format
	HideSensitiveData bool

	// Misc
	MaxConcurrentRequests int64
	CustomTimeout         time.Duration
}

// validateClientConfig checks the configuration for invalid values, optionally
// populating defaults first.
func validateClientConfig(config *ClientConfig, populateDefaults bool) error {
	if populateDefaults {
		SetDefaultValuesClientConfig(config)
	}

	if !config.Environment.IsValid() {
		return fmt.Errorf("invalid environment: %q", config.Environment)
	}

	validLogLevels := []string{
		"LogLevelDebug",
		"LogLevelInfo",
		"LogLevelWarn",
		"LogLevelError",
		"LogLevelPanic",
		"LogLevelFatal",
	}
	if !slices.Contains(validLogLevels, config.LogLevel) {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	validLogFormats := []string{
		"json",
		"pretty",
	}
	if !slices.Contains(validLogFormats, config.LogOutputFormat) {
		return fmt.Errorf("invalid log output format: %s", config.LogOutputFormat)
	}

	if config.MaxConcurrentRequests < 1 {
		return errors.New("maximum concurrent requests cannot be less than 1")
	}

	if config.CustomTimeout < 0 {
		return errors.New("timeout cannot be less than 0 seconds")
	}

	return nil
}

// SetDefaultValuesClientConfig fills in default values for any unset fields.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevelString
	}

	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormatString
	}

	if config.MaxConcurrentRequests == 0 {
		config.MaxConcurrentRequests = DefaultMaxConcurrentRequests
	}

	if config.CustomTimeout == 0 {
		config.CustomTimeout = DefaultCustomTimeout
	}
}
