// apiclient/config_test.go
package apiclient

import (
	"testing"
	"time"

	"github.com/deploymenttheory/go-parking-api-client/environment"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaultValuesClientConfig(t *testing.T) {
	config := &ClientConfig{Environment: environment.Production}
	SetDefaultValuesClientConfig(config)

	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.EqualValues(t, DefaultMaxConcurrentRequests, config.MaxConcurrentRequests)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
}

func TestSetDefaultValuesClientConfigKeepsExplicitValues(t *testing.T) {
	config := &ClientConfig{
		Environment:           environment.Production,
		LogLevel:              "LogLevelDebug",
		MaxConcurrentRequests: 2,
		CustomTimeout:         10 * time.Second,
	}
	SetDefaultValuesClientConfig(config)

	assert.Equal(t, "LogLevelDebug", config.LogLevel)
	assert.EqualValues(t, 2, config.MaxConcurrentRequests)
	assert.Equal(t, 10*time.Second, config.CustomTimeout)
}

func TestValidateClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr bool
	}{
		{"valid defaults", func(c *ClientConfig) {}, false},
		{"invalid environment", func(c *ClientConfig) { c.Environment = "qa" }, true},
		{"invalid log level", func(c *ClientConfig) { c.LogLevel = "chatty" }, true},
		{"invalid log format", func(c *ClientConfig) { c.LogOutputFormat = "xml" }, true},
		{"negative timeout", func(c *ClientConfig) { c.CustomTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &ClientConfig{Environment: environment.Staging}
			SetDefaultValuesClientConfig(config)
			tt.mutate(config)

			err := validateClientConfig(config, false)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
