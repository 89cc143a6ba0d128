// environment/environment_test.go
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Environment
		wantErr  bool
	}{
		{"production", Production, false},
		{"staging", Staging, false},
		{"development", Development, false},
		{"", "", true},
		{"Production", "", true},
		{"qa", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, env)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, Production.IsValid())
	assert.True(t, Staging.IsValid())
	assert.True(t, Development.IsValid())
	assert.False(t, Environment("qa").IsValid())
	assert.False(t, Environment("").IsValid())
}

func TestEndpointsFor(t *testing.T) {
	for _, env := range All() {
		endpoints, err := EndpointsFor(env)
		require.NoError(t, err, "environment %s should have endpoint configuration", env)
		assert.NotEmpty(t, endpoints.BaseURL)
		assert.NotEmpty(t, endpoints.TokenURL)
		assert.NotEmpty(t, endpoints.Audience)
	}

	_, err := EndpointsFor(Environment("qa"))
	assert.Error(t, err)
}

func TestEndpointsDifferPerEnvironment(t *testing.T) {
	production, err := EndpointsFor(Production)
	require.NoError(t, err)
	staging, err := EndpointsFor(Staging)
	require.NoError(t, err)

	assert.NotEqual(t, production.BaseURL, staging.BaseURL)
	assert.NotEqual(t, production.TokenURL, staging.TokenURL)
}
