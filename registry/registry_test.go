// registry/registry_test.go
package registry

import (
	"testing"

	"github.com/deploymenttheory/go-parking-api-client/apiclient"
	"github.com/deploymenttheory/go-parking-api-client/credentials"
	"github.com/deploymenttheory/go-parking-api-client/environment"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"github.com/deploymenttheory/go-parking-api-client/parking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver resolves fixed credentials for a subset of environments.
type stubResolver struct {
	pairs    map[environment.Environment]credentials.Credentials
	resolved int
}

func (r *stubResolver) Resolve(env environment.Environment) (credentials.Credentials, error) {
	r.resolved++
	creds, ok := r.pairs[env]
	if !ok {
		return credentials.Credentials{}, credentials.ErrNotConfigured
	}
	return creds, nil
}

func testLogger() logger.Logger {
	return logger.BuildLogger(logger.LogLevelNone, logger.LogOutputJSON)
}

func newTestRegistry(resolver CredentialResolver) *Registry {
	return NewRegistry(resolver, apiclient.ClientConfig{
		LogLevel:        "LogLevelError",
		LogOutputFormat: "json",
	}, testLogger())
}

func configuredResolver(envs ...environment.Environment) *stubResolver {
	pairs := make(map[environment.Environment]credentials.Credentials)
	for _, env := range envs {
		pairs[env] = credentials.Credentials{
			ClientID:     "client-id-" + env.String(),
			ClientSecret: "client-secret-" + env.String(),
		}
	}
	return &stubResolver{pairs: pairs}
}

func TestClientForBuildsLazilyAndCaches(t *testing.T) {
	resolver := configuredResolver(environment.Production)
	reg := newTestRegistry(resolver)

	first := reg.ClientFor(environment.Production)
	require.NotNil(t, first)
	assert.Equal(t, environment.Production, first.Environment)

	second := reg.ClientFor(environment.Production)
	assert.Same(t, first, second, "at most one live client per environment")
	assert.Equal(t, 1, resolver.resolved, "credentials resolved once, not per lookup")
}

func TestClientForNotConfigured(t *testing.T) {
	resolver := configuredResolver()
	reg := newTestRegistry(resolver)

	assert.Nil(t, reg.ClientFor(environment.Staging))

	// The nil outcome is recorded, not re-resolved on every lookup.
	assert.Nil(t, reg.ClientFor(environment.Staging))
	assert.Equal(t, 1, resolver.resolved)
}

func TestRefreshReplacesOnlyTargetEnvironment(t *testing.T) {
	resolver := configuredResolver(environment.Production, environment.Staging)
	reg := newTestRegistry(resolver)

	production := reg.ClientFor(environment.Production)
	staging := reg.ClientFor(environment.Staging)
	require.NotNil(t, production)
	require.NotNil(t, staging)

	reg.Refresh(environment.Staging)

	assert.Same(t, production, reg.ClientFor(environment.Production),
		"refreshing staging must not touch the production instance")
	assert.NotSame(t, staging, reg.ClientFor(environment.Staging),
		"refresh must produce a new staging instance")
}

func TestRefreshPicksUpNewCredentials(t *testing.T) {
	resolver := configuredResolver()
	reg := newTestRegistry(resolver)

	require.Nil(t, reg.ClientFor(environment.Development))

	// Credentials arrive (the user saved them in the vault); refresh rebuilds.
	resolver.pairs = configuredResolver(environment.Development).pairs
	reg.Refresh(environment.Development)

	assert.NotNil(t, reg.ClientFor(environment.Development))
}

func TestRefreshAll(t *testing.T) {
	resolver := configuredResolver(environment.Production, environment.Staging, environment.Development)
	reg := newTestRegistry(resolver)

	old := make(map[environment.Environment]*apiclient.Client)
	for _, env := range environment.All() {
		old[env] = reg.ClientFor(env)
		require.NotNil(t, old[env])
	}

	reg.RefreshAll()

	for _, env := range environment.All() {
		assert.NotSame(t, old[env], reg.ClientFor(env))
	}
}

func TestClientForOperator(t *testing.T) {
	resolver := configuredResolver(environment.Staging)
	reg := newTestRegistry(resolver)

	tests := []struct {
		name     string
		operator *parking.Operator
		wantNil  bool
	}{
		{"nil operator", nil, true},
		{"no declared environment", &parking.Operator{Name: "op"}, true},
		{"unknown environment", &parking.Operator{Name: "op", Environment: "qa"}, true},
		{"unconfigured environment", &parking.Operator{Name: "op", Environment: "production"}, true},
		{"configured environment", &parking.Operator{Name: "op", Environment: "staging"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := reg.ClientForOperator(tt.operator)
			if tt.wantNil {
				assert.Nil(t, client)
			} else {
				require.NotNil(t, client)
				assert.Equal(t, environment.Staging, client.Environment)
			}
		})
	}
}
