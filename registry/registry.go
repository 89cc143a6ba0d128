// registry/registry.go

/* The registry package maintains one API client instance per environment, lazily
constructed from resolved credentials and the environment's endpoint configuration.
It is an explicit owned map passed by injection to consumers, never ambient global
state. Replacing a client through Refresh leaves in-flight requests on the old
instance untouched: each instance is self-contained and owns its own token cache. */
package registry

import (
	"errors"
	"sync"

	"github.com/deploymenttheory/go-parking-api-client/apiclient"
	"github.com/deploymenttheory/go-parking-api-client/credentials"
	"github.com/deploymenttheory/go-parking-api-client/environment"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"github.com/deploymenttheory/go-parking-api-client/parking"
	"go.uber.org/zap"
)

// CredentialResolver resolves the credential pair for an environment. Satisfied by
// *credentials.Resolver.
type CredentialResolver interface {
	Resolve(env environment.Environment) (credentials.Credentials, error)
}

// Registry holds at most one live API client instance per environment.
type Registry struct {
	resolver   CredentialResolver
	baseConfig apiclient.ClientConfig
	logger     logger.Logger

	lock    sync.Mutex
	clients map[environment.Environment]*apiclient.Client
}

// NewRegistry builds an empty registry. baseConfig supplies the client options
// shared by every environment; its Environment field is overwritten per client.
func NewRegistry(resolver CredentialResolver, baseConfig apiclient.ClientConfig, log logger.Logger) *Registry {
	return &Registry{
		resolver:   resolver,
		baseConfig: baseConfig,
		logger:     log,
		clients:    make(map[environment.Environment]*apiclient.Client),
	}
}

// ClientFor returns the API client for the given environment, building it on first
// use. A nil result means the environment is not configured (no usable credentials),
// not a transient failure; the nil is recorded so resolution is not retried until
// Refresh is called for the environment.
func (r *Registry) ClientFor(env environment.Environment) *apiclient.Client {
	r.lock.Lock()
	defer r.lock.Unlock()

	if client, seen := r.clients[env]; seen {
		return client
	}

	client := r.buildLocked(env)
	r.clients[env] = client
	return client
}

// ClientForOperator resolves the operator's declared environment and returns its
// client. An operator with no declared environment, or one that fails to parse,
// yields nil.
func (r *Registry) ClientForOperator(op *parking.Operator) *apiclient.Client {
	if op == nil || op.Environment == "" {
		return nil
	}

	env, err := environment.Parse(op.Environment)
	if err != nil {
		r.logger.Warn("Operator declares an unknown environment",
			zap.String("operator", op.Name),
			zap.String("environment", op.Environment))
		return nil
	}

	return r.ClientFor(env)
}

// Refresh rebuilds the one client for the given environment from current
// credentials. Any previously cached token for that environment is discarded as a
// side effect of replacing the client instance. Requests already in flight on the
// old instance complete against the old instance.
func (r *Registry) Refresh(env environment.Environment) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.clients[env] = r.buildLocked(env)
}

// RefreshAll applies Refresh to every environment.
func (r *Registry) RefreshAll() {
	for _, env := range environment.All() {
		r.Refresh(env)
	}
}

// buildLocked constructs the client for one environment. The registry lock must be
// held. A NotConfigured resolution or a construction failure yields nil.
func (r *Registry) buildLocked(env environment.Environment) *apiclient.Client {
	creds, err := r.resolver.Resolve(env)
	if err != nil {
		if errors.Is(err, credentials.ErrNotConfigured) {
			r.logger.Info("No client for environment: credentials not configured",
				zap.String("environment", env.String()))
		} else {
			r.logger.Warn("Credential resolution failed",
				zap.String("environment", env.String()),
				zap.Error(err))
		}
		return nil
	}

	config := r.baseConfig
	config.Environment = env

	client, err := apiclient.BuildClient(config, creds, true)
	if err != nil {
		r.logger.Warn("Failed to build API client",
			zap.String("environment", env.String()),
			zap.Error(err))
		return nil
	}

	return client
}
