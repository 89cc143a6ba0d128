// credentials/resolver.go

package credentials

import (
	"errors"

	"github.com/deploymenttheory/go-parking-api-client/environment"
	"github.com/deploymenttheory/go-parking-api-client/logger"
	"go.uber.org/zap"
)

// Resolver merges the vault and bundled secret sources with a fixed priority rule:
// the vault wins when it holds a usable pair, otherwise the bundled secrets are
// consulted. Placeholder values never resolve. Resolution is read-only.
type Resolver struct {
	vault   Source
	bundled Source
	logger  logger.Logger
}

// NewResolver builds a resolver over the two secret sources. Either source may be
// nil, in which case it is skipped during resolution.
func NewResolver(vault, bundled Source, log logger.Logger) *Resolver {
	return &Resolver{
		vault:   vault,
		bundled: bundled,
		logger:  log,
	}
}

// Resolve returns the credential pair for the given environment, trimmed of
// surrounding whitespace. The vault is consulted first; a vault entry with a
// placeholder in either field is skipped in favour of the bundled secrets. When
// neither source yields a usable pair, Resolve returns ErrNotConfigured.
func (r *Resolver) Resolve(env environment.Environment) (Credentials, error) {
	if creds, ok := r.resolveFrom(r.vault, env, "vault"); ok {
		return creds, nil
	}
	if creds, ok := r.resolveFrom(r.bundled, env, "bundled"); ok {
		return creds, nil
	}

	r.logger.Info("No usable credentials for environment", zap.String("environment", env.String()))
	return Credentials{}, ErrNotConfigured
}

// resolveFrom consults one source and applies the placeholder check. A source error
// other than ErrNotConfigured is logged and treated as "no usable pair" so that a
// broken vault backend degrades to the bundled secrets instead of failing resolution.
func (r *Resolver) resolveFrom(source Source, env environment.Environment, name string) (Credentials, bool) {
	if source == nil {
		return Credentials{}, false
	}

	creds, err := source.Lookup(env)
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			r.logger.Warn("Secret source lookup failed",
				zap.String("source", name),
				zap.String("environment", env.String()),
				zap.Error(err))
		}
		return Credentials{}, false
	}

	creds = trimPair(creds)
	if !isUsablePair(creds) {
		r.logger.Debug("Skipping placeholder credentials",
			zap.String("source", name),
			zap.String("environment", env.String()))
		return Credentials{}, false
	}

	return creds, true
}
