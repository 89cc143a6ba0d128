// credentials/credentials.go

/* The credentials package resolves the OAuth client id / client secret pair used to
authenticate against the parking operations API for a given environment. Two backing
sources exist: a read-only bundled secrets file shipped with the build, and a secure
per-device vault. The Resolver merges them with vault-over-bundled precedence and
rejects placeholder values that were never replaced with real credentials. */
package credentials

import (
	"errors"

	"github.com/deploymenttheory/go-parking-api-client/environment"
)

// ErrNotConfigured indicates that no usable credential pair exists for an environment.
// It is not a transient failure: callers must treat the environment as unusable until
// credentials are supplied.
var ErrNotConfigured = errors.New("credentials: environment not configured")

// Credentials holds the client id / client secret pair for the OAuth client
// credentials exchange. The pair is never persisted by this package.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Source resolves a credential pair for a given environment from one backing store.
// Lookup returns ErrNotConfigured when the store holds no entry for the environment;
// any other error indicates the store itself failed.
type Source interface {
	Lookup(env environment.Environment) (Credentials, error)
}
