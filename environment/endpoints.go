// environment/endpoints.go
package environment

import (
	"fmt"
)

// Endpoints holds the static endpoint configuration for one environment.
type Endpoints struct {
	BaseURL  string // BaseURL is the root of the parking operations REST API.
	TokenURL string // TokenURL is the OAuth token endpoint for the client credentials exchange.
	Audience string // Audience is the audience value sent with the token request.
}

// endpointTable is the static mapping from environment to endpoint configuration.
// These values are fixed per backend deployment and are not user-configurable.
var endpointTable = map[Environment]Endpoints{
	Production: {
		BaseURL:  "https://api.parking-operations.io/v1",
		TokenURL: "https://auth.parking-operations.io/oauth/token",
		Audience: "https://api.parking-operations.io",
	},
	Staging: {
		BaseURL:  "https://api.staging.parking-operations.io/v1",
		TokenURL: "https://auth.staging.parking-operations.io/oauth/token",
		Audience: "https://api.staging.parking-operations.io",
	},
	Development: {
		BaseURL:  "https://api.dev.parking-operations.io/v1",
		TokenURL: "https://auth.dev.parking-operations.io/oauth/token",
		Audience: "https://api.dev.parking-operations.io",
	},
}

// EndpointsFor returns the endpoint configuration for the given environment.
func EndpointsFor(env Environment) (Endpoints, error) {
	endpoints, ok := endpointTable[env]
	if !ok {
		return Endpoints{}, fmt.Errorf("no endpoint configuration for environment: %q", env)
	}
	return endpoints, nil
}
