// environment/environment.go

/* The environment package defines the set of backend environments the parking
operations API is deployed to, and the static endpoint configuration for each.
An Environment selects both the endpoint set and the credential slot used when
constructing an API client. */
package environment

import (
	"fmt"
)

// Environment identifies which backend endpoint set and credential slot applies.
type Environment string

const (
	Production  Environment = "production"
	Staging     Environment = "staging"
	Development Environment = "development"
)

// All lists every supported environment, in priority order.
func All() []Environment {
	return []Environment{Production, Staging, Development}
}

// Parse converts a string representation of an environment to a strongly-typed Environment.
func Parse(s string) (Environment, error) {
	switch s {
	case "production":
		return Production, nil
	case "staging":
		return Staging, nil
	case "development":
		return Development, nil
	default:
		return "", fmt.Errorf("unknown environment: %q", s)
	}
}

// IsValid reports whether e is one of the supported environments.
func (e Environment) IsValid() bool {
	switch e {
	case Production, Staging, Development:
		return true
	default:
		return false
	}
}

// String returns the string representation of the environment.
func (e Environment) String() string {
	return string(e)
}
