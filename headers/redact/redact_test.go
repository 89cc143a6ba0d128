// headers/redact/redact_test.go
package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactSensitiveHeaderData(t *testing.T) {
	tests := []struct {
		name              string
		hideSensitiveData bool
		key               string
		value             string
		want              string
	}{
		{"authorization hidden", true, "Authorization", "Bearer token-1", "REDACTED"},
		{"access token hidden", true, "AccessToken", "token-1", "REDACTED"},
		{"client secret hidden", true, "ClientSecret", "secret-value", "REDACTED"},
		{"plain header untouched", true, "Content-Type", "application/json", "application/json"},
		{"redaction disabled", false, "Authorization", "Bearer token-1", "Bearer token-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactSensitiveHeaderData(tt.hideSensitiveData, tt.key, tt.value))
		})
	}
}
