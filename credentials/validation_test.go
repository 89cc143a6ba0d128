// credentials/validation_test.go
package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		placeholder bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t ", true},
		{"shorter than minimum", "abc123", true},
		{"test lowercase", "test", true},
		{"test uppercase", "TEST", true},
		{"angle brackets", "<your_client_id>", true},
		{"angle brackets long", "<REPLACE_WITH_REAL_CLIENT_ID_VALUE>", true},
		{"your_ marker", "your_client_id_goes_here", true},
		{"placeholder marker", "placeholder-secret-value", true},
		{"placeholder marker mixed case", "PLACEHOLDER_SECRET_VALUE", true},
		{"real looking id", "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4", false},
		{"real looking secret", "sk_live_9f8e7d6c5b4a39281706", false},
		{"exactly minimum length", "abcde12345", false},
		{"surrounding whitespace real value", "  a1b2c3d4e5f6a1b2c3d4  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.placeholder, IsPlaceholder(tt.value))
		})
	}
}

func TestTrimPair(t *testing.T) {
	creds := trimPair(Credentials{
		ClientID:     "  some-client-id-value  ",
		ClientSecret: "\tsome-client-secret\n",
	})
	assert.Equal(t, "some-client-id-value", creds.ClientID)
	assert.Equal(t, "some-client-secret", creds.ClientSecret)
}
