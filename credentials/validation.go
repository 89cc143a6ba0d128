// credentials/validation.go

package credentials

import (
	"strings"
)

// minCredentialLength is the shortest value accepted for either credential field.
// Real client ids and secrets issued by the parking platform are much longer.
const minCredentialLength = 10

// IsPlaceholder reports whether a credential value is a placeholder rather than a real
// credential. A value is a placeholder if it is empty after trimming whitespace, shorter
// than the minimum credential length, contains angle brackets or common placeholder
// markers ("your_", "placeholder"), or is the exact value "test", case-insensitively.
func IsPlaceholder(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	if len(trimmed) < minCredentialLength {
		return true
	}
	if strings.ContainsAny(trimmed, "<>") {
		return true
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "your_") {
		return true
	}
	if strings.Contains(lower, "placeholder") {
		return true
	}

	// "test" is shorter than the minimum length, but keep the explicit check so
	// the rule survives a future change to minCredentialLength.
	return strings.EqualFold(trimmed, "test")
}

// isUsablePair reports whether both fields of a credential pair pass the placeholder check.
func isUsablePair(creds Credentials) bool {
	return !IsPlaceholder(creds.ClientID) && !IsPlaceholder(creds.ClientSecret)
}

// trimPair returns the pair with whitespace trimmed from both fields.
func trimPair(creds Credentials) Credentials {
	return Credentials{
		ClientID:     strings.TrimSpace(creds.ClientID),
		ClientSecret: strings.TrimSpace(creds.ClientSecret),
	}
}
