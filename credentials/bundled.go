// credentials/bundled.go

package credentials

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deploymenttheory/go-parking-api-client/environment"
)

// bundledEntry is the on-disk JSON shape of one environment's credential slot.
type bundledEntry struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// bundledFile is the on-disk JSON shape of the bundled secrets resource:
// a map from environment name to credential slot.
type bundledFile map[string]bundledEntry

// BundledSource is a read-only secret source backed by a JSON secrets resource
// shipped with the build. Entries are loaded once at construction and never mutated.
type BundledSource struct {
	entries map[environment.Environment]Credentials
}

// NewBundledSource parses a bundled secrets JSON document into a source.
func NewBundledSource(data []byte) (*BundledSource, error) {
	var file bundledFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("bundled secrets: malformed JSON: %w", err)
	}

	entries := make(map[environment.Environment]Credentials, len(file))
	for name, entry := range file {
		env, err := environment.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("bundled secrets: %w", err)
		}
		entries[env] = Credentials{
			ClientID:     entry.ClientID,
			ClientSecret: entry.ClientSecret,
		}
	}

	return &BundledSource{entries: entries}, nil
}

// NewBundledSourceFromFile reads and parses a bundled secrets file from disk.
func NewBundledSourceFromFile(path string) (*BundledSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bundled secrets: %w", err)
	}
	return NewBundledSource(data)
}

// Lookup returns the bundled credential pair for the given environment, or
// ErrNotConfigured when the resource has no slot for it.
func (s *BundledSource) Lookup(env environment.Environment) (Credentials, error) {
	creds, ok := s.entries[env]
	if !ok {
		return Credentials{}, ErrNotConfigured
	}
	return creds, nil
}
