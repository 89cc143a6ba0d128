// credentials/vault.go

package credentials

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
	"github.com/deploymenttheory/go-parking-api-client/environment"
)

// vaultServiceName is the service name the credential entries are stored under in
// the OS keychain (or the selected keyring backend on platforms without one).
const vaultServiceName = "parking-api-client"

// vaultItem is the JSON shape of one vault entry.
type vaultItem struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// VaultSource is a secret source backed by the per-device secure keyring. One entry
// is stored per environment. The API access core only reads the vault; the save and
// delete operations exist for the credential management surface.
type VaultSource struct {
	ring keyring.Keyring
}

// NewVaultSource opens the per-device keyring and returns a vault-backed source.
func NewVaultSource() (*VaultSource, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: vaultServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("vault: opening keyring: %w", err)
	}
	return &VaultSource{ring: ring}, nil
}

// NewVaultSourceWithKeyring wraps an already-open keyring. Used by tests to supply
// an in-memory backend.
func NewVaultSourceWithKeyring(ring keyring.Keyring) *VaultSource {
	return &VaultSource{ring: ring}
}

// vaultKey returns the keyring key for an environment's credential entry.
func vaultKey(env environment.Environment) string {
	return fmt.Sprintf("%s.%s", vaultServiceName, env)
}

// Lookup returns the vault credential pair for the given environment, or
// ErrNotConfigured when the vault holds no entry for it.
func (s *VaultSource) Lookup(env environment.Environment) (Credentials, error) {
	item, err := s.ring.Get(vaultKey(env))
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return Credentials{}, ErrNotConfigured
		}
		return Credentials{}, fmt.Errorf("vault: reading entry for %s: %w", env, err)
	}

	var entry vaultItem
	if err := json.Unmarshal(item.Data, &entry); err != nil {
		return Credentials{}, fmt.Errorf("vault: malformed entry for %s: %w", env, err)
	}

	return Credentials{
		ClientID:     entry.ClientID,
		ClientSecret: entry.ClientSecret,
	}, nil
}

// Save writes or replaces the vault credential entry for the given environment.
func (s *VaultSource) Save(env environment.Environment, creds Credentials) error {
	data, err := json.Marshal(vaultItem{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	})
	if err != nil {
		return fmt.Errorf("vault: encoding entry for %s: %w", env, err)
	}

	err = s.ring.Set(keyring.Item{
		Key:   vaultKey(env),
		Label: fmt.Sprintf("Parking API credentials (%s)", env),
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("vault: writing entry for %s: %w", env, err)
	}
	return nil
}

// Delete removes the vault credential entry for the given environment. Deleting an
// absent entry is not an error.
func (s *VaultSource) Delete(env environment.Environment) error {
	err := s.ring.Remove(vaultKey(env))
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("vault: deleting entry for %s: %w", env, err)
	}
	return nil
}
