// credentials/vault_test.go
package credentials

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/deploymenttheory/go-parking-api-client/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault() *VaultSource {
	return NewVaultSourceWithKeyring(keyring.NewArrayKeyring(nil))
}

func TestVaultSaveAndLookup(t *testing.T) {
	vault := newTestVault()

	creds := Credentials{
		ClientID:     "vault-client-id-0001",
		ClientSecret: "vault-client-secret-0001",
	}
	require.NoError(t, vault.Save(environment.Staging, creds))

	got, err := vault.Lookup(environment.Staging)
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	// Entries are per environment.
	_, err = vault.Lookup(environment.Production)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVaultSaveOverwrites(t *testing.T) {
	vault := newTestVault()

	require.NoError(t, vault.Save(environment.Production, Credentials{
		ClientID:     "old-client-id-000001",
		ClientSecret: "old-client-secret-01",
	}))
	require.NoError(t, vault.Save(environment.Production, Credentials{
		ClientID:     "new-client-id-000001",
		ClientSecret: "new-client-secret-01",
	}))

	got, err := vault.Lookup(environment.Production)
	require.NoError(t, err)
	assert.Equal(t, "new-client-id-000001", got.ClientID)
}

func TestVaultDelete(t *testing.T) {
	vault := newTestVault()

	require.NoError(t, vault.Save(environment.Development, Credentials{
		ClientID:     "dev-client-id-000001",
		ClientSecret: "dev-client-secret-01",
	}))
	require.NoError(t, vault.Delete(environment.Development))

	_, err := vault.Lookup(environment.Development)
	assert.ErrorIs(t, err, ErrNotConfigured)

	// Deleting an absent entry is not an error.
	assert.NoError(t, vault.Delete(environment.Development))
}
