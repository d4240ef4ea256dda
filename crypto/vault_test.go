package crypto

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestVault(t *testing.T) {
	v, err := NewVault(testMnemonic, "extra", "correct horse")
	require.NoError(t, err)
	require.NotContains(t, string(v.Data), "abandon")

	// Survives a round trip through its on-disk form.
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var stored Vault
	require.NoError(t, json.Unmarshal(raw, &stored))

	m, pass, err := stored.Open("correct horse")
	require.NoError(t, err)
	require.Equal(t, testMnemonic, m)
	require.Equal(t, "extra", pass)

	require.True(t, stored.ValidatePassword("correct horse"))
	require.False(t, stored.ValidatePassword("wrong"))
	_, _, err = stored.Open("wrong")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestVaultInvalidMnemonic(t *testing.T) {
	_, err := NewVault("abandon abandon", "", "pw")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestVaultCorrupted(t *testing.T) {
	testCases := map[string]func(v *Vault){
		"short nonce": func(v *Vault) { v.Nonce = []byte{0, 0, 0, 0} },
		"no nonce":    func(v *Vault) { v.Nonce = nil },
		"zero n":      func(v *Vault) { v.N = 0 },
		"odd n":       func(v *Vault) { v.N = 1000 },
		"huge n":      func(v *Vault) { v.N = 1 << 30 },
		"zero r":      func(v *Vault) { v.R = 0 },
		"negative p":  func(v *Vault) { v.P = -1 },
		"no salt":     func(v *Vault) { v.Salt = nil },
	}
	for name, corrupt := range testCases {
		t.Run(name, func(t *testing.T) {
			v, err := NewVault(testMnemonic, "", "correct horse")
			require.NoError(t, err)
			corrupt(v)
			require.NotPanics(t, func() {
				_, _, err = v.Open("correct horse")
			})
			require.ErrorIs(t, err, ErrCorruptedVault)
		})
	}
}
