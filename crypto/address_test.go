package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressFromPubKey(t *testing.T) {
	// Compressed generator point, the public key of secret 1.
	pub, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	addr, err := AddressFromPubKey(pub, HRPMainnet)
	require.NoError(t, err)
	require.Equal(t, "bnb1w508d6qejxtdg4y5r3zarvary0c5xw7kcegkwk", addr)

	hrp, raw, err := DecodeAddress(addr)
	require.NoError(t, err)
	require.Equal(t, HRPMainnet, hrp)
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(raw))
}

func TestDecodeAddress(t *testing.T) {
	for _, tk := range testKeys {
		hrp, raw, err := DecodeAddress(tk.testnet)
		require.NoError(t, err)
		require.Equal(t, HRPTestnet, hrp)
		s, err := raw.String(HRPMainnet)
		require.NoError(t, err)
		require.Equal(t, tk.address, s)
	}

	t.Run("bad checksum", func(t *testing.T) {
		_, _, err := DecodeAddress("bnb1rxhz5vdv4fvdjye8gxqvfv0yvg20jtlwf4f38a")
		require.Error(t, err)
	})
	t.Run("segwit address", func(t *testing.T) {
		_, _, err := DecodeAddress("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
		require.Error(t, err)
	})
}

func TestValidateAddress(t *testing.T) {
	require.NoError(t, ValidateAddress(testKeys[0].address, HRPMainnet))
	require.Error(t, ValidateAddress(testKeys[0].address, HRPTestnet))
	require.Error(t, ValidateAddress("", HRPMainnet))
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath(DerivationPath)
	require.NoError(t, err)
	require.Equal(t, AccountPath(0), p)
	require.Equal(t, DerivationPath, p.String())

	p, err = ParsePath("m/44h/714h/0h/0/7")
	require.NoError(t, err)
	require.Equal(t, AccountPath(7), p)

	for _, bad := range []string{"", "m", "44'/714'", "m/x", "m/2147483648", "m/-1"} {
		_, err := ParsePath(bad)
		require.Error(t, err, bad)
	}
}
