package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var testKeys = []struct {
	priv    string
	pub     string
	address string
	testnet string
}{
	{
		priv:    "3955f430d8372b601f3a70c10a707f94c509fb3c51c1e94ddbb7ab9906cb659d",
		pub:     "02a5c1a09e80070d4f42e4c577b1cd840e12f775b83afd07dc01dde138adf64ea9",
		address: "bnb1rxhz5vdv4fvdjye8gxqvfv0yvg20jtlwf4f38d",
		testnet: "tbnb1rxhz5vdv4fvdjye8gxqvfv0yvg20jtlw8qq48u",
	},
	{
		priv:    "211c108b0b37b40411f7e033357c66b4fc63915ed99014e1a59959b265cfff85",
		pub:     "0203b47d2e334a4d2d5bed60a5e7b9b6651090d9c924520440036c52e3ac393aba",
		address: "bnb13ajdzjhcczjg7mh60mc0d4dsqhj2q0xs22czn8",
		testnet: "tbnb13ajdzjhcczjg7mh60mc0d4dsqhj2q0xsyl3xnk",
	},
	{
		priv:    "95c6e3efdd1e678c0da7600f94485a27b0d60801fcc689c72fb57a0871e0b560",
		pub:     "0338d12f0357d7ef6e93253f82e2a37fdafb146e40751063f4719e9b0f9b17e9e9",
		address: "bnb1qw8m2q8rhjvpq29drvn3n8e3eujx4l4phs27ac",
		testnet: "tbnb1qw8m2q8rhjvpq29drvn3n8e3eujx4l4pe9r6af",
	},
}

func TestNewMnemonic(t *testing.T) {
	m, err := NewMnemonic()
	require.NoError(t, err)
	require.Len(t, strings.Fields(m), 24)
	require.True(t, ValidateMnemonic(m))

	m2, err := NewMnemonic()
	require.NoError(t, err)
	require.NotEqual(t, m, m2)
}

func TestValidateMnemonic(t *testing.T) {
	require.True(t, ValidateMnemonic(testMnemonic))
	require.True(t, ValidateMnemonic("  "+strings.ReplaceAll(testMnemonic, " ", "\n")+" "))
	require.False(t, ValidateMnemonic(strings.Replace(testMnemonic, "about", "abandon", 1)))
	require.False(t, ValidateMnemonic("not a mnemonic"))
}

func TestKeyFromMnemonic(t *testing.T) {
	key, err := KeyFromMnemonic(testMnemonic, "")
	require.NoError(t, err)
	require.Equal(t, testKeys[0].priv, key.Hex())
	require.Equal(t, testKeys[0].pub, hex.EncodeToString(key.PubKey()))

	addr, err := key.Address(HRPMainnet)
	require.NoError(t, err)
	require.Equal(t, testKeys[0].address, addr)

	addr, err = key.Address(HRPTestnet)
	require.NoError(t, err)
	require.Equal(t, testKeys[0].testnet, addr)

	t.Run("passphrase changes key", func(t *testing.T) {
		other, err := KeyFromMnemonic(testMnemonic, "TREZOR")
		require.NoError(t, err)
		require.NotEqual(t, key.Hex(), other.Hex())
	})

	t.Run("bad mnemonic", func(t *testing.T) {
		_, err := KeyFromMnemonic("abandon abandon", "")
		require.ErrorIs(t, err, ErrInvalidMnemonic)
	})
}

func TestKeysFromMnemonic(t *testing.T) {
	keys, err := KeysFromMnemonic(testMnemonic, "", len(testKeys))
	require.NoError(t, err)
	require.Len(t, keys, len(testKeys))
	for i, k := range keys {
		info, err := k.Info(HRPMainnet)
		require.NoError(t, err)
		assert.Equal(t, testKeys[i].priv, info.PrivateKey, "key %d", i)
		assert.Equal(t, testKeys[i].address, info.Address, "key %d", i)
	}

	_, err = KeysFromMnemonic(testMnemonic, "", 0)
	require.Error(t, err)
}

func TestKeyFromMnemonicPath(t *testing.T) {
	path, err := ParsePath("m/44'/714'/0'/0/2")
	require.NoError(t, err)
	key, err := KeyFromMnemonicPath(testMnemonic, "", path)
	require.NoError(t, err)
	require.Equal(t, testKeys[2].priv, key.Hex())
}

func TestGenerateKey(t *testing.T) {
	info, err := GenerateKey(HRPTestnet)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(info.Address, "tbnb1"))
	require.Equal(t, DerivationPath, info.Path)

	key, err := KeyFromMnemonic(info.Mnemonic, "")
	require.NoError(t, err)
	require.Equal(t, info.PrivateKey, key.Hex())
}

func TestPrivKeyFromHex(t *testing.T) {
	key, err := PrivKeyFromHex("0x" + testKeys[1].priv)
	require.NoError(t, err)
	require.Equal(t, testKeys[1].pub, hex.EncodeToString(key.PubKey()))

	_, err = PrivKeyFromHex("abcd")
	require.Error(t, err)
	_, err = PrivKeyFromHex("zz")
	require.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	key, err := PrivKeyFromHex(testKeys[0].priv)
	require.NoError(t, err)

	msg := []byte(`{"account_number":"1","chain_id":"Binance-Chain-Tigris"}`)
	sig, err := key.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)
	require.True(t, VerifySignature(key.PubKey(), msg, sig))

	// RFC6979 signatures are deterministic.
	sig2, err := key.Sign(msg)
	require.NoError(t, err)
	require.Equal(t, sig, sig2)

	require.False(t, VerifySignature(key.PubKey(), append(msg, ' '), sig))
	other, err := PrivKeyFromHex(testKeys[1].priv)
	require.NoError(t, err)
	require.False(t, VerifySignature(other.PubKey(), msg, sig))
	require.False(t, VerifySignature(key.PubKey(), msg, sig[:63]))
}
