package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits gives 24-word mnemonics.
const MnemonicEntropyBits = 256

// SignatureLength is the size of a raw r||s signature.
const SignatureLength = 64

// ErrInvalidMnemonic is returned for mnemonics failing the BIP39 checksum.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// KeyInfo is a derived key in its exportable form.
type KeyInfo struct {
	PrivateKey string `json:"private_key"`
	Address    string `json:"public_address"`
	Path       string `json:"path,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
}

// PrivKey is a secp256k1 account key.
type PrivKey struct {
	key *btcec.PrivateKey
}

// NewMnemonic generates a fresh 24-word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic reports whether the mnemonic has a valid word list and
// checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(normalizeMnemonic(mnemonic))
}

// GenerateKey creates a new mnemonic and returns its first account key.
func GenerateKey(hrp string) (*KeyInfo, error) {
	mnemonic, err := NewMnemonic()
	if err != nil {
		return nil, err
	}
	key, err := KeyFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}
	info, err := key.Info(hrp)
	if err != nil {
		return nil, err
	}
	info.Path = DerivationPath
	info.Mnemonic = mnemonic
	return info, nil
}

// KeyFromMnemonic derives the key at DerivationPath.
func KeyFromMnemonic(mnemonic, passphrase string) (*PrivKey, error) {
	master, err := masterKey(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return deriveKey(master, AccountPath(0))
}

// KeysFromMnemonic derives the first n account keys, m/44'/714'/0'/0/i.
func KeysFromMnemonic(mnemonic, passphrase string, n int) ([]*PrivKey, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid number of keys %d", n)
	}
	master, err := masterKey(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	// Everything up to the change level is shared by all keys.
	change, err := deriveExtended(master, AccountPath(0)[:4])
	if err != nil {
		return nil, err
	}
	keys := make([]*PrivKey, 0, n)
	for i := 0; i < n; i++ {
		key, err := deriveKey(change, Path{uint32(i)})
		if err != nil {
			return nil, fmt.Errorf("failed to derive key %d: %w", i, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// KeyFromMnemonicPath derives a key at an arbitrary path.
func KeyFromMnemonicPath(mnemonic, passphrase string, path Path) (*PrivKey, error) {
	master, err := masterKey(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return deriveKey(master, path)
}

func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

func masterKey(mnemonic, passphrase string) (*hdkeychain.ExtendedKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(normalizeMnemonic(mnemonic), passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	// Network parameters only affect the extended key serialization.
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	return master, nil
}

func deriveExtended(key *hdkeychain.ExtendedKey, path Path) (*hdkeychain.ExtendedKey, error) {
	for _, childNum := range path {
		var err error
		key, err = key.Derive(childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %d: %w", childNum, err)
		}
	}
	return key, nil
}

func deriveKey(key *hdkeychain.ExtendedKey, path Path) (*PrivKey, error) {
	child, err := deriveExtended(key, path)
	if err != nil {
		return nil, err
	}
	priv, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	return &PrivKey{key: priv}, nil
}

// PrivKeyFromBytes wraps a raw 32-byte secret.
func PrivKeyFromBytes(b []byte) (*PrivKey, error) {
	if len(b) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("invalid private key length %d", len(b))
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return &PrivKey{key: priv}, nil
}

// PrivKeyFromHex parses a hex-encoded 32-byte secret.
func PrivKeyFromHex(s string) (*PrivKey, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key hex: %w", err)
	}
	return PrivKeyFromBytes(b)
}

// Bytes returns the 32-byte secret.
func (k *PrivKey) Bytes() []byte {
	return k.key.Serialize()
}

// Hex returns the secret in lower-case hex.
func (k *PrivKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// PubKey returns the 33-byte compressed public key.
func (k *PrivKey) PubKey() []byte {
	return k.key.PubKey().SerializeCompressed()
}

// AccAddress returns the raw account address.
func (k *PrivKey) AccAddress() AccAddress {
	return AccAddress(btcutil.Hash160(k.PubKey()))
}

// Address returns the bech32 account address.
func (k *PrivKey) Address(hrp string) (string, error) {
	return AddressFromPubKey(k.PubKey(), hrp)
}

// Info returns the exportable form of the key.
func (k *PrivKey) Info(hrp string) (*KeyInfo, error) {
	addr, err := k.Address(hrp)
	if err != nil {
		return nil, err
	}
	return &KeyInfo{PrivateKey: k.Hex(), Address: addr}, nil
}

// Sign signs SHA256(msg) and returns the 64-byte r||s signature with a
// canonical (low) s.
func (k *PrivKey) Sign(msg []byte) ([]byte, error) {
	sig := ecdsa.SignCompact(k.key, chainhash.HashB(msg), true)
	// Drop the recovery code.
	return sig[1:], nil
}

// VerifySignature checks a 64-byte r||s signature of SHA256(msg) against a
// compressed public key.
func VerifySignature(pubKey, msg, sig []byte) bool {
	if len(sig) != SignatureLength {
		return false
	}
	pub, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	var r, s btcec.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:]) {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(chainhash.HashB(msg), pub)
}
