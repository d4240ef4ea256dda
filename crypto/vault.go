package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"golang.org/x/crypto/scrypt"
)

// scrypt parameters for new vaults.
const (
	ScryptN = 1 << 15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32

	vaultVersion = 2

	maxScryptN = 1 << 20
)

var (
	// ErrWrongPassword is returned when a vault can't be opened.
	ErrWrongPassword = errors.New("wrong password or corrupted vault")
	// ErrCorruptedVault is returned when the stored vault is malformed.
	ErrCorruptedVault = errors.New("corrupted vault")
)

// Vault is an encrypted mnemonic as stored on disk.
type Vault struct {
	Version int    `json:"version"`
	N       int    `json:"n"`
	R       int    `json:"r"`
	P       int    `json:"p"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	Data    []byte `json:"data"`
}

type vaultPayload struct {
	Mnemonic   string `json:"mnemonic"`
	Passphrase string `json:"passphrase,omitempty"`
}

// NewVault encrypts the mnemonic and its BIP39 passphrase with a key derived
// from password.
func NewVault(mnemonic, passphrase, password string) (*Vault, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	v := &Vault{Version: vaultVersion, N: ScryptN, R: ScryptR, P: ScryptP, Salt: salt}

	key, err := v.deriveKey(password)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	data, err := json.Marshal(vaultPayload{Mnemonic: normalizeMnemonic(mnemonic), Passphrase: passphrase})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}
	defer clearBytes(data)

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	v.Nonce = make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, v.Nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	v.Data = aead.Seal(nil, v.Nonce, data, nil)
	return v, nil
}

// Open decrypts the vault and returns the mnemonic and passphrase.
func (v *Vault) Open(password string) (string, string, error) {
	if err := v.validate(); err != nil {
		return "", "", err
	}
	key, err := v.deriveKey(password)
	if err != nil {
		return "", "", err
	}
	defer clearBytes(key)

	aead, err := newGCM(key)
	if err != nil {
		return "", "", err
	}
	if len(v.Nonce) != aead.NonceSize() {
		return "", "", fmt.Errorf("%w: nonce is %d bytes", ErrCorruptedVault, len(v.Nonce))
	}
	plain, err := aead.Open(nil, v.Nonce, v.Data, nil)
	if err != nil {
		return "", "", ErrWrongPassword
	}
	defer clearBytes(plain)

	var p vaultPayload
	if err := json.Unmarshal(plain, &p); err != nil {
		return "", "", fmt.Errorf("failed to deserialize vault data: %w", err)
	}
	return p.Mnemonic, p.Passphrase, nil
}

// ValidatePassword reports whether password opens the vault.
func (v *Vault) ValidatePassword(password string) bool {
	_, _, err := v.Open(password)
	return err == nil
}

// validate rejects scrypt parameters that are invalid or would take too long
// to derive a key with.
func (v *Vault) validate() error {
	switch {
	case v.N <= 1 || v.N > maxScryptN || v.N&(v.N-1) != 0:
		return fmt.Errorf("%w: invalid scrypt N %d", ErrCorruptedVault, v.N)
	case v.R <= 0 || v.P <= 0 || v.R*v.P >= 1<<30:
		return fmt.Errorf("%w: invalid scrypt r=%d p=%d", ErrCorruptedVault, v.R, v.P)
	case len(v.Salt) == 0:
		return fmt.Errorf("%w: missing salt", ErrCorruptedVault)
	}
	return nil
}

func (v *Vault) deriveKey(password string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), v.Salt, v.N, v.R, v.P, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
