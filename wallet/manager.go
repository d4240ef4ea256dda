// Package wallet keeps the encrypted mnemonic on disk, unlocks it for a
// limited session and signs DEX transactions with the derived keys.
package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/crypto"
)

const (
	// VaultFile is the encrypted mnemonic inside the wallet directory.
	VaultFile = "wallet.vault"
	// SessionFile keeps the unlocked mnemonic until it expires.
	SessionFile = "session.json"

	// SessionDuration is how long an unlock lasts.
	SessionDuration = 30 * time.Minute

	// MinPasswordLength is the shortest accepted vault password.
	MinPasswordLength = 8
)

var (
	// ErrLocked is returned by operations needing keys when no session is active.
	ErrLocked = errors.New("wallet is locked")
	// ErrNoWallet is returned when the vault file doesn't exist.
	ErrNoWallet = errors.New("no wallet found")
	// ErrWalletExists is returned when creating over an existing vault.
	ErrWalletExists = errors.New("wallet already exists")
)

// SessionData holds the wallet session information.
type SessionData struct {
	Token      string    `json:"token"`
	Mnemonic   string    `json:"mnemonic"`
	Passphrase string    `json:"passphrase,omitempty"`
	Expiration time.Time `json:"expiration"`
	Network    string    `json:"network"`
}

// Options configure a Manager.
type Options struct {
	// AccountIndex selects the key used for signing (m/44'/714'/0'/0/index).
	AccountIndex uint32
	Logger       *zap.Logger
}

// Manager handles the vault, the session and key derivation for one network.
type Manager struct {
	vaultPath   string
	sessionPath string
	params      api.NetworkParams
	index       uint32
	log         *zap.Logger

	mu         sync.Mutex
	vault      *crypto.Vault
	mnemonic   string
	passphrase string
	unlocked   bool
	now        func() time.Time
}

// NewManager creates a wallet manager keeping its files in dir.
func NewManager(dir string, params api.NetworkParams, opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		vaultPath:   filepath.Join(dir, VaultFile),
		sessionPath: filepath.Join(dir, SessionFile),
		params:      params,
		index:       opts.AccountIndex,
		log:         log,
		now:         time.Now,
	}
}

// Params returns the network the manager signs for.
func (m *Manager) Params() api.NetworkParams {
	return m.params
}

// VaultExists checks whether a wallet was created.
func (m *Manager) VaultExists() bool {
	_, err := os.Stat(m.vaultPath)
	return err == nil
}

// Initialize creates a new wallet with a fresh 24-word mnemonic and returns it.
func (m *Manager) Initialize(password string) (string, error) {
	mnemonic, err := crypto.NewMnemonic()
	if err != nil {
		return "", err
	}
	if err := m.Import(mnemonic, "", password); err != nil {
		return "", err
	}
	return mnemonic, nil
}

// Import stores an existing mnemonic and optional BIP39 passphrase in a new
// vault and unlocks it.
func (m *Manager) Import(mnemonic, passphrase, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.VaultExists() {
		return ErrWalletExists
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	vault, err := crypto.NewVault(mnemonic, passphrase, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}
	if err := m.saveVault(vault); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	m.vault = vault
	m.setUnlocked(mnemonic, passphrase)
	if err := m.createSession(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	m.log.Info("wallet created", zap.String("network", m.params.Name))
	return nil
}

// Unlock decrypts the vault and starts a new session.
func (m *Manager) Unlock(password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadSession() {
		return nil
	}
	if m.vault == nil {
		vault, err := m.loadVault()
		if err != nil {
			return err
		}
		m.vault = vault
	}
	mnemonic, passphrase, err := m.vault.Open(password)
	if err != nil {
		return err
	}
	m.setUnlocked(mnemonic, passphrase)
	if err := m.createSession(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	m.log.Debug("wallet unlocked", zap.Duration("session", SessionDuration))
	return nil
}

// Lock clears the keys from memory and removes the session.
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unlocked = false
	m.mnemonic = ""
	m.passphrase = ""
	m.clearSession()
}

// IsUnlocked returns whether a session is active.
func (m *Manager) IsUnlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ensureUnlocked() == nil
}

// Mnemonic returns the unlocked recovery phrase.
func (m *Manager) Mnemonic() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureUnlocked(); err != nil {
		return "", err
	}
	return m.mnemonic, nil
}

// Key derives the key at m/44'/714'/0'/0/index.
func (m *Manager) Key(index uint32) (*crypto.PrivKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureUnlocked(); err != nil {
		return nil, err
	}
	return crypto.KeyFromMnemonicPath(m.mnemonic, m.passphrase, crypto.AccountPath(index))
}

// Address returns the network address of the key at index.
func (m *Manager) Address(index uint32) (string, error) {
	key, err := m.Key(index)
	if err != nil {
		return "", err
	}
	return key.Address(m.params.HRP)
}

func (m *Manager) setUnlocked(mnemonic, passphrase string) {
	m.mnemonic = mnemonic
	m.passphrase = passphrase
	m.unlocked = true
}

func (m *Manager) ensureUnlocked() error {
	if m.unlocked && m.mnemonic != "" {
		return nil
	}
	if m.loadSession() {
		return nil
	}
	return ErrLocked
}

func generateSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

func (m *Manager) createSession() error {
	token, err := generateSessionToken()
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}
	session := SessionData{
		Token:      token,
		Mnemonic:   m.mnemonic,
		Passphrase: m.passphrase,
		Expiration: m.now().Add(SessionDuration),
		Network:    m.params.Name,
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(m.sessionPath, data, 0600)
}

// loadSession restores the keys from a valid session of the same network.
// Corrupted or expired sessions are removed.
func (m *Manager) loadSession() bool {
	data, err := os.ReadFile(m.sessionPath)
	if err != nil {
		return false
	}
	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		m.clearSession()
		return false
	}
	if m.now().After(session.Expiration) {
		m.log.Debug("session expired", zap.Time("expiration", session.Expiration))
		m.clearSession()
		return false
	}
	if session.Network != m.params.Name || !crypto.ValidateMnemonic(session.Mnemonic) {
		return false
	}
	m.setUnlocked(session.Mnemonic, session.Passphrase)
	return true
}

func (m *Manager) clearSession() {
	if err := os.Remove(m.sessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		m.log.Warn("failed to remove session", zap.Error(err))
	}
}

func (m *Manager) saveVault(vault *crypto.Vault) error {
	if err := os.MkdirAll(filepath.Dir(m.vaultPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(vault, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.vaultPath, data, 0600)
}

func (m *Manager) loadVault() (*crypto.Vault, error) {
	data, err := os.ReadFile(m.vaultPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoWallet
		}
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}
	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrCorruptedVault, err)
	}
	return &vault, nil
}
