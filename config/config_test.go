package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wally-yu/binance-dex/api"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, api.MainnetAPIURL, cfg.APIURL)
	require.Equal(t, api.MainnetChainID, cfg.ChainID)
	require.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`network: testnet
api-url: http://localhost:8080
node-url: https://data-seed-pre-0-s1.binance.org:443
timeout: 5s
log:
  level: debug
  file-name: /tmp/bnbdex.log
  max-size: 10
  compress: true
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, api.NetworkTestnet, cfg.Network)
	require.Equal(t, "http://localhost:8080", cfg.APIURL)
	require.Equal(t, api.TestnetWSURL, cfg.WSURL)
	require.Equal(t, api.TestnetChainID, cfg.ChainID)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 10, cfg.Log.MaxSize)
	require.True(t, cfg.Log.Compress)

	p, err := cfg.Params()
	require.NoError(t, err)
	require.Equal(t, api.TestnetHRP, p.HRP)
	require.Equal(t, "http://localhost:8080", p.APIURL)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network: [unterminated"), 0600))
	_, err := Load(path)
	require.Error(t, err)

	path = filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network: devnet\n"), 0600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestSaveAndSetNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)
	cfg := Default()
	cfg.NodeURL = "https://dataseed1.binance.org:443"
	require.NoError(t, cfg.SetNetwork(api.NetworkTestnet))
	require.Equal(t, api.TestnetAPIURL, cfg.APIURL)
	require.Equal(t, api.TestnetChainID, cfg.ChainID)
	require.Empty(t, cfg.NodeURL)
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	require.Error(t, cfg.SetNetwork("devnet"))
}
