package api

import "fmt"

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// DEX endpoints
const (
	// mainnet
	MainnetAPIURL  = "https://dex.binance.org"
	MainnetWSURL   = "wss://dex.binance.org/api/ws"
	MainnetChainID = "Binance-Chain-Tigris"
	MainnetHRP     = "bnb"

	// testnet
	TestnetAPIURL  = "https://testnet-dex.binance.org"
	TestnetWSURL   = "wss://testnet-dex.binance.org/api/ws"
	TestnetChainID = "Binance-Chain-Ganges"
	TestnetHRP     = "tbnb"
)

// NetworkParams groups the endpoints and chain parameters of a network.
type NetworkParams struct {
	Name    string
	APIURL  string
	WSURL   string
	ChainID string
	HRP     string
}

// Params returns the parameters of the named network.
func Params(network string) (NetworkParams, error) {
	switch network {
	case NetworkMainnet:
		return NetworkParams{
			Name:    NetworkMainnet,
			APIURL:  MainnetAPIURL,
			WSURL:   MainnetWSURL,
			ChainID: MainnetChainID,
			HRP:     MainnetHRP,
		}, nil
	case NetworkTestnet:
		return NetworkParams{
			Name:    NetworkTestnet,
			APIURL:  TestnetAPIURL,
			WSURL:   TestnetWSURL,
			ChainID: TestnetChainID,
			HRP:     TestnetHRP,
		}, nil
	}
	return NetworkParams{}, fmt.Errorf("unknown network %q", network)
}
