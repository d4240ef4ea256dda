package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/config"
	"github.com/wally-yu/binance-dex/stream"
	"github.com/wally-yu/binance-dex/transaction"
)

const (
	addr1 = "tbnb1rxhz5vdv4fvdjye8gxqvfv0yvg20jtlw8qq48u"
	addr2 = "tbnb13ajdzjhcczjg7mh60mc0d4dsqhj2q0xsyl3xnk"
)

func TestParseTransfers(t *testing.T) {
	transfers, err := parseTransfers([]string{addr1, "1.5", "bnb", addr2, "0.00000001", "NNB-338"}, api.TestnetHRP)
	require.NoError(t, err)
	require.Equal(t, []transaction.Transfer{
		{To: addr1, Coins: transaction.Coins{{Denom: "BNB", Amount: 150000000}}},
		{To: addr2, Coins: transaction.Coins{{Denom: "NNB-338", Amount: 1}}},
	}, transfers)

	_, err = parseTransfers([]string{addr1, "1.5", "BNB"}, api.MainnetHRP)
	require.Error(t, err)
	_, err = parseTransfers([]string{addr1, "0.000000001", "BNB"}, api.TestnetHRP)
	require.Error(t, err)
	_, err = parseTransfers([]string{addr1, "-1", "BNB"}, api.TestnetHRP)
	require.Error(t, err)
}

func TestStreamURL(t *testing.T) {
	params, err := api.Params(api.NetworkTestnet)
	require.NoError(t, err)
	env.params = params
	s := stream.NewStreams("wss://testnet-dex.binance.org/api/ws")
	streamInterval = "15m"

	testCases := map[string]struct {
		topic string
		args  []string
		url   string
	}{
		"account":     {"account", []string{addr1}, "wss://testnet-dex.binance.org/api/ws/" + addr1},
		"trades":      {"trades", []string{"NNB-338_BNB"}, "wss://testnet-dex.binance.org/api/ws/NNB-338_BNB@trades"},
		"diff":        {"marketDiff", []string{"NNB-338_BNB"}, "wss://testnet-dex.binance.org/api/ws/NNB-338_BNB@marketDiff"},
		"kline":       {"kline", []string{"NNB-338_BNB"}, "wss://testnet-dex.binance.org/api/ws/NNB-338_BNB@kline_15m"},
		"allTickers":  {"allTickers", nil, "wss://testnet-dex.binance.org/api/ws/$all@allTickers"},
		"blockheight": {"blockheight", nil, "wss://testnet-dex.binance.org/api/ws/$all@blockheight"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			url, err := streamURL(s, tc.topic, tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.url, url)
		})
	}

	_, err = streamURL(s, "trades", nil)
	require.Error(t, err)
	_, err = streamURL(s, "account", []string{"bnb1rxhz5vdv4fvdjye8gxqvfv0yvg20jtlwf4f38d"})
	require.Error(t, err)
	_, err = streamURL(s, "candles", []string{"NNB-338_BNB"})
	require.Error(t, err)

	streamInterval = "7m"
	_, err = streamURL(s, "kline", []string{"NNB-338_BNB"})
	require.Error(t, err)
}

func TestApplyNetworkFlag(t *testing.T) {
	cfg := config.Default()
	cfg.APIURL = "https://my-dex.example.com"
	cfg.NodeURL = "https://my-node.example.com:443"

	require.NoError(t, applyNetworkFlag(&cfg, ""))
	require.NoError(t, applyNetworkFlag(&cfg, "Mainnet"))
	require.Equal(t, api.NetworkMainnet, cfg.Network)
	require.Equal(t, "https://my-dex.example.com", cfg.APIURL)
	require.Equal(t, "https://my-node.example.com:443", cfg.NodeURL)

	require.NoError(t, applyNetworkFlag(&cfg, "TESTNET"))
	require.Equal(t, api.NetworkTestnet, cfg.Network)
	require.Equal(t, api.TestnetAPIURL, cfg.APIURL)
	require.Empty(t, cfg.NodeURL)

	require.Error(t, applyNetworkFlag(&cfg, "devnet"))
}
