package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/crypto"
	"github.com/wally-yu/binance-dex/transaction"
)

const testAddress = "tbnb1rxhz5vdv4fvdjye8gxqvfv0yvg20jtlw8qq48u"

type fakeBroadcaster struct {
	account  api.Account
	results  []api.TxCommitResult
	err      error
	txBytes  []byte
	sync     bool
	accounts []string
}

func (f *fakeBroadcaster) GetAccount(_ context.Context, address string) (*api.Account, error) {
	f.accounts = append(f.accounts, address)
	acc := f.account
	return &acc, nil
}

func (f *fakeBroadcaster) Broadcast(_ context.Context, txBytes []byte, sync bool) ([]api.TxCommitResult, error) {
	f.txBytes = txBytes
	f.sync = sync
	return f.results, f.err
}

func newFake() *fakeBroadcaster {
	return &fakeBroadcaster{
		account: api.Account{AccountNumber: 12, Address: testAddress, Sequence: 7},
		results: []api.TxCommitResult{{OK: true}},
	}
}

// expectedTx signs msg the same way the manager should.
func expectedTx(t *testing.T, msg transaction.Msg, memo string) []byte {
	key, err := crypto.KeyFromMnemonic(testMnemonic, "")
	require.NoError(t, err)
	_, txBytes, err := transaction.Sign(key, transaction.StdSignMsg{
		ChainID:       api.TestnetChainID,
		AccountNumber: 12,
		Sequence:      7,
		Memo:          memo,
		Msgs:          []transaction.Msg{msg},
	})
	require.NoError(t, err)
	return txBytes
}

func TestTransactions(t *testing.T) {
	const to = "tbnb13ajdzjhcczjg7mh60mc0d4dsqhj2q0xsyl3xnk"
	coins := transaction.NewCoins(transaction.Coin{Denom: "BNB", Amount: 100000000})
	orderID := transaction.GenerateOrderID(crypto.AccAddress{0x19, 0xae, 0x2a, 0x31, 0xac, 0xaa, 0x58, 0xd9, 0x13, 0x27,
		0x41, 0x80, 0xc4, 0xb1, 0xe4, 0x62, 0x14, 0xf9, 0x2f, 0xee}, 7)

	testCases := map[string]struct {
		invoke  func(m *Manager, b Broadcaster) (*TxResult, error)
		msg     transaction.Msg
		memo    string
		orderID string
	}{
		"Transfer": {
			invoke: func(m *Manager, b Broadcaster) (*TxResult, error) {
				return m.Transfer(context.Background(), b, []transaction.Transfer{{To: to, Coins: coins}}, TxOptions{Memo: "hi"})
			},
			msg:  transaction.NewSendMsg(testAddress, transaction.Transfer{To: to, Coins: coins}),
			memo: "hi",
		},
		"PlaceOrder": {
			invoke: func(m *Manager, b Broadcaster) (*TxResult, error) {
				return m.PlaceOrder(context.Background(), b, "NNB-338_BNB", transaction.SideBuy, 100000000, 200000000,
					transaction.TimeInForceGTE, TxOptions{})
			},
			msg: transaction.NewOrderMsg{
				ID:          orderID,
				OrderType:   transaction.OrderTypeLimit,
				Price:       100000000,
				Quantity:    200000000,
				Sender:      testAddress,
				Side:        transaction.SideBuy,
				Symbol:      "NNB-338_BNB",
				TimeInForce: transaction.TimeInForceGTE,
			},
			orderID: orderID,
		},
		"CancelOrder": {
			invoke: func(m *Manager, b Broadcaster) (*TxResult, error) {
				return m.CancelOrder(context.Background(), b, "NNB-338_BNB", orderID, TxOptions{})
			},
			msg: transaction.NewCancelOrder(testAddress, "NNB-338_BNB", orderID),
		},
		"Freeze": {
			invoke: func(m *Manager, b Broadcaster) (*TxResult, error) {
				return m.Freeze(context.Background(), b, "BNB", 5000, TxOptions{})
			},
			msg: transaction.NewFreeze(testAddress, "BNB", 5000),
		},
		"Unfreeze": {
			invoke: func(m *Manager, b Broadcaster) (*TxResult, error) {
				return m.Unfreeze(context.Background(), b, "BNB", 5000, TxOptions{})
			},
			msg: transaction.NewUnfreeze(testAddress, "BNB", 5000),
		},
		"Vote": {
			invoke: func(m *Manager, b Broadcaster) (*TxResult, error) {
				return m.Vote(context.Background(), b, 3, transaction.VoteYes, TxOptions{})
			},
			msg: transaction.NewVote(testAddress, 3, transaction.VoteYes),
		},
	}

	m, _ := newTestManager(t)
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			b := newFake()
			res, err := tc.invoke(m, b)
			require.NoError(t, err)

			expected := expectedTx(t, tc.msg, tc.memo)
			assert.Equal(t, []string{testAddress}, b.accounts)
			assert.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(b.txBytes))
			assert.True(t, b.sync)
			assert.Equal(t, transaction.Hash(expected), res.Hash)
			assert.Equal(t, tc.orderID, res.OrderID)
		})
	}
}

func TestTransactionRejected(t *testing.T) {
	m, _ := newTestManager(t)

	b := newFake()
	b.results = []api.TxCommitResult{{OK: false, Code: 65546, Log: "insufficient fund"}}
	_, err := m.Freeze(context.Background(), b, "BNB", 1, TxOptions{Async: true})
	require.ErrorIs(t, err, ErrRejected)
	require.Contains(t, err.Error(), "insufficient fund")
	require.False(t, b.sync)

	b = newFake()
	b.err = errors.New("boom")
	_, err = m.Freeze(context.Background(), b, "BNB", 1, TxOptions{})
	require.Error(t, err)

	// Invalid messages never reach the node.
	b = newFake()
	_, err = m.Freeze(context.Background(), b, "BNB", 0, TxOptions{})
	require.Error(t, err)
	require.Nil(t, b.txBytes)

	m.Lock()
	_, err = m.Freeze(context.Background(), newFake(), "BNB", 1, TxOptions{})
	require.ErrorIs(t, err, ErrLocked)
}

func TestAccountIndex(t *testing.T) {
	_, dir := newTestManager(t)
	m := NewManager(dir, testParams(t), Options{AccountIndex: 1})

	b := newFake()
	_, err := m.Vote(context.Background(), b, 1, transaction.VoteNo, TxOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"tbnb13ajdzjhcczjg7mh60mc0d4dsqhj2q0xsyl3xnk"}, b.accounts)
}

func TestTransferOverAPI(t *testing.T) {
	const hash = "8B4B1E1F8A0B5F4B6A2C4C9A3F0F3C0E2D6D1E7B5A9C8D7E6F5A4B3C2D1E0F9A"
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/v1/account/" + testAddress:
			_, _ = w.Write([]byte(`{"account_number":12,"address":"` + testAddress + `","balances":[],"public_key":[],"sequence":7}`))
		case "/api/v1/broadcast":
			assert.Equal(t, "sync=true", req.URL.RawQuery)
			b, _ := io.ReadAll(req.Body)
			body = string(b)
			_, _ = w.Write([]byte(`[{"code":0,"hash":"` + hash + `","log":"Msg 0: ","data":"","ok":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client, err := api.NewClient(srv.URL, api.Options{})
	require.NoError(t, err)
	m, _ := newTestManager(t)

	res, err := m.Freeze(context.Background(), client, "BNB", 100, TxOptions{})
	require.NoError(t, err)
	require.Equal(t, hash, res.Hash)
	require.Equal(t, hex.EncodeToString(expectedTx(t, transaction.NewFreeze(testAddress, "BNB", 100), "")), body)
}
