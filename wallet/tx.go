package wallet

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/crypto"
	"github.com/wally-yu/binance-dex/transaction"
)

// Broadcaster is the part of the DEX API used to sign and submit transactions.
type Broadcaster interface {
	GetAccount(ctx context.Context, address string) (*api.Account, error)
	Broadcast(ctx context.Context, txBytes []byte, sync bool) ([]api.TxCommitResult, error)
}

// ErrRejected is wrapped by errors for transactions the node didn't accept.
var ErrRejected = errors.New("transaction rejected")

// TxResult describes a broadcast transaction.
type TxResult struct {
	Hash    string
	OrderID string
	Results []api.TxCommitResult
}

// TxOptions are the optional transaction fields.
type TxOptions struct {
	Memo   string
	Source int64
	// Async returns as soon as the node received the transaction.
	Async bool
}

// Transfer sends amount of denom to the recipients.
func (m *Manager) Transfer(ctx context.Context, client Broadcaster, transfers []transaction.Transfer, opts TxOptions) (*TxResult, error) {
	return m.broadcast(ctx, client, opts, func(from string, _ *api.Account) (transaction.Msg, string, error) {
		return transaction.NewSendMsg(from, transfers...), "", nil
	})
}

// PlaceOrder submits a limit order. The result carries the generated order ID.
func (m *Manager) PlaceOrder(ctx context.Context, client Broadcaster, symbol string, side int8, price, quantity int64, tif int8, opts TxOptions) (*TxResult, error) {
	return m.broadcast(ctx, client, opts, func(from string, acc *api.Account) (transaction.Msg, string, error) {
		msg, err := transaction.NewOrder(from, acc.Sequence, symbol, side, price, quantity, tif)
		if err != nil {
			return nil, "", err
		}
		return msg, msg.ID, nil
	})
}

// CancelOrder cancels the open order refID on symbol.
func (m *Manager) CancelOrder(ctx context.Context, client Broadcaster, symbol, refID string, opts TxOptions) (*TxResult, error) {
	return m.broadcast(ctx, client, opts, func(from string, _ *api.Account) (transaction.Msg, string, error) {
		return transaction.NewCancelOrder(from, symbol, refID), "", nil
	})
}

// Freeze moves amount of symbol to the frozen balance.
func (m *Manager) Freeze(ctx context.Context, client Broadcaster, symbol string, amount int64, opts TxOptions) (*TxResult, error) {
	return m.broadcast(ctx, client, opts, func(from string, _ *api.Account) (transaction.Msg, string, error) {
		return transaction.NewFreeze(from, symbol, amount), "", nil
	})
}

// Unfreeze moves amount of symbol back to the free balance.
func (m *Manager) Unfreeze(ctx context.Context, client Broadcaster, symbol string, amount int64, opts TxOptions) (*TxResult, error) {
	return m.broadcast(ctx, client, opts, func(from string, _ *api.Account) (transaction.Msg, string, error) {
		return transaction.NewUnfreeze(from, symbol, amount), "", nil
	})
}

// Vote casts option on a governance proposal.
func (m *Manager) Vote(ctx context.Context, client Broadcaster, proposalID int64, option int8, opts TxOptions) (*TxResult, error) {
	return m.broadcast(ctx, client, opts, func(from string, _ *api.Account) (transaction.Msg, string, error) {
		return transaction.NewVote(from, proposalID, option), "", nil
	})
}

type msgBuilder func(from string, acc *api.Account) (transaction.Msg, string, error)

// broadcast signs the message built for the current account state with the
// selected key and submits it.
func (m *Manager) broadcast(ctx context.Context, client Broadcaster, opts TxOptions, build msgBuilder) (*TxResult, error) {
	key, err := m.Key(m.index)
	if err != nil {
		return nil, err
	}
	from, err := key.Address(m.params.HRP)
	if err != nil {
		return nil, err
	}
	acc, err := client.GetAccount(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", from, err)
	}
	msg, orderID, err := build(from, acc)
	if err != nil {
		return nil, err
	}
	txBytes, err := m.sign(key, acc, msg, opts)
	if err != nil {
		return nil, err
	}

	hash := transaction.Hash(txBytes)
	m.log.Debug("broadcasting transaction",
		zap.String("type", msg.Type()),
		zap.String("from", from),
		zap.Int64("sequence", acc.Sequence),
		zap.String("hash", hash))
	results, err := client.Broadcast(ctx, txBytes, !opts.Async)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		if !r.OK {
			return nil, fmt.Errorf("%w: code %d: %s", ErrRejected, r.Code, r.Log)
		}
		if r.Hash != "" {
			hash = r.Hash
		}
	}
	m.log.Info("transaction broadcast", zap.String("type", msg.Type()), zap.String("hash", hash))
	return &TxResult{Hash: hash, OrderID: orderID, Results: results}, nil
}

func (m *Manager) sign(key *crypto.PrivKey, acc *api.Account, msg transaction.Msg, opts TxOptions) ([]byte, error) {
	signMsg := transaction.StdSignMsg{
		ChainID:       m.params.ChainID,
		AccountNumber: acc.AccountNumber,
		Sequence:      acc.Sequence,
		Memo:          opts.Memo,
		Source:        opts.Source,
		Msgs:          []transaction.Msg{msg},
	}
	_, txBytes, err := transaction.Sign(key, signMsg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s: %w", msg.Type(), err)
	}
	return txBytes, nil
}
