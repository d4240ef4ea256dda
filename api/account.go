package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GetAccount fetches the account number, sequence and balances of address
func (c *Client) GetAccount(ctx context.Context, address string) (*Account, error) {
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	var acc Account
	if err := c.getJSON(ctx, "account/"+url.PathEscape(address), nil, &acc); err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &acc, nil
}

// GetAccountSequence fetches the current sequence of address
func (c *Client) GetAccountSequence(ctx context.Context, address string) (int64, error) {
	if address == "" {
		return 0, fmt.Errorf("address is required")
	}
	var res struct {
		Sequence int64 `json:"sequence"`
	}
	if err := c.getJSON(ctx, "account/"+url.PathEscape(address)+"/sequence", nil, &res); err != nil {
		return 0, fmt.Errorf("failed to fetch sequence: %w", err)
	}
	return res.Sequence, nil
}

// GetTransaction fetches a transaction by its hash
func (c *Client) GetTransaction(ctx context.Context, hash string) (*TxResult, error) {
	if hash == "" {
		return nil, fmt.Errorf("hash is required")
	}
	var tx TxResult
	q := url.Values{"format": {"json"}}
	if err := c.getJSON(ctx, "tx/"+url.PathEscape(hash), q, &tx); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return &tx, nil
}

// GetTransactions fetches the transaction history of an address
func (c *Client) GetTransactions(ctx context.Context, query TransactionsQuery) (*TxPage, error) {
	if query.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	q := pagination(url.Values{"address": {query.Address}}, query.Limit, query.Offset)
	setInt64(q, "blockHeight", query.BlockHeight)
	setInt64(q, "startTime", query.StartTime)
	setInt64(q, "endTime", query.EndTime)
	setString(q, "side", query.Side)
	setString(q, "txAsset", query.TxAsset)
	setString(q, "txType", query.TxType)

	var page TxPage
	if err := c.getJSON(ctx, "transactions", q, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return &page, nil
}

// GetOpenOrders fetches the open orders of address, optionally of one symbol
func (c *Client) GetOpenOrders(ctx context.Context, address, symbol string) (*OrderList, error) {
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	q := url.Values{"address": {address}}
	setString(q, "symbol", symbol)
	var orders OrderList
	if err := c.getJSON(ctx, "orders/open", q, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch open orders: %w", err)
	}
	return &orders, nil
}

// GetClosedOrders fetches closed orders of an address
func (c *Client) GetClosedOrders(ctx context.Context, query OrdersQuery) (*OrderList, error) {
	if query.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	q := pagination(url.Values{"address": {query.Address}}, query.Limit, query.Offset)
	setString(q, "symbol", query.Symbol)
	setInt64(q, "side", int64(query.Side))
	setInt64(q, "start", query.StartTime)
	setInt64(q, "end", query.EndTime)
	if len(query.Status) != 0 {
		q.Set("status", strings.Join(query.Status, ","))
	}
	if query.Total {
		q.Set("total", "1")
	}

	var orders OrderList
	if err := c.getJSON(ctx, "orders/closed", q, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch closed orders: %w", err)
	}
	return &orders, nil
}

// GetOrder fetches an order by its id
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("order id is required")
	}
	var order Order
	if err := c.getJSON(ctx, "orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

// Broadcast sends signed transaction bytes. With sync the call waits for the
// transaction to pass CheckTx.
func (c *Client) Broadcast(ctx context.Context, txBytes []byte, sync bool) ([]TxCommitResult, error) {
	if len(txBytes) == 0 {
		return nil, fmt.Errorf("empty transaction")
	}
	q := url.Values{"sync": {strconv.FormatBool(sync)}}
	var res []TxCommitResult
	if err := c.postText(ctx, "broadcast", q, hexBody(txBytes), &res); err != nil {
		return nil, fmt.Errorf("failed to broadcast transaction: %w", err)
	}
	return res, nil
}
