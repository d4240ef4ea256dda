package rpc

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/wally-yu/binance-dex/api"
)

// int64 values are sent as decimal strings and byte values as base64, the
// node rejects plain JSON numbers for 64-bit parameters.
func int64Param(v int64) string {
	return strconv.FormatInt(v, 10)
}

func bytesParam(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// heightParams returns params with height set unless it's nil, which means
// the latest block.
func heightParams(height *int64) map[string]interface{} {
	params := map[string]interface{}{}
	if height != nil {
		params["height"] = int64Param(*height)
	}
	return params
}

// ABCIInfo returns information about the application.
func (c *Client) ABCIInfo(ctx context.Context) (*ABCIInfo, error) {
	var resp = new(ABCIInfo)
	if err := c.performRequest(ctx, "abci_info", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ABCIQuery queries the application store at path. A zero height queries the
// latest state.
func (c *Client) ABCIQuery(ctx context.Context, path string, data []byte, height int64, prove bool) (*ABCIQuery, error) {
	params := map[string]interface{}{
		"path":  path,
		"data":  hex.EncodeToString(data),
		"prove": prove,
	}
	if height != 0 {
		params["height"] = int64Param(height)
	}
	var resp = new(ABCIQuery)
	if err := c.performRequest(ctx, "abci_query", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Block returns the block at height, the latest one if height is nil.
func (c *Client) Block(ctx context.Context, height *int64) (*Block, error) {
	var resp = new(Block)
	if err := c.performRequest(ctx, "block", heightParams(height), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BlockResults returns the transaction results of the block at height.
func (c *Client) BlockResults(ctx context.Context, height *int64) (*BlockResults, error) {
	var resp = new(BlockResults)
	if err := c.performRequest(ctx, "block_results", heightParams(height), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BlockchainInfo returns block metas between minHeight and maxHeight
// inclusive, at most 20 of them.
func (c *Client) BlockchainInfo(ctx context.Context, minHeight, maxHeight int64) (*BlockchainInfo, error) {
	params := map[string]interface{}{
		"minHeight": int64Param(minHeight),
		"maxHeight": int64Param(maxHeight),
	}
	var resp = new(BlockchainInfo)
	if err := c.performRequest(ctx, "blockchain", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BroadcastTxAsync submits tx and returns without waiting for CheckTx.
func (c *Client) BroadcastTxAsync(ctx context.Context, tx []byte) (*BroadcastTx, error) {
	return c.broadcast(ctx, "broadcast_tx_async", tx)
}

// BroadcastTxSync submits tx and returns the CheckTx result.
func (c *Client) BroadcastTxSync(ctx context.Context, tx []byte) (*BroadcastTx, error) {
	return c.broadcast(ctx, "broadcast_tx_sync", tx)
}

func (c *Client) broadcast(ctx context.Context, method string, tx []byte) (*BroadcastTx, error) {
	var resp = new(BroadcastTx)
	if err := c.performRequest(ctx, method, map[string]interface{}{"tx": bytesParam(tx)}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BroadcastTxCommit submits tx and waits for it to be included in a block.
func (c *Client) BroadcastTxCommit(ctx context.Context, tx []byte) (*BroadcastTxCommit, error) {
	var resp = new(BroadcastTxCommit)
	if err := c.performRequest(ctx, "broadcast_tx_commit", map[string]interface{}{"tx": bytesParam(tx)}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Commit returns the signed header of the block at height.
func (c *Client) Commit(ctx context.Context, height *int64) (*Commit, error) {
	var resp = new(Commit)
	if err := c.performRequest(ctx, "commit", heightParams(height), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ConsensusParams returns the consensus parameters at height.
func (c *Client) ConsensusParams(ctx context.Context, height *int64) (*ConsensusParams, error) {
	var resp = new(ConsensusParams)
	if err := c.performRequest(ctx, "consensus_params", heightParams(height), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ConsensusState returns the current round state.
func (c *Client) ConsensusState(ctx context.Context) (*ConsensusState, error) {
	var resp = new(ConsensusState)
	if err := c.performRequest(ctx, "consensus_state", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DumpConsensusState returns the full round state with peer states.
func (c *Client) DumpConsensusState(ctx context.Context) (*ConsensusState, error) {
	var resp = new(ConsensusState)
	if err := c.performRequest(ctx, "dump_consensus_state", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Genesis returns the genesis document.
func (c *Client) Genesis(ctx context.Context) (*Genesis, error) {
	var resp = new(Genesis)
	if err := c.performRequest(ctx, "genesis", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// NetInfo returns the network state of the node.
func (c *Client) NetInfo(ctx context.Context) (*NetInfo, error) {
	var resp = new(NetInfo)
	if err := c.performRequest(ctx, "net_info", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// NumUnconfirmedTxs returns the mempool size.
func (c *Client) NumUnconfirmedTxs(ctx context.Context) (*UnconfirmedTxs, error) {
	var resp = new(UnconfirmedTxs)
	if err := c.performRequest(ctx, "num_unconfirmed_txs", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UnconfirmedTxs returns up to limit mempool transactions.
func (c *Client) UnconfirmedTxs(ctx context.Context, limit int) (*UnconfirmedTxs, error) {
	params := map[string]interface{}{}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	var resp = new(UnconfirmedTxs)
	if err := c.performRequest(ctx, "unconfirmed_txs", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Status returns the node info, sync info and validator info of the node.
func (c *Client) Status(ctx context.Context) (*api.ResultStatus, error) {
	var resp = new(api.ResultStatus)
	if err := c.performRequest(ctx, "status", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Tx returns a committed transaction by its hash.
func (c *Client) Tx(ctx context.Context, hash []byte, prove bool) (*Tx, error) {
	params := map[string]interface{}{
		"hash":  bytesParam(hash),
		"prove": prove,
	}
	var resp = new(Tx)
	if err := c.performRequest(ctx, "tx", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TxSearch returns transactions matching query, e.g. "tx.height=5".
func (c *Client) TxSearch(ctx context.Context, query string, prove bool, page, perPage int) (*TxSearch, error) {
	params := map[string]interface{}{
		"query": query,
		"prove": prove,
	}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if perPage > 0 {
		params["per_page"] = strconv.Itoa(perPage)
	}
	var resp = new(TxSearch)
	if err := c.performRequest(ctx, "tx_search", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Validators returns the validator set at height, the latest if nil.
func (c *Client) Validators(ctx context.Context, height *int64) (*api.Validators, error) {
	var resp = new(api.Validators)
	if err := c.performRequest(ctx, "validators", heightParams(height), resp); err != nil {
		return nil, err
	}
	return resp, nil
}
