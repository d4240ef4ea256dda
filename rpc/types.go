package rpc

import (
	json "github.com/goccy/go-json"

	"github.com/wally-yu/binance-dex/api"
)

// ABCIInfo is the application info of a node.
type ABCIInfo struct {
	Response struct {
		Data             string    `json:"data"`
		Version          string    `json:"version"`
		AppVersion       api.Int64 `json:"app_version"`
		LastBlockHeight  api.Int64 `json:"last_block_height"`
		LastBlockAppHash []byte    `json:"last_block_app_hash"`
	} `json:"response"`
}

// ABCIQueryResponse is the answer of the application to a store query.
type ABCIQueryResponse struct {
	Code      uint32          `json:"code"`
	Log       string          `json:"log"`
	Info      string          `json:"info"`
	Index     api.Int64       `json:"index"`
	Key       []byte          `json:"key"`
	Value     []byte          `json:"value"`
	Proof     json.RawMessage `json:"proof,omitempty"`
	Height    api.Int64       `json:"height"`
	Codespace string          `json:"codespace"`
}

// ABCIQuery is the result of abci_query.
type ABCIQuery struct {
	Response ABCIQueryResponse `json:"response"`
}

// Block is the result of block. Block contents are kept raw.
type Block struct {
	BlockMeta json.RawMessage `json:"block_meta"`
	Block     json.RawMessage `json:"block"`
}

// BlockResults is the result of block_results.
type BlockResults struct {
	Height  api.Int64       `json:"height"`
	Results json.RawMessage `json:"results"`
}

// BlockchainInfo is the result of blockchain.
type BlockchainInfo struct {
	LastHeight api.Int64         `json:"last_height"`
	BlockMetas []json.RawMessage `json:"block_metas"`
}

// BroadcastTx is the result of broadcast_tx_async and broadcast_tx_sync.
type BroadcastTx struct {
	Code uint32 `json:"code"`
	Data []byte `json:"data"`
	Log  string `json:"log"`
	Hash string `json:"hash"`
}

// TxResponse is the outcome of checking or delivering a transaction.
type TxResponse struct {
	Code      uint32          `json:"code"`
	Data      []byte          `json:"data"`
	Log       string          `json:"log"`
	Info      string          `json:"info"`
	GasWanted api.Int64       `json:"gas_wanted"`
	GasUsed   api.Int64       `json:"gas_used"`
	Tags      json.RawMessage `json:"tags,omitempty"`
	Codespace string          `json:"codespace"`
}

// BroadcastTxCommit is the result of broadcast_tx_commit.
type BroadcastTxCommit struct {
	CheckTx   TxResponse `json:"check_tx"`
	DeliverTx TxResponse `json:"deliver_tx"`
	Hash      string     `json:"hash"`
	Height    api.Int64  `json:"height"`
}

// Commit is the result of commit.
type Commit struct {
	SignedHeader json.RawMessage `json:"signed_header"`
	Canonical    bool            `json:"canonical"`
}

// ConsensusParams is the result of consensus_params.
type ConsensusParams struct {
	BlockHeight     api.Int64       `json:"block_height"`
	ConsensusParams json.RawMessage `json:"consensus_params"`
}

// ConsensusState is the result of consensus_state and dump_consensus_state,
// Peers is set by the latter only.
type ConsensusState struct {
	RoundState json.RawMessage `json:"round_state"`
	Peers      json.RawMessage `json:"peers,omitempty"`
}

// Genesis is the result of genesis.
type Genesis struct {
	Genesis json.RawMessage `json:"genesis"`
}

// NetPeer is a connected peer of a node.
type NetPeer struct {
	NodeInfo         api.NodeInfo    `json:"node_info"`
	IsOutbound       bool            `json:"is_outbound"`
	ConnectionStatus json.RawMessage `json:"connection_status"`
	RemoteIP         string          `json:"remote_ip"`
}

// NetInfo is the result of net_info.
type NetInfo struct {
	Listening bool      `json:"listening"`
	Listeners []string  `json:"listeners"`
	NPeers    api.Int64 `json:"n_peers"`
	Peers     []NetPeer `json:"peers"`
}

// UnconfirmedTxs is the result of unconfirmed_txs and num_unconfirmed_txs,
// Txs is only filled by the former.
type UnconfirmedTxs struct {
	Count      api.Int64 `json:"n_txs"`
	Total      api.Int64 `json:"total"`
	TotalBytes api.Int64 `json:"total_bytes"`
	Txs        [][]byte  `json:"txs"`
}

// Tx is the result of tx and an entry of tx_search.
type Tx struct {
	Hash     string          `json:"hash"`
	Height   api.Int64       `json:"height"`
	Index    uint32          `json:"index"`
	TxResult TxResponse      `json:"tx_result"`
	Tx       []byte          `json:"tx"`
	Proof    json.RawMessage `json:"proof,omitempty"`
}

// TxSearch is the result of tx_search.
type TxSearch struct {
	Txs        []Tx      `json:"txs"`
	TotalCount api.Int64 `json:"total_count"`
}
