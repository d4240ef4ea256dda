package api

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Int64 decodes from both JSON numbers and quoted decimal strings, the API
// and the node RPC disagree on which one they use.
type Int64 int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int64) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if len(data) == 0 || string(data) == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", data, err)
	}
	*i = Int64(v)
	return nil
}

// Times is the current time of the API server and of the latest block.
type Times struct {
	APTime    string `json:"ap_time"`
	BlockTime string `json:"block_time"`
}

// ProtocolVersion of a node.
type ProtocolVersion struct {
	P2P   Int64 `json:"p2p"`
	Block Int64 `json:"block"`
	App   Int64 `json:"app"`
}

// NodeInfo describes a node.
type NodeInfo struct {
	ProtocolVersion ProtocolVersion `json:"protocol_version"`
	ID              string          `json:"id"`
	ListenAddr      string          `json:"listen_addr"`
	Network         string          `json:"network"`
	Version         string          `json:"version"`
	Channels        string          `json:"channels"`
	Moniker         string          `json:"moniker"`
	Other           NodeInfoOther   `json:"other"`
}

// NodeInfoOther is the free-form part of NodeInfo.
type NodeInfoOther struct {
	TxIndex    string `json:"tx_index"`
	RPCAddress string `json:"rpc_address"`
}

// SyncInfo is the sync state of a node.
type SyncInfo struct {
	LatestBlockHash   string `json:"latest_block_hash"`
	LatestAppHash     string `json:"latest_app_hash"`
	LatestBlockHeight Int64  `json:"latest_block_height"`
	LatestBlockTime   string `json:"latest_block_time"`
	CatchingUp        bool   `json:"catching_up"`
}

// ValidatorInfo describes a validator. PubKey is kept raw since the API
// returns a byte array and the node RPC a typed object.
type ValidatorInfo struct {
	Address          string          `json:"address"`
	PubKey           json.RawMessage `json:"pub_key"`
	VotingPower      Int64           `json:"voting_power"`
	ProposerPriority Int64           `json:"proposer_priority,omitempty"`
	Accum            Int64           `json:"accum,omitempty"`
}

// ResultStatus is the node-info response, also returned by the status RPC.
type ResultStatus struct {
	NodeInfo      NodeInfo      `json:"node_info"`
	SyncInfo      SyncInfo      `json:"sync_info"`
	ValidatorInfo ValidatorInfo `json:"validator_info"`
}

// Validators is the validator set at a height.
type Validators struct {
	BlockHeight Int64           `json:"block_height"`
	Validators  []ValidatorInfo `json:"validators"`
}

// Peer is a network peer of the API.
type Peer struct {
	ID                 string   `json:"id"`
	OriginalListenAddr string   `json:"original_listen_addr"`
	ListenAddr         string   `json:"listen_addr"`
	AccessAddr         string   `json:"access_addr"`
	StreamAddr         string   `json:"stream_addr"`
	Network            string   `json:"network"`
	Version            string   `json:"version"`
	Moniker            string   `json:"moniker"`
	Capabilities       []string `json:"capabilities"`
	Accelerated        bool     `json:"accelerated"`
}

// HasCapability reports whether the peer advertises capability c, e.g.
// "node", "ws" or "qs".
func (p Peer) HasCapability(c string) bool {
	for _, pc := range p.Capabilities {
		if pc == c {
			return true
		}
	}
	return false
}

// Token is an issued asset.
type Token struct {
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	OriginalSymbol string          `json:"original_symbol"`
	TotalSupply    decimal.Decimal `json:"total_supply"`
	Owner          string          `json:"owner"`
	Mintable       bool            `json:"mintable"`
}

// Market is a listed trading pair.
type Market struct {
	BaseAssetSymbol  string          `json:"base_asset_symbol"`
	QuoteAssetSymbol string          `json:"quote_asset_symbol"`
	ListPrice        decimal.Decimal `json:"list_price"`
	TickSize         decimal.Decimal `json:"tick_size"`
	LotSize          decimal.Decimal `json:"lot_size"`
}

// Symbol returns the trading pair symbol, e.g. NNB-338_BNB.
func (m Market) Symbol() string {
	return m.BaseAssetSymbol + "_" + m.QuoteAssetSymbol
}

// FixedFeeParams is the fee of one message type.
type FixedFeeParams struct {
	MsgType string `json:"msg_type"`
	Fee     Int64  `json:"fee"`
	FeeFor  int    `json:"fee_for"`
}

// DexFeeField is a named trading fee value.
type DexFeeField struct {
	FeeName  string `json:"fee_name"`
	FeeValue Int64  `json:"fee_value"`
}

// FeeParam is one entry of the fee schedule. Which fields are set depends on
// the message type.
type FeeParam struct {
	MsgType           string          `json:"msg_type,omitempty"`
	Fee               Int64           `json:"fee,omitempty"`
	FeeFor            int             `json:"fee_for,omitempty"`
	MultiTransferFee  Int64           `json:"multi_transfer_fee,omitempty"`
	LowerLimitAsMulti Int64           `json:"lower_limit_as_multi,omitempty"`
	FixedFeeParams    *FixedFeeParams `json:"fixed_fee_params,omitempty"`
	DexFeeFields      []DexFeeField   `json:"dex_fee_fields,omitempty"`
}

// Balance of one token.
type Balance struct {
	Symbol string          `json:"symbol"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
	Frozen decimal.Decimal `json:"frozen"`
}

// Account is the state of an address.
type Account struct {
	AccountNumber int64     `json:"account_number"`
	Address       string    `json:"address"`
	Balances      []Balance `json:"balances"`
	PublicKey     []byte    `json:"-"`
	Sequence      int64     `json:"sequence"`
	Flags         uint64    `json:"flags"`
}

// UnmarshalJSON decodes the public key from its byte array form.
func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	var aux struct {
		plain
		PublicKey []int `json:"public_key"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Account(aux.plain)
	if aux.PublicKey != nil {
		a.PublicKey = make([]byte, len(aux.PublicKey))
		for i, b := range aux.PublicKey {
			if b < 0 || b > 255 {
				return fmt.Errorf("invalid public key byte %d", b)
			}
			a.PublicKey[i] = byte(b)
		}
	}
	return nil
}

// Balance returns the balance of symbol, zero if there is none.
func (a Account) Balance(symbol string) Balance {
	for _, b := range a.Balances {
		if b.Symbol == symbol {
			return b
		}
	}
	return Balance{Symbol: symbol}
}

// TxResult is a transaction looked up by hash.
type TxResult struct {
	Code   int             `json:"code"`
	Hash   string          `json:"hash"`
	Height Int64           `json:"height"`
	Log    string          `json:"log"`
	OK     bool            `json:"ok"`
	Tx     json.RawMessage `json:"tx"`
}

// Transaction is an entry of the transactions history.
type Transaction struct {
	TxHash        string `json:"txHash"`
	BlockHeight   int64  `json:"blockHeight"`
	TxType        string `json:"txType"`
	TimeStamp     string `json:"timeStamp"`
	FromAddr      string `json:"fromAddr"`
	ToAddr        string `json:"toAddr"`
	Value         string `json:"value"`
	TxAsset       string `json:"txAsset"`
	TxFee         string `json:"txFee"`
	OrderID       string `json:"orderId"`
	Code          int    `json:"code"`
	Data          string `json:"data"`
	Memo          string `json:"memo"`
	Source        int64  `json:"source"`
	Sequence      int64  `json:"sequence"`
	TxAge         int64  `json:"txAge"`
	ConfirmBlocks int64  `json:"confirmBlocks"`
}

// TxPage is a page of the transactions history.
type TxPage struct {
	Total int64         `json:"total"`
	Tx    []Transaction `json:"tx"`
}

// TransactionsQuery filters the transactions history. Address is required,
// times are unix milliseconds.
type TransactionsQuery struct {
	Address     string
	BlockHeight int64
	StartTime   int64
	EndTime     int64
	Limit       int
	Offset      int
	Side        string // RECEIVE or SEND
	TxAsset     string
	TxType      string
}

// PriceLevel is one level of the order book.
type PriceLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// UnmarshalJSON decodes the ["price","quantity"] form.
func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	var raw []decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("price level has %d elements", len(raw))
	}
	p.Price, p.Quantity = raw[0], raw[1]
	return nil
}

// MarketDepth is the order book of a symbol.
type MarketDepth struct {
	Asks   []PriceLevel `json:"asks"`
	Bids   []PriceLevel `json:"bids"`
	Height int64        `json:"height"`
}

// Kline is a candlestick bar.
type Kline struct {
	OpenTime         int64
	Open             decimal.Decimal
	High             decimal.Decimal
	Low              decimal.Decimal
	Close            decimal.Decimal
	Volume           decimal.Decimal
	CloseTime        int64
	QuoteAssetVolume decimal.Decimal
	NumberOfTrades   int64
}

// UnmarshalJSON decodes the array form
// [openTime, open, high, low, close, volume, closeTime, quoteVolume, count].
func (k *Kline) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 9 {
		return fmt.Errorf("kline has %d elements", len(raw))
	}
	targets := []interface{}{
		&k.OpenTime, &k.Open, &k.High, &k.Low, &k.Close,
		&k.Volume, &k.CloseTime, &k.QuoteAssetVolume, &k.NumberOfTrades,
	}
	for i, t := range targets {
		if err := json.Unmarshal(raw[i], t); err != nil {
			return fmt.Errorf("kline element %d: %w", i, err)
		}
	}
	return nil
}

// KlineQuery selects klines of a symbol. Times are unix milliseconds.
type KlineQuery struct {
	Symbol    string
	Interval  string
	Limit     int
	StartTime int64
	EndTime   int64
}

// Ticker24h is the rolling 24 hour statistics of a symbol.
type Ticker24h struct {
	Symbol             string          `json:"symbol"`
	AskPrice           decimal.Decimal `json:"askPrice"`
	AskQuantity        decimal.Decimal `json:"askQuantity"`
	BidPrice           decimal.Decimal `json:"bidPrice"`
	BidQuantity        decimal.Decimal `json:"bidQuantity"`
	CloseTime          int64           `json:"closeTime"`
	Count              int64           `json:"count"`
	FirstID            string          `json:"firstId"`
	HighPrice          decimal.Decimal `json:"highPrice"`
	LastID             string          `json:"lastId"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	LastQuantity       decimal.Decimal `json:"lastQuantity"`
	LowPrice           decimal.Decimal `json:"lowPrice"`
	OpenPrice          decimal.Decimal `json:"openPrice"`
	OpenTime           int64           `json:"openTime"`
	PrevClosePrice     decimal.Decimal `json:"prevClosePrice"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	Volume             decimal.Decimal `json:"volume"`
	WeightedAvgPrice   decimal.Decimal `json:"weightedAvgPrice"`
}

// Trade is an executed match.
type Trade struct {
	BaseAsset     string          `json:"baseAsset"`
	BlockHeight   int64           `json:"blockHeight"`
	BuyFee        string          `json:"buyFee"`
	BuyerID       string          `json:"buyerId"`
	BuyerOrderID  string          `json:"buyerOrderId"`
	Price         decimal.Decimal `json:"price"`
	Quantity      decimal.Decimal `json:"quantity"`
	QuoteAsset    string          `json:"quoteAsset"`
	SellFee       string          `json:"sellFee"`
	SellerID      string          `json:"sellerId"`
	SellerOrderID string          `json:"sellerOrderId"`
	Symbol        string          `json:"symbol"`
	Time          int64           `json:"time"`
	TradeID       string          `json:"tradeId"`
	TickType      string          `json:"tickType"`
}

// TradePage is a page of trades.
type TradePage struct {
	Total int64   `json:"total"`
	Trade []Trade `json:"trade"`
}

// TradesQuery filters trades. Times are unix milliseconds.
type TradesQuery struct {
	Address       string
	Symbol        string
	BuyerOrderID  string
	SellerOrderID string
	Height        int64
	Side          int8
	StartTime     int64
	EndTime       int64
	Limit         int
	Offset        int
	Total         bool
}

// Order is an order of the matching engine.
type Order struct {
	OrderID              string          `json:"orderId"`
	Symbol               string          `json:"symbol"`
	Owner                string          `json:"owner"`
	Price                decimal.Decimal `json:"price"`
	Quantity             decimal.Decimal `json:"quantity"`
	CumulateQuantity     decimal.Decimal `json:"cumulateQuantity"`
	Fee                  string          `json:"fee"`
	OrderCreateTime      string          `json:"orderCreateTime"`
	TransactionTime      string          `json:"transactionTime"`
	Status               string          `json:"status"`
	TimeInForce          int8            `json:"timeInForce"`
	Side                 int8            `json:"side"`
	Type                 int8            `json:"type"`
	TradeID              string          `json:"tradeId"`
	LastExecutedPrice    decimal.Decimal `json:"lastExecutedPrice"`
	LastExecutedQuantity decimal.Decimal `json:"lastExecutedQuantity"`
	TransactionHash      string          `json:"transactionHash"`
}

// OrderList is a page of orders.
type OrderList struct {
	Order []Order `json:"order"`
	Total int64   `json:"total"`
}

// OrdersQuery filters closed orders. Times are unix milliseconds.
type OrdersQuery struct {
	Address   string
	Symbol    string
	Side      int8
	Status    []string
	StartTime int64
	EndTime   int64
	Limit     int
	Offset    int
	Total     bool
}

// TxCommitResult is the result of broadcasting one transaction.
type TxCommitResult struct {
	OK   bool   `json:"ok"`
	Log  string `json:"log"`
	Hash string `json:"hash"`
	Code int    `json:"code"`
	Data string `json:"data"`
}
