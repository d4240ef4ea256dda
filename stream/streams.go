package stream

import "strings"

// Stream topics.
const (
	TopicTrades         = "trades"
	TopicMarketDiff     = "marketDiff"
	TopicMarketDepth    = "marketDepth"
	TopicKlinePrefix    = "kline_"
	TopicTicker         = "ticker"
	TopicAllTickers     = "allTickers"
	TopicMiniTicker     = "miniTicker"
	TopicAllMiniTickers = "allMiniTickers"
	TopicBlockHeight    = "blockheight"

	allSymbols = "$all"
)

// Streams builds stream URLs under a WebSocket base such as
// wss://dex.binance.org/api/ws.
type Streams struct {
	BaseURL string
}

// NewStreams returns a builder for base.
func NewStreams(base string) Streams {
	return Streams{BaseURL: strings.TrimRight(base, "/")}
}

func (s Streams) topic(symbol, topic string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + symbol + "@" + topic
}

// AccountURL streams balance, order and transfer updates of address.
func (s Streams) AccountURL(address string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + address
}

// TradesURL streams executed trades of symbol.
func (s Streams) TradesURL(symbol string) string {
	return s.topic(symbol, TopicTrades)
}

// MarketDiffURL streams order book changes of symbol.
func (s Streams) MarketDiffURL(symbol string) string {
	return s.topic(symbol, TopicMarketDiff)
}

// MarketDepthURL streams the top of the order book of symbol.
func (s Streams) MarketDepthURL(symbol string) string {
	return s.topic(symbol, TopicMarketDepth)
}

// KlineURL streams candlestick updates of symbol at interval, e.g. 1h.
func (s Streams) KlineURL(symbol, interval string) string {
	return s.topic(symbol, TopicKlinePrefix+interval)
}

// TickerURL streams 24 hour statistics of symbol.
func (s Streams) TickerURL(symbol string) string {
	return s.topic(symbol, TopicTicker)
}

// AllTickersURL streams 24 hour statistics of all symbols.
func (s Streams) AllTickersURL() string {
	return s.topic(allSymbols, TopicAllTickers)
}

// MiniTickerURL streams reduced 24 hour statistics of symbol.
func (s Streams) MiniTickerURL(symbol string) string {
	return s.topic(symbol, TopicMiniTicker)
}

// AllMiniTickersURL streams reduced 24 hour statistics of all symbols.
func (s Streams) AllMiniTickersURL() string {
	return s.topic(allSymbols, TopicAllMiniTickers)
}

// BlockHeightURL streams the height of every new block.
func (s Streams) BlockHeightURL() string {
	return s.topic(allSymbols, TopicBlockHeight)
}
