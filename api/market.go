package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MaxKlineLimit is the largest number of klines a single request returns.
const MaxKlineLimit = 1000

var (
	depthLimits    = []int{5, 10, 20, 50, 100, 500, 1000}
	klineIntervals = []string{"1m", "3m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "8h", "12h", "1d", "3d", "1w", "1M"}
)

// ValidKlineInterval reports whether interval is a supported kline interval.
func ValidKlineInterval(interval string) bool {
	for _, i := range klineIntervals {
		if i == interval {
			return true
		}
	}
	return false
}

// pagination adds limit and offset when they're set
func pagination(q url.Values, limit, offset int) url.Values {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

func setInt64(q url.Values, key string, v int64) {
	if v != 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

// GetTokens fetches the issued tokens
func (c *Client) GetTokens(ctx context.Context, limit, offset int) ([]Token, error) {
	var tokens []Token
	if err := c.getJSON(ctx, "tokens", pagination(url.Values{}, limit, offset), &tokens); err != nil {
		return nil, fmt.Errorf("failed to fetch tokens: %w", err)
	}
	return tokens, nil
}

// GetMarkets fetches the listed trading pairs
func (c *Client) GetMarkets(ctx context.Context, limit, offset int) ([]Market, error) {
	var markets []Market
	if err := c.getJSON(ctx, "markets", pagination(url.Values{}, limit, offset), &markets); err != nil {
		return nil, fmt.Errorf("failed to fetch markets: %w", err)
	}
	return markets, nil
}

// GetFees fetches the fee schedule
func (c *Client) GetFees(ctx context.Context) ([]FeeParam, error) {
	var fees []FeeParam
	if err := c.getJSON(ctx, "fees", nil, &fees); err != nil {
		return nil, fmt.Errorf("failed to fetch fees: %w", err)
	}
	return fees, nil
}

// GetDepth fetches the order book of symbol. A zero limit uses the server
// default, any other value must be one of 5, 10, 20, 50, 100, 500, 1000.
func (c *Client) GetDepth(ctx context.Context, symbol string, limit int) (*MarketDepth, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	q := url.Values{"symbol": {symbol}}
	if limit != 0 {
		valid := false
		for _, l := range depthLimits {
			valid = valid || l == limit
		}
		if !valid {
			return nil, fmt.Errorf("invalid depth limit %d, allowed: %v", limit, depthLimits)
		}
		q.Set("limit", strconv.Itoa(limit))
	}
	var depth MarketDepth
	if err := c.getJSON(ctx, "depth", q, &depth); err != nil {
		return nil, fmt.Errorf("failed to fetch depth: %w", err)
	}
	return &depth, nil
}

// GetKlines fetches candlestick bars
func (c *Client) GetKlines(ctx context.Context, query KlineQuery) ([]Kline, error) {
	if query.Symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if !ValidKlineInterval(query.Interval) {
		return nil, fmt.Errorf("invalid kline interval %q, allowed: %v", query.Interval, klineIntervals)
	}
	if query.Limit < 0 || query.Limit > MaxKlineLimit {
		return nil, fmt.Errorf("invalid kline limit %d, max is %d", query.Limit, MaxKlineLimit)
	}
	q := url.Values{"symbol": {query.Symbol}, "interval": {query.Interval}}
	pagination(q, query.Limit, 0)
	setInt64(q, "startTime", query.StartTime)
	setInt64(q, "endTime", query.EndTime)

	var klines []Kline
	if err := c.getJSON(ctx, "klines", q, &klines); err != nil {
		return nil, fmt.Errorf("failed to fetch klines: %w", err)
	}
	return klines, nil
}

// GetTicker24hr fetches 24 hour statistics, of all symbols when symbol is
// empty
func (c *Client) GetTicker24hr(ctx context.Context, symbol string) ([]Ticker24h, error) {
	q := url.Values{}
	setString(q, "symbol", symbol)
	var tickers []Ticker24h
	if err := c.getJSON(ctx, "ticker/24hr", q, &tickers); err != nil {
		return nil, fmt.Errorf("failed to fetch ticker: %w", err)
	}
	return tickers, nil
}

// GetTrades fetches executed trades
func (c *Client) GetTrades(ctx context.Context, query TradesQuery) (*TradePage, error) {
	q := pagination(url.Values{}, query.Limit, query.Offset)
	setString(q, "address", query.Address)
	setString(q, "symbol", query.Symbol)
	setString(q, "buyerOrderId", query.BuyerOrderID)
	setString(q, "sellerOrderId", query.SellerOrderID)
	setInt64(q, "height", query.Height)
	setInt64(q, "side", int64(query.Side))
	setInt64(q, "start", query.StartTime)
	setInt64(q, "end", query.EndTime)
	if query.Total {
		q.Set("total", "1")
	}

	var page TradePage
	if err := c.getJSON(ctx, "trades", q, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch trades: %w", err)
	}
	return &page, nil
}
