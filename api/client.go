package api

// Binance Chain DEX API client.
//
// Files:
//   config.go    - network endpoints and chain parameters
//   types.go     - response shapes (account, order, market, kline, etc.)
//   base.go      - core client functionality (Client, NewClient, request helpers, Error)
//   node.go      - node and chain information (time, node-info, validators, peers)
//   market.go    - tokens, markets, fees, depth, klines, tickers and trades
//   account.go   - accounts, transactions, orders and broadcast
//
// Usage:
//   client, err := api.NewClient(api.MainnetAPIURL, api.Options{})
//   acc, err := client.GetAccount(ctx, address)            // from account.go
//   depth, err := client.GetDepth(ctx, "NNB-338_BNB", 5)   // from market.go
//   res, err := client.Broadcast(ctx, txBytes, true)       // from account.go
