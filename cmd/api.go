package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/transaction"
)

var (
	apiLimit    int
	apiOffset   int
	apiInterval string
	apiSide     string
	apiStatus   []string
	apiAddress  string
	apiSymbol   string
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Query the DEX REST API",
	Long: `Query the DEX REST API of the current network and print the JSON result.

Examples:
  bnbdex api time
  bnbdex api markets --limit 10
  bnbdex api depth NNB-338_BNB --limit 5
  bnbdex api klines NNB-338_BNB --interval 1h
  bnbdex api orders open --symbol NNB-338_BNB`,
}

// apiQuery builds a command printing the result of call.
func apiQuery(use, short string, args cobra.PositionalArgs, call func(ctx context.Context, c *api.Client, args []string) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := env.apiClient()
			if err != nil {
				return err
			}
			res, err := call(cmd.Context(), client, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func init() {
	paged := func(c *cobra.Command) *cobra.Command {
		c.Flags().IntVarP(&apiLimit, "limit", "l", 0, "maximum number of items")
		c.Flags().IntVar(&apiOffset, "offset", 0, "number of items to skip")
		return c
	}

	depthCmd := apiQuery("depth <symbol>", "Show the order book", cobra.ExactArgs(1),
		func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
			return c.GetDepth(ctx, args[0], apiLimit)
		})
	depthCmd.Flags().IntVarP(&apiLimit, "limit", "l", 0, "number of levels (5, 10, 20, 50, 100, 500 or 1000)")

	klinesCmd := paged(apiQuery("klines <symbol>", "Show candlestick bars", cobra.ExactArgs(1),
		func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
			return c.GetKlines(ctx, api.KlineQuery{Symbol: args[0], Interval: apiInterval, Limit: apiLimit})
		}))
	klinesCmd.Flags().StringVarP(&apiInterval, "interval", "i", "1h", "bar interval, e.g. 1m, 1h or 1d")

	tradesCmd := paged(apiQuery("trades [symbol]", "Show recent trades", cobra.MaximumNArgs(1),
		func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
			q := api.TradesQuery{Address: apiAddress, Limit: apiLimit, Offset: apiOffset}
			if len(args) == 1 {
				q.Symbol = args[0]
			}
			if apiSide != "" {
				side, err := transaction.SideFromString(apiSide)
				if err != nil {
					return nil, err
				}
				q.Side = side
			}
			return c.GetTrades(ctx, q)
		}))
	tradesCmd.Flags().StringVarP(&apiAddress, "address", "a", "", "filter by buyer or seller address")
	tradesCmd.Flags().StringVar(&apiSide, "side", "", "buy or sell")

	ordersCmd := &cobra.Command{Use: "orders", Short: "Show orders"}
	openCmd := apiQuery("open [address]", "Show open orders", cobra.MaximumNArgs(1),
		func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
			address, err := argAddress(args)
			if err != nil {
				return nil, err
			}
			return c.GetOpenOrders(ctx, address, apiSymbol)
		})
	openCmd.Flags().StringVarP(&apiSymbol, "symbol", "s", "", "filter by symbol")
	closedCmd := paged(apiQuery("closed [address]", "Show closed orders", cobra.MaximumNArgs(1),
		func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
			address, err := argAddress(args)
			if err != nil {
				return nil, err
			}
			q := api.OrdersQuery{Address: address, Symbol: apiSymbol, Status: apiStatus, Limit: apiLimit, Offset: apiOffset, Total: true}
			if apiSide != "" {
				side, err := transaction.SideFromString(apiSide)
				if err != nil {
					return nil, err
				}
				q.Side = side
			}
			return c.GetClosedOrders(ctx, q)
		}))
	closedCmd.Flags().StringVarP(&apiSymbol, "symbol", "s", "", "filter by symbol")
	closedCmd.Flags().StringVar(&apiSide, "side", "", "buy or sell")
	closedCmd.Flags().StringSliceVar(&apiStatus, "status", nil, "filter by status, e.g. FullyFill,Canceled")
	ordersCmd.AddCommand(openCmd, closedCmd,
		apiQuery("get <order-id>", "Show one order", cobra.ExactArgs(1),
			func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
				return c.GetOrder(ctx, args[0])
			}))

	apiCmd.AddCommand(
		apiQuery("time", "Show the API and block time", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetTime(ctx)
			}),
		apiQuery("node-info", "Show the node the API runs on", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetNodeInfo(ctx)
			}),
		apiQuery("validators", "Show the validator set", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetValidators(ctx)
			}),
		apiQuery("peers", "Show the network peers", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetPeers(ctx)
			}),
		paged(apiQuery("tokens", "List tokens", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetTokens(ctx, apiLimit, apiOffset)
			})),
		paged(apiQuery("markets", "List trading pairs", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetMarkets(ctx, apiLimit, apiOffset)
			})),
		apiQuery("fees", "Show the fee schedule", cobra.NoArgs,
			func(ctx context.Context, c *api.Client, _ []string) (interface{}, error) {
				return c.GetFees(ctx)
			}),
		apiQuery("ticker [symbol]", "Show 24 hour statistics", cobra.MaximumNArgs(1),
			func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
				var symbol string
				if len(args) == 1 {
					symbol = args[0]
				}
				return c.GetTicker24hr(ctx, symbol)
			}),
		apiQuery("account [address]", "Show an account", cobra.MaximumNArgs(1),
			func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
				address, err := argAddress(args)
				if err != nil {
					return nil, err
				}
				return c.GetAccount(ctx, address)
			}),
		apiQuery("sequence [address]", "Show the sequence of an account", cobra.MaximumNArgs(1),
			func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
				address, err := argAddress(args)
				if err != nil {
					return nil, err
				}
				seq, err := c.GetAccountSequence(ctx, address)
				if err != nil {
					return nil, err
				}
				return map[string]int64{"sequence": seq}, nil
			}),
		apiQuery("tx <hash>", "Show a transaction", cobra.ExactArgs(1),
			func(ctx context.Context, c *api.Client, args []string) (interface{}, error) {
				return c.GetTransaction(ctx, strings.ToUpper(args[0]))
			}),
		depthCmd, klinesCmd, tradesCmd, ordersCmd,
	)
}

// argAddress returns the optional address argument or the wallet address.
func argAddress(args []string) (string, error) {
	if len(args) == 1 {
		return queryAddress(args[0])
	}
	return queryAddress("")
}
