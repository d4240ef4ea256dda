package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/rpc"
)

var (
	rpcHeight  int64
	rpcProve   bool
	rpcPage    int
	rpcPerPage int
	rpcLimit   int
)

var rpcCmd = &cobra.Command{
	Use:   "rpc",
	Short: "Query a node over JSON-RPC",
	Long: `Query a full node over JSON-RPC and print the JSON result.

The node is taken from node-url in the config file. Without it the first
healthy node advertised by the API peers is used.

Examples:
  bnbdex rpc status
  bnbdex rpc block --height 1000
  bnbdex rpc tx-search "tx.height=1000" --per-page 5
  bnbdex rpc abci-query /store/acc/key 6163636F756E74...`,
}

func heightFlag() *int64 {
	if rpcHeight <= 0 {
		return nil
	}
	h := rpcHeight
	return &h
}

// rpcQuery builds a command printing the result of call.
func rpcQuery(use, short string, args cobra.PositionalArgs, call func(ctx context.Context, c *rpc.Client, args []string) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := env.rpcClient(cmd.Context())
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
	withHeight := func(c *cobra.Command) *cobra.Command {
		c.Flags().Int64Var(&rpcHeight, "height", 0, "block height, latest if unset")
		return c
	}
	withProve := func(c *cobra.Command) *cobra.Command {
		c.Flags().BoolVar(&rpcProve, "prove", false, "include proofs")
		return c
	}

	abciQueryCmd := withHeight(withProve(rpcQuery("abci-query <path> [hex-data]", "Query the application state", cobra.RangeArgs(1, 2),
		func(ctx context.Context, c *rpc.Client, args []string) (interface{}, error) {
			var data []byte
			if len(args) == 2 {
				var err error
				if data, err = hex.DecodeString(args[1]); err != nil {
					return nil, fmt.Errorf("invalid data: %w", err)
				}
			}
			return c.ABCIQuery(ctx, args[0], data, rpcHeight, rpcProve)
		})))

	blockchainCmd := rpcQuery("blockchain <min-height> <max-height>", "Show block metas of a height range", cobra.ExactArgs(2),
		func(ctx context.Context, c *rpc.Client, args []string) (interface{}, error) {
			lo, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid min height: %w", err)
			}
			hi, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid max height: %w", err)
			}
			return c.BlockchainInfo(ctx, lo, hi)
		})

	unconfirmedCmd := rpcQuery("unconfirmed", "Show mempool transactions", cobra.NoArgs,
		func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
			return c.UnconfirmedTxs(ctx, rpcLimit)
		})
	unconfirmedCmd.Flags().IntVarP(&rpcLimit, "limit", "l", 30, "maximum number of transactions")

	txSearchCmd := withProve(rpcQuery("tx-search <query>", "Search transactions by tags", cobra.ExactArgs(1),
		func(ctx context.Context, c *rpc.Client, args []string) (interface{}, error) {
			return c.TxSearch(ctx, args[0], rpcProve, rpcPage, rpcPerPage)
		}))
	txSearchCmd.Flags().IntVar(&rpcPage, "page", 1, "page number")
	txSearchCmd.Flags().IntVar(&rpcPerPage, "per-page", 30, "results per page")

	rpcCmd.AddCommand(
		rpcQuery("status", "Show the node status", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.Status(ctx)
			}),
		rpcQuery("health", "Check the node health", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				if err := c.Health(ctx); err != nil {
					return nil, err
				}
				return map[string]string{"endpoint": c.Endpoint(), "status": "healthy"}, nil
			}),
		rpcQuery("abci-info", "Show the application info", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.ABCIInfo(ctx)
			}),
		abciQueryCmd,
		withHeight(rpcQuery("block", "Show a block", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.Block(ctx, heightFlag())
			})),
		withHeight(rpcQuery("block-results", "Show the results of a block", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.BlockResults(ctx, heightFlag())
			})),
		blockchainCmd,
		withHeight(rpcQuery("commit", "Show a block commit", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.Commit(ctx, heightFlag())
			})),
		withHeight(rpcQuery("consensus-params", "Show the consensus parameters", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.ConsensusParams(ctx, heightFlag())
			})),
		rpcQuery("consensus-state", "Show the consensus round state", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.ConsensusState(ctx)
			}),
		rpcQuery("dump-consensus-state", "Dump the full consensus state", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.DumpConsensusState(ctx)
			}),
		rpcQuery("genesis", "Show the genesis document", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.Genesis(ctx)
			}),
		rpcQuery("net-info", "Show the node peers", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.NetInfo(ctx)
			}),
		rpcQuery("num-unconfirmed", "Count mempool transactions", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.NumUnconfirmedTxs(ctx)
			}),
		unconfirmedCmd,
		withProve(rpcQuery("tx <hash>", "Show a transaction", cobra.ExactArgs(1),
			func(ctx context.Context, c *rpc.Client, args []string) (interface{}, error) {
				hash, err := hex.DecodeString(args[0])
				if err != nil {
					return nil, fmt.Errorf("invalid hash: %w", err)
				}
				return c.Tx(ctx, hash, rpcProve)
			})),
		txSearchCmd,
		withHeight(rpcQuery("validators", "Show the validator set", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				return c.Validators(ctx, heightFlag())
			})),
		rpcQuery("endpoints", "List the node RPC routes", cobra.NoArgs,
			func(ctx context.Context, c *rpc.Client, _ []string) (interface{}, error) {
				page, err := c.ListEndpoints(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]string{"endpoint": c.Endpoint(), "routes": page}, nil
			}),
	)
}
