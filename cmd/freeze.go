package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/transaction"
	"github.com/wally-yu/binance-dex/wallet"
)

type freezeFunc func(m *wallet.Manager, ctx context.Context, client wallet.Broadcaster, symbol string, amount int64, opts wallet.TxOptions) (*wallet.TxResult, error)

var freezeCmd = &cobra.Command{
	Use:   "freeze <symbol> <amount>",
	Short: "Freeze tokens",
	Long: `Move tokens from the free to the frozen balance.

Example:
  bnbdex freeze NNB-338 100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFreeze(cmd, args, "Freeze", (*wallet.Manager).Freeze)
	},
}

var unfreezeCmd = &cobra.Command{
	Use:   "unfreeze <symbol> <amount>",
	Short: "Unfreeze tokens",
	Long: `Move tokens from the frozen back to the free balance.

Example:
  bnbdex unfreeze NNB-338 100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFreeze(cmd, args, "Unfreeze", (*wallet.Manager).Unfreeze)
	},
}

func runFreeze(cmd *cobra.Command, args []string, action string, call freezeFunc) error {
	symbol := strings.ToUpper(args[0])
	amount, err := transaction.ParseAmount(args[1])
	if err != nil {
		return err
	}
	manager, err := env.unlockedManager()
	if err != nil {
		return err
	}
	client, err := env.apiClient()
	if err != nil {
		return err
	}

	if !confirm(cmd, fmt.Sprintf("%s %s %s?", action, transaction.FormatAmount(amount), symbol)) {
		return nil
	}
	res, err := call(manager, cmd.Context(), client, symbol, amount, txOptions())
	if err != nil {
		return err
	}
	printTxResult(res)
	return nil
}

// ensure the API client can sign through the wallet.
var _ wallet.Broadcaster = (*api.Client)(nil)
