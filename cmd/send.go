package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/crypto"
	"github.com/wally-yu/binance-dex/transaction"
	"github.com/wally-yu/binance-dex/wallet"
)

var (
	txMemo   string
	txSource int64
	txAsync  bool
)

var sendCmd = &cobra.Command{
	Use:   "send <address> <amount> <denom> [<address> <amount> <denom>...]",
	Short: "Send tokens",
	Long: `Send tokens to one or more addresses in a single transaction.
Amounts are decimal with up to 8 fractional digits.

Examples:
  bnbdex send bnb1... 1.5 BNB
  bnbdex send tbnb1... 0.1 BNB tbnb1... 20 NNB-338 --memo "payday"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%3 != 0 {
			return fmt.Errorf("expected address, amount and denom triples")
		}
		return nil
	},
	RunE: runSend,
}

func init() {
	for _, c := range []*cobra.Command{sendCmd, orderCmd, cancelCmd, freezeCmd, unfreezeCmd, voteCmd} {
		c.PersistentFlags().StringVarP(&txMemo, "memo", "m", "", "transaction memo")
		c.PersistentFlags().Int64Var(&txSource, "source", 0, "source identifier of the transaction")
		c.PersistentFlags().BoolVar(&txAsync, "async", false, "don't wait for the transaction to be checked")
	}
}

func txOptions() wallet.TxOptions {
	return wallet.TxOptions{Memo: txMemo, Source: txSource, Async: txAsync}
}

func parseTransfers(args []string, hrp string) ([]transaction.Transfer, error) {
	transfers := make([]transaction.Transfer, 0, len(args)/3)
	for i := 0; i+2 < len(args); i += 3 {
		to, amountStr, denom := args[i], args[i+1], strings.ToUpper(args[i+2])
		if err := crypto.ValidateAddress(to, hrp); err != nil {
			return nil, fmt.Errorf("invalid recipient %s: %w", to, err)
		}
		amount, err := transaction.ParseAmount(amountStr)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, transaction.Transfer{
			To:    to,
			Coins: transaction.Coins{{Denom: denom, Amount: amount}},
		})
	}
	return transfers, nil
}

func runSend(cmd *cobra.Command, args []string) error {
	transfers, err := parseTransfers(args, env.params.HRP)
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

	fmt.Println("💸 Sending Transaction")
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.params))
	for _, t := range transfers {
		fmt.Printf("   %s %s → %s\n", transaction.FormatAmount(t.Coins[0].Amount), t.Coins[0].Denom, t.To)
	}
	if !confirm(cmd, "Send?") {
		fmt.Println("❌ Transaction cancelled by user")
		return nil
	}

	res, err := manager.Transfer(cmd.Context(), client, transfers, txOptions())
	if err != nil {
		return err
	}
	printTxResult(res)
	return nil
}

func printTxResult(res *wallet.TxResult) {
	fmt.Println("✅ Transaction broadcast successfully!")
	fmt.Printf("   Hash: %s\n", color.CyanString(res.Hash))
	if res.OrderID != "" {
		fmt.Printf("   Order ID: %s\n", color.CyanString(res.OrderID))
	}
	if txAsync {
		fmt.Println("💡 Run 'bnbdex api tx <hash>' to follow the transaction")
	}
}
