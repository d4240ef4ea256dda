package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/transaction"
)

var tifFlag string

var orderCmd = &cobra.Command{
	Use:   "order <buy|sell> <symbol> <price> <quantity>",
	Short: "Place a limit order",
	Long: `Place a limit order on a trading pair. Price and quantity are decimal
with up to 8 fractional digits.

Examples:
  bnbdex order buy NNB-338_BNB 0.0015 100
  bnbdex order sell NNB-338_BNB 0.002 50 --tif IOC`,
	Args:      cobra.ExactArgs(4),
	ValidArgs: []string{"buy", "sell"},
	RunE:      runOrder,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <symbol> <order-id>",
	Short: "Cancel an open order",
	Long: `Cancel an open order. The order ID is printed when the order is placed and
listed by 'bnbdex api orders open'.

Example:
  bnbdex cancel NNB-338_BNB 19AE2A31ACAA58D913274180C4B1E46214F92FEE-8`,
	Args: cobra.ExactArgs(2),
	RunE: runCancel,
}

func init() {
	orderCmd.Flags().StringVar(&tifFlag, "tif", "GTE", "time in force, GTE or IOC")
}

func runOrder(cmd *cobra.Command, args []string) error {
	side, err := transaction.SideFromString(args[0])
	if err != nil {
		return err
	}
	symbol := strings.ToUpper(args[1])
	price, err := transaction.ParseAmount(args[2])
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", args[2], err)
	}
	quantity, err := transaction.ParseAmount(args[3])
	if err != nil {
		return fmt.Errorf("invalid quantity %s: %w", args[3], err)
	}
	tif, err := transaction.TimeInForceFromString(tifFlag)
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

	fmt.Printf("📈 %s %s %s @ %s (%s)\n", strings.ToUpper(args[0]), transaction.FormatAmount(quantity), symbol,
		transaction.FormatAmount(price), strings.ToUpper(tifFlag))
	if !confirm(cmd, "Place order?") {
		fmt.Println("❌ Order cancelled by user")
		return nil
	}
	res, err := manager.PlaceOrder(cmd.Context(), client, symbol, side, price, quantity, tif, txOptions())
	if err != nil {
		return err
	}
	printTxResult(res)
	return nil
}

func runCancel(cmd *cobra.Command, args []string) error {
	manager, err := env.unlockedManager()
	if err != nil {
		return err
	}
	client, err := env.apiClient()
	if err != nil {
		return err
	}
	symbol := strings.ToUpper(args[0])
	if !confirm(cmd, fmt.Sprintf("Cancel order %s on %s?", args[1], symbol)) {
		return nil
	}
	res, err := manager.CancelOrder(cmd.Context(), client, symbol, args[1], txOptions())
	if err != nil {
		return err
	}
	printTxResult(res)
	return nil
}
