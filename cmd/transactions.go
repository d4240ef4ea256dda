package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/api"
)

var (
	pageFlag    int
	limitFlag   int
	txSideFlag  string
	txAssetFlag string
	txTypeFlag  string
	txAddress   string
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Show transaction history with pagination",
	Long: `Show the transaction history of your account with pagination support.

Examples:
  bnbdex transactions                    # Show page 1
  bnbdex transactions --page 2           # Show page 2
  bnbdex transactions --side SEND        # Only outgoing transactions
  bnbdex transactions --asset BNB -l 5   # 5 BNB transactions per page`,
	Args: cobra.NoArgs,
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&pageFlag, "page", "p", 1, "Page number")
	transactionsCmd.Flags().IntVarP(&limitFlag, "limit", "l", 10, "Transactions per page (1-1000)")
	transactionsCmd.Flags().StringVar(&txSideFlag, "side", "", "RECEIVE or SEND")
	transactionsCmd.Flags().StringVar(&txAssetFlag, "asset", "", "filter by asset symbol")
	transactionsCmd.Flags().StringVar(&txTypeFlag, "type", "", "filter by transaction type, e.g. TRANSFER or NEW_ORDER")
	transactionsCmd.Flags().StringVarP(&txAddress, "address", "a", "", "address to query instead of the wallet")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	// Validate pagination parameters
	if pageFlag < 1 {
		return fmt.Errorf("page must be positive")
	}
	if limitFlag < 1 || limitFlag > 1000 {
		return fmt.Errorf("limit must be between 1 and 1000")
	}
	side := strings.ToUpper(txSideFlag)
	if side != "" && side != "SEND" && side != "RECEIVE" {
		return fmt.Errorf("side must be SEND or RECEIVE")
	}

	address, err := queryAddress(txAddress)
	if err != nil {
		return err
	}
	client, err := env.apiClient()
	if err != nil {
		return err
	}

	fmt.Println("🔄 Loading transactions...")
	startTime := time.Now()

	page, err := client.GetTransactions(cmd.Context(), api.TransactionsQuery{
		Address: address,
		Limit:   limitFlag,
		Offset:  (pageFlag - 1) * limitFlag,
		Side:    side,
		TxAsset: strings.ToUpper(txAssetFlag),
		TxType:  strings.ToUpper(txTypeFlag),
	})
	if err != nil {
		return err
	}

	pages := (page.Total + int64(limitFlag) - 1) / int64(limitFlag)
	fmt.Printf("📜 Transaction history (Page %d/%d, %d total):\n", pageFlag, pages, page.Total)
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.params))
	fmt.Println()

	if len(page.Tx) == 0 {
		fmt.Println("No transactions found")
	}
	for _, tx := range page.Tx {
		printTransaction(address, tx)
	}

	fmt.Printf("\n⏱️ Loaded in %v\n", time.Since(startTime).Round(time.Millisecond*10))
	return nil
}

func printTransaction(owner string, tx api.Transaction) {
	direction := color.GreenString("IN ")
	counterparty := tx.FromAddr
	if tx.FromAddr == owner {
		direction = color.RedString("OUT")
		counterparty = tx.ToAddr
	}
	status := "✅"
	if tx.Code != 0 {
		status = "❌"
	}
	fmt.Printf("%s %s %-12s %s %s\n", status, direction, tx.TxType, tx.Value, tx.TxAsset)
	fmt.Printf("   Hash:   %s\n", tx.TxHash)
	fmt.Printf("   Height: %d  Time: %s  Fee: %s\n", tx.BlockHeight, tx.TimeStamp, tx.TxFee)
	if counterparty != "" {
		fmt.Printf("   Peer:   %s\n", counterparty)
	}
	if tx.OrderID != "" {
		fmt.Printf("   Order:  %s\n", tx.OrderID)
	}
	if tx.Memo != "" {
		fmt.Printf("   Memo:   %s\n", tx.Memo)
	}
}
