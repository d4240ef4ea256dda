package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/crypto"
)

var balanceAddress string

var balanceCmd = &cobra.Command{
	Use:   "balance [symbol]",
	Short: "Check token balances",
	Long: `Check the free, locked and frozen balances of your account or of any
address given with --address.

Examples:
  bnbdex balance                   # Check all balances
  bnbdex balance BNB               # Check the BNB balance
  bnbdex balance --address bnb1... # Check another account`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().StringVarP(&balanceAddress, "address", "a", "", "address to query instead of the wallet")
}

// queryAddress returns the explicit address or the wallet signing address.
func queryAddress(explicit string) (string, error) {
	if explicit != "" {
		if err := crypto.ValidateAddress(explicit, env.params.HRP); err != nil {
			return "", err
		}
		return explicit, nil
	}
	manager, err := env.unlockedManager()
	if err != nil {
		return "", err
	}
	return manager.Address(env.account)
}

func runBalance(cmd *cobra.Command, args []string) error {
	address, err := queryAddress(balanceAddress)
	if err != nil {
		return err
	}
	client, err := env.apiClient()
	if err != nil {
		return err
	}
	account, err := client.GetAccount(cmd.Context(), address)
	if err != nil {
		return err
	}

	fmt.Println("💰 Account Balances")
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.params))
	fmt.Printf("📬 Address: %s (account %d, sequence %d)\n", account.Address, account.AccountNumber, account.Sequence)
	fmt.Println()

	if len(args) == 1 {
		b := account.Balance(strings.ToUpper(args[0]))
		fmt.Printf("%-16s free %s  locked %s  frozen %s\n", b.Symbol, b.Free, b.Locked, b.Frozen)
		return nil
	}
	if len(account.Balances) == 0 {
		fmt.Println(color.YellowString("No balances"))
		return nil
	}
	for _, b := range account.Balances {
		fmt.Printf("%-16s free %s  locked %s  frozen %s\n", b.Symbol, b.Free, b.Locked, b.Frozen)
	}
	return nil
}
