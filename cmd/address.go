package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/crypto"
)

var addressCount uint32

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Show wallet addresses",
	Long: `Show the addresses of your wallet for the current network.
Without --count only the signing key selected by --account is shown.

Examples:
  bnbdex address              # Show the signing address
  bnbdex address --count 5    # Show the first five addresses`,
	Args: cobra.NoArgs,
	RunE: runAddress,
}

func init() {
	addressCmd.Flags().Uint32VarP(&addressCount, "count", "c", 0, "number of addresses to show starting from index 0")
}

func runAddress(cmd *cobra.Command, args []string) error {
	manager, err := env.unlockedManager()
	if err != nil {
		return err
	}

	fmt.Println("🔑 Your wallet addresses:")
	fmt.Printf("🌐 Network: %s\n", networkLabel(env.params))
	fmt.Println()

	from, to := env.account, env.account+1
	if addressCount > 0 {
		from, to = 0, addressCount
	}
	for i := from; i < to; i++ {
		address, err := manager.Address(i)
		if err != nil {
			return fmt.Errorf("failed to get address %d: %w", i, err)
		}
		fmt.Printf("%-22s %s\n", crypto.AccountPath(i).String(), address)
	}

	return nil
}
