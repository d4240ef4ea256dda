package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/wallet"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock wallet for session",
	Long: `Unlock your wallet for the current session.
This command decrypts your vault and keeps the keys available for 30 minutes
or until you run 'bnbdex lock'. Sessions are bound to the current network.

Example:
  bnbdex unlock`,
	Args: cobra.NoArgs,
	RunE: runUnlock,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock wallet and end the session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env.manager().Lock()
		fmt.Println("🔒 Wallet locked")
	},
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager := env.manager()

	if !manager.VaultExists() {
		return fmt.Errorf("%w. Run 'bnbdex init' to create a new wallet", wallet.ErrNoWallet)
	}

	// Check if already unlocked
	if manager.IsUnlocked() {
		fmt.Println("✅ Wallet is already unlocked")
		return nil
	}

	password, err := readPassword("Enter your wallet password: ")
	if err != nil {
		return err
	}

	fmt.Println("Unlocking wallet...")
	if err := manager.Unlock(password); err != nil {
		return fmt.Errorf("failed to unlock wallet: %w", err)
	}

	fmt.Printf("✅ Wallet unlocked for %v\n", wallet.SessionDuration)
	fmt.Println("💡 Use 'bnbdex address' to see your addresses")
	fmt.Println("💡 Use 'bnbdex balance' to check your balances")

	return nil
}
