package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/wallet"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new wallet",
	Long: `Initialize a new wallet with a secure recovery phrase.

This command will:
  - Generate a new 24-word recovery phrase
  - Create an encrypted vault next to the config file
  - Unlock the wallet for the current session`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	manager := env.manager()

	// Check if wallet already exists
	if manager.VaultExists() {
		return fmt.Errorf("%w. Remove %s/%s to create a new wallet", wallet.ErrWalletExists, env.walletDir(), wallet.VaultFile)
	}

	fmt.Println("🚀 Initializing wallet")
	fmt.Println()

	password, err := readNewPassword()
	if err != nil {
		return err
	}

	fmt.Println("Generating wallet...")
	mnemonic, err := manager.Initialize(password)
	if err != nil {
		return fmt.Errorf("failed to initialize wallet: %w", err)
	}
	address, err := manager.Address(0)
	if err != nil {
		return err
	}

	fmt.Println("✅ Wallet initialized successfully!")
	fmt.Println()
	fmt.Println("🔐 Recovery Phrase (24 words):")
	fmt.Println()
	fmt.Printf("   %s\n", mnemonic)
	fmt.Println()
	fmt.Println("⚠️  IMPORTANT:")
	fmt.Println("   - Write down this recovery phrase and store it securely")
	fmt.Println("   - Anyone with this phrase can access your funds")
	fmt.Println("   - This is the only way to recover your wallet")
	fmt.Println()
	fmt.Printf("🔑 First address: %s\n", address)
	fmt.Println("   - Run 'bnbdex balance' to check your balances")

	return nil
}
