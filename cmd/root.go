package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "0.4.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bnbdex",
	Short: "A command-line client for the Binance Chain DEX",
	Long: `bnbdex is a client for the Binance Chain DEX. It talks to the
REST API, to the node JSON-RPC and to the WebSocket streams, and it keeps an
encrypted local wallet to sign and broadcast transactions.

Features:
  • BIP-39 mnemonic generation and import
  • BIP-44 key derivation (m/44'/714'/0'/0/i)
  • scrypt + AES-256-GCM encrypted vault storage
  • Transfers, limit orders, cancels, freezes and governance votes
  • Market data, account and transaction history queries
  • Node RPC queries with automatic healthy node discovery
  • Live WebSocket streams
  • Mainnet (Tigris) and Testnet (Ganges) support

Examples:
  bnbdex init                              # Create new wallet
  bnbdex unlock                            # Unlock wallet
  bnbdex address --count 3                 # Show first three addresses
  bnbdex balance                           # Check balances
  bnbdex send tbnb1... 1.5 BNB             # Send 1.5 BNB
  bnbdex order buy NNB-338_BNB 0.01 100    # Place a limit buy order
  bnbdex stream trades NNB-338_BNB         # Follow trades
  bnbdex network testnet                   # Switch to testnet mode`,
	SilenceUsage:      true,
	PersistentPreRunE: setupEnv,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		env.close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&env.configPath, "config", "", "config file (default ~/.bnbdex/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&env.network, "network", "n", "", "override the configured network (mainnet|testnet)")
	rootCmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Uint32Var(&env.account, "account", 0, "index of the signing key")
	rootCmd.PersistentFlags().BoolVarP(&env.yes, "yes", "y", false, "don't ask for confirmation")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(recoveryPhraseCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(rpcCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(freezeCmd)
	rootCmd.AddCommand(unfreezeCmd)
	rootCmd.AddCommand(voteCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bnbdex v%s\n", version)
	},
}
