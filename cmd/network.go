package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/api"
)

var networkCmd = &cobra.Command{
	Use:   "network [mainnet|testnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch between mainnet and testnet.

Switching resets the API, WebSocket and chain ID settings to the defaults of
the new network, clears the node URL and is saved to the config file.

Examples:
  bnbdex network            # Show current network
  bnbdex network mainnet    # Switch to mainnet (Binance-Chain-Tigris)
  bnbdex network testnet    # Switch to testnet (Binance-Chain-Ganges)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		showCurrentNetwork(cmd)
		return nil
	}

	network := strings.ToLower(args[0])
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'testnet'", network)
	}

	cfg := env.cfg
	if err := cfg.SetNetwork(network); err != nil {
		return err
	}
	if err := cfg.Save(env.configPath); err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	env.cfg, env.params = cfg, params

	fmt.Fprintf(cmd.OutOrStdout(), "🌐 Switched to %s network\n", strings.ToUpper(network))
	if network == api.NetworkTestnet {
		fmt.Fprintln(cmd.OutOrStdout(), "⚠️  Testnet tokens have no value, addresses use the tbnb prefix")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "🔐 Run 'bnbdex unlock' again, sessions are kept per network")
	return nil
}

func showCurrentNetwork(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 Current network: %s\n", networkLabel(env.params))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Network details:")
	fmt.Fprintf(out, "   - API:        %s\n", env.params.APIURL)
	fmt.Fprintf(out, "   - WebSocket:  %s\n", env.params.WSURL)
	if env.cfg.NodeURL != "" {
		fmt.Fprintf(out, "   - Node RPC:   %s\n", env.cfg.NodeURL)
	} else {
		fmt.Fprintf(out, "   - Node RPC:   %s\n", color.CyanString("discovered from API peers"))
	}
	fmt.Fprintf(out, "   - Address:    %s1...\n", env.params.HRP)
}
