package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/crypto"
)

var (
	keysCount      int
	keysPath       string
	keysPassphrase string
)

// keysCmd works offline and never touches the wallet vault.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Generate and derive keys offline",
	Long: `Generate mnemonics and keys or derive keys from a mnemonic without
storing anything. The output contains private keys, handle it with care.

Examples:
  bnbdex keys mnemonic
  bnbdex keys generate
  bnbdex keys derive "abandon ... about" --count 3
  bnbdex keys derive "abandon ... about" --path "m/44'/714'/1'/0/0"`,
}

var keysMnemonicCmd = &cobra.Command{
	Use:   "mnemonic",
	Short: "Generate a 24-word mnemonic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mnemonic, err := crypto.NewMnemonic()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
		return nil
	},
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a mnemonic with its first key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := crypto.GenerateKey(env.params.HRP)
		if err != nil {
			return err
		}
		return printJSON(cmd, info)
	},
}

var keysDeriveCmd = &cobra.Command{
	Use:   "derive <mnemonic>",
	Short: "Derive keys from a mnemonic",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeysDerive,
}

func init() {
	keysDeriveCmd.Flags().IntVarP(&keysCount, "count", "c", 1, "number of keys to derive starting from index 0")
	keysDeriveCmd.Flags().StringVar(&keysPath, "path", "", "derive a single key at this path")
	keysDeriveCmd.Flags().StringVar(&keysPassphrase, "passphrase", "", "BIP39 passphrase")

	keysCmd.AddCommand(keysMnemonicCmd, keysGenerateCmd, keysDeriveCmd)
}

func runKeysDerive(cmd *cobra.Command, args []string) error {
	mnemonic := args[0]
	if keysPath != "" {
		path, err := crypto.ParsePath(keysPath)
		if err != nil {
			return err
		}
		key, err := crypto.KeyFromMnemonicPath(mnemonic, keysPassphrase, path)
		if err != nil {
			return err
		}
		info, err := key.Info(env.params.HRP)
		if err != nil {
			return err
		}
		info.Path = path.String()
		return printJSON(cmd, []*crypto.KeyInfo{info})
	}

	keys, err := crypto.KeysFromMnemonic(mnemonic, keysPassphrase, keysCount)
	if err != nil {
		return err
	}
	infos := make([]*crypto.KeyInfo, 0, len(keys))
	for i, key := range keys {
		info, err := key.Info(env.params.HRP)
		if err != nil {
			return err
		}
		info.Path = crypto.AccountPath(uint32(i)).String()
		infos = append(infos, info)
	}
	return printJSON(cmd, infos)
}
