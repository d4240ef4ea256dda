package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/crypto"
	"github.com/wally-yu/binance-dex/wallet"
)

var withPassphrase bool

var recoveryPhraseCmd = &cobra.Command{
	Use:   "recovery-phrase [show|import]",
	Short: "Manage recovery phrase",
	Long: `Manage your wallet's recovery phrase (mnemonic).

Commands:
  show    - Display the recovery phrase (requires an unlocked wallet)
  import  - Import wallet from existing recovery phrase`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"show", "import"},
	RunE:      runRecoveryPhrase,
}

func init() {
	recoveryPhraseCmd.Flags().BoolVar(&withPassphrase, "passphrase", false, "ask for a BIP39 passphrase on import")
}

func runRecoveryPhrase(cmd *cobra.Command, args []string) error {
	action := strings.ToLower(args[0])

	switch action {
	case "show":
		return showRecoveryPhrase()
	case "import":
		return importRecoveryPhrase(env.manager())
	default:
		return fmt.Errorf("invalid action: %s. Use 'show' or 'import'", action)
	}
}

func showRecoveryPhrase() error {
	manager, err := env.unlockedManager()
	if err != nil {
		return err
	}
	mnemonic, err := manager.Mnemonic()
	if err != nil {
		return fmt.Errorf("failed to get mnemonic: %w", err)
	}

	fmt.Println("🔐 Recovery Phrase:")
	fmt.Println()
	fmt.Printf("   %s\n", mnemonic)
	fmt.Println()
	fmt.Println("⚠️  Security Warning:")
	fmt.Println("   - Keep this phrase secure and private")
	fmt.Println("   - Anyone with this phrase can access your funds")
	fmt.Println("   - Never share it with anyone")

	return nil
}

func importRecoveryPhrase(manager *wallet.Manager) error {
	if manager.VaultExists() {
		return fmt.Errorf("%w. Remove existing wallet first", wallet.ErrWalletExists)
	}

	fmt.Println("📝 Import Wallet from Recovery Phrase")
	fmt.Println()

	mnemonic, err := readLine(os.Stdin, "Enter recovery phrase: ")
	if err != nil {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}
	if !crypto.ValidateMnemonic(mnemonic) {
		return crypto.ErrInvalidMnemonic
	}

	var passphrase string
	if withPassphrase {
		passphrase, err = readPassword("Enter BIP39 passphrase: ")
		if err != nil {
			return err
		}
	}

	password, err := readNewPassword()
	if err != nil {
		return err
	}
	if err := manager.Import(mnemonic, passphrase, password); err != nil {
		return fmt.Errorf("failed to import wallet: %w", err)
	}
	address, err := manager.Address(0)
	if err != nil {
		return err
	}

	fmt.Println("✅ Wallet imported successfully!")
	fmt.Printf("🔑 First address: %s\n", address)

	return nil
}
