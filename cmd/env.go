package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/config"
	"github.com/wally-yu/binance-dex/logger"
	"github.com/wally-yu/binance-dex/rpc"
	"github.com/wally-yu/binance-dex/stream"
	"github.com/wally-yu/binance-dex/wallet"
)

// cliEnv is the state shared by every command, set up from the flags and the
// config file before a command runs.
type cliEnv struct {
	configPath string
	network    string
	verbose    bool
	account    uint32
	yes        bool

	cfg      config.Config
	params   api.NetworkParams
	log      *zap.Logger
	closeLog func() error
}

var env cliEnv

func setupEnv(cmd *cobra.Command, args []string) error {
	if env.configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		env.configPath = path
	}
	cfg, err := config.Load(env.configPath)
	if err != nil {
		return err
	}
	if err := applyNetworkFlag(&cfg, env.network); err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	log, closeLog, err := logger.New(cfg.Log, env.verbose)
	if err != nil {
		return err
	}
	env.cfg, env.params, env.log, env.closeLog = cfg, params, log, closeLog
	log.Debug("config loaded", zap.String("path", env.configPath), zap.String("network", cfg.Network))
	return nil
}

// applyNetworkFlag switches cfg to the --network value when it names another
// network. Custom endpoints survive when it names the configured one.
func applyNetworkFlag(cfg *config.Config, network string) error {
	network = strings.ToLower(strings.TrimSpace(network))
	if network == "" || network == cfg.Network {
		return nil
	}
	return cfg.SetNetwork(network)
}

func (e *cliEnv) close() {
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

// walletDir keeps the wallet next to the config file.
func (e *cliEnv) walletDir() string {
	return filepath.Dir(e.configPath)
}

func (e *cliEnv) manager() *wallet.Manager {
	return wallet.NewManager(e.walletDir(), e.params, wallet.Options{
		AccountIndex: e.account,
		Logger:       e.log,
	})
}

// unlockedManager returns the wallet manager if a session is active.
func (e *cliEnv) unlockedManager() (*wallet.Manager, error) {
	m := e.manager()
	if !m.VaultExists() {
		return nil, fmt.Errorf("%w. Run 'bnbdex init' to create a new wallet", wallet.ErrNoWallet)
	}
	if !m.IsUnlocked() {
		return nil, fmt.Errorf("%w. Run 'bnbdex unlock' first", wallet.ErrLocked)
	}
	return m, nil
}

func (e *cliEnv) apiClient() (*api.Client, error) {
	return api.NewClient(e.params.APIURL, api.Options{Timeout: e.cfg.Timeout, Logger: e.log})
}

// rpcClient connects to the configured node or, without one, to the first
// healthy node advertised by the API.
func (e *cliEnv) rpcClient(ctx context.Context) (*rpc.Client, error) {
	opts := rpc.Options{RequestTimeout: e.cfg.Timeout, Logger: e.log}
	if e.cfg.NodeURL != "" {
		return rpc.New(e.cfg.NodeURL, opts)
	}
	client, err := e.apiClient()
	if err != nil {
		return nil, err
	}
	spinner := newSpinner("Looking for a healthy node...")
	defer spinner.Finish()
	node, err := rpc.Discover(ctx, client, opts)
	if err != nil {
		return nil, err
	}
	e.log.Info("using node", zap.String("endpoint", node.Endpoint()))
	return node, nil
}

func (e *cliEnv) streams() stream.Streams {
	return stream.NewStreams(e.params.WSURL)
}

func newSpinner(description string) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	_ = bar.RenderBlank()
	return bar
}

// printJSON writes v indented to the command output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func networkLabel(p api.NetworkParams) string {
	if p.Name == api.NetworkTestnet {
		return color.YellowString("Testnet") + " (" + p.ChainID + ")"
	}
	return color.GreenString("Mainnet") + " (" + p.ChainID + ")"
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// readNewPassword asks for a password twice.
func readNewPassword() (string, error) {
	password, err := readPassword("Enter a password for your wallet: ")
	if err != nil {
		return "", err
	}
	if len(password) < wallet.MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters long", wallet.MinPasswordLength)
	}
	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirmPassword {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}

func readLine(in io.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks the user to approve an action unless --yes is set.
func confirm(cmd *cobra.Command, prompt string) bool {
	if env.yes {
		return true
	}
	answer, err := readLine(cmd.InOrStdin(), prompt+" (y/N): ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
