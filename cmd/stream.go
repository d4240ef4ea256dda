package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wally-yu/binance-dex/api"
	"github.com/wally-yu/binance-dex/stream"
)

var (
	streamOnce     bool
	streamInterval string
)

var streamCmd = &cobra.Command{
	Use:   "stream <topic> [symbol|address]",
	Short: "Follow a WebSocket stream",
	Long: `Follow a WebSocket stream of the current network and print every message.

Topics:
  account [address]          balances and orders of an account (wallet by default)
  trades <symbol>            executed trades
  marketDiff <symbol>        order book updates
  marketDepth <symbol>       top 20 order book levels
  kline <symbol>             candlestick bars, see --interval
  ticker <symbol>            24 hour statistics
  miniTicker <symbol>        reduced 24 hour statistics
  allTickers                 24 hour statistics of every symbol
  allMiniTickers             reduced statistics of every symbol
  blockheight                new block heights

Examples:
  bnbdex stream blockheight --once
  bnbdex stream trades NNB-338_BNB
  bnbdex stream kline NNB-338_BNB --interval 15m`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runStream,
}

func init() {
	streamCmd.Flags().BoolVar(&streamOnce, "once", false, "print the first message and exit")
	streamCmd.Flags().StringVarP(&streamInterval, "interval", "i", "1m", "kline interval")
}

// streamURL maps a topic and its argument to the stream URL.
func streamURL(s stream.Streams, topic string, args []string) (string, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	needSymbol := func() error {
		if arg == "" {
			return fmt.Errorf("topic %s needs a symbol", topic)
		}
		return nil
	}

	switch strings.ToLower(topic) {
	case "account":
		address, err := queryAddress(arg)
		if err != nil {
			return "", err
		}
		return s.AccountURL(address), nil
	case strings.ToLower(stream.TopicTrades):
		return s.TradesURL(arg), needSymbol()
	case strings.ToLower(stream.TopicMarketDiff):
		return s.MarketDiffURL(arg), needSymbol()
	case strings.ToLower(stream.TopicMarketDepth):
		return s.MarketDepthURL(arg), needSymbol()
	case "kline":
		if !api.ValidKlineInterval(streamInterval) {
			return "", fmt.Errorf("invalid kline interval %q", streamInterval)
		}
		return s.KlineURL(arg, streamInterval), needSymbol()
	case strings.ToLower(stream.TopicTicker):
		return s.TickerURL(arg), needSymbol()
	case strings.ToLower(stream.TopicMiniTicker):
		return s.MiniTickerURL(arg), needSymbol()
	case strings.ToLower(stream.TopicAllTickers):
		return s.AllTickersURL(), nil
	case strings.ToLower(stream.TopicAllMiniTickers):
		return s.AllMiniTickersURL(), nil
	case stream.TopicBlockHeight:
		return s.BlockHeightURL(), nil
	default:
		return "", fmt.Errorf("unknown topic %q", topic)
	}
}

func runStream(cmd *cobra.Command, args []string) error {
	url, err := streamURL(env.streams(), args[0], args[1:])
	if err != nil {
		return err
	}
	conn := stream.NewConn(url, stream.Options{Logger: env.log})
	defer conn.Close()
	env.log.Debug("following stream", zap.String("url", url))

	show := func(m stream.Message) error {
		if m.Stream == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(m.Raw))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.CyanString(m.Stream), string(m.Data))
		return nil
	}

	if streamOnce {
		m, err := conn.Receive(cmd.Context())
		if err != nil {
			return err
		}
		return show(m)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "📡 Following %s, press Ctrl+C to stop\n", url)
	return conn.Run(cmd.Context(), show)
}
