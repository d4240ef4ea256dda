package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wally-yu/binance-dex/transaction"
)

var voteCmd = &cobra.Command{
	Use:   "vote <proposal-id> <yes|abstain|no|no_with_veto>",
	Short: "Vote on a governance proposal",
	Long: `Cast a vote on a governance proposal.

Example:
  bnbdex vote 12 yes`,
	Args: cobra.ExactArgs(2),
	RunE: runVote,
}

func runVote(cmd *cobra.Command, args []string) error {
	proposalID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || proposalID <= 0 {
		return fmt.Errorf("invalid proposal id %s", args[0])
	}
	option, err := transaction.VoteOptionFromString(args[1])
	if err != nil {
		return err
	}
	manager, err := env.unlockedManager()
	if err != nil {
		return err
	}
	client, err := env.apiClient()
	if err != nil {
		return err
	}

	if !confirm(cmd, fmt.Sprintf("Vote %s on proposal %d?", args[1], proposalID)) {
		return nil
	}
	res, err := manager.Vote(cmd.Context(), client, proposalID, option, txOptions())
	if err != nil {
		return err
	}
	printTxResult(res)
	return nil
}
